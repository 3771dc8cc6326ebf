package domain

import "time"

type DemandID int64

// Slot is the unit over which open demands are unique.
type Slot struct {
	ElevatorID ElevatorID
	Level      int
}

type Demand struct {
	ID         DemandID
	ElevatorID ElevatorID
	Level      int
	CreatedAt  time.Time
}

func (d Demand) Slot() Slot {
	return Slot{ElevatorID: d.ElevatorID, Level: d.Level}
}
