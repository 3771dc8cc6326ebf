package domain

import "fmt"

type ElevatorID int64

type Elevator struct {
	ID       ElevatorID
	MinLevel int
	MaxLevel int
}

func (e Elevator) Validate() error {
	if e.MinLevel > e.MaxLevel {
		return fmt.Errorf("%w: got %d > %d", ErrInvalidLevelRange, e.MinLevel, e.MaxLevel)
	}

	return nil
}

// Serves reports whether level lies within [MinLevel, MaxLevel].
func (e Elevator) Serves(level int) bool {
	return e.MinLevel <= level && level <= e.MaxLevel
}

func (e Elevator) CheckLevel(level int) error {
	if !e.Serves(level) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLevelOutOfRange, level, e.MinLevel, e.MaxLevel)
	}

	return nil
}
