package application

import "github.com/bnema/nextlevel-elevator/internal/domain"

type RegisterElevatorCommand struct {
	MinLevel int
	MaxLevel int
}

type CallCommand struct {
	ElevatorID domain.ElevatorID
	Level      int
}

type ArrivalCommand struct {
	ElevatorID domain.ElevatorID
	Level      int
}

type ArrivalOutcome string

const (
	ArrivalAccepted ArrivalOutcome = "Accepted"
	ArrivalNoop     ArrivalOutcome = "Noop"
)
