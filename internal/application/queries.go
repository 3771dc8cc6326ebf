package application

import "github.com/bnema/nextlevel-elevator/internal/domain"

type ElevatorStatus struct {
	Elevator    domain.Elevator
	OpenDemands []domain.Demand
}

func (s ElevatorStatus) OpenLevels() []int {
	levels := make([]int, 0, len(s.OpenDemands))
	for _, demand := range s.OpenDemands {
		levels = append(levels, demand.Level)
	}

	return levels
}
