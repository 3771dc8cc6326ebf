package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
)

// RequestCall opens a demand for cmd.Level on the elevator. A second call for
// a slot that already has an open demand fails with domain.ErrDemandExists.
func (s *Service) RequestCall(ctx context.Context, cmd CallCommand) error {
	return s.withinTx(ctx, func(tx ports.Tx) error {
		elevator, err := tx.GetElevator(ctx, cmd.ElevatorID)
		if err != nil {
			return fmt.Errorf("get elevator: %w", err)
		}

		if err := elevator.CheckLevel(cmd.Level); err != nil {
			return err
		}

		if _, err := tx.InsertDemand(ctx, domain.Demand{
			ElevatorID: elevator.ID,
			Level:      cmd.Level,
			CreatedAt:  s.clock.Now(),
		}); err != nil {
			return fmt.Errorf("insert demand: %w", err)
		}

		return nil
	})
}

// ReportArrival fulfills the open demand for the slot, if any. Arrivals do not
// need a matching call; without one the result is ArrivalNoop.
func (s *Service) ReportArrival(ctx context.Context, cmd ArrivalCommand) (ArrivalOutcome, error) {
	var appended *domain.HistoryEntry

	err := s.withinTx(ctx, func(tx ports.Tx) error {
		elevator, err := tx.GetElevator(ctx, cmd.ElevatorID)
		if err != nil {
			return fmt.Errorf("get elevator: %w", err)
		}

		demand, err := tx.FindDemand(ctx, domain.Slot{ElevatorID: elevator.ID, Level: cmd.Level})
		if err != nil {
			if errors.Is(err, domain.ErrDemandNotFound) {
				return nil
			}
			return fmt.Errorf("find demand: %w", err)
		}

		entry, err := tx.AppendHistory(ctx, domain.NewHistoryEntry(demand, s.location))
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if err := tx.DeleteDemand(ctx, demand.ID); err != nil {
			return fmt.Errorf("delete demand: %w", err)
		}

		appended = &entry
		return nil
	})
	if err != nil {
		return "", err
	}

	if appended == nil {
		return ArrivalNoop, nil
	}

	// The entry is committed; a caller going away must not keep it off the stream.
	if err := s.publisher.Publish(context.WithoutCancel(ctx), *appended); err != nil {
		s.logger.Warn("history_publish_failed",
			slog.Int64("elevator_id", int64(appended.ElevatorID)),
			slog.Int("floor", appended.Level),
			slog.Any("err", err),
		)
	}

	return ArrivalAccepted, nil
}

func (s *Service) ListOpenDemands(ctx context.Context, elevatorID domain.ElevatorID) ([]domain.Demand, error) {
	var demands []domain.Demand
	err := s.withinTx(ctx, func(tx ports.Tx) error {
		if _, err := tx.GetElevator(ctx, elevatorID); err != nil {
			return fmt.Errorf("get elevator: %w", err)
		}

		var err error
		demands, err = tx.ListDemands(ctx, elevatorID)
		if err != nil {
			return fmt.Errorf("list demands: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return demands, nil
}
