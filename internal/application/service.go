package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
)

var errNilStore = errors.New("store is nil")

type Options struct {
	Publisher ports.HistoryPublisher
	Clock     ports.Clock
	// Location is the zone history entries are decomposed in. Nil means time.Local.
	Location *time.Location
	Encoders map[string]ports.DatasetEncoder
	Logger   *slog.Logger
}

type Service struct {
	store     ports.Store
	publisher ports.HistoryPublisher
	clock     ports.Clock
	location  *time.Location
	encoders  map[string]ports.DatasetEncoder
	logger    *slog.Logger
}

func NewService(store ports.Store, opts Options) *Service {
	service, err := NewServiceChecked(store, opts)
	if err != nil {
		panic(err)
	}

	return service
}

func NewServiceChecked(store ports.Store, opts Options) (*Service, error) {
	if store == nil {
		return nil, errNilStore
	}
	if opts.Publisher == nil {
		opts.Publisher = ports.NopHistoryPublisher{}
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	encoders := make(map[string]ports.DatasetEncoder, len(opts.Encoders))
	for format, encoder := range opts.Encoders {
		encoders[format] = encoder
	}

	return &Service{
		store:     store,
		publisher: opts.Publisher,
		clock:     opts.Clock,
		location:  opts.Location,
		encoders:  encoders,
		logger:    opts.Logger,
	}, nil
}

func (s *Service) RegisterElevator(ctx context.Context, cmd RegisterElevatorCommand) (domain.Elevator, error) {
	elevator := domain.Elevator{MinLevel: cmd.MinLevel, MaxLevel: cmd.MaxLevel}
	if err := elevator.Validate(); err != nil {
		return domain.Elevator{}, err
	}

	var created domain.Elevator
	err := s.withinTx(ctx, func(tx ports.Tx) error {
		var err error
		created, err = tx.CreateElevator(ctx, elevator)
		if err != nil {
			return fmt.Errorf("create elevator: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Elevator{}, err
	}

	return created, nil
}

func (s *Service) GetElevator(ctx context.Context, id domain.ElevatorID) (domain.Elevator, error) {
	var elevator domain.Elevator
	err := s.withinTx(ctx, func(tx ports.Tx) error {
		var err error
		elevator, err = tx.GetElevator(ctx, id)
		if err != nil {
			return fmt.Errorf("get elevator: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Elevator{}, err
	}

	return elevator, nil
}

func (s *Service) ListElevators(ctx context.Context) ([]domain.Elevator, error) {
	var elevators []domain.Elevator
	err := s.withinTx(ctx, func(tx ports.Tx) error {
		var err error
		elevators, err = tx.ListElevators(ctx)
		if err != nil {
			return fmt.Errorf("list elevators: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return elevators, nil
}

func (s *Service) GetStatus(ctx context.Context, id domain.ElevatorID) (ElevatorStatus, error) {
	var status ElevatorStatus
	err := s.withinTx(ctx, func(tx ports.Tx) error {
		elevator, err := tx.GetElevator(ctx, id)
		if err != nil {
			return fmt.Errorf("get elevator: %w", err)
		}

		demands, err := tx.ListDemands(ctx, id)
		if err != nil {
			return fmt.Errorf("list demands: %w", err)
		}

		status = ElevatorStatus{Elevator: elevator, OpenDemands: demands}
		return nil
	})
	if err != nil {
		return ElevatorStatus{}, err
	}

	return status, nil
}

func (s *Service) GetStatusAll(ctx context.Context) ([]ElevatorStatus, error) {
	var statuses []ElevatorStatus
	err := s.withinTx(ctx, func(tx ports.Tx) error {
		elevators, err := tx.ListElevators(ctx)
		if err != nil {
			return fmt.Errorf("list elevators: %w", err)
		}

		statuses = make([]ElevatorStatus, 0, len(elevators))
		for _, elevator := range elevators {
			demands, err := tx.ListDemands(ctx, elevator.ID)
			if err != nil {
				return fmt.Errorf("list demands for elevator %d: %w", elevator.ID, err)
			}
			statuses = append(statuses, ElevatorStatus{Elevator: elevator, OpenDemands: demands})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return statuses, nil
}

// withinTx runs fn in a fresh transaction. It commits when fn succeeds and
// rolls back otherwise, never both.
func (s *Service) withinTx(ctx context.Context, fn func(tx ports.Tx) error) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	finished := false
	defer func() {
		// fn panicked; release the transaction before the panic unwinds further.
		if !finished {
			_ = tx.Rollback()
		}
	}()

	err = fn(tx)
	finished = true
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
