package ports

import (
	"context"
	"errors"
	"iter"

	"github.com/bnema/nextlevel-elevator/internal/domain"
)

var ErrTxDone = errors.New("transaction already committed or rolled back")

// Store is the backing store shared by the registry, the demand ledger and the
// history log. Every logical operation runs in its own Tx.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
	// History yields history entries in insertion order. Each range over the
	// returned sequence reads the store again.
	History(ctx context.Context) iter.Seq2[domain.HistoryEntry, error]
	Close() error
}

// Tx is a unit of work. Exactly one of Commit or Rollback must be called;
// anything after that returns ErrTxDone.
type Tx interface {
	CreateElevator(ctx context.Context, elevator domain.Elevator) (domain.Elevator, error)
	GetElevator(ctx context.Context, id domain.ElevatorID) (domain.Elevator, error)
	ListElevators(ctx context.Context) ([]domain.Elevator, error)

	InsertDemand(ctx context.Context, demand domain.Demand) (domain.Demand, error)
	FindDemand(ctx context.Context, slot domain.Slot) (domain.Demand, error)
	DeleteDemand(ctx context.Context, id domain.DemandID) error
	ListDemands(ctx context.Context, elevatorID domain.ElevatorID) ([]domain.Demand, error)

	AppendHistory(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)

	Commit() error
	Rollback() error
}
