// Package memory provides an in-memory store for tests and ephemeral runs.
package memory

import (
	"cmp"
	"context"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
)

var (
	_ ports.Store = (*Store)(nil)
	_ ports.Tx    = (*tx)(nil)
)

type state struct {
	elevators     map[domain.ElevatorID]domain.Elevator
	demands       map[domain.DemandID]domain.Demand
	slots         map[domain.Slot]domain.DemandID
	history       []domain.HistoryEntry
	lastElevator  domain.ElevatorID
	lastDemand    domain.DemandID
	lastHistoryID domain.HistoryEntryID
}

func newState() state {
	return state{
		elevators: map[domain.ElevatorID]domain.Elevator{},
		demands:   map[domain.DemandID]domain.Demand{},
		slots:     map[domain.Slot]domain.DemandID{},
	}
}

func (s state) clone() state {
	return state{
		elevators:     maps.Clone(s.elevators),
		demands:       maps.Clone(s.demands),
		slots:         maps.Clone(s.slots),
		history:       slices.Clone(s.history),
		lastElevator:  s.lastElevator,
		lastDemand:    s.lastDemand,
		lastHistoryID: s.lastHistoryID,
	}
}

// Store keeps all state in memory. A transaction holds the write lock from
// Begin until Commit or Rollback, so transactions are serial.
type Store struct {
	mu    sync.RWMutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) Begin(ctx context.Context) (ports.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	return &tx{store: s, state: s.state.clone()}, nil
}

func (s *Store) History(ctx context.Context) iter.Seq2[domain.HistoryEntry, error] {
	return func(yield func(domain.HistoryEntry, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(domain.HistoryEntry{}, err)
			return
		}

		s.mu.RLock()
		snapshot := slices.Clone(s.state.history)
		s.mu.RUnlock()

		for _, entry := range snapshot {
			if err := ctx.Err(); err != nil {
				yield(domain.HistoryEntry{}, err)
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

func (s *Store) Close() error {
	return nil
}

type tx struct {
	store *Store
	state state
	done  bool
}

func (t *tx) check(ctx context.Context) error {
	if t.done {
		return ports.ErrTxDone
	}
	return ctx.Err()
}

func (t *tx) CreateElevator(ctx context.Context, elevator domain.Elevator) (domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return domain.Elevator{}, err
	}

	if elevator.ID == 0 {
		elevator.ID = t.state.lastElevator + 1
	}
	if _, ok := t.state.elevators[elevator.ID]; ok {
		return domain.Elevator{}, domain.ErrElevatorExists
	}

	t.state.elevators[elevator.ID] = elevator
	t.state.lastElevator = max(t.state.lastElevator, elevator.ID)
	return elevator, nil
}

func (t *tx) GetElevator(ctx context.Context, id domain.ElevatorID) (domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return domain.Elevator{}, err
	}

	elevator, ok := t.state.elevators[id]
	if !ok {
		return domain.Elevator{}, domain.ErrElevatorNotFound
	}

	return elevator, nil
}

func (t *tx) ListElevators(ctx context.Context) ([]domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}

	elevators := slices.Collect(maps.Values(t.state.elevators))
	slices.SortFunc(elevators, func(a, b domain.Elevator) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return elevators, nil
}

func (t *tx) InsertDemand(ctx context.Context, demand domain.Demand) (domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return domain.Demand{}, err
	}

	if _, ok := t.state.elevators[demand.ElevatorID]; !ok {
		return domain.Demand{}, domain.ErrElevatorNotFound
	}
	if _, ok := t.state.slots[demand.Slot()]; ok {
		return domain.Demand{}, domain.ErrDemandExists
	}

	t.state.lastDemand++
	demand.ID = t.state.lastDemand
	t.state.demands[demand.ID] = demand
	t.state.slots[demand.Slot()] = demand.ID

	return demand, nil
}

func (t *tx) FindDemand(ctx context.Context, slot domain.Slot) (domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return domain.Demand{}, err
	}

	id, ok := t.state.slots[slot]
	if !ok {
		return domain.Demand{}, domain.ErrDemandNotFound
	}

	return t.state.demands[id], nil
}

func (t *tx) DeleteDemand(ctx context.Context, id domain.DemandID) error {
	if err := t.check(ctx); err != nil {
		return err
	}

	demand, ok := t.state.demands[id]
	if !ok {
		return domain.ErrDemandNotFound
	}

	delete(t.state.demands, id)
	delete(t.state.slots, demand.Slot())
	return nil
}

func (t *tx) ListDemands(ctx context.Context, elevatorID domain.ElevatorID) ([]domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}

	demands := make([]domain.Demand, 0)
	for _, demand := range t.state.demands {
		if demand.ElevatorID == elevatorID {
			demands = append(demands, demand)
		}
	}
	slices.SortFunc(demands, func(a, b domain.Demand) int {
		return cmp.Compare(a.Level, b.Level)
	})

	return demands, nil
}

func (t *tx) AppendHistory(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	if err := t.check(ctx); err != nil {
		return domain.HistoryEntry{}, err
	}

	t.state.lastHistoryID++
	entry.ID = t.state.lastHistoryID
	t.state.history = append(t.state.history, entry)

	return entry, nil
}

func (t *tx) Commit() error {
	if t.done {
		return ports.ErrTxDone
	}

	t.done = true
	t.store.state = t.state
	t.store.mu.Unlock()
	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return ports.ErrTxDone
	}

	t.done = true
	t.store.mu.Unlock()
	return nil
}
