// Package storetest holds the behaviour every ports.Store implementation must
// share. Backends call Run from their own tests.
package storetest

import (
	"context"
	"errors"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// OpenFunc returns a fresh, empty store. Cleanup is registered on t.
type OpenFunc func(t *testing.T) ports.Store

func Run(t *testing.T, open OpenFunc) {
	t.Helper()

	t.Run("create elevator assigns increasing ids", func(t *testing.T) { testCreateElevator(t, open(t)) })
	t.Run("create elevator rejects duplicate id", func(t *testing.T) { testDuplicateElevator(t, open(t)) })
	t.Run("get missing elevator", func(t *testing.T) { testMissingElevator(t, open(t)) })
	t.Run("open demand is unique per slot", func(t *testing.T) { testDemandUniqueness(t, open(t)) })
	t.Run("find and delete demand", func(t *testing.T) { testFindDeleteDemand(t, open(t)) })
	t.Run("demand for unknown elevator", func(t *testing.T) { testDemandUnknownElevator(t, open(t)) })
	t.Run("rollback discards writes", func(t *testing.T) { testRollback(t, open(t)) })
	t.Run("finished transaction rejects use", func(t *testing.T) { testTxDone(t, open(t)) })
	t.Run("history keeps insertion order", func(t *testing.T) { testHistoryOrder(t, open(t)) })
	t.Run("concurrent calls on one slot", func(t *testing.T) { testConcurrentSlot(t, open(t)) })
}

func begin(t *testing.T, store ports.Store) ports.Tx {
	t.Helper()

	tx, err := store.Begin(context.Background())
	require.NoError(t, err)
	return tx
}

func seedElevator(t *testing.T, store ports.Store, minLevel, maxLevel int) domain.Elevator {
	t.Helper()

	tx := begin(t, store)
	elevator, err := tx.CreateElevator(context.Background(), domain.Elevator{MinLevel: minLevel, MaxLevel: maxLevel})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	return elevator
}

func testCreateElevator(t *testing.T, store ports.Store) {
	ctx := context.Background()

	first := seedElevator(t, store, 1, 10)
	second := seedElevator(t, store, -2, 4)

	assert.Equal(t, domain.Elevator{ID: 1, MinLevel: 1, MaxLevel: 10}, first)
	assert.Equal(t, domain.Elevator{ID: 2, MinLevel: -2, MaxLevel: 4}, second)

	tx := begin(t, store)
	defer func() { _ = tx.Rollback() }()

	got, err := tx.GetElevator(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	all, err := tx.ListElevators(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Elevator{first, second}, all)
}

func testDuplicateElevator(t *testing.T, store ports.Store) {
	ctx := context.Background()
	seedElevator(t, store, 1, 10)

	tx := begin(t, store)
	_, err := tx.CreateElevator(ctx, domain.Elevator{ID: 1, MinLevel: 0, MaxLevel: 3})
	require.ErrorIs(t, err, domain.ErrElevatorExists)
	require.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, tx.Rollback())
}

func testMissingElevator(t *testing.T, store ports.Store) {
	tx := begin(t, store)
	defer func() { _ = tx.Rollback() }()

	_, err := tx.GetElevator(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrElevatorNotFound)
}

func testDemandUniqueness(t *testing.T, store ports.Store) {
	ctx := context.Background()
	first := seedElevator(t, store, 1, 10)
	second := seedElevator(t, store, 1, 10)
	now := time.Date(2001, 12, 12, 8, 1, 0, 0, time.UTC)

	tx := begin(t, store)
	created, err := tx.InsertDemand(ctx, domain.Demand{ElevatorID: first.ID, Level: 3, CreatedAt: now})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	_, err = tx.InsertDemand(ctx, domain.Demand{ElevatorID: first.ID, Level: 4, CreatedAt: now})
	require.NoError(t, err)
	_, err = tx.InsertDemand(ctx, domain.Demand{ElevatorID: second.ID, Level: 3, CreatedAt: now})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	tx = begin(t, store)
	_, err = tx.InsertDemand(ctx, domain.Demand{ElevatorID: first.ID, Level: 3, CreatedAt: now.Add(time.Minute)})
	require.ErrorIs(t, err, domain.ErrDemandExists)
	require.NoError(t, tx.Rollback())

	tx = begin(t, store)
	defer func() { _ = tx.Rollback() }()
	demands, err := tx.ListDemands(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, demands, 2)
	assert.Equal(t, 3, demands[0].Level)
	assert.Equal(t, 4, demands[1].Level)
	assert.True(t, now.Equal(demands[0].CreatedAt), "created at %s", demands[0].CreatedAt)
}

func testFindDeleteDemand(t *testing.T, store ports.Store) {
	ctx := context.Background()
	elevator := seedElevator(t, store, 1, 10)
	slot := domain.Slot{ElevatorID: elevator.ID, Level: 5}
	createdAt := time.Date(2001, 12, 12, 8, 15, 0, 0, time.UTC)

	tx := begin(t, store)
	_, err := tx.FindDemand(ctx, slot)
	require.ErrorIs(t, err, domain.ErrDemandNotFound)
	inserted, err := tx.InsertDemand(ctx, domain.Demand{ElevatorID: elevator.ID, Level: 5, CreatedAt: createdAt})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	tx = begin(t, store)
	found, err := tx.FindDemand(ctx, slot)
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, found.ID)
	assert.Equal(t, slot, found.Slot())
	assert.True(t, createdAt.Equal(found.CreatedAt))
	require.NoError(t, tx.DeleteDemand(ctx, found.ID))
	require.NoError(t, tx.Commit())

	tx = begin(t, store)
	_, err = tx.FindDemand(ctx, slot)
	require.ErrorIs(t, err, domain.ErrDemandNotFound)
	require.ErrorIs(t, tx.DeleteDemand(ctx, found.ID), domain.ErrDemandNotFound)
	require.NoError(t, tx.Rollback())

	// the slot is reusable once the demand is gone
	tx = begin(t, store)
	_, err = tx.InsertDemand(ctx, domain.Demand{ElevatorID: elevator.ID, Level: 5, CreatedAt: createdAt})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}

func testDemandUnknownElevator(t *testing.T, store ports.Store) {
	tx := begin(t, store)
	defer func() { _ = tx.Rollback() }()

	_, err := tx.InsertDemand(context.Background(), domain.Demand{ElevatorID: 99, Level: 1, CreatedAt: time.Now()})
	require.ErrorIs(t, err, domain.ErrElevatorNotFound)
}

func testRollback(t *testing.T, store ports.Store) {
	ctx := context.Background()
	elevator := seedElevator(t, store, 1, 10)

	tx := begin(t, store)
	_, err := tx.InsertDemand(ctx, domain.Demand{ElevatorID: elevator.ID, Level: 1, CreatedAt: time.Now()})
	require.NoError(t, err)
	_, err = tx.AppendHistory(ctx, domain.HistoryEntry{ElevatorID: elevator.ID, Level: 1})
	require.NoError(t, err)
	_, err = tx.CreateElevator(ctx, domain.Elevator{MinLevel: 0, MaxLevel: 1})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	tx = begin(t, store)
	demands, err := tx.ListDemands(ctx, elevator.ID)
	require.NoError(t, err)
	assert.Empty(t, demands)
	elevators, err := tx.ListElevators(ctx)
	require.NoError(t, err)
	assert.Len(t, elevators, 1)
	require.NoError(t, tx.Rollback())

	entries, err := collect(store.History(ctx))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func testTxDone(t *testing.T, store ports.Store) {
	tx := begin(t, store)
	require.NoError(t, tx.Commit())

	assert.ErrorIs(t, tx.Commit(), ports.ErrTxDone)
	assert.ErrorIs(t, tx.Rollback(), ports.ErrTxDone)
	_, err := tx.ListElevators(context.Background())
	assert.ErrorIs(t, err, ports.ErrTxDone)

	tx = begin(t, store)
	require.NoError(t, tx.Rollback())
	assert.ErrorIs(t, tx.Commit(), ports.ErrTxDone)
}

func testHistoryOrder(t *testing.T, store ports.Store) {
	ctx := context.Background()
	elevator := seedElevator(t, store, 1, 10)

	levels := []int{1, 7, 9, 6}
	for i, level := range levels {
		tx := begin(t, store)
		entry, err := tx.AppendHistory(ctx, domain.HistoryEntry{
			ElevatorID: elevator.ID,
			Level:      level,
			WeekDay:    2,
			Hour:       8,
			Minute:     i * 5,
			Second:     i,
		})
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
		require.NoError(t, tx.Commit())
	}

	sequence := store.History(ctx)
	for range 2 {
		entries, err := collect(sequence)
		require.NoError(t, err)
		require.Len(t, entries, len(levels))
		for i, entry := range entries {
			assert.Equal(t, levels[i], entry.Level)
			assert.Equal(t, i*5, entry.Minute)
			assert.Equal(t, i, entry.Second)
			assert.Equal(t, elevator.ID, entry.ElevatorID)
		}
	}

	// stop early without error
	count := 0
	for _, err := range sequence {
		require.NoError(t, err)
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func testConcurrentSlot(t *testing.T, store ports.Store) {
	ctx := context.Background()
	elevator := seedElevator(t, store, 1, 10)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
		others    []error
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := func() error {
				tx, err := store.Begin(ctx)
				if err != nil {
					return err
				}
				if _, err := tx.InsertDemand(ctx, domain.Demand{ElevatorID: elevator.ID, Level: 2, CreatedAt: time.Now()}); err != nil {
					return errors.Join(err, tx.Rollback())
				}
				return tx.Commit()
			}()

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrDemandExists):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, others)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, conflicts)
}

func collect(seq iter.Seq2[domain.HistoryEntry, error]) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	for entry, err := range seq {
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
