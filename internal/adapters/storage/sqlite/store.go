// Package sqlite provides the SQLite-backed elevator store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/adapters/storage/sqlite/migrations"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	_ ports.Store = (*Store)(nil)
	_ ports.Tx    = (*tx)(nil)
)

// Store persists elevators, open demands and history in SQLite. Transactions
// begin IMMEDIATE, so each one holds the database write lock from the start.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Begin(ctx context.Context) (ports.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	sqlTx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin sqlite transaction: %w", err)
	}
	return &tx{sqlTx: sqlTx}, nil
}

// History reads through the connection pool rather than a write transaction,
// so a slow consumer never holds the write lock.
func (s *Store) History(ctx context.Context) iter.Seq2[domain.HistoryEntry, error] {
	return func(yield func(domain.HistoryEntry, error) bool) {
		if s == nil || s.sqlDB == nil {
			yield(domain.HistoryEntry{}, fmt.Errorf("storage is not configured"))
			return
		}

		rows, err := s.sqlDB.QueryContext(
			ctx,
			`SELECT id, elevator_id, week_day, hour, minute, second, level
			   FROM elevator_demand_history
			  ORDER BY id ASC`,
		)
		if err != nil {
			yield(domain.HistoryEntry{}, fmt.Errorf("list history: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var entry domain.HistoryEntry
			if err := rows.Scan(
				&entry.ID,
				&entry.ElevatorID,
				&entry.WeekDay,
				&entry.Hour,
				&entry.Minute,
				&entry.Second,
				&entry.Level,
			); err != nil {
				yield(domain.HistoryEntry{}, fmt.Errorf("scan history: %w", err))
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.HistoryEntry{}, fmt.Errorf("list history: %w", err))
		}
	}
}

type tx struct {
	sqlTx *sql.Tx
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

	var (
		result sql.Result
		err    error
	)
	if elevator.ID == 0 {
		result, err = t.sqlTx.ExecContext(
			ctx,
			`INSERT INTO elevators (min_level, max_level) VALUES (?, ?)`,
			elevator.MinLevel,
			elevator.MaxLevel,
		)
	} else {
		result, err = t.sqlTx.ExecContext(
			ctx,
			`INSERT INTO elevators (id, min_level, max_level) VALUES (?, ?, ?)`,
			int64(elevator.ID),
			elevator.MinLevel,
			elevator.MaxLevel,
		)
	}
	if err != nil {
		if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE) {
			return domain.Elevator{}, domain.ErrElevatorExists
		}
		return domain.Elevator{}, fmt.Errorf("insert elevator: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Elevator{}, fmt.Errorf("read elevator id: %w", err)
	}
	elevator.ID = domain.ElevatorID(id)
	return elevator, nil
}

func (t *tx) GetElevator(ctx context.Context, id domain.ElevatorID) (domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return domain.Elevator{}, err
	}

	row := t.sqlTx.QueryRowContext(
		ctx,
		`SELECT id, min_level, max_level FROM elevators WHERE id = ?`,
		int64(id),
	)

	var elevator domain.Elevator
	if err := row.Scan(&elevator.ID, &elevator.MinLevel, &elevator.MaxLevel); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Elevator{}, domain.ErrElevatorNotFound
		}
		return domain.Elevator{}, fmt.Errorf("get elevator: %w", err)
	}
	return elevator, nil
}

func (t *tx) ListElevators(ctx context.Context) ([]domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}

	rows, err := t.sqlTx.QueryContext(ctx, `SELECT id, min_level, max_level FROM elevators ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list elevators: %w", err)
	}
	defer rows.Close()

	elevators := make([]domain.Elevator, 0)
	for rows.Next() {
		var elevator domain.Elevator
		if err := rows.Scan(&elevator.ID, &elevator.MinLevel, &elevator.MaxLevel); err != nil {
			return nil, fmt.Errorf("list elevators: %w", err)
		}
		elevators = append(elevators, elevator)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list elevators: %w", err)
	}
	return elevators, nil
}

func (t *tx) InsertDemand(ctx context.Context, demand domain.Demand) (domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return domain.Demand{}, err
	}

	result, err := t.sqlTx.ExecContext(
		ctx,
		`INSERT INTO elevator_demands (elevator_id, level, created_at) VALUES (?, ?, ?)`,
		int64(demand.ElevatorID),
		demand.Level,
		toMillis(demand.CreatedAt),
	)
	if err != nil {
		switch {
		case isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE):
			return domain.Demand{}, domain.ErrDemandExists
		case isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY):
			return domain.Demand{}, domain.ErrElevatorNotFound
		}
		return domain.Demand{}, fmt.Errorf("insert demand: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Demand{}, fmt.Errorf("read demand id: %w", err)
	}
	demand.ID = domain.DemandID(id)
	return demand, nil
}

func (t *tx) FindDemand(ctx context.Context, slot domain.Slot) (domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return domain.Demand{}, err
	}

	row := t.sqlTx.QueryRowContext(
		ctx,
		`SELECT id, elevator_id, level, created_at
		   FROM elevator_demands
		  WHERE elevator_id = ? AND level = ?`,
		int64(slot.ElevatorID),
		slot.Level,
	)

	var (
		demand    domain.Demand
		createdAt int64
	)
	if err := row.Scan(&demand.ID, &demand.ElevatorID, &demand.Level, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Demand{}, domain.ErrDemandNotFound
		}
		return domain.Demand{}, fmt.Errorf("find demand: %w", err)
	}
	demand.CreatedAt = fromMillis(createdAt)
	return demand, nil
}

func (t *tx) DeleteDemand(ctx context.Context, id domain.DemandID) error {
	if err := t.check(ctx); err != nil {
		return err
	}

	result, err := t.sqlTx.ExecContext(ctx, `DELETE FROM elevator_demands WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("delete demand: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete demand: %w", err)
	}
	if affected == 0 {
		return domain.ErrDemandNotFound
	}
	return nil
}

func (t *tx) ListDemands(ctx context.Context, elevatorID domain.ElevatorID) ([]domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}

	rows, err := t.sqlTx.QueryContext(
		ctx,
		`SELECT id, elevator_id, level, created_at
		   FROM elevator_demands
		  WHERE elevator_id = ?
		  ORDER BY level ASC`,
		int64(elevatorID),
	)
	if err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}
	defer rows.Close()

	demands := make([]domain.Demand, 0)
	for rows.Next() {
		var (
			demand    domain.Demand
			createdAt int64
		)
		if err := rows.Scan(&demand.ID, &demand.ElevatorID, &demand.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("list demands: %w", err)
		}
		demand.CreatedAt = fromMillis(createdAt)
		demands = append(demands, demand)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}
	return demands, nil
}

func (t *tx) AppendHistory(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	if err := t.check(ctx); err != nil {
		return domain.HistoryEntry{}, err
	}

	result, err := t.sqlTx.ExecContext(
		ctx,
		`INSERT INTO elevator_demand_history (
		   elevator_id,
		   week_day,
		   hour,
		   minute,
		   second,
		   level
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		int64(entry.ElevatorID),
		entry.WeekDay,
		entry.Hour,
		entry.Minute,
		entry.Second,
		entry.Level,
	)
	if err != nil {
		if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return domain.HistoryEntry{}, domain.ErrElevatorNotFound
		}
		return domain.HistoryEntry{}, fmt.Errorf("insert history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("read history entry id: %w", err)
	}
	entry.ID = domain.HistoryEntryID(id)
	return entry, nil
}

func (t *tx) Commit() error {
	if t.done {
		return ports.ErrTxDone
	}
	t.done = true
	if err := t.sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit sqlite transaction: %w", err)
	}
	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return ports.ErrTxDone
	}
	t.done = true
	if err := t.sqlTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback sqlite transaction: %w", err)
	}
	return nil
}

func isConstraint(err error, codes ...int) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	for _, code := range codes {
		if sqliteErr.Code() == code {
			return true
		}
	}
	return false
}
