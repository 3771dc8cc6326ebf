package toml

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeFileMode   = 0o600
	storeDirMode    = 0o700
	tempFilePattern = ".elevators-*.toml.tmp"
)

// Store keeps the whole state in one TOML document. A transaction re-reads the
// file at Begin and atomically replaces it at Commit.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.Store = (*Store)(nil)
	_ ports.Tx    = (*tx)(nil)
)

func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is empty")
	}

	normalized, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Store{path: normalized, mu: lockForPath(normalized)}, nil
}

func (s *Store) Begin(ctx context.Context) (ports.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()

	file, err := s.readSchema()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	return &tx{store: s, file: file}, nil
}

func (s *Store) History(ctx context.Context) iter.Seq2[domain.HistoryEntry, error] {
	return func(yield func(domain.HistoryEntry, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(domain.HistoryEntry{}, err)
			return
		}

		s.mu.RLock()
		file, err := s.readSchema()
		s.mu.RUnlock()
		if err != nil {
			yield(domain.HistoryEntry{}, err)
			return
		}

		for _, entry := range file.History {
			if !yield(fromHistorySchema(entry), nil) {
				return
			}
		}
	}
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read store file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode store file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp store file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp store file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

type tx struct {
	store *Store
	file  fileSchema
	done  bool
}

func (t *tx) check(ctx context.Context) error {
	if t.done {
		return ports.ErrTxDone
	}
	return ctx.Err()
}

func (t *tx) hasElevator(id domain.ElevatorID) bool {
	return slices.ContainsFunc(t.file.Elevators, func(e elevatorSchema) bool {
		return e.ID == int64(id)
	})
}

func (t *tx) CreateElevator(ctx context.Context, elevator domain.Elevator) (domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return domain.Elevator{}, err
	}

	if elevator.ID == 0 {
		elevator.ID = domain.ElevatorID(t.file.Sequences.Elevator + 1)
	}
	if t.hasElevator(elevator.ID) {
		return domain.Elevator{}, domain.ErrElevatorExists
	}

	t.file.Elevators = append(t.file.Elevators, elevatorSchema{
		ID:       int64(elevator.ID),
		MinLevel: elevator.MinLevel,
		MaxLevel: elevator.MaxLevel,
	})
	t.file.Sequences.Elevator = max(t.file.Sequences.Elevator, int64(elevator.ID))

	return elevator, nil
}

func (t *tx) GetElevator(ctx context.Context, id domain.ElevatorID) (domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return domain.Elevator{}, err
	}

	for _, entry := range t.file.Elevators {
		if entry.ID == int64(id) {
			return fromElevatorSchema(entry), nil
		}
	}

	return domain.Elevator{}, domain.ErrElevatorNotFound
}

func (t *tx) ListElevators(ctx context.Context) ([]domain.Elevator, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}

	elevators := make([]domain.Elevator, 0, len(t.file.Elevators))
	for _, entry := range t.file.Elevators {
		elevators = append(elevators, fromElevatorSchema(entry))
	}
	slices.SortFunc(elevators, func(a, b domain.Elevator) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return elevators, nil
}

func (t *tx) InsertDemand(ctx context.Context, demand domain.Demand) (domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return domain.Demand{}, err
	}

	if !t.hasElevator(demand.ElevatorID) {
		return domain.Demand{}, domain.ErrElevatorNotFound
	}
	for _, entry := range t.file.Demands {
		if entry.ElevatorID == int64(demand.ElevatorID) && entry.Level == demand.Level {
			return domain.Demand{}, domain.ErrDemandExists
		}
	}

	t.file.Sequences.Demand++
	demand.ID = domain.DemandID(t.file.Sequences.Demand)
	t.file.Demands = append(t.file.Demands, toDemandSchema(demand))

	return demand, nil
}

func (t *tx) FindDemand(ctx context.Context, slot domain.Slot) (domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return domain.Demand{}, err
	}

	for _, entry := range t.file.Demands {
		if entry.ElevatorID == int64(slot.ElevatorID) && entry.Level == slot.Level {
			return fromDemandSchema(entry)
		}
	}

	return domain.Demand{}, domain.ErrDemandNotFound
}

func (t *tx) DeleteDemand(ctx context.Context, id domain.DemandID) error {
	if err := t.check(ctx); err != nil {
		return err
	}

	before := len(t.file.Demands)
	t.file.Demands = slices.DeleteFunc(t.file.Demands, func(entry demandSchema) bool {
		return entry.ID == int64(id)
	})
	if len(t.file.Demands) == before {
		return domain.ErrDemandNotFound
	}

	return nil
}

func (t *tx) ListDemands(ctx context.Context, elevatorID domain.ElevatorID) ([]domain.Demand, error) {
	if err := t.check(ctx); err != nil {
		return nil, err
	}

	demands := make([]domain.Demand, 0)
	for _, entry := range t.file.Demands {
		if entry.ElevatorID != int64(elevatorID) {
			continue
		}
		demand, err := fromDemandSchema(entry)
		if err != nil {
			return nil, err
		}
		demands = append(demands, demand)
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

	if !t.hasElevator(entry.ElevatorID) {
		return domain.HistoryEntry{}, domain.ErrElevatorNotFound
	}

	t.file.Sequences.History++
	entry.ID = domain.HistoryEntryID(t.file.Sequences.History)
	t.file.History = append(t.file.History, toHistorySchema(entry))

	return entry, nil
}

func (t *tx) Commit() error {
	if t.done {
		return ports.ErrTxDone
	}

	t.done = true
	defer t.store.mu.Unlock()

	return t.store.writeSchema(t.file)
}

func (t *tx) Rollback() error {
	if t.done {
		return ports.ErrTxDone
	}

	t.done = true
	t.store.mu.Unlock()
	return nil
}

func fromElevatorSchema(entry elevatorSchema) domain.Elevator {
	return domain.Elevator{
		ID:       domain.ElevatorID(entry.ID),
		MinLevel: entry.MinLevel,
		MaxLevel: entry.MaxLevel,
	}
}

func toDemandSchema(demand domain.Demand) demandSchema {
	return demandSchema{
		ID:         int64(demand.ID),
		ElevatorID: int64(demand.ElevatorID),
		Level:      demand.Level,
		CreatedAt:  formatTime(demand.CreatedAt),
	}
}

func fromDemandSchema(entry demandSchema) (domain.Demand, error) {
	createdAt, err := parseTime(entry.CreatedAt)
	if err != nil {
		return domain.Demand{}, fmt.Errorf("decode demand %d created_at: %w", entry.ID, err)
	}

	return domain.Demand{
		ID:         domain.DemandID(entry.ID),
		ElevatorID: domain.ElevatorID(entry.ElevatorID),
		Level:      entry.Level,
		CreatedAt:  createdAt,
	}, nil
}

func toHistorySchema(entry domain.HistoryEntry) historySchema {
	return historySchema{
		ID:         int64(entry.ID),
		ElevatorID: int64(entry.ElevatorID),
		WeekDay:    entry.WeekDay,
		Hour:       entry.Hour,
		Minute:     entry.Minute,
		Second:     entry.Second,
		Level:      entry.Level,
	}
}

func fromHistorySchema(entry historySchema) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:         domain.HistoryEntryID(entry.ID),
		ElevatorID: domain.ElevatorID(entry.ElevatorID),
		WeekDay:    entry.WeekDay,
		Hour:       entry.Hour,
		Minute:     entry.Minute,
		Second:     entry.Second,
		Level:      entry.Level,
	}
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
