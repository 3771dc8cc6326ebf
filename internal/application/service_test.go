package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	csvexport "github.com/bnema/nextlevel-elevator/internal/adapters/export/csv"
	"github.com/bnema/nextlevel-elevator/internal/adapters/storage/memory"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
	"github.com/bnema/nextlevel-elevator/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var callTime = time.Date(2001, 12, 12, 8, 1, 0, 0, time.UTC)

func newMemoryService(t *testing.T, publisher ports.HistoryPublisher) *Service {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(callTime).Maybe()

	return NewService(memory.NewStore(), Options{
		Publisher: publisher,
		Clock:     clock,
		Location:  time.UTC,
		Encoders:  map[string]ports.DatasetEncoder{csvexport.Format: csvexport.NewEncoder()},
	})
}

func registerElevator(t *testing.T, service *Service, minLevel, maxLevel int) domain.Elevator {
	t.Helper()

	elevator, err := service.RegisterElevator(context.Background(), RegisterElevatorCommand{MinLevel: minLevel, MaxLevel: maxLevel})
	require.NoError(t, err)
	return elevator
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func TestNewServiceCheckedRequiresStore(t *testing.T) {
	_, err := NewServiceChecked(nil, Options{})
	require.ErrorIs(t, err, errNilStore)

	assert.Panics(t, func() { NewService(nil, Options{}) })
}

func TestRegisterElevatorAssignsIncreasingIDs(t *testing.T) {
	service := newMemoryService(t, nil)

	first := registerElevator(t, service, 1, 10)
	second := registerElevator(t, service, -3, 3)

	assert.Equal(t, domain.Elevator{ID: 1, MinLevel: 1, MaxLevel: 10}, first)
	assert.Greater(t, second.ID, first.ID)

	elevators, err := service.ListElevators(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Elevator{first, second}, elevators)
}

func TestRegisterElevatorRejectsInvertedRange(t *testing.T) {
	service := newMemoryService(t, nil)

	_, err := service.RegisterElevator(context.Background(), RegisterElevatorCommand{MinLevel: 5, MaxLevel: 1})
	require.ErrorIs(t, err, domain.ErrInvalidLevelRange)

	elevators, err := service.ListElevators(context.Background())
	require.NoError(t, err)
	assert.Empty(t, elevators)
}

func TestRegisterSingleLevelElevator(t *testing.T) {
	service := newMemoryService(t, nil)
	elevator := registerElevator(t, service, 4, 4)
	ctx := context.Background()

	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 4}))
	require.ErrorIs(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 5}), domain.ErrLevelOutOfRange)
}

func TestGetElevatorNotFound(t *testing.T) {
	service := newMemoryService(t, nil)

	_, err := service.GetElevator(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrElevatorNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestCallLifecycle(t *testing.T) {
	service := newMemoryService(t, nil)
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()

	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 1}))

	err := service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 1})
	require.ErrorIs(t, err, domain.ErrDemandExists)
	require.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 7}))

	demands, err := service.ListOpenDemands(ctx, elevator.ID)
	require.NoError(t, err)
	require.Len(t, demands, 2)
	assert.Equal(t, 1, demands[0].Level)
	assert.Equal(t, 7, demands[1].Level)
	assert.True(t, callTime.Equal(demands[0].CreatedAt))
}

func TestRequestCallOutOfRangeCreatesNothing(t *testing.T) {
	service := newMemoryService(t, nil)
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()

	for _, level := range []int{0, 11} {
		err := service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: level})
		require.ErrorIs(t, err, domain.ErrLevelOutOfRange)
		require.ErrorIs(t, err, domain.ErrOutOfRange)
	}

	status, err := service.GetStatus(ctx, elevator.ID)
	require.NoError(t, err)
	assert.Empty(t, status.OpenLevels())
}

func TestRequestCallUnknownElevator(t *testing.T) {
	service := newMemoryService(t, nil)

	err := service.RequestCall(context.Background(), CallCommand{ElevatorID: 1, Level: 1})
	require.ErrorIs(t, err, domain.ErrElevatorNotFound)
}

func TestReportArrivalFulfillsDemand(t *testing.T) {
	service := newMemoryService(t, nil)
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 1}))

	outcome, err := service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 1})
	require.NoError(t, err)
	assert.Equal(t, ArrivalAccepted, outcome)

	outcome, err = service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 1})
	require.NoError(t, err)
	assert.Equal(t, ArrivalNoop, outcome)

	var history []domain.HistoryEntry
	for entry, err := range service.ExportHistory(ctx) {
		require.NoError(t, err)
		history = append(history, entry)
	}
	require.Len(t, history, 1)
	assert.Equal(t, elevator.ID, history[0].ElevatorID)
	assert.Equal(t, 1, history[0].Level)
	assert.Equal(t, 2, history[0].WeekDay)
	assert.Equal(t, 8, history[0].Hour)
	assert.Equal(t, 1, history[0].Minute)
	assert.Equal(t, 0, history[0].Second)

	// The slot is open again after fulfilment.
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 1}))
}

func TestReportArrivalWithoutDemandIsNoop(t *testing.T) {
	service := newMemoryService(t, nil)
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()

	outcome, err := service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 3})
	require.NoError(t, err)
	assert.Equal(t, ArrivalNoop, outcome)

	outcome, err = service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 99})
	require.NoError(t, err)
	assert.Equal(t, ArrivalNoop, outcome)

	_, err = service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID + 1, Level: 3})
	require.ErrorIs(t, err, domain.ErrElevatorNotFound)
}

func TestConcurrentCallsOnOneSlot(t *testing.T) {
	service := newMemoryService(t, nil)
	elevator := registerElevator(t, service, 1, 10)

	const callers = 8
	var (
		wg   sync.WaitGroup
		errs = make([]error, callers)
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = service.RequestCall(context.Background(), CallCommand{ElevatorID: elevator.ID, Level: 5})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, domain.ErrDemandExists)
	}
	assert.Equal(t, 1, succeeded)
}

func TestGetStatusAll(t *testing.T) {
	service := newMemoryService(t, nil)
	first := registerElevator(t, service, 1, 10)
	second := registerElevator(t, service, 0, 3)
	ctx := context.Background()
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: first.ID, Level: 9}))
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: first.ID, Level: 2}))

	statuses, err := service.GetStatusAll(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, first, statuses[0].Elevator)
	assert.Equal(t, []int{2, 9}, statuses[0].OpenLevels())
	assert.Equal(t, second, statuses[1].Elevator)
	assert.Empty(t, statuses[1].OpenLevels())
}

func TestWriteDataset(t *testing.T) {
	service := newMemoryService(t, nil)
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 1}))
	_, err := service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, service.WriteDataset(ctx, &buf, "csv"))
	assert.Equal(t, "elevator_id,week_day,hour,minute,second,level\n1,2,8,1,0,1\n", buf.String())
}

func TestWriteDatasetUnsupportedFormatWritesNothing(t *testing.T) {
	service := newMemoryService(t, nil)

	var buf bytes.Buffer
	err := service.WriteDataset(context.Background(), &buf, "xlsx")
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
	assert.Equal(t, []string{"csv"}, service.DatasetFormats())
}

func TestDatasetFormatIsCaseSensitive(t *testing.T) {
	service := newMemoryService(t, nil)

	_, err := service.Dataset("CSV")
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = service.Dataset("csv")
	require.NoError(t, err)
}

func TestReportArrivalPublishesAfterCommit(t *testing.T) {
	publisher := mocks.NewMockHistoryPublisher(t)
	service := newMemoryService(t, publisher)
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 4}))

	publisher.EXPECT().
		Publish(mockAnyContext(), mock.MatchedBy(func(entry domain.HistoryEntry) bool {
			return entry.ElevatorID == elevator.ID && entry.Level == 4 && entry.ID != 0
		})).
		Return(nil).
		Once()

	outcome, err := service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 4})
	require.NoError(t, err)
	assert.Equal(t, ArrivalAccepted, outcome)

	// Noop arrivals publish nothing; the mock fails on an unexpected call.
	outcome, err = service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 4})
	require.NoError(t, err)
	assert.Equal(t, ArrivalNoop, outcome)
}

func TestReportArrivalIgnoresPublishFailure(t *testing.T) {
	publisher := mocks.NewMockHistoryPublisher(t)
	service := newMemoryService(t, publisher)
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 4}))

	publisher.EXPECT().Publish(mockAnyContext(), mock.Anything).Return(errors.New("broker down")).Once()

	outcome, err := service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 4})
	require.NoError(t, err)
	assert.Equal(t, ArrivalAccepted, outcome)

	demands, err := service.ListOpenDemands(ctx, elevator.ID)
	require.NoError(t, err)
	assert.Empty(t, demands)
}

func TestReportArrivalPublishFailureLogKeepsSeverity(t *testing.T) {
	var logs bytes.Buffer
	publisher := mocks.NewMockHistoryPublisher(t)
	publisher.EXPECT().Publish(mockAnyContext(), mock.Anything).Return(errors.New("broker down")).Once()

	service := NewService(memory.NewStore(), Options{
		Publisher: publisher,
		Location:  time.UTC,
		Logger:    slog.New(slog.NewJSONHandler(&logs, nil)),
	})
	elevator := registerElevator(t, service, 1, 10)
	ctx := context.Background()
	require.NoError(t, service.RequestCall(ctx, CallCommand{ElevatorID: elevator.ID, Level: 4}))

	_, err := service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 4})
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
	assert.Equal(t, "history_publish_failed", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.EqualValues(t, 4, record["floor"])
	assert.EqualValues(t, elevator.ID, record["elevator_id"])
}

// cancelOnCommitStore cancels the caller's context as soon as a commit lands.
type cancelOnCommitStore struct {
	ports.Store
	cancel context.CancelFunc
}

func (s cancelOnCommitStore) Begin(ctx context.Context) (ports.Tx, error) {
	tx, err := s.Store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return cancelOnCommitTx{Tx: tx, cancel: s.cancel}, nil
}

type cancelOnCommitTx struct {
	ports.Tx
	cancel context.CancelFunc
}

func (t cancelOnCommitTx) Commit() error {
	err := t.Tx.Commit()
	t.cancel()
	return err
}

func TestReportArrivalPublishesAfterCallerCancels(t *testing.T) {
	store := memory.NewStore()
	setup := NewService(store, Options{Location: time.UTC})
	elevator := registerElevator(t, setup, 1, 10)
	require.NoError(t, setup.RequestCall(context.Background(), CallCommand{ElevatorID: elevator.ID, Level: 6}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher := mocks.NewMockHistoryPublisher(t)
	publisher.EXPECT().
		Publish(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).
		Return(nil).
		Once()

	service := NewService(cancelOnCommitStore{Store: store, cancel: cancel}, Options{
		Publisher: publisher,
		Location:  time.UTC,
	})

	outcome, err := service.ReportArrival(ctx, ArrivalCommand{ElevatorID: elevator.ID, Level: 6})
	require.NoError(t, err)
	assert.Equal(t, ArrivalAccepted, outcome)
	require.Error(t, ctx.Err())
}
