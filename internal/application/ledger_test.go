package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txFixture struct {
	store   *mocks.MockStore
	tx      *mocks.MockTx
	clock   *mocks.MockClock
	service *Service
}

func newTxFixture(t *testing.T) txFixture {
	t.Helper()

	store := mocks.NewMockStore(t)
	tx := mocks.NewMockTx(t)
	clock := mocks.NewMockClock(t)
	store.EXPECT().Begin(mockAnyContext()).Return(tx, nil)

	return txFixture{
		store:   store,
		tx:      tx,
		clock:   clock,
		service: NewService(store, Options{Clock: clock, Location: time.UTC}),
	}
}

var ledgerElevator = domain.Elevator{ID: 1, MinLevel: 1, MaxLevel: 10}

func TestRequestCallCommitsOnSuccess(t *testing.T) {
	f := newTxFixture(t)
	f.clock.EXPECT().Now().Return(callTime)
	f.tx.EXPECT().GetElevator(mockAnyContext(), ledgerElevator.ID).Return(ledgerElevator, nil)
	f.tx.EXPECT().InsertDemand(mockAnyContext(), domain.Demand{ElevatorID: 1, Level: 3, CreatedAt: callTime}).
		Return(domain.Demand{ID: 1, ElevatorID: 1, Level: 3, CreatedAt: callTime}, nil)
	f.tx.EXPECT().Commit().Return(nil).Once()

	require.NoError(t, f.service.RequestCall(context.Background(), CallCommand{ElevatorID: 1, Level: 3}))
	f.tx.AssertNotCalled(t, "Rollback")
}

func TestRequestCallRollsBackOnConflict(t *testing.T) {
	f := newTxFixture(t)
	f.clock.EXPECT().Now().Return(callTime)
	f.tx.EXPECT().GetElevator(mockAnyContext(), ledgerElevator.ID).Return(ledgerElevator, nil)
	f.tx.EXPECT().InsertDemand(mockAnyContext(), mock.Anything).Return(domain.Demand{}, domain.ErrDemandExists)
	f.tx.EXPECT().Rollback().Return(nil).Once()

	err := f.service.RequestCall(context.Background(), CallCommand{ElevatorID: 1, Level: 3})
	require.ErrorIs(t, err, domain.ErrDemandExists)
	f.tx.AssertNotCalled(t, "Commit")
}

func TestRequestCallRollsBackOutOfRangeBeforeInsert(t *testing.T) {
	f := newTxFixture(t)
	f.tx.EXPECT().GetElevator(mockAnyContext(), ledgerElevator.ID).Return(ledgerElevator, nil)
	f.tx.EXPECT().Rollback().Return(nil).Once()

	err := f.service.RequestCall(context.Background(), CallCommand{ElevatorID: 1, Level: 0})
	require.ErrorIs(t, err, domain.ErrLevelOutOfRange)
	f.tx.AssertNotCalled(t, "InsertDemand", mock.Anything, mock.Anything)
	f.tx.AssertNotCalled(t, "Commit")
}

func TestReportArrivalRollsBackWhenDeleteFails(t *testing.T) {
	f := newTxFixture(t)
	demand := domain.Demand{ID: 7, ElevatorID: 1, Level: 3, CreatedAt: callTime}
	deleteErr := errors.New("disk full")

	f.tx.EXPECT().GetElevator(mockAnyContext(), ledgerElevator.ID).Return(ledgerElevator, nil)
	f.tx.EXPECT().FindDemand(mockAnyContext(), domain.Slot{ElevatorID: 1, Level: 3}).Return(demand, nil)
	f.tx.EXPECT().AppendHistory(mockAnyContext(), domain.NewHistoryEntry(demand, time.UTC)).
		Return(domain.HistoryEntry{ID: 1, ElevatorID: 1, Level: 3}, nil)
	f.tx.EXPECT().DeleteDemand(mockAnyContext(), demand.ID).Return(deleteErr)
	f.tx.EXPECT().Rollback().Return(nil).Once()

	outcome, err := f.service.ReportArrival(context.Background(), ArrivalCommand{ElevatorID: 1, Level: 3})
	require.ErrorIs(t, err, deleteErr)
	assert.Empty(t, outcome)
	f.tx.AssertNotCalled(t, "Commit")
}

func TestReportArrivalNoopCommitsReadOnlyTransaction(t *testing.T) {
	f := newTxFixture(t)
	f.tx.EXPECT().GetElevator(mockAnyContext(), ledgerElevator.ID).Return(ledgerElevator, nil)
	f.tx.EXPECT().FindDemand(mockAnyContext(), domain.Slot{ElevatorID: 1, Level: 3}).Return(domain.Demand{}, domain.ErrDemandNotFound)
	f.tx.EXPECT().Commit().Return(nil).Once()

	outcome, err := f.service.ReportArrival(context.Background(), ArrivalCommand{ElevatorID: 1, Level: 3})
	require.NoError(t, err)
	assert.Equal(t, ArrivalNoop, outcome)
}

func TestRollbackFailureIsJoined(t *testing.T) {
	f := newTxFixture(t)
	rollbackErr := errors.New("connection reset")
	f.tx.EXPECT().GetElevator(mockAnyContext(), domain.ElevatorID(9)).Return(domain.Elevator{}, domain.ErrElevatorNotFound)
	f.tx.EXPECT().Rollback().Return(rollbackErr).Once()

	err := f.service.RequestCall(context.Background(), CallCommand{ElevatorID: 9, Level: 1})
	require.ErrorIs(t, err, domain.ErrElevatorNotFound)
	require.ErrorIs(t, err, rollbackErr)
}

func TestCommitFailureIsReported(t *testing.T) {
	f := newTxFixture(t)
	commitErr := errors.New("database is locked")
	f.tx.EXPECT().CreateElevator(mockAnyContext(), domain.Elevator{MinLevel: 1, MaxLevel: 2}).
		Return(domain.Elevator{ID: 1, MinLevel: 1, MaxLevel: 2}, nil)
	f.tx.EXPECT().Commit().Return(commitErr).Once()

	_, err := f.service.RegisterElevator(context.Background(), RegisterElevatorCommand{MinLevel: 1, MaxLevel: 2})
	require.ErrorIs(t, err, commitErr)
	f.tx.AssertNotCalled(t, "Rollback")
}

func TestBeginFailureSkipsTransaction(t *testing.T) {
	store := mocks.NewMockStore(t)
	beginErr := errors.New("store closed")
	store.EXPECT().Begin(mockAnyContext()).Return(nil, beginErr)
	service := NewService(store, Options{})

	_, err := service.ListElevators(context.Background())
	require.ErrorIs(t, err, beginErr)
}

func TestPanicInTransactionRollsBack(t *testing.T) {
	f := newTxFixture(t)
	f.tx.EXPECT().ListElevators(mockAnyContext()).Run(func(context.Context) { panic("boom") })
	f.tx.EXPECT().Rollback().Return(nil).Once()

	assert.Panics(t, func() {
		_, _ = f.service.ListElevators(context.Background())
	})
}
