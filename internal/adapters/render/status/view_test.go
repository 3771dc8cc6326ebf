package status

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/application"
	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderElevatorWithOpenLevels(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]application.ElevatorStatus{
		{
			Elevator: domain.Elevator{ID: 1, MinLevel: 1, MaxLevel: 6},
			OpenDemands: []domain.Demand{
				{ID: 1, ElevatorID: 1, Level: 2, CreatedAt: now.Add(-5 * time.Minute)},
				{ID: 2, ElevatorID: 1, Level: 5, CreatedAt: now.Add(-2 * time.Minute)},
			},
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Elevator Demand Ledger")
	assert.Contains(t, output, "elevators: 1")
	assert.Contains(t, output, "Elevator 1 (levels 1..6)")
	assert.Contains(t, output, "[2]")
	assert.Contains(t, output, "[5]")
	assert.NotContains(t, output, "[3]")
	assert.Contains(t, output, "open: 2, 5")
	assert.Contains(t, output, "oldest call: level 2, waiting 5 minutes")
}

func TestRenderIdleElevator(t *testing.T) {
	output, err := Render([]application.ElevatorStatus{
		{Elevator: domain.Elevator{ID: 3, MinLevel: -2, MaxLevel: 2}},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Elevator 3 (levels -2..2)")
	assert.Contains(t, output, "open: none")
	assert.NotContains(t, output, "oldest call")
}

func TestRenderTallShaftUsesBar(t *testing.T) {
	output, err := Render([]application.ElevatorStatus{
		{
			Elevator:    domain.Elevator{ID: 2, MinLevel: 0, MaxLevel: 99},
			OpenDemands: []domain.Demand{{ID: 1, ElevatorID: 2, Level: 50}},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "1/100 levels waiting")
	assert.NotContains(t, output, "[50]")
	assert.Contains(t, output, "open: 50")
}

func TestRenderNoElevators(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "elevators: 0")
	assert.Contains(t, output, "No elevators registered.")
}

func TestFormatWait(t *testing.T) {
	tests := []struct {
		wait time.Duration
		want string
	}{
		{wait: 30 * time.Second, want: "less than a minute"},
		{wait: time.Minute, want: "1 minute"},
		{wait: 90 * time.Minute, want: "1 hour"},
		{wait: 50 * time.Hour, want: "2 days"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatWait(tt.wait))
	}
}

func TestBuildFrameOrdersShaftsAndFindsLongestWait(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	f := buildFrame([]application.ElevatorStatus{
		{
			Elevator: domain.Elevator{ID: 2, MinLevel: 0, MaxLevel: 9},
			OpenDemands: []domain.Demand{
				{ID: 3, ElevatorID: 2, Level: 7, CreatedAt: now.Add(-20 * time.Minute)},
				{ID: 4, ElevatorID: 2, Level: 8},
			},
		},
		{
			Elevator:    domain.Elevator{ID: 1, MinLevel: 0, MaxLevel: 9},
			OpenDemands: []domain.Demand{{ID: 1, ElevatorID: 1, Level: 3, CreatedAt: now.Add(-time.Minute)}},
		},
	}, now)

	require.Len(t, f.elevators, 2)
	assert.Equal(t, domain.ElevatorID(1), f.elevators[0].elevator.ID)
	assert.Equal(t, domain.ElevatorID(2), f.elevators[1].elevator.ID)
	assert.Equal(t, 3, f.openCalls)

	require.NotNil(t, f.longest)
	assert.Equal(t, domain.ElevatorID(2), f.longest.elevator.ID)
	assert.Equal(t, 7, f.longest.oldest.Level)
	assert.Equal(t, 20*time.Minute, f.longest.wait)
}

func TestBuildFrameWithoutClockSkipsWaits(t *testing.T) {
	f := buildFrame([]application.ElevatorStatus{
		{
			Elevator:    domain.Elevator{ID: 1, MinLevel: 0, MaxLevel: 3},
			OpenDemands: []domain.Demand{{ID: 1, ElevatorID: 1, Level: 2, CreatedAt: time.Now()}},
		},
	}, time.Time{})

	assert.Nil(t, f.longest)
	assert.Nil(t, f.elevators[0].oldest)
	assert.Equal(t, 1, f.openCalls)
}

func TestRenderSummaryAcrossElevators(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]application.ElevatorStatus{
		{
			Elevator:    domain.Elevator{ID: 4, MinLevel: 0, MaxLevel: 5},
			OpenDemands: []domain.Demand{{ID: 1, ElevatorID: 4, Level: 5, CreatedAt: now.Add(-2 * time.Hour)}},
		},
		{Elevator: domain.Elevator{ID: 1, MinLevel: 0, MaxLevel: 5}},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "elevators: 2, open calls: 1")
	assert.Contains(t, output, "longest wait: elevator 4, level 5")
	assert.Less(t, strings.Index(output, "Elevator 1 (levels"), strings.Index(output, "Elevator 4 (levels"))
}
