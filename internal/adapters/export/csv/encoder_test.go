package csv

import (
	"bytes"
	"errors"
	"iter"
	"testing"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesOf(entries []domain.HistoryEntry, tail error) iter.Seq2[domain.HistoryEntry, error] {
	return func(yield func(domain.HistoryEntry, error) bool) {
		for _, entry := range entries {
			if !yield(entry, nil) {
				return
			}
		}
		if tail != nil {
			yield(domain.HistoryEntry{}, tail)
		}
	}
}

func TestEncodeWritesHeaderAndRows(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := NewEncoder().Encode(&buf, entriesOf([]domain.HistoryEntry{
		{ID: 1, ElevatorID: 1, Level: 1, WeekDay: 2, Hour: 8, Minute: 1, Second: 0},
		{ID: 2, ElevatorID: 3, Level: -2, WeekDay: 6, Hour: 23, Minute: 59, Second: 59},
	}, nil))
	require.NoError(t, err)

	assert.Equal(t,
		"elevator_id,week_day,hour,minute,second,level\n"+
			"1,2,8,1,0,1\n"+
			"3,6,23,59,59,-2\n",
		buf.String(),
	)
}

func TestEncodeEmptyHistoryWritesHeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewEncoder().Encode(&buf, entriesOf(nil, nil)))

	assert.Equal(t, "elevator_id,week_day,hour,minute,second,level\n", buf.String())
}

func TestEncodeStopsOnReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk gone")
	var buf bytes.Buffer
	err := NewEncoder().Encode(&buf, entriesOf([]domain.HistoryEntry{{ElevatorID: 1, Level: 4}}, boom))

	require.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "1,0,0,0,0,4\n")
}

func TestContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text/csv", NewEncoder().ContentType())
}
