// Package csv writes the history log as a comma separated dataset.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
)

const (
	Format      = "csv"
	ContentType = "text/csv"
)

// Header is the fixed column order of every exported dataset.
var Header = []string{"elevator_id", "week_day", "hour", "minute", "second", "level"}

type Encoder struct{}

var _ ports.DatasetEncoder = Encoder{}

func NewEncoder() Encoder {
	return Encoder{}
}

func (Encoder) ContentType() string {
	return ContentType
}

func (Encoder) Encode(w io.Writer, entries iter.Seq2[domain.HistoryEntry, error]) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(Header))
	for entry, err := range entries {
		if err != nil {
			writer.Flush()
			return fmt.Errorf("read history: %w", err)
		}

		record[0] = strconv.FormatInt(int64(entry.ElevatorID), 10)
		record[1] = strconv.Itoa(entry.WeekDay)
		record[2] = strconv.Itoa(entry.Hour)
		record[3] = strconv.Itoa(entry.Minute)
		record[4] = strconv.Itoa(entry.Second)
		record[5] = strconv.Itoa(entry.Level)

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
