package domain

import "time"

type HistoryEntryID int64

// HistoryEntry is a fulfilled demand with its request time split into local
// calendar fields, so demand can be grouped by any time heuristic with second
// precision.
type HistoryEntry struct {
	ID         HistoryEntryID
	ElevatorID ElevatorID
	Level      int
	WeekDay    int
	Hour       int
	Minute     int
	Second     int
}

type CalendarFields struct {
	WeekDay int
	Hour    int
	Minute  int
	Second  int
}

// Decompose converts t into loc and extracts the weekday (Monday=0) and the
// time of day. A nil loc means time.Local.
func Decompose(t time.Time, loc *time.Location) CalendarFields {
	if loc == nil {
		loc = time.Local
	}

	local := t.In(loc)
	return CalendarFields{
		WeekDay: isoWeekDay(local.Weekday()),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Second:  local.Second(),
	}
}

// NewHistoryEntry builds the history record for a fulfilled demand from the
// demand's original request timestamp.
func NewHistoryEntry(demand Demand, loc *time.Location) HistoryEntry {
	fields := Decompose(demand.CreatedAt, loc)
	return HistoryEntry{
		ElevatorID: demand.ElevatorID,
		Level:      demand.Level,
		WeekDay:    fields.WeekDay,
		Hour:       fields.Hour,
		Minute:     fields.Minute,
		Second:     fields.Second,
	}
}

func isoWeekDay(day time.Weekday) int {
	return (int(day) + 6) % 7
}
