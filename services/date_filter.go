package services

import "time"

// DateFilter selects a window of log entries: a single calendar day, an
// explicit day range, or a rolling "last N days" window. It replaces the
// ad-hoc branching on whichever query parameters happen to be present;
// Bounds resolves the filter exactly once into an inclusive [start, end]
// pair in UTC before anything reaches the store.
type DateFilter struct {
	kind       int
	day        time.Time
	start, end time.Time
	days       int
}

const (
	filterExactDay = iota + 1
	filterRange
	filterRollingWindow
)

// ExactDay matches entries on one calendar day.
func ExactDay(day time.Time) DateFilter {
	return DateFilter{kind: filterExactDay, day: day}
}

// Between matches entries between two calendar days, both inclusive.
func Between(start, end time.Time) DateFilter {
	return DateFilter{kind: filterRange, start: start, end: end}
}

// LastNDays matches entries from the start of the day N days ago up to now.
func LastNDays(days int) DateFilter {
	return DateFilter{kind: filterRollingWindow, days: days}
}

func (f DateFilter) IsZero() bool { return f.kind == 0 }

func (f DateFilter) Bounds(now time.Time) (time.Time, time.Time) {
	switch f.kind {
	case filterExactDay:
		return dayStart(f.day), dayEnd(f.day)
	case filterRange:
		return dayStart(f.start), dayEnd(f.end)
	case filterRollingWindow:
		return dayStart(now.AddDate(0, 0, -f.days)), now.UTC()
	}
	return time.Time{}, time.Time{}
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayEnd(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
