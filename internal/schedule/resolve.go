package schedule

import "time"

const DateLayout = "2006-01-02"

// Closure blocks booking for an inclusive range of days (vacation,
// renovation). It wins over both exceptions and the weekly schedule.
type Closure struct {
	Start  time.Time
	End    time.Time
	Reason string
}

func (c Closure) Contains(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(c.Start)) && !d.After(DateOnly(c.End))
}

// Snapshot is the materialized schedule state for one specialist, loaded
// in a single read by the storage layer. Exceptions are keyed by the
// YYYY-MM-DD date they override; a weekday absent from Weekly is a day
// off.
type Snapshot struct {
	Weekly     map[time.Weekday]WorkingWindow
	Exceptions map[string]WorkingWindow
	Closures   []Closure
}

// Resolve picks the effective working window for a day. Precedence,
// highest first: an active closure blocks the day outright; a date
// exception replaces the weekly entry verbatim; otherwise the weekly
// entry applies. The second return is false when the day is not bookable.
func (s Snapshot) Resolve(day time.Time) (WorkingWindow, bool) {
	for _, c := range s.Closures {
		if c.Contains(day) {
			return WorkingWindow{}, false
		}
	}
	if w, ok := s.Exceptions[day.Format(DateLayout)]; ok {
		return w, true
	}
	w, ok := s.Weekly[day.Weekday()]
	return w, ok
}

func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
