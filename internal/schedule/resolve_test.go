package schedule

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_WeeklyEntry(t *testing.T) {
	snap := Snapshot{
		Weekly: map[time.Weekday]WorkingWindow{
			time.Monday: {Start: 540, End: 1020, Lunch: &Interval{Start: 780, End: 840}},
		},
	}

	// 2026-02-02 is a Monday.
	w, ok := snap.Resolve(day(2026, time.February, 2))
	if !ok {
		t.Fatal("expected Monday to be bookable")
	}
	if w.Start != 540 || w.End != 1020 {
		t.Fatalf("unexpected window %+v", w)
	}

	// Tuesday has no entry: day off.
	if _, ok := snap.Resolve(day(2026, time.February, 3)); ok {
		t.Fatal("expected Tuesday to be blocked")
	}
}

func TestResolve_ExceptionReplacesWeekly(t *testing.T) {
	snap := Snapshot{
		Weekly: map[time.Weekday]WorkingWindow{
			time.Monday: {Start: 540, End: 1020, Lunch: &Interval{Start: 780, End: 840}},
		},
		Exceptions: map[string]WorkingWindow{
			"2026-02-02": {Start: 600, End: 840},
		},
	}

	w, ok := snap.Resolve(day(2026, time.February, 2))
	if !ok {
		t.Fatal("expected exception day to be bookable")
	}
	// The exception replaces the weekly entry outright, lunch included.
	if w.Start != 600 || w.End != 840 || w.Lunch != nil {
		t.Fatalf("exception not applied verbatim: %+v", w)
	}
}

func TestResolve_ClosureWinsOverEverything(t *testing.T) {
	snap := Snapshot{
		Weekly: map[time.Weekday]WorkingWindow{
			time.Monday: {Start: 540, End: 1020},
		},
		Exceptions: map[string]WorkingWindow{
			"2026-02-02": {Start: 600, End: 840},
		},
		Closures: []Closure{
			{Start: day(2026, time.February, 1), End: day(2026, time.February, 7), Reason: "vacation"},
		},
	}

	if _, ok := snap.Resolve(day(2026, time.February, 2)); ok {
		t.Fatal("closure must block the day despite exception and weekly entry")
	}
}

func TestClosure_InclusiveBounds(t *testing.T) {
	c := Closure{Start: day(2026, time.March, 10), End: day(2026, time.March, 12)}

	if !c.Contains(day(2026, time.March, 10)) {
		t.Fatal("closure start date must be blocked")
	}
	if !c.Contains(day(2026, time.March, 12)) {
		t.Fatal("closure end date must be blocked")
	}
	if c.Contains(day(2026, time.March, 13)) {
		t.Fatal("day after closure must not be blocked")
	}
}
