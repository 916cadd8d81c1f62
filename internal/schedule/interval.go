// Package schedule holds the pure scheduling core: interval overlap
// checks, slot generation, per-day schedule resolution and the conflict
// audit for proposed schedule changes. Everything here operates on
// fully-materialized inputs supplied by the storage layer and performs
// no I/O.
package schedule

// Interval is a half-open [Start, End) span in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether the proposed interval shares any point in time
// with an occupied one. Touching endpoints do not overlap: back-to-back
// bookings are legal.
func Overlaps(proposed, occupied Interval) bool {
	if occupied.Start <= proposed.Start && proposed.Start < occupied.End {
		return true
	}
	if occupied.Start < proposed.End && proposed.End <= occupied.End {
		return true
	}
	return proposed.Start <= occupied.Start && proposed.End >= occupied.End
}

// Available reports whether the proposed interval overlaps none of the
// busy intervals. An empty busy list means available.
func Available(proposed Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(proposed, b) {
			return false
		}
	}
	return true
}
