package schedule

// Slots returns the ascending start minutes at which a service of the
// given duration fits inside the window without touching the lunch break
// or any busy interval.
//
// The walk steps in duration-sized strides from the window start. A lunch
// break splits the day into two segments generated independently; a
// candidate is never shifted to squeeze into the gap around lunch, so a
// short service that would fit inside the break is deliberately not
// offered.
func Slots(w WorkingWindow, duration int, busy []Interval) ([]int, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if w.End <= w.Start {
		return nil, nil
	}

	segments := [][2]int{{w.Start, w.End}}
	if w.Lunch != nil {
		segments = [][2]int{{w.Start, w.Lunch.Start}, {w.Lunch.End, w.End}}
	}

	var starts []int
	for _, seg := range segments {
		for t := seg[0]; t+duration <= seg[1]; t += duration {
			if Available(Interval{Start: t, End: t + duration}, busy) {
				starts = append(starts, t)
			}
		}
	}
	return starts, nil
}
