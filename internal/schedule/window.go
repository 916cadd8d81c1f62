package schedule

import (
	"errors"

	"github.com/clinicdesk/clinicdesk/internal/clock"
)

var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidWindow   = errors.New("invalid working window")
)

// WorkingWindow is the bookable envelope for one calendar day. Lunch is
// optional; when present it must sit fully inside [Start, End).
type WorkingWindow struct {
	Start int
	End   int
	Lunch *Interval
}

func (w WorkingWindow) Validate() error {
	if w.Start < 0 || w.End > clock.MinutesPerDay || w.End <= w.Start {
		return ErrInvalidWindow
	}
	if w.Lunch != nil {
		l := *w.Lunch
		if l.End <= l.Start || l.Start < w.Start || l.End > w.End {
			return ErrInvalidWindow
		}
	}
	return nil
}
