package schedule

import (
	"fmt"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/clock"
)

type ConflictType string

const (
	ConflictOutsideHours ConflictType = "outside_hours"
	ConflictLunch        ConflictType = "lunch_conflict"
)

// BookedSlot is the audit view of a scheduled appointment. The caller is
// responsible for pre-filtering: only status=scheduled rows, and for a
// weekly-schedule change only future dates falling on the target weekday.
type BookedSlot struct {
	AppointmentID string
	Date          time.Time
	Start         int
	Duration      int
}

type Conflict struct {
	AppointmentID string       `json:"appointment_id"`
	Type          ConflictType `json:"conflict_type"`
	Date          string       `json:"appointment_date"`
	Time          string       `json:"appointment_time"`
}

// AuditReport is the confirmation-dialog payload for an admin schedule
// edit. CanProceed is advisory: the auditor never blocks the change.
type AuditReport struct {
	HasConflicts   bool       `json:"has_conflicts"`
	Conflicts      []Conflict `json:"conflicts"`
	AffectedCount  int        `json:"affected_appointments_count"`
	CanProceed     bool       `json:"can_proceed"`
	Recommendation string     `json:"recommendation"`
}

// Audit checks each appointment against a proposed working window. One
// conflict entry is appended per violated condition, so an appointment
// that is both outside the new hours and inside the new lunch break
// appears twice. AffectedCount counts distinct appointments.
func Audit(proposed WorkingWindow, appts []BookedSlot) AuditReport {
	var conflicts []Conflict
	affected := map[string]struct{}{}

	for _, a := range appts {
		iv := Interval{Start: a.Start, End: a.Start + a.Duration}
		if iv.Start < proposed.Start || iv.End > proposed.End {
			conflicts = append(conflicts, newConflict(a, ConflictOutsideHours))
			affected[a.AppointmentID] = struct{}{}
		}
		if proposed.Lunch != nil && Overlaps(iv, *proposed.Lunch) {
			conflicts = append(conflicts, newConflict(a, ConflictLunch))
			affected[a.AppointmentID] = struct{}{}
		}
	}

	report := AuditReport{
		HasConflicts:  len(conflicts) > 0,
		Conflicts:     conflicts,
		AffectedCount: len(affected),
		CanProceed:    len(conflicts) == 0,
	}
	switch {
	case len(appts) == 0:
		report.Recommendation = "No existing appointments on the affected days; the change is safe to apply."
	case !report.HasConflicts:
		report.Recommendation = fmt.Sprintf("All %d existing appointment(s) fit within the proposed hours.", len(appts))
	default:
		report.Recommendation = fmt.Sprintf("%d appointment(s) would fall outside the proposed hours or overlap the lunch break; notify the affected patients before applying the change.", report.AffectedCount)
	}
	return report
}

func newConflict(a BookedSlot, t ConflictType) Conflict {
	hhmm, err := clock.MinutesToTime(a.Start)
	if err != nil {
		hhmm = fmt.Sprintf("%d", a.Start)
	}
	return Conflict{
		AppointmentID: a.AppointmentID,
		Type:          t,
		Date:          a.Date.Format(DateLayout),
		Time:          hhmm,
	}
}
