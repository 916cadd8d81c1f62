package schedule

import (
	"testing"
	"time"
)

func TestAudit_OutsideHours(t *testing.T) {
	// Appointment 11:00 for 45 minutes vs proposed window 09:00-10:30.
	appts := []BookedSlot{
		{AppointmentID: "a1", Date: day(2026, time.February, 2), Start: 660, Duration: 45},
	}

	report := Audit(WorkingWindow{Start: 540, End: 630}, appts)
	if !report.HasConflicts || report.CanProceed {
		t.Fatalf("expected conflicts, got %+v", report)
	}
	if len(report.Conflicts) != 1 {
		t.Fatalf("expected exactly 1 conflict, got %d", len(report.Conflicts))
	}
	c := report.Conflicts[0]
	if c.Type != ConflictOutsideHours {
		t.Fatalf("expected outside_hours, got %s", c.Type)
	}
	if c.Date != "2026-02-02" || c.Time != "11:00" {
		t.Fatalf("conflict carries wrong wire strings: %+v", c)
	}
	if report.AffectedCount != 1 {
		t.Fatalf("expected 1 affected appointment, got %d", report.AffectedCount)
	}
}

func TestAudit_LunchConflict(t *testing.T) {
	// Appointment 13:30 for 45 minutes vs proposed lunch 13:00-14:30.
	appts := []BookedSlot{
		{AppointmentID: "a1", Date: day(2026, time.February, 2), Start: 810, Duration: 45},
	}

	report := Audit(WorkingWindow{Start: 540, End: 1080, Lunch: &Interval{Start: 780, End: 870}}, appts)
	if !report.HasConflicts {
		t.Fatal("expected a lunch conflict")
	}
	found := false
	for _, c := range report.Conflicts {
		if c.Type == ConflictLunch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one lunch_conflict entry, got %+v", report.Conflicts)
	}
}

func TestAudit_BothConditionsProduceTwoEntries(t *testing.T) {
	// 08:00 appointment vs a window starting 08:30 whose lunch also
	// covers it: flagged once per violated condition, not deduplicated.
	appts := []BookedSlot{
		{AppointmentID: "a1", Date: day(2026, time.February, 2), Start: 480, Duration: 60},
	}

	report := Audit(WorkingWindow{Start: 510, End: 1020, Lunch: &Interval{Start: 510, End: 570}}, appts)
	if len(report.Conflicts) != 2 {
		t.Fatalf("expected 2 conflict entries for one appointment, got %d", len(report.Conflicts))
	}
	if report.AffectedCount != 1 {
		t.Fatalf("expected AffectedCount 1, got %d", report.AffectedCount)
	}
}

func TestAudit_NoCandidates(t *testing.T) {
	report := Audit(WorkingWindow{Start: 540, End: 1020}, nil)
	if report.HasConflicts || !report.CanProceed {
		t.Fatalf("expected clean report, got %+v", report)
	}
	if report.Recommendation == "" {
		t.Fatal("expected a recommendation for the no-appointments case")
	}
	noneRec := report.Recommendation

	// Candidates that all fit must produce a different message.
	fits := []BookedSlot{
		{AppointmentID: "a1", Date: day(2026, time.February, 2), Start: 600, Duration: 30},
	}
	clean := Audit(WorkingWindow{Start: 540, End: 1020}, fits)
	if clean.HasConflicts {
		t.Fatalf("expected no conflicts, got %+v", clean)
	}
	if clean.Recommendation == noneRec {
		t.Fatal("no-appointments and no-conflicts cases must carry distinct recommendations")
	}
}

func TestAudit_BackToBackWithLunchIsClean(t *testing.T) {
	// Ends exactly when lunch starts: legal.
	appts := []BookedSlot{
		{AppointmentID: "a1", Date: day(2026, time.February, 2), Start: 765, Duration: 45},
	}
	report := Audit(WorkingWindow{Start: 540, End: 1080, Lunch: &Interval{Start: 810, End: 870}}, appts)
	if report.HasConflicts {
		t.Fatalf("appointment touching lunch start must not conflict: %+v", report.Conflicts)
	}
}
