package model

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Appointment is one booked visit. Date is a UTC midnight day; the start
// is minutes since midnight on that day. Only scheduled appointments
// occupy time on the calendar.
type Appointment struct {
	ID           string
	SpecialistID string
	ServiceID    string
	PatientName  string
	PatientEmail string
	PatientPhone string
	Date         time.Time
	StartMinute  int
	DurationMins int
	Status       string
	CancelledAt  *time.Time
	CancelReason string
	CreatedAt    time.Time
}

func ValidStatusTransition(from, to string) bool {
	if from != StatusScheduled {
		return false
	}
	switch to {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
