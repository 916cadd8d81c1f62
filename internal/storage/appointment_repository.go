package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clinicdesk/clinicdesk/internal/model"
	"github.com/clinicdesk/clinicdesk/internal/schedule"
	"github.com/clinicdesk/clinicdesk/libs/db"
)

type AppointmentRepository struct {
	pool *db.Pool
}

func NewAppointmentRepository(pool *db.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func (r *AppointmentRepository) Create(ctx context.Context, tx pgx.Tx, appt *model.Appointment) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments
			(specialist_id, service_id, patient_name, patient_email, patient_phone, date, start_minute, duration_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id::text
	`, appt.SpecialistID, appt.ServiceID, appt.PatientName, appt.PatientEmail, appt.PatientPhone,
		appt.Date, appt.StartMinute, appt.DurationMins, appt.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *AppointmentRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, specialistID, appointmentID string) (model.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT id::text, specialist_id::text, service_id::text, patient_name, patient_email, patient_phone,
			date, start_minute, duration_minutes, status, cancelled_at, COALESCE(cancellation_reason, ''), created_at
		FROM appointments
		WHERE id = $1 AND specialist_id = $2
		FOR UPDATE
	`, appointmentID, specialistID)
	return scanAppointment(row)
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, specialistID, appointmentID, status, reason string) error {
	var tag pgconn.CommandTag
	var err error
	if status == model.StatusCancelled {
		tag, err = tx.Exec(ctx, `
			UPDATE appointments
			SET status = $3,
				cancelled_at = now(),
				cancellation_reason = $4
			WHERE id = $1 AND specialist_id = $2
		`, appointmentID, specialistID, status, reason)
	} else {
		tag, err = tx.Exec(ctx, `
			UPDATE appointments
			SET status = $3
			WHERE id = $1 AND specialist_id = $2
		`, appointmentID, specialistID, status)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// BusyIntervals returns the occupied [start, start+duration) spans for
// scheduled appointments on one day. Cancelled, completed and no-show
// rows do not block the calendar.
func (r *AppointmentRepository) BusyIntervals(ctx context.Context, specialistID string, date time.Time) ([]schedule.Interval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_minute, duration_minutes
		FROM appointments
		WHERE specialist_id = $1
			AND date = $2
			AND status = 'scheduled'
		ORDER BY start_minute ASC
	`, specialistID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var busy []schedule.Interval
	for rows.Next() {
		var start, duration int
		if err := rows.Scan(&start, &duration); err != nil {
			return nil, err
		}
		busy = append(busy, schedule.Interval{Start: start, End: start + duration})
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return busy, nil
}

// ScheduledOnDate feeds the conflict audit for an exception covering one day.
func (r *AppointmentRepository) ScheduledOnDate(ctx context.Context, specialistID string, date time.Time) ([]schedule.BookedSlot, error) {
	return r.queryBookedSlots(ctx, `
		SELECT id::text, date, start_minute, duration_minutes
		FROM appointments
		WHERE specialist_id = $1
			AND date = $2
			AND status = 'scheduled'
		ORDER BY start_minute ASC
	`, specialistID, date)
}

// ScheduledByWeekdayFrom feeds the conflict audit for a weekly-schedule
// change: every scheduled appointment on the target weekday from the
// given day forward.
func (r *AppointmentRepository) ScheduledByWeekdayFrom(ctx context.Context, specialistID string, weekday int, from time.Time) ([]schedule.BookedSlot, error) {
	return r.queryBookedSlots(ctx, `
		SELECT id::text, date, start_minute, duration_minutes
		FROM appointments
		WHERE specialist_id = $1
			AND status = 'scheduled'
			AND date >= $3
			AND EXTRACT(DOW FROM date) = $2
		ORDER BY date ASC, start_minute ASC
	`, specialistID, weekday, from)
}

func (r *AppointmentRepository) queryBookedSlots(ctx context.Context, sql string, args ...any) ([]schedule.BookedSlot, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []schedule.BookedSlot
	for rows.Next() {
		var s schedule.BookedSlot
		if err := rows.Scan(&s.AppointmentID, &s.Date, &s.Start, &s.Duration); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return slots, nil
}

func (r *AppointmentRepository) ListOnDate(ctx context.Context, specialistID string, date time.Time) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, specialist_id::text, service_id::text, patient_name, patient_email, patient_phone,
			date, start_minute, duration_minutes, status, cancelled_at, COALESCE(cancellation_reason, ''), created_at
		FROM appointments
		WHERE specialist_id = $1 AND date = $2
		ORDER BY start_minute ASC
	`, specialistID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return appts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (model.Appointment, error) {
	var appt model.Appointment
	var cancelledAt *time.Time
	err := row.Scan(
		&appt.ID,
		&appt.SpecialistID,
		&appt.ServiceID,
		&appt.PatientName,
		&appt.PatientEmail,
		&appt.PatientPhone,
		&appt.Date,
		&appt.StartMinute,
		&appt.DurationMins,
		&appt.Status,
		&cancelledAt,
		&appt.CancelReason,
		&appt.CreatedAt,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	appt.CancelledAt = cancelledAt
	return appt, nil
}

// IsConflict reports whether an insert hit the slot uniqueness guard:
// the partial unique index on (specialist_id, date, start_minute) for
// non-cancelled rows, or an exclusion constraint if one is in place.
// This is the authoritative "slot just taken" signal; the in-process
// availability check is only a pre-check.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" || pgErr.Code == "23P01"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
