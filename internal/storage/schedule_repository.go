package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clinicdesk/clinicdesk/internal/schedule"
	"github.com/clinicdesk/clinicdesk/libs/db"
)

type ScheduleRepository struct {
	pool *db.Pool
}

func NewScheduleRepository(pool *db.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// Begin starts a transaction so schedule mutations and their outbox
// events commit atomically.
func (r *ScheduleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

type Specialist struct {
	ID        string
	Name      string
	Specialty string
	IsActive  bool
	CreatedAt time.Time
}

func (r *ScheduleRepository) CreateSpecialist(ctx context.Context, name, specialty string) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO specialists (id, name, specialty)
		VALUES ($1, $2, $3)
	`, id, name, specialty)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ScheduleRepository) ListSpecialists(ctx context.Context, limit int) ([]Specialist, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, specialty, is_active, created_at
		FROM specialists
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Specialist
	for rows.Next() {
		var s Specialist
		if err := rows.Scan(&s.ID, &s.Name, &s.Specialty, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *ScheduleRepository) SpecialistExists(ctx context.Context, specialistID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM specialists WHERE id = $1 AND is_active)
	`, specialistID).Scan(&exists)
	return exists, err
}

type Service struct {
	ID           string
	Name         string
	DurationMins int
	Price        string
	Description  string
	CreatedAt    time.Time
}

func (r *ScheduleRepository) CreateService(ctx context.Context, name string, durationMinutes int, price, description string) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO services (id, name, duration_minutes, price, description)
		VALUES ($1, $2, $3, $4, $5)
	`, id, name, durationMinutes, price, description)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ScheduleRepository) ListServices(ctx context.Context, limit int) ([]Service, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, duration_minutes, price::text, description, created_at
		FROM services
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMins, &s.Price, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *ScheduleRepository) GetServiceDuration(ctx context.Context, serviceID string) (int, error) {
	var mins int
	err := r.pool.QueryRow(ctx, `
		SELECT duration_minutes
		FROM services
		WHERE id = $1
	`, serviceID).Scan(&mins)
	return mins, err
}

// WeeklyEntry is one weekday row of a specialist's recurring schedule.
// Weekday follows time.Weekday (0 = Sunday). A non-working weekday has
// no row at all; lunch columns are NULL when the day has no break.
type WeeklyEntry struct {
	SpecialistID string
	Weekday      int
	StartMinute  int
	EndMinute    int
	LunchStart   *int
	LunchEnd     *int
}

func (e WeeklyEntry) Window() schedule.WorkingWindow {
	w := schedule.WorkingWindow{Start: e.StartMinute, End: e.EndMinute}
	if e.LunchStart != nil && e.LunchEnd != nil {
		w.Lunch = &schedule.Interval{Start: *e.LunchStart, End: *e.LunchEnd}
	}
	return w
}

func (r *ScheduleRepository) ListWeekly(ctx context.Context, specialistID string) ([]WeeklyEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT specialist_id::text, weekday, start_minute, end_minute, lunch_start_minute, lunch_end_minute
		FROM weekly_schedules
		WHERE specialist_id = $1
		ORDER BY weekday ASC
	`, specialistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WeeklyEntry
	for rows.Next() {
		var e WeeklyEntry
		if err := rows.Scan(&e.SpecialistID, &e.Weekday, &e.StartMinute, &e.EndMinute, &e.LunchStart, &e.LunchEnd); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// ReplaceWeekly swaps the whole recurring schedule. Weekdays absent
// from entries become days off.
func (r *ScheduleRepository) ReplaceWeekly(ctx context.Context, tx pgx.Tx, specialistID string, entries []WeeklyEntry) error {
	if _, err := tx.Exec(ctx, `
		DELETE FROM weekly_schedules WHERE specialist_id = $1
	`, specialistID); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := tx.Exec(ctx, `
			INSERT INTO weekly_schedules (specialist_id, weekday, start_minute, end_minute, lunch_start_minute, lunch_end_minute)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, specialistID, e.Weekday, e.StartMinute, e.EndMinute, e.LunchStart, e.LunchEnd); err != nil {
			return err
		}
	}
	return nil
}

// ExceptionEntry overrides the weekly schedule for a single calendar day.
type ExceptionEntry struct {
	SpecialistID string
	Date         time.Time
	StartMinute  int
	EndMinute    int
	LunchStart   *int
	LunchEnd     *int
	Reason       string
}

func (e ExceptionEntry) Window() schedule.WorkingWindow {
	w := schedule.WorkingWindow{Start: e.StartMinute, End: e.EndMinute}
	if e.LunchStart != nil && e.LunchEnd != nil {
		w.Lunch = &schedule.Interval{Start: *e.LunchStart, End: *e.LunchEnd}
	}
	return w
}

func (r *ScheduleRepository) UpsertException(ctx context.Context, tx pgx.Tx, e ExceptionEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO schedule_exceptions (specialist_id, date, start_minute, end_minute, lunch_start_minute, lunch_end_minute, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (specialist_id, date) DO UPDATE
		SET start_minute = EXCLUDED.start_minute,
			end_minute = EXCLUDED.end_minute,
			lunch_start_minute = EXCLUDED.lunch_start_minute,
			lunch_end_minute = EXCLUDED.lunch_end_minute,
			reason = EXCLUDED.reason,
			updated_at = now()
	`, e.SpecialistID, e.Date, e.StartMinute, e.EndMinute, e.LunchStart, e.LunchEnd, e.Reason)
	return err
}

func (r *ScheduleRepository) ListExceptions(ctx context.Context, specialistID string, from time.Time) ([]ExceptionEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT specialist_id::text, date, start_minute, end_minute, lunch_start_minute, lunch_end_minute, COALESCE(reason, '')
		FROM schedule_exceptions
		WHERE specialist_id = $1 AND date >= $2
		ORDER BY date ASC
	`, specialistID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExceptionEntry
	for rows.Next() {
		var e ExceptionEntry
		if err := rows.Scan(&e.SpecialistID, &e.Date, &e.StartMinute, &e.EndMinute, &e.LunchStart, &e.LunchEnd, &e.Reason); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *ScheduleRepository) DeleteException(ctx context.Context, tx pgx.Tx, specialistID string, date time.Time) error {
	tag, err := tx.Exec(ctx, `
		DELETE FROM schedule_exceptions
		WHERE specialist_id = $1 AND date = $2
	`, specialistID, date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type ClosureEntry struct {
	ID           string
	SpecialistID string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
}

func (r *ScheduleRepository) CreateClosure(ctx context.Context, tx pgx.Tx, specialistID string, start, end time.Time, reason string) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO closures (id, specialist_id, start_date, end_date, reason)
		VALUES ($1, $2, $3, $4, $5)
	`, id, specialistID, start, end, reason)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ScheduleRepository) ListClosures(ctx context.Context, specialistID string, from time.Time) ([]ClosureEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, specialist_id::text, start_date, end_date, COALESCE(reason, '')
		FROM closures
		WHERE specialist_id = $1 AND end_date >= $2
		ORDER BY start_date ASC
	`, specialistID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ClosureEntry
	for rows.Next() {
		var c ClosureEntry
		if err := rows.Scan(&c.ID, &c.SpecialistID, &c.StartDate, &c.EndDate, &c.Reason); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *ScheduleRepository) DeleteClosure(ctx context.Context, tx pgx.Tx, specialistID, closureID string) error {
	tag, err := tx.Exec(ctx, `
		DELETE FROM closures
		WHERE id = $1 AND specialist_id = $2
	`, closureID, specialistID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// LoadSnapshot pulls everything needed to resolve a specialist's day:
// the full weekly grid, any exception for the date, and every closure
// covering it.
func (r *ScheduleRepository) LoadSnapshot(ctx context.Context, specialistID string, date time.Time) (schedule.Snapshot, error) {
	snap := schedule.Snapshot{
		Weekly:     make(map[time.Weekday]schedule.WorkingWindow),
		Exceptions: make(map[string]schedule.WorkingWindow),
	}

	weekly, err := r.ListWeekly(ctx, specialistID)
	if err != nil {
		return schedule.Snapshot{}, err
	}
	for _, e := range weekly {
		snap.Weekly[time.Weekday(e.Weekday)] = e.Window()
	}

	var exc ExceptionEntry
	err = r.pool.QueryRow(ctx, `
		SELECT specialist_id::text, date, start_minute, end_minute, lunch_start_minute, lunch_end_minute, COALESCE(reason, '')
		FROM schedule_exceptions
		WHERE specialist_id = $1 AND date = $2
	`, specialistID, date).Scan(&exc.SpecialistID, &exc.Date, &exc.StartMinute, &exc.EndMinute, &exc.LunchStart, &exc.LunchEnd, &exc.Reason)
	if err == nil {
		snap.Exceptions[date.Format(schedule.DateLayout)] = exc.Window()
	} else if err != pgx.ErrNoRows {
		return schedule.Snapshot{}, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT start_date, end_date, COALESCE(reason, '')
		FROM closures
		WHERE specialist_id = $1 AND start_date <= $2 AND end_date >= $2
	`, specialistID, date)
	if err != nil {
		return schedule.Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var c schedule.Closure
		if err := rows.Scan(&c.Start, &c.End, &c.Reason); err != nil {
			return schedule.Snapshot{}, err
		}
		snap.Closures = append(snap.Closures, c)
	}
	if rows.Err() != nil {
		return schedule.Snapshot{}, rows.Err()
	}
	return snap, nil
}
