package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clinicdesk/clinicdesk/internal/clock"
	"github.com/clinicdesk/clinicdesk/internal/outbox"
	"github.com/clinicdesk/clinicdesk/internal/schedule"
	"github.com/clinicdesk/clinicdesk/internal/storage"
)

type ScheduleHandler struct {
	schedules  *storage.ScheduleRepository
	appts      *storage.AppointmentRepository
	outboxRepo *outbox.Repository
	logger     *slog.Logger
	now        func() time.Time
}

func NewScheduleHandler(schedules *storage.ScheduleRepository, appts *storage.AppointmentRepository, outboxRepo *outbox.Repository, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		schedules:  schedules,
		appts:      appts,
		outboxRepo: outboxRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type dayHours struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start,omitempty"`
	LunchEnd   string `json:"lunch_end,omitempty"`
}

type weeklyRequest struct {
	SpecialistID string     `json:"specialist_id"`
	Days         []dayHours `json:"days"`
}

type dayAudit struct {
	Weekday int                  `json:"weekday"`
	Audit   schedule.AuditReport `json:"audit"`
}

type weeklyResponse struct {
	Applied bool       `json:"applied"`
	Days    []dayAudit `json:"days"`
}

type exceptionRequest struct {
	SpecialistID string `json:"specialist_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	LunchStart   string `json:"lunch_start,omitempty"`
	LunchEnd     string `json:"lunch_end,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

type exceptionResponse struct {
	Applied bool                 `json:"applied"`
	Audit   schedule.AuditReport `json:"audit"`
}

type closureRequest struct {
	SpecialistID string `json:"specialist_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason,omitempty"`
}

// windowFromStrings builds a validated working window from wire-format
// clock strings. Lunch fields come as a pair or not at all.
func windowFromStrings(startStr, endStr, lunchStartStr, lunchEndStr string) (schedule.WorkingWindow, error) {
	start, err := clock.TimeToMinutes(strings.TrimSpace(startStr))
	if err != nil {
		return schedule.WorkingWindow{}, err
	}
	end, err := clock.TimeToMinutes(strings.TrimSpace(endStr))
	if err != nil {
		return schedule.WorkingWindow{}, err
	}
	w := schedule.WorkingWindow{Start: start, End: end}

	lunchStartStr = strings.TrimSpace(lunchStartStr)
	lunchEndStr = strings.TrimSpace(lunchEndStr)
	if (lunchStartStr == "") != (lunchEndStr == "") {
		return schedule.WorkingWindow{}, errors.New("lunch_start and lunch_end must be set together")
	}
	if lunchStartStr != "" {
		ls, err := clock.TimeToMinutes(lunchStartStr)
		if err != nil {
			return schedule.WorkingWindow{}, err
		}
		le, err := clock.TimeToMinutes(lunchEndStr)
		if err != nil {
			return schedule.WorkingWindow{}, err
		}
		w.Lunch = &schedule.Interval{Start: ls, End: le}
	}
	if err := w.Validate(); err != nil {
		return schedule.WorkingWindow{}, err
	}
	return w, nil
}

func weeklyEntryFromWindow(specialistID string, weekday int, w schedule.WorkingWindow) storage.WeeklyEntry {
	e := storage.WeeklyEntry{
		SpecialistID: specialistID,
		Weekday:      weekday,
		StartMinute:  w.Start,
		EndMinute:    w.End,
	}
	if w.Lunch != nil {
		ls, le := w.Lunch.Start, w.Lunch.End
		e.LunchStart = &ls
		e.LunchEnd = &le
	}
	return e
}

// Weekly serves the recurring schedule: GET returns it, PUT replaces it.
// The PUT response embeds a per-weekday conflict audit over future
// scheduled appointments; conflicts never block the change.
func (h *ScheduleHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listWeekly(w, r)
	case http.MethodPut:
		h.replaceWeekly(w, r, true)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ValidateWeekly is the dry-run counterpart of PUT: audit only, no write.
func (h *ScheduleHandler) ValidateWeekly(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.replaceWeekly(w, r, false)
}

func (h *ScheduleHandler) listWeekly(w http.ResponseWriter, r *http.Request) {
	specialistID := strings.TrimSpace(r.URL.Query().Get("specialist_id"))
	if specialistID == "" {
		http.Error(w, "specialist_id required", http.StatusBadRequest)
		return
	}
	entries, err := h.schedules.ListWeekly(r.Context(), specialistID)
	if err != nil {
		http.Error(w, "failed to list schedule", http.StatusInternalServerError)
		return
	}
	days := make([]dayHours, 0, len(entries))
	for _, e := range entries {
		d := dayHours{Weekday: e.Weekday}
		if hhmm, err := clock.MinutesToTime(e.StartMinute); err == nil {
			d.StartTime = hhmm
		}
		if hhmm, err := clock.MinutesToTime(e.EndMinute); err == nil {
			d.EndTime = hhmm
		}
		if e.LunchStart != nil && e.LunchEnd != nil {
			if hhmm, err := clock.MinutesToTime(*e.LunchStart); err == nil {
				d.LunchStart = hhmm
			}
			if hhmm, err := clock.MinutesToTime(*e.LunchEnd); err == nil {
				d.LunchEnd = hhmm
			}
		}
		days = append(days, d)
	}
	writeJSON(w, http.StatusOK, days)
}

func (h *ScheduleHandler) replaceWeekly(w http.ResponseWriter, r *http.Request, apply bool) {
	var req weeklyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SpecialistID = strings.TrimSpace(req.SpecialistID)
	if req.SpecialistID == "" {
		http.Error(w, "specialist_id required", http.StatusBadRequest)
		return
	}

	seen := make(map[int]bool, len(req.Days))
	entries := make([]storage.WeeklyEntry, 0, len(req.Days))
	windows := make(map[int]schedule.WorkingWindow, len(req.Days))
	for _, d := range req.Days {
		if d.Weekday < 0 || d.Weekday > 6 {
			http.Error(w, "weekday must be 0-6", http.StatusBadRequest)
			return
		}
		if seen[d.Weekday] {
			http.Error(w, "duplicate weekday", http.StatusBadRequest)
			return
		}
		seen[d.Weekday] = true
		win, err := windowFromStrings(d.StartTime, d.EndTime, d.LunchStart, d.LunchEnd)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		entries = append(entries, weeklyEntryFromWindow(req.SpecialistID, d.Weekday, win))
		windows[d.Weekday] = win
	}

	ctx := r.Context()
	exists, err := h.schedules.SpecialistExists(ctx, req.SpecialistID)
	if err != nil {
		http.Error(w, "failed to load specialist", http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "specialist not found", http.StatusNotFound)
		return
	}

	today := schedule.DateOnly(h.now())
	audits := make([]dayAudit, 0, len(req.Days))
	for _, d := range req.Days {
		booked, err := h.appts.ScheduledByWeekdayFrom(ctx, req.SpecialistID, d.Weekday, today)
		if err != nil {
			http.Error(w, "failed to load appointments", http.StatusInternalServerError)
			return
		}
		audits = append(audits, dayAudit{Weekday: d.Weekday, Audit: schedule.Audit(windows[d.Weekday], booked)})
	}

	if !apply {
		writeJSON(w, http.StatusOK, weeklyResponse{Applied: false, Days: audits})
		return
	}

	tx, err := h.schedules.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.schedules.ReplaceWeekly(ctx, tx, req.SpecialistID, entries); err != nil {
		http.Error(w, "failed to update schedule", http.StatusInternalServerError)
		return
	}
	if err := h.emitScheduleUpdated(ctx, tx, req.SpecialistID, "weekly", ""); err != nil {
		h.logger.Error("outbox insert failed", "err", err, "specialist_id", req.SpecialistID)
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, weeklyResponse{Applied: true, Days: audits})
}

// Exceptions serves single-day overrides: GET lists upcoming ones, POST
// upserts one (with a conflict audit over that day's appointments),
// DELETE removes one.
func (h *ScheduleHandler) Exceptions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listExceptions(w, r)
	case http.MethodPost:
		h.upsertException(w, r, true)
	case http.MethodDelete:
		h.deleteException(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ScheduleHandler) ValidateException(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.upsertException(w, r, false)
}

func (h *ScheduleHandler) listExceptions(w http.ResponseWriter, r *http.Request) {
	specialistID := strings.TrimSpace(r.URL.Query().Get("specialist_id"))
	if specialistID == "" {
		http.Error(w, "specialist_id required", http.StatusBadRequest)
		return
	}
	entries, err := h.schedules.ListExceptions(r.Context(), specialistID, schedule.DateOnly(h.now()))
	if err != nil {
		http.Error(w, "failed to list exceptions", http.StatusInternalServerError)
		return
	}
	items := make([]exceptionRequest, 0, len(entries))
	for _, e := range entries {
		item := exceptionRequest{
			SpecialistID: e.SpecialistID,
			Date:         e.Date.Format(schedule.DateLayout),
			Reason:         e.Reason,
		}
		if hhmm, err := clock.MinutesToTime(e.StartMinute); err == nil {
			item.StartTime = hhmm
		}
		if hhmm, err := clock.MinutesToTime(e.EndMinute); err == nil {
			item.EndTime = hhmm
		}
		if e.LunchStart != nil && e.LunchEnd != nil {
			if hhmm, err := clock.MinutesToTime(*e.LunchStart); err == nil {
				item.LunchStart = hhmm
			}
			if hhmm, err := clock.MinutesToTime(*e.LunchEnd); err == nil {
				item.LunchEnd = hhmm
			}
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ScheduleHandler) upsertException(w http.ResponseWriter, r *http.Request, apply bool) {
	var req exceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SpecialistID = strings.TrimSpace(req.SpecialistID)
	if req.SpecialistID == "" {
		http.Error(w, "specialist_id required", http.StatusBadRequest)
		return
	}
	day, err := time.ParseInLocation(schedule.DateLayout, strings.TrimSpace(req.Date), time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	win, err := windowFromStrings(req.StartTime, req.EndTime, req.LunchStart, req.LunchEnd)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	booked, err := h.appts.ScheduledOnDate(ctx, req.SpecialistID, day)
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}
	report := schedule.Audit(win, booked)

	if !apply {
		writeJSON(w, http.StatusOK, exceptionResponse{Applied: false, Audit: report})
		return
	}

	entry := storage.ExceptionEntry{
		SpecialistID: req.SpecialistID,
		Date:         day,
		StartMinute:  win.Start,
		EndMinute:    win.End,
		Reason:         strings.TrimSpace(req.Reason),
	}
	if win.Lunch != nil {
		ls, le := win.Lunch.Start, win.Lunch.End
		entry.LunchStart = &ls
		entry.LunchEnd = &le
	}

	tx, err := h.schedules.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.schedules.UpsertException(ctx, tx, entry); err != nil {
		http.Error(w, "failed to save exception", http.StatusInternalServerError)
		return
	}
	if err := h.emitScheduleUpdated(ctx, tx, req.SpecialistID, "exception", req.Date); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, exceptionResponse{Applied: true, Audit: report})
}

func (h *ScheduleHandler) deleteException(w http.ResponseWriter, r *http.Request) {
	specialistID := strings.TrimSpace(r.URL.Query().Get("specialist_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if specialistID == "" || dateStr == "" {
		http.Error(w, "specialist_id and date are required", http.StatusBadRequest)
		return
	}
	day, err := time.ParseInLocation(schedule.DateLayout, dateStr, time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.schedules.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.schedules.DeleteException(ctx, tx, specialistID, day); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "exception not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete exception", http.StatusInternalServerError)
		return
	}
	if err := h.emitScheduleUpdated(ctx, tx, specialistID, "exception_removed", dateStr); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Closures serves vacation/renovation blocks: GET lists current and
// upcoming ones, POST creates one, DELETE removes one.
func (h *ScheduleHandler) Closures(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listClosures(w, r)
	case http.MethodPost:
		h.createClosure(w, r)
	case http.MethodDelete:
		h.deleteClosure(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type closureItem struct {
	ClosureID    string `json:"closure_id"`
	SpecialistID string `json:"specialist_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason,omitempty"`
}

func (h *ScheduleHandler) listClosures(w http.ResponseWriter, r *http.Request) {
	specialistID := strings.TrimSpace(r.URL.Query().Get("specialist_id"))
	if specialistID == "" {
		http.Error(w, "specialist_id required", http.StatusBadRequest)
		return
	}
	entries, err := h.schedules.ListClosures(r.Context(), specialistID, schedule.DateOnly(h.now()))
	if err != nil {
		http.Error(w, "failed to list closures", http.StatusInternalServerError)
		return
	}
	items := make([]closureItem, 0, len(entries))
	for _, c := range entries {
		items = append(items, closureItem{
			ClosureID:    c.ID,
			SpecialistID: c.SpecialistID,
			StartDate:    c.StartDate.Format(schedule.DateLayout),
			EndDate:      c.EndDate.Format(schedule.DateLayout),
			Reason:       c.Reason,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ScheduleHandler) createClosure(w http.ResponseWriter, r *http.Request) {
	var req closureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SpecialistID = strings.TrimSpace(req.SpecialistID)
	if req.SpecialistID == "" {
		http.Error(w, "specialist_id required", http.StatusBadRequest)
		return
	}
	start, err := time.ParseInLocation(schedule.DateLayout, strings.TrimSpace(req.StartDate), time.UTC)
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}
	end, err := time.ParseInLocation(schedule.DateLayout, strings.TrimSpace(req.EndDate), time.UTC)
	if err != nil {
		http.Error(w, "invalid end_date", http.StatusBadRequest)
		return
	}
	if end.Before(start) {
		http.Error(w, "end_date must not precede start_date", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.schedules.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.schedules.CreateClosure(ctx, tx, req.SpecialistID, start, end, strings.TrimSpace(req.Reason))
	if err != nil {
		http.Error(w, "failed to create closure", http.StatusInternalServerError)
		return
	}
	if err := h.emitScheduleUpdated(ctx, tx, req.SpecialistID, "closure", req.StartDate); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"closure_id": id})
}

func (h *ScheduleHandler) deleteClosure(w http.ResponseWriter, r *http.Request) {
	specialistID := strings.TrimSpace(r.URL.Query().Get("specialist_id"))
	closureID := strings.TrimSpace(r.URL.Query().Get("closure_id"))
	if specialistID == "" || closureID == "" {
		http.Error(w, "specialist_id and closure_id are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.schedules.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.schedules.DeleteClosure(ctx, tx, specialistID, closureID); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "closure not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete closure", http.StatusInternalServerError)
		return
	}
	if err := h.emitScheduleUpdated(ctx, tx, specialistID, "closure_removed", ""); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createSpecialistRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

func (h *ScheduleHandler) Specialists(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.schedules.ListSpecialists(r.Context(), parseLimit(r, 50, 200))
		if err != nil {
			http.Error(w, "failed to list specialists", http.StatusInternalServerError)
			return
		}
		type specialistItem struct {
			SpecialistID string `json:"specialist_id"`
			Name         string `json:"name"`
			Specialty    string `json:"specialty"`
			IsActive     bool   `json:"is_active"`
		}
		out := make([]specialistItem, 0, len(items))
		for _, s := range items {
			out = append(out, specialistItem{SpecialistID: s.ID, Name: s.Name, Specialty: s.Specialty, IsActive: s.IsActive})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req createSpecialistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			http.Error(w, "name required", http.StatusBadRequest)
			return
		}
		id, err := h.schedules.CreateSpecialist(r.Context(), req.Name, strings.TrimSpace(req.Specialty))
		if err != nil {
			http.Error(w, "failed to create specialist", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"specialist_id": id})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type createServiceRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           string `json:"price"`
	Description     string `json:"description"`
}

func (h *ScheduleHandler) Services(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.schedules.ListServices(r.Context(), parseLimit(r, 50, 200))
		if err != nil {
			http.Error(w, "failed to list services", http.StatusInternalServerError)
			return
		}
		type serviceItem struct {
			ServiceID       string `json:"service_id"`
			Name            string `json:"name"`
			DurationMinutes int    `json:"duration_minutes"`
			Price           string `json:"price"`
			Description     string `json:"description,omitempty"`
		}
		out := make([]serviceItem, 0, len(items))
		for _, s := range items {
			out = append(out, serviceItem{ServiceID: s.ID, Name: s.Name, DurationMinutes: s.DurationMins, Price: s.Price, Description: s.Description})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req createServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" || req.DurationMinutes <= 0 {
			http.Error(w, "name and a positive duration_minutes are required", http.StatusBadRequest)
			return
		}
		id, err := h.schedules.CreateService(r.Context(), req.Name, req.DurationMinutes, strings.TrimSpace(req.Price), strings.TrimSpace(req.Description))
		if err != nil {
			http.Error(w, "failed to create service", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"service_id": id})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ScheduleHandler) emitScheduleUpdated(ctx context.Context, tx pgx.Tx, specialistID, change, date string) error {
	payload, err := json.Marshal(map[string]any{
		"specialist_id": specialistID,
		"change":        change,
		"date":          date,
	})
	if err != nil {
		return err
	}
	return h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "schedule",
		AggregateID:   specialistID,
		EventType:     outbox.EventScheduleUpdated,
		Payload:       payload,
	})
}
