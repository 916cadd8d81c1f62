package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/clinicdesk/clinicdesk/internal/clock"
	"github.com/clinicdesk/clinicdesk/internal/model"
	"github.com/clinicdesk/clinicdesk/internal/outbox"
	"github.com/clinicdesk/clinicdesk/internal/schedule"
	"github.com/clinicdesk/clinicdesk/internal/storage"
)

type BookingHandler struct {
	appts      *storage.AppointmentRepository
	schedules  *storage.ScheduleRepository
	outboxRepo *outbox.Repository
	logger     *slog.Logger
}

func NewBookingHandler(appts *storage.AppointmentRepository, schedules *storage.ScheduleRepository, outboxRepo *outbox.Repository, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		appts:      appts,
		schedules:  schedules,
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

type bookRequest struct {
	SpecialistID string `json:"specialist_id"`
	ServiceID    string `json:"service_id"`
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`
	PatientPhone string `json:"patient_phone"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
}

type bookResponse struct {
	AppointmentID string `json:"appointment_id"`
}

type slotItem struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type appointmentItem struct {
	AppointmentID string `json:"appointment_id"`
	ServiceID     string `json:"service_id"`
	PatientName   string `json:"patient_name"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type statusRequest struct {
	SpecialistID  string `json:"specialist_id"`
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
}

// Slots lists the free start times for one specialist, service and day.
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	specialistID := strings.TrimSpace(r.URL.Query().Get("specialist_id"))
	serviceID := strings.TrimSpace(r.URL.Query().Get("service_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if specialistID == "" || serviceID == "" || dateStr == "" {
		http.Error(w, "specialist_id, service_id, and date are required", http.StatusBadRequest)
		return
	}
	day, err := time.ParseInLocation(schedule.DateLayout, dateStr, time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	duration, err := h.schedules.GetServiceDuration(ctx, serviceID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load service", http.StatusInternalServerError)
		return
	}

	snap, err := h.schedules.LoadSnapshot(ctx, specialistID, day)
	if err != nil {
		http.Error(w, "failed to load schedule", http.StatusInternalServerError)
		return
	}
	window, open := snap.Resolve(day)
	if !open {
		writeJSON(w, http.StatusOK, []slotItem{})
		return
	}

	// Cancelled appointments do not block.
	busy, err := h.appts.BusyIntervals(ctx, specialistID, day)
	if err != nil {
		http.Error(w, "failed to load booked slots", http.StatusInternalServerError)
		return
	}

	starts, err := schedule.Slots(window, duration, busy)
	if err != nil {
		http.Error(w, "invalid service duration", http.StatusUnprocessableEntity)
		return
	}

	items := make([]slotItem, 0, len(starts))
	for _, s := range starts {
		startHHMM, err := clock.MinutesToTime(s)
		if err != nil {
			continue
		}
		endHHMM, err := clock.MinutesToTime(s + duration)
		if err != nil {
			// A slot ending exactly at midnight has no same-day HH:MM.
			endHHMM = "24:00"
		}
		items = append(items, slotItem{StartTime: startHHMM, EndTime: endHHMM})
	}
	writeJSON(w, http.StatusOK, items)
}

// Book creates an appointment. The availability check here is a
// pre-check for a friendly error; the partial unique index on
// appointments is the authoritative guard against double booking.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SpecialistID = strings.TrimSpace(req.SpecialistID)
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.PatientName = strings.TrimSpace(req.PatientName)
	if req.SpecialistID == "" || req.ServiceID == "" || req.PatientName == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	day, err := time.ParseInLocation(schedule.DateLayout, strings.TrimSpace(req.Date), time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	start, err := clock.TimeToMinutes(strings.TrimSpace(req.StartTime))
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	duration, err := h.schedules.GetServiceDuration(ctx, req.ServiceID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load service", http.StatusInternalServerError)
		return
	}

	snap, err := h.schedules.LoadSnapshot(ctx, req.SpecialistID, day)
	if err != nil {
		http.Error(w, "failed to load schedule", http.StatusInternalServerError)
		return
	}
	window, open := snap.Resolve(day)
	if !open {
		http.Error(w, "specialist is not available on this date", http.StatusUnprocessableEntity)
		return
	}

	requested := schedule.Interval{Start: start, End: start + duration}
	if requested.Start < window.Start || requested.End > window.End {
		http.Error(w, "requested time is outside working hours", http.StatusUnprocessableEntity)
		return
	}
	if window.Lunch != nil && schedule.Overlaps(requested, *window.Lunch) {
		http.Error(w, "requested time overlaps the lunch break", http.StatusUnprocessableEntity)
		return
	}

	busy, err := h.appts.BusyIntervals(ctx, req.SpecialistID, day)
	if err != nil {
		http.Error(w, "failed to load booked slots", http.StatusInternalServerError)
		return
	}
	if !schedule.Available(requested, busy) {
		http.Error(w, "time slot already booked", http.StatusConflict)
		return
	}

	tx, err := h.appts.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt := &model.Appointment{
		SpecialistID: req.SpecialistID,
		ServiceID:    req.ServiceID,
		PatientName:  req.PatientName,
		PatientEmail: strings.TrimSpace(req.PatientEmail),
		PatientPhone: strings.TrimSpace(req.PatientPhone),
		Date:         day,
		StartMinute:  start,
		DurationMins: duration,
		Status:       model.StatusScheduled,
	}
	id, err := h.appts.Create(ctx, tx, appt)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "time slot already booked", http.StatusConflict)
			return
		}
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"appointment_id": id,
		"specialist_id":  appt.SpecialistID,
		"service_id":     appt.ServiceID,
		"patient_email":  appt.PatientEmail,
		"patient_phone":  appt.PatientPhone,
		"date":           day.Format(schedule.DateLayout),
		"start_time":     strings.TrimSpace(req.StartTime),
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   id,
		EventType:     outbox.EventAppointmentBooked,
		Payload:       evtPayload,
	}); err != nil {
		h.logger.Error("outbox insert failed", "err", err, "appointment_id", id)
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "time slot already booked", http.StatusConflict)
			return
		}
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, bookResponse{AppointmentID: id})
}

// List returns every appointment for one specialist and day, any status.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

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

	appts, err := h.appts.ListOnDate(r.Context(), specialistID, day)
	if err != nil {
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	items := make([]appointmentItem, 0, len(appts))
	for _, a := range appts {
		item := appointmentItem{
			AppointmentID: a.ID,
			ServiceID:     a.ServiceID,
			PatientName:   a.PatientName,
			Date:          a.Date.Format(schedule.DateLayout),
			Status:        a.Status,
			CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if hhmm, err := clock.MinutesToTime(a.StartMinute); err == nil {
			item.StartTime = hhmm
		}
		if hhmm, err := clock.MinutesToTime(a.StartMinute + a.DurationMins); err == nil {
			item.EndTime = hhmm
		}
		if a.CancelledAt != nil {
			item.CancelledAt = a.CancelledAt.UTC().Format(time.RFC3339)
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}

// UpdateStatus moves a scheduled appointment to completed, cancelled or
// no_show. Cancelling frees the slot and emits a cancellation event.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.SpecialistID = strings.TrimSpace(req.SpecialistID)
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	req.Status = strings.TrimSpace(req.Status)
	if req.SpecialistID == "" || req.AppointmentID == "" || req.Status == "" {
		http.Error(w, "specialist_id, appointment_id, and status are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.appts.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.appts.GetForUpdate(ctx, tx, req.SpecialistID, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}
	if appt.Status == req.Status {
		writeJSON(w, http.StatusOK, map[string]string{"appointment_id": appt.ID, "status": appt.Status})
		return
	}
	if !model.ValidStatusTransition(appt.Status, req.Status) {
		http.Error(w, "invalid status transition", http.StatusConflict)
		return
	}

	if err := h.appts.UpdateStatus(ctx, tx, req.SpecialistID, appt.ID, req.Status, strings.TrimSpace(req.Reason)); err != nil {
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return
	}

	if req.Status == model.StatusCancelled {
		startHHMM, _ := clock.MinutesToTime(appt.StartMinute)
		payload, err := json.Marshal(map[string]any{
			"appointment_id": appt.ID,
			"specialist_id":  appt.SpecialistID,
			"service_id":     appt.ServiceID,
			"date":           appt.Date.Format(schedule.DateLayout),
			"start_time":     startHHMM,
			"reason":         strings.TrimSpace(req.Reason),
		})
		if err != nil {
			http.Error(w, "failed to build cancellation event", http.StatusInternalServerError)
			return
		}
		if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
			AggregateType: "appointment",
			AggregateID:   appt.ID,
			EventType:     outbox.EventAppointmentCancelled,
			Payload:       payload,
		}); err != nil {
			h.logger.Error("outbox insert failed", "err", err, "appointment_id", appt.ID)
			http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"appointment_id": appt.ID, "status": req.Status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func parseLimit(r *http.Request, def, max int) int {
	limit := def
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= max {
			limit = n
		}
	}
	return limit
}
