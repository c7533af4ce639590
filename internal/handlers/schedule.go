package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/evserve/workshop-backend/internal/models"
	"github.com/evserve/workshop-backend/internal/schedule"
	"github.com/evserve/workshop-backend/internal/store"
)

// ScheduleHandler serves resource lookups, availability probes and the
// appointment book.
type ScheduleHandler struct {
	appointments store.AppointmentStore
	catalog      store.CatalogStore
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(appointments store.AppointmentStore, catalog store.CatalogStore) *ScheduleHandler {
	return &ScheduleHandler{
		appointments: appointments,
		catalog:      catalog,
	}
}

// Resources handles GET /api/schedule/resources?type=technician
func (h *ScheduleHandler) Resources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resources, err := h.catalog.ListResources(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, "Failed to list resources", http.StatusInternalServerError)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	writeJSON(w, http.StatusOK, resources)
}

// Check handles GET /api/schedule/check?resourceId&start&end&excludeId.
// It answers {"ok": true} when the window is free for the resource.
func (h *ScheduleHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	resourceID := query.Get("resourceId")
	if resourceID == "" {
		http.Error(w, "resourceId is required", http.StatusBadRequest)
		return
	}

	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		http.Error(w, "Invalid start time", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		http.Error(w, "Invalid end time", http.StatusBadRequest)
		return
	}

	overlap, err := h.appointments.HasOverlap(r.Context(), resourceID, start, end, query.Get("excludeId"))
	if err != nil {
		http.Error(w, "Failed to check availability", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, schedule.CheckResult{Ok: !overlap})
}

// Appointments routes /api/schedule/appointments.
func (h *ScheduleHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listAppointments(w, r)
	case http.MethodPost:
		h.createAppointment(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ScheduleHandler) listAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.appointments.ListAppointments(r.Context())
	if err != nil {
		http.Error(w, "Failed to list appointments", http.StatusInternalServerError)
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

// createAppointment books a window after re-running the same rules the
// form enforces: required fields, service hours, no overlap.
func (h *ScheduleHandler) createAppointment(w http.ResponseWriter, r *http.Request) {
	var appt models.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appt); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if appt.CustomerID == "" || appt.VehicleID == "" || appt.ServiceID == "" || appt.ResourceID == "" {
		http.Error(w, "customerId, vehicleId, serviceId and resourceId are required", http.StatusBadRequest)
		return
	}
	if appt.Start.IsZero() || appt.End.IsZero() {
		http.Error(w, "start and end are required", http.StatusBadRequest)
		return
	}
	if appt.Status == "" {
		appt.Status = models.StatusPending
	}
	if !models.IsValidAppointmentStatus(appt.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if !schedule.WithinWorkingHours(appt.Start.Local(), appt.End.Local()) {
		http.Error(w, "Appointment must fall within service hours 08:00-18:00", http.StatusBadRequest)
		return
	}

	overlap, err := h.appointments.HasOverlap(r.Context(), appt.ResourceID, appt.Start, appt.End, appt.ID)
	if err != nil {
		http.Error(w, "Failed to check availability", http.StatusInternalServerError)
		return
	}
	if overlap {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Time window conflicts with an existing booking"})
		return
	}

	created, err := h.appointments.CreateAppointment(r.Context(), appt)
	if err != nil {
		http.Error(w, "Failed to create appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
