package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/evserve/workshop-backend/internal/store"
	log "github.com/sirupsen/logrus"
)

// TimelinePublisher fans new timeline entries out to the workshop floor.
// Nil-able: without a broker configured the handler just skips publishing.
type TimelinePublisher interface {
	PublishTimeline(workOrderID string, entry map[string]any) error
}

// WorkOrderHandler serves the work-order board and its activity feed.
type WorkOrderHandler struct {
	workOrders store.WorkOrderStore
	timeline   store.TimelineStore
	publisher  TimelinePublisher
}

// NewWorkOrderHandler creates a work-order handler. publisher may be nil.
func NewWorkOrderHandler(workOrders store.WorkOrderStore, timeline store.TimelineStore, publisher TimelinePublisher) *WorkOrderHandler {
	return &WorkOrderHandler{
		workOrders: workOrders,
		timeline:   timeline,
		publisher:  publisher,
	}
}

// List handles GET /api/workorders
func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orders, err := h.workOrders.ListWorkOrders(r.Context())
	if err != nil {
		http.Error(w, "Failed to list work orders", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListTimeline handles GET /api/timeline. The feed is returned whole,
// most recent first, unfiltered.
func (h *WorkOrderHandler) ListTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries, err := h.timeline.ListTimeline(r.Context())
	if err != nil {
		http.Error(w, "Failed to list timeline", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Detail routes /api/workorders/{id} and /api/workorders/{id}/timeline.
func (h *WorkOrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	segments := splitPath(r.URL.Path)
	// segments: ["api", "workorders", id] or ["api", "workorders", id, "timeline"]
	if len(segments) < 3 {
		http.NotFound(w, r)
		return
	}
	workOrderID := segments[2]

	if _, err := h.workOrders.GetWorkOrder(r.Context(), workOrderID); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Work order not found"})
		return
	}

	isTimeline := len(segments) == 4 && segments[3] == "timeline"

	switch {
	case isTimeline && r.Method == http.MethodPost:
		h.postTimeline(w, r, workOrderID)
	case !isTimeline && r.Method == http.MethodPatch:
		h.patch(w, r, workOrderID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// patch merges the request body's fields into the work order.
func (h *WorkOrderHandler) patch(w http.ResponseWriter, r *http.Request, workOrderID string) {
	updates := readLooseJSON(r)

	updated, err := h.workOrders.PatchWorkOrder(r.Context(), workOrderID, updates)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Work order not found"})
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// postTimeline upserts a timeline entry stamped with the work-order id.
func (h *WorkOrderHandler) postTimeline(w http.ResponseWriter, r *http.Request, workOrderID string) {
	payload := readLooseJSON(r)
	payload["workOrderId"] = workOrderID
	if ts, _ := payload["timestamp"].(string); ts == "" {
		payload["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	}

	entry, err := h.timeline.UpsertTimeline(r.Context(), payload)
	if err != nil {
		http.Error(w, "Failed to store timeline entry", http.StatusInternalServerError)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishTimeline(workOrderID, entry); err != nil {
			log.WithError(err).WithField("work_order_id", workOrderID).Warn("Failed to publish timeline entry")
		}
	}

	writeJSON(w, http.StatusOK, entry)
}

// readLooseJSON reads the body as a JSON object; malformed or empty bodies
// degrade to an empty object.
func readLooseJSON(r *http.Request) map[string]any {
	if r.Body == nil {
		return map[string]any{}
	}
	data, err := io.ReadAll(r.Body)
	if err != nil || len(data) == 0 {
		return map[string]any{}
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]any{}
	}
	return payload
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
