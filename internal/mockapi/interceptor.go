// Package mockapi fakes the workshop REST API inside the HTTP client, so
// UIs and tools can run without a live backend. Instead of overriding a
// global fetch primitive, the fake is an http.RoundTripper installed on a
// specific client; anything it does not recognize is forwarded to the
// client's previous transport.
package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/evserve/workshop-backend/internal/store"
)

// NetworkDelay is the simulated round-trip latency applied to every
// matched route.
const NetworkDelay = 420 * time.Millisecond

// Store is the slice of the data layer the fake API serves.
type Store interface {
	store.WorkOrderStore
	store.TimelineStore
}

// Interceptor routes requests under /api to an in-memory store and
// forwards everything else to the fallback transport.
type Interceptor struct {
	store Store
	next  http.RoundTripper

	// Delay is the artificial latency per matched route. Defaults to
	// NetworkDelay; tests set it to zero.
	Delay time.Duration

	now func() time.Time
}

// New creates an interceptor backed by s. next is the pass-through
// fallback for unmatched requests and may be nil, in which case unmatched
// requests get a 500 with an empty JSON body.
func New(s Store, next http.RoundTripper) *Interceptor {
	return &Interceptor{
		store: s,
		next:  next,
		Delay: NetworkDelay,
		now:   time.Now,
	}
}

// Install points client at a fake API backed by s, capturing the client's
// current transport as the pass-through fallback. Installing twice is a
// no-op: the existing interceptor is returned and the fallback is captured
// only once.
func Install(client *http.Client, s Store) *Interceptor {
	if existing, ok := client.Transport.(*Interceptor); ok {
		return existing
	}
	i := New(s, client.Transport)
	client.Transport = i
	return i
}

// SetNowFunc overrides the interceptor's clock. Tests only.
func (i *Interceptor) SetNowFunc(now func() time.Time) {
	i.now = now
}

// RoundTrip implements http.RoundTripper.
func (i *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	segments := splitPath(req.URL.Path)
	ctx := req.Context()

	isWorkOrders := len(segments) >= 2 && segments[0] == "api" && segments[1] == "workorders"

	if isWorkOrders && len(segments) == 2 && method == http.MethodGet {
		time.Sleep(i.Delay)
		orders, err := i.store.ListWorkOrders(ctx)
		if err != nil {
			return jsonResponse(req, http.StatusInternalServerError, map[string]string{"message": err.Error()}), nil
		}
		return jsonResponse(req, http.StatusOK, orders), nil
	}

	if isWorkOrders && len(segments) >= 3 {
		workOrderID := segments[2]
		if _, err := i.store.GetWorkOrder(ctx, workOrderID); err != nil {
			return jsonResponse(req, http.StatusNotFound, map[string]string{"message": "Work order not found"}), nil
		}

		isTimelineEndpoint := len(segments) == 4 && segments[3] == "timeline"

		if isTimelineEndpoint && method == http.MethodPost {
			time.Sleep(i.Delay)
			payload := tryParseJSON(req)
			payload["workOrderId"] = workOrderID
			if ts, _ := payload["timestamp"].(string); ts == "" {
				payload["timestamp"] = i.now().UTC().Format(time.RFC3339Nano)
			}
			entry, err := i.store.UpsertTimeline(ctx, payload)
			if err != nil {
				return jsonResponse(req, http.StatusInternalServerError, map[string]string{"message": err.Error()}), nil
			}
			return jsonResponse(req, http.StatusOK, entry), nil
		}

		if !isTimelineEndpoint && method == http.MethodPatch {
			time.Sleep(i.Delay)
			updates := tryParseJSON(req)
			updated, err := i.store.PatchWorkOrder(ctx, workOrderID, updates)
			if err != nil {
				return jsonResponse(req, http.StatusNotFound, map[string]string{"message": "Work order not found"}), nil
			}
			return jsonResponse(req, http.StatusOK, updated), nil
		}
	}

	if req.URL.Path == "/api/timeline" && method == http.MethodGet {
		time.Sleep(i.Delay)
		entries, err := i.store.ListTimeline(ctx)
		if err != nil {
			return jsonResponse(req, http.StatusInternalServerError, map[string]string{"message": err.Error()}), nil
		}
		return jsonResponse(req, http.StatusOK, entries), nil
	}

	if i.next != nil {
		return i.next.RoundTrip(req)
	}
	return jsonResponse(req, http.StatusInternalServerError, map[string]any{}), nil
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

// tryParseJSON reads the request body as a JSON object. Malformed or empty
// bodies degrade to an empty object, never an error.
func tryParseJSON(req *http.Request) map[string]any {
	if req.Body == nil {
		return map[string]any{}
	}
	defer req.Body.Close()
	data, err := io.ReadAll(req.Body)
	if err != nil || len(data) == 0 {
		return map[string]any{}
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]any{}
	}
	return payload
}

func jsonResponse(req *http.Request, status int, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		data = []byte("{}")
	}
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	return &http.Response{
		Status:        http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
	}
}
