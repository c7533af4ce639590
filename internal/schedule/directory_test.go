package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evserve/workshop-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDirectory_Lookups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/customers":
			json.NewEncoder(w).Encode([]models.Customer{{ID: "1", Name: "Nguyen Van An"}})
		case "/services":
			json.NewEncoder(w).Encode([]models.Service{{ID: "11", Name: "Bao duong dinh ky", Duration: 60}})
		case "/schedule/resources":
			assert.Equal(t, "technician", r.URL.Query().Get("type"))
			json.NewEncoder(w).Encode([]models.Resource{{ID: "101", Title: "KTV 1", Type: "technician"}})
		case "/customers/1/vehicles":
			json.NewEncoder(w).Encode([]models.Vehicle{{ID: "201", Plate: "29A-123.45"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	dir := &HTTPDirectory{BaseURL: server.URL, Client: server.Client()}

	customers, err := dir.Customers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van An", customers[0].Name)

	services, err := dir.Services(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60, services[0].Duration)

	resources, err := dir.Resources(context.Background(), "technician")
	require.NoError(t, err)
	assert.Equal(t, "KTV 1", resources[0].Title)

	vehicles, err := dir.CustomerVehicles(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "29A-123.45", vehicles[0].Plate)
}

func TestHTTPDirectory_CheckWindow(t *testing.T) {
	start := time.Date(2025, 10, 22, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedule/check", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "101", query.Get("resourceId"))
		assert.Equal(t, start.Format(time.RFC3339), query.Get("start"))
		assert.Equal(t, end.Format(time.RFC3339), query.Get("end"))
		assert.Equal(t, "appt-1", query.Get("excludeId"))
		json.NewEncoder(w).Encode(CheckResult{Ok: false})
	}))
	defer server.Close()

	dir := &HTTPDirectory{BaseURL: server.URL, Client: server.Client()}

	result, err := dir.CheckWindow(context.Background(), "101", start, end, "appt-1")
	require.NoError(t, err)
	assert.False(t, result.Ok)
}

func TestHTTPDirectory_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	dir := &HTTPDirectory{BaseURL: server.URL, Client: server.Client()}

	_, err := dir.Customers(context.Background())
	assert.Error(t, err)

	_, err = dir.CheckWindow(context.Background(), "101", time.Now(), time.Now().Add(time.Hour), "")
	assert.Error(t, err)
}
