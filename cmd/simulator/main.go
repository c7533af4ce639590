package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/evserve/workshop-backend/internal/mockapi"
	"github.com/evserve/workshop-backend/internal/store"
	log "github.com/sirupsen/logrus"
)

// WorkOrderState tracks the simulated progress of one work order.
type WorkOrderState struct {
	WorkOrderID string
	Progress    float64
	Status      string
}

var authToken string
var client = &http.Client{Timeout: 10 * time.Second}

var statusByProgress = []struct {
	threshold float64
	status    string
}{
	{25, "Tiep nhan"},
	{60, "Dang sua chua"},
	{90, "Kiem tra chat luong"},
	{100, "Cho ban giao"},
}

var timelineTitles = []string{
	"Cap nhat tien do",
	"Hoan tat hang muc kiem tra",
	"Ghi nhan tinh trang linh kien",
	"Lien he khach hang",
}

func authorizedRequest(method, url string, body *bytes.Buffer) (*http.Response, error) {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	return client.Do(req)
}

func fetchWorkOrders(apiURL string) ([]string, error) {
	resp, err := authorizedRequest(http.MethodGet, apiURL+"/workorders", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("work order fetch failed with status: %d", resp.StatusCode)
	}

	var orders []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to decode work orders: %w", err)
	}

	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		if id, ok := order["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func statusFor(progress float64) string {
	for _, band := range statusByProgress {
		if progress <= band.threshold {
			return band.status
		}
	}
	return statusByProgress[len(statusByProgress)-1].status
}

func patchProgress(apiURL string, s *WorkOrderState) {
	update := map[string]interface{}{
		"progress": int(s.Progress),
		"status":   s.Status,
		"eta":      time.Now().Add(time.Duration(100-int(s.Progress)) * 3 * time.Minute).Format("15:04"),
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.WithError(err).Error("Failed to marshal progress update")
		return
	}

	resp, err := authorizedRequest(http.MethodPatch, apiURL+"/workorders/"+s.WorkOrderID, bytes.NewBuffer(data))
	if err != nil {
		log.WithError(err).Error("Failed to send progress update")
		return
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{
		"work_order_id": s.WorkOrderID,
		"progress":      int(s.Progress),
		"status":        resp.Status,
	}).Info("Patched work order")
}

func postTimeline(apiURL string, s *WorkOrderState) {
	entry := map[string]interface{}{
		"type":        "update",
		"title":       timelineTitles[rand.Intn(len(timelineTitles))],
		"description": fmt.Sprintf("Tien do hien tai %d%%", int(s.Progress)),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.WithError(err).Error("Failed to marshal timeline entry")
		return
	}

	resp, err := authorizedRequest(http.MethodPost, apiURL+"/workorders/"+s.WorkOrderID+"/timeline", bytes.NewBuffer(data))
	if err != nil {
		log.WithError(err).Error("Failed to post timeline entry")
		return
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{
		"work_order_id": s.WorkOrderID,
		"status":        resp.Status,
	}).Info("Posted timeline entry")
}

func simulateWorkOrder(apiURL string, s *WorkOrderState, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for range tick.C {
		s.Progress += 2 + rand.Float64()*6
		if s.Progress > 100 {
			// hand over and start the next job on the same bay
			s.Progress = 5
		}
		s.Status = statusFor(s.Progress)

		patchProgress(apiURL, s)
		if rand.Float64() < 0.3 {
			postTimeline(apiURL, s)
		}
	}
}

func main() {
	// Optional JWT for protected API
	authToken = os.Getenv("SIM_AUTH_TOKEN")

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8081/api"
	}

	interval := 5 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	// Offline mode answers every request from a seeded in-memory store,
	// so the simulator runs without a backend at all.
	offline := os.Getenv("SIM_OFFLINE") == "true"
	if offline {
		mockapi.Install(client, store.NewMemoryStore())
		apiURL = "http://workshop.local/api"
	}

	log.WithFields(log.Fields{
		"api_url":  apiURL,
		"interval": interval,
		"offline":  offline,
	}).Info("Starting workshop simulation")

	ids, err := fetchWorkOrders(apiURL)
	if err != nil {
		log.WithError(err).Error("Failed to load work orders. Ensure SIM_AUTH_TOKEN is valid and API is reachable. Exiting.")
		time.Sleep(2 * time.Second)
		return
	}
	if len(ids) == 0 {
		log.Error("No work orders to simulate. Exiting.")
		return
	}

	states := make([]*WorkOrderState, 0, len(ids))
	for _, id := range ids {
		states = append(states, &WorkOrderState{
			WorkOrderID: id,
			Progress:    10 + rand.Float64()*60,
		})
	}

	log.WithField("work_orders", len(states)).Info("Work order discovery completed")
	for _, s := range states {
		go simulateWorkOrder(apiURL, s, interval)
	}

	log.Info("Workshop simulation started")
	select {} // Block forever
}
