package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/evserve/workshop-backend/internal/models"
)

// CheckResult is the answer to an "is this resource free" probe.
// Ok == false means the window collides with an existing booking.
type CheckResult struct {
	Ok bool `json:"ok"`
}

// Directory is the reference-data and availability collaborator the
// booking form talks to.
type Directory interface {
	Customers(ctx context.Context) ([]models.Customer, error)
	Services(ctx context.Context) ([]models.Service, error)
	Resources(ctx context.Context, resourceType string) ([]models.Resource, error)
	CustomerVehicles(ctx context.Context, customerID string) ([]models.Vehicle, error)
	CheckWindow(ctx context.Context, resourceID string, start, end time.Time, excludeID string) (CheckResult, error)
}

// HTTPDirectory implements Directory against the workshop REST API.
type HTTPDirectory struct {
	BaseURL string // e.g. "http://localhost:8081/api"
	Client  *http.Client
}

func (d *HTTPDirectory) client() *http.Client {
	if d.Client != nil {
		return d.Client
	}
	return http.DefaultClient
}

func (d *HTTPDirectory) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := d.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request %s failed with status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (d *HTTPDirectory) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := d.get(ctx, "/customers?simple=true", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *HTTPDirectory) Services(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := d.get(ctx, "/services?simple=true", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *HTTPDirectory) Resources(ctx context.Context, resourceType string) ([]models.Resource, error) {
	var out []models.Resource
	if err := d.get(ctx, "/schedule/resources?type="+url.QueryEscape(resourceType), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *HTTPDirectory) CustomerVehicles(ctx context.Context, customerID string) ([]models.Vehicle, error) {
	var out []models.Vehicle
	path := "/customers/" + url.PathEscape(customerID) + "/vehicles?simple=true"
	if err := d.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *HTTPDirectory) CheckWindow(ctx context.Context, resourceID string, start, end time.Time, excludeID string) (CheckResult, error) {
	qs := url.Values{}
	qs.Set("resourceId", resourceID)
	qs.Set("start", start.UTC().Format(time.RFC3339))
	qs.Set("end", end.UTC().Format(time.RFC3339))
	if excludeID != "" {
		qs.Set("excludeId", excludeID)
	}
	var out CheckResult
	if err := d.get(ctx, "/schedule/check?"+qs.Encode(), &out); err != nil {
		return CheckResult{}, err
	}
	return out, nil
}
