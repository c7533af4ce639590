package handlers

import (
	"net/http"

	"github.com/evserve/workshop-backend/internal/models"
	"github.com/evserve/workshop-backend/internal/store"
)

// CatalogHandler serves the booking form's lookup lists.
type CatalogHandler struct {
	catalog store.CatalogStore
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog store.CatalogStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Customers handles GET /api/customers
func (h *CatalogHandler) Customers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	customers, err := h.catalog.ListCustomers(r.Context())
	if err != nil {
		http.Error(w, "Failed to list customers", http.StatusInternalServerError)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// Services handles GET /api/services
func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		http.Error(w, "Failed to list services", http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// CustomerVehicles routes GET /api/customers/{id}/vehicles.
func (h *CatalogHandler) CustomerVehicles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segments := splitPath(r.URL.Path)
	// segments: ["api", "customers", id, "vehicles"]
	if len(segments) != 4 || segments[3] != "vehicles" {
		http.NotFound(w, r)
		return
	}

	vehicles, err := h.catalog.ListCustomerVehicles(r.Context(), segments[2])
	if err != nil {
		http.Error(w, "Failed to list vehicles", http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}
