package store

import (
	"context"
	"errors"
	"time"

	"github.com/evserve/workshop-backend/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
)

// WorkOrderStore holds the workshop's work orders. Records are loose
// documents: patches merge whatever fields the caller supplies, without
// schema checks, and nothing is ever deleted.
type WorkOrderStore interface {
	ListWorkOrders(ctx context.Context) ([]map[string]any, error)
	GetWorkOrder(ctx context.Context, id string) (map[string]any, error)
	PatchWorkOrder(ctx context.Context, id string, updates map[string]any) (map[string]any, error)
}

// TimelineStore holds timeline entries in most-recent-first order.
type TimelineStore interface {
	ListTimeline(ctx context.Context) ([]map[string]any, error)
	UpsertTimeline(ctx context.Context, entry map[string]any) (map[string]any, error)
}

// AppointmentStore holds bookings and answers resource-availability queries.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appt models.Appointment) error
	// HasOverlap reports whether any non-canceled appointment for the
	// resource intersects [start, end), ignoring excludeID when non-empty.
	HasOverlap(ctx context.Context, resourceID string, start, end time.Time, excludeID string) (bool, error)
}

// CatalogStore serves the booking form's lookup lists.
type CatalogStore interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListResources(ctx context.Context, resourceType string) ([]models.Resource, error)
	ListCustomerVehicles(ctx context.Context, customerID string) ([]models.Vehicle, error)
}

// UserStore defines the interface for user database operations
type UserStore interface {
	InsertUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}
