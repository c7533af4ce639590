package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/evserve/workshop-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps every collection in process memory. It backs demo
// sessions and the fake transport: work orders and timeline entries are
// loose documents mutated by shallow merge, appointments and users are
// typed. Overlapping writes apply in call order, last write wins.
type MemoryStore struct {
	mu           sync.RWMutex
	workOrders   []map[string]any
	timeline     []map[string]any
	appointments []models.Appointment
	customers    []models.Customer
	services     []models.Service
	resources    []models.Resource
	vehicles     []models.Vehicle
	users        map[string]*models.User

	now func() time.Time
}

// NewMemoryStore returns a store seeded with the demo fixtures.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users: make(map[string]*models.User),
		now:   time.Now,
	}
	for _, wo := range SeedWorkOrders() {
		s.workOrders = append(s.workOrders, toDoc(wo))
	}
	for _, entry := range SeedTimeline() {
		s.timeline = append(s.timeline, toDoc(entry))
	}
	s.customers = SeedCustomers()
	s.services = SeedServices()
	s.resources = SeedResources()
	s.vehicles = SeedVehicles()
	return s
}

// NewEmptyMemoryStore returns a store with no seed data.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*models.User),
		now:   time.Now,
	}
}

// SetNowFunc overrides the store's clock. Tests only.
func (s *MemoryStore) SetNowFunc(now func() time.Time) {
	s.now = now
}

// toDoc converts a typed record into a loose document through its JSON
// contract, so merges behave exactly like the wire format.
func toDoc(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return map[string]any{}
	}
	return doc
}

// --- work orders ---

func (s *MemoryStore) ListWorkOrders(ctx context.Context) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]map[string]any, len(s.workOrders))
	copy(out, s.workOrders)
	return out, nil
}

func (s *MemoryStore) GetWorkOrder(ctx context.Context, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.workOrders {
		if doc["id"] == id {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

// PatchWorkOrder merges the supplied fields into the stored document and
// stamps lastUpdated. Field types are not validated.
func (s *MemoryStore) PatchWorkOrder(ctx context.Context, id string, updates map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.workOrders {
		if doc["id"] != id {
			continue
		}
		for k, v := range updates {
			if k == "id" {
				continue // identity is immutable
			}
			doc[k] = v
		}
		doc["lastUpdated"] = s.now().UTC().Format(time.RFC3339Nano)
		return doc, nil
	}
	return nil, ErrNotFound
}

// --- timeline ---

func (s *MemoryStore) ListTimeline(ctx context.Context) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]map[string]any, len(s.timeline))
	copy(out, s.timeline)
	return out, nil
}

// UpsertTimeline merges by id when the entry exists, otherwise creates it,
// generating an id when none was supplied. New entries are prepended so the
// feed stays most-recent-first.
func (s *MemoryStore) UpsertTimeline(ctx context.Context, entry map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, _ := entry["id"].(string); id != "" {
		for _, doc := range s.timeline {
			if doc["id"] == id {
				for k, v := range entry {
					doc[k] = v
				}
				return doc, nil
			}
		}
	}
	created := make(map[string]any, len(entry)+1)
	for k, v := range entry {
		created[k] = v
	}
	if id, _ := created["id"].(string); id == "" {
		created["id"] = fmt.Sprintf("tl-%d", s.now().UnixMilli())
	}
	s.timeline = append([]map[string]any{created}, s.timeline...)
	return created, nil
}

// --- appointments ---

func (s *MemoryStore) CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if appt.ID == "" {
		appt.ID = primitive.NewObjectID().Hex()
	}
	appt.CreatedAt = s.now()
	appt.UpdatedAt = appt.CreatedAt
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

func (s *MemoryStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out, nil
}

func (s *MemoryStore) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			appt := s.appointments[i]
			return &appt, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateAppointment(ctx context.Context, appt models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == appt.ID {
			appt.CreatedAt = s.appointments[i].CreatedAt
			appt.UpdatedAt = s.now()
			s.appointments[i] = appt
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) HasOverlap(ctx context.Context, resourceID string, start, end time.Time, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.appointments {
		appt := &s.appointments[i]
		if appt.ResourceID != resourceID || !appt.Blocks() {
			continue
		}
		if excludeID != "" && appt.ID == excludeID {
			continue
		}
		if appt.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

// --- catalog ---

func (s *MemoryStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

func (s *MemoryStore) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out, nil
}

func (s *MemoryStore) ListResources(ctx context.Context, resourceType string) ([]models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Resource
	for _, r := range s.resources {
		if resourceType == "" || r.Type == resourceType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListCustomerVehicles(ctx context.Context, customerID string) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Vehicle
	for _, v := range s.vehicles {
		if v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out, nil
}

// --- users ---

func (s *MemoryStore) InsertUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt
	user.IsActive = true
	s.users[user.Username] = &user
	return nil
}

func (s *MemoryStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID.Hex() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateLastLogin(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() == id {
			now := s.now()
			u.LastLogin = &now
			u.UpdatedAt = now
			return nil
		}
	}
	return ErrNotFound
}
