package store

import (
	"context"
	"testing"
	"time"

	"github.com/evserve/workshop-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_WorkOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("seeded list", func(t *testing.T) {
		s := NewMemoryStore()
		orders, err := s.ListWorkOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "WO-2401", orders[0]["id"])
	})

	t.Run("get unknown id", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.GetWorkOrder(ctx, "WO-9999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("patch merges and stamps lastUpdated", func(t *testing.T) {
		s := NewMemoryStore()
		stamp := time.Date(2025, 10, 22, 10, 30, 0, 0, time.UTC)
		s.SetNowFunc(func() time.Time { return stamp })

		updated, err := s.PatchWorkOrder(ctx, "WO-2401", map[string]any{
			"progress": 80,
			"status":   "Quality check",
		})
		require.NoError(t, err)
		assert.Equal(t, 80, updated["progress"])
		assert.Equal(t, "Quality check", updated["status"])
		assert.Equal(t, stamp.Format(time.RFC3339Nano), updated["lastUpdated"])

		// Untouched fields survive
		vehicle, ok := updated["vehicle"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Tesla", vehicle["make"])
	})

	t.Run("patch cannot change the id", func(t *testing.T) {
		s := NewMemoryStore()
		updated, err := s.PatchWorkOrder(ctx, "WO-2401", map[string]any{"id": "WO-HACKED"})
		require.NoError(t, err)
		assert.Equal(t, "WO-2401", updated["id"])
	})

	t.Run("last write wins", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.PatchWorkOrder(ctx, "WO-2401", map[string]any{"progress": 70})
		require.NoError(t, err)
		_, err = s.PatchWorkOrder(ctx, "WO-2401", map[string]any{"progress": 90})
		require.NoError(t, err)

		doc, err := s.GetWorkOrder(ctx, "WO-2401")
		require.NoError(t, err)
		assert.Equal(t, 90, doc["progress"])
	})

	t.Run("patch unknown id", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.PatchWorkOrder(ctx, "WO-9999", map[string]any{"progress": 1})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore_Timeline(t *testing.T) {
	ctx := context.Background()

	t.Run("create generates id and prepends", func(t *testing.T) {
		s := NewMemoryStore()
		stamp := time.Date(2025, 10, 22, 10, 30, 0, 0, time.UTC)
		s.SetNowFunc(func() time.Time { return stamp })

		entry, err := s.UpsertTimeline(ctx, map[string]any{
			"workOrderId": "WO-2401",
			"type":        "update",
			"title":       "Da thay coolant",
		})
		require.NoError(t, err)
		assert.Equal(t, "tl-1761129000000", entry["id"])

		feed, err := s.ListTimeline(ctx)
		require.NoError(t, err)
		require.Len(t, feed, 5)
		assert.Equal(t, entry["id"], feed[0]["id"], "new entries lead the feed")
	})

	t.Run("upsert by id merges in place", func(t *testing.T) {
		s := NewMemoryStore()
		entry, err := s.UpsertTimeline(ctx, map[string]any{
			"id":    "tl-1",
			"title": "Chan doan lai",
		})
		require.NoError(t, err)
		assert.Equal(t, "tl-1", entry["id"])
		assert.Equal(t, "Chan doan lai", entry["title"])
		assert.Equal(t, "update", entry["type"], "unpatched fields survive")

		feed, err := s.ListTimeline(ctx)
		require.NoError(t, err)
		assert.Len(t, feed, 4, "merging must not grow the feed")
	})

	t.Run("unknown id is created as supplied", func(t *testing.T) {
		s := NewEmptyMemoryStore()
		entry, err := s.UpsertTimeline(ctx, map[string]any{"id": "tl-custom", "title": "x"})
		require.NoError(t, err)
		assert.Equal(t, "tl-custom", entry["id"])

		feed, _ := s.ListTimeline(ctx)
		assert.Len(t, feed, 1)
	})
}

func TestMemoryStore_Appointments(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	book := func(t *testing.T, s *MemoryStore, id, resourceID string, startH, endH int, status models.AppointmentStatus) models.Appointment {
		t.Helper()
		appt, err := s.CreateAppointment(ctx, models.Appointment{
			ID:         id,
			CustomerID: "1",
			VehicleID:  "201",
			ServiceID:  "11",
			ResourceID: resourceID,
			Start:      at(startH),
			End:        at(endH),
			Status:     status,
		})
		require.NoError(t, err)
		return appt
	}

	t.Run("create assigns id and stamps", func(t *testing.T) {
		s := NewEmptyMemoryStore()
		appt := book(t, s, "", "101", 9, 10, models.StatusPending)
		assert.NotEmpty(t, appt.ID)
		assert.False(t, appt.CreatedAt.IsZero())

		found, err := s.GetAppointment(ctx, appt.ID)
		require.NoError(t, err)
		assert.Equal(t, appt.ID, found.ID)
	})

	t.Run("overlap detection", func(t *testing.T) {
		s := NewEmptyMemoryStore()
		book(t, s, "appt-1", "101", 9, 11, models.StatusConfirmed)

		overlap, err := s.HasOverlap(ctx, "101", at(10), at(12), "")
		require.NoError(t, err)
		assert.True(t, overlap)

		// Touching windows do not overlap
		overlap, err = s.HasOverlap(ctx, "101", at(11), at(12), "")
		require.NoError(t, err)
		assert.False(t, overlap)

		// Another resource is free
		overlap, err = s.HasOverlap(ctx, "102", at(10), at(12), "")
		require.NoError(t, err)
		assert.False(t, overlap)
	})

	t.Run("canceled bookings release their window", func(t *testing.T) {
		s := NewEmptyMemoryStore()
		book(t, s, "appt-1", "101", 9, 11, models.StatusCanceled)

		overlap, err := s.HasOverlap(ctx, "101", at(10), at(12), "")
		require.NoError(t, err)
		assert.False(t, overlap)
	})

	t.Run("exclude id ignores the edited appointment", func(t *testing.T) {
		s := NewEmptyMemoryStore()
		book(t, s, "appt-1", "101", 9, 11, models.StatusConfirmed)

		overlap, err := s.HasOverlap(ctx, "101", at(9), at(11), "appt-1")
		require.NoError(t, err)
		assert.False(t, overlap)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		s := NewEmptyMemoryStore()
		appt := book(t, s, "appt-1", "101", 9, 11, models.StatusPending)

		appt.Status = models.StatusConfirmed
		require.NoError(t, s.UpdateAppointment(ctx, appt))

		found, err := s.GetAppointment(ctx, "appt-1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, found.Status)

		err = s.UpdateAppointment(ctx, models.Appointment{ID: "missing"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore_Catalog(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	customers, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	services, err := s.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, 90, services[1].Duration)

	technicians, err := s.ListResources(ctx, "technician")
	require.NoError(t, err)
	assert.Len(t, technicians, 2)

	bays, err := s.ListResources(ctx, "bay")
	require.NoError(t, err)
	assert.Len(t, bays, 2)

	all, err := s.ListResources(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	vehicles, err := s.ListCustomerVehicles(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)

	vehicles, err = s.ListCustomerVehicles(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)

	vehicles, err = s.ListCustomerVehicles(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyMemoryStore()

	user := models.User{
		Username: "staff1",
		Email:    "staff1@example.com",
		Role:     models.RoleStaff,
	}
	require.NoError(t, s.InsertUser(ctx, user))

	found, err := s.FindUserByUsername(ctx, "staff1")
	require.NoError(t, err)
	assert.True(t, found.IsActive)
	assert.False(t, found.ID.IsZero())

	byEmail, err := s.FindUserByEmail(ctx, "staff1@example.com")
	require.NoError(t, err)
	assert.Equal(t, found.ID, byEmail.ID)

	byID, err := s.FindUserByID(ctx, found.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "staff1", byID.Username)

	require.NoError(t, s.UpdateLastLogin(ctx, found.ID.Hex()))
	found, err = s.FindUserByUsername(ctx, "staff1")
	require.NoError(t, err)
	assert.NotNil(t, found.LastLogin)

	_, err = s.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.UpdateLastLogin(ctx, "000000000000000000000000"), ErrNotFound)
}
