package models

import "time"

// AppointmentStatus represents the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "Pending"
	StatusConfirmed  AppointmentStatus = "Confirmed"
	StatusInProgress AppointmentStatus = "InProgress"
	StatusCompleted  AppointmentStatus = "Completed"
	StatusCanceled   AppointmentStatus = "Canceled"
)

// IsValidAppointmentStatus checks if a status is one of the known states.
func IsValidAppointmentStatus(status AppointmentStatus) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// Appointment is a confirmed booking of a resource (technician or bay)
// for a time window.
type Appointment struct {
	ID         string            `json:"id" bson:"_id"`
	CustomerID string            `json:"customerId" bson:"customer_id"`
	VehicleID  string            `json:"vehicleId" bson:"vehicle_id"`
	ServiceID  string            `json:"serviceId" bson:"service_id"`
	ResourceID string            `json:"resourceId" bson:"resource_id"`
	Start      time.Time         `json:"start" bson:"start"`
	End        time.Time         `json:"end" bson:"end"`
	Status     AppointmentStatus `json:"status" bson:"status"`
	Notes      string            `json:"notes" bson:"notes"`
	CreatedAt  time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" bson:"updated_at"`
}

// Overlaps reports whether the appointment's window intersects [start, end).
// Windows that only touch at an endpoint do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.Start.Before(end) && a.End.After(start)
}

// Blocks reports whether the appointment counts against resource
// availability. Canceled bookings release their window.
func (a *Appointment) Blocks() bool {
	return a.Status != StatusCanceled
}
