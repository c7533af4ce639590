package models

// Customer is a lookup-list entry for the booking form.
type Customer struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// Vehicle is a customer-owned vehicle selectable when booking.
type Vehicle struct {
	ID         string `json:"id" bson:"_id"`
	CustomerID string `json:"customerId" bson:"customer_id"`
	Plate      string `json:"plate" bson:"plate"`
	Model      string `json:"model" bson:"model"`
}

// Service is a bookable service with its expected duration in minutes.
// Duration 0 means the duration is unknown and end times are not derived.
type Service struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Duration int    `json:"duration" bson:"duration"`
}

// Resource is a bookable entity (technician or service bay) whose time
// windows are checked for conflicts.
type Resource struct {
	ID    string `json:"id" bson:"_id"`
	Title string `json:"title" bson:"title"`
	Type  string `json:"type" bson:"type"` // "technician" or "bay"
}
