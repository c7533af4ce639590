package models

import "time"

// Priority levels for a work order
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Task statuses
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskDone       = "done"
)

// Part statuses
const (
	PartAvailable = "available"
	PartAwaiting  = "awaiting"
	PartReserved  = "reserved"
	PartConsumed  = "consumed"
)

// VehicleInfo identifies the vehicle a work order is for.
type VehicleInfo struct {
	Make  string `json:"make" bson:"make"`
	Model string `json:"model" bson:"model"`
	VIN   string `json:"vin" bson:"vin"`
	Plate string `json:"plate" bson:"plate"`
	Year  int    `json:"year" bson:"year"`
}

// CustomerInfo is the contact block embedded in a work order.
type CustomerInfo struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

// Technician is the staff member assigned to a work order.
type Technician struct {
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar" bson:"avatar"`
	Shift  string `json:"shift" bson:"shift"`
}

// Task is a single unit of work inside a work order.
type Task struct {
	ID     string `json:"id" bson:"id"`
	Label  string `json:"label" bson:"label"`
	Status string `json:"status" bson:"status"` // "pending", "in-progress", "done"
	Owner  string `json:"owner" bson:"owner"`
}

// Part is a part reserved or consumed by a work order.
type Part struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Quantity int    `json:"quantity" bson:"quantity"`
	Status   string `json:"status" bson:"status"` // "available", "awaiting", "reserved", "consumed"
}

// ChecklistItem is a safety or handover checklist line.
type ChecklistItem struct {
	ID        string `json:"id" bson:"id"`
	Item      string `json:"item" bson:"item"`
	Completed bool   `json:"completed" bson:"completed"`
}

// WorkOrder tracks a unit of vehicle-service work from assignment through
// completion. IDs are opaque strings and immutable after creation.
type WorkOrder struct {
	ID          string          `json:"id" bson:"_id"`
	Vehicle     VehicleInfo     `json:"vehicle" bson:"vehicle"`
	Customer    CustomerInfo    `json:"customer" bson:"customer"`
	Priority    Priority        `json:"priority" bson:"priority"`
	Status      string          `json:"status" bson:"status"` // free text, e.g. "In Progress"
	Progress    int             `json:"progress" bson:"progress"`
	ETA         time.Time       `json:"eta" bson:"eta"`
	ServiceBay  string          `json:"serviceBay" bson:"service_bay"`
	Technician  Technician      `json:"technician" bson:"technician"`
	Tasks       []Task          `json:"tasks" bson:"tasks"`
	Parts       []Part          `json:"parts" bson:"parts"`
	Checklist   []ChecklistItem `json:"checklist" bson:"checklist"`
	Notes       string          `json:"notes" bson:"notes"`
	LastUpdated time.Time       `json:"lastUpdated" bson:"last_updated"`
}
