package models

import "time"

// Timeline entry types
const (
	TimelineUpdate        = "update"
	TimelineAlert         = "alert"
	TimelineCompletion    = "completion"
	TimelineCommunication = "communication"
)

// TimelineEntry is an event appended to a work order's activity feed.
// The work-order reference is not enforced as a foreign key.
type TimelineEntry struct {
	ID          string    `json:"id" bson:"_id"`
	WorkOrderID string    `json:"workOrderId" bson:"work_order_id"`
	Type        string    `json:"type" bson:"type"` // "update", "alert", "completion", "communication"
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
