package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task origin and status values. The engine only ever produces automatic,
// pending tasks; the task module owns the rest of their lifecycle.
const (
	TaskOriginAutomatic = "automatic"
	TaskStatusPending   = "pending"
)

// Task is an operator to-do produced when a shipment enters a status.
type Task struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	ShipmentID  string            `json:"shipment_id" bson:"shipment_id"`
	Title       string            `json:"title" bson:"title"`
	Description string            `json:"description,omitempty" bson:"description,omitempty"`
	Origin      string            `json:"origin" bson:"origin"`
	Status      string            `json:"status" bson:"status"`
	Priority    Priority          `json:"priority" bson:"priority"`
	DueDate     *time.Time        `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}

// TaskTemplate describes one task to instantiate when a shipment enters a
// status. A nil DueAfterMinutes produces a task with no due date.
type TaskTemplate struct {
	Title           string
	Description     string
	Priority        Priority
	DueAfterMinutes *int
	Metadata        map[string]string
}

func minutes(m int) *int { return &m }

// taskTemplatesFor resolves the template set for a (status, serviceType)
// pair. The switch is exhaustive over all statuses so that adding a status
// to the state machine forces a template decision here.
func taskTemplatesFor(status ShipmentStatus, serviceType ServiceType) []TaskTemplate {
	switch status {
	case StatusQuoted:
		return []TaskTemplate{
			{Title: "Confirm commercial terms with customer", Priority: PriorityStandard, DueAfterMinutes: minutes(24 * 60)},
		}
	case StatusBooked:
		if serviceType == ServiceNextFlightOut {
			return []TaskTemplate{
				{Title: "Book next available flight", Priority: PriorityUrgent, DueAfterMinutes: minutes(120)},
				{Title: "Prepare air waybill", Priority: PriorityUrgent, DueAfterMinutes: minutes(240)},
			}
		}
		return []TaskTemplate{
			{Title: "Brief courier on itinerary", Priority: PriorityUrgent, DueAfterMinutes: minutes(120)},
			{Title: "Verify courier travel documents", Priority: PriorityUrgent, DueAfterMinutes: minutes(60)},
		}
	case StatusPickup:
		return []TaskTemplate{
			{Title: "Confirm pickup completed", Priority: PriorityUrgent, DueAfterMinutes: minutes(60)},
		}
	case StatusInTransit:
		if serviceType == ServiceNextFlightOut {
			return []TaskTemplate{
				{Title: "Confirm flight departure", Priority: PriorityStandard, DueAfterMinutes: minutes(180)},
			}
		}
		return nil
	case StatusCustoms:
		return []TaskTemplate{
			{Title: "Submit customs documentation", Priority: PriorityUrgent, DueAfterMinutes: minutes(240)},
		}
	case StatusDelivered:
		return []TaskTemplate{
			{Title: "Collect proof of delivery", Priority: PriorityStandard, DueAfterMinutes: minutes(24 * 60)},
		}
	case StatusDocument:
		return []TaskTemplate{
			{Title: "Compile shipment document pack", Priority: PriorityStandard},
			{Title: "Issue invoice", Priority: PriorityStandard, DueAfterMinutes: minutes(48 * 60)},
		}
	case StatusInvoiced, StatusCancelled:
		return nil
	}
	return nil
}

// GenerateTasks instantiates the automatic tasks for a shipment entering
// newStatus at the given instant. Due dates are absolute, computed from the
// transition timestamp. The generator never mutates the shipment; persisting
// (and reporting partial failure) is the caller's concern.
func GenerateTasks(shipmentID string, newStatus ShipmentStatus, serviceType ServiceType, at time.Time) []Task {
	templates := taskTemplatesFor(newStatus, serviceType)
	if len(templates) == 0 {
		return nil
	}

	tasks := make([]Task, 0, len(templates))
	for _, tpl := range templates {
		task := Task{
			ID:          uuid.NewString(),
			ShipmentID:  shipmentID,
			Title:       tpl.Title,
			Description: tpl.Description,
			Origin:      TaskOriginAutomatic,
			Status:      TaskStatusPending,
			Priority:    tpl.Priority,
			Metadata:    tpl.Metadata,
			CreatedAt:   at,
		}
		if tpl.DueAfterMinutes != nil {
			due := at.Add(time.Duration(*tpl.DueAfterMinutes) * time.Minute)
			task.DueDate = &due
		}
		tasks = append(tasks, task)
	}
	return tasks
}
