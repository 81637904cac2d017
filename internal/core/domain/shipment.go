package domain

import (
	"fmt"
	"time"
)

// ServiceType is the transport mode of a shipment. It selects task templates
// and the shipment number prefix.
type ServiceType string

const (
	ServiceOnBoardCourier ServiceType = "on_board_courier"
	ServiceNextFlightOut  ServiceType = "next_flight_out"
)

// IsValid reports whether t is a known service type.
func (t ServiceType) IsValid() bool {
	return t == ServiceOnBoardCourier || t == ServiceNextFlightOut
}

// NumberPrefix returns the shipment number prefix for the service type.
func (t ServiceType) NumberPrefix() string {
	if t == ServiceNextFlightOut {
		return "NFO"
	}
	return "OBC"
}

// FormatShipmentNumber renders a sequence value as a human-readable shipment
// number, e.g. OBC-00042.
func FormatShipmentNumber(t ServiceType, seq int64) string {
	return fmt.Sprintf("%s-%05d", t.NumberPrefix(), seq)
}

// Priority is the commercial urgency of a shipment.
type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityUrgent   Priority = "urgent"
	PriorityCritical Priority = "critical"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p == PriorityStandard || p == PriorityUrgent || p == PriorityCritical
}

// CapAtUrgent downgrades critical to urgent; other values pass through.
// Used for next actions on passive-wait statuses (pickup, customs).
func (p Priority) CapAtUrgent() Priority {
	if p == PriorityCritical {
		return PriorityUrgent
	}
	return p
}

// Dimensions represents the physical size of a consignment.
type Dimensions struct {
	LengthCm float64 `json:"length_cm" bson:"length_cm"`
	WidthCm  float64 `json:"width_cm" bson:"width_cm"`
	HeightCm float64 `json:"height_cm" bson:"height_cm"`
}

// NextTask is the single derived "what to do next" hint shown to operators.
type NextTask struct {
	Description string     `json:"description" bson:"description"`
	DueDate     *time.Time `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Priority    Priority   `json:"priority" bson:"priority"`
}

// Shipment is the core aggregate: one unit of work moving through the
// pipeline from quotation to invoicing.
type Shipment struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	ShipmentNumber string         `json:"shipment_number" bson:"shipment_number"`
	AirWaybill     string         `json:"air_waybill,omitempty" bson:"air_waybill,omitempty"`
	CustomerID     string         `json:"customer_id" bson:"customer_id"`
	QuoteID        string         `json:"quote_id,omitempty" bson:"quote_id,omitempty"`
	ServiceType    ServiceType    `json:"service_type" bson:"service_type"`
	Priority       Priority       `json:"priority" bson:"priority"`
	Status         ShipmentStatus `json:"status" bson:"status"`

	Origin      string     `json:"origin" bson:"origin"`
	Destination string     `json:"destination" bson:"destination"`
	Dimensions  Dimensions `json:"dimensions" bson:"dimensions"`
	WeightKg    float64    `json:"weight_kg" bson:"weight_kg"`

	Description         string `json:"description,omitempty" bson:"description,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`

	AgreedPrice float64  `json:"agreed_price" bson:"agreed_price"`
	Currency    string   `json:"currency" bson:"currency"`
	ActualCost  *float64 `json:"actual_cost,omitempty" bson:"actual_cost,omitempty"`

	PartnerID    string `json:"partner_id,omitempty" bson:"partner_id,omitempty"`
	CourierID    string `json:"courier_id,omitempty" bson:"courier_id,omitempty"`
	FlightNumber string `json:"flight_number,omitempty" bson:"flight_number,omitempty"`

	Deadline time.Time `json:"deadline" bson:"deadline"`
	SLA      SLA       `json:"sla" bson:"sla"`
	NextTask *NextTask `json:"next_task,omitempty" bson:"next_task,omitempty"`

	IdempotencyKey string `json:"-" bson:"idempotency_key,omitempty"`

	CompletedAt *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
	DeletedAt   *time.Time `json:"-" bson:"deleted_at,omitempty"`
}

// TransitionUpdate is the explicit set of fields a status transition may
// touch. The persistence layer applies exactly these fields and nothing else.
type TransitionUpdate struct {
	Status       ShipmentStatus
	SLA          SLA
	NextTask     *NextTask
	Deadline     time.Time
	FlightNumber string   // applied only when non-empty
	CourierID    string   // applied only when non-empty (reassignment)
	ActualCost   *float64 // applied only when non-nil
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

// DetailsUpdate is the explicit set of fields a pre-transit edit may touch.
// Nil pointers mean "leave unchanged".
type DetailsUpdate struct {
	Priority            *Priority
	Deadline            *time.Time
	Description         *string
	SpecialInstructions *string
	Dimensions          *Dimensions
	WeightKg            *float64
	AgreedPrice         *float64
	SLA                 *SLA
	NextTask            *NextTask
	UpdatedAt           time.Time
}
