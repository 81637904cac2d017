package ports

import (
	"context"
	"time"

	"github.com/skycourier/backoffice/internal/core/domain"
)

// DimensionsInput holds consignment size.
type DimensionsInput struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// CreateShipmentInput carries all data needed to create a shipment directly,
// without an originating quote.
type CreateShipmentInput struct {
	CustomerID          string
	ServiceType         string
	Priority            string
	Origin              string
	Destination         string
	Dimensions          DimensionsInput
	WeightKg            float64
	Description         string
	SpecialInstructions string
	AgreedPrice         float64
	Currency            string
	Deadline            time.Time
	PartnerID           string
	CourierID           string
	AirWaybill          string
	Actor               string
	IdempotencyKey      string
}

// TransitionInput carries a status transition request. The metadata fields
// are typed per operation; which of them a given edge accepts is validated
// by the lifecycle service.
type TransitionInput struct {
	ShipmentNumber string
	Target         string
	Location       string
	Notes          string

	FlightNumber       string
	NewDeadline        *time.Time
	CourierID          string
	ActualCost         *float64
	CancellationReason string
	ProofOfDelivery    bool

	Actor          string
	IdempotencyKey string
}

// AssignCourierInput carries a courier assignment, which leaves the status
// untouched but is still recorded in the history ledger.
type AssignCourierInput struct {
	ShipmentNumber string
	CourierID      string
	Instructions   string
	Actor          string
}

// UpdateShipmentInput carries a pre-transit edit. Nil fields are left
// unchanged.
type UpdateShipmentInput struct {
	ShipmentNumber      string
	Priority            *string
	Deadline            *time.Time
	Description         *string
	SpecialInstructions *string
	Dimensions          *DimensionsInput
	WeightKg            *float64
	AgreedPrice         *float64
	Actor               string
}

// ListShipmentsInput carries all parameters for the list endpoint.
type ListShipmentsInput struct {
	Status      string
	ServiceType string
	Priority    string
	SLAState    string // on_time|warning|overdue, evaluated at read time
	CourierID   string
	Search      string
	DateFrom    time.Time
	DateTo      time.Time
	Page        int
	Limit       int
}

// ListShipmentsResult is returned by List. SLA snapshots on the items are
// refreshed to the read instant.
type ListShipmentsResult struct {
	Items      []*domain.Shipment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// LifecycleService drives a shipment through the status state machine.
type LifecycleService interface {
	Create(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	Get(ctx context.Context, shipmentNumber string) (*domain.Shipment, error)
	History(ctx context.Context, shipmentNumber string) ([]*domain.StatusHistoryEntry, error)
	List(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
	Transition(ctx context.Context, input TransitionInput) (*domain.Shipment, error)
	AssignCourier(ctx context.Context, input AssignCourierInput) (*domain.Shipment, error)
	UpdateDetails(ctx context.Context, input UpdateShipmentInput) (*domain.Shipment, error)
	Delete(ctx context.Context, shipmentNumber, actor string) error
}

// ConversionService materializes a shipment from an accepted quote.
type ConversionService interface {
	Convert(ctx context.Context, quoteID, actor string) (*domain.Shipment, error)
}
