package ports

import (
	"context"
	"time"

	"github.com/skycourier/backoffice/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
// Soft-deleted shipments are always excluded.
type ListShipmentsFilter struct {
	Status      string    // optional: filter by shipment status
	ServiceType string    // optional: filter by service type
	Priority    string    // optional: filter by priority
	CourierID   string    // optional: filter by assigned courier
	Search      string    // optional: partial match on shipment_number or air_waybill
	DateFrom    time.Time // optional: created_at >= DateFrom
	DateTo      time.Time // optional: created_at <= DateTo
	Page        int       // 1-based
	Limit       int       // max rows per page (capped at 100 by service)
}

// ShipmentRepository defines persistence operations for shipments.
//
// ApplyTransition and UpdateDetails are compare-and-set writes: the update is
// applied only if the stored status still matches the expectation, so two
// racing writers cannot both succeed on the same precondition. A failed match
// is reported as domain.ErrStatusConflict; the caller re-reads and re-derives
// the proper error.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	FindByNumber(ctx context.Context, number string) (*domain.Shipment, error)
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Shipment, error)
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, int64, error)

	// ApplyTransition atomically applies update iff the shipment's current
	// status equals expected and the shipment is not soft-deleted.
	ApplyTransition(ctx context.Context, id string, expected domain.ShipmentStatus, update domain.TransitionUpdate) error

	// UpdateDetails atomically applies a pre-transit edit iff the current
	// status is one of allowed.
	UpdateDetails(ctx context.Context, id string, allowed []domain.ShipmentStatus, update domain.DetailsUpdate) error

	// SetCourier records a courier assignment without touching the status.
	SetCourier(ctx context.Context, id, courierID string, at time.Time) error

	// SoftDelete marks the shipment deleted iff its status is still one of
	// allowed.
	SoftDelete(ctx context.Context, id string, allowed []domain.ShipmentStatus, at time.Time) error

	// Remove hard-deletes a shipment. Used only to compensate a conversion
	// that lost the quote claim race.
	Remove(ctx context.Context, id string) error
}

// SequenceRepository allocates per-service-type shipment number sequences.
// Allocation must be atomic; counting existing rows races under concurrent
// creation.
type SequenceRepository interface {
	NextShipmentSequence(ctx context.Context, serviceType domain.ServiceType) (int64, error)
}
