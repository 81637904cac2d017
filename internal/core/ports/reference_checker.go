package ports

import "context"

// ReferenceChecker resolves existence of entities owned by collaborator
// modules. The engine validates references by id only; it never manages
// their lifecycle.
type ReferenceChecker interface {
	CustomerExists(ctx context.Context, id string) (bool, error)
	CourierExists(ctx context.Context, id string) (bool, error)
	PartnerExists(ctx context.Context, id string) (bool, error)

	// ShipmentHasInvoices reports whether any invoice references the
	// shipment; such shipments cannot be deleted.
	ShipmentHasInvoices(ctx context.Context, shipmentID string) (bool, error)
}
