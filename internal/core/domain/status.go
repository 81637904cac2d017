package domain

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusQuoted    ShipmentStatus = "quoted"
	StatusBooked    ShipmentStatus = "booked"
	StatusPickup    ShipmentStatus = "pickup"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusCustoms   ShipmentStatus = "customs"
	StatusDelivered ShipmentStatus = "delivered"
	StatusDocument  ShipmentStatus = "document"
	StatusInvoiced  ShipmentStatus = "invoiced"
	StatusCancelled ShipmentStatus = "cancelled"
)

// AllStatuses lists every shipment status in pipeline order.
var AllStatuses = []ShipmentStatus{
	StatusQuoted,
	StatusBooked,
	StatusPickup,
	StatusInTransit,
	StatusCustoms,
	StatusDelivered,
	StatusDocument,
	StatusInvoiced,
	StatusCancelled,
}

// validTransitions defines the allowed state machine transitions.
// Terminal statuses (invoiced, cancelled) have no outgoing edges.
var validTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusQuoted:    {StatusBooked, StatusCancelled},
	StatusBooked:    {StatusPickup, StatusCancelled},
	StatusPickup:    {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusCustoms, StatusDelivered, StatusCancelled},
	StatusCustoms:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {StatusDocument},
	StatusDocument:  {StatusInvoiced},
}

// IsValid reports whether s is a known shipment status.
func (s ShipmentStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusInvoiced || s == StatusCancelled
}

// IsClosed reports whether s counts as closed for SLA classification.
func (s ShipmentStatus) IsClosed() bool {
	return s == StatusDelivered || s == StatusInvoiced || s == StatusCancelled
}

// IsDeletable reports whether a shipment in status s may be soft-deleted.
// Only pre-transit and cancelled shipments may be removed.
func (s ShipmentStatus) IsDeletable() bool {
	return s == StatusQuoted || s == StatusCancelled
}

// CanTransitionTo reports whether a transition from s to next is valid.
// Self-transitions and transitions out of terminal states are never valid.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
