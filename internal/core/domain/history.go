package domain

import "time"

// HistoryMetadata carries the structured payload of a status transition.
// All fields are optional; which ones are populated depends on the edge.
type HistoryMetadata struct {
	FlightNumber       string     `json:"flight_number,omitempty" bson:"flight_number,omitempty"`
	ProofOfDelivery    bool       `json:"proof_of_delivery,omitempty" bson:"proof_of_delivery,omitempty"`
	ActualCost         *float64   `json:"actual_cost,omitempty" bson:"actual_cost,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty" bson:"cancellation_reason,omitempty"`
	DeadlineBefore     *time.Time `json:"deadline_before,omitempty" bson:"deadline_before,omitempty"`
	DeadlineAfter      *time.Time `json:"deadline_after,omitempty" bson:"deadline_after,omitempty"`
	CourierID          string     `json:"courier_id,omitempty" bson:"courier_id,omitempty"`
	Instructions       string     `json:"instructions,omitempty" bson:"instructions,omitempty"`
	QuoteID            string     `json:"quote_id,omitempty" bson:"quote_id,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m HistoryMetadata) IsZero() bool {
	return m == HistoryMetadata{}
}

// StatusHistoryEntry is one immutable record in the append-only ledger.
// Entries are never edited; they are removed only when the parent shipment
// is deleted, which is permitted pre-transit only.
type StatusHistoryEntry struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	ShipmentID string           `json:"shipment_id" bson:"shipment_id"`
	Status     ShipmentStatus   `json:"status" bson:"status"`
	Timestamp  time.Time        `json:"timestamp" bson:"timestamp"`
	Location   string           `json:"location,omitempty" bson:"location,omitempty"`
	Notes      string           `json:"notes,omitempty" bson:"notes,omitempty"`
	Metadata   *HistoryMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Actor      string           `json:"actor" bson:"actor"`
}
