package domain

import "time"

// QuoteStatus is the commercial state of a quote. Only accepted quotes may
// be converted into shipments.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteExpired  QuoteStatus = "expired"
)

// Quote holds the commercial terms negotiated with a customer before a
// shipment exists. ConvertedToShipmentID is write-once: it is set by the
// conversion claim and never cleared, which is what guarantees at most one
// shipment per quote.
type Quote struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	QuoteNumber string      `json:"quote_number" bson:"quote_number"`
	CustomerID  string      `json:"customer_id" bson:"customer_id"`
	ServiceType ServiceType `json:"service_type" bson:"service_type"`
	Priority    Priority    `json:"priority" bson:"priority"`
	Status      QuoteStatus `json:"status" bson:"status"`

	Origin      string     `json:"origin" bson:"origin"`
	Destination string     `json:"destination" bson:"destination"`
	Dimensions  Dimensions `json:"dimensions" bson:"dimensions"`
	WeightKg    float64    `json:"weight_kg" bson:"weight_kg"`

	Description         string `json:"description,omitempty" bson:"description,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`

	TotalPrice *float64 `json:"total_price,omitempty" bson:"total_price,omitempty"`
	Currency   string   `json:"currency,omitempty" bson:"currency,omitempty"`

	PartnerID    string `json:"partner_id,omitempty" bson:"partner_id,omitempty"`
	CourierID    string `json:"courier_id,omitempty" bson:"courier_id,omitempty"`
	FlightNumber string `json:"flight_number,omitempty" bson:"flight_number,omitempty"`

	Deadline time.Time `json:"deadline" bson:"deadline"`

	ConvertedToShipmentID string `json:"converted_to_shipment_id,omitempty" bson:"converted_to_shipment_id,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
