package handler

import "time"

// --- Request types ---

type dimensionsRequest struct {
	LengthCm float64 `json:"length_cm" validate:"required,gt=0"`
	WidthCm  float64 `json:"width_cm"  validate:"required,gt=0"`
	HeightCm float64 `json:"height_cm" validate:"required,gt=0"`
}

type createShipmentRequest struct {
	CustomerID          string            `json:"customer_id"  validate:"required"`
	ServiceType         string            `json:"service_type" validate:"required,oneof=on_board_courier next_flight_out"`
	Priority            string            `json:"priority"     validate:"required,oneof=standard urgent critical"`
	Origin              string            `json:"origin"       validate:"required"`
	Destination         string            `json:"destination"  validate:"required"`
	Dimensions          dimensionsRequest `json:"dimensions"   validate:"required"`
	WeightKg            float64           `json:"weight_kg"    validate:"required,gt=0"`
	Description         string            `json:"description"`
	SpecialInstructions string            `json:"special_instructions"`
	AgreedPrice         float64           `json:"agreed_price" validate:"required,gt=0"`
	Currency            string            `json:"currency"     validate:"required,len=3"`
	Deadline            time.Time         `json:"deadline"     validate:"required"`
	PartnerID           string            `json:"partner_id"`
	CourierID           string            `json:"courier_id"`
	AirWaybill          string            `json:"air_waybill"`
}

type transitionRequest struct {
	Status   string `json:"status" validate:"required"`
	Location string `json:"location"`
	Notes    string `json:"notes"`

	FlightNumber       string     `json:"flight_number"`
	NewDeadline        *time.Time `json:"new_deadline"`
	CourierID          string     `json:"courier_id"`
	ActualCost         *float64   `json:"actual_cost"`
	CancellationReason string     `json:"cancellation_reason"`
	ProofOfDelivery    bool       `json:"proof_of_delivery"`
}

type assignCourierRequest struct {
	CourierID    string `json:"courier_id" validate:"required"`
	Instructions string `json:"instructions"`
}

type updateShipmentRequest struct {
	Priority            *string            `json:"priority" validate:"omitempty,oneof=standard urgent critical"`
	Deadline            *time.Time         `json:"deadline"`
	Description         *string            `json:"description"`
	SpecialInstructions *string            `json:"special_instructions"`
	Dimensions          *dimensionsRequest `json:"dimensions"`
	WeightKg            *float64           `json:"weight_kg" validate:"omitempty,gt=0"`
	AgreedPrice         *float64           `json:"agreed_price" validate:"omitempty,gt=0"`
}

// --- Response types ---
// Owned by the transport layer, intentionally separate from domain types so
// the JSON contract is not coupled to internal changes.

type dimensionsResponse struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

type slaResponse struct {
	Deadline       time.Time `json:"deadline"`
	Status         string    `json:"status"`
	RemainingHours *int      `json:"remaining_hours,omitempty"`
}

type nextTaskResponse struct {
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
}

type shipmentLinks struct {
	Self    string `json:"self"`
	History string `json:"history"`
}

type shipmentResponse struct {
	ShipmentNumber      string             `json:"shipment_number"`
	AirWaybill          string             `json:"air_waybill,omitempty"`
	CustomerID          string             `json:"customer_id"`
	QuoteID             string             `json:"quote_id,omitempty"`
	ServiceType         string             `json:"service_type"`
	Priority            string             `json:"priority"`
	Status              string             `json:"status"`
	Origin              string             `json:"origin"`
	Destination         string             `json:"destination"`
	Dimensions          dimensionsResponse `json:"dimensions"`
	WeightKg            float64            `json:"weight_kg"`
	Description         string             `json:"description,omitempty"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	AgreedPrice         float64            `json:"agreed_price"`
	Currency            string             `json:"currency"`
	ActualCost          *float64           `json:"actual_cost,omitempty"`
	PartnerID           string             `json:"partner_id,omitempty"`
	CourierID           string             `json:"courier_id,omitempty"`
	FlightNumber        string             `json:"flight_number,omitempty"`
	SLA                 slaResponse        `json:"sla"`
	NextTask            *nextTaskResponse  `json:"next_task,omitempty"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	Links               shipmentLinks      `json:"_links"`
}

type historyMetadataResponse struct {
	FlightNumber       string     `json:"flight_number,omitempty"`
	ProofOfDelivery    bool       `json:"proof_of_delivery,omitempty"`
	ActualCost         *float64   `json:"actual_cost,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	DeadlineBefore     *time.Time `json:"deadline_before,omitempty"`
	DeadlineAfter      *time.Time `json:"deadline_after,omitempty"`
	CourierID          string     `json:"courier_id,omitempty"`
	Instructions       string     `json:"instructions,omitempty"`
	QuoteID            string     `json:"quote_id,omitempty"`
}

type historyEntryResponse struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Location  string                   `json:"location,omitempty"`
	Notes     string                   `json:"notes,omitempty"`
	Metadata  *historyMetadataResponse `json:"metadata,omitempty"`
	Actor     string                   `json:"actor"`
}

type historyResponse struct {
	ShipmentNumber string                 `json:"shipment_number"`
	History        []historyEntryResponse `json:"history"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listShipmentsResponse struct {
	Data       []shipmentResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
