package handler

import (
	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest, actor, idempotencyKey string) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		CustomerID:  req.CustomerID,
		ServiceType: req.ServiceType,
		Priority:    req.Priority,
		Origin:      req.Origin,
		Destination: req.Destination,
		Dimensions: ports.DimensionsInput{
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		},
		WeightKg:            req.WeightKg,
		Description:         req.Description,
		SpecialInstructions: req.SpecialInstructions,
		AgreedPrice:         req.AgreedPrice,
		Currency:            req.Currency,
		Deadline:            req.Deadline,
		PartnerID:           req.PartnerID,
		CourierID:           req.CourierID,
		AirWaybill:          req.AirWaybill,
		Actor:               actor,
		IdempotencyKey:      idempotencyKey,
	}
}

func toTransitionInput(req transitionRequest, shipmentNumber, actor, idempotencyKey string) ports.TransitionInput {
	return ports.TransitionInput{
		ShipmentNumber:     shipmentNumber,
		Target:             req.Status,
		Location:           req.Location,
		Notes:              req.Notes,
		FlightNumber:       req.FlightNumber,
		NewDeadline:        req.NewDeadline,
		CourierID:          req.CourierID,
		ActualCost:         req.ActualCost,
		CancellationReason: req.CancellationReason,
		ProofOfDelivery:    req.ProofOfDelivery,
		Actor:              actor,
		IdempotencyKey:     idempotencyKey,
	}
}

func toUpdateInput(req updateShipmentRequest, shipmentNumber, actor string) ports.UpdateShipmentInput {
	input := ports.UpdateShipmentInput{
		ShipmentNumber:      shipmentNumber,
		Priority:            req.Priority,
		Deadline:            req.Deadline,
		Description:         req.Description,
		SpecialInstructions: req.SpecialInstructions,
		WeightKg:            req.WeightKg,
		AgreedPrice:         req.AgreedPrice,
		Actor:               actor,
	}
	if req.Dimensions != nil {
		input.Dimensions = &ports.DimensionsInput{
			LengthCm: req.Dimensions.LengthCm,
			WidthCm:  req.Dimensions.WidthCm,
			HeightCm: req.Dimensions.HeightCm,
		}
	}
	return input
}

// --- Domain → HTTP response ---

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	resp := shipmentResponse{
		ShipmentNumber: s.ShipmentNumber,
		AirWaybill:     s.AirWaybill,
		CustomerID:     s.CustomerID,
		QuoteID:        s.QuoteID,
		ServiceType:    string(s.ServiceType),
		Priority:       string(s.Priority),
		Status:         string(s.Status),
		Origin:         s.Origin,
		Destination:    s.Destination,
		Dimensions: dimensionsResponse{
			LengthCm: s.Dimensions.LengthCm,
			WidthCm:  s.Dimensions.WidthCm,
			HeightCm: s.Dimensions.HeightCm,
		},
		WeightKg:            s.WeightKg,
		Description:         s.Description,
		SpecialInstructions: s.SpecialInstructions,
		AgreedPrice:         s.AgreedPrice,
		Currency:            s.Currency,
		ActualCost:          s.ActualCost,
		PartnerID:           s.PartnerID,
		CourierID:           s.CourierID,
		FlightNumber:        s.FlightNumber,
		SLA: slaResponse{
			Deadline:       s.SLA.Deadline.UTC(),
			Status:         string(s.SLA.Status),
			RemainingHours: s.SLA.RemainingHours,
		},
		CompletedAt: s.CompletedAt,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
		Links: shipmentLinks{
			Self:    "/v1/shipments/" + s.ShipmentNumber,
			History: "/v1/shipments/" + s.ShipmentNumber + "/history",
		},
	}
	if s.NextTask != nil {
		resp.NextTask = &nextTaskResponse{
			Description: s.NextTask.Description,
			DueDate:     s.NextTask.DueDate,
			Priority:    string(s.NextTask.Priority),
		}
	}
	return resp
}

func toHistoryResponse(shipmentNumber string, entries []*domain.StatusHistoryEntry) historyResponse {
	items := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = historyEntryResponse{
			Status:    string(e.Status),
			Timestamp: e.Timestamp.UTC(),
			Location:  e.Location,
			Notes:     e.Notes,
			Actor:     e.Actor,
		}
		if e.Metadata != nil {
			items[i].Metadata = &historyMetadataResponse{
				FlightNumber:       e.Metadata.FlightNumber,
				ProofOfDelivery:    e.Metadata.ProofOfDelivery,
				ActualCost:         e.Metadata.ActualCost,
				CancellationReason: e.Metadata.CancellationReason,
				DeadlineBefore:     e.Metadata.DeadlineBefore,
				DeadlineAfter:      e.Metadata.DeadlineAfter,
				CourierID:          e.Metadata.CourierID,
				Instructions:       e.Metadata.Instructions,
				QuoteID:            e.Metadata.QuoteID,
			}
		}
	}
	return historyResponse{ShipmentNumber: shipmentNumber, History: items}
}

func toListResponse(r *ports.ListShipmentsResult) listShipmentsResponse {
	items := make([]shipmentResponse, len(r.Items))
	for i, s := range r.Items {
		items[i] = toShipmentResponse(s)
	}
	return listShipmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
