package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skycourier/backoffice/internal/api/metrics"
	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

// QuoteHandler handles HTTP requests for quote conversion.
type QuoteHandler struct {
	service ports.ConversionService
}

func NewQuoteHandler(service ports.ConversionService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Convert handles POST /v1/quotes/:quote_id/convert.
//
// @Summary      Convert an accepted quote into a shipment
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        quote_id  path      string  true  "Quote id"
// @Success      201       {object}  shipmentResponse
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /v1/quotes/{quote_id}/convert [post]
func (h *QuoteHandler) Convert(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	shipment, err := h.service.Convert(c.Request().Context(), c.Param("quote_id"), actor)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(conversionResult(err)).Inc()
		return err
	}

	metrics.ConversionsTotal.WithLabelValues("converted").Inc()
	metrics.ShipmentsCreatedTotal.WithLabelValues(string(shipment.ServiceType), "quote").Inc()
	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

func conversionResult(err error) string {
	if errors.Is(err, domain.ErrAlreadyConverted) {
		return "lost_race"
	}
	return "rejected"
}
