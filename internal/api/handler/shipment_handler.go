package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skycourier/backoffice/internal/api/metrics"
	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment lifecycle operations.
type ShipmentHandler struct {
	service ports.LifecycleService
}

func NewShipmentHandler(service ports.LifecycleService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createShipmentRequest  true   "Shipment details"
// @Success      201              {object}  shipmentResponse
// @Failure      400              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	shipment, err := h.service.Create(c.Request().Context(), toCreateInput(req, actor, idempotencyKey))
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(string(shipment.ServiceType), "direct").Inc()
	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// Get handles GET /v1/shipments/:shipment_number.
//
// @Summary      Get a shipment by number
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        shipment_number  path      string  true  "Shipment number (e.g. OBC-00042)"
// @Success      200              {object}  shipmentResponse
// @Failure      404              {object}  map[string]string
// @Router       /v1/shipments/{shipment_number} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.service.Get(c.Request().Context(), c.Param("shipment_number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// History handles GET /v1/shipments/:shipment_number/history.
//
// @Summary      Get the full status history of a shipment
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        shipment_number  path      string  true  "Shipment number"
// @Success      200              {object}  historyResponse
// @Failure      404              {object}  map[string]string
// @Router       /v1/shipments/{shipment_number}/history [get]
func (h *ShipmentHandler) History(c echo.Context) error {
	number := c.Param("shipment_number")
	entries, err := h.service.History(c.Request().Context(), number)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHistoryResponse(number, entries))
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by status"
// @Param        service_type  query     string  false  "Filter by service type"
// @Param        priority      query     string  false  "Filter by priority"
// @Param        sla_state     query     string  false  "Filter by SLA state at read time (on_time|warning|overdue)"
// @Param        courier_id    query     string  false  "Filter by assigned courier"
// @Param        search        query     string  false  "Partial match on shipment number or air waybill"
// @Param        page          query     int     false  "Page (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  listShipmentsResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	input := ports.ListShipmentsInput{
		Status:      c.QueryParam("status"),
		ServiceType: c.QueryParam("service_type"),
		Priority:    c.QueryParam("priority"),
		SLAState:    c.QueryParam("sla_state"),
		CourierID:   c.QueryParam("courier_id"),
		Search:      c.QueryParam("search"),
		Page:        page,
		Limit:       limit,
	}
	if v := c.QueryParam("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_from must be RFC 3339")
		}
		input.DateFrom = t
	}
	if v := c.QueryParam("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date_to must be RFC 3339")
		}
		input.DateTo = t
	}

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Transition handles POST /v1/shipments/:shipment_number/transition.
//
// @Summary      Transition a shipment to a new status
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        shipment_number  path      string             true   "Shipment number"
// @Param        Idempotency-Key  header    string             false  "Idempotency key for safe retries"
// @Param        body             body      transitionRequest  true   "Target status and transition metadata"
// @Success      200              {object}  shipmentResponse
// @Failure      404              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /v1/shipments/{shipment_number}/transition [post]
func (h *ShipmentHandler) Transition(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	number := c.Param("shipment_number")
	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	start := time.Now()
	shipment, err := h.service.Transition(c.Request().Context(),
		toTransitionInput(req, number, actor, idempotencyKey))
	if err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues(transitionErrorReason(err)).Inc()
		metrics.TransitionDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return err
	}

	metrics.TransitionsTotal.WithLabelValues(string(shipment.Status)).Inc()
	metrics.TransitionDuration.WithLabelValues(string(shipment.Status)).Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// AssignCourier handles POST /v1/shipments/:shipment_number/assign-courier.
//
// @Summary      Assign a courier without changing the status
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        shipment_number  path      string                true  "Shipment number"
// @Param        body             body      assignCourierRequest  true  "Courier and optional instructions"
// @Success      200              {object}  shipmentResponse
// @Failure      404              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /v1/shipments/{shipment_number}/assign-courier [post]
func (h *ShipmentHandler) AssignCourier(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req assignCourierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shipment, err := h.service.AssignCourier(c.Request().Context(), ports.AssignCourierInput{
		ShipmentNumber: c.Param("shipment_number"),
		CourierID:      req.CourierID,
		Instructions:   req.Instructions,
		Actor:          actor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Update handles PATCH /v1/shipments/:shipment_number.
//
// @Summary      Edit a shipment before it is in transit
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        shipment_number  path      string                 true  "Shipment number"
// @Param        body             body      updateShipmentRequest  true  "Fields to change; omitted fields stay unchanged"
// @Success      200              {object}  shipmentResponse
// @Failure      404              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /v1/shipments/{shipment_number} [patch]
func (h *ShipmentHandler) Update(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shipment, err := h.service.UpdateDetails(c.Request().Context(),
		toUpdateInput(req, c.Param("shipment_number"), actor))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Delete handles DELETE /v1/shipments/:shipment_number.
//
// @Summary      Delete a shipment (pre-transit or cancelled only)
// @Tags         shipments
// @Security     BearerAuth
// @Param        shipment_number  path  string  true  "Shipment number"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/shipments/{shipment_number} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	actor, _, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("shipment_number"), actor); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func transitionErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrShipmentNotFound):
		return "shipment_not_found"
	case errors.Is(err, domain.ErrValidationFailed):
		return "validation"
	case errors.Is(err, domain.ErrReferenceIntegrity):
		return "reference"
	default:
		return "internal"
	}
}
