package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

const (
	maxFlightNumberLen = 20
	maxListLimit       = 100
	defaultListLimit   = 20
)

// OperationGuard abstracts the idempotency store (Redis). Retried requests
// carrying the same Idempotency-Key are recognized and replayed instead of
// re-applied.
type OperationGuard interface {
	IsDuplicate(ctx context.Context, operation, key string) (bool, error)
	Mark(ctx context.Context, operation, key string) error
}

// LifecycleDeps bundles the collaborators of the lifecycle service.
type LifecycleDeps struct {
	Shipments ports.ShipmentRepository
	Sequences ports.SequenceRepository
	History   ports.HistoryRepository
	Tasks     ports.TaskRepository
	Refs      ports.ReferenceChecker
	Audit     ports.AuditSink
	Guard     OperationGuard

	// WarningThreshold is how close to the deadline the SLA flips to
	// warning. Zero means domain.DefaultWarningThreshold.
	WarningThreshold time.Duration

	Log zerolog.Logger
}

// LifecycleService orchestrates the shipment state machine: transition
// validation, SLA reclassification, next-action planning, the history
// ledger, and automatic task generation.
type LifecycleService struct {
	deps LifecycleDeps
	now  func() time.Time
}

// NewLifecycleService returns a LifecycleService wired to the given
// collaborators.
func NewLifecycleService(deps LifecycleDeps) *LifecycleService {
	if deps.WarningThreshold <= 0 {
		deps.WarningThreshold = domain.DefaultWarningThreshold
	}
	return &LifecycleService{
		deps: deps,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service's time source. Intended for tests.
func (s *LifecycleService) WithClock(now func() time.Time) *LifecycleService {
	s.now = now
	return s
}

// Create registers a shipment directly, without an originating quote. The
// shipment starts in quoted with a freshly classified SLA, a planned next
// action, and the synthetic creation entry in the history ledger.
func (s *LifecycleService) Create(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	// Idempotent replay: same key returns the previously created shipment.
	if input.IdempotencyKey != "" {
		existing, err := s.deps.Shipments.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.deps.Log.Info().
				Str("idempotency_key", input.IdempotencyKey).
				Str("shipment_number", existing.ShipmentNumber).
				Msg("idempotent replay")
			s.refreshSLA(existing)
			return existing, nil
		}
	}

	now := s.now()
	serviceType := domain.ServiceType(input.ServiceType)
	priority := domain.Priority(input.Priority)

	if err := s.validateCreate(ctx, input, serviceType, priority, now); err != nil {
		return nil, err
	}

	seq, err := s.deps.Sequences.NextShipmentSequence(ctx, serviceType)
	if err != nil {
		return nil, fmt.Errorf("allocate shipment number: %w", err)
	}

	sla := domain.ClassifySLA(input.Deadline, domain.StatusQuoted, now, s.deps.WarningThreshold)
	shipment := &domain.Shipment{
		ID:                  uuid.NewString(),
		ShipmentNumber:      domain.FormatShipmentNumber(serviceType, seq),
		AirWaybill:          input.AirWaybill,
		CustomerID:          input.CustomerID,
		ServiceType:         serviceType,
		Priority:            priority,
		Status:              domain.StatusQuoted,
		Origin:              input.Origin,
		Destination:         input.Destination,
		Dimensions:          domain.Dimensions(input.Dimensions),
		WeightKg:            input.WeightKg,
		Description:         input.Description,
		SpecialInstructions: input.SpecialInstructions,
		AgreedPrice:         input.AgreedPrice,
		Currency:            input.Currency,
		PartnerID:           input.PartnerID,
		CourierID:           input.CourierID,
		Deadline:            input.Deadline,
		SLA:                 sla,
		NextTask:            domain.PlanNextAction(domain.StatusQuoted, priority, sla, now),
		IdempotencyKey:      input.IdempotencyKey,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.deps.Shipments.Create(ctx, shipment); err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	s.appendHistory(ctx, &domain.StatusHistoryEntry{
		ID:         uuid.NewString(),
		ShipmentID: shipment.ID,
		Status:     domain.StatusQuoted,
		Timestamp:  now,
		Notes:      "shipment created",
		Actor:      input.Actor,
	})
	s.generateTasks(ctx, shipment, domain.StatusQuoted, now)
	s.audit(shipment.ShipmentNumber, "", "shipment.create", input.Actor, "", now)

	s.deps.Log.Info().
		Str("shipment_number", shipment.ShipmentNumber).
		Str("service_type", string(serviceType)).
		Msg("shipment created")
	return shipment, nil
}

// Get loads a shipment by number and refreshes its SLA snapshot for the
// read instant. The refreshed snapshot is not written back; elapsed
// wall-clock time alone must never require a write.
func (s *LifecycleService) Get(ctx context.Context, shipmentNumber string) (*domain.Shipment, error) {
	shipment, err := s.deps.Shipments.FindByNumber(ctx, shipmentNumber)
	if err != nil {
		return nil, err
	}
	s.refreshSLA(shipment)
	return shipment, nil
}

// History returns the shipment's full status history, oldest first.
func (s *LifecycleService) History(ctx context.Context, shipmentNumber string) ([]*domain.StatusHistoryEntry, error) {
	shipment, err := s.deps.Shipments.FindByNumber(ctx, shipmentNumber)
	if err != nil {
		return nil, err
	}
	return s.deps.History.ListByShipment(ctx, shipment.ID)
}

// List returns a page of shipments with SLA snapshots refreshed to the read
// instant. The optional SLA-state filter is applied to the refreshed page,
// since the classification depends on "now" and cannot be queried at rest.
func (s *LifecycleService) List(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, total, err := s.deps.Shipments.List(ctx, ports.ListShipmentsFilter{
		Status:      input.Status,
		ServiceType: input.ServiceType,
		Priority:    input.Priority,
		CourierID:   input.CourierID,
		Search:      input.Search,
		DateFrom:    input.DateFrom,
		DateTo:      input.DateTo,
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}

	for _, item := range items {
		s.refreshSLA(item)
	}
	if input.SLAState != "" {
		filtered := items[:0]
		for _, item := range items {
			if string(item.SLA.Status) == input.SLAState {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Transition moves a shipment to the target status as one atomic unit:
// graph check, payload validation, SLA reclassification, next-action
// replanning, compare-and-set persist, history append, task generation.
func (s *LifecycleService) Transition(ctx context.Context, input ports.TransitionInput) (*domain.Shipment, error) {
	// 1. Idempotent replay of a retried request.
	if input.IdempotencyKey != "" {
		isDup, err := s.deps.Guard.IsDuplicate(ctx, "transition", input.IdempotencyKey)
		if err != nil {
			s.deps.Log.Warn().Err(err).Str("shipment_number", input.ShipmentNumber).Msg("idempotency check failed, processing anyway")
		} else if isDup {
			s.deps.Log.Info().Str("shipment_number", input.ShipmentNumber).Msg("duplicate transition request replayed")
			return s.Get(ctx, input.ShipmentNumber)
		}
	}

	// 2. Load the shipment (soft-deleted shipments read as absent).
	shipment, err := s.deps.Shipments.FindByNumber(ctx, input.ShipmentNumber)
	if err != nil {
		return nil, err
	}

	// 3. Validate the target against the transition graph.
	from := shipment.Status
	target := domain.ShipmentStatus(input.Target)
	if !target.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", input.Target))
	}
	if !shipment.Status.CanTransitionTo(target) {
		return nil, domain.NewInvalidTransition(shipment.Status, target)
	}

	// 4. Validate transition-specific payload constraints.
	if err := s.validateTransitionPayload(ctx, shipment, input); err != nil {
		return nil, err
	}

	now := s.now()
	deadline := shipment.Deadline
	if input.NewDeadline != nil {
		deadline = *input.NewDeadline
	}

	// 5. Reclassify SLA with the possibly-updated deadline and replan the
	// next action for the new status.
	sla := domain.ClassifySLA(deadline, target, now, s.deps.WarningThreshold)
	next := domain.PlanNextAction(target, shipment.Priority, sla, now)

	update := domain.TransitionUpdate{
		Status:       target,
		SLA:          sla,
		NextTask:     next,
		Deadline:     deadline,
		FlightNumber: input.FlightNumber,
		CourierID:    input.CourierID,
		ActualCost:   input.ActualCost,
		UpdatedAt:    now,
	}
	if (target == domain.StatusDelivered || target == domain.StatusInvoiced) && shipment.CompletedAt == nil {
		update.CompletedAt = &now
	}

	// 6. Persist atomically, guarded by the expected prior status. A
	// concurrent writer that won the race makes the CAS miss; re-read and
	// reject through the graph.
	if err := s.deps.Shipments.ApplyTransition(ctx, shipment.ID, shipment.Status, update); err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			fresh, ferr := s.deps.Shipments.FindByNumber(ctx, input.ShipmentNumber)
			if ferr != nil {
				return nil, ferr
			}
			return nil, domain.NewInvalidTransition(fresh.Status, target)
		}
		return nil, fmt.Errorf("apply transition: %w", err)
	}

	if input.IdempotencyKey != "" {
		if markErr := s.deps.Guard.Mark(ctx, "transition", input.IdempotencyKey); markErr != nil {
			s.deps.Log.Warn().Err(markErr).Str("shipment_number", input.ShipmentNumber).Msg("failed to mark idempotency key")
		}
	}

	// 7. Append exactly one ledger entry, strictly after the commit.
	s.appendHistory(ctx, &domain.StatusHistoryEntry{
		ID:         uuid.NewString(),
		ShipmentID: shipment.ID,
		Status:     target,
		Timestamp:  now,
		Location:   input.Location,
		Notes:      input.Notes,
		Metadata:   transitionMetadata(shipment, input),
		Actor:      input.Actor,
	})

	applyTransitionLocally(shipment, update)

	// 8. Automatic tasks for the new (status, serviceType) pair.
	s.generateTasks(ctx, shipment, target, now)
	s.audit(shipment.ShipmentNumber, "", "shipment.transition", input.Actor,
		fmt.Sprintf("%s -> %s", from, target), now)

	s.deps.Log.Info().
		Str("shipment_number", shipment.ShipmentNumber).
		Str("status", string(target)).
		Str("actor", input.Actor).
		Msg("shipment transitioned")
	return shipment, nil
}

// AssignCourier links a courier to the shipment without changing its status.
// The assignment is still recorded in the history ledger.
func (s *LifecycleService) AssignCourier(ctx context.Context, input ports.AssignCourierInput) (*domain.Shipment, error) {
	shipment, err := s.deps.Shipments.FindByNumber(ctx, input.ShipmentNumber)
	if err != nil {
		return nil, err
	}
	if shipment.Status.IsTerminal() {
		return nil, domain.NewPreconditionError(
			fmt.Sprintf("cannot assign courier to a shipment in terminal status %q", shipment.Status))
	}

	exists, err := s.deps.Refs.CourierExists(ctx, input.CourierID)
	if err != nil {
		return nil, fmt.Errorf("check courier: %w", err)
	}
	if !exists {
		return nil, domain.NewReferenceError("courier", input.CourierID)
	}

	now := s.now()
	if err := s.deps.Shipments.SetCourier(ctx, shipment.ID, input.CourierID, now); err != nil {
		return nil, fmt.Errorf("assign courier: %w", err)
	}

	s.appendHistory(ctx, &domain.StatusHistoryEntry{
		ID:         uuid.NewString(),
		ShipmentID: shipment.ID,
		Status:     shipment.Status,
		Timestamp:  now,
		Notes:      "courier assigned",
		Metadata: &domain.HistoryMetadata{
			CourierID:    input.CourierID,
			Instructions: input.Instructions,
		},
		Actor: input.Actor,
	})
	s.audit(shipment.ShipmentNumber, "", "shipment.assign_courier", input.Actor, input.CourierID, now)

	shipment.CourierID = input.CourierID
	shipment.UpdatedAt = now
	s.refreshSLA(shipment)
	return shipment, nil
}

// UpdateDetails applies a pre-transit edit. Edits are allowed only while the
// shipment is quoted or booked; priority and deadline changes recompute the
// SLA snapshot and the next action.
func (s *LifecycleService) UpdateDetails(ctx context.Context, input ports.UpdateShipmentInput) (*domain.Shipment, error) {
	shipment, err := s.deps.Shipments.FindByNumber(ctx, input.ShipmentNumber)
	if err != nil {
		return nil, err
	}

	editable := []domain.ShipmentStatus{domain.StatusQuoted, domain.StatusBooked}
	if shipment.Status != domain.StatusQuoted && shipment.Status != domain.StatusBooked {
		return nil, domain.NewPreconditionError(
			fmt.Sprintf("shipment in status %q can no longer be edited", shipment.Status))
	}

	now := s.now()
	update := domain.DetailsUpdate{
		Description:         input.Description,
		SpecialInstructions: input.SpecialInstructions,
		WeightKg:            input.WeightKg,
		AgreedPrice:         input.AgreedPrice,
		UpdatedAt:           now,
	}

	priority := shipment.Priority
	if input.Priority != nil {
		p := domain.Priority(*input.Priority)
		if !p.IsValid() {
			return nil, domain.NewValidationError("priority", fmt.Sprintf("unknown priority %q", *input.Priority))
		}
		priority = p
		update.Priority = &p
	}

	deadline := shipment.Deadline
	if input.Deadline != nil {
		if !input.Deadline.After(shipment.Deadline) {
			return nil, domain.NewValidationError("deadline", "new deadline must be strictly later than the current one")
		}
		deadline = *input.Deadline
		update.Deadline = input.Deadline
	}

	if input.Dimensions != nil {
		d := domain.Dimensions(*input.Dimensions)
		update.Dimensions = &d
	}

	// Priority and deadline feed the derived snapshots; recompute rather
	// than carry forward.
	if input.Priority != nil || input.Deadline != nil {
		sla := domain.ClassifySLA(deadline, shipment.Status, now, s.deps.WarningThreshold)
		update.SLA = &sla
		update.NextTask = domain.PlanNextAction(shipment.Status, priority, sla, now)
	}

	if err := s.deps.Shipments.UpdateDetails(ctx, shipment.ID, editable, update); err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, domain.NewPreconditionError("shipment left the editable statuses concurrently")
		}
		return nil, fmt.Errorf("update shipment: %w", err)
	}

	if input.Deadline != nil {
		before := shipment.Deadline
		s.appendHistory(ctx, &domain.StatusHistoryEntry{
			ID:         uuid.NewString(),
			ShipmentID: shipment.ID,
			Status:     shipment.Status,
			Timestamp:  now,
			Notes:      "deadline changed",
			Metadata: &domain.HistoryMetadata{
				DeadlineBefore: &before,
				DeadlineAfter:  input.Deadline,
			},
			Actor: input.Actor,
		})
	}
	s.audit(shipment.ShipmentNumber, "", "shipment.update", input.Actor, "", now)

	applyDetailsLocally(shipment, update)
	s.refreshSLA(shipment)
	return shipment, nil
}

// Delete soft-deletes a shipment and purges its history. Permitted only
// while the shipment is quoted or cancelled and no invoice references it.
func (s *LifecycleService) Delete(ctx context.Context, shipmentNumber, actor string) error {
	shipment, err := s.deps.Shipments.FindByNumber(ctx, shipmentNumber)
	if err != nil {
		return err
	}
	if !shipment.Status.IsDeletable() {
		return domain.NewPreconditionError(
			fmt.Sprintf("shipment in status %q cannot be deleted", shipment.Status))
	}

	invoiced, err := s.deps.Refs.ShipmentHasInvoices(ctx, shipment.ID)
	if err != nil {
		return fmt.Errorf("check invoices: %w", err)
	}
	if invoiced {
		return domain.NewPreconditionError("shipment has invoices and cannot be deleted")
	}

	now := s.now()
	deletable := []domain.ShipmentStatus{domain.StatusQuoted, domain.StatusCancelled}
	if err := s.deps.Shipments.SoftDelete(ctx, shipment.ID, deletable, now); err != nil {
		if errors.Is(err, domain.ErrStatusConflict) {
			return domain.NewPreconditionError("shipment left the deletable statuses concurrently")
		}
		return fmt.Errorf("delete shipment: %w", err)
	}

	// The ledger is immutable except when the whole lineage goes away with
	// the shipment.
	if err := s.deps.History.DeleteByShipment(ctx, shipment.ID); err != nil {
		s.deps.Log.Warn().Err(err).Str("shipment_number", shipmentNumber).Msg("failed to purge status history")
	}
	s.audit(shipment.ShipmentNumber, "", "shipment.delete", actor, "", now)

	s.deps.Log.Info().Str("shipment_number", shipmentNumber).Str("actor", actor).Msg("shipment deleted")
	return nil
}

// --- helpers ---

func (s *LifecycleService) validateCreate(ctx context.Context, input ports.CreateShipmentInput, serviceType domain.ServiceType, priority domain.Priority, now time.Time) error {
	if !serviceType.IsValid() {
		return domain.NewValidationError("service_type", fmt.Sprintf("unknown service type %q", input.ServiceType))
	}
	if !priority.IsValid() {
		return domain.NewValidationError("priority", fmt.Sprintf("unknown priority %q", input.Priority))
	}
	if input.Deadline.IsZero() {
		return domain.NewValidationError("deadline", "deadline is required")
	}
	if !input.Deadline.After(now) {
		return domain.NewValidationError("deadline", "deadline must be in the future")
	}
	if input.AgreedPrice <= 0 {
		return domain.NewValidationError("agreed_price", "agreed price must be positive")
	}

	exists, err := s.deps.Refs.CustomerExists(ctx, input.CustomerID)
	if err != nil {
		return fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return domain.NewReferenceError("customer", input.CustomerID)
	}
	if input.CourierID != "" {
		ok, err := s.deps.Refs.CourierExists(ctx, input.CourierID)
		if err != nil {
			return fmt.Errorf("check courier: %w", err)
		}
		if !ok {
			return domain.NewReferenceError("courier", input.CourierID)
		}
	}
	if input.PartnerID != "" {
		ok, err := s.deps.Refs.PartnerExists(ctx, input.PartnerID)
		if err != nil {
			return fmt.Errorf("check partner: %w", err)
		}
		if !ok {
			return domain.NewReferenceError("partner", input.PartnerID)
		}
	}
	return nil
}

func (s *LifecycleService) validateTransitionPayload(ctx context.Context, shipment *domain.Shipment, input ports.TransitionInput) error {
	if len(input.FlightNumber) > maxFlightNumberLen {
		return domain.NewValidationError("flight_number",
			fmt.Sprintf("must be at most %d characters", maxFlightNumberLen))
	}
	if input.NewDeadline != nil && !input.NewDeadline.After(shipment.Deadline) {
		return domain.NewValidationError("new_deadline", "must be strictly later than the current deadline")
	}
	if input.CourierID != "" {
		exists, err := s.deps.Refs.CourierExists(ctx, input.CourierID)
		if err != nil {
			return fmt.Errorf("check courier: %w", err)
		}
		if !exists {
			return domain.NewReferenceError("courier", input.CourierID)
		}
	}
	return nil
}

// appendHistory writes one ledger entry. The parent write has already
// committed at this point, so a ledger failure is reported loudly but does
// not fail the operation; retrying the whole call would be rejected by the
// transition graph.
func (s *LifecycleService) appendHistory(ctx context.Context, entry *domain.StatusHistoryEntry) {
	if err := s.deps.History.Append(ctx, entry); err != nil {
		s.deps.Log.Error().Err(err).
			Str("shipment_id", entry.ShipmentID).
			Str("status", string(entry.Status)).
			Msg("failed to append status history entry")
	}
}

// generateTasks creates the automatic tasks for the new status. Task
// creation is best-effort: a partial failure is surfaced as a warning, never
// as a rollback of the already-committed transition.
func (s *LifecycleService) generateTasks(ctx context.Context, shipment *domain.Shipment, status domain.ShipmentStatus, at time.Time) {
	tasks := domain.GenerateTasks(shipment.ID, status, shipment.ServiceType, at)
	if len(tasks) == 0 {
		return
	}
	created, err := s.deps.Tasks.CreateBatch(ctx, tasks)
	if err != nil {
		s.deps.Log.Warn().Err(err).
			Str("shipment_number", shipment.ShipmentNumber).
			Str("status", string(status)).
			Int("requested", len(tasks)).
			Int("created", created).
			Msg("automatic task generation partially failed")
	}
}

func (s *LifecycleService) audit(shipmentNumber, quoteID, action, actor, detail string, at time.Time) {
	if s.deps.Audit == nil {
		return
	}
	s.deps.Audit.Enqueue(ports.AuditRecord{
		ID:             uuid.NewString(),
		ShipmentNumber: shipmentNumber,
		QuoteID:        quoteID,
		Action:         action,
		Actor:          actor,
		Detail:         detail,
		At:             at,
	})
}

func (s *LifecycleService) refreshSLA(shipment *domain.Shipment) {
	shipment.SLA = domain.ClassifySLA(shipment.Deadline, shipment.Status, s.now(), s.deps.WarningThreshold)
}

func transitionMetadata(shipment *domain.Shipment, input ports.TransitionInput) *domain.HistoryMetadata {
	meta := domain.HistoryMetadata{
		FlightNumber:       input.FlightNumber,
		ProofOfDelivery:    input.ProofOfDelivery,
		ActualCost:         input.ActualCost,
		CancellationReason: strings.TrimSpace(input.CancellationReason),
		CourierID:          input.CourierID,
	}
	if input.NewDeadline != nil {
		before := shipment.Deadline
		meta.DeadlineBefore = &before
		meta.DeadlineAfter = input.NewDeadline
	}
	if meta.IsZero() {
		return nil
	}
	return &meta
}

// applyTransitionLocally mirrors the persisted update onto the in-memory
// copy returned to the caller.
func applyTransitionLocally(shipment *domain.Shipment, update domain.TransitionUpdate) {
	shipment.Status = update.Status
	shipment.SLA = update.SLA
	shipment.NextTask = update.NextTask
	shipment.Deadline = update.Deadline
	if update.FlightNumber != "" {
		shipment.FlightNumber = update.FlightNumber
	}
	if update.CourierID != "" {
		shipment.CourierID = update.CourierID
	}
	if update.ActualCost != nil {
		shipment.ActualCost = update.ActualCost
	}
	if update.CompletedAt != nil {
		shipment.CompletedAt = update.CompletedAt
	}
	shipment.UpdatedAt = update.UpdatedAt
}

func applyDetailsLocally(shipment *domain.Shipment, update domain.DetailsUpdate) {
	if update.Priority != nil {
		shipment.Priority = *update.Priority
	}
	if update.Deadline != nil {
		shipment.Deadline = *update.Deadline
	}
	if update.Description != nil {
		shipment.Description = *update.Description
	}
	if update.SpecialInstructions != nil {
		shipment.SpecialInstructions = *update.SpecialInstructions
	}
	if update.Dimensions != nil {
		shipment.Dimensions = *update.Dimensions
	}
	if update.WeightKg != nil {
		shipment.WeightKg = *update.WeightKg
	}
	if update.AgreedPrice != nil {
		shipment.AgreedPrice = *update.AgreedPrice
	}
	if update.SLA != nil {
		shipment.SLA = *update.SLA
	}
	if update.NextTask != nil {
		shipment.NextTask = update.NextTask
	}
	shipment.UpdatedAt = update.UpdatedAt
}
