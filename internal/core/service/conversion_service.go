package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

// ConversionDeps bundles the collaborators of the conversion service.
type ConversionDeps struct {
	Quotes    ports.QuoteRepository
	Shipments ports.ShipmentRepository
	Sequences ports.SequenceRepository
	History   ports.HistoryRepository
	Tasks     ports.TaskRepository
	Audit     ports.AuditSink

	WarningThreshold time.Duration

	Log zerolog.Logger
}

// ConversionService materializes a shipment from an accepted quote. The
// quote's converted_to_shipment_id is write-once; the claim is atomic with
// the unconverted check, so concurrent conversion attempts yield exactly one
// shipment.
type ConversionService struct {
	deps ConversionDeps
	now  func() time.Time
}

// NewConversionService returns a ConversionService wired to the given
// collaborators.
func NewConversionService(deps ConversionDeps) *ConversionService {
	if deps.WarningThreshold <= 0 {
		deps.WarningThreshold = domain.DefaultWarningThreshold
	}
	return &ConversionService{
		deps: deps,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service's time source. Intended for tests.
func (s *ConversionService) WithClock(now func() time.Time) *ConversionService {
	s.now = now
	return s
}

// Convert creates a new shipment from an accepted quote and links the two.
// Preconditions: the quote exists, is accepted, has a total price, and has
// not been converted before.
func (s *ConversionService) Convert(ctx context.Context, quoteID, actor string) (*domain.Shipment, error) {
	// 1. Load and check preconditions.
	quote, err := s.deps.Quotes.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.ConvertedToShipmentID != "" {
		return nil, fmt.Errorf("convert quote %s: %w", quoteID, domain.ErrAlreadyConverted)
	}
	if quote.Status != domain.QuoteAccepted {
		return nil, domain.NewPreconditionError(
			fmt.Sprintf("quote %s is %q, only accepted quotes can be converted", quoteID, quote.Status))
	}
	if quote.TotalPrice == nil {
		return nil, domain.NewPreconditionError(
			fmt.Sprintf("quote %s has no total price", quoteID))
	}

	// 2. Allocate the shipment number within the quote's service type.
	seq, err := s.deps.Sequences.NextShipmentSequence(ctx, quote.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("allocate shipment number: %w", err)
	}

	// 3. Seed the shipment in quoted, carrying the quote's commercial
	// terms. Conversion hands off terms; it does not imply pickup has been
	// arranged.
	now := s.now()
	sla := domain.ClassifySLA(quote.Deadline, domain.StatusQuoted, now, s.deps.WarningThreshold)
	shipment := &domain.Shipment{
		ID:                  uuid.NewString(),
		ShipmentNumber:      domain.FormatShipmentNumber(quote.ServiceType, seq),
		CustomerID:          quote.CustomerID,
		QuoteID:             quote.ID,
		ServiceType:         quote.ServiceType,
		Priority:            quote.Priority,
		Status:              domain.StatusQuoted,
		Origin:              quote.Origin,
		Destination:         quote.Destination,
		Dimensions:          quote.Dimensions,
		WeightKg:            quote.WeightKg,
		Description:         quote.Description,
		SpecialInstructions: quote.SpecialInstructions,
		AgreedPrice:         *quote.TotalPrice,
		Currency:            quote.Currency,
		PartnerID:           quote.PartnerID,
		CourierID:           quote.CourierID,
		FlightNumber:        quote.FlightNumber,
		Deadline:            quote.Deadline,
		SLA:                 sla,
		NextTask:            domain.PlanNextAction(domain.StatusQuoted, quote.Priority, sla, now),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.deps.Shipments.Create(ctx, shipment); err != nil {
		return nil, fmt.Errorf("create shipment from quote %s: %w", quoteID, err)
	}

	// 4. Claim the quote. The unconverted check and the write are one
	// atomic operation; losing the race means another conversion already
	// produced a shipment, so the one just created is an orphan and must
	// go away.
	if err := s.deps.Quotes.ClaimConversion(ctx, quote.ID, shipment.ID, now); err != nil {
		if removeErr := s.deps.Shipments.Remove(ctx, shipment.ID); removeErr != nil {
			s.deps.Log.Error().Err(removeErr).
				Str("shipment_id", shipment.ID).
				Str("quote_id", quoteID).
				Msg("failed to remove orphan shipment after lost conversion race")
		}
		if errors.Is(err, domain.ErrAlreadyConverted) {
			return nil, fmt.Errorf("convert quote %s: %w", quoteID, domain.ErrAlreadyConverted)
		}
		return nil, fmt.Errorf("claim quote %s: %w", quoteID, err)
	}

	// 5. Synthetic creation entry noting the originating quote.
	if err := s.deps.History.Append(ctx, &domain.StatusHistoryEntry{
		ID:         uuid.NewString(),
		ShipmentID: shipment.ID,
		Status:     domain.StatusQuoted,
		Timestamp:  now,
		Notes:      fmt.Sprintf("created from quote %s", quote.QuoteNumber),
		Metadata:   &domain.HistoryMetadata{QuoteID: quote.ID},
		Actor:      actor,
	}); err != nil {
		s.deps.Log.Error().Err(err).
			Str("shipment_number", shipment.ShipmentNumber).
			Msg("failed to append creation history entry")
	}

	// 6. Automatic tasks for the initial status.
	tasks := domain.GenerateTasks(shipment.ID, domain.StatusQuoted, shipment.ServiceType, now)
	if len(tasks) > 0 {
		if created, err := s.deps.Tasks.CreateBatch(ctx, tasks); err != nil {
			s.deps.Log.Warn().Err(err).
				Str("shipment_number", shipment.ShipmentNumber).
				Int("requested", len(tasks)).
				Int("created", created).
				Msg("automatic task generation partially failed")
		}
	}

	if s.deps.Audit != nil {
		s.deps.Audit.Enqueue(ports.AuditRecord{
			ID:             uuid.NewString(),
			ShipmentNumber: shipment.ShipmentNumber,
			QuoteID:        quote.ID,
			Action:         "quote.convert",
			Actor:          actor,
			At:             now,
		})
	}

	s.deps.Log.Info().
		Str("quote_id", quote.ID).
		Str("shipment_number", shipment.ShipmentNumber).
		Str("service_type", string(shipment.ServiceType)).
		Msg("quote converted to shipment")
	return shipment, nil
}
