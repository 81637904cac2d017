package ports

import (
	"context"
	"time"

	"github.com/skycourier/backoffice/internal/core/domain"
)

// QuoteRepository defines the persistence operations the conversion service
// needs from the quote store.
type QuoteRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Quote, error)

	// ClaimConversion sets converted_to_shipment_id on the quote iff the
	// quote is still accepted and unconverted. The check and the write are
	// one atomic operation; under concurrent conversion attempts exactly one
	// caller wins. The loser receives domain.ErrAlreadyConverted.
	ClaimConversion(ctx context.Context, quoteID, shipmentID string, at time.Time) error
}
