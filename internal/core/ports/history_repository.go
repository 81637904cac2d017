package ports

import (
	"context"

	"github.com/skycourier/backoffice/internal/core/domain"
)

// HistoryRepository is the append-only status history ledger. Entries are
// never edited; DeleteByShipment exists only as part of deleting the parent
// shipment.
type HistoryRepository interface {
	Append(ctx context.Context, entry *domain.StatusHistoryEntry) error

	// ListByShipment returns all entries ordered by timestamp ascending,
	// ties broken by insertion order.
	ListByShipment(ctx context.Context, shipmentID string) ([]*domain.StatusHistoryEntry, error)

	DeleteByShipment(ctx context.Context, shipmentID string) error
}
