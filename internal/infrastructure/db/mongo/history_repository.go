package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skycourier/backoffice/internal/core/domain"
)

const collectionStatusHistory = "status_history"

type HistoryRepository struct {
	col *mongo.Collection
}

func NewHistoryRepository(db *mongo.Database) *HistoryRepository {
	return &HistoryRepository{col: db.Collection(collectionStatusHistory)}
}

// Append inserts one ledger entry. Entries are never updated.
func (r *HistoryRepository) Append(ctx context.Context, entry *domain.StatusHistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, entry)
	return err
}

// ListByShipment returns the full ledger for a shipment, oldest first.
// Entries sharing a timestamp come back in insertion order, which the
// monotonically increasing _id preserves.
func (r *HistoryRepository) ListByShipment(ctx context.Context, shipmentID string) ([]*domain.StatusHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.col.Find(ctx, bson.M{"shipment_id": shipmentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []*domain.StatusHistoryEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByShipment removes the whole lineage. Called only when the parent
// shipment is deleted.
func (r *HistoryRepository) DeleteByShipment(ctx context.Context, shipmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"shipment_id": shipmentID})
	return err
}

// EnsureIndexes creates the ledger's read index.
func (r *HistoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shipment_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
