package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skycourier/backoffice/internal/core/domain"
)

const collectionCounters = "counters"

type SequenceRepository struct {
	col *mongo.Collection
}

func NewSequenceRepository(db *mongo.Database) *SequenceRepository {
	return &SequenceRepository{col: db.Collection(collectionCounters)}
}

// NextShipmentSequence atomically increments and returns the per-service-type
// counter. Counting existing shipments instead would race under concurrent
// creation and repeat numbers after deletions.
func (r *SequenceRepository) NextShipmentSequence(ctx context.Context, serviceType domain.ServiceType) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Value int64 `bson:"value"`
	}
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": "shipment_number_" + string(serviceType)},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}
