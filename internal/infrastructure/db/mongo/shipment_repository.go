package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

const collectionShipments = "shipments"

// notDeleted excludes soft-deleted shipments from every read and write.
var notDeleted = bson.M{"$exists": false}

type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

// Create inserts a new shipment document.
func (r *ShipmentRepository) Create(ctx context.Context, s *domain.Shipment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, s)
	return err
}

// FindByNumber retrieves a shipment by its human-readable number.
// Soft-deleted shipments read as absent.
func (r *ShipmentRepository) FindByNumber(ctx context.Context, number string) (*domain.Shipment, error) {
	return r.findOne(ctx, bson.M{"shipment_number": number, "deleted_at": notDeleted})
}

// FindByID retrieves a shipment by its internal id.
func (r *ShipmentRepository) FindByID(ctx context.Context, id string) (*domain.Shipment, error) {
	return r.findOne(ctx, bson.M{"_id": id, "deleted_at": notDeleted})
}

// FindByIdempotencyKey retrieves an existing shipment that was created with the given key.
func (r *ShipmentRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Shipment, error) {
	return r.findOne(ctx, bson.M{"idempotency_key": key, "deleted_at": notDeleted})
}

func (r *ShipmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Shipment
	err := r.col.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns a page of shipments matching the filter plus the total count,
// newest first.
func (r *ShipmentRepository) List(ctx context.Context, f ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"deleted_at": notDeleted}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.ServiceType != "" {
		filter["service_type"] = f.ServiceType
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}
	if f.CourierID != "" {
		filter["courier_id"] = f.CourierID
	}
	if f.Search != "" {
		pattern := bson.M{"$regex": f.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"shipment_number": pattern},
			{"air_waybill": pattern},
		}
	}
	created := bson.M{}
	if !f.DateFrom.IsZero() {
		created["$gte"] = f.DateFrom
	}
	if !f.DateTo.IsZero() {
		created["$lte"] = f.DateTo
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var items []*domain.Shipment
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ApplyTransition applies a status transition guarded by the expected prior
// status. The filter doubles as the compare of a compare-and-set: when the
// stored status has moved, the update matches nothing and the caller gets
// domain.ErrStatusConflict.
func (r *ShipmentRepository) ApplyTransition(ctx context.Context, id string, expected domain.ShipmentStatus, update domain.TransitionUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     update.Status,
		"sla":        update.SLA,
		"deadline":   update.Deadline,
		"updated_at": update.UpdatedAt,
	}
	unset := bson.M{}
	if update.NextTask != nil {
		set["next_task"] = update.NextTask
	} else {
		unset["next_task"] = ""
	}
	if update.FlightNumber != "" {
		set["flight_number"] = update.FlightNumber
	}
	if update.CourierID != "" {
		set["courier_id"] = update.CourierID
	}
	if update.ActualCost != nil {
		set["actual_cost"] = update.ActualCost
	}
	if update.CompletedAt != nil {
		set["completed_at"] = update.CompletedAt
	}

	change := bson.M{"$set": set}
	if len(unset) > 0 {
		change["$unset"] = unset
	}

	res, err := r.col.UpdateOne(ctx, bson.M{
		"_id":        id,
		"status":     expected,
		"deleted_at": notDeleted,
	}, change)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.conflictOrNotFound(ctx, id)
	}
	return nil
}

// UpdateDetails applies a pre-transit edit guarded by the allowed statuses.
func (r *ShipmentRepository) UpdateDetails(ctx context.Context, id string, allowed []domain.ShipmentStatus, update domain.DetailsUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": update.UpdatedAt}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.Deadline != nil {
		set["deadline"] = *update.Deadline
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.SpecialInstructions != nil {
		set["special_instructions"] = *update.SpecialInstructions
	}
	if update.Dimensions != nil {
		set["dimensions"] = *update.Dimensions
	}
	if update.WeightKg != nil {
		set["weight_kg"] = *update.WeightKg
	}
	if update.AgreedPrice != nil {
		set["agreed_price"] = *update.AgreedPrice
	}
	if update.SLA != nil {
		set["sla"] = *update.SLA
	}
	if update.NextTask != nil {
		set["next_task"] = update.NextTask
	}

	res, err := r.col.UpdateOne(ctx, bson.M{
		"_id":        id,
		"status":     bson.M{"$in": allowed},
		"deleted_at": notDeleted,
	}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.conflictOrNotFound(ctx, id)
	}
	return nil
}

// SetCourier records a courier assignment without touching the status.
func (r *ShipmentRepository) SetCourier(ctx context.Context, id, courierID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{
		"_id":        id,
		"deleted_at": notDeleted,
	}, bson.M{"$set": bson.M{"courier_id": courierID, "updated_at": at}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

// SoftDelete marks the shipment deleted iff its status is still one of allowed.
func (r *ShipmentRepository) SoftDelete(ctx context.Context, id string, allowed []domain.ShipmentStatus, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{
		"_id":        id,
		"status":     bson.M{"$in": allowed},
		"deleted_at": notDeleted,
	}, bson.M{"$set": bson.M{"deleted_at": at, "updated_at": at}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.conflictOrNotFound(ctx, id)
	}
	return nil
}

// Remove hard-deletes a shipment document. Used only to compensate a
// conversion that lost the quote claim race.
func (r *ShipmentRepository) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// conflictOrNotFound disambiguates a zero-match guarded update: the document
// either moved out of the expected status or does not exist at all.
func (r *ShipmentRepository) conflictOrNotFound(ctx context.Context, id string) error {
	err := r.col.FindOne(ctx, bson.M{"_id": id, "deleted_at": notDeleted}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrShipmentNotFound
	}
	if err != nil {
		return err
	}
	return domain.ErrStatusConflict
}

// EnsureIndexes creates the indexes the shipments collection relies on. The
// shipment number is unique; the idempotency key is unique among documents
// that carry one.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "shipment_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "idempotency_key", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"idempotency_key": bson.M{"$exists": true}}),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "courier_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
