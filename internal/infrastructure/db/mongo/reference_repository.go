package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	collectionCustomers = "customers"
	collectionCouriers  = "couriers"
	collectionPartners  = "partners"
	collectionInvoices  = "invoices"
)

// ReferenceRepository answers existence checks against the collections owned
// by the collaborator modules. This engine only ever reads them.
type ReferenceRepository struct {
	db *mongo.Database
}

func NewReferenceRepository(db *mongo.Database) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) CustomerExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, collectionCustomers, bson.M{"_id": id})
}

func (r *ReferenceRepository) CourierExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, collectionCouriers, bson.M{"_id": id})
}

func (r *ReferenceRepository) PartnerExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, collectionPartners, bson.M{"_id": id})
}

func (r *ReferenceRepository) ShipmentHasInvoices(ctx context.Context, shipmentID string) (bool, error) {
	return r.exists(ctx, collectionInvoices, bson.M{"shipment_id": shipmentID})
}

func (r *ReferenceRepository) exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
