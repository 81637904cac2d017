package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skycourier/backoffice/internal/core/ports"
)

const collectionAuditLog = "audit_log"

type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditLog)}
}

func (r *AuditRepository) Insert(ctx context.Context, rec *ports.AuditRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, rec)
	return err
}
