package ports

import (
	"context"
	"time"
)

// AuditRecord is one entry in the operational audit log, distinct from the
// status history ledger. Audit is a logging side effect, never a correctness
// dependency: failing to record one must not fail the operation it describes.
type AuditRecord struct {
	ID             string    `bson:"_id,omitempty"`
	ShipmentNumber string    `bson:"shipment_number,omitempty"`
	QuoteID        string    `bson:"quote_id,omitempty"`
	Action         string    `bson:"action"`
	Actor          string    `bson:"actor"`
	Detail         string    `bson:"detail,omitempty"`
	At             time.Time `bson:"at"`
}

// AuditSink accepts audit records for asynchronous persistence.
type AuditSink interface {
	Enqueue(rec AuditRecord)
}

// AuditRepository persists audit records.
type AuditRepository interface {
	Insert(ctx context.Context, rec *AuditRecord) error
}
