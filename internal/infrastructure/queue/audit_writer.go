package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/skycourier/backoffice/internal/api/metrics"
	"github.com/skycourier/backoffice/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditWriter persists audit records asynchronously through a fixed set of
// workers. Records are sharded by shipment number with consistent hashing, so
// records for the same shipment are written in the order they were enqueued.
// Audit is a side effect: a failed write is logged, never propagated.
type AuditWriter struct {
	workers []chan ports.AuditRecord
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditWriter creates an AuditWriter with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditWriter(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditWriter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &AuditWriter{
		workers: make([]chan ports.AuditRecord, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan ports.AuditRecord, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *AuditWriter) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a record to the worker responsible for its shipment. When the
// worker's buffer is full the record is dropped with a warning rather than
// blocking the request path.
func (w *AuditWriter) Enqueue(rec ports.AuditRecord) {
	ch := w.workers[w.shardIndex(rec.ShipmentNumber)]
	select {
	case ch <- rec:
		metrics.AuditQueueDepth.Inc()
	default:
		w.log.Warn().
			Str("shipment_number", rec.ShipmentNumber).
			Str("action", rec.Action).
			Msg("audit queue full, record dropped")
	}
}

// shardIndex maps a shipment number deterministically to a worker index.
func (w *AuditWriter) shardIndex(shipmentNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(shipmentNumber))
	return int(h.Sum32()) % len(w.workers)
}

func (w *AuditWriter) runWorker(ctx context.Context, id int, ch <-chan ports.AuditRecord) {
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.Dec()
			if err := w.repo.Insert(ctx, &rec); err != nil {
				w.log.Error().Err(err).
					Str("shipment_number", rec.ShipmentNumber).
					Str("action", rec.Action).
					Int("worker_id", id).
					Msg("audit record write failed")
			}
		}
	}
}
