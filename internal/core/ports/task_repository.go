package ports

import (
	"context"

	"github.com/skycourier/backoffice/internal/core/domain"
)

// TaskRepository is the write-side of the external task store. The engine
// creates tasks in bulk after a transition commits and never reads them back.
//
// CreateBatch reports how many tasks were durably created; created < len(tasks)
// together with a non-nil error signals a partial failure the caller must
// surface rather than swallow.
type TaskRepository interface {
	CreateBatch(ctx context.Context, tasks []domain.Task) (created int, err error)
}
