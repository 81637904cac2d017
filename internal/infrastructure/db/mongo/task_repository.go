package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skycourier/backoffice/internal/core/domain"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

// CreateBatch inserts the generated tasks unordered, so one bad document does
// not abort the rest of the batch. The count of inserted documents comes back
// alongside the error so the caller can report a partial failure.
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []domain.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(tasks))
	for i := range tasks {
		docs[i] = tasks[i]
	}

	res, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	created := 0
	if res != nil {
		created = len(res.InsertedIDs)
	}
	return created, err
}
