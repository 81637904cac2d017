package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skycourier/backoffice/internal/core/domain"
)

const collectionQuotes = "quotes"

type QuoteRepository struct {
	col *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{col: db.Collection(collectionQuotes)}
}

func (r *QuoteRepository) FindByID(ctx context.Context, id string) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.Quote
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, err
	}
	return &q, nil
}

// ClaimConversion links the quote to its shipment iff the quote is still
// accepted and unconverted. The filter carries the precondition, so the check
// and the write are one atomic operation and at most one caller ever matches.
func (r *QuoteRepository) ClaimConversion(ctx context.Context, quoteID, shipmentID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{
		"_id":                      quoteID,
		"status":                   domain.QuoteAccepted,
		"converted_to_shipment_id": bson.M{"$exists": false},
	}, bson.M{"$set": bson.M{
		"converted_to_shipment_id": shipmentID,
		"updated_at":               at,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		ferr := r.col.FindOne(ctx, bson.M{"_id": quoteID}).Err()
		if errors.Is(ferr, mongo.ErrNoDocuments) {
			return domain.ErrQuoteNotFound
		}
		if ferr != nil {
			return ferr
		}
		return domain.ErrAlreadyConverted
	}
	return nil
}
