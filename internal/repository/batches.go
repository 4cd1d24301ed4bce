package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// ErrStaleSnapshot is returned by ApplyDeltas when a guarded decrement
// finds less quantity than the delta assumes: the snapshot the plan was
// computed from is no longer current. Callers re-read and re-compute.
var ErrStaleSnapshot = errors.New("repository: inventory changed since snapshot was taken")

// BatchDocument is the MongoDB representation of an inventory batch.
type BatchDocument struct {
	ID             string     `bson:"_id" json:"batch_id"`
	PantryID       string     `bson:"pantry_id" json:"pantry_id"`
	ProductName    string     `bson:"product_name" json:"product_name"`
	Quantity       float64    `bson:"quantity" json:"quantity"`
	Unit           string     `bson:"unit" json:"unit"`
	ExpirationDate *time.Time `bson:"expiration_date,omitempty" json:"expiration_date,omitempty"`
	Status         string     `bson:"status" json:"status"`
	// UsedQuantity accumulates everything ever drawn from the batch, for
	// audit totals.
	UsedQuantity float64   `bson:"used_quantity" json:"used_quantity"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// toModel converts the document to the domain record the core consumes.
func (d BatchDocument) toModel() model.Batch {
	return model.Batch{
		ID:             d.ID,
		ProductName:    d.ProductName,
		Quantity:       d.Quantity,
		Unit:           d.Unit,
		ExpirationDate: d.ExpirationDate,
		Status:         model.BatchStatus(d.Status),
	}
}

// BatchesRepository provides batch storage operations.
type BatchesRepository struct {
	collection *mongo.Collection
}

// NewBatchesRepository creates a new batches repository.
func NewBatchesRepository(db *MongoDB) *BatchesRepository {
	return &BatchesRepository{collection: db.Batches}
}

// ListActive returns the active batches of a pantry as domain records,
// the inventory snapshot an allocation attempt computes against.
func (r *BatchesRepository) ListActive(ctx context.Context, pantryID string) ([]model.Batch, error) {
	filter := bson.M{
		"pantry_id": pantryID,
		"status":    string(model.BatchStatusActive),
		"quantity":  bson.M{"$gt": 0},
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []BatchDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	batches := make([]model.Batch, len(docs))
	for i, doc := range docs {
		batches[i] = doc.toModel()
	}
	return batches, nil
}

// Insert creates a new batch. New stock always creates a new batch;
// depleted batches are never topped up.
func (r *BatchesRepository) Insert(ctx context.Context, pantryID string, batch model.Batch) (*BatchDocument, error) {
	if batch.ID == "" {
		batch.ID = uuid.New().String()
	}
	if batch.Status == "" {
		batch.Status = model.BatchStatusActive
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	doc := BatchDocument{
		ID:             batch.ID,
		PantryID:       pantryID,
		ProductName:    batch.ProductName,
		Quantity:       batch.Quantity,
		Unit:           batch.Unit,
		ExpirationDate: batch.ExpirationDate,
		Status:         string(batch.Status),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a batch from a pantry. Returns mongo.ErrNoDocuments when
// the batch does not exist.
func (r *BatchesRepository) Delete(ctx context.Context, pantryID, batchID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": batchID, "pantry_id": pantryID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ApplyDeltas applies a computed consumption plan atomically.
//
// Each decrement is guarded by a quantity >= use filter, and the whole plan
// runs in a single session transaction: if any batch no longer holds what
// the plan assumes, the transaction aborts with ErrStaleSnapshot and the
// inventory is untouched. This is the compare-and-swap half of the core's
// compute-then-apply contract.
func (r *BatchesRepository) ApplyDeltas(ctx context.Context, pantryID string, deltas []model.BatchDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now()
		for _, delta := range deltas {
			filter := bson.M{
				"_id":       delta.BatchID,
				"pantry_id": pantryID,
				"status":    string(model.BatchStatusActive),
				"quantity":  bson.M{"$gte": delta.UseQuantity},
			}
			update := bson.M{
				"$inc": bson.M{
					"quantity":      -delta.UseQuantity,
					"used_quantity": delta.UseQuantity,
				},
				"$set": bson.M{"updated_at": now},
			}

			res, err := r.collection.UpdateOne(sc, filter, update)
			if err != nil {
				return nil, err
			}
			if res.MatchedCount == 0 {
				return nil, fmt.Errorf("%w: batch %s", ErrStaleSnapshot, delta.BatchID)
			}

			if delta.Depleted {
				_, err := r.collection.UpdateOne(sc,
					bson.M{"_id": delta.BatchID, "pantry_id": pantryID},
					bson.M{"$set": bson.M{
						"status":     string(model.BatchStatusDepleted),
						"quantity":   0,
						"updated_at": now,
					}},
				)
				if err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
	return err
}
