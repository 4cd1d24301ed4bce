package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/pantry-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryBatchesRepository is an in-memory BatchesRepositoryInterface used
// when the service runs without MongoDB. Single-process only.
type MemoryBatchesRepository struct {
	mu      sync.Mutex
	batches map[string][]*BatchDocument // keyed by pantry ID, insertion order
}

// NewMemoryBatchesRepository creates an empty in-memory batch store.
func NewMemoryBatchesRepository() *MemoryBatchesRepository {
	return &MemoryBatchesRepository{
		batches: make(map[string][]*BatchDocument),
	}
}

// ListActive returns the pantry's active batches with remaining quantity,
// oldest first.
func (r *MemoryBatchesRepository) ListActive(_ context.Context, pantryID string) ([]model.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []model.Batch
	for _, doc := range r.batches[pantryID] {
		if doc.Status == string(model.BatchStatusActive) && doc.Quantity > 0 {
			result = append(result, doc.toModel())
		}
	}
	return result, nil
}

// Insert stores a new batch, assigning an ID when the batch carries none.
func (r *MemoryBatchesRepository) Insert(_ context.Context, pantryID string, batch model.Batch) (*BatchDocument, error) {
	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	if batch.Status == "" {
		batch.Status = model.BatchStatusActive
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	doc := &BatchDocument{
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

	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[pantryID] = append(r.batches[pantryID], doc)
	return doc, nil
}

// Delete removes a batch from the pantry.
func (r *MemoryBatchesRepository) Delete(_ context.Context, pantryID, batchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs := r.batches[pantryID]
	for i, doc := range docs {
		if doc.ID == batchID {
			r.batches[pantryID] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// ApplyDeltas applies a consumption plan. The whole plan is validated before
// any batch changes, so a stale snapshot leaves the store untouched.
func (r *MemoryBatchesRepository) ApplyDeltas(_ context.Context, pantryID string, deltas []model.BatchDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID := make(map[string]*BatchDocument)
	for _, doc := range r.batches[pantryID] {
		byID[doc.ID] = doc
	}

	for _, delta := range deltas {
		doc, ok := byID[delta.BatchID]
		if !ok || doc.Status != string(model.BatchStatusActive) || doc.Quantity < delta.UseQuantity {
			return fmt.Errorf("%w: batch %s", ErrStaleSnapshot, delta.BatchID)
		}
	}

	now := time.Now()
	for _, delta := range deltas {
		doc := byID[delta.BatchID]
		doc.Quantity -= delta.UseQuantity
		doc.UsedQuantity += delta.UseQuantity
		doc.UpdatedAt = now
		if delta.Depleted || doc.Quantity <= 0 {
			doc.Quantity = 0
			doc.Status = string(model.BatchStatusDepleted)
		}
	}
	return nil
}
