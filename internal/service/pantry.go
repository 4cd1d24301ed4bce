package service

import (
	"context"
	"errors"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the service runs without a
// configured storage backend.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// PantryService provides inventory batch operations: the read and write
// sides of the allocation boundary.
type PantryService interface {
	// Snapshot returns the active batches of a pantry, a consistent read
	// the allocation computes against.
	Snapshot(ctx context.Context, pantryID string) ([]model.Batch, error)
	// AddBatch records new stock as a fresh batch.
	AddBatch(ctx context.Context, pantryID string, batch model.Batch) (*repository.BatchDocument, error)
	// RemoveBatch deletes a batch outright (spoiled or entered in error).
	RemoveBatch(ctx context.Context, pantryID, batchID string) error
	// Apply commits a computed consumption plan atomically.
	Apply(ctx context.Context, pantryID string, deltas []model.BatchDelta) error
}

// PantryServiceImpl implements PantryService over the batches repository.
type PantryServiceImpl struct {
	batchesRepo repository.BatchesRepositoryInterface
}

// NewPantryService creates a new pantry service.
func NewPantryService(batchesRepo repository.BatchesRepositoryInterface) PantryService {
	return &PantryServiceImpl{batchesRepo: batchesRepo}
}

func (s *PantryServiceImpl) Snapshot(ctx context.Context, pantryID string) ([]model.Batch, error) {
	if s.batchesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.batchesRepo.ListActive(ctx, pantryID)
}

func (s *PantryServiceImpl) AddBatch(ctx context.Context, pantryID string, batch model.Batch) (*repository.BatchDocument, error) {
	if s.batchesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.batchesRepo.Insert(ctx, pantryID, batch)
}

func (s *PantryServiceImpl) RemoveBatch(ctx context.Context, pantryID, batchID string) error {
	if s.batchesRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.batchesRepo.Delete(ctx, pantryID, batchID)
}

func (s *PantryServiceImpl) Apply(ctx context.Context, pantryID string, deltas []model.BatchDelta) error {
	if s.batchesRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.batchesRepo.ApplyDeltas(ctx, pantryID, deltas)
}
