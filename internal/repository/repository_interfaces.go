package repository

import (
	"context"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// BatchesRepositoryInterface abstracts batch storage so services and
// handlers can be tested with mocks.
type BatchesRepositoryInterface interface {
	ListActive(ctx context.Context, pantryID string) ([]model.Batch, error)
	Insert(ctx context.Context, pantryID string, batch model.Batch) (*BatchDocument, error)
	Delete(ctx context.Context, pantryID, batchID string) error
	ApplyDeltas(ctx context.Context, pantryID string, deltas []model.BatchDelta) error
}

// ConsumptionLogsRepositoryInterface abstracts the audit log store.
type ConsumptionLogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	Query(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error)
	Count(ctx context.Context, opts model.AuditQueryOptions) (int64, error)
}
