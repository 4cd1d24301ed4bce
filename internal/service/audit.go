package service

import (
	"context"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/repository"
)

// AuditService records pantry actions in the audit log collection.
type AuditService interface {
	Record(ctx context.Context, entry *model.AuditEntry) error
	Query(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error)
}

// AuditServiceImpl implements AuditService over the consumption logs
// repository.
type AuditServiceImpl struct {
	repo repository.ConsumptionLogsRepositoryInterface
}

// NewAuditService creates a new audit service.
func NewAuditService(repo repository.ConsumptionLogsRepositoryInterface) AuditService {
	return &AuditServiceImpl{repo: repo}
}

// Record stores a single audit entry.
func (s *AuditServiceImpl) Record(ctx context.Context, entry *model.AuditEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, entry)
}

// Query retrieves audit entries matching the options.
func (s *AuditServiceImpl) Query(ctx context.Context, opts model.AuditQueryOptions) ([]model.AuditEntry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.Query(ctx, opts)
}
