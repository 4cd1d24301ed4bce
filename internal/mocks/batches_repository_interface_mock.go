// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/repository"
)

type MockBatchesRepositoryInterface struct {
	mock.Mock
}

func (m *MockBatchesRepositoryInterface) ListActive(ctx context.Context, pantryID string) ([]model.Batch, error) {
	args := m.Called(ctx, pantryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Batch), args.Error(1)
}

func (m *MockBatchesRepositoryInterface) Insert(ctx context.Context, pantryID string, batch model.Batch) (*repository.BatchDocument, error) {
	args := m.Called(ctx, pantryID, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BatchDocument), args.Error(1)
}

func (m *MockBatchesRepositoryInterface) Delete(ctx context.Context, pantryID, batchID string) error {
	args := m.Called(ctx, pantryID, batchID)
	return args.Error(0)
}

func (m *MockBatchesRepositoryInterface) ApplyDeltas(ctx context.Context, pantryID string, deltas []model.BatchDelta) error {
	args := m.Called(ctx, pantryID, deltas)
	return args.Error(0)
}
