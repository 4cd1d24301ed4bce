package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/repository"
)

func seedBatch(t *testing.T, repo *repository.MemoryBatchesRepository, pantryID string, batch model.Batch) *repository.BatchDocument {
	t.Helper()
	doc, err := repo.Insert(context.Background(), pantryID, batch)
	require.NoError(t, err)
	return doc
}

func TestMemoryBatchesRepository_ListActive(t *testing.T) {
	repo := repository.NewMemoryBatchesRepository()
	ctx := context.Background()

	exp := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	first := seedBatch(t, repo, "p1", model.Batch{ProductName: "flour", Quantity: 5, Unit: "cup"})
	second := seedBatch(t, repo, "p1", model.Batch{ProductName: "milk", Quantity: 2, Unit: "l", ExpirationDate: &exp})
	seedBatch(t, repo, "p1", model.Batch{ProductName: "old rice", Quantity: 0})
	seedBatch(t, repo, "p2", model.Batch{ProductName: "eggs", Quantity: 6})

	batches, err := repo.ListActive(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, batches, 2, "zero-quantity and foreign-pantry batches are excluded")
	assert.Equal(t, first.ID, batches[0].ID, "insertion order is preserved")
	assert.Equal(t, second.ID, batches[1].ID)
	assert.Equal(t, "milk", batches[1].ProductName)
	require.NotNil(t, batches[1].ExpirationDate)
	assert.True(t, exp.Equal(*batches[1].ExpirationDate))

	empty, err := repo.ListActive(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryBatchesRepository_Insert(t *testing.T) {
	repo := repository.NewMemoryBatchesRepository()
	ctx := context.Background()

	doc, err := repo.Insert(ctx, "p1", model.Batch{ProductName: "sugar", Quantity: 3, Unit: "cup"})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID, "an ID is assigned when none is given")
	assert.Equal(t, "p1", doc.PantryID)
	assert.Equal(t, string(model.BatchStatusActive), doc.Status)
	assert.False(t, doc.CreatedAt.IsZero())

	kept, err := repo.Insert(ctx, "p1", model.Batch{ID: "custom-id", ProductName: "salt", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "custom-id", kept.ID, "a caller-supplied ID is kept")

	_, err = repo.Insert(ctx, "p1", model.Batch{Quantity: 1})
	assert.Error(t, err, "a batch without a product name is rejected")

	_, err = repo.Insert(ctx, "p1", model.Batch{ProductName: "flour", Quantity: -1})
	assert.Error(t, err, "a negative quantity is rejected")
}

func TestMemoryBatchesRepository_Delete(t *testing.T) {
	repo := repository.NewMemoryBatchesRepository()
	ctx := context.Background()

	doc := seedBatch(t, repo, "p1", model.Batch{ProductName: "flour", Quantity: 5})

	err := repo.Delete(ctx, "p1", doc.ID)
	require.NoError(t, err)

	batches, err := repo.ListActive(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, batches)

	err = repo.Delete(ctx, "p1", doc.ID)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments, "deleting twice reports a missing document")

	err = repo.Delete(ctx, "other", "ghost")
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestMemoryBatchesRepository_ApplyDeltas(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the plan and depletes exhausted batches", func(t *testing.T) {
		repo := repository.NewMemoryBatchesRepository()
		flour := seedBatch(t, repo, "p1", model.Batch{ProductName: "flour", Quantity: 5, Unit: "cup"})
		milk := seedBatch(t, repo, "p1", model.Batch{ProductName: "milk", Quantity: 2, Unit: "l"})

		err := repo.ApplyDeltas(ctx, "p1", []model.BatchDelta{
			{BatchID: flour.ID, UseQuantity: 2},
			{BatchID: milk.ID, UseQuantity: 2, Depleted: true},
		})
		require.NoError(t, err)

		batches, err := repo.ListActive(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, batches, 1, "the depleted batch drops out of the active list")
		assert.Equal(t, flour.ID, batches[0].ID)
		assert.InDelta(t, 3.0, batches[0].Quantity, 1e-9)
	})

	t.Run("unknown batch leaves the store untouched", func(t *testing.T) {
		repo := repository.NewMemoryBatchesRepository()
		flour := seedBatch(t, repo, "p1", model.Batch{ProductName: "flour", Quantity: 5, Unit: "cup"})

		err := repo.ApplyDeltas(ctx, "p1", []model.BatchDelta{
			{BatchID: flour.ID, UseQuantity: 2},
			{BatchID: "ghost", UseQuantity: 1},
		})
		assert.ErrorIs(t, err, repository.ErrStaleSnapshot)

		batches, listErr := repo.ListActive(ctx, "p1")
		require.NoError(t, listErr)
		require.Len(t, batches, 1)
		assert.InDelta(t, 5.0, batches[0].Quantity, 1e-9, "no partial application on failure")
	})

	t.Run("insufficient quantity is a stale snapshot", func(t *testing.T) {
		repo := repository.NewMemoryBatchesRepository()
		milk := seedBatch(t, repo, "p1", model.Batch{ProductName: "milk", Quantity: 1, Unit: "l"})

		err := repo.ApplyDeltas(ctx, "p1", []model.BatchDelta{
			{BatchID: milk.ID, UseQuantity: 2},
		})
		assert.ErrorIs(t, err, repository.ErrStaleSnapshot)
	})

	t.Run("already depleted batch is a stale snapshot", func(t *testing.T) {
		repo := repository.NewMemoryBatchesRepository()
		milk := seedBatch(t, repo, "p1", model.Batch{ProductName: "milk", Quantity: 1, Unit: "l"})
		require.NoError(t, repo.ApplyDeltas(ctx, "p1", []model.BatchDelta{
			{BatchID: milk.ID, UseQuantity: 1},
		}))

		err := repo.ApplyDeltas(ctx, "p1", []model.BatchDelta{
			{BatchID: milk.ID, UseQuantity: 1},
		})
		assert.ErrorIs(t, err, repository.ErrStaleSnapshot)
	})

	t.Run("empty plan is a no-op", func(t *testing.T) {
		repo := repository.NewMemoryBatchesRepository()
		assert.NoError(t, repo.ApplyDeltas(ctx, "p1", nil))
	})
}
