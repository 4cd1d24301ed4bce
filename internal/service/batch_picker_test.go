package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pantry-service/internal/domain/model"
	"github.com/guttosm/pantry-service/internal/service"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 13, 45, 0, 0, time.UTC)
	}
}

func need(product string, qty float64) model.IngredientRequirement {
	return model.IngredientRequirement{IngredientName: product, RequiredQuantity: qty}
}

func TestBatchPicker_FEFOOrder(t *testing.T) {
	picker := service.NewBatchPickerService(service.WithClock(fixedClock(2025, time.January, 15)))

	batches := []model.Batch{
		{ID: "A", ProductName: "milk", Quantity: 2, Unit: "l", ExpirationDate: datePtr(2025, time.January, 25), Status: model.BatchStatusActive},
		{ID: "B", ProductName: "milk", Quantity: 1, Unit: "l", ExpirationDate: datePtr(2025, time.January, 20), Status: model.BatchStatusActive},
	}

	t.Run("soonest expiring batch drains first", func(t *testing.T) {
		selection := picker.SelectBatchesForIngredient(batches, need("milk", 2), service.PickOptions{SkipExpired: true})

		require.Len(t, selection.Selections, 2)
		assert.Equal(t, "B", selection.Selections[0].BatchID)
		assert.Equal(t, 1.0, selection.Selections[0].UseQuantity)
		assert.Equal(t, "A", selection.Selections[1].BatchID)
		assert.Equal(t, 1.0, selection.Selections[1].UseQuantity)
		assert.Equal(t, 2.0, selection.TotalFulfilled)
		assert.Zero(t, selection.Shortfall)
		assert.True(t, selection.IsFulfilled)
	})

	t.Run("shortfall reported when inventory runs out", func(t *testing.T) {
		selection := picker.SelectBatchesForIngredient(batches, need("milk", 5), service.PickOptions{SkipExpired: true})

		require.Len(t, selection.Selections, 2)
		assert.Equal(t, "B", selection.Selections[0].BatchID)
		assert.Equal(t, 1.0, selection.Selections[0].UseQuantity)
		assert.Equal(t, "A", selection.Selections[1].BatchID)
		assert.Equal(t, 2.0, selection.Selections[1].UseQuantity)
		assert.Equal(t, 3.0, selection.TotalFulfilled)
		assert.Equal(t, 2.0, selection.Shortfall)
		assert.False(t, selection.IsFulfilled)
	})
}

func TestBatchPicker_Eligibility(t *testing.T) {
	clock := fixedClock(2025, time.January, 15)

	t.Run("expired batches skipped when requested", func(t *testing.T) {
		picker := service.NewBatchPickerService(service.WithClock(clock))
		batches := []model.Batch{
			{ID: "old", ProductName: "milk", Quantity: 1, ExpirationDate: datePtr(2025, time.January, 10), Status: model.BatchStatusActive},
			{ID: "fresh", ProductName: "milk", Quantity: 1, ExpirationDate: datePtr(2025, time.January, 20), Status: model.BatchStatusActive},
		}

		selection := picker.SelectBatchesForIngredient(batches, need("milk", 2), service.PickOptions{SkipExpired: true})

		require.Len(t, selection.Selections, 1)
		assert.Equal(t, "fresh", selection.Selections[0].BatchID)
		assert.Equal(t, 1.0, selection.Shortfall)
	})

	t.Run("expired batches usable when not skipping", func(t *testing.T) {
		picker := service.NewBatchPickerService(service.WithClock(clock))
		batches := []model.Batch{
			{ID: "old", ProductName: "milk", Quantity: 1, ExpirationDate: datePtr(2025, time.January, 10), Status: model.BatchStatusActive},
		}

		selection := picker.SelectBatchesForIngredient(batches, need("milk", 1), service.PickOptions{SkipExpired: false})

		require.Len(t, selection.Selections, 1)
		assert.True(t, selection.IsFulfilled)
	})

	t.Run("batch expiring today is still eligible", func(t *testing.T) {
		picker := service.NewBatchPickerService(service.WithClock(clock))
		batches := []model.Batch{
			{ID: "today", ProductName: "milk", Quantity: 1, ExpirationDate: datePtr(2025, time.January, 15), Status: model.BatchStatusActive},
		}

		selection := picker.SelectBatchesForIngredient(batches, need("milk", 1), service.PickOptions{SkipExpired: true})

		assert.True(t, selection.IsFulfilled)
	})

	t.Run("depleted and foreign product batches excluded", func(t *testing.T) {
		picker := service.NewBatchPickerService(service.WithClock(clock))
		batches := []model.Batch{
			{ID: "gone", ProductName: "milk", Quantity: 0, Status: model.BatchStatusActive},
			{ID: "marked", ProductName: "milk", Quantity: 3, Status: model.BatchStatusDepleted},
			{ID: "other", ProductName: "juice", Quantity: 3, Status: model.BatchStatusActive},
		}

		selection := picker.SelectBatchesForIngredient(batches, need("milk", 1), service.PickOptions{SkipExpired: true})

		assert.Empty(t, selection.Selections)
		assert.Equal(t, 1.0, selection.Shortfall)
	})
}

func TestBatchPicker_Ordering(t *testing.T) {
	picker := service.NewBatchPickerService(service.WithClock(fixedClock(2025, time.January, 15)))

	t.Run("batches without expiry sort after dated ones", func(t *testing.T) {
		batches := []model.Batch{
			{ID: "forever", ProductName: "rice", Quantity: 5, Status: model.BatchStatusActive},
			{ID: "dated", ProductName: "rice", Quantity: 1, ExpirationDate: datePtr(2025, time.March, 1), Status: model.BatchStatusActive},
		}

		selection := picker.SelectBatchesForIngredient(batches, need("rice", 2), service.PickOptions{SkipExpired: true})

		require.Len(t, selection.Selections, 2)
		assert.Equal(t, "dated", selection.Selections[0].BatchID)
		assert.Equal(t, "forever", selection.Selections[1].BatchID)
	})

	t.Run("equal expiry dates keep input order", func(t *testing.T) {
		batches := []model.Batch{
			{ID: "first", ProductName: "rice", Quantity: 1, ExpirationDate: datePtr(2025, time.March, 1), Status: model.BatchStatusActive},
			{ID: "second", ProductName: "rice", Quantity: 1, ExpirationDate: datePtr(2025, time.March, 1), Status: model.BatchStatusActive},
		}

		selection := picker.SelectBatchesForIngredient(batches, need("rice", 2), service.PickOptions{SkipExpired: true})

		require.Len(t, selection.Selections, 2)
		assert.Equal(t, "first", selection.Selections[0].BatchID)
		assert.Equal(t, "second", selection.Selections[1].BatchID)
	})
}

func TestBatchPicker_EdgeCases(t *testing.T) {
	picker := service.NewBatchPickerService()

	t.Run("zero requirement selects nothing", func(t *testing.T) {
		batches := []model.Batch{
			{ID: "b1", ProductName: "milk", Quantity: 2, Status: model.BatchStatusActive},
		}

		selection := picker.SelectBatchesForIngredient(batches, need("milk", 0), service.PickOptions{})

		assert.Empty(t, selection.Selections)
		assert.True(t, selection.IsFulfilled)
	})

	t.Run("empty inventory is a full shortfall", func(t *testing.T) {
		selection := picker.SelectBatchesForIngredient(nil, need("milk", 3), service.PickOptions{})

		assert.Empty(t, selection.Selections)
		assert.Equal(t, 3.0, selection.Shortfall)
		assert.False(t, selection.IsFulfilled)
	})

	t.Run("fulfilled plus shortfall always equals the requirement", func(t *testing.T) {
		batches := []model.Batch{
			{ID: "b1", ProductName: "milk", Quantity: 0.7, Status: model.BatchStatusActive},
			{ID: "b2", ProductName: "milk", Quantity: 1.1, Status: model.BatchStatusActive},
			{ID: "b3", ProductName: "milk", Quantity: 0.4, Status: model.BatchStatusActive},
		}

		for _, required := range []float64{0.5, 1.8, 2.2, 5} {
			selection := picker.SelectBatchesForIngredient(batches, need("milk", required), service.PickOptions{})
			assert.InDelta(t, required, selection.TotalFulfilled+selection.Shortfall, 1e-9)

			total := 0.0
			for _, pick := range selection.Selections {
				total += pick.UseQuantity
			}
			assert.InDelta(t, selection.TotalFulfilled, total, 1e-9)
		}
	})
}
