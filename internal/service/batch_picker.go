package service

import (
	"math"
	"sort"
	"time"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// quantityEpsilon absorbs float64 noise when comparing accumulated
// quantities against requirements.
const quantityEpsilon = 1e-9

// PickOptions configures a single batch selection.
type PickOptions struct {
	// SkipExpired drops batches that expired before today. Today is
	// normalized to midnight, so a batch expiring today is still eligible.
	SkipExpired bool
}

// BatchPicker selects inventory batches to cover an ingredient requirement.
type BatchPicker interface {
	SelectBatchesForIngredient(batches []model.Batch, need model.IngredientRequirement, opts PickOptions) model.BatchSelection
}

// PickerOption configures a BatchPickerService.
type PickerOption func(*BatchPickerService)

// WithClock injects the time source used for expiry checks. Tests pin it.
func WithClock(now func() time.Time) PickerOption {
	return func(s *BatchPickerService) {
		if now != nil {
			s.now = now
		}
	}
}

// BatchPickerService implements BatchPicker with a deterministic greedy
// single pass in First-Expired-First-Out order.
type BatchPickerService struct {
	now func() time.Time
}

// NewBatchPickerService creates a new picker with the given options.
func NewBatchPickerService(opts ...PickerOption) *BatchPickerService {
	s := &BatchPickerService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectBatchesForIngredient builds the FEFO allocation plan for one
// requirement.
//
// Eligible batches (matching product, not depleted, optionally not expired)
// are sorted by expiration date ascending; batches without an expiration
// date sort after all dated ones, so non-perishables are not preferentially
// consumed early. Equal dates keep their relative input order. The walk
// draws min(batch quantity, remaining need) from each batch until the need
// is covered or batches run out.
//
// The function never errors: with no eligible batches it returns an empty
// plan whose shortfall is the full requirement. Callers decide whether a
// shortfall is a hard failure or a partial-success state.
func (s *BatchPickerService) SelectBatchesForIngredient(batches []model.Batch, need model.IngredientRequirement, opts PickOptions) model.BatchSelection {
	if need.RequiredQuantity <= 0 {
		empty := model.EmptySelection(0)
		empty.IsFulfilled = true
		return empty
	}

	eligible := s.eligibleBatches(batches, need.IngredientName, opts)
	if len(eligible) == 0 {
		return model.EmptySelection(need.RequiredQuantity)
	}

	sortFEFO(eligible)

	selection := model.BatchSelection{Selections: []model.BatchPickResult{}}
	remaining := need.RequiredQuantity

	for _, batch := range eligible {
		if remaining <= quantityEpsilon {
			break
		}
		use := math.Min(batch.Quantity, remaining)
		selection.Selections = append(selection.Selections, model.BatchPickResult{
			BatchID:     batch.ID,
			UseQuantity: use,
			Unit:        batch.Unit,
		})
		selection.TotalFulfilled += use
		remaining -= use
	}

	if remaining < quantityEpsilon {
		remaining = 0
	}
	selection.Shortfall = remaining
	selection.IsFulfilled = remaining == 0

	return selection
}

// eligibleBatches filters to the requested product, dropping depleted and
// (optionally) expired batches. Input order is preserved for stable ties.
func (s *BatchPickerService) eligibleBatches(batches []model.Batch, productName string, opts PickOptions) []model.Batch {
	now := s.now()
	eligible := make([]model.Batch, 0, len(batches))
	for _, b := range batches {
		if b.ProductName != productName || b.IsDepleted() {
			continue
		}
		if opts.SkipExpired && b.IsExpired(now) {
			continue
		}
		eligible = append(eligible, b)
	}
	return eligible
}

// sortFEFO orders batches by expiration ascending, nil expiry last, with a
// stable sort so equal dates preserve input order.
func sortFEFO(batches []model.Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		ei, ej := batches[i].ExpirationDate, batches[j].ExpirationDate
		switch {
		case ei == nil:
			return false
		case ej == nil:
			return true
		default:
			return ei.Before(*ej)
		}
	})
}
