package service

import (
	"fmt"
	"math"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// Overrides carries the user-chosen adjustments for a recipe completion.
type Overrides struct {
	// Servings is the number of servings being cooked; zero means the
	// recipe's own yield (no scaling).
	Servings float64
	// RecipeServings is the number of servings the recipe yields; zero
	// means unknown, which also disables scaling.
	RecipeServings float64
	// Percentages maps ingredient names to a 0-100 partial-consumption
	// percentage from the slider UI.
	Percentages map[string]float64
	// BatchSelections maps ingredient names to explicit per-batch draws
	// from the manual picker UI. When present for an ingredient, the list
	// is validated and used verbatim instead of the FEFO plan.
	BatchSelections map[string][]model.BatchPickResult
}

// scale returns the servings multiplier, defaulting to 1x.
func (o Overrides) scale() float64 {
	if o.Servings > 0 && o.RecipeServings > 0 {
		return o.Servings / o.RecipeServings
	}
	return 1
}

// ConsumptionTransaction turns a recipe's ingredient list and an inventory
// snapshot into a set of pantry mutations and a completion summary.
type ConsumptionTransaction interface {
	CompleteRecipe(ingredients []string, snapshot []model.Batch, overrides Overrides) model.ConsumptionResult
}

// ConsumptionOption configures a ConsumptionService.
type ConsumptionOption func(*ConsumptionService)

// WithSkipExpired controls whether expired batches are excluded from FEFO
// plans. Enabled by default.
func WithSkipExpired(skip bool) ConsumptionOption {
	return func(s *ConsumptionService) {
		s.skipExpired = skip
	}
}

// ConsumptionService implements ConsumptionTransaction by composing the
// parser, matcher, picker, and quantity rules.
//
// It is pure: it computes deltas over the snapshot it was handed and
// performs no I/O, so the same call serves both preview (what-if) and
// commit. Applying the deltas atomically is the storage collaborator's job.
type ConsumptionService struct {
	parser      IngredientParser
	matcher     IngredientMatcher
	picker      BatchPicker
	rules       QuantityRuleResolver
	skipExpired bool
}

// NewConsumptionService creates a new consumption service.
func NewConsumptionService(parser IngredientParser, matcher IngredientMatcher, picker BatchPicker, rules QuantityRuleResolver, opts ...ConsumptionOption) *ConsumptionService {
	s := &ConsumptionService{
		parser:      parser,
		matcher:     matcher,
		picker:      picker,
		rules:       rules,
		skipExpired: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ledger tracks remaining batch quantities across the ingredients of one
// completion, so two ingredients matching the same product never over-draw
// a batch within the allocation.
type ledger struct {
	batches   map[string]model.Batch
	remaining map[string]float64
	order     []string
	touched   map[string]bool
}

func newLedger(snapshot []model.Batch) *ledger {
	l := &ledger{
		batches:   make(map[string]model.Batch, len(snapshot)),
		remaining: make(map[string]float64, len(snapshot)),
		touched:   make(map[string]bool),
	}
	for _, b := range snapshot {
		if b.Validate() != nil || b.IsDepleted() {
			continue
		}
		l.batches[b.ID] = b
		l.remaining[b.ID] = b.Quantity
		l.order = append(l.order, b.ID)
	}
	return l
}

// view returns the batches for a product with their current remaining
// quantities, preserving snapshot order.
func (l *ledger) view(productName string) []model.Batch {
	out := make([]model.Batch, 0, 4)
	for _, id := range l.order {
		b := l.batches[id]
		if b.ProductName != productName {
			continue
		}
		b.Quantity = l.remaining[id]
		if b.Quantity <= quantityEpsilon {
			continue
		}
		out = append(out, b)
	}
	return out
}

// draw records a consumption against a batch.
func (l *ledger) draw(batchID string, use float64) {
	l.remaining[batchID] -= use
	if l.remaining[batchID] < 0 {
		l.remaining[batchID] = 0
	}
	l.touched[batchID] = true
}

// CompleteRecipe computes the allocation plan for a recipe against the
// inventory snapshot.
//
// Per ingredient: parse, match against inventory, scale the requirement by
// the servings ratio, then either validate the user's explicit batch
// selection (clamping over-draws and reporting them in Errors) or run the
// FEFO picker. A slider percentage, interpreted through the ingredient's
// quantity rule, trims the plan afterwards. Shortfalls are reported as
// structured InsufficientItems; partial success is the normal mode.
func (s *ConsumptionService) CompleteRecipe(ingredients []string, snapshot []model.Batch, overrides Overrides) model.ConsumptionResult {
	result := model.ConsumptionResult{
		Ingredients:       []model.IngredientConsumption{},
		Deltas:            []model.BatchDelta{},
		InsufficientItems: []model.InsufficientItem{},
		Errors:            []model.ConsumptionError{},
	}

	led := newLedger(snapshot)
	productNames := uniqueProductNames(snapshot)

	parsed := make([]model.ParsedIngredient, 0, len(ingredients))
	for _, text := range ingredients {
		parsed = append(parsed, s.parser.Parse(text))
	}
	matched := s.matcher.Match(parsed, productNames)
	productFor := make(map[int]string, len(matched.Available))
	for _, m := range matched.Available {
		for i, p := range parsed {
			if _, claimed := productFor[i]; !claimed && p.Original == m.Ingredient.Original && p.Name == m.Ingredient.Name {
				productFor[i] = m.ProductName
				break
			}
		}
	}

	scale := overrides.scale()

	for i, p := range parsed {
		required := requiredQuantity(p, scale)
		unit := requirementUnit(p)

		product, available := productFor[i]
		if !available {
			result.Ingredients = append(result.Ingredients, model.IngredientConsumption{
				Ingredient: p.Name,
				Required:   required,
				Remaining:  required,
				Unit:       unit,
				Selections: []model.BatchPickResult{},
			})
			result.InsufficientItems = append(result.InsufficientItems, model.InsufficientItem{
				Ingredient: p.Name,
				Needed:     required,
				NeededUnit: unit,
			})
			continue
		}

		view := led.view(product)
		if len(view) > 0 {
			unit = view[0].Unit
		}

		var selection model.BatchSelection
		if manual, ok := lookupOverride(overrides.BatchSelections, p.Name); ok {
			selection = s.applyManualSelection(manual, view, required, p.Name, &result)
		} else {
			selection = s.picker.SelectBatchesForIngredient(view, model.IngredientRequirement{
				IngredientName:   product,
				RequiredQuantity: required,
				Unit:             unit,
			}, PickOptions{SkipExpired: s.skipExpired})
		}

		// Availability shortfall is judged before any percentage trim:
		// consuming less on purpose is not an insufficiency.
		if selection.Shortfall > quantityEpsilon {
			result.InsufficientItems = append(result.InsufficientItems, model.InsufficientItem{
				Ingredient: p.Name,
				Needed:     required,
				NeededUnit: unit,
				Consumed:   selection.TotalFulfilled,
			})
		}

		if pct, ok := lookupPercentage(overrides.Percentages, p.Name); ok {
			rule := s.rules.Resolve(p.Name, unit)
			selection = trimSelection(selection, consumedForPercentage(selection.TotalFulfilled, pct, rule))
		}

		for _, pick := range selection.Selections {
			led.draw(pick.BatchID, pick.UseQuantity)
		}

		remaining := required - selection.TotalFulfilled
		if remaining < 0 {
			remaining = 0
		}
		result.Ingredients = append(result.Ingredients, model.IngredientConsumption{
			Ingredient:  p.Name,
			ProductName: product,
			Required:    required,
			Consumed:    selection.TotalFulfilled,
			Remaining:   remaining,
			Unit:        unit,
			Selections:  selection.Selections,
		})
	}

	result.Deltas = s.buildDeltas(led)
	return result
}

// applyManualSelection validates an explicit per-batch override list against
// the current batch quantities. Unknown batches are reported and skipped;
// over-draws are clamped to what the batch holds and reported, so the
// transaction still produces a usable (smaller) result.
func (s *ConsumptionService) applyManualSelection(manual []model.BatchPickResult, view []model.Batch, required float64, ingredient string, result *model.ConsumptionResult) model.BatchSelection {
	byID := make(map[string]model.Batch, len(view))
	for _, b := range view {
		byID[b.ID] = b
	}

	selection := model.BatchSelection{Selections: []model.BatchPickResult{}}
	for _, pick := range manual {
		batch, ok := byID[pick.BatchID]
		if !ok {
			result.Errors = append(result.Errors, model.ConsumptionError{
				Ingredient: ingredient,
				BatchID:    pick.BatchID,
				Code:       model.ErrCodeUnknownBatch,
				Message:    "batch not found in inventory snapshot",
			})
			continue
		}
		use := pick.UseQuantity
		if use <= 0 {
			continue
		}
		if use > batch.Quantity {
			result.Errors = append(result.Errors, model.ConsumptionError{
				Ingredient: ingredient,
				BatchID:    pick.BatchID,
				Code:       model.ErrCodeOverrideClamped,
				Message:    fmt.Sprintf("requested %g but batch holds %g", use, batch.Quantity),
			})
			use = batch.Quantity
		}
		selection.Selections = append(selection.Selections, model.BatchPickResult{
			BatchID:     batch.ID,
			UseQuantity: use,
			Unit:        batch.Unit,
		})
		selection.TotalFulfilled += use
	}

	shortfall := required - selection.TotalFulfilled
	if shortfall < quantityEpsilon {
		shortfall = 0
	}
	selection.Shortfall = shortfall
	selection.IsFulfilled = shortfall == 0
	return selection
}

// buildDeltas flattens the ledger into per-batch mutations in first-touch
// snapshot order. For countable products the remaining quantity is floored
// so fractional units never appear in inventory.
func (s *ConsumptionService) buildDeltas(led *ledger) []model.BatchDelta {
	deltas := make([]model.BatchDelta, 0, len(led.touched))
	for _, id := range led.order {
		if !led.touched[id] {
			continue
		}
		batch := led.batches[id]
		remaining := led.remaining[id]

		rule := s.rules.Resolve(batch.ProductName, batch.Unit)
		if !rule.AllowDecimals {
			remaining = math.Floor(remaining + quantityEpsilon)
		}
		use := batch.Quantity - remaining
		if use <= quantityEpsilon {
			continue
		}

		deltas = append(deltas, model.BatchDelta{
			BatchID:     batch.ID,
			ProductName: batch.ProductName,
			UseQuantity: use,
			Remaining:   remaining,
			Unit:        batch.Unit,
			Depleted:    remaining <= quantityEpsilon,
		})
	}
	return deltas
}

// consumedForPercentage converts a slider percentage into an exact amount
// under the quantity rule. Discrete amounts round to the nearest whole unit
// and, while the percentage is non-zero, are clamped to [1, total].
func consumedForPercentage(total, pct float64, rule model.QuantityRule) float64 {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	consumed := total * pct / 100
	if rule.AllowDecimals {
		return consumed
	}

	consumed = math.Round(consumed)
	if pct > 0 && consumed < 1 && total >= 1 {
		consumed = 1
	}
	if consumed > total {
		consumed = math.Floor(total)
	}
	return consumed
}

// trimSelection shrinks a plan to the target amount, preserving FEFO order.
func trimSelection(selection model.BatchSelection, target float64) model.BatchSelection {
	if target >= selection.TotalFulfilled {
		return selection
	}

	trimmed := model.BatchSelection{
		Selections:  []model.BatchPickResult{},
		Shortfall:   selection.Shortfall,
		IsFulfilled: selection.IsFulfilled,
	}
	remaining := target
	for _, pick := range selection.Selections {
		if remaining <= quantityEpsilon {
			break
		}
		use := math.Min(pick.UseQuantity, remaining)
		trimmed.Selections = append(trimmed.Selections, model.BatchPickResult{
			BatchID:     pick.BatchID,
			UseQuantity: use,
			Unit:        pick.Unit,
		})
		trimmed.TotalFulfilled += use
		remaining -= use
	}
	return trimmed
}

// requiredQuantity scales the parsed amount, defaulting to one unit when
// the recipe line had no extractable quantity.
func requiredQuantity(p model.ParsedIngredient, scale float64) float64 {
	qty := 1.0
	if p.Quantity != nil {
		qty = *p.Quantity
	}
	return qty * scale
}

func requirementUnit(p model.ParsedIngredient) string {
	if p.Unit != "" {
		return p.Unit
	}
	return defaultUnit
}

// uniqueProductNames preserves first-occurrence order from the snapshot.
func uniqueProductNames(snapshot []model.Batch) []string {
	seen := make(map[string]bool, len(snapshot))
	names := make([]string, 0, len(snapshot))
	for _, b := range snapshot {
		if b.ProductName == "" || seen[b.ProductName] {
			continue
		}
		seen[b.ProductName] = true
		names = append(names, b.ProductName)
	}
	return names
}

func lookupOverride(m map[string][]model.BatchPickResult, name string) ([]model.BatchPickResult, bool) {
	if m == nil {
		return nil, false
	}
	if v, ok := m[name]; ok {
		return v, true
	}
	for k, v := range m {
		if normalizeName(k) == normalizeName(name) {
			return v, true
		}
	}
	return nil, false
}

func lookupPercentage(m map[string]float64, name string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	if v, ok := m[name]; ok {
		return v, true
	}
	for k, v := range m {
		if normalizeName(k) == normalizeName(name) {
			return v, true
		}
	}
	return 0, false
}
