package service

import (
	"strings"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

const (
	// discreteStep is the slider granularity for countable items.
	discreteStep = 1
	// continuousStep is the percentage granularity for measurable items.
	continuousStep = 5
)

// discreteUnits are unit words that denote countable amounts.
var discreteUnits = map[string]struct{}{
	"each": {}, "piece": {}, "pieces": {}, "pc": {}, "pcs": {},
	"bunch": {}, "bunches": {}, "clove": {}, "cloves": {},
	"head": {}, "heads": {}, "slice": {}, "slices": {},
	"can": {}, "cans": {}, "stick": {}, "sticks": {},
	"loaf": {}, "loaves": {}, "egg": {}, "eggs": {},
	"whole": {}, "small": {}, "medium": {}, "large": {},
}

// continuousNameKeywords force a continuous rule by item name. Source data
// sometimes records liquids with a discrete unit ("1 each" of milk); the
// name override keeps partial-consumption sliders usable for those items.
var continuousNameKeywords = []string{
	"milk", "cream", "yogurt", "yoghurt", "butter", "cheese spread",
	"oil", "vinegar", "juice", "water", "broth", "stock", "wine",
	"sauce", "paste", "syrup", "honey", "ketchup", "mayonnaise",
	"mustard", "dressing", "salsa",
}

// QuantityRuleResolver classifies an (item name, unit) pair as discrete or
// continuous for partial-consumption handling.
type QuantityRuleResolver interface {
	Resolve(itemName, unit string) model.QuantityRule
}

// QuantityRuleResolverService implements QuantityRuleResolver over static
// keyword tables. It is a pure function holder with no state.
type QuantityRuleResolverService struct{}

// NewQuantityRuleResolverService creates a new resolver.
func NewQuantityRuleResolverService() *QuantityRuleResolverService {
	return &QuantityRuleResolverService{}
}

// Resolve returns the quantity rule for the given item name and unit.
//
// The item-name liquid override wins over a recorded discrete unit, then
// known discrete units classify as countable. Anything unrecognized
// defaults to continuous so the consumption UI is never blocked.
func (s *QuantityRuleResolverService) Resolve(itemName, unit string) model.QuantityRule {
	name := strings.ToLower(strings.TrimSpace(itemName))
	u := strings.ToLower(strings.TrimSpace(unit))

	for _, kw := range continuousNameKeywords {
		if strings.Contains(name, kw) {
			return model.QuantityRule{AllowDecimals: true, Step: continuousStep}
		}
	}

	if _, ok := discreteUnits[u]; ok {
		return model.QuantityRule{AllowDecimals: false, Step: discreteStep}
	}

	return model.QuantityRule{AllowDecimals: true, Step: continuousStep}
}
