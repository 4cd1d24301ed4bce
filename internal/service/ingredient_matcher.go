package service

import (
	"math"
	"strings"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// IngredientMatcher maps parsed recipe ingredients to inventory product
// names, partitioning them into available and missing.
type IngredientMatcher interface {
	Match(parsed []model.ParsedIngredient, productNames []string) model.MatchResult
}

// IngredientMatcherService implements IngredientMatcher with a bidirectional
// case-insensitive substring test. The rule is intentionally permissive:
// recipe text and product labels rarely agree exactly ("flour" should hit
// "wheat flour", and "whole milk" should hit "milk").
type IngredientMatcherService struct{}

// NewIngredientMatcherService creates a new matcher.
func NewIngredientMatcherService() *IngredientMatcherService {
	return &IngredientMatcherService{}
}

// Match partitions ingredients by inventory availability.
//
// Duplicate ingredient names are kept per occurrence: a recipe may need the
// same ingredient twice, drawn independently. An empty recipe yields a
// match percentage of 0.
func (s *IngredientMatcherService) Match(parsed []model.ParsedIngredient, productNames []string) model.MatchResult {
	result := model.MatchResult{
		Available: []model.MatchedIngredient{},
		Missing:   []model.ParsedIngredient{},
	}

	for _, ingredient := range parsed {
		if product, ok := findProduct(ingredient.Name, productNames); ok {
			result.Available = append(result.Available, model.MatchedIngredient{
				Ingredient:  ingredient,
				ProductName: product,
			})
		} else {
			result.Missing = append(result.Missing, ingredient)
		}
	}

	if total := len(parsed); total > 0 {
		result.MatchPercentage = int(math.Round(float64(len(result.Available)) / float64(total) * 100))
	}

	return result
}

// findProduct returns the first inventory product whose normalized name
// contains, or is contained by, the ingredient name.
func findProduct(ingredientName string, productNames []string) (string, bool) {
	name := normalizeName(ingredientName)
	if name == "" {
		return "", false
	}

	for _, product := range productNames {
		p := normalizeName(product)
		if p == "" {
			continue
		}
		if strings.Contains(p, name) || strings.Contains(name, p) {
			return product, true
		}
	}
	return "", false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
