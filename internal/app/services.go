// Package app provides service initialization.
package app

import (
	"github.com/guttosm/pantry-service/config"
	"github.com/guttosm/pantry-service/internal/service"
)

// ServiceComponents holds the pure recipe consumption components.
type ServiceComponents struct {
	Parser      service.IngredientParser
	Matcher     service.IngredientMatcher
	Picker      service.BatchPicker
	Rules       service.QuantityRuleResolver
	Consumption service.ConsumptionTransaction
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.ConsumptionConfig) *ServiceComponents {
	parser := service.NewIngredientParserService()
	matcher := service.NewIngredientMatcherService()
	picker := service.NewBatchPickerService()
	rules := service.NewQuantityRuleResolverService()

	consumption := service.NewConsumptionService(
		parser,
		matcher,
		picker,
		rules,
		service.WithSkipExpired(cfg.SkipExpired),
	)

	return &ServiceComponents{
		Parser:      parser,
		Matcher:     matcher,
		Picker:      picker,
		Rules:       rules,
		Consumption: consumption,
	}
}
