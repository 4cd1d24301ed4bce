package model

// QuantityRule describes how amounts of an item may be subdivided:
// whether fractional amounts make sense, and the granularity a partial
// consumption slider should move in.
//
// @Description Discrete/continuous classification for an item and unit
type QuantityRule struct {
	// AllowDecimals is true for measurable (continuous) items such as
	// liquids and powders, false for countable ones (each, clove, head).
	AllowDecimals bool `json:"allow_decimals" example:"true"`
	// Step is the slider granularity: 1 for countable units, a percentage
	// step for continuous ones.
	Step float64 `json:"step" example:"5"`
}
