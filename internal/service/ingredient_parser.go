package service

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/guttosm/pantry-service/internal/domain/model"
)

// errInvalidFraction is returned by quantity parsing when a fraction has a
// zero denominator. It is recovered locally: the parser falls back to
// "no quantity extracted" and never surfaces the error.
var errInvalidFraction = errors.New("parse: invalid fraction")

// measureUnits maps recognized unit words (including plurals and
// abbreviations) to their canonical singular form.
var measureUnits = map[string]string{
	"cup": "cup", "cups": "cup",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbsp": "tbsp",
	"teaspoon": "tsp", "teaspoons": "tsp", "tsp": "tsp",
	"gram": "g", "grams": "g", "g": "g",
	"kilogram": "kg", "kilograms": "kg", "kg": "kg",
	"milliliter": "ml", "milliliters": "ml", "ml": "ml",
	"liter": "l", "liters": "l", "litre": "l", "litres": "l", "l": "l",
	"ounce": "oz", "ounces": "oz", "oz": "oz",
	"pound": "lb", "pounds": "lb", "lb": "lb", "lbs": "lb",
	"pinch": "pinch", "pinches": "pinch",
	"dash": "dash",
	"slice": "slice", "slices": "slice",
	"clove": "clove", "cloves": "clove",
	"piece": "piece", "pieces": "piece",
	"bunch": "bunch", "bunches": "bunch",
	"head": "head", "heads": "head",
	"can": "can", "cans": "can",
	"stick": "stick", "sticks": "stick",
	"sprig": "sprig", "sprigs": "sprig",
	"each": "each",
}

// sizeAdjectives are accepted in unit position ("1 large onion").
var sizeAdjectives = map[string]struct{}{
	"small": {}, "medium": {}, "large": {}, "whole": {},
}

// defaultUnit is assumed when a quantity is present without a unit word.
const defaultUnit = "piece"

var (
	parenPattern   = regexp.MustCompile(`\s*\([^)]*\)`)
	toTastePattern = regexp.MustCompile(`(?i)\s*\bto taste\b\s*`)
	ofPattern      = regexp.MustCompile(`(?i)\s+of\s+`)
	spacePattern   = regexp.MustCompile(`\s{2,}`)
	dashPattern    = regexp.MustCompile(`^(.+?)\s+[-–]\s+(.+)$`)
	qtyPattern     = regexp.MustCompile(`^(\d+\s+\d+\s*/\s*\d+|\d+(?:\.\d+)?(?:\s*/\s*\d+(?:\.\d+)?)?)\s*(.*)$`)
)

// IngredientParser extracts {name, quantity, unit} from free-text recipe
// ingredient lines.
type IngredientParser interface {
	Parse(text string) model.ParsedIngredient
}

// IngredientParserService implements IngredientParser. It is pure and total:
// arbitrary input never fails, the worst case returns the whole string as
// the ingredient name.
type IngredientParserService struct{}

// NewIngredientParserService creates a new parser.
func NewIngredientParserService() *IngredientParserService {
	return &IngredientParserService{}
}

// Parse extracts a structured ingredient from text.
//
// The explicit "name - qty unit" form is tried first. Otherwise filler
// phrases ("of", "to taste"), parenthetical notes, and trailing comma
// content are stripped and a leading number/fraction is matched. A trailing
// token after the number becomes the unit only when it is a recognized unit
// word or a size adjective; an unrecognized token stays in the name and the
// unit defaults to "piece".
func (s *IngredientParserService) Parse(text string) model.ParsedIngredient {
	cleaned := cleanIngredientText(text)
	if cleaned == "" {
		return model.ParsedIngredient{Name: strings.TrimSpace(text), Original: text}
	}

	if p, ok := s.parseDashForm(cleaned, text); ok {
		return p
	}

	m := qtyPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return model.ParsedIngredient{Name: cleaned, Original: text}
	}

	qty, err := parseQuantity(m[1])
	if err != nil {
		// Malformed fraction: fall back to no quantity extracted.
		return model.ParsedIngredient{Name: cleaned, Original: text}
	}

	name, unit := splitUnitAndName(m[2])
	return model.ParsedIngredient{Name: name, Quantity: &qty, Unit: unit, Original: text}
}

// parseDashForm handles the "name - qty unit" pattern. The remainder after
// the dash must be exactly a number/fraction with an optional recognized
// unit word, otherwise the form does not apply.
func (s *IngredientParserService) parseDashForm(cleaned, original string) (model.ParsedIngredient, bool) {
	m := dashPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return model.ParsedIngredient{}, false
	}

	qm := qtyPattern.FindStringSubmatch(strings.TrimSpace(m[2]))
	if qm == nil {
		return model.ParsedIngredient{}, false
	}

	rest := strings.TrimSpace(qm[2])
	unit := defaultUnit
	if rest != "" {
		token := strings.ToLower(rest)
		if canonical, ok := measureUnits[token]; ok {
			unit = canonical
		} else if _, ok := sizeAdjectives[token]; ok {
			unit = token
		} else {
			return model.ParsedIngredient{}, false
		}
	}

	qty, err := parseQuantity(qm[1])
	if err != nil {
		return model.ParsedIngredient{}, false
	}

	return model.ParsedIngredient{
		Name:     strings.TrimSpace(m[1]),
		Quantity: &qty,
		Unit:     unit,
		Original: original,
	}, true
}

// cleanIngredientText strips parentheticals, trailing comma content, and
// filler phrases, preserving the casing of what remains.
func cleanIngredientText(text string) string {
	s := parenPattern.ReplaceAllString(text, "")
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	s = toTastePattern.ReplaceAllString(s, " ")
	s = ofPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// splitUnitAndName decides whether the first token after a number is a unit
// word. Unrecognized tokens stay in the name with the unit defaulted.
func splitUnitAndName(remainder string) (name, unit string) {
	remainder = strings.TrimSpace(remainder)
	if remainder == "" {
		return "", defaultUnit
	}

	fields := strings.Fields(remainder)
	token := strings.ToLower(fields[0])

	if canonical, ok := measureUnits[token]; ok {
		return strings.TrimSpace(strings.Join(fields[1:], " ")), canonical
	}
	if _, ok := sizeAdjectives[token]; ok {
		return strings.TrimSpace(strings.Join(fields[1:], " ")), token
	}
	return remainder, defaultUnit
}

// parseQuantity evaluates "2", "2.5", "1/2", and mixed "1 1/2" forms.
func parseQuantity(token string) (float64, error) {
	token = strings.TrimSpace(token)

	// Mixed number: whole part plus fraction.
	if fields := strings.Fields(token); len(fields) == 2 {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, err
		}
		frac, err := parseQuantity(fields[1])
		if err != nil {
			return 0, err
		}
		return whole + frac, nil
	}

	if idx := strings.Index(token, "/"); idx >= 0 {
		num, err := strconv.ParseFloat(strings.TrimSpace(token[:idx]), 64)
		if err != nil {
			return 0, err
		}
		den, err := strconv.ParseFloat(strings.TrimSpace(token[idx+1:]), 64)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, errInvalidFraction
		}
		return num / den, nil
	}

	return strconv.ParseFloat(token, 64)
}
