// Package i18n provides internationalization support for the pantry service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "Conflict",
			"error.stale_inventory":         "Inventory changed while completing the recipe, please retry",
			"error.validation.ingredients":  "ingredients: at least one ingredient is required",
			"error.validation.batch":        "batch: product name and a positive quantity are required",
			"error.batch_not_found":         "Batch not found",
			"error.timeout":                 "Request timed out",

			// Success messages
			"success.recipe_completed": "Recipe ingredients consumed successfully",
			"success.recipe_previewed": "Consumption plan computed",
			"success.batch_added":      "Batch added to pantry",
		},
		"pt": {
			// Error messages
			"error.invalid_request":         "Requisição inválida",
			"error.invalid_request_body":    "Corpo da requisição inválido",
			"error.internal_error":          "Ocorreu um erro inesperado",
			"error.not_found":               "Não encontrado",
			"error.rate_limit_exceeded":     "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                "Conflito",
			"error.stale_inventory":         "O inventário mudou durante a conclusão da receita, tente novamente",
			"error.validation.ingredients":  "ingredients: pelo menos um ingrediente é obrigatório",
			"error.validation.batch":        "batch: nome do produto e quantidade positiva são obrigatórios",
			"error.batch_not_found":         "Lote não encontrado",
			"error.timeout":                 "Tempo limite da requisição excedido",

			// Success messages
			"success.recipe_completed": "Ingredientes da receita consumidos com sucesso",
			"success.recipe_previewed": "Plano de consumo calculado",
			"success.batch_added":      "Lote adicionado à despensa",
		},
		"nl": {
			// Error messages
			"error.invalid_request":         "Ongeldig verzoek",
			"error.invalid_request_body":    "Ongeldige aanvraag body",
			"error.internal_error":          "Er is een onverwachte fout opgetreden",
			"error.not_found":               "Niet gevonden",
			"error.rate_limit_exceeded":     "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                "Conflict",
			"error.stale_inventory":         "De voorraad is gewijzigd tijdens het voltooien van het recept, probeer opnieuw",
			"error.validation.ingredients":  "ingredients: minstens één ingrediënt is vereist",
			"error.validation.batch":        "batch: productnaam en een positieve hoeveelheid zijn vereist",
			"error.batch_not_found":         "Partij niet gevonden",
			"error.timeout":                 "Verzoek verlopen",

			// Success messages
			"success.recipe_completed": "Receptingrediënten succesvol verbruikt",
			"success.recipe_previewed": "Verbruiksplan berekend",
			"success.batch_added":      "Partij toegevoegd aan voorraadkast",
		},
	}
}
