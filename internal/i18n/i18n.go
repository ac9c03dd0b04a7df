// Package i18n translates user-facing API messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLocale        = "en"
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks up messages by key and locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the built-in catalogs.
func NewTranslator() *Translator {
	return &Translator{messages: catalogs}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has a catalog.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the message for key in locale, falling back to the
// default locale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the first supported language from Accept-Language,
// ignoring region subtags and quality weights.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	t := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.IndexAny(lang, "-_"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if t.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// T translates key for the locale requested by c.
func T(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

var catalogs = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyUnauthorized:       "Unauthorized",
		ErrKeyAPIKeyRequired:     "API key is required",
		ErrKeyInvalidAPIKey:      "Invalid API key",
		ErrKeyTokenRequired:      "Authentication token is required",
		ErrKeyInvalidToken:       "Invalid or expired token",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "A request with this idempotency key is already in progress",
		ErrKeyInvalidCountry:     "Unknown country key",
		ErrKeyTooManyItems:       "Portfolio has too many items",
		ErrKeyNoItems:            "Portfolio has no items",
		ErrKeyRunNotFound:        "Run not found",
		ErrKeyStoreDisabled:      "Saved runs are not enabled on this server",
		ErrKeyStoreUnavailable:   "Run store is temporarily unavailable",
		ErrKeyHSLookupDisabled:   "HS code lookup is not enabled on this server",
		ErrKeyHSLookupFailed:     "HS code lookup failed",
		SuccessKeyRunSaved:       "Run saved",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:       "Não autorizado",
		ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
		ErrKeyInvalidAPIKey:      "Chave de API inválida",
		ErrKeyTokenRequired:      "Token de autenticação é obrigatório",
		ErrKeyInvalidToken:       "Token inválido ou expirado",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyConflict:           "Uma requisição com esta chave de idempotência já está em andamento",
		ErrKeyInvalidCountry:     "País desconhecido",
		ErrKeyTooManyItems:       "O portfólio tem itens demais",
		ErrKeyNoItems:            "O portfólio não tem itens",
		ErrKeyRunNotFound:        "Execução não encontrada",
		ErrKeyStoreDisabled:      "Execuções salvas não estão habilitadas neste servidor",
		ErrKeyStoreUnavailable:   "Armazenamento de execuções temporariamente indisponível",
		ErrKeyHSLookupDisabled:   "Consulta de código HS não está habilitada neste servidor",
		ErrKeyHSLookupFailed:     "Falha na consulta de código HS",
		SuccessKeyRunSaved:       "Execução salva",
	},
	"es": {
		ErrKeyInvalidRequest:     "Solicitud inválida",
		ErrKeyInvalidRequestBody: "Cuerpo de la solicitud inválido",
		ErrKeyInternalError:      "Ocurrió un error inesperado",
		ErrKeyUnauthorized:       "No autorizado",
		ErrKeyAPIKeyRequired:     "Se requiere una clave de API",
		ErrKeyInvalidAPIKey:      "Clave de API inválida",
		ErrKeyTokenRequired:      "Se requiere un token de autenticación",
		ErrKeyInvalidToken:       "Token inválido o vencido",
		ErrKeyNotFound:           "No encontrado",
		ErrKeyRateLimitExceeded:  "Demasiadas solicitudes, inténtelo más tarde",
		ErrKeyInvalidCountry:     "País desconocido",
		ErrKeyTooManyItems:       "El portafolio tiene demasiados artículos",
		ErrKeyNoItems:            "El portafolio no tiene artículos",
		ErrKeyRunNotFound:        "Ejecución no encontrada",
		ErrKeyStoreUnavailable:   "El almacenamiento de ejecuciones no está disponible",
	},
}
