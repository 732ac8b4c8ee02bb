// Package i18n translates user-facing messages for the joint design API.
// Supported locales are en, pt and nl.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client expresses no supported preference.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: messages}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language from Accept-Language, in the
// order the client listed them. Quality values are not weighed.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	t := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if base, _, found := strings.Cut(lang, "-"); found {
			lang = base
		}
		lang = strings.ToLower(lang)
		if t.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// T translates key using the request's preferred locale.
func T(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

var messages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyUnauthorized:       "Unauthorized",
		ErrKeyAPIKeyRequired:     "API key is required",
		ErrKeyInvalidAPIKey:      "Invalid API key",
		ErrKeyInvalidToken:       "Invalid or expired token",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "A request with this idempotency key is already being processed",
		ErrKeyTimeout:            "The request timed out",

		ErrKeyInvalidGeometry:        "No standard hole diameter exists for this bolt diameter",
		ErrKeyInvalidBearingGeometry: "Pitch and edge distance give a non-positive bearing coefficient",
		ErrKeyInvalidLoad:            "Factored load must be a positive number",
		ErrKeyDegenerateCapacity:     "Bolt capacity is zero; add at least one shear plane",
		ErrKeyInvalidParameter:       "One or more design parameters are out of range",

		ErrKeyNoShearPlanes:         "At least one threaded or shank shear plane is required",
		ErrKeyInvalidCoverThickness: "Cover plate thickness must be greater than 0",
		ErrKeyInvalidJointType:      "Joint type must be lap, single_cover or double_cover",
		ErrKeyInvalidBoltDiameter:   "Bolt diameter must be an integer of at least 12 mm",
		ErrKeyEmptyBatch:            "The batch contains no designs",
		ErrKeyBatchTooLarge:         "The batch contains too many designs",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:       "Não autorizado",
		ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
		ErrKeyInvalidAPIKey:      "Chave de API inválida",
		ErrKeyInvalidToken:       "Token inválido ou expirado",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyConflict:           "Uma requisição com esta chave de idempotência já está em processamento",
		ErrKeyTimeout:            "A requisição excedeu o tempo limite",

		ErrKeyInvalidGeometry:        "Não existe diâmetro de furo normalizado para este diâmetro de parafuso",
		ErrKeyInvalidBearingGeometry: "Passo e distância à borda resultam em coeficiente de esmagamento não positivo",
		ErrKeyInvalidLoad:            "A carga majorada deve ser um número positivo",
		ErrKeyDegenerateCapacity:     "A capacidade do parafuso é zero; informe ao menos um plano de corte",
		ErrKeyInvalidParameter:       "Um ou mais parâmetros de projeto estão fora do intervalo",

		ErrKeyNoShearPlanes:         "É necessário ao menos um plano de corte na rosca ou no fuste",
		ErrKeyInvalidCoverThickness: "A espessura da chapa de cobrejunta deve ser maior que 0",
		ErrKeyInvalidJointType:      "O tipo de ligação deve ser lap, single_cover ou double_cover",
		ErrKeyInvalidBoltDiameter:   "O diâmetro do parafuso deve ser um inteiro de pelo menos 12 mm",
		ErrKeyEmptyBatch:            "O lote não contém projetos",
		ErrKeyBatchTooLarge:         "O lote contém projetos demais",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyUnauthorized:       "Niet geautoriseerd",
		ErrKeyAPIKeyRequired:     "API-sleutel is vereist",
		ErrKeyInvalidAPIKey:      "Ongeldige API-sleutel",
		ErrKeyInvalidToken:       "Ongeldig of verlopen token",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyConflict:           "Een verzoek met deze idempotentiesleutel wordt al verwerkt",
		ErrKeyTimeout:            "Het verzoek duurde te lang",

		ErrKeyInvalidGeometry:        "Er bestaat geen standaard gatdiameter voor deze boutdiameter",
		ErrKeyInvalidBearingGeometry: "Steek en randafstand geven een niet-positieve stuikcoëfficiënt",
		ErrKeyInvalidLoad:            "De rekenbelasting moet een positief getal zijn",
		ErrKeyDegenerateCapacity:     "De boutcapaciteit is nul; geef minstens één afschuifvlak op",
		ErrKeyInvalidParameter:       "Een of meer ontwerpparameters vallen buiten het bereik",

		ErrKeyNoShearPlanes:         "Minstens één afschuifvlak door schroefdraad of schacht is vereist",
		ErrKeyInvalidCoverThickness: "De dikte van de stuiklas moet groter zijn dan 0",
		ErrKeyInvalidJointType:      "Het verbindingstype moet lap, single_cover of double_cover zijn",
		ErrKeyInvalidBoltDiameter:   "De boutdiameter moet een geheel getal van minstens 12 mm zijn",
		ErrKeyEmptyBatch:            "De batch bevat geen ontwerpen",
		ErrKeyBatchTooLarge:         "De batch bevat te veel ontwerpen",
	},
}
