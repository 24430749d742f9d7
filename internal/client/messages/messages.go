// Package messages turns pipeline errors and other failure values into
// user-facing text in the configured language.
package messages

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// substringRules map known server messages, matched case-insensitively in
// order, to catalog keys. English and Portuguese server texts are both known.
var substringRules = []struct {
	needles []string
	key     string
}{
	{[]string{"email already in use", "email já está em uso"}, keyEmailInUse},
	{[]string{"invalid credentials", "credenciais inválidas"}, keyInvalidCredentials},
	{[]string{"current password is incorrect", "senha atual incorreta"}, keyCurrentPasswordIncorrect},
	{[]string{"password is incorrect", "senha incorreta"}, keyPasswordIncorrect},
	{[]string{"user not found", "usuário não encontrado"}, keyUserNotFound},
	{[]string{"new password must be different"}, keyNewPasswordSame},
	{[]string{"unauthorized", "não autorizado"}, keySessionExpired},
	{[]string{"forbidden", "proibido"}, keyForbidden},
	{[]string{"not found", "não encontrado"}, keyResourceNotFound},
}

var validationNeedles = []string{"validation", "validação"}

var statusKeys = map[int]string{
	400: keyInvalidData,
	401: keySessionExpired,
	403: keyForbidden,
	404: keyNotFound,
	409: keyConflict,
	422: keyInvalidData,
	500: keyServerError,
	503: keyUnavailable,
}

// pipelineMessages are generated client-side and are replaced by the
// status based translation.
var pipelineMessages = map[string]struct{}{
	"":                           {},
	client.MsgConnection:         {},
	client.MsgInvalidResponse:    {},
	client.MsgUnexpected:         {},
	client.MsgUnknown:            {},
	client.MsgIncompleteResponse: {},
}

type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New builds a Translator for the best supported match of locale
// (e.g. "pt-BR", "pt", "en-US"). Unknown locales fall back to English.
func New(locale string) *Translator {
	tag := Supported[0]
	if locale != "" {
		if desired, err := language.Parse(locale); err == nil {
			_, idx, conf := language.NewMatcher(Supported).Match(desired)
			if conf != language.No {
				tag = Supported[idx]
			}
		}
	}

	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(defaultCatalog))}
}

// Language is the tag the catalog was matched to.
func (t *Translator) Language() language.Tag { return t.tag }

func (t *Translator) text(key string) string {
	return t.printer.Sprintf(key)
}

// Message returns a non-empty user-facing text for any value. It never
// panics: typed-nil errors and misbehaving Error methods map to the generic
// text.
func (t *Translator) Message(v any) (msg string) {
	defer func() {
		if recover() != nil {
			msg = t.text(keyUnexpected)
		}
	}()

	switch e := v.(type) {
	case nil:
		return t.text(keyUnexpected)
	case string:
		if e == "" {
			return t.text(keyUnexpected)
		}
		return e
	case *client.APIError:
		if e == nil {
			return t.text(keyUnexpected)
		}
		return t.apiError(e)
	case error:
		if isNil(e) {
			return t.text(keyUnexpected)
		}
		if apiErr, ok := client.AsAPIError(e); ok && apiErr != nil {
			return t.apiError(apiErr)
		}
		if e.Error() != "" {
			return e.Error()
		}
	case map[string]any:
		if msg, ok := e["message"].(string); ok && msg != "" {
			return msg
		}
		if first := firstText(e["errors"]); first != "" {
			return first
		}
	}
	return t.text(keyUnexpected)
}

// firstText returns the first non-empty string of an errors value: a list
// of messages or a field to messages map, flattened in key order.
func firstText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []any:
		for _, item := range x {
			if s, ok := item.(string); ok && s != "" {
				return s
			}
		}
	case []string:
		for _, s := range x {
			if s != "" {
				return s
			}
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if s := firstText(x[k]); s != "" {
				return s
			}
		}
	}
	return ""
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func (t *Translator) apiError(e *client.APIError) string {
	if _, generated := pipelineMessages[e.Message]; !generated {
		lower := strings.ToLower(e.Message)
		for _, rule := range substringRules {
			if containsAny(lower, rule.needles) {
				return t.text(rule.key)
			}
		}
		if containsAny(lower, validationNeedles) {
			if len(e.Errors) > 0 && e.Errors[0] != "" {
				return e.Errors[0]
			}
			return t.text(keyCheckData)
		}
		return e.Message
	}

	if e.StatusCode == 0 {
		switch e.Kind {
		case client.KindTransport:
			return t.text(keyConnection)
		case client.KindParse:
			return t.text(keyInvalidResponse)
		default:
			return t.text(keyUnexpected)
		}
	}
	if key, ok := statusKeys[e.StatusCode]; ok {
		return t.text(key)
	}
	if e.Message != "" {
		return e.Message
	}
	return t.text(keyUnexpected)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
