package removal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// User-facing messages for the classified failure categories.
const (
	MsgCredential = "Invalid or missing API key. Please check your GEMINI_API_KEY configuration."
	MsgSafety     = "Your request was blocked by the safety policy. Please try a different image."
	MsgRegion     = "This service is not available in your region."
	MsgNoImage    = "The model did not return an image. Please try again."
	MsgUnknown    = "An unknown error occurred."
)

// maxGenericLen bounds pass-through error text for display.
const maxGenericLen = 240

var credentialTerms = []string{
	"api key",
	"api_key",
	"credential",
	"permission",
	"unauthorized",
	"unauthenticated",
	"forbidden",
	"iam",
}

// Classify maps an arbitrary failure value to a single human-readable
// message. It accepts errors, plain strings, and opaque values (such as
// recovered panics) and always returns a non-empty string; it never panics.
func Classify(v any) string {
	text := failureText(v)
	if text == "" {
		return MsgUnknown
	}

	lower := strings.ToLower(text)
	for _, term := range credentialTerms {
		if strings.Contains(lower, term) {
			return MsgCredential
		}
	}
	if strings.Contains(lower, "blocked due to safety") {
		return MsgSafety
	}
	if strings.Contains(lower, "location is not supported") {
		return MsgRegion
	}
	if strings.Contains(lower, "did not return an image") {
		return MsgNoImage
	}

	if len(text) > maxGenericLen {
		cut := maxGenericLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return "Image processing failed: " + text
}

// failureText extracts the best-effort message from an arbitrary failure
// value, appending one level of wrapped cause when it adds information.
func failureText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case error:
		return strings.TrimSpace(errorText(v))
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(stringerText(v))
	default:
		text := strings.TrimSpace(fmt.Sprintf("%v", v))
		if uninformative(text) {
			return ""
		}
		return text
	}
}

// errorText guards against error implementations that panic, such as a typed
// nil with a pointer-receiver Error method; the classifier must survive any
// failure value.
func errorText(v error) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	text = strings.TrimSpace(v.Error())
	if cause := errors.Unwrap(v); cause != nil {
		causeText := strings.TrimSpace(cause.Error())
		if causeText != "" && !strings.Contains(text, causeText) {
			text = text + ": " + causeText
		}
	}
	return text
}

// stringerText is the same guard for Stringer implementations.
func stringerText(v fmt.Stringer) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	return v.String()
}

// uninformative reports whether a formatted value carries no usable message,
// such as an empty struct dump or a bare pointer tag.
func uninformative(text string) bool {
	switch {
	case text == "", text == "<nil>", text == "{}", text == "&{}":
		return true
	case strings.HasPrefix(text, "map["):
		return len(text) <= len("map[]")
	case strings.HasPrefix(text, "0x"):
		return true
	default:
		return false
	}
}
