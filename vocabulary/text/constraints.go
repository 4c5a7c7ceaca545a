package text

import (
	"strings"
	"unicode/utf8"

	"github.com/c360studio/semlit/constraint"
)

// Text constraint identifiers.
const (
	// Value holds for any string literal.
	Value = "text.value"

	// NonEmpty holds for strings of length > 0.
	NonEmpty = "text.nonempty"

	// Trimmed holds for strings without leading or trailing whitespace.
	Trimmed = "text.trimmed"

	// Lower holds for strings with no uppercase letters.
	Lower = "text.lower"

	// UTF8 holds for strings that are valid UTF-8.
	UTF8 = "text.utf8"
)

func isString(value any) bool {
	_, ok := value.(string)
	return ok
}

func isNonEmpty(value any) bool {
	s, ok := value.(string)
	return ok && len(s) > 0
}

func isTrimmed(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == s
}

func isLower(value any) bool {
	s, ok := value.(string)
	return ok && s == strings.ToLower(s)
}

func isUTF8(value any) bool {
	s, ok := value.(string)
	return ok && utf8.ValidString(s)
}

func init() {
	reg := constraint.Default()

	reg.MustRegister(Value, isString,
		constraint.WithDescription("any string literal"),
		constraint.WithReasonf("expected a string, got %v"))

	reg.MustRegister(NonEmpty, isNonEmpty,
		constraint.WithDescription("string of length greater than zero"),
		constraint.WithReasonf("expected non-empty string, got %q"),
		constraint.WithImplies(Value))

	reg.MustRegister(Trimmed, isTrimmed,
		constraint.WithDescription("string without surrounding whitespace"),
		constraint.WithReasonf("expected trimmed string, got %q"),
		constraint.WithImplies(Value))

	reg.MustRegister(Lower, isLower,
		constraint.WithDescription("string with no uppercase letters"),
		constraint.WithReasonf("expected lowercase string, got %q"),
		constraint.WithImplies(Value))

	reg.MustRegister(UTF8, isUTF8,
		constraint.WithDescription("string containing valid UTF-8"),
		constraint.WithReasonf("expected valid UTF-8, got %q"),
		constraint.WithImplies(Value))
}
