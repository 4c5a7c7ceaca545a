package numeric

import (
	"math"

	"github.com/c360studio/semlit/constraint"
)

// Numeric constraint identifiers.
const (
	// Value holds for any numeric literal (int and float kinds).
	Value = "number.value"

	// Finite holds for numeric values that are neither NaN nor infinite.
	Finite = "number.finite"

	// Integer holds for finite numeric values with no fractional part.
	// Note this is a property of the value, not the Go type: float64(42)
	// satisfies it, 3.5 does not.
	Integer = "number.integer"

	// Nonzero holds for numeric values other than zero.
	Nonzero = "number.nonzero"

	// Nonnegative holds for numeric values >= 0.
	Nonnegative = "number.nonnegative"

	// Positive holds for numeric values > 0.
	Positive = "number.positive"
)

// AsFloat converts any numeric literal kind to float64. The second return
// is false for non-numeric values.
//
// uint64 values above 2^53 lose precision in the conversion; constraints in
// this vocabulary only inspect sign, zeroness, and integrality, which the
// conversion preserves for every uint64.
func AsFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func isNumber(value any) bool {
	_, ok := AsFloat(value)
	return ok
}

func isFinite(value any) bool {
	f, ok := AsFloat(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isInteger(value any) bool {
	f, ok := AsFloat(value)
	return ok && !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func isNonzero(value any) bool {
	f, ok := AsFloat(value)
	return ok && f != 0
}

func isNonnegative(value any) bool {
	f, ok := AsFloat(value)
	return ok && f >= 0
}

func isPositive(value any) bool {
	f, ok := AsFloat(value)
	return ok && f > 0
}

func init() {
	reg := constraint.Default()

	reg.MustRegister(Value, isNumber,
		constraint.WithDescription("any numeric literal"),
		constraint.WithReasonf("expected a number, got %v"))

	reg.MustRegister(Finite, isFinite,
		constraint.WithDescription("numeric value that is neither NaN nor infinite"),
		constraint.WithReasonf("expected a finite number, got %v"),
		constraint.WithImplies(Value))

	reg.MustRegister(Integer, isInteger,
		constraint.WithDescription("numeric value with no fractional part"),
		constraint.WithReasonf("expected integer, got %v"),
		constraint.WithImplies(Finite))

	reg.MustRegister(Nonzero, isNonzero,
		constraint.WithDescription("numeric value other than zero"),
		constraint.WithReasonf("expected nonzero, got %v"),
		constraint.WithImplies(Value))

	reg.MustRegister(Nonnegative, isNonnegative,
		constraint.WithDescription("numeric value greater than or equal to zero"),
		constraint.WithReasonf("expected >= 0, got %v"),
		constraint.WithImplies(Value))

	reg.MustRegister(Positive, isPositive,
		constraint.WithDescription("numeric value strictly greater than zero"),
		constraint.WithReasonf("expected > 0, got %v"),
		constraint.WithImplies(Nonnegative, Nonzero))
}
