package constraint

import (
	"errors"
	"strings"
	"testing"
)

func isNumber(v any) bool {
	switch v.(type) {
	case int, float64:
		return true
	}
	return false
}

func numAtLeast(min float64) Predicate {
	return func(v any) bool {
		switch n := v.(type) {
		case int:
			return float64(n) >= min
		case float64:
			return n >= min
		}
		return false
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("number.value", isNumber,
		WithDescription("any number")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register("number.nonnegative", numAtLeast(0),
		WithImplies("number.value"),
		WithReasonf("expected >= 0, got %v")); err != nil {
		t.Fatalf("register: %v", err)
	}

	def, err := r.Lookup("number.nonnegative")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if def.ID != "number.nonnegative" {
		t.Errorf("unexpected ID %q", def.ID)
	}
	if len(def.Implies) != 1 || def.Implies[0] != "number.value" {
		t.Errorf("unexpected implies %v", def.Implies)
	}
	if got := def.Reason(-3); got != "expected >= 0, got -3" {
		t.Errorf("reason = %q", got)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("number.value", isNumber); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := r.Register("number.value", isNumber)
	if !errors.Is(err, ErrDuplicateConstraint) {
		t.Errorf("expected ErrDuplicateConstraint, got %v", err)
	}
}

func TestRegisterUnknownImplication(t *testing.T) {
	r := NewRegistry()

	err := r.Register("number.positive", numAtLeast(1),
		WithImplies("number.nonnegative"))
	if !errors.Is(err, ErrUnknownImplication) {
		t.Errorf("expected ErrUnknownImplication, got %v", err)
	}

	// Implications must reference already-registered constraints, which
	// also rules out self-implication.
	if err := r.Register("number.value", isNumber); err != nil {
		t.Fatalf("register: %v", err)
	}
	err = r.Register("number.odd", isNumber, WithImplies("number.odd"))
	if !errors.Is(err, ErrUnknownImplication) {
		t.Errorf("expected ErrUnknownImplication for self-implication, got %v", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("Not.Valid", isNumber); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
	if err := r.Register("number.value", nil); !errors.Is(err, ErrNilPredicate) {
		t.Errorf("expected ErrNilPredicate, got %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("number.missing")
	if !errors.Is(err, ErrUnknownConstraint) {
		t.Errorf("expected ErrUnknownConstraint, got %v", err)
	}
	if !strings.Contains(err.Error(), "number.missing") {
		t.Errorf("error should name the identifier: %v", err)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("number.value", isNumber)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate MustRegister")
		}
	}()
	r.MustRegister("number.value", isNumber)
}

func TestListOrderAndLen(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("number.value", isNumber)
	r.MustRegister("number.nonnegative", numAtLeast(0), WithImplies("number.value"))
	r.MustRegister("number.positive", numAtLeast(1), WithImplies("number.nonnegative"))

	got := r.List()
	want := []string{"number.value", "number.nonnegative", "number.positive"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if !r.Has("number.positive") || r.Has("number.missing") {
		t.Error("Has() misreports registration state")
	}
}

func TestVerifyImplications(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("number.value", isNumber)
	r.MustRegister("number.nonnegative", numAtLeast(0), WithImplies("number.value"))
	r.MustRegister("number.positive", numAtLeast(1), WithImplies("number.nonnegative"))

	if err := r.VerifyImplications(-2, -1, 0, 1, 2, 2.5, "x"); err != nil {
		t.Errorf("sound registry reported unsound: %v", err)
	}
}

func TestVerifyImplicationsUnsound(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("number.nonnegative", numAtLeast(0))
	// Deliberately wrong: any number does not guarantee >= 0.
	r.MustRegister("number.any", isNumber, WithImplies("number.nonnegative"))

	err := r.VerifyImplications(-1)
	if !errors.Is(err, ErrUnsoundImplication) {
		t.Fatalf("expected ErrUnsoundImplication, got %v", err)
	}
	if !strings.Contains(err.Error(), "number.any") || !strings.Contains(err.Error(), "number.nonnegative") {
		t.Errorf("error should name the unsound edge: %v", err)
	}
}

func TestDefaultSingleton(t *testing.T) {
	ResetDefault()
	defer ResetDefault()

	custom := NewRegistry()
	custom.MustRegister("number.value", isNumber)
	InitDefault(custom)

	if Default() != custom {
		t.Error("InitDefault before Default should install the custom registry")
	}
	if !Default().Has("number.value") {
		t.Error("default registry lost registration")
	}
}
