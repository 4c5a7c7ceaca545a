// Package boundary is the public entry point of the engine: it combines
// registry lookup, plan resolution, and validation into narrow/from style
// operations at the points where untrusted raw values enter the trusted
// domain.
//
// The trust contract is a protocol convention, not a mechanical guarantee:
// a value that passed From or Narrow for a concept is treated as satisfying
// that concept downstream without re-checking. The engine cannot enforce the
// convention once a value escapes into ordinary code; call these operations
// at boundaries (handlers, deserialization sites, ingestion points) and
// nowhere else.
package boundary

import (
	"fmt"
	"strings"

	"github.com/c360studio/semlit/resolve"
)

// Mode selects the validator's failure-handling strategy.
type Mode int

const (
	// ModeFast stops at the first failing constraint. Used by Narrow,
	// where the call site only needs a boolean gate.
	ModeFast Mode = iota

	// ModeCollect evaluates every plan entry and reports all failures.
	// Used by From, where the boundary wants full diagnostics.
	ModeCollect
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeCollect:
		return "collect"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Violation records one failed constraint and the reason the value was
// rejected.
type Violation struct {
	Constraint string `json:"constraint"`
	Reason     string `json:"reason"`
}

// Failure is a structured validation failure: every failed constraint in
// plan order (ModeCollect) or just the first (ModeFast).
//
// Failure is an ordinary return value, part of normal control flow; it is
// never panicked. It implements error so From callers can propagate it,
// and errors.As recovers the structure at the call site that renders it.
type Failure struct {
	// Concept names the concept the value was validated against: the
	// declared name when one was given, otherwise the plan signature.
	Concept string `json:"concept"`

	// Violations lists the failed constraints in plan order. Never empty.
	Violations []Violation `json:"violations"`
}

func (f *Failure) Error() string {
	parts := make([]string, len(f.Violations))
	for i, v := range f.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Constraint, v.Reason)
	}
	return fmt.Sprintf("value does not satisfy %s: %s", f.Concept, strings.Join(parts, "; "))
}

// Evaluate runs an evaluation plan against a candidate value.
//
// In ModeFast it short-circuits on the first failing step; in ModeCollect
// it evaluates every step regardless of earlier failures, so the caller can
// report all problems at once. A nil return means the value satisfies every
// constraint in the plan.
//
// Step order is the deterministic topological order fixed at resolution
// time. Predicates are pure and total by contract; a predicate that panics
// is a broken constraint definition, and the panic is deliberately allowed
// to propagate rather than being folded into a validation failure.
func Evaluate(plan *resolve.Plan, value any, mode Mode) *Failure {
	var violations []Violation
	for _, step := range plan.Steps() {
		if step.Check(value) {
			continue
		}
		violations = append(violations, Violation{
			Constraint: step.ID(),
			Reason:     step.Reason(value),
		})
		if mode == ModeFast {
			break
		}
	}
	if len(violations) == 0 {
		return nil
	}
	return &Failure{
		Concept:    plan.Signature(),
		Violations: violations,
	}
}
