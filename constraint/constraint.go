// Package constraint defines named, reusable predicates over literal values
// and the registry that holds them.
//
// A constraint pairs an identifier with a predicate and, optionally, a set of
// weaker constraints it implies. Concepts (see the boundary package) are
// composed from constraint identifiers; the resolve package turns a
// composition into a deduplicated evaluation plan.
//
// Identifiers use lowercase dotted notation (domain.property), consistent
// with the vocabulary conventions used across c360studio projects:
//
//	number.integer
//	number.nonnegative
//	text.nonempty
//
// Parameterized constraints append the parameter in angle brackets; the
// parameter participates in identity:
//
//	unit<celsius>
//	unit<year>
package constraint

import (
	"fmt"
	"regexp"
	"strings"
)

// Predicate reports whether a value satisfies a constraint.
//
// Predicates must be pure, side-effect-free, and total over arbitrary input:
// a numeric constraint handed a string returns false, it does not panic.
// A predicate that panics is a configuration defect and is deliberately not
// recovered anywhere in this module.
type Predicate func(value any) bool

// Explainer produces a human-readable reason why a value was rejected.
// It is only called for values the paired predicate rejected.
type Explainer func(value any) string

// Definition is a registered constraint: identity, predicate, and the
// implication edges to strictly weaker constraints.
type Definition struct {
	// ID is the unique identifier, including the parameter for
	// parameterized constraints (e.g. "unit<celsius>").
	ID string

	// Description explains what the constraint means. Optional.
	Description string

	// Predicate decides satisfaction. Required.
	Predicate Predicate

	// Explain produces rejection reasons. When nil, the reason defaults
	// to the constraint identifier itself.
	Explain Explainer

	// Implies lists identifiers guaranteed to hold whenever this
	// constraint holds. Entries must already be registered, which makes
	// the implication relation acyclic by construction.
	Implies []string

	// Exclusive marks the constraint's base family as exclusive: a single
	// concept may carry at most one member of the family. Used by unit
	// tags, where stacking "unit<celsius>" and "unit<kelvin>" on one
	// concept is a declaration error.
	Exclusive bool
}

// Reason returns the explanation for a rejected value, falling back to the
// identifier when no Explainer was registered.
func (d *Definition) Reason(value any) string {
	if d.Explain != nil {
		return d.Explain(value)
	}
	return d.ID
}

// baseRe matches the dotted base of an identifier: lowercase segments
// separated by dots, underscores allowed inside a segment.
var baseRe = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*)*$`)

// ValidID reports whether id is a well-formed constraint identifier:
// a dotted lowercase base with an optional non-empty <parameter> suffix.
func ValidID(id string) bool {
	base, param, parameterized := splitID(id)
	if !baseRe.MatchString(base) {
		return false
	}
	if !parameterized {
		return true
	}
	if param == "" {
		return false
	}
	return !strings.ContainsAny(param, "<> \t\n")
}

// Base returns the identifier with any parameter stripped:
// Base("unit<celsius>") == "unit". Members of a parameterized family share
// a base, which is what the resolver's exclusivity check groups by.
func Base(id string) string {
	base, _, _ := splitID(id)
	return base
}

// Param returns the parameter of a parameterized identifier and whether one
// was present.
func Param(id string) (string, bool) {
	_, param, ok := splitID(id)
	return param, ok
}

// ParamID builds a parameterized identifier from a base and parameter.
func ParamID(base, param string) string {
	return fmt.Sprintf("%s<%s>", base, param)
}

func splitID(id string) (base, param string, parameterized bool) {
	open := strings.IndexByte(id, '<')
	if open < 0 {
		return id, "", false
	}
	if !strings.HasSuffix(id, ">") {
		// Malformed; keep the raw string as base so ValidID rejects it.
		return id, "", false
	}
	return id[:open], id[open+1 : len(id)-1], true
}
