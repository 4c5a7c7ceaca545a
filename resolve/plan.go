// Package resolve turns a composition of constraint identifiers into a
// deduplicated, deterministically ordered evaluation plan.
//
// Resolution expands the transitive implication closure of the requested
// identifiers, drops every constraint already guaranteed by a stronger
// member of the closure, and orders what remains so weaker constraints are
// evaluated before the constraints that assume them. Plans are memoized by
// the composition's normalized signature and are reference-stable: resolving
// the same composition twice returns the identical plan object.
package resolve

import (
	"strings"

	"github.com/c360studio/semlit/constraint"
)

// Step is a single constraint check within a plan.
type Step struct {
	def *constraint.Definition
}

// ID returns the constraint identifier checked by this step.
func (s Step) ID() string { return s.def.ID }

// Check runs the constraint predicate against a candidate value.
func (s Step) Check(value any) bool { return s.def.Predicate(value) }

// Reason returns the human-readable rejection reason for a value this
// step's predicate rejected.
func (s Step) Reason(value any) string { return s.def.Reason(value) }

// Plan is the cached, immutable evaluation plan for one composition.
//
// Steps hold the minimal covering subset of the implication closure in
// topological order (weakest first, ties broken lexicographically).
type Plan struct {
	signature string
	requested []string
	closure   []string
	steps     []Step
}

// Signature returns the normalized identity of the composition: the sorted,
// deduplicated requested identifiers joined with "+". Two compositions with
// the same signature share the same cached plan.
func (p *Plan) Signature() string { return p.signature }

// Requested returns the normalized requested identifiers.
func (p *Plan) Requested() []string {
	out := make([]string, len(p.requested))
	copy(out, p.requested)
	return out
}

// Closure returns every identifier guaranteed by the composition, explicit
// or implied, in the same deterministic order the resolver produced.
func (p *Plan) Closure() []string {
	out := make([]string, len(p.closure))
	copy(out, p.closure)
	return out
}

// Steps returns the checks to evaluate, in plan order. The returned slice
// must not be mutated.
func (p *Plan) Steps() []Step { return p.steps }

// Len returns the number of checks in the plan.
func (p *Plan) Len() int { return len(p.steps) }

// Normalize sorts and deduplicates a set of identifiers.
func Normalize(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sortStrings(out)
	return out
}

// Signature computes the normalized signature for a set of identifiers
// without resolving it.
func Signature(ids []string) string {
	return strings.Join(Normalize(ids), "+")
}
