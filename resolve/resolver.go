package resolve

import (
	"fmt"
	"strings"
	"sync"

	"github.com/c360studio/semlit/constraint"
)

// Resolver owns the plan cache for one registry.
//
// Plans are created lazily on first resolution of a composition and are
// immutable afterward. The cache key is the composition's normalized
// signature, so declaration order and duplicates do not matter:
// {positive, nonnegative} and {nonnegative, positive, positive} share one
// plan. The registry is expected to be fully populated before the first
// resolution; registering constraints after plans exist is a configuration
// error and is not detected here.
type Resolver struct {
	reg *constraint.Registry

	mu    sync.RWMutex
	plans map[string]*Plan
}

// NewResolver creates a resolver over the given registry. A nil registry
// selects constraint.Default().
func NewResolver(reg *constraint.Registry) *Resolver {
	if reg == nil {
		reg = constraint.Default()
	}
	return &Resolver{
		reg:   reg,
		plans: make(map[string]*Plan),
	}
}

// Registry returns the registry this resolver reads from.
func (r *Resolver) Registry() *constraint.Registry { return r.reg }

// Resolve produces the evaluation plan for a composition of constraint
// identifiers.
//
// Resolution expands the transitive implication closure, keeps only the
// minimal covering subset (a constraint implied by another member of the
// closure is dropped from the explicit check list, since the implying
// constraint guarantees it), rejects compositions carrying two members of
// an exclusive family, and orders the remaining checks topologically.
//
// Repeated calls with the same composition, in any order and with any
// duplication, return the identical cached *Plan.
func (r *Resolver) Resolve(ids ...string) (*Plan, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyComposition
	}
	requested := Normalize(ids)
	sig := strings.Join(requested, "+")

	r.mu.RLock()
	plan, ok := r.plans[sig]
	r.mu.RUnlock()
	if ok {
		return plan, nil
	}

	plan, err := r.build(requested, sig)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.plans[sig]; ok {
		// Lost a race with another goroutine; keep the first plan so the
		// reference-stability invariant holds.
		return cached, nil
	}
	r.plans[sig] = plan
	return plan, nil
}

// CachedPlans returns the number of memoized plans, for observability.
func (r *Resolver) CachedPlans() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.plans)
}

func (r *Resolver) build(requested []string, sig string) (*Plan, error) {
	defs := make(map[string]*constraint.Definition)

	// Implication closure of the requested set.
	stack := append([]string(nil), requested...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := defs[id]; seen {
			continue
		}
		def, err := r.reg.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", sig, err)
		}
		defs[id] = def
		stack = append(stack, def.Implies...)
	}

	if err := checkExclusive(defs); err != nil {
		return nil, fmt.Errorf("resolve %q: %w", sig, err)
	}

	// A closure member is covered when some other member implies it,
	// directly or transitively; covered members need no explicit check.
	covered := make(map[string]bool, len(defs))
	for _, def := range defs {
		markImplied(r.reg, def, covered)
	}

	closureIDs := make([]string, 0, len(defs))
	for id := range defs {
		closureIDs = append(closureIDs, id)
	}
	sortStrings(closureIDs)

	ordered, err := topoOrder(closureIDs, func(id string) []string {
		return defs[id].Implies
	})
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", sig, err)
	}

	steps := make([]Step, 0, len(ordered))
	for _, id := range ordered {
		if covered[id] {
			continue
		}
		steps = append(steps, Step{def: defs[id]})
	}

	return &Plan{
		signature: sig,
		requested: requested,
		closure:   ordered,
		steps:     steps,
	}, nil
}

// markImplied marks everything def transitively implies as covered.
func markImplied(reg *constraint.Registry, def *constraint.Definition, covered map[string]bool) {
	for _, implied := range def.Implies {
		if covered[implied] {
			continue
		}
		covered[implied] = true
		if impliedDef, err := reg.Lookup(implied); err == nil {
			markImplied(reg, impliedDef, covered)
		}
	}
}

// checkExclusive rejects closures holding two members of one exclusive
// family (e.g. unit<celsius> and unit<kelvin> on the same concept).
func checkExclusive(defs map[string]*constraint.Definition) error {
	families := make(map[string][]string)
	for id, def := range defs {
		if !def.Exclusive {
			continue
		}
		base := constraint.Base(id)
		families[base] = append(families[base], id)
	}

	bases := make([]string, 0, len(families))
	for base := range families {
		bases = append(bases, base)
	}
	sortStrings(bases)

	for _, base := range bases {
		members := families[base]
		if len(members) < 2 {
			continue
		}
		sortStrings(members)
		return fmt.Errorf("%w: %s", ErrFamilyConflict, strings.Join(members, ", "))
	}
	return nil
}
