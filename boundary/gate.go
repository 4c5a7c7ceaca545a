package boundary

import (
	"log/slog"

	"github.com/c360studio/semlit/resolve"
)

// Observer receives validation lifecycle events. The metrics package
// provides a Prometheus implementation; a nil observer disables
// observation without any hot-path branching at call sites.
type Observer interface {
	// Validated is called after every Narrow or From with the concept
	// name and outcome.
	Validated(concept string, ok bool)

	// ConstraintFailed is called once per failed constraint reported by
	// From.
	ConstraintFailed(constraint string)

	// PlansCached is called after a successful Declare with the current
	// number of memoized plans.
	PlansCached(total int)
}

// noopObserver keeps Gate methods free of nil checks.
type noopObserver struct{}

func (noopObserver) Validated(string, bool)  {}
func (noopObserver) ConstraintFailed(string) {}
func (noopObserver) PlansCached(int)         {}

// Gate validates untrusted values against declared concepts.
//
// A Gate is cheap and safe for concurrent use: concept declaration may race
// with validation, and plan resolution is serialized inside the resolver.
// The registry behind it must be fully populated before the first Declare.
type Gate struct {
	resolver *resolve.Resolver
	logger   *slog.Logger
	obs      Observer
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithLogger attaches a logger; defaults to slog.Default().
func WithLogger(logger *slog.Logger) GateOption {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithObserver attaches a validation observer.
func WithObserver(obs Observer) GateOption {
	return func(g *Gate) {
		if obs != nil {
			g.obs = obs
		}
	}
}

// NewGate creates a gate over the given resolver. A nil resolver selects a
// new resolver over constraint.Default().
func NewGate(resolver *resolve.Resolver, opts ...GateOption) *Gate {
	if resolver == nil {
		resolver = resolve.NewResolver(nil)
	}
	g := &Gate{
		resolver: resolver,
		logger:   slog.Default(),
		obs:      noopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resolver returns the resolver backing this gate.
func (g *Gate) Resolver() *resolve.Resolver { return g.resolver }

// Concept is a handle to a declared composition: a name plus the cached
// evaluation plan. Handles declared from the same constraint set, in any
// order and with any duplication, are backed by the identical plan object.
type Concept struct {
	name string
	plan *resolve.Plan
}

// Name returns the declared name, or the plan signature for anonymous
// concepts.
func (c *Concept) Name() string { return c.name }

// Signature returns the normalized identity of the underlying composition.
func (c *Concept) Signature() string { return c.plan.Signature() }

// Plan returns the cached evaluation plan.
func (c *Concept) Plan() *resolve.Plan { return c.plan }

// Declare resolves a composition of constraint identifiers into an
// anonymous concept handle. Cheap to call repeatedly for the same set; the
// underlying plan is resolved once and cached.
func (g *Gate) Declare(ids ...string) (*Concept, error) {
	return g.declare("", ids)
}

// DeclareNamed is Declare with a human-meaningful concept name, used in
// failure reports and metrics labels (e.g. "age" instead of the raw
// signature).
func (g *Gate) DeclareNamed(name string, ids ...string) (*Concept, error) {
	return g.declare(name, ids)
}

func (g *Gate) declare(name string, ids []string) (*Concept, error) {
	plan, err := g.resolver.Resolve(ids...)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = plan.Signature()
	}
	g.obs.PlansCached(g.resolver.CachedPlans())
	g.logger.Debug("declared concept",
		slog.String("concept", name),
		slog.String("signature", plan.Signature()),
		slog.Int("checks", plan.Len()))
	return &Concept{name: name, plan: plan}, nil
}

// Narrow reports whether a value satisfies the concept, discarding
// diagnostic detail. It runs the validator in fast mode and is intended for
// call sites that only need a boolean gate.
func (g *Gate) Narrow(c *Concept, value any) bool {
	failure := Evaluate(c.plan, value, ModeFast)
	g.obs.Validated(c.name, failure == nil)
	return failure == nil
}

// From validates a value against the concept with full diagnostics.
//
// On success the returned value is contractually trusted: no further
// constraint evaluation is expected downstream. On failure the returned
// error is a *Failure listing every violated constraint in plan order;
// callers are forced to handle the negative case explicitly. Re-validating
// the same raw value yields the same result deterministically, since
// predicates are pure.
func (g *Gate) From(c *Concept, value any) (any, error) {
	failure := Evaluate(c.plan, value, ModeCollect)
	if failure == nil {
		g.obs.Validated(c.name, true)
		return value, nil
	}
	failure.Concept = c.name
	g.obs.Validated(c.name, false)
	for _, v := range failure.Violations {
		g.obs.ConstraintFailed(v.Constraint)
	}
	g.logger.Debug("value rejected",
		slog.String("concept", c.name),
		slog.Int("violations", len(failure.Violations)))
	return nil, failure
}

// AssertTrusted declares that a value already satisfies a concept by means
// outside the engine (a literal constant, a value from an already-validated
// store). It performs no validation and costs nothing.
//
// This is an escape hatch, not a checked API: asserting an untrusted or
// actually-invalid value silently violates the trust contract, and doing so
// is explicitly the caller's responsibility.
func AssertTrusted(value any) any { return value }
