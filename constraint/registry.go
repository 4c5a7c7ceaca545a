package constraint

import (
	"fmt"
	"sync"
)

// Registry holds constraint definitions for the process lifetime.
//
// The intended lifecycle is write-once-register, read-many: populate the
// registry during initialization, then treat it as read-only while
// validation traffic runs. The mutex exists so that registration racing
// with early reads is still safe, but no dynamic re-registration during
// active validation is supported; in particular, registering constraints
// after evaluation plans have been cached is a configuration error (see
// resolve.Resolver).
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]*Definition),
	}
}

// Option configures a constraint at registration time.
type Option func(*Definition)

// WithDescription attaches a human-readable description.
func WithDescription(desc string) Option {
	return func(d *Definition) { d.Description = desc }
}

// WithImplies declares that the constraint guarantees the listed
// identifiers. Every listed identifier must already be registered.
func WithImplies(ids ...string) Option {
	return func(d *Definition) { d.Implies = append(d.Implies, ids...) }
}

// WithExplain attaches a custom rejection-reason producer.
func WithExplain(fn Explainer) Option {
	return func(d *Definition) { d.Explain = fn }
}

// WithReasonf attaches a printf-style rejection reason; the single verb
// receives the rejected value.
//
//	constraint.WithReasonf("expected >= 0, got %v")
func WithReasonf(format string) Option {
	return func(d *Definition) {
		d.Explain = func(value any) string {
			return fmt.Sprintf(format, value)
		}
	}
}

// WithExclusiveFamily marks the constraint's base family as exclusive:
// the resolver rejects concepts carrying more than one member of the family.
func WithExclusiveFamily() Option {
	return func(d *Definition) { d.Exclusive = true }
}

// Register adds a constraint definition.
//
// It fails with ErrInvalidIdentifier for malformed identifiers,
// ErrDuplicateConstraint if the identifier (including parameter) is already
// registered, ErrNilPredicate for a missing predicate, and
// ErrUnknownImplication if any implied identifier is not yet registered.
// Requiring implications to reference earlier-registered constraints keeps
// the implication relation acyclic by construction.
func (r *Registry) Register(id string, pred Predicate, opts ...Option) error {
	if !ValidID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	if pred == nil {
		return fmt.Errorf("%w: %q", ErrNilPredicate, id)
	}

	def := &Definition{ID: id, Predicate: pred}
	for _, opt := range opts {
		opt(def)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateConstraint, id)
	}
	seen := make(map[string]bool, len(def.Implies))
	deduped := def.Implies[:0]
	for _, implied := range def.Implies {
		if implied == id {
			return fmt.Errorf("%w: %q implies itself", ErrUnknownImplication, id)
		}
		if _, exists := r.defs[implied]; !exists {
			return fmt.Errorf("%w: %q implies %q", ErrUnknownImplication, id, implied)
		}
		if seen[implied] {
			continue
		}
		seen[implied] = true
		deduped = append(deduped, implied)
	}
	def.Implies = deduped

	r.defs[id] = def
	r.order = append(r.order, id)
	return nil
}

// MustRegister is Register for init-time vocabulary setup; it panics on
// error since a failed registration is always a programming defect.
func (r *Registry) MustRegister(id string, pred Predicate, opts ...Option) {
	if err := r.Register(id, pred, opts...); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for an identifier.
func (r *Registry) Lookup(id string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConstraint, id)
	}
	return def, nil
}

// Has reports whether an identifier is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.defs[id]
	return ok
}

// List returns all registered identifiers in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered constraints.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.defs)
}
