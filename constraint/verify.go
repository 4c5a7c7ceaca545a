package constraint

import "fmt"

// VerifyImplications checks every declared implication edge against the
// given sample values: whenever a sample satisfies a constraint, it must
// also satisfy everything that constraint implies.
//
// Soundness of implications is a burden on constraint authors; the engine
// trusts declared edges at validation time. This check is the "trust but
// verify" escape: run it from a startup assertion, a test, or the CLI's
// verify command with representative samples for each base literal kind.
//
// The first unsound edge found is reported via ErrUnsoundImplication,
// naming the edge and the witness value.
func (r *Registry) VerifyImplications(samples ...any) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		def := r.defs[id]
		for _, implied := range def.Implies {
			impliedDef, ok := r.defs[implied]
			if !ok {
				// Register guarantees this; defensive only.
				return fmt.Errorf("%w: %q implies %q", ErrUnknownImplication, id, implied)
			}
			for _, sample := range samples {
				if def.Predicate(sample) && !impliedDef.Predicate(sample) {
					return fmt.Errorf("%w: %q implies %q but value %v satisfies only %q",
						ErrUnsoundImplication, id, implied, sample, id)
				}
			}
		}
	}
	return nil
}
