package resolve

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyComposition is returned when a composition names no constraints.
	ErrEmptyComposition = errors.New("empty composition")

	// ErrImplicationCycle is returned if a cycle is detected in the
	// implication graph. Registration order makes cycles impossible through
	// the public registry API; this is a defensive check.
	ErrImplicationCycle = errors.New("implication cycle detected")

	// ErrFamilyConflict is returned when a composition carries two members
	// of an exclusive constraint family (e.g. two unit tags).
	ErrFamilyConflict = errors.New("conflicting constraints from exclusive family")
)

// CycleError carries a deterministic witness path for an implication cycle.
type CycleError struct {
	// Path is the cycle as a closed walk, e.g. [a, b, a].
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return ErrImplicationCycle.Error()
	}
	return fmt.Sprintf("%s: %s", ErrImplicationCycle.Error(), strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrImplicationCycle }
