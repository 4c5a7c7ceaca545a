package constraint

import "errors"

// Configuration errors surfaced by the registry. These indicate a setup
// defect, not bad input: callers are expected to fail startup on any of them
// rather than continue with a partially configured registry.
var (
	// ErrDuplicateConstraint is returned when an identifier is registered twice.
	ErrDuplicateConstraint = errors.New("constraint already registered")

	// ErrUnknownConstraint is returned when a lookup names an unregistered identifier.
	ErrUnknownConstraint = errors.New("unknown constraint")

	// ErrUnknownImplication is returned when an implication references an
	// identifier that has not been registered yet.
	ErrUnknownImplication = errors.New("implication references unknown constraint")

	// ErrInvalidIdentifier is returned for identifiers that do not follow
	// the dotted notation.
	ErrInvalidIdentifier = errors.New("invalid constraint identifier")

	// ErrNilPredicate is returned when a constraint is registered without a predicate.
	ErrNilPredicate = errors.New("constraint predicate is nil")

	// ErrUnsoundImplication is returned by VerifyImplications when a sample
	// value satisfies a constraint but not one of its declared implications.
	ErrUnsoundImplication = errors.New("unsound implication")
)
