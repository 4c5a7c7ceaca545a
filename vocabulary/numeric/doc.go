// Package numeric provides the built-in constraint vocabulary for numeric
// literal values.
//
// Import this package to auto-register the constraints into the default
// registry:
//
//	import _ "github.com/c360studio/semlit/vocabulary/numeric"
//
// Implication chains:
//
//	number.positive    -> number.nonnegative, number.nonzero
//	number.nonnegative -> number.value
//	number.nonzero     -> number.value
//	number.integer     -> number.finite
//	number.finite      -> number.value
//
// All predicates are total: handed a non-numeric value they return false
// rather than panic, so number.value doubles as the base-kind narrowing
// check for numeric concepts.
package numeric
