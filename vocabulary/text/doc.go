// Package text provides the built-in constraint vocabulary for string
// literal values.
//
// Import this package to auto-register the constraints into the default
// registry:
//
//	import _ "github.com/c360studio/semlit/vocabulary/text"
package text
