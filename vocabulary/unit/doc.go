// Package unit provides parameterized unit tags: constraints like
// "unit<celsius>" that carry a unit of measure in their identity.
//
// A unit tag has no runtime check; its predicate accepts every value. The
// tag exists so a concept's identity records which unit its values are
// denominated in, and so two concepts differing only in unit do not share
// an evaluation plan. Unit tags are registered as an exclusive family: a
// concept carrying two different unit tags is rejected at resolution time.
//
// Unlike the numeric and text vocabularies, unit tags are application
// specific, so nothing is registered at import time; applications register
// the units they use during initialization:
//
//	unit.MustRegister(reg, "celsius", "year", "meter")
package unit
