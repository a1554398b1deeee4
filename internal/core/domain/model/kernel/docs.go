// Package kernel provides core domain primitives shared across the dispatch
// domain model.
//
// The package currently contains UUID, a value object for unique identifiers
// with validation and comparison capabilities. Kernel primitives are immutable
// and thread-safe, and they enforce their own invariants so the aggregates
// built on top of them are always in a valid state.
package kernel
