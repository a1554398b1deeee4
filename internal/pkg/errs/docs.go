// Package errs provides standardized error types for the dispatch application.
//
// Each error type follows the same pattern: a sentinel error variable for
// classification with errors.Is, a struct carrying the error details, and
// constructor functions with and without an underlying cause. The Unwrap
// method on every type returns the matching sentinel, so callers never need
// to type-assert to classify an error.
//
// The available types map onto the error kinds surfaced by the core:
//   - ObjectNotFoundError: a referenced order or partner does not exist
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation (bad status, bad transition)
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
package errs
