// Package assignment provides the append-only ledger entry recorded for
// every assignment attempt, successful or failed.
//
// Entries are purely observational: they never own or mutate order or
// partner state and are never updated or deleted once written. The ledger is
// the source for assignment metrics and audit.
package assignment
