// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentService: a domain service that selects the best partner for
//     an order and executes the assignment workflow
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
