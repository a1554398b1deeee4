// Package order provides the Order aggregate root and its status state
// machine for the dispatch system.
//
// The package includes:
//   - Order: the aggregate root managing order identity, customer details,
//     items, scheduling and partner assignment
//   - Status: a state machine enforcing the order lifecycle
//   - Customer, Item: value objects validated at construction
//
// Key business rules:
//   - Orders require an order number, customer contact details, a service
//     area, at least one item, a scheduled time and a non-negative total
//   - Status follows pending -> assigned -> picked -> delivered, with a single
//     backward transition assigned -> pending used to unassign
//   - A partner reference is set exactly when the order becomes assigned and
//     cleared when it reverts to pending
package order
