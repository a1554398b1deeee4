// Package partner provides the DeliveryPartner aggregate root for the
// dispatch system.
//
// The package includes:
//   - Partner: the aggregate root managing partner identity, operational
//     status, area coverage and current load
//   - Status: the operational availability flag (active or inactive),
//     independent of load
//   - Shift: a time-of-day working window value object
//   - Metrics: per-partner delivery counters and rating
//
// Key business rules:
//   - currentLoad always stays within [0, MaxCapacity]
//   - load moves in matched pairs: +1 on assignment, -1 on unassignment or
//     delivery completion, with the decrement clamped at zero
//   - a partner is eligible for an order when active, below capacity and
//     covering the order's area
package partner
