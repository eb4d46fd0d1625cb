// Package order provides domain entities and business logic for catering order
// tracking. It implements the Order aggregate root with lifecycle management,
// progress reporting and an append-only tracking history.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Status: A state machine that enforces the linear order lifecycle
//   - TrackingEvent: An immutable history entry recorded on every transition
//
// Key business rules:
//   - Order status follows a strictly linear workflow:
//     Placed -> Preparing -> InTransit -> Delivered (no skips, no reversals)
//   - History is append-only and its latest entry always matches the current status
//   - A geographic position is attached only while the order is in transit
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
