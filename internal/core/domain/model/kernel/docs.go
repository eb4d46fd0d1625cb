// Package kernel provides core domain primitives for the catering order tracking system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - TrackingNumber: A value object for customer-facing order identifiers
//   - Email: A value object for the customer credential used in order lookups
//   - GeoPoint: A value object representing a geographic position with an address label
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
