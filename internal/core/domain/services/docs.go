// Package services provides domain services that implement business logic which
// doesn't naturally belong to a single aggregate root in the catering order
// tracking system.
//
// The package includes:
//   - DeliveryEstimator: A domain service projecting delivery times from lifecycle state
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
