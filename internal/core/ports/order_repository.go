// Package ports defines repository interfaces for the catering order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their complete tracking history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// New tracking history entries are appended; existing entries are never
	// modified or removed. The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByCredentials retrieves an order by its tracking number and the owning
	// customer's email. Both values must match exactly, byte for byte; there is
	// no fuzzy matching and no partial credential is accepted. Returns an
	// ObjectNotFoundError when either value mismatches.
	GetByCredentials(ctx context.Context, number kernel.TrackingNumber, email kernel.Email) (*order.Order, error)

	// GetAllUndelivered retrieves all orders that have not yet reached the
	// Delivered status. Used by the progression job to advance active orders.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)
}
