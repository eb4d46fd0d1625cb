package queries

import (
	"errors"
	"time"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"
	"catertrack/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves all orders that have not yet been delivered.
// Returns orders in "placed", "preparing" or "in-transit" status for operations
// visibility and for the progression job's workload overview.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	fmt.Printf("Found %d active orders\n", len(orders))
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve undelivered orders.
// This is a parameterless query that fetches all non-delivered orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents an undelivered order in the overview.
type GetActiveOrdersQueryResponse struct {
	TrackingNumber    kernel.TrackingNumber
	Status            order.Status
	Progress          int
	PlacedAt          time.Time
	EstimatedDelivery time.Time
}
