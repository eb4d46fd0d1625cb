package queries

import (
	"context"
	"time"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves undelivered orders from the database.
// Filters out delivered orders to provide active workload visibility.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered orders.
// Returns orders in "placed", "preparing" or "in-transit" status.
// Results are sorted by placement time for consistent output.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			status,
			placed_at,
			estimated_delivery
		FROM orders
		WHERE status != ?
		ORDER BY placed_at, tracking_number
	`, order.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawNumber         string
			statusValue       int
			placedAt          time.Time
			estimatedDelivery time.Time
		)

		err = rows.Scan(
			&rawNumber,
			&statusValue,
			&placedAt,
			&estimatedDelivery,
		)
		if err != nil {
			return nil, err
		}

		number, numberErr := kernel.TrackingNumberFromString(rawNumber)
		if numberErr != nil {
			return nil, numberErr
		}

		status := order.Status(statusValue)
		orders = append(orders, GetActiveOrdersQueryResponse{
			TrackingNumber:    number,
			Status:            status,
			Progress:          status.Progress(),
			PlacedAt:          placedAt,
			EstimatedDelivery: estimatedDelivery,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
