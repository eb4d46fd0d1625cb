package commands

import (
	"context"
	"time"

	"catertrack/internal/core/domain/model/order"
	"catertrack/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Creates new orders in "placed" status with a projected delivery time and an
// initial tracking history entry.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(number, email, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now placed and visible to the tracker
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.DeliveryEstimator
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  services.NewDeliveryEstimator(),
	}
}

// Handle processes the order placement command.
// Projects a delivery time from the placement moment and creates the order in
// "placed" status. Uses a transaction to ensure the order is properly persisted
// or rolled back on error.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	placedAt := time.Now().UTC()

	newOrder, err := order.NewOrder(
		cmd.TrackingNumber(),
		cmd.CustomerEmail(),
		placedAt,
		cmd.Items(),
		h.estimator.EstimateAtPlacement(placedAt),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
