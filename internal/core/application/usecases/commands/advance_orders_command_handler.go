package commands

import (
	"context"
	"time"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"
	"catertrack/internal/core/domain/services"
)

// Location labels recorded in the tracking history for each lifecycle stage.
const (
	preparingLocationLabel = "Kitchen"
	deliveredLocationLabel = "Customer address"
)

// AdvanceOrdersCommandHandler orchestrates the progression of all active orders.
// Moves every undelivered order one step along the lifecycle, refreshes its
// projected delivery time and persists the appended history.
//
// Example:
//
//	handler := NewAdvanceOrdersCommandHandler(uowFactory)
//	cmd := NewAdvanceOrdersCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order progression failed: %w", err)
//	}
//
//	// This would typically be called periodically by a scheduler
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.DeliveryEstimator
}

// NewAdvanceOrdersCommandHandler creates a handler for order progression operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceOrdersCommandHandler(uowFactory OrderUoWFactory) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
		estimator:  services.NewDeliveryEstimator(),
	}
}

// Handle processes the order progression command.
// Retrieves all undelivered orders and advances each one stage: placed orders
// enter preparation, preparing orders leave for transit with a route waypoint,
// and in-transit orders are delivered. All updates occur within a single transaction.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllUndelivered(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, activeOrder := range orders {
		if err = h.advanceOrder(activeOrder, now); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, activeOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// advanceOrder moves a single order one lifecycle stage forward and refreshes
// its projected delivery time. Orders entering transit receive a route waypoint;
// its address becomes the history entry's location label.
func (h *AdvanceOrdersCommandHandler) advanceOrder(activeOrder *order.Order, now time.Time) error {
	var (
		label    string
		waypoint *kernel.GeoPoint
	)

	switch activeOrder.Status() {
	case order.Placed:
		label = preparingLocationLabel
	case order.Preparing:
		point, err := kernel.NewRandomWaypoint()
		if err != nil {
			return err
		}
		waypoint = &point
		label = point.Address()
	case order.InTransit:
		label = deliveredLocationLabel
	case order.Delivered, order.Unknown:
		// GetAllUndelivered never returns these; Advance below rejects them.
	}

	if err := activeOrder.Advance(now, label, waypoint); err != nil {
		return err
	}

	eta, err := h.estimator.Reestimate(activeOrder)
	if err != nil {
		return err
	}

	return activeOrder.UpdateEstimatedDelivery(eta)
}
