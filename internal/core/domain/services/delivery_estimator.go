package services

import (
	"time"

	"catertrack/internal/core/domain/model/order"
)

// Lead times allotted to each remaining lifecycle stage when projecting a
// delivery time. Tuned for the standard metropolitan catering run.
const (
	// preparationLeadTime covers order intake and kitchen work.
	preparationLeadTime = 45 * time.Minute

	// transitLeadTime covers the drive from the kitchen to the customer.
	transitLeadTime = 45 * time.Minute
)

// DeliveryEstimator is a domain service that projects when an order will reach
// the customer based on its lifecycle state and tracking history.
//
// Business rules:
//   - At placement the projection is the placement time plus the full lead time
//   - As the order advances, the projection is recomputed from the latest
//     transition using only the lead time of the remaining stages
//   - A delivered order's projection is the moment it was actually delivered
//
// Example usage:
//
//	estimator := NewDeliveryEstimator()
//	eta := estimator.EstimateAtPlacement(time.Now().UTC())
//	order, _ := order.NewOrder(number, email, placedAt, items, eta)
type DeliveryEstimator struct{}

// NewDeliveryEstimator creates a new DeliveryEstimator instance.
func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// EstimateAtPlacement projects the delivery time for an order placed at the
// given moment, assuming the full preparation and transit lead times.
func (e DeliveryEstimator) EstimateAtPlacement(placedAt time.Time) time.Time {
	return placedAt.Add(preparationLeadTime + transitLeadTime)
}

// Reestimate recomputes the projected delivery time of an order from its latest
// lifecycle transition.
//
// Returns:
//   - the actual delivery moment for delivered orders
//   - the latest transition time plus the remaining stage lead times otherwise
//   - an error if the order was not properly constructed
func (e DeliveryEstimator) Reestimate(o *order.Order) (time.Time, error) {
	if err := o.Validate(); err != nil {
		return time.Time{}, err
	}

	history := o.History()
	latest := history[len(history)-1].OccurredAt()

	switch o.Status() {
	case order.Delivered:
		return latest, nil
	case order.InTransit:
		return latest.Add(transitLeadTime), nil
	case order.Preparing:
		return latest.Add(preparationLeadTime + transitLeadTime), nil
	case order.Placed, order.Unknown:
		return e.EstimateAtPlacement(o.PlacedAt()), nil
	default:
		return e.EstimateAtPlacement(o.PlacedAt()), nil
	}
}
