package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// placedLocationLabel is recorded on the initial history entry of every order.
const placedLocationLabel = "Order received"

// Order represents a catering order in the system. It is the aggregate root that
// manages the order lifecycle from placement through preparation and transit to delivery.
//
// Order follows these invariants:
//   - Must have a valid tracking number and customer email
//   - Must have at least one line item
//   - Status transitions are strictly linear: Placed -> Preparing -> InTransit -> Delivered
//   - The tracking history is append-only and monotonically non-decreasing in lifecycle order
//   - The latest history entry's status always equals the current status
//   - A geographic position is attached if and only if the order is in transit
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// trackingNumber is the customer-facing identifier of the order
	trackingNumber kernel.TrackingNumber

	// customerEmail is the credential the order can be looked up with
	customerEmail kernel.Email

	// placedAt is the moment the order was placed
	placedAt time.Time

	// items are the ordered line-item descriptions (at least one)
	items []string

	// status is the current state in the order lifecycle
	status Status

	// location is the current position (nil unless the order is in transit)
	location *kernel.GeoPoint

	// estimatedDelivery is the projected delivery time
	estimatedDelivery time.Time

	// history is the append-only list of lifecycle transitions
	history []TrackingEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Placed status with a single history entry recording the placement.
//
// Parameters:
//   - trackingNumber: Customer-facing identifier (must be valid)
//   - customerEmail: Lookup credential (must be valid)
//   - placedAt: Placement timestamp (must be non-zero)
//   - items: Ordered line-item descriptions (at least one, each non-empty)
//   - estimatedDelivery: Projected delivery time (must be after placedAt)
//
// Example:
//
//	number := kernel.NewTrackingNumber()
//	email, _ := kernel.NewEmail("test@example.com")
//	placedAt := time.Now().UTC()
//	order, err := NewOrder(number, email, placedAt,
//	    []string{"Wedding buffet, 40 guests"}, placedAt.Add(90*time.Minute))
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	trackingNumber kernel.TrackingNumber,
	customerEmail kernel.Email,
	placedAt time.Time,
	items []string,
	estimatedDelivery time.Time,
) (*Order, error) {
	order := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setTrackingNumber(trackingNumber),
		order.setCustomerEmail(customerEmail),
		order.setPlacedAt(placedAt),
		order.setItems(items),
		order.setEstimatedDelivery(placedAt, estimatedDelivery),
	); err != nil {
		return nil, err
	}

	placedEvent, err := NewTrackingEvent(Placed, order.placedAt, placedLocationLabel)
	if err != nil {
		return nil, err
	}
	order.history = []TrackingEvent{placedEvent}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state, re-validating every
// aggregate invariant. It is used by repositories when loading orders and rejects
// any stored state that violates the lifecycle rules:
//   - history must be non-empty and monotonically non-decreasing in lifecycle order
//   - the latest history entry's status must equal the current status
//   - a location must be present if and only if the order is in transit
func RestoreOrder(
	trackingNumber kernel.TrackingNumber,
	customerEmail kernel.Email,
	placedAt time.Time,
	items []string,
	status Status,
	location *kernel.GeoPoint,
	estimatedDelivery time.Time,
	history []TrackingEvent,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setTrackingNumber(trackingNumber),
		order.setCustomerEmail(customerEmail),
		order.setPlacedAt(placedAt),
		order.setItems(items),
		order.setEstimatedDelivery(placedAt, estimatedDelivery),
	); err != nil {
		return nil, err
	}

	if err := order.setLocation(location); err != nil {
		return nil, err
	}

	if err := order.setHistory(history); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their tracking numbers.
// Orders are considered equal if they have the same tracking number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.trackingNumber.IsEqual(other.trackingNumber)
}

// TrackingNumber returns the customer-facing identifier of the order.
func (o *Order) TrackingNumber() kernel.TrackingNumber {
	return o.trackingNumber
}

// CustomerEmail returns the credential the order can be looked up with.
func (o *Order) CustomerEmail() kernel.Email {
	return o.customerEmail
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Items returns a copy of the ordered line-item descriptions.
func (o *Order) Items() []string {
	return slices.Clone(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Progress returns the display progress percentage for the current status.
func (o *Order) Progress() int {
	return o.status.Progress()
}

// Location returns the current geographic position of the order.
// Returns nil unless the order is in transit.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// EstimatedDelivery returns the projected delivery time.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// History returns a copy of the append-only tracking history, oldest first.
// The latest entry's status always equals the order's current status.
func (o *Order) History() []TrackingEvent {
	return slices.Clone(o.history)
}

// Advance moves the order to the next lifecycle stage and appends a history entry.
//
// This method enforces the following business rules:
//   - The transition follows the linear lifecycle (no skips, no reversals)
//   - Entering InTransit requires a valid waypoint, which becomes the order position
//   - Leaving InTransit clears the position (Delivered orders carry none)
//   - The history entry timestamp must not precede the previous entry
//
// Parameters:
//   - at: Transition timestamp
//   - locationLabel: Human-readable label recorded in the history
//   - waypoint: Current position, required when entering InTransit, ignored otherwise
//
// Example:
//
//	waypoint, _ := kernel.NewRandomWaypoint()
//	if err := order.Advance(time.Now().UTC(), "En route", &waypoint); err != nil {
//	    // Order was already delivered, or the waypoint is missing/invalid
//	}
func (o *Order) Advance(at time.Time, locationLabel string, waypoint *kernel.GeoPoint) error {
	newStatus, err := o.status.Next()
	if err != nil {
		return err
	}

	if last := o.history[len(o.history)-1]; at.Before(last.OccurredAt()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"at",
			fmt.Errorf("transition time %s precedes last history entry %s", at, last.OccurredAt()),
		)
	}

	event, err := NewTrackingEvent(newStatus, at, locationLabel)
	if err != nil {
		return err
	}

	if newStatus == InTransit {
		if waypoint == nil {
			return errs.NewValueIsRequiredError("waypoint")
		}
		if err = waypoint.Validate(); err != nil {
			return err
		}
		position := *waypoint
		o.location = &position
	} else {
		o.location = nil
	}

	o.status = newStatus
	o.history = append(o.history, event)
	return nil
}

// UpdateEstimatedDelivery replaces the projected delivery time.
// Used when the projection is recomputed as the order advances.
// The new projection must be non-zero and after the placement time.
func (o *Order) UpdateEstimatedDelivery(estimatedDelivery time.Time) error {
	return o.setEstimatedDelivery(o.placedAt, estimatedDelivery)
}

// setTrackingNumber validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	o.trackingNumber = trackingNumber
	return nil
}

// setCustomerEmail validates and sets the order's lookup credential.
// This is a private method used only during construction.
func (o *Order) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}
	o.customerEmail = customerEmail
	return nil
}

// setPlacedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}

// setItems validates and sets the line items. At least one non-empty
// description is required. This is a private method used only during construction.
func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if item == "" {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d is empty", i))
		}
	}

	o.items = slices.Clone(items)
	return nil
}

// setEstimatedDelivery validates and sets the projected delivery time.
// This is a private method used only during construction.
func (o *Order) setEstimatedDelivery(placedAt time.Time, estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}

	if !estimatedDelivery.After(placedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedDelivery",
			fmt.Errorf("%s is not after placement time %s", estimatedDelivery, placedAt),
		)
	}

	o.estimatedDelivery = estimatedDelivery
	return nil
}

// setLocation validates the status/position consistency rule and sets the position.
// This is a private method used only during restoration.
func (o *Order) setLocation(location *kernel.GeoPoint) error {
	if err := o.status.ValidateCanHaveLocation(location != nil); err != nil {
		return err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	o.location = location
	return nil
}

// setHistory validates and sets the tracking history.
// The history must be non-empty, every event valid, statuses monotonically
// non-decreasing, timestamps non-decreasing, and the latest entry must match
// the current status. This is a private method used only during restoration.
func (o *Order) setHistory(history []TrackingEvent) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("history")
	}

	for i, event := range history {
		if err := event.Validate(); err != nil {
			return err
		}

		if i == 0 {
			continue
		}

		prev := history[i-1]
		if event.Status().Precedes(prev.Status()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"history",
				fmt.Errorf("entry %d regresses from %s to %s", i, prev.Status(), event.Status()),
			)
		}

		if event.OccurredAt().Before(prev.OccurredAt()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"history",
				fmt.Errorf("entry %d timestamp precedes entry %d", i, i-1),
			)
		}
	}

	if last := history[len(history)-1]; last.Status() != o.status {
		return errs.NewValueIsInvalidErrorWithCause(
			"history",
			fmt.Errorf("latest entry status %s does not match order status %s", last.Status(), o.status),
		)
	}

	o.history = slices.Clone(history)
	return nil
}
