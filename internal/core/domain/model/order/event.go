package order

import (
	"errors"
	"time"

	"catertrack/internal/pkg/errs"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
// created through the NewTrackingEvent factory.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent constructor")

// TrackingEvent is a single immutable entry in an order's tracking history.
// Events are recorded append-only as the order advances through its lifecycle;
// each one captures the status entered, the moment of the transition and a
// human-readable location label ("Kitchen", "En route", ...).
type TrackingEvent struct {
	status        Status
	occurredAt    time.Time
	locationLabel string
	isConstructed bool
}

// NewTrackingEvent creates a validated history entry.
//
// Parameters:
//   - status: the lifecycle status entered (must be a valid status)
//   - occurredAt: the transition timestamp (must be non-zero)
//   - locationLabel: human-readable label of where the transition happened (must be non-empty)
func NewTrackingEvent(status Status, occurredAt time.Time, locationLabel string) (TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}

	if occurredAt.IsZero() {
		return TrackingEvent{}, errs.NewValueIsRequiredError("occurredAt")
	}

	if locationLabel == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("locationLabel")
	}

	return TrackingEvent{
		status:        status,
		occurredAt:    occurredAt,
		locationLabel: locationLabel,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created through NewTrackingEvent.
func (e TrackingEvent) Validate() error {
	if !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// Status returns the lifecycle status recorded by the event.
func (e TrackingEvent) Status() Status {
	return e.status
}

// OccurredAt returns the transition timestamp.
func (e TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// LocationLabel returns the human-readable label of the transition location.
func (e TrackingEvent) LocationLabel() string {
	return e.locationLabel
}
