// Package queries contains read-only operations for the tracker and dashboards.
// Implements the Query side of the CQRS architecture: handlers read directly
// from the database, bypassing the aggregate repositories.
package queries

import (
	"errors"
	"time"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"
	"catertrack/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery looks up a single order by its credentials: the tracking
// number and the owning customer's email. Both must match exactly,
// case-sensitively; any mismatch yields "not found". No partial credential
// is ever accepted.
//
// Example:
//
//	number, _ := kernel.TrackingNumberFromString("ORD123456")
//	email, _ := kernel.NewEmail("test@example.com")
//	query, _ := NewTrackOrderQuery(number, email)
//
//	record, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Credentials do not match any order
//	}
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	customerEmail  kernel.Email

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to look up an order by its credentials.
// Both the tracking number and the email must be valid value objects.
func NewTrackOrderQuery(trackingNumber kernel.TrackingNumber, customerEmail kernel.Email) (TrackOrderQuery, error) {
	query := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setTrackingNumber(trackingNumber),
		query.setCustomerEmail(customerEmail),
	); err != nil {
		return TrackOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingNumber returns the looked-up order identifier.
func (q TrackOrderQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// CustomerEmail returns the credential the lookup must match.
func (q TrackOrderQuery) CustomerEmail() kernel.Email {
	return q.customerEmail
}

func (q *TrackOrderQuery) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	q.trackingNumber = trackingNumber
	return nil
}

func (q *TrackOrderQuery) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}

	q.customerEmail = customerEmail
	return nil
}

// TrackOrderHistoryEvent is a single tracking history entry in a lookup response.
type TrackOrderHistoryEvent struct {
	Status        order.Status
	OccurredAt    time.Time
	LocationLabel string
}

// TrackOrderQueryResponse is the complete order record rendered by the tracker:
// current status with its display progress, the append-only history and, for
// orders in transit, the current position.
type TrackOrderQueryResponse struct {
	TrackingNumber    kernel.TrackingNumber
	CustomerEmail     kernel.Email
	PlacedAt          time.Time
	Items             []string
	Status            order.Status
	Progress          int
	Location          *kernel.GeoPoint
	EstimatedDelivery time.Time
	History           []TrackOrderHistoryEvent
}
