package order

import (
	"fmt"

	"catertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a catering order.
// It implements a strictly linear state machine: every order walks the same path
// with no skips, no reversals and no branching.
//
// State transitions:
//
//	Placed ──> Preparing ──> InTransit ──> Delivered
//
// Status is a value object that validates state transitions, reports display
// progress and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when an order is created.
	Placed

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// InTransit indicates the order has left the kitchen and is on its way.
	// Only orders in this status carry a geographic position.
	InTransit

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// Display progress percentages for each lifecycle stage.
const (
	progressPlaced    = 25
	progressPreparing = 50
	progressInTransit = 75
	progressDelivered = 100
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Placed:    "placed",
		Preparing: "preparing",
		InTransit: "in-transit",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "placed",
		Preparing: "preparing",
		InTransit: "in-transit",
		Delivered: "delivered",
	}
}

// StatusFromString parses a status from its string representation.
// Any string that is not exactly one of the four lifecycle names maps to Unknown;
// parsing is total and never fails. Combined with Progress this gives the
// documented behavior of 0 percent for unrecognized values.
//
// Example:
//
//	order.StatusFromString("in-transit") // InTransit
//	order.StatusFromString("shipped")    // Unknown
func StatusFromString(s string) Status {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status
		}
	}
	return Unknown
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Placed, Preparing, InTransit, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns:
//   - "placed", "preparing", "in-transit", or "delivered" for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Progress returns the display progress percentage for the status.
//
// This is a pure, total function with no error cases:
//   - Placed    -> 25
//   - Preparing -> 50
//   - InTransit -> 75
//   - Delivered -> 100
//   - any other value (including Unknown) -> 0
//
// Example:
//
//	order.InTransit.Progress() // 75
//	order.Status(42).Progress() // 0
func (s Status) Progress() int {
	switch s {
	case Placed:
		return progressPlaced
	case Preparing:
		return progressPreparing
	case InTransit:
		return progressInTransit
	case Delivered:
		return progressDelivered
	case Unknown:
		return 0
	default:
		return 0
	}
}

// IsFinal reports whether the status is the terminal lifecycle state.
// Delivered orders accept no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// ValidateAdvance checks if the status allows moving to the next lifecycle stage
// without performing the transition.
//
// Valid statuses for advancement: Placed, Preparing, InTransit.
// Delivered is final and Unknown is not a lifecycle state.
func (s Status) ValidateAdvance() error {
	if s != Placed && s != Preparing && s != InTransit {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance from", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveLocation validates the consistency between order status and the
// presence of a geographic position.
//
// Business rules:
//   - Only InTransit orders carry a position
//   - Placed, Preparing and Delivered orders must not carry one
//
// Parameters:
//   - located: whether the order has a position attached
func (s Status) ValidateCanHaveLocation(located bool) error {
	if located && s != InTransit {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a location", s.String()),
		)
	}

	if !located && s == InTransit {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no location", s.String()),
		)
	}

	return nil
}

// Next transitions the status to the following lifecycle stage.
//
// Valid transitions:
//   - Placed    -> Preparing
//   - Preparing -> InTransit
//   - InTransit -> Delivered
//
// Invalid transitions:
//   - Delivered -> anything (final state)
//   - Unknown   -> anything (invalid initial state)
//
// Returns:
//   - (next stage, nil) on valid transition
//   - (0, error) if no transition is allowed from the current status
//
// This method is used by Order.Advance() to enforce the linear lifecycle.
func (s Status) Next() (Status, error) {
	if err := s.ValidateAdvance(); err != nil {
		return 0, err
	}

	return s + 1, nil
}

// Precedes reports whether s comes strictly before other in the lifecycle order.
// Used to verify that a tracking history is monotonically non-decreasing.
func (s Status) Precedes(other Status) bool {
	return s < other
}
