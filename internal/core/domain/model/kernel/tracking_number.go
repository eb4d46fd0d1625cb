package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"catertrack/internal/pkg/errs"
	"catertrack/internal/pkg/guard"
)

// trackingNumberDigits is the number of decimal digits following the prefix.
const trackingNumberDigits = 6

// trackingNumberPrefix identifies catering orders on all customer-facing surfaces.
const trackingNumberPrefix = "ORD"

// trackingNumberPattern matches the canonical form "ORD" followed by exactly six digits.
var trackingNumberPattern = regexp.MustCompile(`^ORD\d{6}$`)

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not created
// through one of the constructor functions. The zero value is invalid.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or TrackingNumberFromString")

// TrackingNumber is the customer-facing identifier of a catering order.
// It is an immutable value object in the form "ORD" followed by six decimal digits,
// e.g. "ORD123456". Matching against tracking numbers is exact and case-sensitive.
//
// The zero value of TrackingNumber is invalid and must be constructed using
// NewTrackingNumber or TrackingNumberFromString.
//
// Example usage:
//
//	number := kernel.NewTrackingNumber()
//
//	number, err := kernel.TrackingNumberFromString("ORD123456")
//	if err != nil {
//	    // handle error
//	}
type TrackingNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber generates a new random tracking number.
// The six-digit suffix is drawn uniformly, so collisions are possible and must be
// handled by the persistence layer's uniqueness constraint.
//
// Example:
//
//	number := kernel.NewTrackingNumber()
//	fmt.Println(number.String()) // e.g. "ORD428190"
func NewTrackingNumber() TrackingNumber {
	suffix := rand.IntN(1_000_000) //nolint:gosec // identifiers are not secrets
	return TrackingNumber{
		value: fmt.Sprintf("%s%0*d", trackingNumberPrefix, trackingNumberDigits, suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingNumberFromString parses a tracking number from its string representation.
// The input must match the canonical form exactly; no trimming or case folding is
// performed. Returns a validation error for any other input.
//
// Example:
//
//	number, err := kernel.TrackingNumberFromString("ORD123456")
//	if err != nil {
//	    return fmt.Errorf("invalid order number: %w", err)
//	}
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking number")
	}

	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not match %s followed by %d digits", s, trackingNumberPrefix, trackingNumberDigits),
		)
	}

	return TrackingNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the TrackingNumber was properly constructed using a constructor.
// The zero value is invalid and will fail this validation.
func (n TrackingNumber) Validate() error {
	return n.guard.Validate(ErrTrackingNumberIsNotConstructed)
}

// String returns the canonical string representation, e.g. "ORD123456".
// This method implements the fmt.Stringer interface.
func (n TrackingNumber) String() string {
	return n.value
}

// IsEqual compares two tracking numbers byte for byte.
// Matching is case-sensitive: "ord123456" never equals "ORD123456".
func (n TrackingNumber) IsEqual(other TrackingNumber) bool {
	return n.value == other.value
}
