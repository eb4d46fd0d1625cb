package kernel

import (
	"fmt"
	"strings"

	"catertrack/internal/pkg/errs"
	"catertrack/internal/pkg/guard"
)

// ErrEmailIsNotConstructed indicates that an Email was not created through NewEmail.
// The zero value is invalid.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email is the customer credential used to look up orders.
// It is an immutable value object stored and compared verbatim: no trimming,
// no case folding and no normalization of any kind. Tracking an order requires
// the exact byte sequence the order was placed with.
//
// The zero value of Email is invalid and must be constructed using NewEmail.
type Email struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates an Email from its string representation.
// The value must be non-empty and contain a local part and a domain separated
// by a single "@". Beyond that, no syntax checking is performed; the address is
// a lookup credential, not a mailbox to deliver to.
//
// Example:
//
//	email, err := kernel.NewEmail("test@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid customer email: %w", err)
//	}
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	local, domain, found := strings.Cut(value, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not in local@domain form", value),
		)
	}

	return Email{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Email was properly constructed using NewEmail.
// The zero value is invalid and will fail this validation.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// String returns the address exactly as it was provided to NewEmail.
// This method implements the fmt.Stringer interface.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two emails byte for byte.
// Comparison is case-sensitive: "Test@example.com" never equals "test@example.com".
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}
