package commands

import (
	"errors"
	"slices"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/pkg/errs"
	"catertrack/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new catering order.
// Encapsulates the tracking number assigned to the order, the customer
// credential and the ordered line items.
//
// Example:
//
//	number := kernel.NewTrackingNumber()
//	email, _ := kernel.NewEmail("test@example.com")
//	cmd, err := NewPlaceOrderCommand(number, email, []string{"Wedding buffet, 40 guests"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	customerEmail  kernel.Email
	items          []string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new catering order.
// Validates that the tracking number and email are valid and that at least one
// non-empty line item is provided. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	trackingNumber kernel.TrackingNumber,
	customerEmail kernel.Email,
	items []string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingNumber(trackingNumber),
		command.setCustomerEmail(customerEmail),
		command.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// TrackingNumber returns the identifier assigned to the order.
func (c PlaceOrderCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// CustomerEmail returns the customer credential for future lookups.
func (c PlaceOrderCommand) CustomerEmail() kernel.Email {
	return c.customerEmail
}

// Items returns the ordered line-item descriptions.
func (c PlaceOrderCommand) Items() []string {
	return slices.Clone(c.items)
}

func (c *PlaceOrderCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *PlaceOrderCommand) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *PlaceOrderCommand) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item == "" {
			return errs.NewValueIsInvalidError("items")
		}
	}

	c.items = slices.Clone(items)
	return nil
}
