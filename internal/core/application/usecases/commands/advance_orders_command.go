package commands

import (
	"errors"

	"catertrack/internal/pkg/guard"
)

var (
	ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
		"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
	)
)

// AdvanceOrdersCommand triggers progression of all undelivered orders to their
// next lifecycle stage. This batch operation appends tracking history, attaches
// a transit position when orders leave the kitchen and marks arrivals as delivered.
//
// Example:
//
//	cmd := NewAdvanceOrdersCommand()
//	handler := NewAdvanceOrdersCommandHandler(uowFactory)
//
//	// Run periodically to simulate the kitchen and the delivery run
//	ticker := time.NewTicker(15 * time.Second)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Order progression failed: %v", err)
//	    }
//	}
type AdvanceOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates a command to trigger order progression.
// This is a parameterless command that processes all undelivered orders.
func NewAdvanceOrdersCommand() AdvanceOrdersCommand {
	command := AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrdersCommandIsNotConstructed if validation fails.
func (c *AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}
