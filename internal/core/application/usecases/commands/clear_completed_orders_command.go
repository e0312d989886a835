package commands

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrClearCompletedOrdersCommandIsNotConstructed = errors.New(
		"ClearCompletedOrdersCommand must be created via NewClearCompletedOrdersCommand constructor",
	)
)

// ClearCompletedOrdersCommand represents a staff request to remove every
// order in the terminal stage. Bulk clearing is the only way orders leave
// the system.
type ClearCompletedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewClearCompletedOrdersCommand creates a command to clear completed orders.
// This is a parameterless command; which stage is terminal comes from the
// configured sequence at handling time.
func NewClearCompletedOrdersCommand() ClearCompletedOrdersCommand {
	return ClearCompletedOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearCompletedOrdersCommandIsNotConstructed if validation fails.
func (c ClearCompletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearCompletedOrdersCommandIsNotConstructed)
}
