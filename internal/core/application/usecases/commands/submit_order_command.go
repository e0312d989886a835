package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a guest's request to place their cart as an
// order for a table. The cart lines carry the name and price captured at
// add-time; the command freezes them for persistence.
//
// Example:
//
//	table, _ := kernel.NewTableNumber("5")
//	cmd, err := NewSubmitOrderCommand(table, cart.Lines())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %d placed, total %s", result.OrderID, result.Total)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	table kernel.TableNumber
	lines []order.CartLine

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to place a new order.
// Validates that the table is constructed and the cart is not empty.
// Returns an error if any validation fails; no state is mutated on failure.
func NewSubmitOrderCommand(table kernel.TableNumber, lines []order.CartLine) (SubmitOrderCommand, error) {
	orderCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setTable(table),
		orderCommand.setLines(lines),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Table returns the table the order is placed for.
func (c SubmitOrderCommand) Table() kernel.TableNumber {
	return c.table
}

// Lines returns the cart snapshot to be persisted.
func (c SubmitOrderCommand) Lines() []order.CartLine {
	lines := make([]order.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *SubmitOrderCommand) setTable(table kernel.TableNumber) error {
	if err := table.Validate(); err != nil {
		return err
	}

	c.table = table
	return nil
}

func (c *SubmitOrderCommand) setLines(lines []order.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]order.CartLine, len(lines))
	copy(c.lines, lines)
	return nil
}
