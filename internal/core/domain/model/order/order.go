package order

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidTransition is returned when a status change would move an order
	// backward in the stage sequence. The order's prior status is preserved.
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

// Order represents a placed table order. It is the aggregate root covering the
// order's identity, its frozen cart snapshot and its fulfillment status.
//
// Order follows these invariants:
//   - Must have a positive unique identifier, assigned by the order store
//   - Must belong to a valid table
//   - Must contain at least one cart line; empty orders are never persisted
//   - Status only moves forward along the configured stage sequence
//   - Can only be created through NewOrder or RestoreOrder
//
// After creation an order is mutated only through ChangeStatus, called by
// staff sessions. Guest sessions read orders but never modify them.
type Order struct {
	// id is the unique identifier assigned from the store's id sequence
	id int64

	// table identifies where the guests are seated
	table kernel.TableNumber

	// lines is the frozen cart snapshot; never modified after creation
	lines []CartLine

	// status is the current stage in the fulfillment workflow
	status Status

	// createdAt is the placement timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an Order from a submitted cart. This is the only way to
// create a brand-new order, ensuring every order starts in the first stage of
// the configured sequence with a validated table and a non-empty cart.
//
// Parameters:
//   - id: identifier issued by the order store (must be positive)
//   - table: validated table number
//   - lines: cart snapshot (must be non-empty, every line constructed)
//   - stages: the configured stage sequence; determines the initial status
//   - createdAt: placement timestamp (must not be zero)
//
// Returns the created order, or a validation error if any input is invalid.
func NewOrder(id int64, table kernel.TableNumber, lines []CartLine, stages StageSequence, createdAt time.Time) (*Order, error) {
	if err := stages.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        stages.First(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTable(table),
		order.setLines(lines),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any non-empty status, since stored orders may carry stage labels
// from an earlier configuration.
func RestoreOrder(id int64, table kernel.TableNumber, lines []CartLine, status Status, createdAt time.Time) (*Order, error) {
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTable(table),
		order.setLines(lines),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call this when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Table returns the table the order belongs to.
func (o *Order) Table() kernel.TableNumber {
	return o.table
}

// Lines returns a copy of the order's cart snapshot.
func (o *Order) Lines() []CartLine {
	lines := make([]CartLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of all line subtotals. The result is computed from
// the frozen snapshot, so it is stable across re-reads and line reordering.
func (o *Order) Total() decimal.Decimal {
	return Total(o.lines)
}

// ChangeStatus advances the order to the next status.
//
// The transition must be allowed by the given stage sequence: forward moves
// (including skips) succeed, repeating the current status is an idempotent
// no-op, and backward moves fail with ErrInvalidTransition. On failure the
// order keeps its prior status.
func (o *Order) ChangeStatus(next Status, stages StageSequence) error {
	if err := stages.Validate(); err != nil {
		return err
	}

	allowed, err := stages.TransitionAllowed(o.status, next)
	if err != nil {
		return err
	}

	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, next)
	}

	o.status = next
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setTable validates and sets the order's table.
func (o *Order) setTable(table kernel.TableNumber) error {
	if err := table.Validate(); err != nil {
		return err
	}
	o.table = table
	return nil
}

// setLines validates and copies the cart snapshot.
// An order with no lines must never exist.
func (o *Order) setLines(lines []CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]CartLine, len(lines))
	copy(o.lines, lines)
	return nil
}

// setCreatedAt validates and sets the placement timestamp.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("order created at")
	}
	o.createdAt = createdAt
	return nil
}
