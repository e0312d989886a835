package order

import (
	"fmt"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCartLineIsNotConstructed indicates that a CartLine was not created
// through the NewCartLine factory method.
var ErrCartLineIsNotConstructed = errs.NewValueIsRequiredError("cart line must be created via NewCartLine")

// CartLine is one position in a cart: a menu item reference together with the
// name and unit price copied from the catalog at add-time. The copies are
// deliberate: a placed order is a frozen snapshot, so later catalog price
// changes never retroactively alter it.
type CartLine struct {
	itemID    int
	name      string
	unitPrice decimal.Decimal
	quantity  int

	guard kernel.ConstructorGuard
}

// NewCartLine creates a CartLine with validation.
// The item id must be positive, the name non-empty, the unit price
// non-negative and the quantity at least 1.
func NewCartLine(itemID int, name string, unitPrice decimal.Decimal, quantity int) (CartLine, error) {
	if itemID <= 0 {
		return CartLine{}, errs.NewValueIsInvalidErrorWithCause("cart line item id",
			fmt.Errorf("%d is not greater than 0", itemID))
	}

	if name == "" {
		return CartLine{}, errs.NewValueIsRequiredError("cart line name")
	}

	if unitPrice.IsNegative() {
		return CartLine{}, errs.NewValueIsInvalidErrorWithCause("cart line unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}

	if quantity < 1 {
		return CartLine{}, errs.NewValueIsInvalidErrorWithCause("cart line quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	return CartLine{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CartLine was created through NewCartLine.
func (l CartLine) Validate() error {
	return l.guard.Validate(ErrCartLineIsNotConstructed)
}

// ItemID returns the referenced menu item identifier.
func (l CartLine) ItemID() int {
	return l.itemID
}

// Name returns the item name as it was at add-time.
func (l CartLine) Name() string {
	return l.name
}

// UnitPrice returns the price per unit as it was at add-time.
func (l CartLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Quantity returns the number of units ordered.
func (l CartLine) Quantity() int {
	return l.quantity
}

// Subtotal returns quantity times unit price.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Total sums the subtotals of the given lines. The result does not depend on
// line order. This is the single place totals are computed; cart review,
// order detail and persistence reads all go through it.
func Total(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Cart collects the lines a guest intends to order. A cart holds at most one
// line per menu item; adding an item already in the cart replaces that line's
// quantity rather than duplicating it.
//
// Cart is a builder used within a single guest session; it is not safe for
// concurrent use and holds no session identity itself.
type Cart struct {
	lines []CartLine
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make([]CartLine, 0)}
}

// Add puts a line into the cart. If a line for the same item already exists
// it is replaced, so re-adding an item updates its quantity and captures the
// price current at that moment.
func (c *Cart) Add(line CartLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	for i, existing := range c.lines {
		if existing.itemID == line.itemID {
			c.lines[i] = line
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// Remove deletes the line for the given item id, if present.
func (c *Cart) Remove(itemID int) {
	for i, existing := range c.lines {
		if existing.itemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart's lines.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total returns the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	return Total(c.lines)
}
