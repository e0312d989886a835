package menu

import (
	"fmt"
	"strings"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMenuItemIsNotConstructed indicates that a MenuItem was not created through
// the NewMenuItem factory method.
var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError("menu item must be created via NewMenuItem")

// Tags carries the guest-facing attributes of a menu item. Tags only affect
// presentation, never pricing or order flow.
type Tags struct {
	Spicy   bool
	Veg     bool
	Popular bool
}

// MenuItem is an immutable record describing one orderable dish.
//
// MenuItem follows these invariants:
//   - Must have a positive unique identifier
//   - Must have a non-empty name and category
//   - Price must not be negative
//   - Can only be created through NewMenuItem
//
// Items are owned by the Catalog and are never mutated by the order flow;
// orders copy name and price at add-time so later catalog changes do not
// retroactively alter placed orders.
type MenuItem struct {
	id       int
	name     string
	price    decimal.Decimal
	category string
	tags     Tags
	image    string

	guard kernel.ConstructorGuard
}

// NewMenuItem creates a MenuItem with validation. Name and category are
// trimmed; image is an optional reference to a picture of the dish.
func NewMenuItem(id int, name string, price decimal.Decimal, category string, tags Tags, image string) (MenuItem, error) {
	if id <= 0 {
		return MenuItem{}, errs.NewValueIsInvalidErrorWithCause("menu item id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return MenuItem{}, errs.NewValueIsRequiredError("menu item name")
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return MenuItem{}, errs.NewValueIsRequiredError("menu item category")
	}

	if price.IsNegative() {
		return MenuItem{}, errs.NewValueIsInvalidErrorWithCause("menu item price",
			fmt.Errorf("%s is negative", price))
	}

	return MenuItem{
		id:       id,
		name:     name,
		price:    price,
		category: category,
		tags:     tags,
		image:    image,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (i MenuItem) Validate() error {
	return i.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i MenuItem) ID() int {
	return i.id
}

// Name returns the guest-facing name of the item.
func (i MenuItem) Name() string {
	return i.name
}

// Price returns the current catalog price of the item.
func (i MenuItem) Price() decimal.Decimal {
	return i.price
}

// Category returns the menu category the item is listed under.
func (i MenuItem) Category() string {
	return i.category
}

// Tags returns the presentation attributes of the item.
func (i MenuItem) Tags() Tags {
	return i.tags
}

// Image returns an optional image reference for the item.
// An empty string means no image is available.
func (i MenuItem) Image() string {
	return i.image
}

// IsEqual compares two menu items by their unique identifiers.
func (i MenuItem) IsEqual(other MenuItem) bool {
	return i.id == other.id
}
