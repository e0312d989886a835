package menu

import (
	"errors"
	"fmt"
	"sort"

	"tableside/internal/pkg/errs"
)

// ErrCatalogUnavailable indicates that the menu source is missing or malformed.
// Callers must surface this as a blocking error: the ordering flow cannot
// proceed without a catalog, and presenting an empty menu instead would hide
// the failure from staff.
var ErrCatalogUnavailable = errors.New("menu catalog is unavailable")

// Catalog is a read-only lookup over the loaded menu items.
//
// Catalog follows these invariants:
//   - Contains at least one item
//   - Item identifiers are unique
//   - Item order is preserved as loaded from the menu source
//
// A Catalog is rebuilt on every refresh of the menu source and never mutated
// in place, making it safe to share across concurrent sessions.
type Catalog struct {
	items []MenuItem
	byID  map[int]MenuItem
}

// NewCatalog builds a Catalog from the loaded items. An empty item list is
// rejected: an empty menu means the source is broken, not that the restaurant
// sells nothing. Duplicate item identifiers are rejected as well.
func NewCatalog(items []MenuItem) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, fmt.Errorf("%w: menu contains no items", ErrCatalogUnavailable)
	}

	byID := make(map[int]MenuItem, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, exists := byID[item.ID()]; exists {
			return Catalog{}, errs.NewValueIsInvalidErrorWithCause("menu item id",
				fmt.Errorf("duplicate item id %d", item.ID()))
		}
		byID[item.ID()] = item
	}

	copied := make([]MenuItem, len(items))
	copy(copied, items)

	return Catalog{items: copied, byID: byID}, nil
}

// Items returns all items in their original load order.
func (c Catalog) Items() []MenuItem {
	items := make([]MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// Categories returns the distinct category names in alphabetical order.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, item := range c.items {
		if _, ok := seen[item.Category()]; ok {
			continue
		}
		seen[item.Category()] = struct{}{}
		categories = append(categories, item.Category())
	}

	sort.Strings(categories)
	return categories
}

// ItemsByCategory returns the items listed under the given category,
// preserving their original relative order. An unknown category yields an
// empty slice.
func (c Catalog) ItemsByCategory(category string) []MenuItem {
	items := make([]MenuItem, 0)
	for _, item := range c.items {
		if item.Category() == category {
			items = append(items, item)
		}
	}
	return items
}

// Item retrieves a single item by its identifier.
// Returns an ObjectNotFoundError for unknown identifiers.
func (c Catalog) Item(id int) (MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return MenuItem{}, errs.NewObjectNotFoundError("menu item", fmt.Sprintf("%d", id))
	}
	return item, nil
}

// Size returns the number of items in the catalog.
func (c Catalog) Size() int {
	return len(c.items)
}
