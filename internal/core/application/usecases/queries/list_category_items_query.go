package queries

import (
	"errors"
	"strings"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListCategoryItemsQueryIsNotConstructed = errors.New(
		"ListCategoryItemsQuery must be created via NewListCategoryItemsQuery constructor",
	)
)

// ListCategoryItemsQuery retrieves the menu items of one category for the
// browsing screen.
type ListCategoryItemsQuery struct { //nolint:recvcheck //using for validation
	category string

	guard guard.ConstructorGuard
}

// NewListCategoryItemsQuery creates a query for one category's items.
// Validates that the category name is non-empty after trimming.
func NewListCategoryItemsQuery(category string) (ListCategoryItemsQuery, error) {
	itemsQuery := ListCategoryItemsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemsQuery.setCategory(category); err != nil {
		return ListCategoryItemsQuery{}, err
	}

	return itemsQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListCategoryItemsQueryIsNotConstructed if validation fails.
func (q ListCategoryItemsQuery) Validate() error {
	return q.guard.Validate(ErrListCategoryItemsQueryIsNotConstructed)
}

// Category returns the requested category name.
func (q ListCategoryItemsQuery) Category() string {
	return q.category
}

func (q *ListCategoryItemsQuery) setCategory(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("category")
	}

	q.category = trimmed
	return nil
}

// ListCategoryItemsQueryResponse represents one menu item as the browsing
// screen shows it.
type ListCategoryItemsQueryResponse struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	Spicy    bool
	Veg      bool
	Popular  bool
	ImageURL string
}
