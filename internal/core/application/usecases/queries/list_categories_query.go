package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
)

// ListCategoriesQuery retrieves the menu's category names for the browsing
// entry screen.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a parameterless query for menu categories.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListCategoriesQueryIsNotConstructed if validation fails.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}
