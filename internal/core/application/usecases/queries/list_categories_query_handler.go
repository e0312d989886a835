package queries

import (
	"context"

	"tableside/internal/core/domain/model/menu"
)

// ListCategoriesQueryHandler serves category names from the loaded catalog.
// The catalog is immutable for the lifetime of the process, so the handler
// answers from memory without touching the database.
type ListCategoriesQueryHandler struct {
	catalog menu.Catalog
}

// NewListCategoriesQueryHandler creates a handler for category queries.
func NewListCategoriesQueryHandler(catalog menu.Catalog) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{catalog: catalog}
}

// Handle executes the query and returns category names in sorted order.
func (h ListCategoriesQueryHandler) Handle(_ context.Context, query ListCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.catalog.Categories(), nil
}
