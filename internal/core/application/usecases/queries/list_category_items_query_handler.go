package queries

import (
	"context"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/pkg/errs"
)

// ListCategoryItemsQueryHandler serves one category's items from the loaded
// catalog, preserving the menu file's ordering within the category.
type ListCategoryItemsQueryHandler struct {
	catalog menu.Catalog
}

// NewListCategoryItemsQueryHandler creates a handler for category item queries.
func NewListCategoryItemsQueryHandler(catalog menu.Catalog) ListCategoryItemsQueryHandler {
	return ListCategoryItemsQueryHandler{catalog: catalog}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the menu has no such category.
func (h ListCategoryItemsQueryHandler) Handle(
	_ context.Context,
	query ListCategoryItemsQuery,
) ([]ListCategoryItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := h.catalog.ItemsByCategory(query.Category())
	if len(items) == 0 {
		return nil, errs.NewObjectNotFoundError("category", query.Category())
	}

	responses := make([]ListCategoryItemsQueryResponse, 0, len(items))
	for _, item := range items {
		tags := item.Tags()
		responses = append(responses, ListCategoryItemsQueryResponse{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Spicy:    tags.Spicy,
			Veg:      tags.Veg,
			Popular:  tags.Popular,
			ImageURL: item.Image(),
		})
	}

	return responses, nil
}
