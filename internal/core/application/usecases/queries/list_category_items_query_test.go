package queries_test

import (
	"testing"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) menu.Catalog {
	t.Helper()

	starters := menu.Tags{Spicy: true, Veg: true}
	items := []menu.MenuItem{}
	for _, spec := range []struct {
		id       int
		name     string
		price    int64
		category string
		tags     menu.Tags
	}{
		{101, "Paneer Tikka", 180, "Starters", starters},
		{102, "Chicken 65", 200, "Starters", menu.Tags{Spicy: true, Popular: true}},
		{201, "Butter Chicken", 280, "Mains", menu.Tags{Popular: true}},
	} {
		item, err := menu.NewMenuItem(spec.id, spec.name, decimal.NewFromInt(spec.price), spec.category, spec.tags, "")
		require.NoError(t, err)
		items = append(items, item)
	}

	catalog, err := menu.NewCatalog(items)
	require.NoError(t, err)
	return catalog
}

func TestNewListCategoryItemsQuery(t *testing.T) {
	t.Run("should create query from valid category", func(t *testing.T) {
		query, err := queries.NewListCategoryItemsQuery("Starters")

		require.NoError(t, err)
		assert.Equal(t, "Starters", query.Category())
		require.NoError(t, query.Validate())
	})

	t.Run("should trim category name", func(t *testing.T) {
		query, err := queries.NewListCategoryItemsQuery("  Mains  ")

		require.NoError(t, err)
		assert.Equal(t, "Mains", query.Category())
	})

	t.Run("should reject blank category", func(t *testing.T) {
		_, err := queries.NewListCategoryItemsQuery("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.ListCategoryItemsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrListCategoryItemsQueryIsNotConstructed, err)
	})
}

func TestListCategoriesQueryHandler_Handle(t *testing.T) {
	t.Run("should return sorted categories", func(t *testing.T) {
		handler := queries.NewListCategoriesQueryHandler(testCatalog(t))

		categories, err := handler.Handle(t.Context(), queries.NewListCategoriesQuery())

		require.NoError(t, err)
		assert.Equal(t, []string{"Mains", "Starters"}, categories)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		handler := queries.NewListCategoriesQueryHandler(testCatalog(t))

		_, err := handler.Handle(t.Context(), queries.ListCategoriesQuery{})

		require.Error(t, err)
	})
}

func TestListCategoryItemsQueryHandler_Handle(t *testing.T) {
	t.Run("should return category items in menu order", func(t *testing.T) {
		handler := queries.NewListCategoryItemsQueryHandler(testCatalog(t))
		query, err := queries.NewListCategoryItemsQuery("Starters")
		require.NoError(t, err)

		items, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 101, items[0].ID)
		assert.Equal(t, "Paneer Tikka", items[0].Name)
		assert.True(t, items[0].Spicy)
		assert.True(t, items[0].Veg)
		assert.False(t, items[0].Popular)
		assert.Equal(t, 102, items[1].ID)
		assert.True(t, items[1].Popular)
	})

	t.Run("should report unknown category as not found", func(t *testing.T) {
		handler := queries.NewListCategoryItemsQueryHandler(testCatalog(t))
		query, err := queries.NewListCategoryItemsQuery("Desserts")
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
