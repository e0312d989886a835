package menufile_test

import (
	"os"
	"path/filepath"
	"testing"

	"tableside/internal/adapters/out/menufile"
	"tableside/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMenuFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Run("should load valid menu file", func(t *testing.T) {
		path := writeMenuFile(t, `[
			{"id": 101, "name": "Paneer Tikka", "price": "180.00", "category": "Starters", "spicy": true, "veg": true},
			{"id": 201, "name": "Butter Chicken", "price": "280.50", "category": "Mains", "popular": true, "image": "https://cdn.example.com/bc.jpg"}
		]`)

		catalog, err := menufile.NewLoader(path).Load(t.Context())

		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Size())
		assert.Equal(t, []string{"Mains", "Starters"}, catalog.Categories())

		item, err := catalog.Item(201)
		require.NoError(t, err)
		assert.Equal(t, "Butter Chicken", item.Name())
		assert.True(t, item.Price().Equal(decimal.NewFromFloat(280.50)))
		assert.True(t, item.Tags().Popular)
		assert.Equal(t, "https://cdn.example.com/bc.jpg", item.Image())
	})

	t.Run("should report missing file as catalog unavailable", func(t *testing.T) {
		_, err := menufile.NewLoader("/nonexistent/menu.json").Load(t.Context())

		require.Error(t, err)
		require.ErrorIs(t, err, menu.ErrCatalogUnavailable)
	})

	t.Run("should report malformed json as catalog unavailable", func(t *testing.T) {
		path := writeMenuFile(t, `{"not": "a list"`)

		_, err := menufile.NewLoader(path).Load(t.Context())

		require.Error(t, err)
		require.ErrorIs(t, err, menu.ErrCatalogUnavailable)
	})

	t.Run("should report empty menu as catalog unavailable", func(t *testing.T) {
		path := writeMenuFile(t, `[]`)

		_, err := menufile.NewLoader(path).Load(t.Context())

		require.Error(t, err)
		require.ErrorIs(t, err, menu.ErrCatalogUnavailable)
	})

	t.Run("should report duplicate item ids as catalog unavailable", func(t *testing.T) {
		path := writeMenuFile(t, `[
			{"id": 101, "name": "Paneer Tikka", "price": "180.00", "category": "Starters"},
			{"id": 101, "name": "Chicken Tikka", "price": "220.00", "category": "Starters"}
		]`)

		_, err := menufile.NewLoader(path).Load(t.Context())

		require.Error(t, err)
		require.ErrorIs(t, err, menu.ErrCatalogUnavailable)
	})

	t.Run("should reject invalid item", func(t *testing.T) {
		path := writeMenuFile(t, `[{"id": 0, "name": "Ghost Dish", "price": "10", "category": "Starters"}]`)

		_, err := menufile.NewLoader(path).Load(t.Context())

		require.Error(t, err)
		require.ErrorIs(t, err, menu.ErrCatalogUnavailable)
	})
}
