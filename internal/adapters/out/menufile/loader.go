// Package menufile loads the menu catalog from a JSON file on disk.
// The file is the single source of truth for what guests can order; it is
// read once at startup and the resulting catalog is immutable afterwards.
package menufile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tableside/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// itemRecord mirrors one entry of the menu file.
type itemRecord struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Spicy    bool            `json:"spicy"`
	Veg      bool            `json:"veg"`
	Popular  bool            `json:"popular"`
	Image    string          `json:"image"`
}

// Loader reads a menu file and builds the domain catalog from it.
// Implements ports.MenuSource.
type Loader struct {
	path string
}

// NewLoader creates a loader for the menu file at the given path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the menu file.
// Every failure, from a missing file to a duplicate item id, wraps
// menu.ErrCatalogUnavailable: a store without a readable menu cannot serve.
func (l *Loader) Load(_ context.Context) (menu.Catalog, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return menu.Catalog{}, fmt.Errorf("%w: read %s: %w", menu.ErrCatalogUnavailable, l.path, err)
	}

	var records []itemRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return menu.Catalog{}, fmt.Errorf("%w: parse %s: %w", menu.ErrCatalogUnavailable, l.path, err)
	}

	items := make([]menu.MenuItem, 0, len(records))
	for _, record := range records {
		tags := menu.Tags{Spicy: record.Spicy, Veg: record.Veg, Popular: record.Popular}
		item, itemErr := menu.NewMenuItem(record.ID, record.Name, record.Price, record.Category, tags, record.Image)
		if itemErr != nil {
			return menu.Catalog{}, fmt.Errorf("%w: item %d in %s: %w",
				menu.ErrCatalogUnavailable, record.ID, l.path, itemErr)
		}
		items = append(items, item)
	}

	catalog, err := menu.NewCatalog(items)
	if err != nil {
		if errors.Is(err, menu.ErrCatalogUnavailable) {
			return menu.Catalog{}, err
		}
		return menu.Catalog{}, fmt.Errorf("%w: build catalog from %s: %w",
			menu.ErrCatalogUnavailable, l.path, err)
	}

	return catalog, nil
}
