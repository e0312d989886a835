package ports

import (
	"context"

	"tableside/internal/core/domain/model/menu"
)

// MenuSource loads the menu catalog from its backing source. Implementations
// must fail with an error wrapping menu.ErrCatalogUnavailable when the source
// is missing or malformed; they never return an empty catalog in that case.
type MenuSource interface {
	// Load reads the backing source and builds a fresh catalog snapshot.
	Load(ctx context.Context) (menu.Catalog, error)
}
