package ports

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/order"
)

var (
	// ErrDuplicateID is returned by Add when another session persisted an order
	// with the same identifier first. Callers retry id issuance a bounded
	// number of times before giving up with ErrStoreUnavailable.
	ErrDuplicateID = errors.New("order id already exists")

	// ErrStoreUnavailable is returned when the order store cannot complete an
	// operation, including when bounded conflict retries are exhausted.
	// Callers must surface it as a blocking error, never as empty data.
	ErrStoreUnavailable = errors.New("order store is unavailable")
)

// OrderRepository defines the persistence contract for order aggregates.
// Read-modify-write sequences (id issuance plus Add, Get plus Update) must run
// inside one unit of work so that concurrent sessions never lose each other's
// writes.
type OrderRepository interface {
	// NextID computes the next free order identifier from the persisted state
	// at call time: one above the current maximum, starting from the id seed.
	// The result is never cached; concurrent issuance is resolved by the
	// store's uniqueness guarantee on Add.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order aggregate.
	// Returns ErrDuplicateID if the order's identifier is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change to an existing order. The order's row is
	// locked for the remainder of the transaction, serializing concurrent
	// staff updates. Lines are a frozen snapshot and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, including its lines.
	// When called inside a transaction the row stays locked until commit.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves every order, a snapshot at call time, ordered by id.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// ordered by id.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// RemoveAllInStatus deletes every order in the given status and reports
	// how many were removed. Used for the bulk clear of completed orders.
	RemoveAllInStatus(ctx context.Context, status order.Status) (int64, error)

	// CountAll returns the total number of persisted orders.
	CountAll(ctx context.Context) (int64, error)

	// CountByStatus returns the number of orders per status label.
	// Statuses with no orders are absent from the result.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}
