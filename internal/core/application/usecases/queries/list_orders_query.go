package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery or NewListOrdersInStatusQuery constructor",
	)
)

// ListOrdersQuery retrieves orders for the staff board, either every order in
// the store or only those sitting in one status.
//
// Example:
//
//	query := NewListOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("#%d table %s: %s\n", o.ID, o.TableNumber, o.Status)
//	}
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query that retrieves every stored order.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersInStatusQuery creates a query that retrieves only the orders
// currently in the given status.
func NewListOrdersInStatusQuery(status order.Status) (ListOrdersQuery, error) {
	if status == "" {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("status")
	}

	return ListOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, empty when the query spans all orders.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// ListOrdersQueryResponse represents one row of the staff board.
type ListOrdersQueryResponse struct {
	ID          int64
	TableNumber string
	Status      order.Status
	ItemCount   int
	Total       decimal.Decimal
	CreatedAt   time.Time
}
