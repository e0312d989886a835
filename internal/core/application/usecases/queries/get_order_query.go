package queries

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its lines for guest tracking.
//
// Example:
//
//	query, err := NewGetOrderQuery(1001)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order #%d is %s (%.0f%% done)\n",
//	    resp.ID, resp.Status, resp.Progress*100)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
// Validates that the identifier is positive.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryLineResponse represents one cart line of the retrieved order.
type GetOrderQueryLineResponse struct {
	ItemID   int
	Name     string
	Price    decimal.Decimal
	Quantity int
	Subtotal decimal.Decimal
}

// GetOrderQueryResponse represents a tracked order: its lines, total, status
// and how far along the stage sequence it has progressed.
type GetOrderQueryResponse struct {
	ID          int64
	TableNumber string
	Status      order.Status
	Lines       []GetOrderQueryLineResponse
	Total       decimal.Decimal
	Progress    float64
	CreatedAt   time.Time
}
