package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its lines from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db, stages)
//	query, _ := NewGetOrderQuery(1001)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db     *gorm.DB
	stages order.StageSequence
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection and the configured stage sequence.
func NewGetOrderQueryHandler(db *gorm.DB, stages order.StageSequence) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, stages: stages}
}

// Handle executes the query for one order.
// Returns an ObjectNotFoundError when the identifier is unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_number,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var status string
	var createdAt time.Time
	err := row.Scan(&resp.ID, &resp.TableNumber, &status, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status)
	resp.CreatedAt = createdAt

	progress, err := h.stages.ProgressFraction(resp.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Progress = progress

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			name,
			price,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	// Per-line subtotal and the running total follow order.Total:
	// sum over lines of price * quantity.
	total := decimal.Zero
	for rows.Next() {
		var line GetOrderQueryLineResponse
		var price decimal.Decimal

		err = rows.Scan(
			&line.ItemID,
			&line.Name,
			&price,
			&line.Quantity,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		line.Price = price
		line.Subtotal = price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(line.Subtotal)
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Total = total
	return resp, nil
}
