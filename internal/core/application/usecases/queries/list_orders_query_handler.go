package queries

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves the staff board rows from the database.
// Aggregates each order's line count and total in SQL so the board stays one
// round trip regardless of store size.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for staff board queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns board rows sorted by order id, so the
// oldest order is always first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// SUM(l.price * l.quantity) is order.Total expressed in SQL; the two
	// must stay in step.
	const baseQuery = `
		SELECT
			o.id,
			o.table_number,
			o.status,
			o.created_at,
			COALESCE(SUM(l.quantity), 0),
			COALESCE(SUM(l.price * l.quantity), 0)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
	`

	var rowsQuery *gorm.DB
	if query.Status() != "" {
		rowsQuery = h.db.WithContext(ctx).Raw(
			baseQuery+` WHERE o.status = ? GROUP BY o.id, o.table_number, o.status, o.created_at ORDER BY o.id`,
			string(query.Status()),
		)
	} else {
		rowsQuery = h.db.WithContext(ctx).Raw(
			baseQuery + ` GROUP BY o.id, o.table_number, o.status, o.created_at ORDER BY o.id`,
		)
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var resp ListOrdersQueryResponse
		var status string
		var createdAt time.Time
		var itemCount int64
		var total decimal.Decimal

		err = rows.Scan(
			&resp.ID,
			&resp.TableNumber,
			&status,
			&createdAt,
			&itemCount,
			&total,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = order.Status(status)
		resp.CreatedAt = createdAt
		resp.ItemCount = int(itemCount)
		resp.Total = total
		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
