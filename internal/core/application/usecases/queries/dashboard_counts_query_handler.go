package queries

import (
	"context"

	"tableside/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// DashboardCountsQueryHandler computes the staff dashboard counts in SQL.
type DashboardCountsQueryHandler struct {
	db     *gorm.DB
	stages order.StageSequence
}

// NewDashboardCountsQueryHandler creates a handler for dashboard counts.
// Requires a GORM database connection and the configured stage sequence.
func NewDashboardCountsQueryHandler(db *gorm.DB, stages order.StageSequence) DashboardCountsQueryHandler {
	return DashboardCountsQueryHandler{db: db, stages: stages}
}

// Handle executes the query. Every stage of the configured sequence appears
// in ByStatus, with a zero count when no order sits in it.
func (h DashboardCountsQueryHandler) Handle(
	ctx context.Context,
	query DashboardCountsQuery,
) (DashboardCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardCountsQueryResponse{}, err
	}

	resp := DashboardCountsQueryResponse{
		ByStatus: make(map[order.Status]int64, len(h.stages.Stages())),
	}
	for _, stage := range h.stages.Stages() {
		resp.ByStatus[stage] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return DashboardCountsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return DashboardCountsQueryResponse{}, err
		}

		resp.ByStatus[order.Status(status)] = count
		resp.Total += count
	}

	if err = rows.Err(); err != nil {
		return DashboardCountsQueryResponse{}, err
	}

	return resp, nil
}
