package queries

import (
	"errors"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var (
	ErrDashboardCountsQueryIsNotConstructed = errors.New(
		"DashboardCountsQuery must be created via NewDashboardCountsQuery constructor",
	)
)

// DashboardCountsQuery retrieves the order counts the staff dashboard shows:
// the overall total plus a per-status breakdown.
type DashboardCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewDashboardCountsQuery creates a parameterless query for dashboard counts.
func NewDashboardCountsQuery() DashboardCountsQuery {
	return DashboardCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrDashboardCountsQueryIsNotConstructed if validation fails.
func (q DashboardCountsQuery) Validate() error {
	return q.guard.Validate(ErrDashboardCountsQueryIsNotConstructed)
}

// DashboardCountsQueryResponse represents the dashboard headline numbers.
// ByStatus carries a zero entry for every stage of the configured sequence,
// so the dashboard never has to guess which stages exist.
type DashboardCountsQueryResponse struct {
	Total    int64
	ByStatus map[order.Status]int64
}
