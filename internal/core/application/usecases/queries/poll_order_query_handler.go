package queries

import (
	"context"
	"database/sql"
	"errors"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
)

// PollOrderQueryHandler reads an order's current status and compares it
// against the caller's previous observation through the change detector.
type PollOrderQueryHandler struct {
	db       *gorm.DB
	stages   order.StageSequence
	detector services.ChangeDetector
}

// NewPollOrderQueryHandler creates a handler for order polling.
// Requires a GORM database connection, the configured stage sequence and a
// change detector built on the same sequence.
func NewPollOrderQueryHandler(
	db *gorm.DB,
	stages order.StageSequence,
	detector services.ChangeDetector,
) PollOrderQueryHandler {
	return PollOrderQueryHandler{db: db, stages: stages, detector: detector}
}

// Handle executes one poll.
// Returns an ObjectNotFoundError when the order id is unknown, which also
// covers orders the staff has already cleared away.
func (h PollOrderQueryHandler) Handle(ctx context.Context, query PollOrderQuery) (PollOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PollOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var status string
	err := row.Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return PollOrderQueryResponse{}, errs.NewObjectNotFoundError("order id", query.OrderID())
	}
	if err != nil {
		return PollOrderQueryResponse{}, err
	}

	current := order.Status(status)

	progress, err := h.stages.ProgressFraction(current)
	if err != nil {
		return PollOrderQueryResponse{}, err
	}

	var prev *services.Observation
	if query.LastSeen() != "" {
		prev = &services.Observation{OrderID: query.OrderID(), Status: query.LastSeen()}
	}

	changed, err := h.detector.DetectStatusChange(prev, query.OrderID(), current)
	if err != nil {
		return PollOrderQueryResponse{}, err
	}

	return PollOrderQueryResponse{
		ID:       query.OrderID(),
		Status:   current,
		Progress: progress,
		Changed:  changed,
	}, nil
}
