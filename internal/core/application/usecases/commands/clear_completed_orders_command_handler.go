package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
)

// ClearCompletedOrdersCommandHandler handles the bulk removal of orders in
// the terminal stage. Runs inside one unit of work so the staff view never
// observes a partially cleared store.
type ClearCompletedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	stages     order.StageSequence
}

// NewClearCompletedOrdersCommandHandler creates a handler for bulk clearing.
// Requires an OrderUoWFactory for transactional persistence and the
// configured stage sequence.
func NewClearCompletedOrdersCommandHandler(uowFactory OrderUoWFactory, stages order.StageSequence) ClearCompletedOrdersCommandHandler {
	return ClearCompletedOrdersCommandHandler{
		uowFactory: uowFactory,
		stages:     stages,
	}
}

// Handle processes the clear command and returns how many orders were
// removed, for staff confirmation.
func (h *ClearCompletedOrdersCommandHandler) Handle(ctx context.Context, cmd ClearCompletedOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().RemoveAllInStatus(ctx, h.stages.Terminal())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
