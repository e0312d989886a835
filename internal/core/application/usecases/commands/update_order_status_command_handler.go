package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles the business logic for advancing an
// order through the fulfillment workflow.
//
// The read-modify-write runs inside one unit of work: the order's row stays
// locked from Get until commit, so two staff sessions updating the same order
// serialize, and updates to different orders never lose each other's writes.
// A rejected transition leaves the stored status untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	stages     order.StageSequence
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for transactional persistence and the
// configured stage sequence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory, stages order.StageSequence) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		stages:     stages,
	}
}

// Handle processes the status update command.
// Repeating the order's current status is an idempotent success. Unknown
// order ids fail with an ObjectNotFoundError; backward transitions fail with
// order.ErrInvalidTransition.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.ChangeStatus(cmd.Next(), h.stages); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
