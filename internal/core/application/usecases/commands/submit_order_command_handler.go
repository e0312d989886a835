package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"

	"github.com/shopspring/decimal"
)

// submitRetryLimit bounds the number of id-conflict retries before the
// handler gives up with ErrStoreUnavailable.
const submitRetryLimit = 3

// SubmitOrderResult describes the placed order: the identifier assigned by
// the store, the computed total, and whether the total qualifies for the
// complimentary item.
type SubmitOrderResult struct {
	OrderID       int64
	Status        order.Status
	Total         decimal.Decimal
	BonusEligible bool
}

// SubmitOrderCommandHandler handles the business logic for order placement.
// Issues the next free identifier, builds the order in the first stage of the
// configured sequence, and persists it transactionally.
//
// Two guests submitting at the same time may race for the same identifier;
// the store's uniqueness guarantee rejects the loser and the handler retries
// with a freshly computed id, a bounded number of times.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	stages     order.StageSequence
	bonus      order.BonusPolicy
	now        func() time.Time
}

// NewSubmitOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, the configured
// stage sequence, and the bonus policy.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	stages order.StageSequence,
	bonus order.BonusPolicy,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		stages:     stages,
		bonus:      bonus,
		now:        time.Now,
	}
}

// Handle processes the order placement command.
// On success returns the assigned order id, the total, and bonus eligibility.
// On validation failure no state is mutated.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	var lastErr error
	for attempt := 0; attempt < submitRetryLimit; attempt++ {
		result, err := h.submitOnce(ctx, cmd)
		if err == nil {
			return result, nil
		}

		if !errors.Is(err, ports.ErrDuplicateID) {
			return SubmitOrderResult{}, err
		}

		lastErr = err
	}

	return SubmitOrderResult{}, fmt.Errorf("%w: id conflict persisted after %d attempts (cause: %v)",
		ports.ErrStoreUnavailable, submitRetryLimit, lastErr)
}

func (h *SubmitOrderCommandHandler) submitOnce(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	newOrder, err := order.NewOrder(id, cmd.Table(), cmd.Lines(), h.stages, h.now())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	total := newOrder.Total()
	return SubmitOrderResult{
		OrderID:       newOrder.ID(),
		Status:        newOrder.Status(),
		Total:         total,
		BonusEligible: h.bonus.EligibleForBonus(total),
	}, nil
}
