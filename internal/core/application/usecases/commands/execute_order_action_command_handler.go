package commands

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
)

// ExecuteOrderActionCommandHandler applies a fixed action to an order and records the
// transition. Nothing is mutated in storage unless the whole transition commits.
type ExecuteOrderActionCommandHandler struct {
	uowFactory  OrderUoWFactory
	reactivator services.OrderReactivator
	now         Clock
}

func NewExecuteOrderActionCommandHandler(uowFactory OrderUoWFactory) ExecuteOrderActionCommandHandler {
	return ExecuteOrderActionCommandHandler{
		uowFactory:  uowFactory,
		reactivator: services.NewOrderReactivator(),
		now:         time.Now,
	}
}

// Handle loads the order, resolves the target (from the history for Reactivate) and
// writes the order together with its history entry.
func (h ExecuteOrderActionCommandHandler) Handle(
	ctx context.Context,
	cmd ExecuteOrderActionCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	var entry order.HistoryEntry
	if cmd.Action() == order.Reactivate {
		history, histErr := uow.OrderHistoryRepository().ListByOrder(ctx, o.ID())
		if histErr != nil {
			return TransitionResult{}, histErr
		}
		entry, err = h.reactivator.Reactivate(o, history, cmd.ActorID(), cmd.Observation(), h.now())
	} else {
		entry, err = o.Execute(cmd.Action(), cmd.ActorID(), cmd.Observation(), h.now())
	}
	if err != nil {
		return TransitionResult{}, err
	}

	if err = recordTransition(ctx, uow, o, entry); err != nil {
		return TransitionResult{}, err
	}

	return newTransitionResult(o, entry), nil
}
