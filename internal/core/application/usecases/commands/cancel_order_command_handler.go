package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler cancels an order from any status but concluido and
// cancelado and records the reason in the history.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        Clock
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (TransitionResult, error) {
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

	entry, err := o.Cancel(cmd.Reason(), cmd.ActorID(), h.now())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = recordTransition(ctx, uow, o, entry); err != nil {
		return TransitionResult{}, err
	}

	return newTransitionResult(o, entry), nil
}
