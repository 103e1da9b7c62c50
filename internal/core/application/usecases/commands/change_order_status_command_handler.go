package commands

import (
	"context"
	"time"
)

// ChangeOrderStatusCommandHandler moves an order to an arbitrary status chosen by the
// admin. A change to cancelado cancels, a change out of it reactivates.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        Clock
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	entry, err := o.ChangeStatus(cmd.Target(), cmd.ActorID(), cmd.Observation(), h.now())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = recordTransition(ctx, uow, o, entry); err != nil {
		return TransitionResult{}, err
	}

	return newTransitionResult(o, entry), nil
}
