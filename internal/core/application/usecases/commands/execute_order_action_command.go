package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrExecuteOrderActionCommandIsNotConstructed = errors.New(
	"ExecuteOrderActionCommand must be created via NewExecuteOrderActionCommand constructor",
)

// ExecuteOrderActionCommand runs one of the fixed buttons of an order.
// Cancel and Reactivate need a non-blank observation; for Cancel it is the reason.
// The check happens here so an incomplete request never reaches the database.
//
// Example:
//
//	cmd, err := NewExecuteOrderActionCommand(orderID, actorID, order.Accept, "")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ExecuteOrderActionCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actorID     kernel.UUID
	action      order.Action
	observation string

	guard guard.ConstructorGuard
}

func NewExecuteOrderActionCommand(
	orderID, actorID kernel.UUID,
	action order.Action,
	observation string,
) (ExecuteOrderActionCommand, error) {
	cmd := ExecuteOrderActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setAction(action, observation),
	); err != nil {
		return ExecuteOrderActionCommand{}, err
	}

	return cmd, nil
}

func (c ExecuteOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrExecuteOrderActionCommandIsNotConstructed)
}

func (c ExecuteOrderActionCommand) OrderID() kernel.UUID { return c.orderID }
func (c ExecuteOrderActionCommand) ActorID() kernel.UUID { return c.actorID }
func (c ExecuteOrderActionCommand) Action() order.Action { return c.action }
func (c ExecuteOrderActionCommand) Observation() string  { return c.observation }

func (c *ExecuteOrderActionCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ExecuteOrderActionCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	c.actorID = id
	return nil
}

func (c *ExecuteOrderActionCommand) setAction(action order.Action, observation string) error {
	if err := action.Validate(); err != nil {
		return err
	}

	observation = strings.TrimSpace(observation)
	switch action {
	case order.Cancel:
		if observation == "" {
			return errs.NewValueIsRequiredError("cancellation reason")
		}
	case order.Reactivate:
		if observation == "" {
			return errs.NewValueIsRequiredError("observation")
		}
	case order.Accept, order.StartPrep, order.MarkReady, order.StartDelivery, order.Complete, order.UnknownAction:
	}

	c.action = action
	c.observation = observation
	return nil
}
