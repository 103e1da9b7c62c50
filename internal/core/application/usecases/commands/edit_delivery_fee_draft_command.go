package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrEditDeliveryFeeDraftCommandIsNotConstructed = errors.New(
	"EditDeliveryFeeDraftCommand must be created via NewEditDeliveryFeeDraftCommand constructor",
)

// EditDeliveryFeeDraftCommand applies one form change to the admin's draft.
//
// Example:
//
//	cmd, err := NewEditDeliveryFeeDraftCommand(key, deliveryfee.AddCityEdit("Centro"))
//	view, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, deliveryfee.ErrEditRejected) {
//	    // draft unchanged
//	}
type EditDeliveryFeeDraftCommand struct { //nolint:recvcheck //using for validation
	key  ports.DraftKey
	edit deliveryfee.Edit

	guard guard.ConstructorGuard
}

func NewEditDeliveryFeeDraftCommand(key ports.DraftKey, edit deliveryfee.Edit) (EditDeliveryFeeDraftCommand, error) {
	cmd := EditDeliveryFeeDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKey(key),
		cmd.setEdit(edit),
	); err != nil {
		return EditDeliveryFeeDraftCommand{}, err
	}

	return cmd, nil
}

func (c EditDeliveryFeeDraftCommand) Validate() error {
	return c.guard.Validate(ErrEditDeliveryFeeDraftCommandIsNotConstructed)
}

func (c EditDeliveryFeeDraftCommand) Key() ports.DraftKey    { return c.key }
func (c EditDeliveryFeeDraftCommand) Edit() deliveryfee.Edit { return c.edit }

func (c *EditDeliveryFeeDraftCommand) setKey(key ports.DraftKey) error {
	if err := validateDraftKey(key); err != nil {
		return err
	}
	c.key = key
	return nil
}

func (c *EditDeliveryFeeDraftCommand) setEdit(edit deliveryfee.Edit) error {
	if edit == nil {
		return errs.NewValueIsRequiredError("edit")
	}
	c.edit = edit
	return nil
}
