package commands

import (
	"context"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/ports"
)

// EditDeliveryFeeDraftCommandHandler changes the draft held in the session store.
// The persisted config is never touched here; only SaveDeliveryFeeConfig writes it.
type EditDeliveryFeeDraftCommandHandler struct {
	uowFactory DeliveryFeeUoWFactory
	drafts     ports.DeliveryFeeDraftStore
}

func NewEditDeliveryFeeDraftCommandHandler(
	uowFactory DeliveryFeeUoWFactory,
	drafts ports.DeliveryFeeDraftStore,
) EditDeliveryFeeDraftCommandHandler {
	return EditDeliveryFeeDraftCommandHandler{
		uowFactory: uowFactory,
		drafts:     drafts,
	}
}

// Handle applies the edit and stores the session. A rejected edit stores nothing.
func (h EditDeliveryFeeDraftCommandHandler) Handle(
	ctx context.Context,
	cmd EditDeliveryFeeDraftCommand,
) (deliveryfee.View, error) {
	if err := cmd.Validate(); err != nil {
		return deliveryfee.View{}, err
	}

	editor, err := openEditor(ctx, h.drafts, h.uowFactory, cmd.Key())
	if err != nil {
		return deliveryfee.View{}, err
	}

	if err = editor.Apply(cmd.Edit()); err != nil {
		return deliveryfee.View{}, err
	}

	if err = h.drafts.Save(ctx, cmd.Key(), editor); err != nil {
		return deliveryfee.View{}, err
	}

	return editor.View(), nil
}
