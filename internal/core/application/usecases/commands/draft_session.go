package commands

import (
	"context"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// openEditor returns the stored session of key, or a fresh one built from the
// persisted config. A fresh session is not stored until something changes.
func openEditor(
	ctx context.Context,
	store ports.DeliveryFeeDraftStore,
	uowFactory DeliveryFeeUoWFactory,
	key ports.DraftKey,
) (*deliveryfee.Editor, error) {
	editor, found, err := store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if found {
		return editor, nil
	}

	cfg, err := uowFactory.Create().DeliveryFeeRepository().Get(ctx, key.EstablishmentID)
	if err != nil {
		return nil, err
	}
	return deliveryfee.NewEditor(cfg), nil
}

func validateDraftKey(key ports.DraftKey) error {
	if err := key.EstablishmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("establishment", err)
	}
	if err := key.ActorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}
