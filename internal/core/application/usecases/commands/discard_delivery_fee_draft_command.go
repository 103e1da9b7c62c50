package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/guard"
)

var ErrDiscardDeliveryFeeDraftCommandIsNotConstructed = errors.New(
	"DiscardDeliveryFeeDraftCommand must be created via NewDiscardDeliveryFeeDraftCommand constructor",
)

// DiscardDeliveryFeeDraftCommand drops the admin's unsaved changes.
type DiscardDeliveryFeeDraftCommand struct { //nolint:recvcheck //using for validation
	key ports.DraftKey

	guard guard.ConstructorGuard
}

func NewDiscardDeliveryFeeDraftCommand(key ports.DraftKey) (DiscardDeliveryFeeDraftCommand, error) {
	if err := validateDraftKey(key); err != nil {
		return DiscardDeliveryFeeDraftCommand{}, err
	}
	return DiscardDeliveryFeeDraftCommand{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (c DiscardDeliveryFeeDraftCommand) Validate() error {
	return c.guard.Validate(ErrDiscardDeliveryFeeDraftCommandIsNotConstructed)
}

func (c DiscardDeliveryFeeDraftCommand) Key() ports.DraftKey { return c.key }

type DiscardDeliveryFeeDraftCommandHandler struct {
	drafts ports.DeliveryFeeDraftStore
}

func NewDiscardDeliveryFeeDraftCommandHandler(drafts ports.DeliveryFeeDraftStore) DiscardDeliveryFeeDraftCommandHandler {
	return DiscardDeliveryFeeDraftCommandHandler{drafts: drafts}
}

// Handle deletes the session. Discarding a missing session is not an error.
func (h DiscardDeliveryFeeDraftCommandHandler) Handle(ctx context.Context, cmd DiscardDeliveryFeeDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.drafts.Delete(ctx, cmd.Key())
}
