package commands

import (
	"errors"

	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/guard"
)

var ErrSaveDeliveryFeeConfigCommandIsNotConstructed = errors.New(
	"SaveDeliveryFeeConfigCommand must be created via NewSaveDeliveryFeeConfigCommand constructor",
)

// SaveDeliveryFeeConfigCommand persists the changed fields of the admin's draft.
type SaveDeliveryFeeConfigCommand struct { //nolint:recvcheck //using for validation
	key ports.DraftKey

	guard guard.ConstructorGuard
}

func NewSaveDeliveryFeeConfigCommand(key ports.DraftKey) (SaveDeliveryFeeConfigCommand, error) {
	if err := validateDraftKey(key); err != nil {
		return SaveDeliveryFeeConfigCommand{}, err
	}
	return SaveDeliveryFeeConfigCommand{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveDeliveryFeeConfigCommand) Validate() error {
	return c.guard.Validate(ErrSaveDeliveryFeeConfigCommandIsNotConstructed)
}

func (c SaveDeliveryFeeConfigCommand) Key() ports.DraftKey { return c.key }
