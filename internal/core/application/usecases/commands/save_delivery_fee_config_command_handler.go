package commands

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/ports"
)

// SaveOutcome tells what a save did. Only Saved touched the database.
type SaveOutcome string

const (
	SaveOutcomeSaved SaveOutcome = "saved"
	// SaveOutcomeNotSavable means the draft is incomplete for its modality.
	SaveOutcomeNotSavable SaveOutcome = "not_savable"
	// SaveOutcomeNothingToSave means the draft equals the snapshot.
	SaveOutcomeNothingToSave SaveOutcome = "nothing_to_save"
)

type SaveResult struct {
	Outcome SaveOutcome
	Fields  []deliveryfee.Field
	View    deliveryfee.View
}

// SaveDeliveryFeeConfigCommandHandler gates the save on CanSave, sends only the diff
// and moves the snapshot once the write committed.
//
// The committed patch decides the outcome. If the session cannot be stored
// afterwards the error is logged and the result is still Saved; the stale session
// then shows the saved fields as pending until it expires or is discarded.
type SaveDeliveryFeeConfigCommandHandler struct {
	uowFactory DeliveryFeeUoWFactory
	drafts     ports.DeliveryFeeDraftStore
	logger     *slog.Logger
}

func NewSaveDeliveryFeeConfigCommandHandler(
	uowFactory DeliveryFeeUoWFactory,
	drafts ports.DeliveryFeeDraftStore,
	logger *slog.Logger,
) SaveDeliveryFeeConfigCommandHandler {
	return SaveDeliveryFeeConfigCommandHandler{
		uowFactory: uowFactory,
		drafts:     drafts,
		logger:     logger,
	}
}

func (h SaveDeliveryFeeConfigCommandHandler) Handle(
	ctx context.Context,
	cmd SaveDeliveryFeeConfigCommand,
) (SaveResult, error) {
	if err := cmd.Validate(); err != nil {
		return SaveResult{}, err
	}

	editor, err := openEditor(ctx, h.drafts, h.uowFactory, cmd.Key())
	if err != nil {
		return SaveResult{}, err
	}

	if !editor.CanSave() {
		return SaveResult{Outcome: SaveOutcomeNotSavable, View: editor.View()}, nil
	}

	patch := editor.PendingChanges()
	if patch.IsEmpty() {
		return SaveResult{Outcome: SaveOutcomeNothingToSave, View: editor.View()}, nil
	}

	if err = editor.Draft().Validate(); err != nil {
		return SaveResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SaveResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryFeeRepository().ApplyPatch(ctx, cmd.Key().EstablishmentID, patch); err != nil {
		return SaveResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SaveResult{}, err
	}

	editor.MarkSaved()
	if err = h.drafts.Save(ctx, cmd.Key(), editor); err != nil {
		h.logger.ErrorContext(ctx, "delivery fee config saved but draft session not updated",
			slog.String("establishment_id", cmd.Key().EstablishmentID.String()),
			slog.String("actor_id", cmd.Key().ActorID.String()),
			slog.Any("error", err),
		)
	}

	return SaveResult{Outcome: SaveOutcomeSaved, Fields: patch.Fields(), View: editor.View()}, nil
}
