package commands_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveDeliveryFeeConfigCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should report not savable without any write", func(t *testing.T) {
		key := draftKey()
		m := newDeliveryFeeMocks()
		editor := deliveryfee.NewEditor(deliveryfee.DefaultConfig())
		require.NoError(t, editor.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{
			Modality: ptr(deliveryfee.NeighborhoodTiered),
		})))
		cmd, _ := commands.NewSaveDeliveryFeeConfigCommand(key)

		m.drafts.On("Load", ctx, key).Return(editor, true, nil).Once()

		result, err := commands.NewSaveDeliveryFeeConfigCommandHandler(m.factory, m.drafts, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.SaveOutcomeNotSavable, result.Outcome)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should report nothing to save for an untouched draft", func(t *testing.T) {
		key := draftKey()
		m := newDeliveryFeeMocks()
		cmd, _ := commands.NewSaveDeliveryFeeConfigCommand(key)

		mock.InOrder(
			m.drafts.On("Load", ctx, key).Return(nil, false, nil).Once(),
			m.repo.On("Get", ctx, key.EstablishmentID).Return(flatFeeConfig(), nil).Once(),
		)

		result, err := commands.NewSaveDeliveryFeeConfigCommandHandler(m.factory, m.drafts, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.SaveOutcomeNothingToSave, result.Outcome)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
		m.repo.AssertNotCalled(t, "ApplyPatch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should send only the changed fields and move the snapshot", func(t *testing.T) {
		key := draftKey()
		m := newDeliveryFeeMocks()
		editor := deliveryfee.NewEditor(flatFeeConfig())
		require.NoError(t, editor.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{
			FlatFeeAmount:    ptr(kernel.MustMoney("9.90")),
			PrepTimeMaxRange: ptr(60),
		})))
		cmd, _ := commands.NewSaveDeliveryFeeConfigCommand(key)

		mock.InOrder(
			m.drafts.On("Load", ctx, key).Return(editor, true, nil).Once(),
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.repo.On("ApplyPatch", ctx, key.EstablishmentID, mock.MatchedBy(func(p deliveryfee.Patch) bool {
				return assert.ObjectsAreEqual(
					[]deliveryfee.Field{deliveryfee.FieldFlatFeeAmount, deliveryfee.FieldPrepTimeMaxRange},
					p.Fields(),
				) && p.FlatFeeAmount.String() == "9.90" && *p.PrepTimeMaxRange == 60
			})).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.drafts.On("Save", ctx, key, editor).Return(nil).Once(),
		)
		// The deferred rollback runs after the session is stored.
		m.uow.On("Rollback", ctx).Return(nil).Once()

		result, err := commands.NewSaveDeliveryFeeConfigCommandHandler(m.factory, m.drafts, discardLogger()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.SaveOutcomeSaved, result.Outcome)
		assert.Len(t, result.Fields, 2)
		assert.Empty(t, result.View.PendingChanges)
		assert.Equal(t, 60, result.View.Snapshot.PrepTimeMaxRange)
		m.repo.AssertExpectations(t)
		m.uow.AssertExpectations(t)
		m.drafts.AssertExpectations(t)
	})

	t.Run("should report saved when only the session update fails", func(t *testing.T) {
		key := draftKey()
		m := newDeliveryFeeMocks()
		editor := deliveryfee.NewEditor(flatFeeConfig())
		require.NoError(t, editor.Apply(deliveryfee.AddCityEdit("Centro")))
		cmd, _ := commands.NewSaveDeliveryFeeConfigCommand(key)
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		mock.InOrder(
			m.drafts.On("Load", ctx, key).Return(editor, true, nil).Once(),
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.repo.On("ApplyPatch", ctx, key.EstablishmentID, mock.Anything).Return(nil).Once(),
			m.uow.On("Commit", ctx).Return(nil).Once(),
			m.drafts.On("Save", ctx, key, editor).Return(errors.New("redis down")).Once(),
		)
		m.uow.On("Rollback", ctx).Return(nil).Once()

		result, err := commands.NewSaveDeliveryFeeConfigCommandHandler(m.factory, m.drafts, logger).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.SaveOutcomeSaved, result.Outcome)
		assert.Equal(t, []deliveryfee.Field{deliveryfee.FieldServedCities}, result.Fields)
		assert.Contains(t, logs.String(), "draft session not updated")
		assert.Contains(t, logs.String(), "redis down")
		m.drafts.AssertExpectations(t)
	})

	t.Run("should keep the snapshot when the write fails", func(t *testing.T) {
		key := draftKey()
		m := newDeliveryFeeMocks()
		editor := deliveryfee.NewEditor(flatFeeConfig())
		require.NoError(t, editor.Apply(deliveryfee.AddCityEdit("Centro")))
		cmd, _ := commands.NewSaveDeliveryFeeConfigCommand(key)

		mock.InOrder(
			m.drafts.On("Load", ctx, key).Return(editor, true, nil).Once(),
			m.uow.On("Begin", ctx).Return(nil).Once(),
			m.repo.On("ApplyPatch", ctx, key.EstablishmentID, mock.Anything).Return(errors.New("database error")).Once(),
			m.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		_, err := commands.NewSaveDeliveryFeeConfigCommandHandler(m.factory, m.drafts, discardLogger()).Handle(ctx, cmd)

		require.EqualError(t, err, "database error")
		assert.False(t, editor.PendingChanges().IsEmpty())
		m.drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject an inverted prep range", func(t *testing.T) {
		key := draftKey()
		m := newDeliveryFeeMocks()
		editor := deliveryfee.NewEditor(flatFeeConfig())
		require.NoError(t, editor.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{PrepTimeMinRange: ptr(90)})))
		cmd, _ := commands.NewSaveDeliveryFeeConfigCommand(key)

		m.drafts.On("Load", ctx, key).Return(editor, true, nil).Once()

		_, err := commands.NewSaveDeliveryFeeConfigCommandHandler(m.factory, m.drafts, discardLogger()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}
