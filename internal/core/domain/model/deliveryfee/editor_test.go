package deliveryfee_test

import (
	"testing"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestEditor(t *testing.T) {
	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var e deliveryfee.Editor
		var nilEditor *deliveryfee.Editor

		require.ErrorIs(t, e.Validate(), deliveryfee.ErrEditorIsNotConstructed)
		require.ErrorIs(t, nilEditor.Validate(), deliveryfee.ErrEditorIsNotConstructed)
		require.NoError(t, deliveryfee.NewEditor(deliveryfee.DefaultConfig()).Validate())
	})

	t.Run("should start without pending changes", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		assert.True(t, e.PendingChanges().IsEmpty())
	})

	t.Run("should keep other modality data when switching", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		require.NoError(t, e.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{Modality: ptr(deliveryfee.FlatFee)})))
		require.NoError(t, e.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{
			Modality: ptr(deliveryfee.NeighborhoodTiered),
		})))

		assert.Len(t, e.Draft().NeighborhoodTiers, 1)
		assert.Equal(t, []string{"Centro", "Zona Norte"}, e.Draft().ServedCities)
		assert.True(t, e.PendingChanges().IsEmpty())
	})

	t.Run("should leave the draft untouched when an edit is rejected", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		err := e.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{
			PrepTimeMinRange: ptr(99),
			DeliveryRadiusKm: ptr(-1.0),
		}))

		require.ErrorIs(t, err, deliveryfee.ErrEditRejected)
		assert.Equal(t, 20, e.Draft().PrepTimeMinRange)
		assert.True(t, e.PendingChanges().IsEmpty())
	})

	t.Run("should reject unknown modality", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		err := e.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{Modality: ptr(deliveryfee.UnknownModality)}))

		require.ErrorIs(t, err, deliveryfee.ErrEditRejected)
	})

	t.Run("should report only the touched fields", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		require.NoError(t, e.Apply(deliveryfee.ChangeSettings(deliveryfee.Settings{
			FlatFeeAmount:    ptr(kernel.MustMoney("12.5")),
			PrepTimeMaxRange: ptr(40),
		})))

		assert.Equal(t, []deliveryfee.Field{deliveryfee.FieldFlatFeeAmount}, e.PendingChanges().Fields())
	})

	t.Run("should reject blank and duplicate cities", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		require.ErrorIs(t, e.Apply(deliveryfee.AddCityEdit("  ")), deliveryfee.ErrEditRejected)
		require.ErrorIs(t, e.Apply(deliveryfee.AddCityEdit("Centro")), deliveryfee.ErrEditRejected)
		require.ErrorIs(t, e.Apply(deliveryfee.RemoveCityEdit("Zona Sul")), deliveryfee.ErrEditRejected)

		require.NoError(t, e.Apply(deliveryfee.AddCityEdit(" Zona Sul ")))
		assert.Equal(t, []string{"Centro", "Zona Norte", "Zona Sul"}, e.Draft().ServedCities)
	})

	t.Run("should keep neighborhood tiers of a removed city", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		require.NoError(t, e.Apply(deliveryfee.RemoveCityEdit("Centro")))

		assert.Equal(t, []string{"Zona Norte"}, e.Draft().ServedCities)
		assert.Len(t, e.Draft().NeighborhoodTiers, 1)
	})

	t.Run("should toggle and remove tiers of either kind", func(t *testing.T) {
		e := deliveryfee.NewEditor(sampleConfig())

		require.NoError(t, e.Apply(deliveryfee.ToggleTierEdit("d1")))
		require.NoError(t, e.Apply(deliveryfee.ToggleTierEdit("n1")))
		assert.False(t, e.Draft().DistanceTiers[0].Enabled)
		assert.False(t, e.Draft().NeighborhoodTiers[0].Enabled)
		assert.False(t, e.CanSave())

		require.NoError(t, e.Apply(deliveryfee.RemoveTierEdit("n1")))
		assert.Empty(t, e.Draft().NeighborhoodTiers)

		require.ErrorIs(t, e.Apply(deliveryfee.ToggleTierEdit("nope")), deliveryfee.ErrEditRejected)
		require.ErrorIs(t, e.Apply(deliveryfee.RemoveTierEdit("nope")), deliveryfee.ErrEditRejected)
	})

	t.Run("should add tiers through edits", func(t *testing.T) {
		e := deliveryfee.NewEditor(deliveryfee.DefaultConfig())

		require.NoError(t, e.Apply(deliveryfee.AddDistanceTierEdit(deliveryfee.DistanceTierInput{
			MaxDistanceKm: 3, FeeAmount: kernel.MustMoney("4"),
		})))
		require.ErrorIs(t, e.Apply(deliveryfee.AddDistanceTierEdit(deliveryfee.DistanceTierInput{MaxDistanceKm: 3})),
			deliveryfee.ErrEditRejected)
		require.NoError(t, e.Apply(deliveryfee.AddNeighborhoodTierEdit(deliveryfee.NeighborhoodTierInput{
			Name: "Bairro A", City: "Centro",
		})))
		require.ErrorIs(t, e.Apply(deliveryfee.AddNeighborhoodTierEdit(deliveryfee.NeighborhoodTierInput{Name: "X"})),
			deliveryfee.ErrEditRejected)

		assert.ElementsMatch(t,
			[]deliveryfee.Field{deliveryfee.FieldDistanceTiers, deliveryfee.FieldNeighborhoodTiers},
			e.PendingChanges().Fields())
	})

	t.Run("should move the snapshot on MarkSaved and drop changes on Reset", func(t *testing.T) {
		e := deliveryfee.NewEditor(deliveryfee.DefaultConfig())

		require.NoError(t, e.Apply(deliveryfee.AddCityEdit("Centro")))
		e.MarkSaved()
		assert.True(t, e.PendingChanges().IsEmpty())
		assert.Equal(t, []string{"Centro"}, e.Snapshot().ServedCities)

		require.NoError(t, e.Apply(deliveryfee.AddCityEdit("Zona Norte")))
		e.Reset()
		assert.Equal(t, []string{"Centro"}, e.Draft().ServedCities)
	})

	t.Run("should restore a stored session", func(t *testing.T) {
		draft := sampleConfig()
		draft.Modality = deliveryfee.FlatFee

		e := deliveryfee.RestoreEditor(sampleConfig(), draft)

		require.NoError(t, e.Validate())
		assert.Equal(t, []deliveryfee.Field{deliveryfee.FieldModality}, e.PendingChanges().Fields())
		assert.True(t, e.CanSave())
	})
}
