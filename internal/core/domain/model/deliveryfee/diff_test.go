package deliveryfee_test

import (
	"testing"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() deliveryfee.Config {
	return deliveryfee.Config{
		Modality:          deliveryfee.NeighborhoodTiered,
		FlatFeeAmount:     kernel.MustMoney("7"),
		MinimumOrderValue: kernel.MustMoney("20"),
		ServedCities:      []string{"Centro", "Zona Norte"},
		DistanceTiers: []deliveryfee.DistanceTier{
			{ID: "d1", MaxDistanceKm: 3, FeeAmount: kernel.MustMoney("4"), MinPrepMinutes: 20, MaxPrepMinutes: 30, Enabled: true},
		},
		NeighborhoodTiers: []deliveryfee.NeighborhoodTier{
			{ID: "n1", Name: "Bairro A", City: "Centro", FeeAmount: kernel.MustMoney("5"), MinPrepMinutes: 20, MaxPrepMinutes: 40, Enabled: true},
		},
		DefaultFeeOtherNeighborhoods: kernel.MustMoney("9"),
		DeliveryRadiusKm:             8,
		PrepTimeMinRange:             20,
		PrepTimeMaxRange:             40,
	}
}

func TestDiff(t *testing.T) {
	t.Run("should be empty for deep equal configs", func(t *testing.T) {
		snapshot := sampleConfig()
		draft := sampleConfig()

		patch := deliveryfee.Diff(snapshot, draft)

		assert.True(t, patch.IsEmpty())
		assert.Empty(t, patch.Fields())
		assert.True(t, snapshot.Equal(draft))
	})

	t.Run("should treat nil and empty slices as equal", func(t *testing.T) {
		snapshot := deliveryfee.Config{}
		draft := deliveryfee.Config{
			ServedCities:      []string{},
			DistanceTiers:     []deliveryfee.DistanceTier{},
			NeighborhoodTiers: []deliveryfee.NeighborhoodTier{},
		}

		assert.True(t, deliveryfee.Diff(snapshot, draft).IsEmpty())
	})

	t.Run("should compare money numerically", func(t *testing.T) {
		snapshot := sampleConfig()
		draft := sampleConfig()
		draft.FlatFeeAmount = kernel.MustMoney("7.00")

		assert.True(t, deliveryfee.Diff(snapshot, draft).IsEmpty())
	})

	singleChanges := []struct {
		field  deliveryfee.Field
		mutate func(c *deliveryfee.Config)
	}{
		{deliveryfee.FieldModality, func(c *deliveryfee.Config) { c.Modality = deliveryfee.FlatFee }},
		{deliveryfee.FieldFlatFeeAmount, func(c *deliveryfee.Config) { c.FlatFeeAmount = kernel.MustMoney("8") }},
		{deliveryfee.FieldMinimumOrderValue, func(c *deliveryfee.Config) { c.MinimumOrderValue = kernel.ZeroMoney() }},
		{deliveryfee.FieldServedCities, func(c *deliveryfee.Config) { c.ServedCities = []string{"Zona Norte", "Centro"} }},
		{deliveryfee.FieldDistanceTiers, func(c *deliveryfee.Config) {
			c.DistanceTiers = deliveryfee.ToggleTierStatus(c.DistanceTiers, "d1")
		}},
		{deliveryfee.FieldNeighborhoodTiers, func(c *deliveryfee.Config) {
			c.NeighborhoodTiers = deliveryfee.RemoveTier(c.NeighborhoodTiers, "n1")
		}},
		{deliveryfee.FieldDefaultFeeOtherNeighborhoods, func(c *deliveryfee.Config) {
			c.DefaultFeeOtherNeighborhoods = kernel.ZeroMoney()
		}},
		{deliveryfee.FieldDeliveryRadiusKm, func(c *deliveryfee.Config) { c.DeliveryRadiusKm = 0 }},
		{deliveryfee.FieldPrepTimeMinRange, func(c *deliveryfee.Config) { c.PrepTimeMinRange = 25 }},
		{deliveryfee.FieldPrepTimeMaxRange, func(c *deliveryfee.Config) { c.PrepTimeMaxRange = 60 }},
	}

	for _, tc := range singleChanges {
		t.Run("should contain exactly "+string(tc.field), func(t *testing.T) {
			snapshot := sampleConfig()
			draft := sampleConfig()
			tc.mutate(&draft)

			patch := deliveryfee.Diff(snapshot, draft)

			assert.Equal(t, []deliveryfee.Field{tc.field}, patch.Fields())
		})
	}

	t.Run("should not alias the draft slices", func(t *testing.T) {
		snapshot := sampleConfig()
		draft := sampleConfig()
		draft.ServedCities = []string{"Centro"}

		patch := deliveryfee.Diff(snapshot, draft)
		draft.ServedCities[0] = "Outra"

		require.NotNil(t, patch.ServedCities)
		assert.Equal(t, []string{"Centro"}, *patch.ServedCities)
	})
}

func TestPatch_Apply(t *testing.T) {
	snapshot := sampleConfig()
	draft := sampleConfig()
	draft.Modality = deliveryfee.DistanceTiered
	draft.ServedCities = deliveryfee.AddCity(draft.ServedCities, "Zona Sul")
	draft.PrepTimeMaxRange = 55

	patch := deliveryfee.Diff(snapshot, draft)
	applied := patch.Apply(snapshot)

	assert.Len(t, patch.Fields(), 3)
	assert.True(t, applied.Equal(draft))
	assert.Equal(t, deliveryfee.NeighborhoodTiered, snapshot.Modality)
}
