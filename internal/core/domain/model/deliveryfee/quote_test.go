package deliveryfee_test

import (
	"testing"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Quote(t *testing.T) {
	total := kernel.MustMoney("50")

	t.Run("should reject orders below the minimum value", func(t *testing.T) {
		cfg := deliveryfee.DefaultConfig()
		cfg.MinimumOrderValue = kernel.MustMoney("60")

		_, err := cfg.Quote(deliveryfee.Destination{}, total)

		require.ErrorIs(t, err, deliveryfee.ErrBelowMinimumOrder)
	})

	t.Run("should quote zero for NoFee inside the radius", func(t *testing.T) {
		cfg := deliveryfee.DefaultConfig()
		cfg.DeliveryRadiusKm = 5

		q, err := cfg.Quote(deliveryfee.Destination{DistanceKm: ptr(5.0)}, total)

		require.NoError(t, err)
		assert.True(t, q.Fee.IsZero())
		assert.Equal(t, 30, q.MinPrepMinutes)
		assert.Equal(t, 50, q.MaxPrepMinutes)
	})

	t.Run("should refuse NoFee beyond the radius", func(t *testing.T) {
		cfg := deliveryfee.DefaultConfig()
		cfg.DeliveryRadiusKm = 5

		_, err := cfg.Quote(deliveryfee.Destination{DistanceKm: ptr(5.1)}, total)

		require.ErrorIs(t, err, deliveryfee.ErrOutsideDeliveryArea)
	})

	t.Run("should charge the flat fee with an unlimited radius", func(t *testing.T) {
		cfg := deliveryfee.DefaultConfig()
		cfg.Modality = deliveryfee.FlatFee
		cfg.FlatFeeAmount = kernel.MustMoney("8")

		q, err := cfg.Quote(deliveryfee.Destination{DistanceKm: ptr(100.0)}, total)

		require.NoError(t, err)
		assert.Equal(t, "8.00", q.Fee.String())
	})

	t.Run("should pick the nearest enabled distance tier", func(t *testing.T) {
		cfg := deliveryfee.DefaultConfig()
		cfg.Modality = deliveryfee.DistanceTiered
		cfg.DistanceTiers = []deliveryfee.DistanceTier{
			{ID: "far", MaxDistanceKm: 10, FeeAmount: kernel.MustMoney("12"), MinPrepMinutes: 40, MaxPrepMinutes: 60, Enabled: true},
			{ID: "near", MaxDistanceKm: 3, FeeAmount: kernel.MustMoney("4"), MinPrepMinutes: 20, MaxPrepMinutes: 30, Enabled: false},
			{ID: "mid", MaxDistanceKm: 6, FeeAmount: kernel.MustMoney("7"), MinPrepMinutes: 25, MaxPrepMinutes: 45, Enabled: true},
		}

		q, err := cfg.Quote(deliveryfee.Destination{DistanceKm: ptr(2.0)}, total)
		require.NoError(t, err)
		assert.Equal(t, "7.00", q.Fee.String())
		assert.Equal(t, 25, q.MinPrepMinutes)

		q, err = cfg.Quote(deliveryfee.Destination{DistanceKm: ptr(10.0)}, total)
		require.NoError(t, err)
		assert.Equal(t, "12.00", q.Fee.String())

		_, err = cfg.Quote(deliveryfee.Destination{DistanceKm: ptr(10.5)}, total)
		require.ErrorIs(t, err, deliveryfee.ErrOutsideDeliveryArea)

		_, err = cfg.Quote(deliveryfee.Destination{}, total)
		require.ErrorIs(t, err, deliveryfee.ErrDestinationRequired)
	})

	t.Run("should price neighborhoods of served cities", func(t *testing.T) {
		cfg := sampleConfig()

		q, err := cfg.Quote(deliveryfee.Destination{Neighborhood: "bairro a", City: "CENTRO"}, total)
		require.NoError(t, err)
		assert.Equal(t, "5.00", q.Fee.String())
		assert.Equal(t, 40, q.MaxPrepMinutes)

		q, err = cfg.Quote(deliveryfee.Destination{Neighborhood: "Bairro Z", City: "Centro"}, total)
		require.NoError(t, err)
		assert.Equal(t, "9.00", q.Fee.String())

		_, err = cfg.Quote(deliveryfee.Destination{Neighborhood: "Bairro A", City: "Zona Sul"}, total)
		require.ErrorIs(t, err, deliveryfee.ErrOutsideDeliveryArea)

		_, err = cfg.Quote(deliveryfee.Destination{City: "Centro"}, total)
		require.ErrorIs(t, err, deliveryfee.ErrDestinationRequired)
	})

	t.Run("should block unlisted neighborhoods without a default fee", func(t *testing.T) {
		cfg := sampleConfig()
		cfg.DefaultFeeOtherNeighborhoods = kernel.ZeroMoney()

		_, err := cfg.Quote(deliveryfee.Destination{Neighborhood: "Bairro Z", City: "Centro"}, total)

		require.ErrorIs(t, err, deliveryfee.ErrOutsideDeliveryArea)
	})

	t.Run("should fail for an unknown modality", func(t *testing.T) {
		_, err := deliveryfee.Config{}.Quote(deliveryfee.Destination{}, total)

		require.Error(t, err)
	})
}
