package report_test

import (
	"encoding/json"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func row(status order.Status, dt order.DeliveryType, pm order.PaymentMethod, total string, at time.Time) report.Row {
	return report.Row{Status: status, DeliveryType: dt, PaymentMethod: pm, Total: kernel.MustMoney(total), CreatedAt: at}
}

func TestSummarize(t *testing.T) {
	t.Run("should return zeros for an empty period", func(t *testing.T) {
		s := report.Summarize(nil, day, day.Add(24*time.Hour), nil)

		assert.Zero(t, s.Orders)
		assert.True(t, s.Revenue.IsZero())
		assert.True(t, s.AverageTicket.IsZero())
		assert.Zero(t, s.CancellationRate)
		assert.Zero(t, s.DeliveryShare)
		assert.Empty(t, s.ByStatus)
	})

	t.Run("should aggregate the period", func(t *testing.T) {
		rows := []report.Row{
			row(order.Completed, order.Delivery, order.Pix, "40", day.Add(12*time.Hour)),
			row(order.Completed, order.Pickup, order.Cash, "20", day.Add(12*time.Hour+30*time.Minute)),
			row(order.Preparing, order.Delivery, order.Pix, "30", day.Add(19*time.Hour)),
			row(order.Cancelled, order.Delivery, order.CreditCard, "100", day.Add(20*time.Hour)),
			row(order.Completed, order.Delivery, order.Pix, "999", day.Add(-time.Minute)),
			row(order.Completed, order.Delivery, order.Pix, "999", day.Add(24*time.Hour)),
		}

		s := report.Summarize(rows, day, day.Add(24*time.Hour), time.UTC)

		assert.Equal(t, 4, s.Orders)
		assert.Equal(t, 1, s.CancelledOrders)
		assert.Equal(t, "90.00", s.Revenue.String())
		assert.Equal(t, "30.00", s.AverageTicket.String())
		assert.InDelta(t, 25.0, s.CancellationRate, 0.001)
		assert.InDelta(t, 66.67, s.DeliveryShare, 0.001)
		assert.InDelta(t, 33.33, s.PickupShare, 0.001)

		require.Len(t, s.ByHour, 2)
		assert.Equal(t, "12", s.ByHour[0].Key)
		assert.Equal(t, 2, s.ByHour[0].Count)
		assert.Equal(t, "60.00", s.ByHour[0].Revenue.String())

		require.Len(t, s.ByDay, 1)
		assert.Equal(t, "2024-05-10", s.ByDay[0].Key)
		assert.InDelta(t, 100.0, s.ByDay[0].Percent, 0.001)

		require.Len(t, s.ByPaymentMethod, 2)
		assert.Equal(t, "dinheiro", s.ByPaymentMethod[0].Key)
		assert.Equal(t, "pix", s.ByPaymentMethod[1].Key)

		statuses := map[string]int{}
		for _, b := range s.ByStatus {
			statuses[b.Key] = b.Count
		}
		assert.Equal(t, map[string]int{"concluido": 2, "preparo": 1, "cancelado": 1}, statuses)
	})

	t.Run("should group hours in the given location", func(t *testing.T) {
		saoPaulo := time.FixedZone("BRT", -3*60*60)
		rows := []report.Row{row(order.Completed, order.Pickup, order.Pix, "10", day.Add(2*time.Hour))}

		s := report.Summarize(rows, day, day.Add(24*time.Hour), saoPaulo)

		require.Len(t, s.ByHour, 1)
		assert.Equal(t, "23", s.ByHour[0].Key)
		assert.Equal(t, "2024-05-09", s.ByDay[0].Key)
	})
}

func TestPercent(t *testing.T) {
	assert.Zero(t, report.Percent(5, 0))
	assert.InDelta(t, 50.0, report.Percent(1, 2), 0.001)
	assert.InDelta(t, 33.33, report.Percent(1, 3), 0.001)
}

func TestBoard(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should list every status", func(t *testing.T) {
		b := report.NewBoard(id, map[order.Status]int{order.Pending: 3, order.Ready: 1}, day)

		assert.Equal(t, 4, b.Total)
		assert.Len(t, b.Counts, len(order.Statuses()))
		assert.Zero(t, b.Counts[order.Cancelled])
		assert.InDelta(t, 75.0, b.Share(order.Pending), 0.001)
	})

	t.Run("should not divide by zero", func(t *testing.T) {
		b := report.NewBoard(id, nil, day)

		assert.Zero(t, b.Share(order.Pending))
	})

	t.Run("should key counts by status code in JSON", func(t *testing.T) {
		b := report.NewBoard(id, map[order.Status]int{order.Accepted: 2}, day)

		raw, err := json.Marshal(b)
		require.NoError(t, err)

		var back report.Board
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Contains(t, string(raw), `"aceito":2`)
		assert.Equal(t, 2, back.Counts[order.Accepted])
		assert.True(t, back.EstablishmentID.IsEqual(id))
	})
}
