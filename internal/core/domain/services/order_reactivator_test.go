package services_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func cancelledOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:              kernel.NewUUID(),
		EstablishmentID: kernel.NewUUID(),
		Number:          10,
		TrackingCode:    "TRK10",
		DeliveryType:    order.Delivery,
		PaymentMethod:   order.Pix,
		Total:           kernel.MustMoney("80"),
		Status:          order.Cancelled,
		CreatedAt:       base,
	})
	require.NoError(t, err)
	return o
}

func entry(o *order.Order, from, to order.Status, at time.Time) order.HistoryEntry {
	return order.HistoryEntry{
		ID:             kernel.NewUUID(),
		OrderID:        o.ID(),
		PreviousStatus: from,
		NewStatus:      to,
		ActorID:        kernel.NewUUID(),
		CreatedAt:      at,
	}
}

func TestOrderReactivator_Target(t *testing.T) {
	reactivator := services.NewOrderReactivator()

	t.Run("should default to pendente without a cancellation entry", func(t *testing.T) {
		o := cancelledOrder(t)

		assert.Equal(t, order.Pending, reactivator.Target(o, nil))
		assert.Equal(t, order.Pending, reactivator.Target(o, []order.HistoryEntry{
			entry(o, order.Pending, order.Accepted, base),
		}))
	})

	t.Run("should use the latest cancellation", func(t *testing.T) {
		o := cancelledOrder(t)
		history := []order.HistoryEntry{
			entry(o, order.Pending, order.Accepted, base),
			entry(o, order.Accepted, order.Cancelled, base.Add(time.Minute)),
			entry(o, order.Cancelled, order.Accepted, base.Add(2*time.Minute)),
			entry(o, order.Accepted, order.Preparing, base.Add(3*time.Minute)),
			entry(o, order.Preparing, order.Cancelled, base.Add(4*time.Minute)),
		}

		assert.Equal(t, order.Preparing, reactivator.Target(o, history))
	})

	t.Run("should not depend on slice order", func(t *testing.T) {
		o := cancelledOrder(t)
		history := []order.HistoryEntry{
			entry(o, order.Ready, order.Cancelled, base.Add(time.Hour)),
			entry(o, order.Pending, order.Cancelled, base),
		}

		assert.Equal(t, order.Ready, reactivator.Target(o, history))
	})

	t.Run("should ignore entries of other orders", func(t *testing.T) {
		o := cancelledOrder(t)
		other := cancelledOrder(t)

		history := []order.HistoryEntry{entry(other, order.OutForDelivery, order.Cancelled, base)}

		assert.Equal(t, order.Pending, reactivator.Target(o, history))
	})
}

func TestOrderReactivator_Reactivate(t *testing.T) {
	reactivator := services.NewOrderReactivator()
	actor := kernel.NewUUID()

	t.Run("should restore preparo from the last cancellation", func(t *testing.T) {
		o := cancelledOrder(t)
		history := []order.HistoryEntry{entry(o, order.Preparing, order.Cancelled, base)}

		e, err := reactivator.Reactivate(o, history, actor, "cliente ligou", base.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, order.Cancelled, e.PreviousStatus)
		assert.Equal(t, order.Preparing, e.NewStatus)
	})

	t.Run("should fail for an unconstructed order", func(t *testing.T) {
		_, err := reactivator.Reactivate(&order.Order{}, nil, actor, "obs", base)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should keep the order cancelled without an observation", func(t *testing.T) {
		o := cancelledOrder(t)

		_, err := reactivator.Reactivate(o, nil, actor, "", base)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}
