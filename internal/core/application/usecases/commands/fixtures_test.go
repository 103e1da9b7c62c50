package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T, status order.Status, dt order.DeliveryType) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:              kernel.NewUUID(),
		EstablishmentID: kernel.NewUUID(),
		Number:          12,
		TrackingCode:    "TRK12",
		DeliveryType:    dt,
		PaymentMethod:   order.Pix,
		Total:           kernel.MustMoney("45.50"),
		Status:          status,
		CreatedAt:       time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

type orderUoWMocks struct {
	orders  *MockOrderRepository
	history *MockOrderHistoryRepository
	uow     *MockOrderUoW
	factory *MockOrderUoWFactory
}

func newOrderUoWMocks() orderUoWMocks {
	m := orderUoWMocks{
		orders:  new(MockOrderRepository),
		history: new(MockOrderHistoryRepository),
		uow:     new(MockOrderUoW),
		factory: new(MockOrderUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders)
	m.uow.On("OrderHistoryRepository").Return(m.history)
	return m
}

func (m orderUoWMocks) assert(t *testing.T) {
	m.orders.AssertExpectations(t)
	m.history.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}

func draftKey() ports.DraftKey {
	return ports.DraftKey{EstablishmentID: kernel.NewUUID(), ActorID: kernel.NewUUID()}
}

func flatFeeConfig() deliveryfee.Config {
	cfg := deliveryfee.DefaultConfig()
	cfg.Modality = deliveryfee.FlatFee
	cfg.FlatFeeAmount = kernel.MustMoney("6")
	return cfg
}

type deliveryFeeMocks struct {
	repo    *MockDeliveryFeeRepository
	uow     *MockDeliveryFeeUoW
	factory *MockDeliveryFeeUoWFactory
	drafts  *MockDraftStore
}

func newDeliveryFeeMocks() deliveryFeeMocks {
	m := deliveryFeeMocks{
		repo:    new(MockDeliveryFeeRepository),
		uow:     new(MockDeliveryFeeUoW),
		factory: new(MockDeliveryFeeUoWFactory),
		drafts:  new(MockDraftStore),
	}
	m.factory.On("Create").Return(m.uow)
	m.uow.On("DeliveryFeeRepository").Return(m.repo)
	return m
}

func ptr[T any](v T) *T {
	return &v
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
