package commands_test

import (
	"context"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/report"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, id kernel.UUID) (map[order.Status]int, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int), args.Error(1)
}

func (m *MockOrderRepository) EstablishmentsWithOrders(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockOrderHistoryRepository struct{ mock.Mock }

func (m *MockOrderHistoryRepository) Append(ctx context.Context, entry order.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOrderHistoryRepository) ListByOrder(ctx context.Context, id kernel.UUID) ([]order.HistoryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.HistoryEntry), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) OrderHistoryRepository() ports.OrderHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderHistoryRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryFeeRepository struct{ mock.Mock }

func (m *MockDeliveryFeeRepository) Get(ctx context.Context, id kernel.UUID) (deliveryfee.Config, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(deliveryfee.Config), args.Error(1)
}

func (m *MockDeliveryFeeRepository) ApplyPatch(ctx context.Context, id kernel.UUID, patch deliveryfee.Patch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

type MockDeliveryFeeUoW struct{ mock.Mock }

func (m *MockDeliveryFeeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryFeeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryFeeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryFeeUoW) DeliveryFeeRepository() ports.DeliveryFeeRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryFeeRepository)
}

type MockDeliveryFeeUoWFactory struct{ mock.Mock }

func (m *MockDeliveryFeeUoWFactory) Create() commands.DeliveryFeeUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryFeeUoW)
}

type MockDraftStore struct{ mock.Mock }

func (m *MockDraftStore) Load(ctx context.Context, key ports.DraftKey) (*deliveryfee.Editor, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*deliveryfee.Editor), args.Bool(1), args.Error(2)
}

func (m *MockDraftStore) Save(ctx context.Context, key ports.DraftKey, editor *deliveryfee.Editor) error {
	args := m.Called(ctx, key, editor)
	return args.Error(0)
}

func (m *MockDraftStore) Delete(ctx context.Context, key ports.DraftKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockBoardCache struct{ mock.Mock }

func (m *MockBoardCache) Get(ctx context.Context, id kernel.UUID) (report.Board, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(report.Board), args.Bool(1), args.Error(2)
}

func (m *MockBoardCache) Set(ctx context.Context, board report.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}
