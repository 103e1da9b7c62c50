package queries_test

import (
	"context"

	"backoffice/internal/core/domain/model/deliveryfee"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/report"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryFeeRepository struct {
	mock.Mock
}

func (m *MockDeliveryFeeRepository) Get(ctx context.Context, id kernel.UUID) (deliveryfee.Config, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(deliveryfee.Config), args.Error(1)
}

func (m *MockDeliveryFeeRepository) ApplyPatch(ctx context.Context, id kernel.UUID, patch deliveryfee.Patch) error {
	return m.Called(ctx, id, patch).Error(0)
}

type MockDraftStore struct {
	mock.Mock
}

func (m *MockDraftStore) Load(ctx context.Context, key ports.DraftKey) (*deliveryfee.Editor, bool, error) {
	args := m.Called(ctx, key)
	editor, _ := args.Get(0).(*deliveryfee.Editor)
	return editor, args.Bool(1), args.Error(2)
}

func (m *MockDraftStore) Save(ctx context.Context, key ports.DraftKey, editor *deliveryfee.Editor) error {
	return m.Called(ctx, key, editor).Error(0)
}

func (m *MockDraftStore) Delete(ctx context.Context, key ports.DraftKey) error {
	return m.Called(ctx, key).Error(0)
}

type MockBoardCache struct {
	mock.Mock
}

func (m *MockBoardCache) Get(ctx context.Context, id kernel.UUID) (report.Board, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(report.Board), args.Bool(1), args.Error(2)
}

func (m *MockBoardCache) Set(ctx context.Context, board report.Board) error {
	return m.Called(ctx, board).Error(0)
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
