package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) CountItemsByVariant(ctx context.Context, variantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, variantID)
	return args.Get(0).(int64), args.Error(1)
}

func testOrder(t *testing.T, userID uuid.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(uuid.New(), 2, valueobject.NewMoneyUSDFromInt(12500))
	require.NoError(t, err)
	o, err := order.NewOrder("JF-TEST-0001", userID, "jane@example.com", uuid.New(),
		[]order.Item{*item}, valueobject.NewMoneyUSDFromInt(3500), valueobject.ZeroUSD())
	require.NoError(t, err)
	return o
}

func TestListByUser(t *testing.T) {
	repo := new(MockOrderRepository)
	userID := uuid.New()
	o := testOrder(t, userID)

	repo.On("FindByUser", mock.Anything, userID, mock.AnythingOfType("shared.Filter")).Return([]order.Order{*o}, nil)
	repo.On("CountByUser", mock.Anything, userID).Return(int64(1), nil)

	service := NewService(repo, nil)
	orders, total, err := service.ListByUser(context.Background(), userID, 1, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, "JF-TEST-0001", orders[0].OrderNumber)
	assert.Equal(t, 1, orders[0].ItemCount)
}

func TestGetForUser_OtherUsersOrderHidden(t *testing.T) {
	repo := new(MockOrderRepository)
	owner := uuid.New()
	o := testOrder(t, owner)

	repo.On("FindByOrderNumber", mock.Anything, "JF-TEST-0001").Return(o, nil)

	service := NewService(repo, nil)

	_, err := service.GetForUser(context.Background(), uuid.New(), "JF-TEST-0001")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	response, err := service.GetForUser(context.Background(), owner, "JF-TEST-0001")
	require.NoError(t, err)
	assert.Equal(t, "JF-TEST-0001", response.OrderNumber)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo := new(MockOrderRepository)
	o := testOrder(t, uuid.New())

	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	repo.On("Save", mock.Anything, o).Return(nil)

	service := NewService(repo, nil)
	response, err := service.UpdateStatus(context.Background(), o.ID, UpdateStatusRequest{Status: "PROCESSING"})

	require.NoError(t, err)
	assert.Equal(t, "PROCESSING", response.Status)
}

func TestUpdateStatus_InvalidTransitionRejected(t *testing.T) {
	repo := new(MockOrderRepository)
	o := testOrder(t, uuid.New())

	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	service := NewService(repo, nil)
	_, err := service.UpdateStatus(context.Background(), o.ID, UpdateStatusRequest{Status: "DELIVERED"})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateNotes(t *testing.T) {
	repo := new(MockOrderRepository)
	o := testOrder(t, uuid.New())

	repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	repo.On("Save", mock.Anything, o).Return(nil)

	service := NewService(repo, nil)
	response, err := service.UpdateNotes(context.Background(), o.ID, UpdateNotesRequest{Notes: "gift wrap"})

	require.NoError(t, err)
	assert.Equal(t, "gift wrap", response.Notes)
}
