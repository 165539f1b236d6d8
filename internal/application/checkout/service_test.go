package checkout

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jadefire/storefront/internal/domain/cart"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/domain/shared"
	"github.com/jadefire/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	store      *MockCartStore
	products   *MockProductRepository
	variants   *MockVariantRepository
	categories *MockCategoryRepository
	orders     *MockOrderRepository
	addresses  *MockAddressRepository
	service    *Service
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		store:      new(MockCartStore),
		products:   new(MockProductRepository),
		variants:   new(MockVariantRepository),
		categories: new(MockCategoryRepository),
		orders:     new(MockOrderRepository),
		addresses:  new(MockAddressRepository),
	}
	resolver := NewResolver(f.products, f.variants, f.categories, nil)
	policy := order.NewPricingPolicy(50000, 3500, 0)
	f.service = NewService(f.store, resolver, f.orders, f.addresses, passthroughTxManager{}, policy, nil)
	return f
}

func moneyFromInt(amount int64) valueobject.Money {
	return valueobject.NewMoneyUSDFromInt(amount)
}

func validSubmitRequest() SubmitRequest {
	return SubmitRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Street:    "1 Main St",
		City:      "Springfield",
		State:     "IL",
	}
}

func cartWith(t *testing.T, lines ...cart.Line) *cart.Cart {
	t.Helper()
	c := cart.New()
	for _, line := range lines {
		require.NoError(t, c.AddItem(line.Product, line.Quantity, line.Size))
	}
	return c
}

func TestSubmit_MaterializesOrderWithServerComputedTotals(t *testing.T) {
	f := newCheckoutFixture()
	userID := uuid.New()

	product := testProduct(t, "hoodie", "M")
	line := testLine("hoodie", "M", 12500)
	line.Quantity = 2

	f.store.On("Load", mock.Anything, "session-1").Return(cartWith(t, line), nil)
	f.products.On("FindBySlug", mock.Anything, "hoodie").Return(product, nil)
	f.addresses.On("Save", mock.Anything, mock.AnythingOfType("*order.Address")).Return(nil)

	var saved *order.Order
	f.orders.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil)
	f.store.On("Delete", mock.Anything, "session-1").Return(nil)

	response, err := f.service.Submit(context.Background(), "session-1", userID, validSubmitRequest())
	require.NoError(t, err)

	assert.True(t, response.Subtotal.Equal(decimal.NewFromInt(25000)))
	assert.True(t, response.Shipping.Equal(decimal.NewFromInt(3500)))
	assert.True(t, response.Tax.Equal(decimal.Zero))
	assert.True(t, response.Total.Equal(decimal.NewFromInt(28500)))
	assert.Equal(t, order.StatusPending.String(), response.Status)
	assert.True(t, strings.HasPrefix(response.OrderNumber, order.OrderNumberPrefix+"-"))

	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, 2, saved.Items[0].Quantity)

	f.store.AssertCalled(t, "Delete", mock.Anything, "session-1")
}

func TestSubmit_FreeShippingAtThreshold(t *testing.T) {
	f := newCheckoutFixture()

	product := testProduct(t, "coat", "M")
	line := testLine("coat", "M", 50000)

	f.store.On("Load", mock.Anything, "session-1").Return(cartWith(t, line), nil)
	f.products.On("FindBySlug", mock.Anything, "coat").Return(product, nil)
	f.addresses.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.orders.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.store.On("Delete", mock.Anything, "session-1").Return(nil)

	response, err := f.service.Submit(context.Background(), "session-1", uuid.New(), validSubmitRequest())
	require.NoError(t, err)

	assert.True(t, response.Shipping.Equal(decimal.Zero))
	assert.True(t, response.Total.Equal(decimal.NewFromInt(50000)))
}

func TestSubmit_ShippingChargedOneBelowThreshold(t *testing.T) {
	f := newCheckoutFixture()

	product := testProduct(t, "coat", "M")
	line := testLine("coat", "M", 49999)

	f.store.On("Load", mock.Anything, "session-1").Return(cartWith(t, line), nil)
	f.products.On("FindBySlug", mock.Anything, "coat").Return(product, nil)
	f.addresses.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.orders.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.store.On("Delete", mock.Anything, "session-1").Return(nil)

	response, err := f.service.Submit(context.Background(), "session-1", uuid.New(), validSubmitRequest())
	require.NoError(t, err)

	assert.True(t, response.Shipping.Equal(decimal.NewFromInt(3500)))
	assert.True(t, response.Total.Equal(decimal.NewFromInt(53499)))
}

func TestSubmit_CapturesSnapshotPriceNotLivePrice(t *testing.T) {
	f := newCheckoutFixture()

	// Live catalog price has drifted since the item was carted.
	product := testProduct(t, "hoodie", "M")
	line := testLine("hoodie", "M", 9999)

	f.store.On("Load", mock.Anything, "session-1").Return(cartWith(t, line), nil)
	f.products.On("FindBySlug", mock.Anything, "hoodie").Return(product, nil)
	f.addresses.On("Save", mock.Anything, mock.Anything).Return(nil)

	var saved *order.Order
	f.orders.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil)
	f.store.On("Delete", mock.Anything, "session-1").Return(nil)

	_, err := f.service.Submit(context.Background(), "session-1", uuid.New(), validSubmitRequest())
	require.NoError(t, err)

	require.NotNil(t, saved)
	require.Len(t, saved.Items, 1)
	assert.True(t, saved.Items[0].Price.Equal(decimal.NewFromInt(9999)),
		"order item must carry the carted price, not the live variant price")
}

func TestSubmit_EmptyCartRejected(t *testing.T) {
	f := newCheckoutFixture()

	f.store.On("Load", mock.Anything, "session-1").Return(cart.New(), nil)

	_, err := f.service.Submit(context.Background(), "session-1", uuid.New(), validSubmitRequest())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMPTY_CART", domainErr.Code)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubmit_InvalidAddressAbortsBeforeOrder(t *testing.T) {
	f := newCheckoutFixture()

	line := testLine("hoodie", "M", 12500)
	f.store.On("Load", mock.Anything, "session-1").Return(cartWith(t, line), nil)

	req := validSubmitRequest()
	req.City = ""

	_, err := f.service.Submit(context.Background(), "session-1", uuid.New(), req)
	require.Error(t, err)
	f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestConfirmation_OtherUsersOrderHidden(t *testing.T) {
	f := newCheckoutFixture()

	owner := uuid.New()
	item, err := order.NewItem(uuid.New(), 1, moneyFromInt(2500))
	require.NoError(t, err)
	o, err := order.NewOrder("JF-TEST-0001", owner, "jane@example.com", uuid.New(), []order.Item{*item}, moneyFromInt(3500), moneyFromInt(0))
	require.NoError(t, err)

	f.orders.On("FindByOrderNumber", mock.Anything, "JF-TEST-0001").Return(o, nil)

	_, err = f.service.Confirmation(context.Background(), uuid.New(), "JF-TEST-0001")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	response, err := f.service.Confirmation(context.Background(), owner, "JF-TEST-0001")
	require.NoError(t, err)
	assert.Equal(t, "JF-TEST-0001", response.OrderNumber)
}
