package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/subscriber"
	"storefront/internal/core/ports"
	"storefront/internal/core/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func (m *MockOrderRepository) GetByCustomerEmail(
	ctx context.Context, email kernel.Email,
) ([]*order.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSubscriberRepository struct{ mock.Mock }

func (m *MockSubscriberRepository) Add(ctx context.Context, s *subscriber.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriberRepository) Update(ctx context.Context, s *subscriber.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriberRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*subscriber.Subscriber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriber.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) GetByEmail(
	ctx context.Context, email kernel.Email,
) (*subscriber.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscriber.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) GetAllActive(
	ctx context.Context, wantsPromotions *bool,
) ([]*subscriber.Subscriber, error) {
	args := m.Called(ctx, wantsPromotions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriber.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) GetActiveByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*subscriber.Subscriber, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscriber.Subscriber), args.Error(1)
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

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSubscriberUoW struct{ mock.Mock }

func (m *MockSubscriberUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubscriberUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubscriberUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubscriberUoW) SubscriberRepository() ports.SubscriberRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriberRepository)
}

type MockSubscriberUoWFactory struct{ mock.Mock }

func (m *MockSubscriberUoWFactory) Create() commands.SubscriberUoW {
	args := m.Called()
	return args.Get(0).(commands.SubscriberUoW)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ListDiscounted(ctx context.Context) ([]ports.DiscountedProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.DiscountedProduct), args.Error(1)
}

type MockNotificationChannel struct{ mock.Mock }

func (m *MockNotificationChannel) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// Test fixtures shared by the handler tests.

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newNotifier(t *testing.T, channel ports.NotificationChannel) (*services.Dispatcher, *services.MessageFactory) {
	t.Helper()
	messages, err := services.NewMessageFactory()
	require.NoError(t, err)
	return services.NewDispatcher(channel, testLogger()), messages
}

func mustEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("sku-1", "Widget", 2, 10)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62704", "USA")
	require.NoError(t, err)
	return address
}

func storedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		id,
		mustEmail(t, "jane@example.com"),
		"Jane Doe",
		testItems(t),
		20,
		testAddress(t),
		order.StatusPending,
		order.PaymentPending,
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func storedSubscriber(t *testing.T, id kernel.UUID, email string) *subscriber.Subscriber {
	t.Helper()
	s, err := subscriber.RestoreSubscriber(
		id,
		mustEmail(t, email),
		"Jane", "Doe",
		true,
		true,
		time.Now().Add(-time.Hour),
		nil,
	)
	require.NoError(t, err)
	return s
}

func testProducts() []ports.DiscountedProduct {
	return []ports.DiscountedProduct{
		{
			Name:          "Premium Headphones",
			OriginalPrice: 199.99,
			DiscountPrice: 149.99,
			Description:   "Noise-cancelling wireless headphones.",
		},
	}
}
