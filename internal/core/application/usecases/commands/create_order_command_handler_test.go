package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		mustEmail(t, "jane@example.com"),
		"Jane Doe",
		testItems(t),
		testAddress(t),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	channel := new(MockNotificationChannel)
	channel.On("Send", ctx, "jane@example.com",
		"Your order has been placed successfully!", mock.Anything).Return(nil).Once()

	dispatcher, messages := newNotifier(t, channel)
	h := commands.NewCreateOrderCommandHandler(factory, dispatcher, messages, testLogger())

	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.StatusPending, created.Status())
	assert.Equal(t, order.PaymentPending, created.PaymentStatus())
	assert.Equal(t, 20.0, created.TotalAmount())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	channel.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotificationFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	channel := new(MockNotificationChannel)
	channel.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp: connection refused")).Once()

	dispatcher, messages := newNotifier(t, channel)
	h := commands.NewCreateOrderCommandHandler(factory, dispatcher, messages, testLogger())

	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	channel.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	channel := new(MockNotificationChannel)
	dispatcher, messages := newNotifier(t, channel)
	h := commands.NewCreateOrderCommandHandler(factory, dispatcher, messages, testLogger())

	created, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	// No notification may go out when persistence fails.
	channel.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockOrderUoWFactory)
	channel := new(MockNotificationChannel)
	dispatcher, messages := newNotifier(t, channel)
	h := commands.NewCreateOrderCommandHandler(factory, dispatcher, messages, testLogger())

	_, err := h.Handle(ctx, commands.CreateOrderCommand{})
	require.Error(t, err)
}
