package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			testItems(t),
			testAddress(t),
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Len(t, cmd.Items(), 1)
	})

	t.Run("requires items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			nil,
			testAddress(t),
		)
		require.Error(t, err)
	})

	t.Run("rejects unconstructed value objects", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{},
			kernel.Email{},
			"Jane Doe",
			testItems(t),
			order.Address{},
		)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
