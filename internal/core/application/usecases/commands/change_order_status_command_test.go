package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("parses the wire name", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "shipped")

		require.NoError(t, err)
		assert.Equal(t, order.StatusShipped, cmd.Status())
	})

	t.Run("rejects out-of-enum status before any side effect", func(t *testing.T) {
		for _, input := range []string{"", "SHIPPED", "returned"} {
			_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input: %q", input)
		}
	})

	t.Run("rejects unconstructed order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "shipped")
		require.Error(t, err)
	})
}

func TestNewChangePaymentStatusCommand(t *testing.T) {
	t.Run("parses the wire name", func(t *testing.T) {
		cmd, err := commands.NewChangePaymentStatusCommand(kernel.NewUUID(), "paid")

		require.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, cmd.PaymentStatus())
	})

	t.Run("rejects out-of-enum payment status", func(t *testing.T) {
		_, err := commands.NewChangePaymentStatusCommand(kernel.NewUUID(), "declined")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
