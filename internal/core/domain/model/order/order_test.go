package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func mustItem(t *testing.T, productID, name string, quantity int, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(productID, name, quantity, price)
	require.NoError(t, err)
	return item
}

func mustAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("1 Main St", "Springfield", "IL", "62704", "USA")
	require.NoError(t, err)
	return address
}

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem("sku-1", "Widget", 2, 10)

		require.NoError(t, err)
		assert.Equal(t, 20.0, item.Subtotal())
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		_, err := order.NewItem("sku-1", "Widget", 0, 10)
		require.Error(t, err)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := order.NewItem("sku-1", "Widget", 1, -0.01)
		require.Error(t, err)
	})

	t.Run("missing product id and name are rejected", func(t *testing.T) {
		_, err := order.NewItem("", "", 1, 1)
		require.Error(t, err)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		address, err := order.NewAddress(" 1 Main St ", "Springfield", "IL", "62704", "USA")

		require.NoError(t, err)
		assert.Equal(t, "1 Main St", address.Street())
	})

	t.Run("every component is required", func(t *testing.T) {
		_, err := order.NewAddress("1 Main St", "", "IL", "62704", "USA")
		require.Error(t, err)

		_, err = order.NewAddress("1 Main St", "Springfield", "IL", "   ", "USA")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var address order.Address
		require.Error(t, address.Validate())
	})
}

func TestNewOrder(t *testing.T) {
	now := time.Now()

	t.Run("computes total from items", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "sku-1", "Widget", 2, 10),
			mustItem(t, "sku-2", "Gadget", 1, 5),
		}

		o, err := order.NewOrder(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			items,
			mustAddress(t),
			now,
		)

		require.NoError(t, err)
		assert.Equal(t, 25.0, o.TotalAmount())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, now, o.OrderedAt())
		assert.NoError(t, o.Validate())
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			nil,
			mustAddress(t),
			now,
		)
		require.Error(t, err)
	})

	t.Run("requires constructed id and email", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{},
			kernel.Email{},
			"Jane Doe",
			[]order.Item{mustItem(t, "sku-1", "Widget", 1, 1)},
			mustAddress(t),
			now,
		)
		require.Error(t, err)
	})

	t.Run("requires customer name and timestamp", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"   ",
			[]order.Item{mustItem(t, "sku-1", "Widget", 1, 1)},
			mustAddress(t),
			time.Time{},
		)
		require.Error(t, err)
	})

	t.Run("items accessor returns a copy", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			[]order.Item{mustItem(t, "sku-1", "Widget", 1, 1)},
			mustAddress(t),
			now,
		)
		require.NoError(t, err)

		items := o.Items()
		items[0] = order.Item{}
		assert.Equal(t, "sku-1", o.Items()[0].ProductID())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			[]order.Item{mustItem(t, "sku-1", "Widget", 1, 1)},
			mustAddress(t),
			time.Now(),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("any member of the enumeration is accepted", func(t *testing.T) {
		o := newOrder(t)

		for _, s := range []order.Status{
			order.StatusShipped,
			order.StatusPending,
			order.StatusCanceled,
			order.StatusDelivered,
			order.StatusProcessing,
		} {
			require.NoError(t, o.ChangeStatus(s))
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("out-of-enum status is rejected and state unchanged", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ChangeStatus(order.Status(99)))
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("payment status moves independently", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.StatusCanceled))
		require.NoError(t, o.ChangePaymentStatus(order.PaymentPaid))

		assert.Equal(t, order.StatusCanceled, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("invalid payment status is rejected", func(t *testing.T) {
		o := newOrder(t)
		require.Error(t, o.ChangePaymentStatus(order.PaymentUnknown))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips stored state without recomputation", func(t *testing.T) {
		orderedAt := time.Now().Add(-24 * time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			[]order.Item{mustItem(t, "sku-1", "Widget", 1, 10)},
			10,
			mustAddress(t),
			order.StatusShipped,
			order.PaymentPaid,
			orderedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, 10.0, o.TotalAmount())
		assert.Equal(t, orderedAt, o.OrderedAt())
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane Doe",
			[]order.Item{mustItem(t, "sku-1", "Widget", 1, 10)},
			10,
			mustAddress(t),
			order.StatusUnknown,
			order.PaymentPaid,
			time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil and zero-value orders are invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}
