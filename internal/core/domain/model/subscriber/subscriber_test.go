package subscriber_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/subscriber"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, raw string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func TestNewSubscriber(t *testing.T) {
	now := time.Now()

	t.Run("starts active with no unsubscribe timestamp", func(t *testing.T) {
		s, err := subscriber.NewSubscriber(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane", "Doe",
			true,
			now,
		)

		require.NoError(t, err)
		assert.True(t, s.IsActive())
		assert.True(t, s.WantsPromotions())
		assert.Nil(t, s.UnsubscribedAt())
		assert.Equal(t, now, s.SubscribedAt())
		assert.NoError(t, s.Validate())
	})

	t.Run("names are optional and trimmed", func(t *testing.T) {
		s, err := subscriber.NewSubscriber(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"  Jane  ", "",
			false,
			now,
		)

		require.NoError(t, err)
		assert.Equal(t, "Jane", s.FirstName())
		assert.Empty(t, s.LastName())
	})

	t.Run("requires constructed id and email", func(t *testing.T) {
		_, err := subscriber.NewSubscriber(
			kernel.UUID{},
			kernel.Email{},
			"Jane", "Doe",
			true,
			now,
		)
		require.Error(t, err)
	})

	t.Run("requires a subscription timestamp", func(t *testing.T) {
		_, err := subscriber.NewSubscriber(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane", "Doe",
			true,
			time.Time{},
		)
		require.Error(t, err)
	})
}

func TestSubscriber_DisplayName(t *testing.T) {
	now := time.Now()

	t.Run("uses the first name when present", func(t *testing.T) {
		s, err := subscriber.NewSubscriber(
			kernel.NewUUID(), mustEmail(t, "jane@example.com"), "Jane", "Doe", true, now)
		require.NoError(t, err)

		assert.Equal(t, "Jane", s.DisplayName())
	})

	t.Run("falls back to a generic salutation", func(t *testing.T) {
		s, err := subscriber.NewSubscriber(
			kernel.NewUUID(), mustEmail(t, "jane@example.com"), "", "Doe", true, now)
		require.NoError(t, err)

		assert.Equal(t, "Valued Customer", s.DisplayName())
	})
}

func TestSubscriber_Deactivate(t *testing.T) {
	newSubscriber := func(t *testing.T) *subscriber.Subscriber {
		t.Helper()
		s, err := subscriber.NewSubscriber(
			kernel.NewUUID(), mustEmail(t, "jane@example.com"), "Jane", "Doe", true, time.Now())
		require.NoError(t, err)
		return s
	}

	t.Run("records the unsubscribe moment", func(t *testing.T) {
		s := newSubscriber(t)
		at := time.Now()

		s.Deactivate(at)

		assert.False(t, s.IsActive())
		require.NotNil(t, s.UnsubscribedAt())
		assert.Equal(t, at, *s.UnsubscribedAt())
	})

	t.Run("second deactivation keeps the original timestamp", func(t *testing.T) {
		s := newSubscriber(t)
		first := time.Now()

		s.Deactivate(first)
		s.Deactivate(first.Add(time.Hour))

		assert.Equal(t, first, *s.UnsubscribedAt())
	})

	t.Run("activation clears the timestamp", func(t *testing.T) {
		s := newSubscriber(t)

		s.Deactivate(time.Now())
		s.Activate()

		assert.True(t, s.IsActive())
		assert.Nil(t, s.UnsubscribedAt())
	})
}

func TestSubscriber_Update(t *testing.T) {
	s, err := subscriber.NewSubscriber(
		kernel.NewUUID(), mustEmail(t, "jane@example.com"), "Jane", "Doe", true, time.Now())
	require.NoError(t, err)

	s.Rename(" Janet ", " Smith ")
	s.SetPromotionalOptIn(false)

	assert.Equal(t, "Janet", s.FirstName())
	assert.Equal(t, "Smith", s.LastName())
	assert.False(t, s.WantsPromotions())
}

func TestRestoreSubscriber(t *testing.T) {
	t.Run("round-trips stored state", func(t *testing.T) {
		subscribedAt := time.Now().Add(-48 * time.Hour)
		unsubscribedAt := time.Now().Add(-time.Hour)

		s, err := subscriber.RestoreSubscriber(
			kernel.NewUUID(),
			mustEmail(t, "jane@example.com"),
			"Jane", "Doe",
			false,
			true,
			subscribedAt,
			&unsubscribedAt,
		)

		require.NoError(t, err)
		assert.False(t, s.IsActive())
		require.NotNil(t, s.UnsubscribedAt())
		assert.Equal(t, unsubscribedAt, *s.UnsubscribedAt())
		assert.Equal(t, subscribedAt, s.SubscribedAt())
	})
}

func TestSubscriber_Validate(t *testing.T) {
	t.Run("nil and zero-value subscribers are invalid", func(t *testing.T) {
		var s *subscriber.Subscriber
		require.ErrorIs(t, s.Validate(), subscriber.ErrSubscriberIsNotConstructed)
		require.ErrorIs(t,
			(&subscriber.Subscriber{}).Validate(), subscriber.ErrSubscriberIsNotConstructed)
	})
}
