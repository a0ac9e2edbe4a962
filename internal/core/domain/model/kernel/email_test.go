package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should normalize case and whitespace", func(t *testing.T) {
		email, err := kernel.NewEmail("  Jane.Doe@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", email.String())
		assert.NoError(t, email.Validate())
	})

	t.Run("case-varied inputs compare equal", func(t *testing.T) {
		first, err := kernel.NewEmail("a@x.com")
		require.NoError(t, err)
		second, err := kernel.NewEmail("A@X.com")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("empty input is required error", func(t *testing.T) {
		_, err := kernel.NewEmail("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed addresses are rejected", func(t *testing.T) {
		for _, input := range []string{
			"not-an-email",
			"@example.com",
			"user@",
			"user name@example.com",
		} {
			_, err := kernel.NewEmail(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input: %s", input)
		}
	})
}

func TestEmail_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var email kernel.Email
		require.Error(t, email.Validate())
	})
}
