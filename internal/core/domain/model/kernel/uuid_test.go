package kernel_test

import (
	"testing"

	"checkout/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()

	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
}

func TestUUIDFromString(t *testing.T) {
	t.Run("valid_string_round_trips", func(t *testing.T) {
		original := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
	})

	t.Run("invalid_string_is_rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	err := zero.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
