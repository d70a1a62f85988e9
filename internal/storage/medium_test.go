package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMedium(t *testing.T) {
	t.Run("get missing key", func(t *testing.T) {
		m := NewMemoryMedium(0)

		value, ok, err := m.Get("missing")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set replaces value and tracks usage", func(t *testing.T) {
		m := NewMemoryMedium(0)

		require.NoError(t, m.Set("k", "abc"))
		assert.Equal(t, 4, m.Used())

		require.NoError(t, m.Set("k", "a"))
		assert.Equal(t, 2, m.Used())

		value, ok, err := m.Get("k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a", value)
	})

	t.Run("quota rejects growth and keeps old value", func(t *testing.T) {
		m := NewMemoryMedium(10)
		require.NoError(t, m.Set("k", "12345"))

		err := m.Set("k", "1234567890")

		assert.ErrorIs(t, err, ErrQuotaExceeded)
		value, _, _ := m.Get("k")
		assert.Equal(t, "12345", value)
		assert.Equal(t, 6, m.Used())
	})

	t.Run("remove frees space and is idempotent", func(t *testing.T) {
		m := NewMemoryMedium(10)
		require.NoError(t, m.Set("k", "12345"))

		require.NoError(t, m.Remove("k"))
		require.NoError(t, m.Remove("k"))

		assert.Zero(t, m.Used())
		assert.NoError(t, m.Set("j", "123456789"))
	})
}
