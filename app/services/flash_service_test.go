package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFlashService(t *testing.T) {
	svc := NewMemoryFlashService()
	ctx := context.Background()

	t.Run("PopEmpty", func(t *testing.T) {
		message, err := svc.Pop(ctx, "nobody")
		require.NoError(t, err)
		assert.Equal(t, "", message)
	})

	t.Run("SetThenPopOnce", func(t *testing.T) {
		require.NoError(t, svc.Set(ctx, "client-1", "Venue X was successfully listed!"))

		message, err := svc.Pop(ctx, "client-1")
		require.NoError(t, err)
		assert.Equal(t, "Venue X was successfully listed!", message)

		// A flash message is consumed by reading it
		message, err = svc.Pop(ctx, "client-1")
		require.NoError(t, err)
		assert.Equal(t, "", message)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		require.NoError(t, svc.Set(ctx, "a", "for a"))
		require.NoError(t, svc.Set(ctx, "b", "for b"))

		message, err := svc.Pop(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, "for b", message)

		message, err = svc.Pop(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "for a", message)
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		require.NoError(t, svc.Set(ctx, "c", "first"))
		require.NoError(t, svc.Set(ctx, "c", "second"))

		message, err := svc.Pop(ctx, "c")
		require.NoError(t, err)
		assert.Equal(t, "second", message)
	})
}
