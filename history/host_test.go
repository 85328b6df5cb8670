package history_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/blaze/history"
)

func TestDetachHandleDetach(t *testing.T) {
	// Arrange
	var calls int
	h := history.NewDetachHandle(func() { calls++ })

	// Act + Assert -- idempotent
	require.False(t, h.Detached())
	h.Detach()
	h.Detach()
	h.Detach()
	require.True(t, h.Detached())
	require.Equal(t, 1, calls)
}

func TestDetachHandleNil(t *testing.T) {
	// Arrange
	var h *history.DetachHandle

	// Act + Assert -- no panic, reads as detached
	h.Detach()
	require.True(t, h.Detached())
}
