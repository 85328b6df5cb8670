package history_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/blaze"
	"github.com/xy-planning-network/blaze/history"
)

// recordingStore implements history.PathStore.
type recordingStore struct {
	paths []blaze.Path
}

func (s *recordingStore) SetCurrentPath(p blaze.Path) { s.paths = append(s.paths, p) }

func TestListenerAttach(t *testing.T) {
	// Arrange
	h := history.NewMemoryHost("/")
	h.PushEntry("/about")
	store := new(recordingStore)
	l := history.NewListener(h, store, nil)

	// Act
	handle, err := l.Attach()

	// Assert
	require.Nil(t, err)
	require.True(t, l.Attached())

	// Act -- the host moves its pointer on its own
	require.True(t, h.Back())

	// Assert -- the store heard about it; no entry was pushed
	require.Equal(t, []blaze.Path{"/"}, store.paths)
	require.Equal(t, 2, h.Len())

	handle.Detach()
}

func TestListenerDuplicateAttach(t *testing.T) {
	// Arrange
	h := history.NewMemoryHost("/")
	l := history.NewListener(h, new(recordingStore), nil)
	handle, err := l.Attach()
	require.Nil(t, err)

	// Act
	_, err = l.Attach()

	// Assert
	require.ErrorIs(t, err, blaze.ErrDuplicateListener)

	// Act -- detaching frees the listener for another go
	handle.Detach()
	handle, err = l.Attach()

	// Assert
	require.Nil(t, err)
	handle.Detach()
}

func TestListenerDetachStopsSync(t *testing.T) {
	// Arrange
	h := history.NewMemoryHost("/")
	h.PushEntry("/about")
	store := new(recordingStore)
	l := history.NewListener(h, store, nil)
	handle, err := l.Attach()
	require.Nil(t, err)

	// Act
	handle.Detach()
	handle.Detach() // second detach is a no-op
	require.True(t, h.Back())

	// Assert
	require.Empty(t, store.paths)
	require.False(t, l.Attached())
}
