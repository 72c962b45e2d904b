package hub

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pickone/faceoff/internal/room"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return New(ctx, 0, nil)
}

func TestHubCreateThenGetSameRoom(t *testing.T) {
	h := newTestHub(t)

	created, err := h.Create("GAME42", []string{"a", "b"}, room.Player{ID: "p1", Name: "Alice"})
	require.NoError(t, err)

	got, err := h.Get("GAME42")
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestHubExplicitIDCollision(t *testing.T) {
	h := newTestHub(t)

	_, err := h.Create("GAME42", []string{"a", "b"}, room.Player{ID: "p1", Name: "Alice"})
	require.NoError(t, err)

	_, err = h.Create("GAME42", []string{"x", "y"}, room.Player{ID: "p2", Name: "Bob"})
	assert.ErrorIs(t, err, room.ErrRoomExists)

	// The losing create must not clobber the live room.
	got, err := h.Get("GAME42")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.State().CreatorID)
}

func TestHubGeneratesIDWhenEmpty(t *testing.T) {
	h := newTestHub(t)

	rm, err := h.Create("", []string{"a", "b"}, room.Player{ID: "p1", Name: "Alice"})
	require.NoError(t, err)

	id := rm.ID()
	assert.Len(t, id, roomIDLength)
	for _, c := range id {
		assert.True(t, strings.ContainsRune(roomIDCharset, c), "unexpected character %q in %q", c, id)
	}

	got, err := h.Get(id)
	require.NoError(t, err)
	assert.Same(t, rm, got)
}

func TestHubGetMissingRoom(t *testing.T) {
	h := newTestHub(t)

	_, err := h.Get("NOPE")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}

func TestHubRemoveClosesWatchers(t *testing.T) {
	h := newTestHub(t)

	rm, err := h.Create("GAME42", []string{"a", "b"}, room.Player{ID: "p1", Name: "Alice"})
	require.NoError(t, err)

	ch := rm.Watch()
	<-ch // initial snapshot

	h.Inbox() <- RemoveRoom{ID: "GAME42"}

	_, open := <-ch
	assert.False(t, open, "removal should close watcher channels")

	_, err = h.Get("GAME42")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}
