package websocket

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(hub *Hub) *Client {
	return newClient(hub, nil, newTestLogger())
}

func TestHub_Publish(t *testing.T) {
	t.Run("Delivers the update to watchers of the game only", func(t *testing.T) {
		// Given: one watcher of g1 and one watcher of g2
		hub := NewHub(newTestLogger())
		watcher, other := newTestClient(hub), newTestClient(hub)
		hub.register(watcher)
		hub.register(other)
		hub.watch(watcher, "g1")
		hub.watch(other, "g2")

		// When: g1 is published
		hub.Publish(&entity.GameState{Game: &entity.Game{ID: "g1"}, Name: "alice vs bob"})

		// Then: only the g1 watcher receives a game:update
		require.Len(t, watcher.send, 1)
		assert.Empty(t, other.send)

		var msg Message
		require.NoError(t, json.Unmarshal(<-watcher.send, &msg))
		assert.Equal(t, actionGameUpdate, msg.Action)

		var payload Payload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		require.NotNil(t, payload.Game)
		assert.Equal(t, "g1", payload.Game.Game.ID)
		assert.Equal(t, "alice vs bob", payload.Game.Name)
	})

	t.Run("Does not block on a full send queue", func(t *testing.T) {
		// Given: a watcher whose queue is already full
		hub := NewHub(newTestLogger())
		watcher := newTestClient(hub)
		hub.register(watcher)
		hub.watch(watcher, "g1")

		for i := 0; i < sendBuffer; i++ {
			watcher.send <- []byte("{}")
		}

		// When: another update is published
		hub.Publish(&entity.GameState{Game: &entity.Game{ID: "g1"}})

		// Then: the frame is dropped
		assert.Len(t, watcher.send, sendBuffer)
	})
}

func TestHub_Unregister(t *testing.T) {
	// Given: a client watching two games
	hub := NewHub(newTestLogger())
	client := newTestClient(hub)
	hub.register(client)
	hub.watch(client, "g1")
	hub.watch(client, "g2")

	// When: the client is unregistered twice
	hub.unregister(client)
	hub.unregister(client)

	// Then: the rooms are gone and the send queue is closed
	assert.Zero(t, hub.watchers("g1"))
	assert.Zero(t, hub.watchers("g2"))

	_, open := <-client.send
	assert.False(t, open)

	// Then: an unregistered client cannot watch again
	hub.watch(client, "g1")
	assert.Zero(t, hub.watchers("g1"))
}
