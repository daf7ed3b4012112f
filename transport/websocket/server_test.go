package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

type authStub struct{}

func (authStub) Authenticate(token string) (string, error) {
	if token == "" || !strings.HasPrefix(token, "token-") {
		return "", apperror.ErrInvalidToken
	}

	return strings.TrimPrefix(token, "token-"), nil
}

// gamesStub publishes every committed change the way the game manager does.
type gamesStub struct {
	hub *Hub

	mu    sync.Mutex
	state *entity.GameState
}

func (that *gamesStub) snapshot() *entity.GameState {
	game := *that.state.Game
	game.Players = slices.Clone(game.Players)

	return &entity.GameState{Game: &game}
}

func (that *gamesStub) GetGame(_ context.Context, gameID string) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if gameID != that.state.Game.ID {
		return nil, apperror.ErrNotFound
	}

	return that.snapshot(), nil
}

func (that *gamesStub) JoinGame(_ context.Context, gameID, playerID string) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if gameID != that.state.Game.ID {
		return nil, apperror.ErrNotFound
	}

	that.state.Game.Players = append(that.state.Game.Players, playerID)
	state := that.snapshot()
	that.hub.Publish(state)

	return state, nil
}

func (that *gamesStub) MakeTurn(_ context.Context, _, playerID string, _, _ int) (*entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if playerID != "alice" {
		return nil, &apperror.OutOfTurnError{PlayerID: playerID, NextPlayerID: "alice"}
	}

	state := that.snapshot()
	that.hub.Publish(state)

	return state, nil
}

func startServer(t *testing.T) (*httptest.Server, *Hub) {
	t.Helper()

	hub := NewHub(newTestLogger())
	games := &gamesStub{
		hub:   hub,
		state: &entity.GameState{Game: &entity.Game{ID: "g1", PlayersNumber: 2}},
	}

	srv := httptest.NewServer(New(newTestLogger(), games, authStub{}, hub).Handler())
	t.Cleanup(srv.Close)

	return srv, hub
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload Payload) {
	t.Helper()

	frame, err := encode(action, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
}

func receive(t *testing.T, conn *websocket.Conn) (string, Payload) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))

	var payload Payload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	return msg.Action, payload
}

func intPtr(v int) *int {
	return &v
}

func TestServer_Connect(t *testing.T) {
	srv, _ := startServer(t)

	t.Run("Resolves the token to a player id", func(t *testing.T) {
		conn := dial(t, srv)

		// When: the client connects with a valid token
		send(t, conn, actionConnect, Payload{Token: "token-alice"})

		// Then: the player id is returned
		action, payload := receive(t, conn)
		assert.Equal(t, actionConnect, action)
		assert.Equal(t, "alice", payload.PlayerID)
		assert.Empty(t, payload.Error)
	})

	t.Run("Rejects an invalid token", func(t *testing.T) {
		conn := dial(t, srv)

		// When: the client connects with a bad token
		send(t, conn, actionConnect, Payload{Token: "nope"})

		// Then: an error is returned
		_, payload := receive(t, conn)
		assert.Equal(t, apperror.ErrInvalidToken.Error(), payload.Error)
	})

	t.Run("Answers unknown actions with an error", func(t *testing.T) {
		conn := dial(t, srv)

		// When: an unknown action is sent
		send(t, conn, "game:dance", Payload{})

		// Then: the error echoes the action
		action, payload := receive(t, conn)
		assert.Equal(t, "game:dance", action)
		assert.Equal(t, "unknown action", payload.Error)
	})
}

func TestServer_GameFlow(t *testing.T) {
	srv, hub := startServer(t)

	// Given: a watcher and a connected player
	watcher := dial(t, srv)
	send(t, watcher, actionGameWatch, Payload{GameID: "g1"})
	action, payload := receive(t, watcher)
	require.Equal(t, actionGameWatch, action)
	require.NotNil(t, payload.Game)

	player := dial(t, srv)
	send(t, player, actionConnect, Payload{Token: "token-bob"})
	_, _ = receive(t, player)

	t.Run("Join is broadcast to watchers", func(t *testing.T) {
		// When: bob joins
		send(t, player, actionGameJoin, Payload{GameID: "g1"})

		// Then: the watcher gets a game:update with bob seated
		action, payload := receive(t, watcher)
		assert.Equal(t, actionGameUpdate, action)
		require.NotNil(t, payload.Game)
		assert.Contains(t, payload.Game.Game.Players, "bob")

		// Then: bob gets the join reply and watches the game from now on
		action, payload = receive(t, player)
		assert.Equal(t, actionGameJoin, action)
		require.NotNil(t, payload.Game)
		assert.Contains(t, payload.Game.Game.Players, "bob")
		assert.Equal(t, 2, hub.watchers("g1"))
	})

	t.Run("Failed join leaves no subscription", func(t *testing.T) {
		// When: bob joins a game that does not exist
		send(t, player, actionGameJoin, Payload{GameID: "g9"})

		// Then: the error is returned and bob watches nothing new
		action, payload := receive(t, player)
		assert.Equal(t, actionGameJoin, action)
		assert.Equal(t, apperror.ErrNotFound.Error(), payload.Error)
		assert.Zero(t, hub.watchers("g9"))
	})

	t.Run("Out of turn move carries the next player", func(t *testing.T) {
		// When: bob moves before alice
		send(t, player, actionGameTurn, Payload{GameID: "g1", Row: intPtr(0), Col: intPtr(0)})

		// Then: the error names alice
		action, payload := receive(t, player)
		assert.Equal(t, actionGameTurn, action)
		assert.Equal(t, "alice", payload.NextPlayerID)
		assert.NotEmpty(t, payload.Error)
	})

	t.Run("Turn requires row and col", func(t *testing.T) {
		// When: the column is missing
		send(t, player, actionGameTurn, Payload{GameID: "g1", Row: intPtr(0)})

		// Then: the move is rejected
		_, payload := receive(t, player)
		assert.Equal(t, "row and col are required", payload.Error)
	})

	t.Run("Turn requires a connected player", func(t *testing.T) {
		// When: an anonymous watcher tries to move
		send(t, watcher, actionGameTurn, Payload{GameID: "g1", Row: intPtr(0), Col: intPtr(0)})

		// Then: the move is rejected
		_, payload := receive(t, watcher)
		assert.Equal(t, apperror.ErrInvalidToken.Error(), payload.Error)
	})
}
