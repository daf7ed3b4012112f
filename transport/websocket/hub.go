package websocket

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

// Hub tracks connected clients and the games each of them watches.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

// Publish sends a game:update to every watcher of the game. Slow watchers miss the frame.
func (that *Hub) Publish(state *entity.GameState) {
	log := that.logger.With("method", "Publish", "gameID", state.Game.ID)

	frame, err := encode(actionGameUpdate, Payload{Game: state})
	if err != nil {
		log.Error("failed to encode game state", "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for client := range that.rooms[state.Game.ID] {
		select {
		case client.send <- frame:
		default:
			log.Warn("watcher send queue is full, skipping", "playerID", client.PlayerID())
		}
	}
}

func (that *Hub) register(client *Client) {
	that.mu.Lock()
	that.clients[client] = struct{}{}
	that.mu.Unlock()
}

// watch subscribes a registered client to one game.
func (that *Hub) watch(client *Client, gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[client]; !ok {
		return
	}

	room, ok := that.rooms[gameID]
	if !ok {
		room = make(map[*Client]struct{})
		that.rooms[gameID] = room
	}

	room[client] = struct{}{}
}

func (that *Hub) watchers(gameID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms[gameID])
}

// unregister drops the client from every room and closes its send queue once.
func (that *Hub) unregister(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[client]; !ok {
		return
	}

	delete(that.clients, client)

	for gameID, room := range that.rooms {
		delete(room, client)
		if len(room) == 0 {
			delete(that.rooms, gameID)
		}
	}

	close(client.send)
}

// closeAll closes every connection; the read pumps then unregister their clients.
func (that *Hub) closeAll() {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for client := range that.clients {
		if client.conn != nil {
			_ = client.conn.Close()
		}
	}
}
