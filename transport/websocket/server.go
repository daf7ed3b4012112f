package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.GameState, error)
	MakeTurn(ctx context.Context, gameID, playerID string, row, col int) (*entity.GameState, error)
	GetGame(ctx context.Context, gameID string) (*entity.GameState, error)
}

type authenticator interface {
	Authenticate(token string) (string, error)
}

type handlerFunc func(ctx context.Context, client *Client, msg *Message) error

type Server struct {
	logger *slog.Logger
	games  gameUseCase
	auth   authenticator
	hub    *Hub

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameUseCase, auth authenticator, hub *Hub) *Server {
	server := &Server{
		logger: logger,
		games:  games,
		auth:   auth,
		hub:    hub,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionGameWatch] = server.handleGameWatch
	server.handlers[actionGameJoin] = server.handleJoinGame
	server.handlers[actionGameTurn] = server.handleGameTurn

	return server
}

// Handler serves the websocket endpoint at /ws.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgrade)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start websocket server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	// hijacked connections are not tracked by Shutdown
	that.hub.closeAll()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown websocket server: %w", err)
	}

	return nil
}

func (that *Server) upgrade(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgrade")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(that.hub, conn, that.logger.With("remote", r.RemoteAddr))
	that.hub.register(client)

	log.Debug("websocket connection established", "remote", r.RemoteAddr)

	go client.writePump()
	client.readPump(r.Context(), that.dispatch)
}

func (that *Server) dispatch(ctx context.Context, client *Client, msg *Message) {
	log := that.logger.With("method", "dispatch", "action", msg.Action)

	handler, ok := that.handlers[msg.Action]
	if !ok {
		client.reply(msg.Action, Payload{Error: "unknown action"})
		return
	}

	if err := handler(ctx, client, msg); err != nil {
		log.Error("failed to process message", "error", err)
	}
}
