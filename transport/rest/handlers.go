package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/usecase"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, playersNumber int) (*entity.GameState, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.GameState, error)
	MakeTurn(ctx context.Context, gameID, playerID string, row, col int) (*entity.GameState, error)
	GetGame(ctx context.Context, gameID string) (*entity.GameState, error)
	ListOpenGames(ctx context.Context) ([]*entity.GameState, error)
	DeleteGame(ctx context.Context, gameID, playerID string) error
}

type playerUseCase interface {
	SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Player, string, error)
	SignIn(ctx context.Context, nickname, password string) (*entity.Player, string, error)
	Authenticate(token string) (string, error)
	GetPlayer(ctx context.Context, id string) (*entity.Player, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Player, error)
}

type seasonUseCase interface {
	CreateSeason(ctx context.Context, name string) (*entity.Season, error)
	GetActive(ctx context.Context) (*entity.Season, error)
	Standings(ctx context.Context, seasonID string) ([]*entity.Player, error)
}

type sessionResponse struct {
	Player      *entity.Player `json:"player"`
	AccessToken string         `json:"access_token"`
}

type signInRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

type createSeasonRequest struct {
	Name string `json:"name"`
}

type createGameRequest struct {
	PlayersNumber int `json:"players_number"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type Handlers struct {
	logger *slog.Logger

	games   gameUseCase
	players playerUseCase
	seasons seasonUseCase
}

func NewHandlers(logger *slog.Logger, games gameUseCase, players playerUseCase, seasons seasonUseCase) *Handlers {
	return &Handlers{
		logger:  logger,
		games:   games,
		players: players,
		seasons: seasons,
	}
}

// idParam returns the named path parameter, rejecting anything that is not an identifier.
func idParam(r *http.Request, name string) (string, error) {
	id := chi.URLParam(r, name)
	if !pkg.IsID(id) {
		return "", fmt.Errorf("%w: malformed %s %q", apperror.ErrInvalidInput, name, id)
	}

	return id, nil
}

func (that *Handlers) signUp(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "signUp")

	var input usecase.SignUpInput
	if err := readJSON(w, r, &input); err != nil {
		writeError(w, log, err)
		return
	}

	player, token, err := that.players.SignUp(r.Context(), input)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Player: player, AccessToken: token})
}

func (that *Handlers) signIn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "signIn")

	var input signInRequest
	if err := readJSON(w, r, &input); err != nil {
		writeError(w, log, err)
		return
	}

	player, token, err := that.players.SignIn(r.Context(), input.Nickname, input.Password)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Player: player, AccessToken: token})
}

func (that *Handlers) me(w http.ResponseWriter, r *http.Request) {
	player, err := that.players.GetPlayer(r.Context(), playerIDFromContext(r.Context()))
	if err != nil {
		writeError(w, that.logger.With("method", "me"), err)
		return
	}

	writeJSON(w, http.StatusOK, player)
}

func (that *Handlers) leaderboard(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "leaderboard")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, log, fmt.Errorf("%w: limit must be a number", apperror.ErrInvalidInput))
			return
		}

		limit = parsed
	}

	players, err := that.players.Leaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, players)
}

func (that *Handlers) createSeason(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "createSeason")

	var input createSeasonRequest
	if err := readJSON(w, r, &input); err != nil {
		writeError(w, log, err)
		return
	}

	season, err := that.seasons.CreateSeason(r.Context(), input.Name)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, season)
}

func (that *Handlers) activeSeason(w http.ResponseWriter, r *http.Request) {
	season, err := that.seasons.GetActive(r.Context())
	if err != nil {
		writeError(w, that.logger.With("method", "activeSeason"), err)
		return
	}

	writeJSON(w, http.StatusOK, season)
}

func (that *Handlers) standings(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "standings")

	seasonID, err := idParam(r, "id")
	if err != nil {
		writeError(w, log, err)
		return
	}

	players, err := that.seasons.Standings(r.Context(), seasonID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, players)
}

func (that *Handlers) createGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "createGame")

	var input createGameRequest
	if err := readJSON(w, r, &input); err != nil {
		writeError(w, log, err)
		return
	}

	state, err := that.games.CreateGame(r.Context(), input.PlayersNumber)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, state)
}

func (that *Handlers) listOpenGames(w http.ResponseWriter, r *http.Request) {
	states, err := that.games.ListOpenGames(r.Context())
	if err != nil {
		writeError(w, that.logger.With("method", "listOpenGames"), err)
		return
	}

	writeJSON(w, http.StatusOK, states)
}

func (that *Handlers) getGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getGame")

	gameID, err := idParam(r, "id")
	if err != nil {
		writeError(w, log, err)
		return
	}

	state, err := that.games.GetGame(r.Context(), gameID)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (that *Handlers) joinGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "joinGame")

	gameID, err := idParam(r, "id")
	if err != nil {
		writeError(w, log, err)
		return
	}

	state, err := that.games.JoinGame(r.Context(), gameID, playerIDFromContext(r.Context()))
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (that *Handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "makeTurn")

	gameID, err := idParam(r, "id")
	if err != nil {
		writeError(w, log, err)
		return
	}

	var input moveRequest
	if err = readJSON(w, r, &input); err != nil {
		writeError(w, log, err)
		return
	}

	if input.Row == nil || input.Col == nil {
		writeError(w, log, fmt.Errorf("%w: row and col are required", apperror.ErrInvalidInput))
		return
	}

	state, err := that.games.MakeTurn(r.Context(), gameID, playerIDFromContext(r.Context()), *input.Row, *input.Col)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (that *Handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "deleteGame")

	gameID, err := idParam(r, "id")
	if err != nil {
		writeError(w, log, err)
		return
	}

	if err = that.games.DeleteGame(r.Context(), gameID, playerIDFromContext(r.Context())); err != nil {
		writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
