package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/tictactoe"
)

type gameRepoDep interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	SaveJoin(ctx context.Context, game *entity.Game, playerID string) error
	SaveTurn(ctx context.Context, game *entity.Game, move *entity.Move, awards map[string]int) error
	DeleteByID(ctx context.Context, id string) error
	ListOpen(ctx context.Context) ([]*entity.Game, error)
	ListFinishedBefore(ctx context.Context, before time.Time) ([]string, error)
}

type moveRepoDep interface {
	ListByGame(ctx context.Context, gameID string) ([]*entity.Move, error)
}

type playerRepoDep interface {
	Create(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.Player, error)
	GetMany(ctx context.Context, ids []string) ([]*entity.Player, error)
	Top(ctx context.Context, limit int) ([]*entity.Player, error)
}

type seasonRepoDep interface {
	Create(ctx context.Context, season *entity.Season) error
	GetByID(ctx context.Context, id string) (*entity.Season, error)
	GetActive(ctx context.Context) (*entity.Season, error)
	ListPlayerIDs(ctx context.Context, seasonID string) ([]string, error)
}

type lockerDep interface {
	Lock(ctx context.Context, gameID string) (func(ctx context.Context) error, error)
}

// notifierDep receives the state of a game after every committed join or move.
type notifierDep interface {
	Publish(state *entity.GameState)
}

type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepoDep
	moveRepo   moveRepoDep
	playerRepo playerRepoDep
	seasonRepo seasonRepoDep
	locker     lockerDep
	notifier   notifierDep

	controller *tictactoe.GameController
	now        func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	gameRepo gameRepoDep,
	moveRepo moveRepoDep,
	playerRepo playerRepoDep,
	seasonRepo seasonRepoDep,
	locker lockerDep,
	notifier notifierDep,
	controller *tictactoe.GameController,
) *GameManager {
	return &GameManager{
		logger: logger,

		gameRepo:   gameRepo,
		moveRepo:   moveRepo,
		playerRepo: playerRepo,
		seasonRepo: seasonRepo,
		locker:     locker,
		notifier:   notifier,

		controller: controller,
		now:        time.Now,
	}
}

// CreateGame creates an empty game in the active season.
func (that *GameManager) CreateGame(ctx context.Context, playersNumber int) (*entity.GameState, error) {
	log := that.logger.With("method", "CreateGame")

	season, err := that.seasonRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}

	game, err := that.controller.NewGame(playersNumber, season.ID)
	if err != nil {
		return nil, err
	}

	if err = that.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "playersNumber", playersNumber)

	return that.buildState(ctx, game, nil, nil)
}

// JoinGame seats the player. Joins and moves of one game never run concurrently.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.GameState, error) {
	log := that.logger.With("method", "JoinGame", "gameID", gameID, "playerID", playerID)

	if _, err := that.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	unlock, err := that.locker.Lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer that.release(ctx, log, unlock)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	mark, err := that.controller.Join(game, playerID)
	if err != nil {
		log.Info("join rejected", "error", err)
		return nil, err
	}

	if err = that.gameRepo.SaveJoin(ctx, game, playerID); err != nil {
		log.Error("failed to save join", "error", err)
		return nil, fmt.Errorf("failed to save join: %w", err)
	}

	log.Info("player joined game", "mark", mark)

	moves, err := that.moveRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	state, err := that.buildState(ctx, game, moves, nil)
	if err != nil {
		return nil, err
	}

	that.publish(state)

	return state, nil
}

// MakeTurn places the player's mark. The move, the turn order, the status and the ranks
// are committed together or not at all.
func (that *GameManager) MakeTurn(ctx context.Context, gameID, playerID string, row, col int) (*entity.GameState, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID, "playerID", playerID)

	unlock, err := that.locker.Lock(ctx, gameID)
	if err != nil {
		return nil, err
	}
	defer that.release(ctx, log, unlock)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	moves, err := that.moveRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	ledger, err := tictactoe.NewLedger(gameID, moves)
	if err != nil {
		return nil, fmt.Errorf("failed to restore moves: %w", err)
	}

	result, err := that.controller.MakeTurn(game, ledger, playerID, row, col)
	if err != nil {
		log.Info("move rejected", "row", row, "col", col, "error", err)
		return nil, err
	}

	result.Move.ID = pkg.NewID()

	var awards map[string]int
	if result.Finished {
		if awards, err = that.controller.AwardRanks(game); err != nil {
			return nil, fmt.Errorf("failed to award ranks: %w", err)
		}
	}

	if err = that.gameRepo.SaveTurn(ctx, game, result.Move, awards); err != nil {
		log.Error("failed to save turn", "error", err)
		return nil, fmt.Errorf("failed to save turn: %w", err)
	}

	if result.Finished {
		log.Info("game finished", "winnerID", game.WinnerID)
	} else {
		log.Debug("move accepted", "row", row, "col", col)
	}

	state, err := that.buildState(ctx, game, ledger.Moves(), result.Move)
	if err != nil {
		return nil, err
	}

	that.publish(state)

	return state, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.GameState, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	moves, err := that.moveRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	return that.buildState(ctx, game, moves, nil)
}

// ListOpenGames returns games with free seats, limited to the active season when there is one.
func (that *GameManager) ListOpenGames(ctx context.Context) ([]*entity.GameState, error) {
	games, err := that.gameRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open games: %w", err)
	}

	seasonID := ""
	season, err := that.seasonRepo.GetActive(ctx)
	switch {
	case err == nil:
		seasonID = season.ID
	case !errors.Is(err, apperror.ErrNoActiveSeason):
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}

	states := make([]*entity.GameState, 0, len(games))
	for _, game := range games {
		if seasonID != "" && game.SeasonID != seasonID {
			continue
		}

		state, err := that.buildState(ctx, game, nil, nil)
		if err != nil {
			return nil, err
		}

		states = append(states, state)
	}

	return states, nil
}

// DeleteGame removes a game on behalf of one of its participants. A game in progress,
// with every seat taken and free cells left, cannot be deleted.
func (that *GameManager) DeleteGame(ctx context.Context, gameID, playerID string) error {
	log := that.logger.With("method", "DeleteGame", "gameID", gameID, "playerID", playerID)

	unlock, err := that.locker.Lock(ctx, gameID)
	if err != nil {
		return err
	}
	defer that.release(ctx, log, unlock)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get game by id: %w", err)
	}

	if !game.IsParticipant(playerID) {
		return fmt.Errorf("%w: %s", apperror.ErrNotParticipant, playerID)
	}

	if !game.IsFinished() && !game.IsOpen() {
		moves, err := that.moveRepo.ListByGame(ctx, gameID)
		if err != nil {
			return fmt.Errorf("failed to list moves: %w", err)
		}

		if len(moves) < game.Size()*game.Size() {
			return apperror.ErrGameInProgress
		}
	}

	if err = that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

// CleanupFinishedGames deletes games finished more than retention ago and returns how many were removed.
func (that *GameManager) CleanupFinishedGames(ctx context.Context, retention time.Duration) (int, error) {
	log := that.logger.With("method", "CleanupFinishedGames")

	ids, err := that.gameRepo.ListFinishedBefore(ctx, that.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to list finished games: %w", err)
	}

	deleted := 0
	for _, id := range ids {
		if err = that.deleteFinished(ctx, id); err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				continue
			}

			log.Error("failed to delete finished game", "gameID", id, "error", err)
			continue
		}

		deleted++
	}

	if deleted > 0 {
		log.Info("finished games removed", "count", deleted)
	}

	return deleted, nil
}

func (that *GameManager) deleteFinished(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "deleteFinished", "gameID", gameID)

	unlock, err := that.locker.Lock(ctx, gameID)
	if err != nil {
		return err
	}
	defer that.release(ctx, log, unlock)

	if err = that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *GameManager) buildState(ctx context.Context, game *entity.Game, moves []*entity.Move, last *entity.Move) (*entity.GameState, error) {
	if moves == nil {
		moves = []*entity.Move{}
	}

	players, err := that.playerRepo.GetMany(ctx, game.Players)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	nicknames := make(map[string]string, len(players))
	for _, player := range players {
		nicknames[player.ID] = player.Nickname
	}

	state := &entity.GameState{
		Game:         game,
		Name:         game.Name(nicknames),
		Participants: game.Participants(nicknames),
		Moves:        moves,
		Board:        entity.Board(game.Size(), moves),
		LastMove:     last,
	}

	if !game.IsFinished() {
		state.NextPlayerID, _ = tictactoe.CurrentTurn(game)
	}

	return state, nil
}

func (that *GameManager) publish(state *entity.GameState) {
	if that.notifier == nil {
		return
	}

	that.notifier.Publish(state)
}

func (that *GameManager) release(ctx context.Context, log *slog.Logger, unlock func(ctx context.Context) error) {
	// the lock must be released even when the request context is gone
	if err := unlock(context.WithoutCancel(ctx)); err != nil {
		log.Error("failed to release game lock", "error", err)
	}
}
