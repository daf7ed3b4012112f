package tictactoe

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

var ErrGameNotFinished = errors.New("game is not finished")

// TurnResult is the outcome of an accepted move.
type TurnResult struct {
	Move     *entity.Move
	Finished bool
}

// GameController drives a game through its lifecycle: created -> finished.
// It works on in-memory state only; persisting the result is up to the caller.
type GameController struct {
	now func() time.Time
}

func NewGameController(now func() time.Time) *GameController {
	if now == nil {
		now = time.Now
	}

	return &GameController{now: now}
}

func (that *GameController) NewGame(playersNumber int, seasonID string) (*entity.Game, error) {
	game, err := entity.NewGame(playersNumber, seasonID, that.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// Join seats the player and returns the assigned mark.
func (that *GameController) Join(game *entity.Game, playerID string) (string, error) {
	if game.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	// capacity comes first: a member re-joining a full game gets ErrGameFull
	if len(game.Players) >= game.PlayersNumber {
		return "", fmt.Errorf("%w: %d of %d players", apperror.ErrGameFull, len(game.Players), game.PlayersNumber)
	}

	if game.IsParticipant(playerID) {
		return "", fmt.Errorf("%w: %s", apperror.ErrAlreadyJoined, playerID)
	}

	mark, err := seat(game, playerID)
	if err != nil {
		return "", err
	}

	return mark, nil
}

// MakeTurn validates and applies one move. A rejected move leaves game and ledger untouched.
func (that *GameController) MakeTurn(game *entity.Game, ledger *Ledger, playerID string, row, col int) (*TurnResult, error) {
	if err := validateMove(game, ledger, playerID, row, col); err != nil {
		return nil, err
	}

	move, err := ledger.Record(row, col, playerID, game.MarkOf(playerID))
	if err != nil {
		return nil, fmt.Errorf("failed to record move: %w", err)
	}

	Advance(game)

	if !Evaluate(game, ledger, move) {
		return &TurnResult{Move: move}, nil
	}

	game.Finish(playerID, that.now().UTC())

	return &TurnResult{Move: move, Finished: true}, nil
}

// AwardRanks returns the rank delta of every participant: WinnerRankBonus for the winner
// and ParticipantRankBonus for everyone else. Deltas are applied by the caller as increments.
func (that *GameController) AwardRanks(game *entity.Game) (map[string]int, error) {
	if !game.IsFinished() {
		return nil, ErrGameNotFinished
	}

	awards := make(map[string]int, len(game.Players))
	for _, playerID := range game.Players {
		if playerID == game.WinnerID {
			awards[playerID] = entity.WinnerRankBonus
			continue
		}

		awards[playerID] = entity.ParticipantRankBonus
	}

	return awards, nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, ledger *Ledger, playerID string, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !game.InBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d on a %dx%d board", apperror.ErrInvalidCell, row, col, game.Size(), game.Size())
	}

	if _, taken := ledger.At(row, col); taken {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	if !IsTurnOf(game, playerID) {
		next, _ := CurrentTurn(game)
		return &apperror.OutOfTurnError{PlayerID: playerID, NextPlayerID: next}
	}

	return nil
}
