package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

// seat appends the player to the roster and the turn order and assigns the next mark.
func seat(game *entity.Game, playerID string) (string, error) {
	joined := len(game.Players)
	if joined >= game.PlayersNumber {
		return "", fmt.Errorf("%w: %d of %d players", apperror.ErrGameFull, joined, game.PlayersNumber)
	}

	if joined >= len(entity.Marks) {
		return "", fmt.Errorf("%w: no mark left for player %d", apperror.ErrGameFull, joined+1)
	}

	mark := entity.Marks[joined]

	if game.Marks == nil {
		game.Marks = make(map[string]string, game.PlayersNumber)
	}

	game.Players = append(game.Players, playerID)
	game.TurnOrder = append(game.TurnOrder, playerID)
	game.Marks[playerID] = mark

	return mark, nil
}

// CurrentTurn returns the player at the head of the turn order.
func CurrentTurn(game *entity.Game) (string, bool) {
	if len(game.TurnOrder) == 0 {
		return "", false
	}

	return game.TurnOrder[0], true
}

func IsTurnOf(game *entity.Game, playerID string) bool {
	current, ok := CurrentTurn(game)
	return ok && current == playerID
}

// Advance rotates the turn order: the head moves to the tail.
func Advance(game *entity.Game) {
	if len(game.TurnOrder) < 2 {
		return
	}

	head := game.TurnOrder[0]
	copy(game.TurnOrder, game.TurnOrder[1:])
	game.TurnOrder[len(game.TurnOrder)-1] = head
}
