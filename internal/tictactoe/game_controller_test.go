package tictactoe

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func newController() *GameController {
	return NewGameController(func() time.Time { return fixedNow })
}

// newStartedGame creates a game with every seat taken, players join in the given order.
func newStartedGame(t *testing.T, controller *GameController, players ...string) (*entity.Game, *Ledger) {
	t.Helper()

	game, err := controller.NewGame(len(players), "season-1")
	require.NoError(t, err)
	game.ID = "game-1"

	for _, player := range players {
		_, err = controller.Join(game, player)
		require.NoError(t, err)
	}

	ledger, err := NewLedger(game.ID, nil)
	require.NoError(t, err)

	return game, ledger
}

func TestGameController_NewGame(t *testing.T) {
	controller := newController()

	t.Run("Creates a game stamped with the controller clock", func(t *testing.T) {
		// When: a 4 player game is created
		game, err := controller.NewGame(4, "season-1")
		require.NoError(t, err)

		// Then: the game is empty and uses a 4x4 board
		assert.Equal(t, entity.StatusCreated, game.Status)
		assert.Equal(t, 4, game.Size())
		assert.Equal(t, fixedNow, game.CreatedAt)
		assert.Empty(t, game.Players)
	})

	t.Run("Error on invalid players number", func(t *testing.T) {
		// When: a game for zero players is requested
		game, err := controller.NewGame(0, "season-1")

		// Then: ErrInvalidPlayersNumber is returned
		require.ErrorIs(t, err, apperror.ErrInvalidPlayersNumber)
		assert.Nil(t, game)
	})
}

func TestGameController_Join(t *testing.T) {
	controller := newController()

	t.Run("Assigns marks by join order", func(t *testing.T) {
		// Given: a 3 player game
		game, err := controller.NewGame(3, "season-1")
		require.NoError(t, err)

		// When: three players join
		marks := make([]string, 0, 3)
		for _, player := range []string{"a", "b", "c"} {
			mark, err := controller.Join(game, player)
			require.NoError(t, err)
			marks = append(marks, mark)
		}

		// Then: marks follow the alphabet and the first joiner moves first
		assert.Equal(t, []string{"X", "O", "Y"}, marks)
		assert.Equal(t, []string{"a", "b", "c"}, game.Players)
		assert.Equal(t, []string{"a", "b", "c"}, game.TurnOrder)

		current, ok := CurrentTurn(game)
		require.True(t, ok)
		assert.Equal(t, "a", current)
	})

	t.Run("Error on a full game", func(t *testing.T) {
		// Given: a full 2 player game
		game, _ := newStartedGame(t, controller, "a", "b")
		before := game.Clone()

		// When: a third player tries to join
		mark, err := controller.Join(game, "c")

		// Then: ErrGameFull is returned and the roster is unchanged
		require.ErrorIs(t, err, apperror.ErrGameFull)
		assert.Empty(t, mark)
		assert.Equal(t, before, game)
	})

	t.Run("Error on a second join by the same player", func(t *testing.T) {
		// Given: a 3 player game with one player
		game, err := controller.NewGame(3, "season-1")
		require.NoError(t, err)
		_, err = controller.Join(game, "a")
		require.NoError(t, err)

		// When: the same player joins again
		_, err = controller.Join(game, "a")

		// Then: ErrAlreadyJoined is returned
		require.ErrorIs(t, err, apperror.ErrAlreadyJoined)
		assert.Equal(t, []string{"a"}, game.Players)
	})

	t.Run("Full game wins over a repeated join", func(t *testing.T) {
		// Given: a full 2 player game
		game, _ := newStartedGame(t, controller, "a", "b")
		before := game.Clone()

		// When: a member joins again
		_, err := controller.Join(game, "a")

		// Then: ErrGameFull is returned and the roster is unchanged
		require.ErrorIs(t, err, apperror.ErrGameFull)
		assert.Equal(t, before, game)
	})

	t.Run("Error on a finished game", func(t *testing.T) {
		// Given: a finished 3 player game with a free seat
		game, err := controller.NewGame(3, "season-1")
		require.NoError(t, err)
		_, err = controller.Join(game, "a")
		require.NoError(t, err)
		game.Finish("a", fixedNow)

		// When: another player joins
		_, err = controller.Join(game, "b")

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, []string{"a"}, game.Players)
	})
}

func TestGameController_MakeTurn(t *testing.T) {
	controller := newController()

	t.Run("Row completion finishes the game", func(t *testing.T) {
		// Given: a started 2 player game
		game, ledger := newStartedGame(t, controller, "a", "b")

		// When: a takes (0,0), b takes (1,0), a takes (0,1)
		result, err := controller.MakeTurn(game, ledger, "a", 0, 0)
		require.NoError(t, err)
		assert.False(t, result.Finished)

		result, err = controller.MakeTurn(game, ledger, "b", 1, 0)
		require.NoError(t, err)
		assert.False(t, result.Finished)

		result, err = controller.MakeTurn(game, ledger, "a", 0, 1)
		require.NoError(t, err)

		// Then: a wins by row 0
		assert.True(t, result.Finished)
		assert.Equal(t, &entity.Move{GameID: "game-1", Seq: 3, Row: 0, Column: 1, PlayerID: "a", Mark: "X"}, result.Move)
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, "a", game.WinnerID)
		require.NotNil(t, game.FinishedAt)
		assert.Equal(t, fixedNow, *game.FinishedAt)
		assert.Equal(t, 3, ledger.Len())
	})

	t.Run("Error on out of turn move", func(t *testing.T) {
		// Given: a started game where a moves first
		game, ledger := newStartedGame(t, controller, "a", "b")
		before := game.Clone()

		// When: b moves first
		result, err := controller.MakeTurn(game, ledger, "b", 0, 0)

		// Then: an OutOfTurnError naming a is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		var outOfTurn *apperror.OutOfTurnError
		require.ErrorAs(t, err, &outOfTurn)
		assert.Equal(t, "b", outOfTurn.PlayerID)
		assert.Equal(t, "a", outOfTurn.NextPlayerID)

		// Then: nothing is recorded and the turn order is unchanged
		assert.Nil(t, result)
		assert.Equal(t, 0, ledger.Len())
		assert.Equal(t, before, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a takes (0,0)
		game, ledger := newStartedGame(t, controller, "a", "b")
		_, err := controller.MakeTurn(game, ledger, "a", 0, 0)
		require.NoError(t, err)
		before := game.Clone()

		// When: b tries the same cell
		_, err = controller.MakeTurn(game, ledger, "b", 0, 0)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, game)
		assert.Equal(t, 1, ledger.Len())
	})

	t.Run("Occupied cell is reported before the turn check", func(t *testing.T) {
		// Given: a takes (0,0), so it is b's turn
		game, ledger := newStartedGame(t, controller, "a", "b")
		_, err := controller.MakeTurn(game, ledger, "a", 0, 0)
		require.NoError(t, err)

		// When: a targets the taken cell out of turn
		_, err = controller.MakeTurn(game, ledger, "a", 0, 0)

		// Then: the occupancy error wins
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Error on move in a finished game", func(t *testing.T) {
		// Given: a finished game
		game, ledger := newStartedGame(t, controller, "a", "b")
		game.Finish("a", fixedNow)
		before := game.Clone()

		// When: b moves
		_, err := controller.MakeTurn(game, ledger, "b", 1, 1)

		// Then: ErrGameFinished is returned with no mutation
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, before, game)
		assert.Equal(t, 0, ledger.Len())
	})

	t.Run("Error on a cell outside the board", func(t *testing.T) {
		// Given: a started 2 player game
		game, ledger := newStartedGame(t, controller, "a", "b")
		before := game.Clone()

		// When: a targets row 2 on a 2x2 board
		_, err := controller.MakeTurn(game, ledger, "a", 2, 0)

		// Then: ErrInvalidCell is returned
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, before, game)
		assert.Equal(t, 0, ledger.Len())
	})

	t.Run("Non participant is rejected as out of turn", func(t *testing.T) {
		// Given: a started game
		game, ledger := newStartedGame(t, controller, "a", "b")

		// When: a stranger moves
		_, err := controller.MakeTurn(game, ledger, "stranger", 0, 0)

		// Then: the turn check rejects the move
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Moves rotate through all players", func(t *testing.T) {
		// Given: a 3 player game on a 3x3 board
		game, ledger := newStartedGame(t, controller, "a", "b", "c")

		// When: each player moves once
		for i, player := range []string{"a", "b", "c"} {
			_, err := controller.MakeTurn(game, ledger, player, 1, i)
			require.NoError(t, err)
		}

		// Then: the turn is back with a and marks match join order
		assert.Equal(t, []string{"a", "b", "c"}, game.TurnOrder)
		assert.Equal(t, [][]string{{"", "", ""}, {"X", "O", "Y"}, {"", "", ""}}, entity.Board(game.Size(), ledger.Moves()))
	})
}

func TestGameController_AwardRanks(t *testing.T) {
	controller := newController()

	t.Run("Winner gets two and others get one", func(t *testing.T) {
		// Given: a finished 3 player game won by b
		game, _ := newStartedGame(t, controller, "a", "b", "c")
		game.Finish("b", fixedNow)

		// When: ranks are awarded
		awards, err := controller.AwardRanks(game)
		require.NoError(t, err)

		// Then: b gains 2 and the others gain 1
		assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 1}, awards)
	})

	t.Run("Error on an ongoing game", func(t *testing.T) {
		// Given: an ongoing game
		game, _ := newStartedGame(t, controller, "a", "b")

		// When: ranks are awarded
		awards, err := controller.AwardRanks(game)

		// Then: ErrGameNotFinished is returned and nobody gains rank
		require.ErrorIs(t, err, ErrGameNotFinished)
		assert.Nil(t, awards)
	})
}
