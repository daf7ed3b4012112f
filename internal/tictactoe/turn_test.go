package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	t.Run("Head moves to the tail", func(t *testing.T) {
		// Given: a turn order of four players
		game := &entity.Game{TurnOrder: []string{"a", "b", "c", "d"}}

		// When: the turn advances
		Advance(game)

		// Then: a is now last
		assert.Equal(t, []string{"b", "c", "d", "a"}, game.TurnOrder)
	})

	t.Run("After k advances the head is player k mod L", func(t *testing.T) {
		players := []string{"a", "b", "c"}
		game := &entity.Game{TurnOrder: append([]string{}, players...)}

		for k := 0; k < 10; k++ {
			current, ok := CurrentTurn(game)
			require.True(t, ok)
			assert.Equal(t, players[k%len(players)], current)
			assert.ElementsMatch(t, players, game.TurnOrder)

			Advance(game)
		}
	})

	t.Run("Single player order is unchanged", func(t *testing.T) {
		game := &entity.Game{TurnOrder: []string{"a"}}

		Advance(game)

		assert.Equal(t, []string{"a"}, game.TurnOrder)
	})
}

func TestCurrentTurn_Empty(t *testing.T) {
	game := &entity.Game{}

	_, ok := CurrentTurn(game)

	assert.False(t, ok)
	assert.False(t, IsTurnOf(game, "a"))
}

func TestSeat(t *testing.T) {
	t.Run("Marks are distinct per player", func(t *testing.T) {
		// Given: a game for the whole mark alphabet
		game := &entity.Game{PlayersNumber: entity.MaxPlayers}

		// When: every seat is taken
		seen := make(map[string]bool)
		for i := 0; i < entity.MaxPlayers; i++ {
			mark, err := seat(game, string(rune('a'+i)))
			require.NoError(t, err)
			assert.False(t, seen[mark], "mark %s assigned twice", mark)
			seen[mark] = true
		}

		// Then: the roster and the turn order match
		assert.Equal(t, game.Players, game.TurnOrder)
		assert.Len(t, game.Marks, entity.MaxPlayers)
	})

	t.Run("Error when the roster is full", func(t *testing.T) {
		game := &entity.Game{PlayersNumber: 2, Players: []string{"a", "b"}, TurnOrder: []string{"a", "b"}}

		_, err := seat(game, "c")

		require.ErrorIs(t, err, apperror.ErrGameFull)
		assert.Equal(t, []string{"a", "b"}, game.Players)
	})

	t.Run("Error when marks are exhausted", func(t *testing.T) {
		players := []string{"a", "b", "c", "d", "e"}
		game := &entity.Game{PlayersNumber: 6, Players: players, TurnOrder: players}

		_, err := seat(game, "f")

		require.ErrorIs(t, err, apperror.ErrGameFull)
	})
}
