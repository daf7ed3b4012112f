package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/ntictactoe-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestGame(t *testing.T, players ...string) *entity.Game {
	t.Helper()

	game, err := entity.NewGame(2, "season-1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	for i, player := range players {
		game.Players = append(game.Players, player)
		game.TurnOrder = append(game.TurnOrder, player)
		game.Marks[player] = entity.Marks[i]
	}

	return game
}

func TestGameRepository_Create(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)

	// Given: a game without ID
	game := newTestGame(t)

	// When: Create is called
	err := gameRepo.Create(ctx, game)

	// Then: an ID is assigned and the game is listed as open
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)

	openGames, err := gameRepo.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, openGames, 1)
	assert.Equal(t, game.ID, openGames[0].ID)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game
		game := newTestGame(t, "a")
		require.NoError(t, gameRepo.Create(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_SaveJoin(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage)
	seasonRepo := NewSeasonRepository(st.Storage)

	// Given: a stored game with one player
	game := newTestGame(t, "a")
	require.NoError(t, gameRepo.Create(ctx, game))

	// When: the second player joins
	game.Players = append(game.Players, "b")
	game.TurnOrder = append(game.TurnOrder, "b")
	game.Marks["b"] = "O"
	err := gameRepo.SaveJoin(ctx, game, "b")
	require.NoError(t, err)

	// Then: the game is full and no longer open
	openGames, err := gameRepo.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, openGames)

	// Then: the player is recorded in the season
	ids, err := seasonRepo.ListPlayerIDs(ctx, "season-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestGameRepository_SaveTurn(t *testing.T) {
	t.Run("Stores the move of an ongoing game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)
		moveRepo := NewMoveRepository(st.Storage)

		// Given: a full game
		game := newTestGame(t, "a", "b")
		require.NoError(t, gameRepo.Create(ctx, game))

		// When: a turn is saved
		game.TurnOrder = []string{"b", "a"}
		move := &entity.Move{ID: "m1", GameID: game.ID, Seq: 1, Row: 0, Column: 0, PlayerID: "a", Mark: "X"}
		err := gameRepo.SaveTurn(ctx, game, move, nil)
		require.NoError(t, err)

		// Then: the move and the new turn order are stored
		moves, err := moveRepo.ListByGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, []*entity.Move{move}, moves)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, stored.TurnOrder)
	})

	t.Run("Stores ranks and leaderboard of a finished game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)
		playerRepo := NewPlayerRepository(st.Storage)

		// Given: two stored players and their game
		alice := &entity.Player{ID: "a", Nickname: "alice"}
		bob := &entity.Player{ID: "b", Nickname: "bob"}
		require.NoError(t, playerRepo.Create(ctx, alice))
		require.NoError(t, playerRepo.Create(ctx, bob))

		game := newTestGame(t, "a", "b")
		require.NoError(t, gameRepo.Create(ctx, game))

		// When: the winning turn is saved with the awarded ranks
		finishedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		game.Finish("a", finishedAt)
		move := &entity.Move{ID: "m3", GameID: game.ID, Seq: 3, Row: 0, Column: 1, PlayerID: "a", Mark: "X"}
		err := gameRepo.SaveTurn(ctx, game, move, map[string]int{"a": 2, "b": 1})
		require.NoError(t, err)

		// Then: the leaderboard is ordered by the new ranks
		top, err := playerRepo.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "a", top[0].ID)
		assert.Equal(t, 2, top[0].Rank)
		assert.Equal(t, 1, top[1].Rank)

		// Then: the game is listed as finished
		ids, err := gameRepo.ListFinishedBefore(ctx, finishedAt)
		require.NoError(t, err)
		assert.Equal(t, []string{game.ID}, ids)

		ids, err = gameRepo.ListFinishedBefore(ctx, finishedAt.Add(-time.Second))
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("Awards of games finishing together add up", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)
		playerRepo := NewPlayerRepository(st.Storage)

		// Given: p plays two games against different opponents
		for _, id := range []string{"p", "q", "r"} {
			require.NoError(t, playerRepo.Create(ctx, &entity.Player{ID: id, Nickname: id}))
		}

		first := newTestGame(t, "p", "q")
		second := newTestGame(t, "p", "r")
		require.NoError(t, gameRepo.Create(ctx, first))
		require.NoError(t, gameRepo.Create(ctx, second))

		// When: p wins both games at the same time
		group, groupCtx := errgroup.WithContext(ctx)
		for _, game := range []*entity.Game{first, second} {
			game := game
			group.Go(func() error {
				game.Finish("p", time.Now())
				move := &entity.Move{ID: pkg.NewID(), GameID: game.ID, Seq: 3, Row: 0, Column: 1, PlayerID: "p", Mark: "X"}
				return gameRepo.SaveTurn(groupCtx, game, move, map[string]int{"p": 2, game.Players[1]: 1})
			})
		}
		require.NoError(t, group.Wait())

		// Then: both awards count
		players, err := playerRepo.GetMany(ctx, []string{"p", "q", "r"})
		require.NoError(t, err)
		assert.Equal(t, 4, players[0].Rank)
		assert.Equal(t, 1, players[1].Rank)
		assert.Equal(t, 1, players[2].Rank)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)
		moveRepo := NewMoveRepository(st.Storage)

		// Given: a game with one move
		game := newTestGame(t, "a", "b")
		require.NoError(t, gameRepo.Create(ctx, game))
		require.NoError(t, gameRepo.SaveTurn(ctx, game, &entity.Move{ID: "m1", GameID: game.ID, Seq: 1, PlayerID: "a"}, nil))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: the game and its moves are gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, ErrGameNotFound)

		moves, err := moveRepo.ListByGame(ctx, game.ID)
		require.NoError(t, err)
		assert.Empty(t, moves)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
