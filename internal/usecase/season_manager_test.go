package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/ntictactoe-backend/mocks/usecase"
)

func newSeasonManager(t *testing.T) (*SeasonManager, *mockedUseCase.MockseasonRepoDep, *mockedUseCase.MockplayerRepoDep) {
	t.Helper()

	seasons := mockedUseCase.NewMockseasonRepoDep(t)
	players := mockedUseCase.NewMockplayerRepoDep(t)
	manager := NewSeasonManager(newTestLogger(), seasons, players)
	manager.now = func() time.Time { return testNow }

	return manager, seasons, players
}

func TestSeasonManager_CreateSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates the season", func(t *testing.T) {
		manager, seasons, _ := newSeasonManager(t)

		seasons.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(season *entity.Season) bool {
				return season.Name == "Spring" && season.CreatedAt.Equal(testNow)
			})).
			Return(nil).
			Once()

		season, err := manager.CreateSeason(ctx, "  Spring ")

		require.NoError(t, err)
		assert.Equal(t, "Spring", season.Name)
	})

	t.Run("Error on an empty name", func(t *testing.T) {
		manager, _, _ := newSeasonManager(t)

		_, err := manager.CreateSeason(ctx, " ")

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Error on a taken name", func(t *testing.T) {
		manager, seasons, _ := newSeasonManager(t)

		seasons.EXPECT().Create(mock.Anything, mock.Anything).Return(apperror.ErrSeasonNameTaken).Once()

		_, err := manager.CreateSeason(ctx, "Spring")

		require.ErrorIs(t, err, apperror.ErrSeasonNameTaken)
	})
}

func TestSeasonManager_Standings(t *testing.T) {
	ctx := context.Background()

	t.Run("Sorted by rank then nickname", func(t *testing.T) {
		// Given: three season players
		manager, seasons, players := newSeasonManager(t)

		seasons.EXPECT().GetByID(mock.Anything, "s1").Return(&entity.Season{ID: "s1"}, nil).Once()
		seasons.EXPECT().ListPlayerIDs(mock.Anything, "s1").Return([]string{"a", "b", "c"}, nil).Once()
		players.EXPECT().GetMany(mock.Anything, []string{"a", "b", "c"}).Return([]*entity.Player{
			{ID: "a", Nickname: "carol", Rank: 3},
			{ID: "b", Nickname: "bob", Rank: 5},
			{ID: "c", Nickname: "alice", Rank: 3},
		}, nil).Once()

		// When: standings are requested
		standings, err := manager.Standings(ctx, "s1")

		// Then: the highest rank comes first and ties are broken by nickname
		require.NoError(t, err)
		require.Len(t, standings, 3)
		assert.Equal(t, "b", standings[0].ID)
		assert.Equal(t, "c", standings[1].ID)
		assert.Equal(t, "a", standings[2].ID)
	})

	t.Run("Error on unknown season", func(t *testing.T) {
		manager, seasons, _ := newSeasonManager(t)

		seasons.EXPECT().GetByID(mock.Anything, "nope").Return(nil, apperror.ErrNotFound).Once()

		_, err := manager.Standings(ctx, "nope")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
