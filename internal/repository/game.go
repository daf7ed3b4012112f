package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/pkg"
)

var ErrGameNotFound = fmt.Errorf("game %w", apperror.ErrNotFound)

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	SaveJoin(ctx context.Context, game *entity.Game, playerID string) error
	SaveTurn(ctx context.Context, game *entity.Game, move *entity.Move, awards map[string]int) error
	DeleteByID(ctx context.Context, id string) error
	ListOpen(ctx context.Context) ([]*entity.Game, error)
	ListFinishedBefore(ctx context.Context, before time.Time) ([]string, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

// Create stores a new game and lists it as open. An empty ID is generated.
func (that *dbGame) Create(ctx context.Context, game *entity.Game) error {
	if game.ID == "" {
		game.ID = pkg.NewID()
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
		pipe.SAdd(ctx, openGamesKey, game.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

// SaveJoin commits a seated player together with the season membership.
func (that *dbGame) SaveJoin(ctx context.Context, game *entity.Game, playerID string) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)

		if game.SeasonID != "" {
			pipe.SAdd(ctx, seasonPlayersKey(game.SeasonID), playerID)
		}

		if !game.IsOpen() {
			pipe.SRem(ctx, openGamesKey, game.ID)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save join: %w", err)
	}

	return nil
}

// SaveTurn commits the move and the new game state in one transaction.
// When the game is finished the ranked players and the leaderboard go into the same transaction.
func (that *dbGame) SaveTurn(ctx context.Context, game *entity.Game, move *entity.Move, awards map[string]int) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
		pipe.RPush(ctx, movesKey(game.ID), moveJSON)

		if !game.IsFinished() {
			return nil
		}

		pipe.SRem(ctx, openGamesKey, game.ID)

		finishedAt := time.Now()
		if game.FinishedAt != nil {
			finishedAt = *game.FinishedAt
		}
		pipe.ZAdd(ctx, finishedGamesKey, redis.Z{Score: float64(finishedAt.Unix()), Member: game.ID})

		for playerID, delta := range awards {
			pipe.ZIncrBy(ctx, leaderboardKey, float64(delta), playerID)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save turn: %w", err)
	}

	return nil
}

// DeleteByID removes the game and its moves.
func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, gameKey(id))
		pipe.Del(ctx, movesKey(id))
		pipe.SRem(ctx, openGamesKey, id)
		pipe.ZRem(ctx, finishedGamesKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrGameNotFound
	}

	return nil
}

func (that *dbGame) ListOpen(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.client.SMembers(ctx, openGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list open games: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.Game{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, gameKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open games: %w", err)
	}

	games := make([]*entity.Game, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(raw), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game: %w", err)
		}

		if game.IsOpen() {
			games = append(games, &game)
		}
	}

	return games, nil
}

// ListFinishedBefore returns ids of games finished at or before the given time.
func (that *dbGame) ListFinishedBefore(ctx context.Context, before time.Time) ([]string, error) {
	ids, err := that.client.ZRangeByScore(ctx, finishedGamesKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(before.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list finished games: %w", err)
	}

	return ids, nil
}
