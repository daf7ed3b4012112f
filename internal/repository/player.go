package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/pkg"
)

var ErrPlayerNotFound = fmt.Errorf("player %w", apperror.ErrNotFound)

type PlayerRepository interface {
	Create(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.Player, error)
	GetMany(ctx context.Context, ids []string) ([]*entity.Player, error)
	Top(ctx context.Context, limit int) ([]*entity.Player, error)
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

// Create stores a new player. Nickname and email are reserved first, so a taken one leaves nothing behind.
// Reservations are released again when a later step fails.
func (that *dbPlayer) Create(ctx context.Context, player *entity.Player) error {
	if player.ID == "" {
		player.ID = pkg.NewID()
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	reserved, err := that.client.SetNX(ctx, nicknameKey(player.Nickname), player.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve nickname: %w", err)
	}

	if !reserved {
		return fmt.Errorf("%w: %s", apperror.ErrNicknameTaken, player.Nickname)
	}

	reservations := []string{nicknameKey(player.Nickname)}

	if player.Email != "" {
		reserved, err = that.client.SetNX(ctx, emailKey(player.Email), player.ID, 0).Result()
		if err != nil {
			that.release(ctx, reservations...)
			return fmt.Errorf("failed to reserve email: %w", err)
		}

		if !reserved {
			that.release(ctx, reservations...)
			return fmt.Errorf("%w: %s", apperror.ErrEmailTaken, player.Email)
		}

		reservations = append(reservations, emailKey(player.Email))
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey(player.ID), playerJSON, 0)
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(player.Rank), Member: player.ID})
		return nil
	})
	if err != nil {
		// MULTI does not roll back, so the record itself may have been written
		that.release(ctx, append(reservations, playerKey(player.ID))...)
		return fmt.Errorf("failed to set player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	players, err := that.GetMany(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	return players[0], nil
}

func (that *dbPlayer) GetByNickname(ctx context.Context, nickname string) (*entity.Player, error) {
	id, err := that.client.Get(ctx, nicknameKey(nickname)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPlayerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by nickname: %w", err)
	}

	return that.GetByID(ctx, id)
}

// GetMany returns the players in the order of ids. A missing player is an error.
// Ranks come from the leaderboard, which is the only place they are incremented.
func (that *dbPlayer) GetMany(ctx context.Context, ids []string) ([]*entity.Player, error) {
	if len(ids) == 0 {
		return []*entity.Player{}, nil
	}

	keys := make([]string, 0, len(ids))
	members := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, playerKey(id))
		members = append(members, id)
	}

	var (
		values *redis.SliceCmd
		ranks  *redis.FloatSliceCmd
	)

	_, err := that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.MGet(ctx, keys...)
		ranks = pipe.ZMScore(ctx, leaderboardKey, members...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	scores := ranks.Val()

	players := make([]*entity.Player, 0, len(ids))
	for i, value := range values.Val() {
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, ids[i])
		}

		var player entity.Player
		if err = json.Unmarshal([]byte(raw), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player: %w", err)
		}

		if i < len(scores) {
			player.Rank = int(scores[i])
		}

		players = append(players, &player)
	}

	return players, nil
}

// Top returns players by rank, highest first.
func (that *dbPlayer) Top(ctx context.Context, limit int) ([]*entity.Player, error) {
	if limit <= 0 {
		return []*entity.Player{}, nil
	}

	ids, err := that.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	return that.GetMany(ctx, ids)
}

// release drops reservation keys, even when the request context is already gone.
func (that *dbPlayer) release(ctx context.Context, keys ...string) {
	_ = that.client.Del(context.WithoutCancel(ctx), keys...).Err()
}
