package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/pkg"
)

var ErrSeasonNotFound = fmt.Errorf("season %w", apperror.ErrNotFound)

const maxActivateRetries = 20

type SeasonRepository interface {
	Create(ctx context.Context, season *entity.Season) error
	GetByID(ctx context.Context, id string) (*entity.Season, error)
	GetActive(ctx context.Context) (*entity.Season, error)
	ListPlayerIDs(ctx context.Context, seasonID string) ([]string, error)
}

type dbSeason struct {
	client *redis.Client
}

func NewSeasonRepository(client *redis.Client) SeasonRepository {
	return &dbSeason{
		client: client,
	}
}

// Create stores the season as the active one and deactivates the previous active season.
// The name reservation is released when the season could not be stored.
func (that *dbSeason) Create(ctx context.Context, season *entity.Season) error {
	if season.ID == "" {
		season.ID = pkg.NewID()
	}

	season.Status = entity.SeasonActive

	nameKey := seasonNameKey(slug.Make(season.Name))

	reserved, err := that.client.SetNX(ctx, nameKey, season.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve season name: %w", err)
	}

	if !reserved {
		return fmt.Errorf("%w: %s", apperror.ErrSeasonNameTaken, season.Name)
	}

	if err = that.activate(ctx, season); err != nil {
		_ = that.client.Del(context.WithoutCancel(ctx), nameKey).Err()
		return err
	}

	return nil
}

// activate swaps the active season under WATCH. When another season is activated
// between the read and the write, the swap is retried against the new active season.
func (that *dbSeason) activate(ctx context.Context, season *entity.Season) error {
	seasonJSON, err := json.Marshal(season)
	if err != nil {
		return fmt.Errorf("failed to marshal season: %w", err)
	}

	swap := func(tx *redis.Tx) error {
		previous, err := getActiveSeason(ctx, tx)
		if err != nil && !errors.Is(err, apperror.ErrNoActiveSeason) {
			return err
		}

		var previousJSON []byte
		if previous != nil {
			previous.Status = entity.SeasonInactive
			if previousJSON, err = json.Marshal(previous); err != nil {
				return fmt.Errorf("failed to marshal season: %w", err)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, seasonKey(season.ID), seasonJSON, 0)
			pipe.Set(ctx, activeSeasonKey, season.ID, 0)

			if previous != nil {
				pipe.Set(ctx, seasonKey(previous.ID), previousJSON, 0)
			}

			return nil
		})

		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 5 * time.Millisecond
	policy.MaxInterval = 100 * time.Millisecond

	attempt := func() error {
		err := that.client.Watch(ctx, swap, activeSeasonKey)
		if errors.Is(err, redis.TxFailedErr) {
			return err
		}

		if err != nil {
			return backoff.Permanent(err)
		}

		return nil
	}

	err = backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, maxActivateRetries), ctx))
	if err != nil {
		return fmt.Errorf("failed to save season: %w", err)
	}

	return nil
}

func (that *dbSeason) GetByID(ctx context.Context, id string) (*entity.Season, error) {
	return getSeason(ctx, that.client, id)
}

func (that *dbSeason) GetActive(ctx context.Context) (*entity.Season, error) {
	return getActiveSeason(ctx, that.client)
}

// ListPlayerIDs returns everyone who joined a game of the season.
func (that *dbSeason) ListPlayerIDs(ctx context.Context, seasonID string) ([]string, error) {
	ids, err := that.client.SMembers(ctx, seasonPlayersKey(seasonID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list season players: %w", err)
	}

	return ids, nil
}

func getSeason(ctx context.Context, client redis.Cmdable, id string) (*entity.Season, error) {
	response, err := client.Get(ctx, seasonKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSeasonNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get season by ID: %w", err)
	}

	var season entity.Season
	if err = json.Unmarshal([]byte(response), &season); err != nil {
		return nil, fmt.Errorf("failed to unmarshal season: %w", err)
	}

	return &season, nil
}

func getActiveSeason(ctx context.Context, client redis.Cmdable) (*entity.Season, error) {
	id, err := client.Get(ctx, activeSeasonKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNoActiveSeason
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}

	return getSeason(ctx, client, id)
}
