package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/pkg"
)

var ErrLockNotAcquired = fmt.Errorf("%w: lock not acquired", apperror.ErrGameBusy)

// Deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// GameLocker serializes mutations of one game across all server instances.
type GameLocker struct {
	client  *redis.Client
	ttl     time.Duration
	maxWait time.Duration
}

func NewGameLocker(client *redis.Client, ttl, maxWait time.Duration) *GameLocker {
	return &GameLocker{
		client:  client,
		ttl:     ttl,
		maxWait: maxWait,
	}
}

// Lock blocks until the game lock is taken or maxWait runs out.
// The returned func releases the lock.
func (that *GameLocker) Lock(ctx context.Context, gameID string) (func(ctx context.Context) error, error) {
	key := gameLockKey(gameID)
	token := pkg.NewID()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 10 * time.Millisecond
	policy.MaxInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = that.maxWait

	acquire := func() error {
		ok, err := that.client.SetNX(ctx, key, token, that.ttl).Result()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to set lock: %w", err))
		}

		if !ok {
			return ErrLockNotAcquired
		}

		return nil
	}

	if err := backoff.Retry(acquire, backoff.WithContext(policy, ctx)); err != nil {
		return nil, fmt.Errorf("failed to lock game %s: %w", gameID, err)
	}

	unlock := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, that.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release lock of game %s: %w", gameID, err)
		}

		return nil
	}

	return unlock, nil
}
