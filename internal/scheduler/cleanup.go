package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

type gameCleaner interface {
	CleanupFinishedGames(ctx context.Context, retention time.Duration) (int, error)
}

// CleanupScheduler periodically removes finished games past their retention.
type CleanupScheduler struct {
	logger *slog.Logger

	cleaner   gameCleaner
	interval  time.Duration
	retention time.Duration
}

func NewCleanupScheduler(logger *slog.Logger, cleaner gameCleaner, interval, retention time.Duration) *CleanupScheduler {
	return &CleanupScheduler{
		logger:    logger,
		cleaner:   cleaner,
		interval:  interval,
		retention: retention,
	}
}

// Run starts the job and blocks until ctx is done.
func (that *CleanupScheduler) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(that.interval),
		gocron.NewTask(func() {
			that.cleanup(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	sched.Start()
	log.Info("cleanup scheduled", "interval", that.interval, "retention", that.retention)

	<-ctx.Done()

	if err = sched.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}

	return nil
}

func (that *CleanupScheduler) cleanup(ctx context.Context) {
	log := that.logger.With("method", "cleanup")

	deleted, err := that.cleaner.CleanupFinishedGames(ctx, that.retention)
	if err != nil {
		log.Error("failed to clean up finished games", "error", err)
		return
	}

	log.Debug("cleanup done", "deleted", deleted)
}
