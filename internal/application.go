package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/config"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/repository"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/repository/storage"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/scheduler"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/service"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/tictactoe"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/usecase"
	"github.com/rocketscienceinc/ntictactoe-backend/transport/rest"
	"github.com/rocketscienceinc/ntictactoe-backend/transport/websocket"
)

var (
	ErrAddrNotFound  = errors.New("redis address string is empty")
	ErrSecretMissing = errors.New("jwt secret key is empty")
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if conf.Redis.GetRedisAddr() == "" {
		return ErrAddrNotFound
	}

	if conf.Auth.JWTSecretKey == "" {
		return ErrSecretMissing
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage)
	moveRepo := repository.NewMoveRepository(redisStorage)
	playerRepo := repository.NewPlayerRepository(redisStorage)
	seasonRepo := repository.NewSeasonRepository(redisStorage)
	locker := repository.NewGameLocker(redisStorage, conf.Lock.TTL, conf.Lock.MaxWait)

	authService := service.NewAuthService(conf.Auth.JWTSecretKey, conf.Auth.TokenTTL)
	hub := websocket.NewHub(logger)

	gameManager := usecase.NewGameManager(logger, gameRepo, moveRepo, playerRepo, seasonRepo, locker, hub, tictactoe.NewGameController(nil))
	playerManager := usecase.NewPlayerManager(logger, playerRepo, authService)
	seasonManager := usecase.NewSeasonManager(logger, seasonRepo, playerRepo)

	router := rest.NewRouter(rest.NewHandlers(logger, gameManager, playerManager, seasonManager))
	wsServer := websocket.New(logger, gameManager, playerManager, hub)
	cleanup := scheduler.NewCleanupScheduler(logger, gameManager, conf.Cleanup.Interval, conf.Cleanup.Retention)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		return rest.Start(groupCtx, conf.HTTPPort, router)
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		return wsServer.Start(groupCtx, conf.SocketPort)
	})

	group.Go(func() error {
		return cleanup.Run(groupCtx)
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	log.Info("Application stopped")

	return nil
}
