package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

type SeasonManager struct {
	logger *slog.Logger

	seasonRepo seasonRepoDep
	playerRepo playerRepoDep
	now        func() time.Time
}

func NewSeasonManager(logger *slog.Logger, seasonRepo seasonRepoDep, playerRepo playerRepoDep) *SeasonManager {
	return &SeasonManager{
		logger:     logger,
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		now:        time.Now,
	}
}

// CreateSeason starts a new season. The previous active season becomes inactive.
func (that *SeasonManager) CreateSeason(ctx context.Context, name string) (*entity.Season, error) {
	log := that.logger.With("method", "CreateSeason")

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty season name", apperror.ErrInvalidInput)
	}

	season := &entity.Season{
		Name:      name,
		CreatedAt: that.now().UTC(),
	}

	if err := that.seasonRepo.Create(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	log.Info("season started", "seasonID", season.ID, "name", season.Name)

	return season, nil
}

func (that *SeasonManager) GetActive(ctx context.Context) (*entity.Season, error) {
	season, err := that.seasonRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active season: %w", err)
	}

	return season, nil
}

// Standings lists everyone who played in the season, highest rank first.
func (that *SeasonManager) Standings(ctx context.Context, seasonID string) ([]*entity.Player, error) {
	if _, err := that.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}

	ids, err := that.seasonRepo.ListPlayerIDs(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list season players: %w", err)
	}

	players, err := that.playerRepo.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get season players: %w", err)
	}

	slices.SortFunc(players, func(a, b *entity.Player) int {
		if a.Rank != b.Rank {
			return cmp.Compare(b.Rank, a.Rank)
		}

		return cmp.Compare(a.Nickname, b.Nickname)
	})

	for i, player := range players {
		players[i] = withoutSecrets(player)
	}

	return players, nil
}
