package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

const (
	minPasswordLength  = 6
	maxNicknameLength  = 32
	DefaultLeaderboard = 10
	maxLeaderboard     = 100
)

type authServiceDep interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
	GenerateToken(playerID string) (string, error)
	ParseToken(token string) (string, error)
}

type SignUpInput struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
}

type PlayerManager struct {
	logger *slog.Logger

	playerRepo playerRepoDep
	auth       authServiceDep
	now        func() time.Time
}

func NewPlayerManager(logger *slog.Logger, playerRepo playerRepoDep, auth authServiceDep) *PlayerManager {
	return &PlayerManager{
		logger:     logger,
		playerRepo: playerRepo,
		auth:       auth,
		now:        time.Now,
	}
}

// SignUp registers a player and returns it with an access token.
func (that *PlayerManager) SignUp(ctx context.Context, input SignUpInput) (*entity.Player, string, error) {
	log := that.logger.With("method", "SignUp")

	nickname := strings.TrimSpace(input.Nickname)
	if err := validateSignUp(nickname, input); err != nil {
		return nil, "", err
	}

	hash, err := that.auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	player := &entity.Player{
		Nickname:     nickname,
		PasswordHash: hash,
		Email:        strings.TrimSpace(input.Email),
		Age:          input.Age,
		CreatedAt:    that.now().UTC(),
	}

	if err = that.playerRepo.Create(ctx, player); err != nil {
		return nil, "", fmt.Errorf("failed to create player: %w", err)
	}

	token, err := that.auth.GenerateToken(player.ID)
	if err != nil {
		return nil, "", err
	}

	log.Info("player signed up", "playerID", player.ID)

	return withoutSecrets(player), token, nil
}

// SignIn checks the password and returns the player with a fresh access token.
func (that *PlayerManager) SignIn(ctx context.Context, nickname, password string) (*entity.Player, string, error) {
	player, err := that.playerRepo.GetByNickname(ctx, strings.TrimSpace(nickname))
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, "", apperror.ErrInvalidCredentials
	}

	if err != nil {
		return nil, "", fmt.Errorf("failed to get player by nickname: %w", err)
	}

	if err = that.auth.ComparePassword(player.PasswordHash, password); err != nil {
		return nil, "", err
	}

	token, err := that.auth.GenerateToken(player.ID)
	if err != nil {
		return nil, "", err
	}

	return withoutSecrets(player), token, nil
}

// Authenticate resolves an access token to a player id.
func (that *PlayerManager) Authenticate(token string) (string, error) {
	return that.auth.ParseToken(token)
}

func (that *PlayerManager) GetPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return withoutSecrets(player), nil
}

// Leaderboard returns the best ranked players. The limit is clamped to [1, 100].
func (that *PlayerManager) Leaderboard(ctx context.Context, limit int) ([]*entity.Player, error) {
	switch {
	case limit <= 0:
		limit = DefaultLeaderboard
	case limit > maxLeaderboard:
		limit = maxLeaderboard
	}

	players, err := that.playerRepo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	for i, player := range players {
		players[i] = withoutSecrets(player)
	}

	return players, nil
}

func validateSignUp(nickname string, input SignUpInput) error {
	if nickname == "" || len(nickname) > maxNicknameLength {
		return fmt.Errorf("%w: nickname must be 1..%d characters", apperror.ErrInvalidInput, maxNicknameLength)
	}

	if len(input.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperror.ErrInvalidInput, minPasswordLength)
	}

	if input.Email != "" && !strings.Contains(input.Email, "@") {
		return fmt.Errorf("%w: malformed email", apperror.ErrInvalidInput)
	}

	if input.Age < 0 {
		return fmt.Errorf("%w: negative age", apperror.ErrInvalidInput)
	}

	return nil
}

func withoutSecrets(player *entity.Player) *entity.Player {
	clean := *player
	clean.PasswordHash = ""

	return &clean
}
