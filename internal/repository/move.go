package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

// MoveRepository reads the moves of a game. Moves are written by GameRepository.SaveTurn.
type MoveRepository interface {
	ListByGame(ctx context.Context, gameID string) ([]*entity.Move, error)
}

type dbMove struct {
	client *redis.Client
}

func NewMoveRepository(client *redis.Client) MoveRepository {
	return &dbMove{
		client: client,
	}
}

// ListByGame returns the moves in placement order.
func (that *dbMove) ListByGame(ctx context.Context, gameID string) ([]*entity.Move, error) {
	values, err := that.client.LRange(ctx, movesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	moves := make([]*entity.Move, 0, len(values))
	for _, value := range values {
		var move entity.Move
		if err = json.Unmarshal([]byte(value), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}

		moves = append(moves, &move)
	}

	return moves, nil
}
