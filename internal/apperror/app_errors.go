package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrGameBusy     = errors.New("game is busy, try again")

	ErrGameFinished         = errors.New("game is already finished")
	ErrGameFull             = errors.New("game has no free seats")
	ErrAlreadyJoined        = errors.New("player already joined the game")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrInvalidCell          = errors.New("invalid cell index")
	ErrInvalidPlayersNumber = errors.New("invalid players number")
	ErrNotParticipant       = errors.New("player is not a participant of the game")
	ErrGameInProgress       = errors.New("game is in progress")

	ErrNoActiveSeason     = errors.New("no active season")
	ErrSeasonNameTaken    = errors.New("season name already exists")
	ErrNicknameTaken      = errors.New("nickname already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid nickname or password")
	ErrInvalidToken       = errors.New("invalid access token")
)

// OutOfTurnError is returned when a move comes from a player who does not hold the turn.
// It matches ErrNotYourTurn with errors.Is.
type OutOfTurnError struct {
	PlayerID     string
	NextPlayerID string
}

func (that *OutOfTurnError) Error() string {
	if that.NextPlayerID == "" {
		return fmt.Sprintf("%s: player %s", ErrNotYourTurn, that.PlayerID)
	}

	return fmt.Sprintf("%s: next player is %s", ErrNotYourTurn, that.NextPlayerID)
}

func (that *OutOfTurnError) Is(target error) bool {
	return target == ErrNotYourTurn
}
