package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
)

const (
	StatusCreated  = "created"
	StatusFinished = "finished"

	EmptyCell = ""
)

const MinPlayers = 2

// Marks is the mark alphabet. The n-th player to join a game gets Marks[n].
var Marks = []string{"X", "O", "Y", "U", "P"}

// MaxPlayers is bounded by the mark alphabet.
var MaxPlayers = len(Marks)

// Game is one match on an NxN board, where N is the number of players.
type Game struct {
	ID            string            `json:"id"`
	PlayersNumber int               `json:"players_number"`
	Status        string            `json:"status"`
	SeasonID      string            `json:"season_id,omitempty"`
	WinnerID      string            `json:"winner_id,omitempty"`
	Players       []string          `json:"players"`
	TurnOrder     []string          `json:"turn_order"`
	Marks         map[string]string `json:"marks"`
	CreatedAt     time.Time         `json:"created_at"`
	FinishedAt    *time.Time        `json:"finished_at,omitempty"`
}

func NewGame(playersNumber int, seasonID string, createdAt time.Time) (*Game, error) {
	if playersNumber < MinPlayers || playersNumber > MaxPlayers {
		return nil, fmt.Errorf("%w: %d, expected %d..%d", apperror.ErrInvalidPlayersNumber, playersNumber, MinPlayers, MaxPlayers)
	}

	return &Game{
		PlayersNumber: playersNumber,
		Status:        StatusCreated,
		SeasonID:      seasonID,
		Players:       []string{},
		TurnOrder:     []string{},
		Marks:         map[string]string{},
		CreatedAt:     createdAt,
	}, nil
}

// Size is the board dimension.
func (that *Game) Size() int {
	return that.PlayersNumber
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// IsOpen reports whether the game still has free seats.
func (that *Game) IsOpen() bool {
	return !that.IsFinished() && len(that.Players) < that.PlayersNumber
}

func (that *Game) IsParticipant(playerID string) bool {
	return slices.Contains(that.Players, playerID)
}

func (that *Game) MarkOf(playerID string) string {
	return that.Marks[playerID]
}

func (that *Game) InBounds(row, col int) bool {
	size := that.Size()
	return row >= 0 && row < size && col >= 0 && col < size
}

// Finish moves the game into its terminal state.
func (that *Game) Finish(winnerID string, at time.Time) {
	that.Status = StatusFinished
	that.WinnerID = winnerID
	that.FinishedAt = &at
}

// Clone returns a deep copy, used to keep the stored state untouched by a rejected operation.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Players = slices.Clone(that.Players)
	clone.TurnOrder = slices.Clone(that.TurnOrder)

	clone.Marks = make(map[string]string, len(that.Marks))
	for id, mark := range that.Marks {
		clone.Marks[id] = mark
	}

	if that.FinishedAt != nil {
		finishedAt := *that.FinishedAt
		clone.FinishedAt = &finishedAt
	}

	return &clone
}

// Name renders the game as "first vs second vs ...", using nicknames when known.
func (that *Game) Name(nicknames map[string]string) string {
	names := make([]string, 0, len(that.Players))
	for _, id := range that.Players {
		names = append(names, nicknameOr(nicknames, id))
	}

	return strings.Join(names, " vs ")
}

// Participants renders every player as "nickname (mark)" in join order.
func (that *Game) Participants(nicknames map[string]string) []string {
	participants := make([]string, 0, len(that.Players))
	for _, id := range that.Players {
		participants = append(participants, fmt.Sprintf("%s (%s)", nicknameOr(nicknames, id), that.Marks[id]))
	}

	return participants
}

func nicknameOr(nicknames map[string]string, id string) string {
	if nickname, ok := nicknames[id]; ok && nickname != "" {
		return nickname
	}

	return id
}
