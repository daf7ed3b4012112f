package entity

import "time"

const (
	WinnerRankBonus      = 2
	ParticipantRankBonus = 1
)

// Player is a registered participant. Rank is kept in the leaderboard and filled in on read.
type Player struct {
	ID           string    `json:"id"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Email        string    `json:"email,omitempty"`
	Age          int       `json:"age,omitempty"`
	Rank         int       `json:"rank"`
	CreatedAt    time.Time `json:"created_at"`
}
