package pkg

import "github.com/google/uuid"

// NewID returns a random identifier for games, moves, players and seasons.
func NewID() string {
	return uuid.NewString()
}

// IsID reports whether s looks like an identifier produced by NewID.
func IsID(s string) bool {
	return uuid.Validate(s) == nil
}
