package entity

// GameState is a game together with its moves and the rendered board.
type GameState struct {
	Game         *Game      `json:"game"`
	Name         string     `json:"name"`
	Participants []string   `json:"participants"`
	Moves        []*Move    `json:"moves"`
	Board        [][]string `json:"board"`
	NextPlayerID string     `json:"next_player_id,omitempty"`
	LastMove     *Move      `json:"last_move,omitempty"`
}
