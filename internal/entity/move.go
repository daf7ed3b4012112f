package entity

// Move is a single placed mark. Moves are immutable once recorded.
type Move struct {
	ID       string `json:"id"`
	GameID   string `json:"game_id"`
	Seq      int    `json:"seq"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	PlayerID string `json:"player_id"`
	Mark     string `json:"mark"`
}

// Board renders moves onto a size x size grid of marks.
func Board(size int, moves []*Move) [][]string {
	board := make([][]string, size)
	for row := range board {
		board[row] = make([]string, size)
	}

	for _, move := range moves {
		if move.Row < 0 || move.Row >= size || move.Column < 0 || move.Column >= size {
			continue
		}

		board[move.Row][move.Column] = move.Mark
	}

	return board
}
