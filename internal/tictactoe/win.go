package tictactoe

import "github.com/rocketscienceinc/ntictactoe-backend/internal/entity"

// lineCheck reports whether the owner's moves complete one line through the last move.
type lineCheck func(size int, last *entity.Move, moves []*entity.Move) bool

// Checked in this order; the first completed line wins.
var lineChecks = []lineCheck{
	checkRow,
	checkColumn,
	checkMainDiagonal,
	checkAntiDiagonal,
}

// Evaluate reports whether the completed move wins the game for its owner.
func Evaluate(game *entity.Game, ledger *Ledger, completed *entity.Move) bool {
	moves := ledger.MovesBy(completed.PlayerID)
	size := game.Size()

	for _, check := range lineChecks {
		if check(size, completed, moves) {
			return true
		}
	}

	return false
}

func checkRow(size int, last *entity.Move, moves []*entity.Move) bool {
	return count(moves, func(move *entity.Move) bool {
		return move.Row == last.Row
	}) == size
}

func checkColumn(size int, last *entity.Move, moves []*entity.Move) bool {
	return count(moves, func(move *entity.Move) bool {
		return move.Column == last.Column
	}) == size
}

func checkMainDiagonal(size int, last *entity.Move, moves []*entity.Move) bool {
	if last.Row != last.Column {
		return false
	}

	return count(moves, func(move *entity.Move) bool {
		return move.Row == move.Column
	}) == size
}

// The anti-diagonal is matched as row == size - column.
func checkAntiDiagonal(size int, last *entity.Move, moves []*entity.Move) bool {
	if last.Row != size-last.Column {
		return false
	}

	return count(moves, func(move *entity.Move) bool {
		return move.Row == size-move.Column
	}) == size
}

func count(moves []*entity.Move, match func(*entity.Move) bool) int {
	n := 0
	for _, move := range moves {
		if match(move) {
			n++
		}
	}

	return n
}
