package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

type cell struct {
	row, col int
}

// Ledger is the append-only record of the moves placed in one game.
type Ledger struct {
	gameID string
	moves  []*entity.Move
	cells  map[cell]*entity.Move
}

// NewLedger rebuilds a ledger from stored moves, given in placement order.
func NewLedger(gameID string, moves []*entity.Move) (*Ledger, error) {
	ledger := &Ledger{
		gameID: gameID,
		moves:  make([]*entity.Move, 0, len(moves)),
		cells:  make(map[cell]*entity.Move, len(moves)),
	}

	for _, move := range moves {
		if err := ledger.append(move); err != nil {
			return nil, fmt.Errorf("failed to restore move %s: %w", move.ID, err)
		}
	}

	return ledger, nil
}

// Record places a new move. It only guards against a taken cell.
func (that *Ledger) Record(row, col int, owner, mark string) (*entity.Move, error) {
	move := &entity.Move{
		GameID:   that.gameID,
		Seq:      len(that.moves) + 1,
		Row:      row,
		Column:   col,
		PlayerID: owner,
		Mark:     mark,
	}

	if err := that.append(move); err != nil {
		return nil, err
	}

	return move, nil
}

// MovesBy returns the moves of one owner in placement order.
func (that *Ledger) MovesBy(owner string) []*entity.Move {
	var moves []*entity.Move
	for _, move := range that.moves {
		if move.PlayerID == owner {
			moves = append(moves, move)
		}
	}

	return moves
}

func (that *Ledger) At(row, col int) (*entity.Move, bool) {
	move, ok := that.cells[cell{row: row, col: col}]
	return move, ok
}

func (that *Ledger) Moves() []*entity.Move {
	return that.moves
}

func (that *Ledger) Len() int {
	return len(that.moves)
}

func (that *Ledger) append(move *entity.Move) error {
	key := cell{row: move.Row, col: move.Column}
	if _, ok := that.cells[key]; ok {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, move.Row, move.Column)
	}

	that.cells[key] = move
	that.moves = append(that.moves, move)

	return nil
}
