package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedger(t *testing.T) {
	t.Run("Restores stored moves", func(t *testing.T) {
		// Given: two stored moves
		stored := []*entity.Move{
			{ID: "m1", GameID: "g", Seq: 1, Row: 0, Column: 0, PlayerID: "a", Mark: "X"},
			{ID: "m2", GameID: "g", Seq: 2, Row: 1, Column: 1, PlayerID: "b", Mark: "O"},
		}

		// When: the ledger is rebuilt
		ledger, err := NewLedger("g", stored)
		require.NoError(t, err)

		// Then: both cells are taken
		assert.Equal(t, 2, ledger.Len())
		move, ok := ledger.At(1, 1)
		require.True(t, ok)
		assert.Equal(t, "m2", move.ID)

		_, ok = ledger.At(0, 1)
		assert.False(t, ok)
	})

	t.Run("Error on duplicated cell", func(t *testing.T) {
		// Given: two stored moves on the same cell
		stored := []*entity.Move{
			{ID: "m1", Row: 0, Column: 0, PlayerID: "a"},
			{ID: "m2", Row: 0, Column: 0, PlayerID: "b"},
		}

		// When: the ledger is rebuilt
		ledger, err := NewLedger("g", stored)

		// Then: ErrCellOccupied is returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Nil(t, ledger)
	})
}

func TestLedger_Record(t *testing.T) {
	// Given: an empty ledger
	ledger, err := NewLedger("g", nil)
	require.NoError(t, err)

	// When: two moves are recorded
	first, err := ledger.Record(0, 0, "a", "X")
	require.NoError(t, err)
	second, err := ledger.Record(0, 1, "b", "O")
	require.NoError(t, err)

	// Then: sequence numbers follow placement order
	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, "g", second.GameID)

	// When: a third move reuses a cell
	_, err = ledger.Record(0, 0, "c", "Y")

	// Then: it is rejected and not stored
	require.ErrorIs(t, err, apperror.ErrCellOccupied)
	assert.Equal(t, 2, ledger.Len())
	assert.Equal(t, []*entity.Move{first}, ledger.MovesBy("a"))
	assert.Empty(t, ledger.MovesBy("c"))
}
