package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

func sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

func pieceAt(t *testing.T, board *Board, row, col int) *Piece {
	t.Helper()

	piece, err := board.PieceAt(row, col)
	require.NoError(t, err)

	return piece
}

// requirePlacement checks that every occupant knows the cell it is stored in.
func requirePlacement(t *testing.T, board *Board) {
	t.Helper()

	for row := range boardSize {
		for col := range boardSize {
			piece := board.grid[row][col]
			require.NotNil(t, piece, "cell %s is empty", sq(row, col))
			require.Equal(t, sq(row, col), piece.Square())
		}
	}
}

func TestNewBoard(t *testing.T) {
	t.Run("Border ring is off-path", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// Then: every border cell is off-path
		for i := range boardSize {
			assert.True(t, pieceAt(t, board, 0, i).IsOffPath())
			assert.True(t, pieceAt(t, board, boardSize-1, i).IsOffPath())
			assert.True(t, pieceAt(t, board, i, 0).IsOffPath())
			assert.True(t, pieceAt(t, board, i, boardSize-1).IsOffPath())
		}
	})

	t.Run("Twelve pieces per side on alternating squares", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: counting pieces on the interior
		counts := map[Side]int{}
		for row := firstRow; row <= lastRow; row++ {
			for col := firstRow; col <= lastRow; col++ {
				piece := pieceAt(t, board, row, col)
				if piece.IsPiece() {
					counts[piece.Side]++
				}
			}
		}

		// Then: both sides have twelve pieces and the counters agree
		assert.Equal(t, piecesPerSide, counts[SideRed])
		assert.Equal(t, piecesPerSide, counts[SideBlack])
		assert.Equal(t, piecesPerSide, board.Remaining(SideRed))
		assert.Equal(t, piecesPerSide, board.Remaining(SideBlack))

		for col := 2; col <= lastRow; col += 2 {
			assert.True(t, board.IsOccupiedBySide(1, col, SideRed))
			assert.True(t, board.IsOccupiedBySide(3, col, SideRed))
			assert.True(t, board.IsOccupiedBySide(7, col, SideBlack))
		}

		for col := 1; col < lastRow; col += 2 {
			assert.True(t, board.IsOccupiedBySide(2, col, SideRed))
			assert.True(t, board.IsOccupiedBySide(6, col, SideBlack))
			assert.True(t, board.IsOccupiedBySide(8, col, SideBlack))
		}

		assert.Equal(t, SideRed, board.Turn())
		requirePlacement(t, board)
	})
}

func TestBoard_PieceAt(t *testing.T) {
	board := NewBoard()

	t.Run("Returns occupant inside the grid", func(t *testing.T) {
		piece, err := board.PieceAt(9, 9)

		require.NoError(t, err)
		assert.True(t, piece.IsOffPath())
	})

	t.Run("Fails outside the grid", func(t *testing.T) {
		_, err := board.PieceAt(10, 3)
		require.ErrorIs(t, err, apperror.ErrOutOfRange)

		_, err = board.PieceAt(-1, 3)
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("IsOccupiedBySide is false out of range", func(t *testing.T) {
		assert.False(t, board.IsOccupiedBySide(42, 42, SideRed))
	})
}

func TestNewBoardFromLayout(t *testing.T) {
	t.Run("Counts pieces and kings", func(t *testing.T) {
		// Given: a layout with a red king and two black pieces
		board, err := NewBoardFromLayout(SideBlack, [8]string{
			".R......",
			"..b.....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"b.......",
		})

		// Then: the counters reflect the layout
		require.NoError(t, err)
		assert.Equal(t, SideBlack, board.Turn())
		assert.Equal(t, 1, board.Remaining(SideRed))
		assert.Equal(t, 1, board.Kings(SideRed))
		assert.Equal(t, 2, board.Remaining(SideBlack))
		assert.Equal(t, 0, board.Kings(SideBlack))
		assert.True(t, pieceAt(t, board, 1, 2).King)
		requirePlacement(t, board)
	})

	t.Run("Rejects pieces on off-path squares", func(t *testing.T) {
		_, err := NewBoardFromLayout(SideRed, [8]string{
			"r.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		})

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
	})

	t.Run("Rejects short rows", func(t *testing.T) {
		_, err := NewBoardFromLayout(SideRed, [8]string{".r"})

		require.ErrorIs(t, err, apperror.ErrInvalidRequest)
	})
}

func TestBoard_CommitMove(t *testing.T) {
	t.Run("Swaps occupants and updates coordinates", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()
		source := pieceAt(t, board, 3, 2)
		open := pieceAt(t, board, 4, 1)

		// When: the red piece moves to (4,1)
		err := board.CommitMove(sq(3, 2), sq(4, 1))

		// Then: the piece and the open square traded places
		require.NoError(t, err)
		assert.Same(t, source, pieceAt(t, board, 4, 1))
		assert.Same(t, open, pieceAt(t, board, 3, 2))
		assert.Equal(t, sq(4, 1), source.Square())
		assert.Equal(t, sq(3, 2), open.Square())
		requirePlacement(t, board)
	})

	t.Run("Rejects occupied destination without mutating", func(t *testing.T) {
		board := NewBoard()

		err := board.CommitMove(sq(3, 2), sq(2, 1))

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.True(t, board.IsOccupiedBySide(3, 2, SideRed))
		assert.True(t, board.IsOccupiedBySide(2, 1, SideRed))
	})

	t.Run("Rejects empty origin", func(t *testing.T) {
		board := NewBoard()

		err := board.CommitMove(sq(4, 1), sq(5, 2))

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Promotes once on the far row", func(t *testing.T) {
		// Given: a red piece one step from the far row
		board, err := NewBoardFromLayout(SideRed, [8]string{
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			".r......",
			"......b.",
		})
		require.NoError(t, err)
		piece := pieceAt(t, board, 7, 2)

		// When: it reaches row 8
		require.NoError(t, board.CommitMove(sq(7, 2), sq(8, 1)))

		// Then: it is a king and the red king count is one
		assert.True(t, piece.King)
		assert.Equal(t, 1, board.Kings(SideRed))

		// When: it leaves and lands on the far row again
		require.NoError(t, board.CommitMove(sq(8, 1), sq(7, 2)))
		require.NoError(t, board.CommitMove(sq(7, 2), sq(8, 3)))

		// Then: the count did not grow
		assert.True(t, piece.King)
		assert.Equal(t, 1, board.Kings(SideRed))
		assert.LessOrEqual(t, board.Kings(SideRed), board.Remaining(SideRed))
	})

	t.Run("Black promotes on row 1", func(t *testing.T) {
		board, err := NewBoardFromLayout(SideBlack, [8]string{
			"........",
			"..b.....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"r.......",
		})
		require.NoError(t, err)

		require.NoError(t, board.CommitMove(sq(2, 3), sq(1, 4)))

		assert.True(t, pieceAt(t, board, 1, 4).King)
		assert.Equal(t, 1, board.Kings(SideBlack))
		assert.Equal(t, colorGold, pieceAt(t, board, 1, 4).Color())
		assert.Equal(t, "B", pieceAt(t, board, 1, 4).Symbol())
	})
}

func TestBoard_RemoveCaptured(t *testing.T) {
	t.Run("Opens squares and decrements counts", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()
		removeMe := []*Piece{pieceAt(t, board, 3, 2), pieceAt(t, board, 3, 4), pieceAt(t, board, 6, 3)}

		// When: removing two red pieces and one black piece
		board.RemoveCaptured(removeMe)

		// Then: their squares are open and the counters went down
		assert.True(t, pieceAt(t, board, 3, 2).IsOpen())
		assert.True(t, pieceAt(t, board, 3, 4).IsOpen())
		assert.True(t, pieceAt(t, board, 6, 3).IsOpen())
		assert.Equal(t, 10, board.Remaining(SideRed))
		assert.Equal(t, 11, board.Remaining(SideBlack))
		requirePlacement(t, board)
	})

	t.Run("Removing a king decrements the king count", func(t *testing.T) {
		board, err := NewBoardFromLayout(SideRed, [8]string{
			"........",
			"........",
			"........",
			"..B.....",
			"........",
			"........",
			"........",
			"......b.",
		})
		require.NoError(t, err)

		board.RemoveCaptured([]*Piece{pieceAt(t, board, 4, 3)})

		assert.Equal(t, 1, board.Remaining(SideBlack))
		assert.Equal(t, 0, board.Kings(SideBlack))
	})

	t.Run("Stale piece is an invariant violation", func(t *testing.T) {
		// Given: a piece that has already been taken off the board
		board := NewBoard()
		piece := pieceAt(t, board, 3, 2)
		board.RemoveCaptured([]*Piece{piece})

		// Then: removing it again panics before any counter changes
		assert.Panics(t, func() {
			board.RemoveCaptured([]*Piece{piece})
		})
		assert.Equal(t, 11, board.Remaining(SideRed))
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("No winner at the start", func(t *testing.T) {
		board := NewBoard()

		assert.False(t, board.HasWinner())
		assert.Equal(t, SideNone, board.WinningSide())
	})

	t.Run("Red wins when black runs out", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: every black piece is removed
		var black []*Piece
		for row := 6; row <= lastRow; row++ {
			for col := firstRow; col <= lastRow; col++ {
				if piece := pieceAt(t, board, row, col); piece.IsPiece() {
					black = append(black, piece)
				}
			}
		}
		board.RemoveCaptured(black)

		// Then: red is the winner
		assert.True(t, board.HasWinner())
		assert.Equal(t, SideRed, board.WinningSide())
		assert.Equal(t, 0, board.Remaining(SideBlack))
	})
}

func TestBoard_Snapshot(t *testing.T) {
	t.Run("Reading twice yields identical snapshots", func(t *testing.T) {
		board := NewBoard()

		first := board.Snapshot()
		second := board.Snapshot()

		assert.Equal(t, first, second)
	})

	t.Run("Cells carry coordinates, symbol and color", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: taking a snapshot
		snapshot := board.Snapshot()

		// Then: the grid is 10x10 with the expected tags
		require.Len(t, snapshot.Board, boardSize)
		for _, row := range snapshot.Board {
			require.Len(t, row, boardSize)
		}

		assert.Equal(t, Cell{Row: 0, Col: 0, Symbol: symbolOffPath, Color: colorGray}, snapshot.Board[0][0])
		assert.Equal(t, Cell{Row: 4, Col: 1, Symbol: symbolOpen, Color: colorGray}, snapshot.Board[4][1])
		assert.Equal(t, Cell{Row: 3, Col: 2, Symbol: "R", Color: "RED"}, snapshot.Board[3][2])
		assert.Equal(t, Cell{Row: 6, Col: 1, Symbol: "B", Color: "BLACK"}, snapshot.Board[6][1])
		assert.Equal(t, SideRed, snapshot.Turn)
		assert.Equal(t, 12, snapshot.RedLeft)
		assert.Equal(t, 12, snapshot.BlackLeft)
		assert.Equal(t, SideNone, snapshot.Winner)
	})
}
