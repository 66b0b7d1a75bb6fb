package checkers

import (
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

// Game is one checkers match: a board and whether it has been decided.
type Game struct {
	board *Board
	done  bool
}

func NewGame() *Game {
	return &Game{board: NewBoard()}
}

// NewGameWithBoard wraps an already prepared board, e.g. one built with NewBoardFromLayout.
func NewGameWithBoard(board *Board) *Game {
	return &Game{board: board, done: board.HasWinner()}
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) IsDone() bool {
	return that.done
}

// ValidateMove checks a requested move without touching the board beyond warming the cache.
func (that *Game) ValidateMove(origin, dest Square) error {
	if !origin.InPlayableRange() || !dest.InPlayableRange() {
		return fmt.Errorf("%w: %s -> %s", apperror.ErrOutOfRange, origin, dest)
	}

	if that.done {
		return apperror.ErrGameFinished
	}

	piece := that.board.at(origin)
	if !piece.IsPiece() {
		return fmt.Errorf("%w: no piece at %s", apperror.ErrIllegalMove, origin)
	}

	if piece.Side != that.board.Turn() {
		return fmt.Errorf("%w: %w: %s moves now", apperror.ErrIllegalMove, apperror.ErrNotYourTurn, that.board.Turn())
	}

	if !that.board.IsLegalMove(origin, dest) {
		return fmt.Errorf("%w: %s -> %s", apperror.ErrIllegalMove, origin, dest)
	}

	return nil
}

// ApplyMove validates and commits a move: captured pieces come off, the piece relocates,
// and the turn passes unless the move decided the game.
func (that *Game) ApplyMove(origin, dest Square) (Snapshot, error) {
	if err := that.ValidateMove(origin, dest); err != nil {
		return Snapshot{}, err
	}

	captured, err := that.board.capturedFor(origin, dest)
	if err != nil {
		return Snapshot{}, err
	}

	if err = that.board.checkCommit(origin, dest); err != nil {
		return Snapshot{}, err
	}

	that.board.RemoveCaptured(captured)

	if err = that.board.CommitMove(origin, dest); err != nil {
		panic(fmt.Errorf("%w: commit after validation: %w", apperror.ErrInvariantViolation, err))
	}

	if that.board.HasWinner() {
		that.done = true
	} else {
		that.board.SwapTurn()
	}

	return that.board.Snapshot(), nil
}
