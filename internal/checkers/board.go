package checkers

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

const (
	boardSize     = 10
	firstRow      = 1
	lastRow       = 8
	piecesPerSide = 12
)

// Square is a coordinate on the 10x10 grid; the playable interior runs 1..8.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Square) Add(d Delta) Square {
	return Square{Row: that.Row + d.Row, Col: that.Col + d.Col}
}

func (that Square) InGrid() bool {
	return that.Row >= 0 && that.Row < boardSize && that.Col >= 0 && that.Col < boardSize
}

// InPlayableRange reports whether both coordinates lie in 1..8.
func (that Square) InPlayableRange() bool {
	return that.Row >= firstRow && that.Row <= lastRow && that.Col >= firstRow && that.Col <= lastRow
}

func (that Square) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// isPlayable follows classic numbering: row 1 holds pieces on the even columns.
func isPlayable(row, col int) bool {
	return row >= firstRow && row <= lastRow && col >= firstRow && col <= lastRow && col%2 == (row+1)%2
}

// Moves maps a reachable destination to the pieces captured on the way there.
type Moves map[Square][]*Piece

func (that Moves) clone() Moves {
	out := make(Moves, len(that))
	for dest, captured := range that {
		out[dest] = append([]*Piece{}, captured...)
	}

	return out
}

// cacheEntry is a memoized enumeration together with every square it read.
type cacheEntry struct {
	moves     Moves
	footprint map[Square]struct{}
}

// Board is the checkers grid, turn indicator, per-side counters and the legal-destinations cache.
type Board struct {
	grid  [boardSize][boardSize]*Piece
	turn  Side
	left  map[Side]int
	kings map[Side]int
	cache map[Square]cacheEntry
}

func newBlankBoard() *Board {
	board := &Board{
		turn:  SideRed,
		left:  map[Side]int{SideRed: 0, SideBlack: 0},
		kings: map[Side]int{SideRed: 0, SideBlack: 0},
		cache: make(map[Square]cacheEntry),
	}

	for row := range boardSize {
		for col := range boardSize {
			if isPlayable(row, col) {
				board.grid[row][col] = newOpen(row, col)
			} else {
				board.grid[row][col] = newOffPath(row, col)
			}
		}
	}

	return board
}

// NewBoard sets up the starting position: red on rows 1-3, black on rows 6-8, red to move.
func NewBoard() *Board {
	board := newBlankBoard()

	for row := firstRow; row <= lastRow; row++ {
		for col := firstRow; col <= lastRow; col++ {
			if !isPlayable(row, col) {
				continue
			}

			switch {
			case row < 4:
				board.grid[row][col] = NewPiece(SideRed, row, col)
				board.left[SideRed]++
			case row > 5:
				board.grid[row][col] = NewPiece(SideBlack, row, col)
				board.left[SideBlack]++
			}
		}
	}

	return board
}

// NewBoardFromLayout builds a position from eight rows of eight characters, row 1 first.
// 'r'/'b' are plain pieces, 'R'/'B' kings, '.' or ' ' empty. Pieces on off-path squares are rejected.
func NewBoardFromLayout(turn Side, layout [8]string) (*Board, error) {
	if turn != SideRed && turn != SideBlack {
		return nil, fmt.Errorf("%w: turn %q", apperror.ErrInvalidRequest, turn)
	}

	board := newBlankBoard()
	board.turn = turn

	for i, line := range layout {
		row := i + firstRow
		if len(line) != lastRow {
			return nil, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidRequest, row, len(line))
		}

		for j, char := range line {
			col := j + firstRow
			if char == '.' || char == ' ' {
				continue
			}

			if !isPlayable(row, col) {
				return nil, fmt.Errorf("%w: piece on off-path square %s", apperror.ErrInvalidRequest, Square{Row: row, Col: col})
			}

			var side Side
			switch strings.ToLower(string(char)) {
			case "r":
				side = SideRed
			case "b":
				side = SideBlack
			default:
				return nil, fmt.Errorf("%w: unknown cell %q", apperror.ErrInvalidRequest, char)
			}

			piece := NewPiece(side, row, col)
			board.left[side]++
			if char == 'R' || char == 'B' {
				piece.Promote()
				board.kings[side]++
			}
			board.grid[row][col] = piece
		}
	}

	return board, nil
}

// PieceAt returns the occupant of (row, col).
func (that *Board) PieceAt(row, col int) (*Piece, error) {
	square := Square{Row: row, Col: col}
	if !square.InGrid() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, square)
	}

	return that.grid[row][col], nil
}

func (that *Board) at(square Square) *Piece {
	if !square.InGrid() {
		return nil
	}

	return that.grid[square.Row][square.Col]
}

func (that *Board) IsOccupiedBySide(row, col int, side Side) bool {
	piece, err := that.PieceAt(row, col)
	if err != nil {
		return false
	}

	return piece.IsPiece() && piece.Side == side
}

func (that *Board) Turn() Side {
	return that.turn
}

func (that *Board) SwapTurn() {
	that.turn = that.turn.Opponent()
}

// Remaining returns how many pieces side still has on the board.
func (that *Board) Remaining(side Side) int {
	return that.left[side]
}

// Kings returns how many of side's remaining pieces are promoted.
func (that *Board) Kings(side Side) int {
	return that.kings[side]
}

// LegalDestinations returns every legal terminus from origin with the pieces captured to reach it.
// Results are memoized per origin until a square they depend on changes.
func (that *Board) LegalDestinations(origin Square) (Moves, error) {
	entry, err := that.lookup(origin)
	if err != nil {
		return nil, err
	}

	return entry.moves.clone(), nil
}

// IsLegalMove reports whether dest is one of origin's legal destinations.
func (that *Board) IsLegalMove(origin, dest Square) bool {
	entry, err := that.lookup(origin)
	if err != nil {
		return false
	}

	_, ok := entry.moves[dest]
	return ok
}

func (that *Board) lookup(origin Square) (cacheEntry, error) {
	if entry, ok := that.cache[origin]; ok {
		return entry, nil
	}

	piece := that.at(origin)
	if piece == nil {
		return cacheEntry{}, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, origin)
	}

	if !piece.IsPiece() {
		return cacheEntry{}, fmt.Errorf("%w: no piece at %s", apperror.ErrIllegalMove, origin)
	}

	entry := that.enumerate(piece)
	that.cache[origin] = entry

	return entry, nil
}

// capturedFor reads the captured pieces of a previously enumerated move without recomputing it.
func (that *Board) capturedFor(origin, dest Square) ([]*Piece, error) {
	entry, ok := that.cache[origin]
	if !ok {
		return nil, fmt.Errorf("%w: no legal destinations computed for %s", apperror.ErrIllegalMove, origin)
	}

	captured, ok := entry.moves[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", apperror.ErrIllegalMove, origin, dest)
	}

	return captured, nil
}

// checkCommit validates everything CommitMove relies on, so a commit never fails halfway.
func (that *Board) checkCommit(origin, dest Square) error {
	source, dst := that.at(origin), that.at(dest)
	if source == nil || dst == nil {
		return fmt.Errorf("%w: %s -> %s", apperror.ErrOutOfRange, origin, dest)
	}

	if !source.IsPiece() {
		return fmt.Errorf("%w: no piece at %s", apperror.ErrIllegalMove, origin)
	}

	if !dst.IsOpen() {
		return fmt.Errorf("%w: %s is not open", apperror.ErrIllegalMove, dest)
	}

	return nil
}

// CommitMove swaps the occupants of origin and dest, evicts every cache entry that read either
// square and promotes the moved piece when it reached its farthest row.
func (that *Board) CommitMove(origin, dest Square) error {
	if err := that.checkCommit(origin, dest); err != nil {
		return err
	}

	source := that.grid[origin.Row][origin.Col]
	open := that.grid[dest.Row][dest.Col]

	that.grid[origin.Row][origin.Col], that.grid[dest.Row][dest.Col] = open, source
	source.moveTo(dest.Row, dest.Col)
	open.moveTo(origin.Row, origin.Col)

	that.invalidate(origin, dest)

	if source.CanPromote() {
		source.Promote()
		that.kings[source.Side]++
	}

	return nil
}

// RemoveCaptured takes the given pieces off the board and updates the counters of their sides.
func (that *Board) RemoveCaptured(pieces []*Piece) {
	for _, piece := range pieces {
		if !piece.IsPiece() || that.at(piece.Square()) != piece {
			panic(fmt.Errorf("%w: captured piece is not on %s", apperror.ErrInvariantViolation, piece.Square()))
		}
	}

	for _, piece := range pieces {
		that.left[piece.Side]--
		if piece.King {
			that.kings[piece.Side]--
		}

		that.grid[piece.Row][piece.Col] = newOpen(piece.Row, piece.Col)
		that.invalidate(piece.Square())
	}
}

// HasWinner reports whether either side has no pieces left.
func (that *Board) HasWinner() bool {
	return that.left[SideRed] <= 0 || that.left[SideBlack] <= 0
}

// WinningSide returns the side whose opponent ran out of pieces, or SideNone.
func (that *Board) WinningSide() Side {
	switch {
	case that.left[SideBlack] <= 0:
		return SideRed
	case that.left[SideRed] <= 0:
		return SideBlack
	default:
		return SideNone
	}
}

// invalidate evicts every cache entry whose computation read one of the changed squares.
func (that *Board) invalidate(changed ...Square) {
	for origin, entry := range that.cache {
		for _, square := range changed {
			if _, ok := entry.footprint[square]; ok {
				delete(that.cache, origin)
				break
			}
		}
	}
}
