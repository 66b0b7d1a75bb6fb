package minesweeper

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

const (
	DefaultSize  = 9
	DefaultMines = 10

	symbolHidden = "#"
	symbolFlag   = "F"
	symbolMine   = "x"
)

// Position is a 0-based cell coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is one square of the minefield.
type Cell struct {
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	NeighborCount int
}

// Board is a square minefield together with the player's progress on it.
type Board struct {
	size      int
	mines     int
	cells     [][]Cell
	hidden    int
	flagsLeft int
	done      bool
	won       bool
}

// NewBoard places mines on distinct random cells drawn from rng.
func NewBoard(size, mines int, rng *rand.Rand) (*Board, error) {
	if err := checkDimensions(size, mines); err != nil {
		return nil, err
	}

	positions := make([]Position, 0, mines)
	for _, index := range rng.Perm(size * size)[:mines] {
		positions = append(positions, Position{Row: index / size, Col: index % size})
	}

	return NewBoardWithMines(size, positions)
}

// NewBoardWithMines builds a board with mines on exactly the given cells.
func NewBoardWithMines(size int, mines []Position) (*Board, error) {
	if err := checkDimensions(size, len(mines)); err != nil {
		return nil, err
	}

	board := &Board{
		size:      size,
		mines:     len(mines),
		cells:     make([][]Cell, size),
		hidden:    size * size,
		flagsLeft: len(mines),
	}

	for row := range board.cells {
		board.cells[row] = make([]Cell, size)
	}

	for _, mine := range mines {
		if !board.contains(mine) {
			return nil, fmt.Errorf("%w: mine at %d,%d", apperror.ErrOutOfRange, mine.Row, mine.Col)
		}

		if board.cells[mine.Row][mine.Col].IsMine {
			return nil, fmt.Errorf("%w: duplicate mine at %d,%d", apperror.ErrInvalidRequest, mine.Row, mine.Col)
		}

		board.cells[mine.Row][mine.Col].IsMine = true
	}

	for _, mine := range mines {
		board.eachNeighbor(mine, func(cell *Cell) {
			cell.NeighborCount++
		})
	}

	return board, nil
}

func checkDimensions(size, mines int) error {
	if size < 1 {
		return fmt.Errorf("%w: board size %d", apperror.ErrInvalidRequest, size)
	}

	if mines < 1 || mines >= size*size {
		return fmt.Errorf("%w: %d mines on a %dx%d board", apperror.ErrInvalidRequest, mines, size, size)
	}

	return nil
}

func (that *Board) contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < that.size && pos.Col >= 0 && pos.Col < that.size
}

func (that *Board) eachNeighbor(pos Position, fn func(cell *Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			next := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if (dr == 0 && dc == 0) || !that.contains(next) {
				continue
			}

			fn(&that.cells[next.Row][next.Col])
		}
	}
}

func (that *Board) cell(pos Position) (*Cell, error) {
	if !that.contains(pos) {
		return nil, fmt.Errorf("%w: %d,%d on a %dx%d board", apperror.ErrOutOfRange, pos.Row, pos.Col, that.size, that.size)
	}

	if that.done {
		return nil, apperror.ErrGameFinished
	}

	return &that.cells[pos.Row][pos.Col], nil
}

// Reveal uncovers a hidden, unflagged cell. Uncovering a mine loses the game; uncovering the
// last safe cell wins it.
func (that *Board) Reveal(pos Position) error {
	cell, err := that.cell(pos)
	if err != nil {
		return err
	}

	switch {
	case cell.IsRevealed:
		return fmt.Errorf("%w: %d,%d is already revealed", apperror.ErrIllegalMove, pos.Row, pos.Col)
	case cell.IsFlagged:
		return fmt.Errorf("%w: %d,%d is flagged", apperror.ErrIllegalMove, pos.Row, pos.Col)
	}

	cell.IsRevealed = true

	if cell.IsMine {
		that.done = true
		return nil
	}

	that.hidden--
	if that.hidden == that.mines {
		that.done = true
		that.won = true
	}

	return nil
}

// ToggleFlag places or lifts a flag on a hidden cell.
func (that *Board) ToggleFlag(pos Position) error {
	cell, err := that.cell(pos)
	if err != nil {
		return err
	}

	switch {
	case cell.IsRevealed:
		return fmt.Errorf("%w: %d,%d is already revealed", apperror.ErrIllegalMove, pos.Row, pos.Col)
	case cell.IsFlagged:
		cell.IsFlagged = false
		that.flagsLeft++
	case that.flagsLeft == 0:
		return fmt.Errorf("%w: no flags left", apperror.ErrIllegalMove)
	default:
		cell.IsFlagged = true
		that.flagsLeft--
	}

	return nil
}

// Render returns one string per row. Mines are only shown once the game is over.
func (that *Board) Render() []string {
	rows := make([]string, 0, that.size)

	for _, line := range that.cells {
		var sb strings.Builder
		for _, cell := range line {
			switch {
			case cell.IsFlagged:
				sb.WriteString(symbolFlag)
			case cell.IsMine && (cell.IsRevealed || that.done):
				sb.WriteString(symbolMine)
			case cell.IsRevealed:
				sb.WriteString(strconv.Itoa(cell.NeighborCount))
			default:
				sb.WriteString(symbolHidden)
			}
		}
		rows = append(rows, sb.String())
	}

	return rows
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Mines() int {
	return that.mines
}

func (that *Board) FlagsLeft() int {
	return that.flagsLeft
}

// Hidden returns how many cells are still covered.
func (that *Board) Hidden() int {
	return that.hidden
}

func (that *Board) IsDone() bool {
	return that.done
}

func (that *Board) IsWon() bool {
	return that.won
}
