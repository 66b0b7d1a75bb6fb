package checkers

// Cell is the external form of one grid square.
type Cell struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// Snapshot is the full readable state of a board.
type Snapshot struct {
	Turn       Side     `json:"turn"`
	RedLeft    int      `json:"red_left"`
	BlackLeft  int      `json:"black_left"`
	RedKings   int      `json:"red_kings"`
	BlackKings int      `json:"black_kings"`
	Winner     Side     `json:"winner"`
	Board      [][]Cell `json:"board"`
}

func (that *Board) Snapshot() Snapshot {
	grid := make([][]Cell, 0, boardSize)

	for row := range boardSize {
		cells := make([]Cell, 0, boardSize)
		for col := range boardSize {
			piece := that.grid[row][col]
			cells = append(cells, Cell{
				Row:    row,
				Col:    col,
				Symbol: piece.Symbol(),
				Color:  piece.Color(),
			})
		}
		grid = append(grid, cells)
	}

	return Snapshot{
		Turn:       that.turn,
		RedLeft:    that.left[SideRed],
		BlackLeft:  that.left[SideBlack],
		RedKings:   that.kings[SideRed],
		BlackKings: that.kings[SideBlack],
		Winner:     that.WinningSide(),
		Board:      grid,
	}
}
