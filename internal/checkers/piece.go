package checkers

// Side is one of the two competing colors.
type Side string

const (
	SideNone  Side = "NONE"
	SideRed   Side = "RED"
	SideBlack Side = "BLACK"
)

// Kind tells what occupies a square.
type Kind uint8

const (
	// KindOffPath is a square outside the playable pattern: the border ring and the light squares.
	KindOffPath Kind = iota
	KindOpen
	KindPiece
)

const (
	colorGray = "GRAY"
	colorGold = "GOLD"

	symbolOffPath = "#"
	symbolOpen    = " "
)

// Delta is a single diagonal step.
type Delta struct {
	Row int
	Col int
}

// sideRule is the capability table entry of a side: its forward step and the row it promotes on.
type sideRule struct {
	rowStep      int
	colStep      int
	promotionRow int
	symbol       string
}

var sideRules = map[Side]sideRule{
	SideRed:   {rowStep: 1, colStep: 1, promotionRow: lastRow, symbol: "R"},
	SideBlack: {rowStep: -1, colStep: -1, promotionRow: firstRow, symbol: "B"},
}

// Opponent returns the other side; SideNone has no opponent.
func (that Side) Opponent() Side {
	switch that {
	case SideRed:
		return SideBlack
	case SideBlack:
		return SideRed
	default:
		return SideNone
	}
}

// Piece is the occupant of one board cell. Off-path and open squares are pieces of their own kind
// so every cell always holds exactly one occupant.
type Piece struct {
	Kind Kind
	Side Side
	King bool
	Row  int
	Col  int
}

// NewPiece creates an unpromoted piece of side at (row, col).
func NewPiece(side Side, row, col int) *Piece {
	return &Piece{Kind: KindPiece, Side: side, Row: row, Col: col}
}

func newOpen(row, col int) *Piece {
	return &Piece{Kind: KindOpen, Side: SideNone, Row: row, Col: col}
}

func newOffPath(row, col int) *Piece {
	return &Piece{Kind: KindOffPath, Side: SideNone, Row: row, Col: col}
}

func (that *Piece) IsPiece() bool {
	return that.Kind == KindPiece
}

func (that *Piece) IsOpen() bool {
	return that.Kind == KindOpen
}

func (that *Piece) IsOffPath() bool {
	return that.Kind == KindOffPath
}

// Square returns the coordinates the occupant currently sits on.
func (that *Piece) Square() Square {
	return Square{Row: that.Row, Col: that.Col}
}

// Promote makes the piece a king. It is never undone.
func (that *Piece) Promote() {
	that.King = true
}

// CanPromote reports whether an unpromoted piece stands on its side's farthest row.
func (that *Piece) CanPromote() bool {
	rule, ok := sideRules[that.Side]
	if !ok || !that.IsPiece() || that.King {
		return false
	}

	return that.Row == rule.promotionRow
}

// ForwardDeltas returns the forward-left and forward-right steps relative to the piece's home row.
func (that *Piece) ForwardDeltas() [2]Delta {
	rule := sideRules[that.Side]

	return [2]Delta{
		{Row: rule.rowStep, Col: rule.colStep},
		{Row: rule.rowStep, Col: -rule.colStep},
	}
}

// BackwardDeltas returns the backward-left and backward-right steps.
func (that *Piece) BackwardDeltas() [2]Delta {
	rule := sideRules[that.Side]

	return [2]Delta{
		{Row: -rule.rowStep, Col: -rule.colStep},
		{Row: -rule.rowStep, Col: rule.colStep},
	}
}

// Directions lists every direction the piece may travel: forward only, or all four for a king.
func (that *Piece) Directions() []Delta {
	forward := that.ForwardDeltas()
	if !that.King {
		return forward[:]
	}

	backward := that.BackwardDeltas()
	return []Delta{forward[0], forward[1], backward[0], backward[1]}
}

func (that *Piece) IsSameSide(other *Piece) bool {
	return other != nil && that.IsPiece() && other.IsPiece() && that.Side == other.Side
}

func (that *Piece) IsOpposingSide(other *Piece) bool {
	return other != nil && that.IsPiece() && other.IsPiece() && that.Side != other.Side
}

func (that *Piece) Symbol() string {
	switch that.Kind {
	case KindOpen:
		return symbolOpen
	case KindPiece:
		return sideRules[that.Side].symbol
	default:
		return symbolOffPath
	}
}

// Color distinguishes kings from plain pieces; the symbol stays the side's.
func (that *Piece) Color() string {
	switch {
	case !that.IsPiece():
		return colorGray
	case that.King:
		return colorGold
	default:
		return string(that.Side)
	}
}

func (that *Piece) moveTo(row, col int) {
	that.Row = row
	that.Col = col
}
