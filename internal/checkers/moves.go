package checkers

import (
	"maps"
	"slices"
)

// enumerator walks the board from one origin piece and collects every legal terminus.
// Each capture branch carries its own copy of the captured list and the visited set.
type enumerator struct {
	board     *Board
	origin    *Piece
	moves     Moves
	footprint map[Square]struct{}
}

func (that *Board) enumerate(origin *Piece) cacheEntry {
	walker := &enumerator{
		board:     that,
		origin:    origin,
		moves:     make(Moves),
		footprint: make(map[Square]struct{}),
	}

	start := origin.Square()
	walker.look(start)

	for _, dir := range origin.Directions() {
		walker.step(start, dir)
	}

	walker.jump(start, nil, map[Square]struct{}{start: {}})

	return cacheEntry{moves: walker.moves, footprint: walker.footprint}
}

// look reads a square and remembers it in the footprint. Squares outside the grid read as nil.
func (that *enumerator) look(square Square) *Piece {
	piece := that.board.at(square)
	if piece != nil {
		that.footprint[square] = struct{}{}
	}

	return piece
}

// step records a plain one-square move onto an open square.
func (that *enumerator) step(from Square, dir Delta) {
	to := from.Add(dir)

	if piece := that.look(to); piece != nil && piece.IsOpen() {
		that.record(to, nil)
	}
}

// jump follows capture chains from `from`. A jump needs an opposing piece next to `from` and an
// open, unvisited square right behind it; the landing square becomes the next chain node.
func (that *enumerator) jump(from Square, captured []*Piece, visited map[Square]struct{}) {
	for _, dir := range that.origin.Directions() {
		over := from.Add(dir)
		if _, seen := visited[over]; seen {
			continue
		}

		victim := that.look(over)
		if !that.origin.IsOpposingSide(victim) {
			continue
		}

		land := over.Add(dir)
		if _, seen := visited[land]; seen {
			continue
		}

		target := that.look(land)
		if target == nil || !target.IsOpen() {
			continue
		}

		chain := append(slices.Clone(captured), victim)

		next := maps.Clone(visited)
		next[over] = struct{}{}
		next[land] = struct{}{}

		that.record(land, chain)
		that.jump(land, chain, next)
	}
}

// record keeps, per destination, the chain with the most captures; on a tie the first one stays.
func (that *enumerator) record(dest Square, captured []*Piece) {
	if captured == nil {
		captured = []*Piece{}
	}

	if existing, ok := that.moves[dest]; ok && len(existing) >= len(captured) {
		return
	}

	that.moves[dest] = captured
}
