package board

import (
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

type Direction struct {
	DRow int
	DCol int
}

// Directions are the row, column, diagonal and anti-diagonal steps.
var Directions = [...]Direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// LineThrough returns the full line through loc in direction d
// and the index of loc within it.
func (b *Board) LineThrough(loc Location, d Direction) (cells []Location, pos int) {
	var start = loc
	for {
		var prev = Location{Row: start.Row - d.DRow, Col: start.Col - d.DCol}
		if !b.InBounds(prev) {
			break
		}
		start = prev
		pos++
	}
	for cur := start; b.InBounds(cur); cur = (Location{Row: cur.Row + d.DRow, Col: cur.Col + d.DCol}) {
		cells = append(cells, cur)
	}
	return
}

// Lines returns every full row, column and diagonal having at least minLen cells.
func (b *Board) Lines(minLen int) [][]Location {
	var result [][]Location
	var add = func(start Location, d Direction) {
		var cells []Location
		for cur := start; b.InBounds(cur); cur = (Location{Row: cur.Row + d.DRow, Col: cur.Col + d.DCol}) {
			cells = append(cells, cur)
		}
		if len(cells) >= minLen {
			result = append(result, cells)
		}
	}
	for row := 0; row < b.rows; row++ {
		add(Location{Row: row}, Directions[0])
	}
	for col := 0; col < b.cols; col++ {
		add(Location{Col: col}, Directions[1])
	}
	for row := b.rows - 1; row >= 0; row-- {
		add(Location{Row: row}, Directions[2])
	}
	for col := 1; col < b.cols; col++ {
		add(Location{Col: col}, Directions[2])
	}
	for col := 0; col < b.cols; col++ {
		add(Location{Col: col}, Directions[3])
	}
	for row := 1; row < b.rows; row++ {
		add(Location{Row: row, Col: b.cols - 1}, Directions[3])
	}
	return result
}

// Symbols renders cells as a pattern string over 'X', 'O' and '_'.
func (b *Board) Symbols(cells []Location) []byte {
	var result = make([]byte, len(cells))
	for i, loc := range cells {
		result[i] = b.At(loc).Symbol()
	}
	return result
}

// Neighbours reports whether any piece lies within distance of loc.
func (b *Board) Neighbours(loc Location, distance int) bool {
	for dr := -distance; dr <= distance; dr++ {
		for dc := -distance; dc <= distance; dc++ {
			var n = Location{Row: loc.Row + dr, Col: loc.Col + dc}
			if (dr != 0 || dc != 0) && b.InBounds(n) && !b.IsEmpty(n) {
				return true
			}
		}
	}
	return false
}

// RunLength counts the pieces equal to the one at loc in the line through loc.
func (b *Board) RunLength(loc Location, d Direction) int {
	var piece = b.At(loc)
	if piece == Empty {
		return 0
	}
	return b.RunLengthWith(loc, piece, d)
}

// RunLengthWith counts the run through loc as if piece stood on loc.
func (b *Board) RunLengthWith(loc Location, piece Piece, d Direction) int {
	var n = 1
	for _, sign := range [...]int{1, -1} {
		var cur = Location{Row: loc.Row + sign*d.DRow, Col: loc.Col + sign*d.DCol}
		for b.InBounds(cur) && b.At(cur) == piece {
			n++
			cur = Location{Row: cur.Row + sign*d.DRow, Col: cur.Col + sign*d.DCol}
		}
	}
	return n
}

// Threats returns the empty cells on the lines through loc where piece
// would complete a run of at least runLength.
func (b *Board) Threats(loc Location, piece Piece, runLength int) []Location {
	var result []Location
	for _, d := range Directions {
		var cells, _ = b.LineThrough(loc, d)
		for _, cell := range cells {
			if b.IsEmpty(cell) && b.RunLengthWith(cell, piece, d) >= runLength {
				result = append(result, cell)
			}
		}
	}
	return result
}

// Wins reports whether the piece at loc is part of a run of at least runLength.
func (b *Board) Wins(loc Location, runLength int) bool {
	for _, d := range Directions {
		if b.RunLength(loc, d) >= runLength {
			return true
		}
	}
	return false
}
