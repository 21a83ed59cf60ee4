// Package board implements the mutable placement grid shared by the games.
package board

import (
	"fmt"
	"strings"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/zobrist"
)

// Board is changed in place by MakeMove and restored by UndoMove.
// It is owned by a single Searchable and is not safe for concurrent use.
type Board struct {
	rows      int
	cols      int
	cells     []Piece
	moves     MoveList
	numPieces [3]int
	key       HashKey
	zobrist   *zobrist.Table
}

func New(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board: bad size %dx%d", rows, cols))
	}
	return &Board{
		rows:    rows,
		cols:    cols,
		cells:   make([]Piece, rows*cols),
		zobrist: zobrist.ForSize(rows, cols),
	}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }
func (b *Board) Size() int { return b.rows * b.cols }

func (b *Board) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < b.rows &&
		loc.Col >= 0 && loc.Col < b.cols
}

func (b *Board) At(loc Location) Piece {
	return b.cells[loc.Row*b.cols+loc.Col]
}

func (b *Board) IsEmpty(loc Location) bool {
	return b.At(loc) == Empty
}

func (b *Board) Key() HashKey { return b.key }

// Moves returns the move history. The slice must not be modified.
func (b *Board) Moves() MoveList { return b.moves }

func (b *Board) NumMoves() int { return len(b.moves) }

func (b *Board) LastMove() *Move {
	if len(b.moves) == 0 {
		return nil
	}
	return b.moves[len(b.moves)-1]
}

func (b *Board) NumPieces(piece Piece) int {
	return b.numPieces[piece]
}

func (b *Board) IsFull() bool {
	return b.numPieces[Player1Piece]+b.numPieces[Player2Piece] == len(b.cells)
}

func (b *Board) MakeMove(m *Move) {
	if !m.Pass {
		if !b.InBounds(m.To) {
			panic(fmt.Sprintf("board: move %v out of bounds", m))
		}
		var idx = m.To.Row*b.cols + m.To.Col
		if b.cells[idx] != Empty {
			panic(fmt.Sprintf("board: move %v on occupied cell", m))
		}
		b.cells[idx] = m.Piece
		b.numPieces[m.Piece]++
		b.key ^= b.zobrist.Piece(m.To, m.Piece)
	}
	b.key ^= b.zobrist.Side()
	b.moves = append(b.moves, m)
}

// UndoMove takes back m, which must be the last move made.
func (b *Board) UndoMove(m *Move) {
	var last = b.LastMove()
	if last != m {
		panic(fmt.Sprintf("board: undo %v does not match last move %v", m, last))
	}
	b.moves[len(b.moves)-1] = nil
	b.moves = b.moves[:len(b.moves)-1]
	b.key ^= b.zobrist.Side()
	if !m.Pass {
		b.cells[m.To.Row*b.cols+m.To.Col] = Empty
		b.numPieces[m.Piece]--
		b.key ^= b.zobrist.Piece(m.To, m.Piece)
	}
}

// ComputeKey hashes the board from scratch.
func (b *Board) ComputeKey() HashKey {
	var key HashKey
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			var loc = Location{Row: row, Col: col}
			if piece := b.At(loc); piece != Empty {
				key ^= b.zobrist.Piece(loc, piece)
			}
		}
	}
	if len(b.moves)%2 == 1 {
		key ^= b.zobrist.Side()
	}
	return key
}

func (b *Board) Copy() *Board {
	var result = *b
	result.cells = append([]Piece(nil), b.cells...)
	result.moves = b.moves.Copy()
	return &result
}

// Equal compares the logical state including history and hash key.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols ||
		b.key != other.key || b.numPieces != other.numPieces ||
		len(b.moves) != len(other.moves) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	for i := range b.moves {
		if *b.moves[i] != *other.moves[i] {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb = &strings.Builder{}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			sb.WriteByte(b.At(Location{Row: row, Col: col}).Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
