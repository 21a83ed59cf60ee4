// Package pente implements five in a row on a square board.
package pente

import (
	"github.com/pkg/errors"

	"github.com/ChizhovVadim/GameSearch/pkg/board"
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/eval"
)

const (
	Name         = "pente"
	DefaultSize  = 13
	winRunLength = 5
	// candidate cells lie this close to a piece already played
	candidateDistance = 1
	openThreeIndex    = 6
)

type Rules struct {
	size int
}

func New(size int) (*Rules, error) {
	if size < winRunLength || size > 19 {
		return nil, errors.Errorf("pente board size %d out of range [%d, 19]", size, winRunLength)
	}
	return &Rules{size: size}, nil
}

func (r *Rules) Name() string { return Name }

func (r *Rules) NewBoard() *board.Board {
	return board.New(r.size, r.size)
}

func (r *Rules) DefaultWeights() Weights {
	return Weights{
		{Name: "unused", Value: 0, Min: 0, Max: 0},
		{Name: "open two", Value: 1, Min: 0, Max: 100},
		{Name: "blocked three", Value: 3, Min: 0, Max: 100},
		{Name: "three", Value: 6, Min: 0, Max: 100},
		{Name: "split pair", Value: 2, Min: 0, Max: 100},
		{Name: "loose pair", Value: 4, Min: 0, Max: 100},
		{Name: "open three", Value: 24, Min: 0, Max: 300},
		{Name: "four", Value: 50, Min: 0, Max: 500},
		{Name: "open four", Value: 200, Min: 0, Max: 1000},
		{Name: "five", Value: 900, Min: 0, Max: 1000},
		{Name: "six", Value: 900, Min: 0, Max: 1000},
		{Name: "long run", Value: 900, Min: 0, Max: 1000},
	}
}

// CandidateMoves are the empty cells next to a piece, or the centre of an empty board.
func (r *Rules) CandidateMoves(b *board.Board) []Location {
	if b.NumPieces(Player1Piece)+b.NumPieces(Player2Piece) == 0 {
		return []Location{{Row: b.Rows() / 2, Col: b.Cols() / 2}}
	}
	var result []Location
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			var loc = Location{Row: row, Col: col}
			if b.IsEmpty(loc) && b.Neighbours(loc, candidateDistance) {
				result = append(result, loc)
			}
		}
	}
	return result
}

func (r *Rules) Worth(b *board.Board, lastMove *Move, weights Weights) int {
	var evaluator = eval.NewLineEvaluator(patterns, weights)
	var worth int
	for _, line := range b.Lines(winRunLength) {
		var symbols = b.Symbols(line)
		var p1, _ = evaluator.EvaluateLine(symbols, true)
		var p2, _ = evaluator.EvaluateLine(symbols, false)
		worth += p1 + p2
	}
	return worth
}

func (r *Rules) Won(b *board.Board, lastMove *Move) bool {
	return !lastMove.Pass && b.Wins(lastMove.To, winRunLength)
}

// IsUrgent is true for a move that wins, blocks a win
// or changes its lines by at least an open three.
func (r *Rules) IsUrgent(b *board.Board, m *Move, weights Weights) bool {
	if m.Pass {
		return false
	}
	if r.Won(b, m) {
		return true
	}
	var opponent = PieceOf(!m.Player1)
	for _, d := range board.Directions {
		if b.RunLengthWith(m.To, opponent, d) >= winRunLength {
			return true
		}
	}
	var evaluator = eval.NewLineEvaluator(patterns, weights)
	var diff int
	for _, d := range board.Directions {
		var cells, pos = b.LineThrough(m.To, d)
		diff += Abs(evaluator.ValueDifference(b.Symbols(cells), pos))
	}
	return diff >= int(weights.Value(openThreeIndex))
}

// InJeopardy is true when the last mover threatens to complete five.
func (r *Rules) InJeopardy(b *board.Board, lastMove *Move, weights Weights) bool {
	if lastMove == nil || lastMove.Pass {
		return false
	}
	return len(b.Threats(lastMove.To, lastMove.Piece, winRunLength)) != 0
}

func (r *Rules) MaxMoves(b *board.Board) int {
	return b.Size()
}
