// Package tictactoe implements three in a row on a 3x3 board.
package tictactoe

import (
	"github.com/ChizhovVadim/GameSearch/pkg/board"
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/eval"
)

const (
	Name         = "tictactoe"
	size         = 3
	winRunLength = 3
)

var patterns = eval.NewPatterns(winRunLength, 2, []eval.Pattern{
	{Shape: "X_", WeightIndex: 0},
	{Shape: "_X_", WeightIndex: 0},
	{Shape: "XX", WeightIndex: 1},
	{Shape: "XX_", WeightIndex: 1},
	{Shape: "X_X", WeightIndex: 1},
	{Shape: "XXX", WeightIndex: 2},
})

type Rules struct{}

func (Rules) Name() string { return Name }

func (Rules) NewBoard() *board.Board {
	return board.New(size, size)
}

func (Rules) DefaultWeights() Weights {
	return Weights{
		{Name: "single", Value: 1, Min: 0, Max: 10},
		{Name: "pair", Value: 10, Min: 0, Max: 100},
		{Name: "line", Value: 100, Min: 0, Max: 1000},
	}
}

func (Rules) CandidateMoves(b *board.Board) []Location {
	var result []Location
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			var loc = Location{Row: row, Col: col}
			if b.IsEmpty(loc) {
				result = append(result, loc)
			}
		}
	}
	return result
}

func (Rules) Worth(b *board.Board, lastMove *Move, weights Weights) int {
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

func (Rules) Won(b *board.Board, lastMove *Move) bool {
	return !lastMove.Pass && b.Wins(lastMove.To, winRunLength)
}

// IsUrgent is true for a move that wins or takes the opponent's winning cell.
func (r Rules) IsUrgent(b *board.Board, m *Move, weights Weights) bool {
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
	return false
}

// InJeopardy is true when the last mover threatens to complete a line.
func (Rules) InJeopardy(b *board.Board, lastMove *Move, weights Weights) bool {
	if lastMove == nil || lastMove.Pass {
		return false
	}
	return len(b.Threats(lastMove.To, lastMove.Piece, winRunLength)) != 0
}

func (Rules) MaxMoves(b *board.Board) int {
	return b.Size()
}
