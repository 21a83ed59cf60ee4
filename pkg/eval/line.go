package eval

import (
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

const (
	player1Symbol = 'X'
	player2Symbol = 'O'
)

type LineEvaluator struct {
	patterns *Patterns
	weights  Weights
}

func NewLineEvaluator(patterns *Patterns, weights Weights) *LineEvaluator {
	return &LineEvaluator{
		patterns: patterns,
		weights:  weights,
	}
}

// Evaluate scores the patterns of the line that overlap pos within [minpos, maxpos].
// The result is positive for player 1 patterns and negative for player 2 ones.
// matched lists every pattern looked up, recognized or not.
func (e *LineEvaluator) Evaluate(line []byte, player1Perspective bool,
	pos, minpos, maxpos int) (worth int, matched []string) {

	if pos < minpos || pos > maxpos {
		panic("eval: position outside of line range")
	}
	var ctx = evalContext{
		evaluator:    e,
		line:         line,
		opponentSymb: opponentSymbol(player1Perspective),
	}
	worth = ctx.evalLine(pos, minpos, maxpos)
	return worth, ctx.matched
}

// EvaluateLine scores every run of the player's pieces in the whole line.
func (e *LineEvaluator) EvaluateLine(line []byte, player1Perspective bool) (worth int, matched []string) {
	if len(line) < e.patterns.minInterestingLength {
		return 0, nil
	}
	var ctx = evalContext{
		evaluator:    e,
		line:         line,
		opponentSymb: opponentSymbol(player1Perspective),
	}
	var ownSymb = opponentSymbol(!player1Perspective)
	var maxpos = len(line) - 1
	for i := 0; i <= maxpos; i++ {
		if line[i] != ownSymb {
			continue
		}
		var stop = ctx.stopPosition(i, maxpos)
		worth += ctx.weight(ctx.startPosition(i, 0), stop)
		i = stop
	}
	return worth, ctx.matched
}

// ValueDifference is the change of the line's worth caused by the piece at pos.
func (e *LineEvaluator) ValueDifference(line []byte, pos int) int {
	if len(line) < e.patterns.minInterestingLength {
		return 0
	}
	var symb = line[pos]
	var player1Perspective = symb == player1Symbol
	var maxpos = len(line) - 1

	line[pos] = Unoccupied
	var oldScore, _ = e.Evaluate(line, player1Perspective, pos, 0, maxpos)
	var oldOther, _ = e.Evaluate(line, !player1Perspective, pos, 0, maxpos)

	line[pos] = symb
	var newScore, _ = e.Evaluate(line, player1Perspective, pos, 0, maxpos)
	var newOther, _ = e.Evaluate(line, !player1Perspective, pos, 0, maxpos)

	return newScore + newOther - oldScore - oldOther
}

type evalContext struct {
	evaluator    *LineEvaluator
	line         []byte
	opponentSymb byte
	matched      []string
}

func (ctx *evalContext) evalLine(pos, minpos, maxpos int) int {
	if maxpos-minpos+1 < ctx.evaluator.patterns.minInterestingLength {
		return 0
	}
	// a blocking piece in the middle splits the range in two halves
	if ctx.line[pos] == ctx.opponentSymb && pos != minpos && pos != maxpos {
		return ctx.evalLine(pos, minpos, pos) + ctx.evalLine(pos, pos, maxpos)
	}
	return ctx.weight(ctx.startPosition(pos, minpos), ctx.stopPosition(pos, maxpos))
}

func (ctx *evalContext) weight(start, stop int) int {
	ctx.matched = append(ctx.matched, string(ctx.line[start:stop+1]))
	var index = ctx.evaluator.patterns.indexOfRange(ctx.line, start, stop)
	if index < 0 {
		return 0
	}
	var weight = int(ctx.evaluator.weights.Value(index))
	if ctx.opponentSymb == player2Symbol {
		return weight
	}
	return -weight
}

func (ctx *evalContext) startPosition(pos, minpos int) int {
	var start = pos
	if ctx.line[pos] == ctx.opponentSymb && pos == minpos {
		return start + 1
	}
	for start > minpos && ctx.line[start-1] != ctx.opponentSymb &&
		!ctx.next2Unoccupied(start, -1) {
		start--
	}
	return start
}

func (ctx *evalContext) stopPosition(pos, maxpos int) int {
	var stop = pos
	if ctx.line[pos] == ctx.opponentSymb && pos == maxpos {
		return stop - 1
	}
	for stop < maxpos && ctx.line[stop+1] != ctx.opponentSymb &&
		!ctx.next2Unoccupied(stop, 1) {
		stop++
	}
	return stop
}

func (ctx *evalContext) next2Unoccupied(pos, dir int) bool {
	return ctx.line[pos] == Unoccupied && ctx.line[pos+dir] == Unoccupied
}

func opponentSymbol(player1Perspective bool) byte {
	if player1Perspective {
		return player2Symbol
	}
	return player1Symbol
}
