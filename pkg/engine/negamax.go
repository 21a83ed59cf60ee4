package engine

import (
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// negaMaxStrategy is fail-soft negamax with optional alpha-beta pruning.
// With a table it becomes negamax with memory.
type negaMaxStrategy struct {
	searchStrategy
	table *TransTable
}

func (s *negaMaxStrategy) Search(lastMove *Move, window Window, parent *TreeNode) *Move {
	var move, score = s.searchWindow(lastMove, window, parent)
	if move != nil {
		move.InheritedValue = Sign(move.Player1) * score
	}
	return move
}

func (s *negaMaxStrategy) searchWindow(lastMove *Move, window Window, parent *TreeNode) (*Move, int) {
	if s.searchable.Done(lastMove, false) {
		return nil, s.leafScore(lastMove)
	}
	return s.searchInternal(lastMove, s.lookAhead(), window, parent)
}

// searchInternal returns the best move and its score for the side to move.
func (s *negaMaxStrategy) searchInternal(lastMove *Move, depth int, window Window, parent *TreeNode) (*Move, int) {
	var key = s.searchable.HashKey()
	if s.table != nil && depth < s.lookAhead() {
		if score, move, ok := s.table.Get(key, depth, window.Alpha, window.Beta); ok {
			parent.SetComment("cached")
			return move, score
		}
	}
	var done = s.searchable.Done(lastMove, false)
	if depth <= 0 || done {
		if s.quiescent(lastMove, depth, done) {
			var urgent = s.searchable.GenerateUrgentMoves(lastMove, s.weights)
			if len(urgent) != 0 {
				return s.findBestMove(key, depth, urgent, window, parent)
			}
		}
		var score = s.leafScore(lastMove)
		s.store(key, score, depth, boundExact, lastMove)
		return lastMove, score
	}
	var list = s.generateMoves(lastMove, depth, parent)
	if len(list) == 0 {
		return nil, noMovesScore(lastMove)
	}
	return s.findBestMove(key, depth, list, window, parent)
}

func (s *negaMaxStrategy) findBestMove(key HashKey, depth int,
	list MoveList, window Window, parent *TreeNode) (*Move, int) {

	var alpha = window.Alpha
	var bestMove *Move
	var bestScore = -Infinity
	for i, m := range list {
		if s.isAborted() {
			break
		}
		s.incMoves()
		var child = parent.AddChild(m, window)
		var score int
		s.play(m, func() {
			var _, v = s.searchInternal(m, depth-1, window.Negate(), child)
			score = -v
		})
		if s.isAborted() {
			break
		}
		s.updatePercentDone(depth, i+1)
		m.InheritedValue = Sign(m.Player1) * score
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if s.options.Brute.AlphaBeta {
			if bestScore > window.Alpha {
				window.Alpha = bestScore
			}
			if window.Alpha >= window.Beta {
				parent.AddPrunedChildren(list[i+1:], window, "alpha-beta cutoff")
				break
			}
		}
	}
	if bestMove == nil {
		return fallbackMove(list)
	}
	bestMove.Selected = true
	s.store(key, bestScore, depth, boundOf(bestScore, alpha, window.Beta), bestMove)
	return bestMove, bestScore
}

func (s *negaMaxStrategy) store(key HashKey, score, depth, bound int, move *Move) {
	if s.table != nil && !s.isAborted() {
		s.table.Put(key, score, depth, bound, move)
	}
}
