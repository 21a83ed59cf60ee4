package engine

import (
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// negaScoutStrategy searches the first move with the full window and proves the
// others inferior with a null window, re-searching when the proof fails.
// With a table it follows alpha-beta with memory.
type negaScoutStrategy struct {
	searchStrategy
	table *TransTable
}

func (s *negaScoutStrategy) Search(lastMove *Move, window Window, parent *TreeNode) *Move {
	var move, score = s.searchWindow(lastMove, window, parent)
	if move != nil {
		move.InheritedValue = Sign(move.Player1) * score
	}
	return move
}

func (s *negaScoutStrategy) searchWindow(lastMove *Move, window Window, parent *TreeNode) (*Move, int) {
	if s.searchable.Done(lastMove, false) {
		return nil, s.leafScore(lastMove)
	}
	return s.searchInternal(lastMove, s.lookAhead(), window, parent)
}

func (s *negaScoutStrategy) searchInternal(lastMove *Move, depth int, window Window, parent *TreeNode) (*Move, int) {
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

func (s *negaScoutStrategy) findBestMove(key HashKey, depth int,
	list MoveList, window Window, parent *TreeNode) (*Move, int) {

	var alpha, beta = window.Alpha, window.Beta
	var b = beta
	var bestMove *Move
	var bestScore = -Infinity
	for i, m := range list {
		if s.isAborted() {
			break
		}
		s.incMoves()
		var child = parent.AddChild(m, Window{Alpha: alpha, Beta: b})
		var score int
		s.play(m, func() {
			var _, v = s.searchInternal(m, depth-1, Window{Alpha: -b, Beta: -alpha}, child)
			score = -v
			if i > 0 && score > alpha && score < beta && !s.isAborted() {
				child.SetComment("re-search")
				_, v = s.searchInternal(m, depth-1, Window{Alpha: -beta, Beta: -alpha}, child)
				score = -v
			}
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
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			parent.AddPrunedChildren(list[i+1:], Window{Alpha: alpha, Beta: beta}, "beta cutoff")
			break
		}
		b = alpha + 1
	}
	if bestMove == nil {
		return fallbackMove(list)
	}
	bestMove.Selected = true
	s.store(key, bestScore, depth, boundOf(bestScore, window.Alpha, beta), bestMove)
	return bestMove, bestScore
}

func (s *negaScoutStrategy) store(key HashKey, score, depth, bound int, move *Move) {
	if s.table != nil && !s.isAborted() {
		s.table.Put(key, score, depth, bound, move)
	}
}
