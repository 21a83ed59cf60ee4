package engine

import (
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// miniMaxStrategy maximizes for player 1 and minimizes for player 2.
// It never prunes, which makes it the reference for the other strategies.
type miniMaxStrategy struct {
	searchStrategy
}

func (s *miniMaxStrategy) Search(lastMove *Move, window Window, parent *TreeNode) *Move {
	if s.searchable.Done(lastMove, false) {
		return nil
	}
	var move, _ = s.searchInternal(lastMove, s.lookAhead(), parent)
	return move
}

// searchInternal returns the best move and its value from player 1's side.
func (s *miniMaxStrategy) searchInternal(lastMove *Move, depth int, parent *TreeNode) (*Move, int) {
	var done = s.searchable.Done(lastMove, false)
	if depth <= 0 || done {
		if s.quiescent(lastMove, depth, done) {
			var urgent = s.searchable.GenerateUrgentMoves(lastMove, s.weights)
			if len(urgent) != 0 {
				return s.findBestMove(lastMove, depth, urgent, parent)
			}
		}
		if lastMove == nil {
			return nil, 0
		}
		return lastMove, lastMove.Value
	}
	var list = s.generateMoves(lastMove, depth, parent)
	if len(list) == 0 {
		if lastMove == nil {
			return nil, 0
		}
		return nil, Sign(lastMove.Player1) * WinningValue
	}
	return s.findBestMove(lastMove, depth, list, parent)
}

func (s *miniMaxStrategy) findBestMove(lastMove *Move, depth int, list MoveList, parent *TreeNode) (*Move, int) {
	var player1 = s.searchable.PlayerToMove(lastMove)
	var bestMove *Move
	var bestValue int
	for i, m := range list {
		if s.isAborted() {
			break
		}
		s.incMoves()
		var child = parent.AddChild(m, FullWindow())
		var value int
		s.play(m, func() {
			_, value = s.searchInternal(m, depth-1, child)
		})
		if s.isAborted() {
			break
		}
		s.updatePercentDone(depth, i+1)
		m.InheritedValue = value
		if bestMove == nil ||
			player1 && value > bestValue ||
			!player1 && value < bestValue {
			bestMove = m
			bestValue = value
		}
	}
	if bestMove == nil {
		var m = list[0]
		return m, m.Value
	}
	bestMove.Selected = true
	return bestMove, bestValue
}
