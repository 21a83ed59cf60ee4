package engine

import (
	"math"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// uctStrategy is Monte Carlo tree search with UCB1 selection.
// Playouts run on a copy of the searchable so the tree path stays intact.
type uctStrategy struct {
	searchStrategy
}

func (s *uctStrategy) Search(lastMove *Move, window Window, parent *TreeNode) *Move {
	if s.searchable.Done(lastMove, false) {
		return nil
	}
	var root = newUctNode(lastMove)
	var maxSimulations = s.options.MonteCarlo.MaxSimulations
	var simulations int
	for simulations < maxSimulations && !s.isAborted() {
		s.playSimulation(root)
		simulations++
		s.percentDone.Store(int32(100 * simulations / maxSimulations))
	}
	s.addToTree(parent, root)
	var best = root.bestChild()
	s.logger.Debug().
		Int("simulations", simulations).
		Int("children", len(root.children)).
		Msg("uct finished")
	if best == nil {
		if !root.expanded {
			root.expand(s.searchable.GenerateMoves(lastMove, s.weights))
		}
		if len(root.children) == 0 {
			return nil
		}
		best = root.children[0]
	}
	best.move.Selected = true
	best.move.InheritedValue = Sign(best.move.Player1) * winRateToValue(best.winRate())
	return best.move
}

// playSimulation walks down the tree, plays out from the first new node
// and returns player 1's score for the playout.
func (s *uctStrategy) playSimulation(node *uctNode) float64 {
	var player1Score float64
	if node.numVisits == 0 || s.searchable.Done(node.move, false) {
		player1Score = s.playRandomGame(node.move)
	} else {
		if !node.expanded {
			node.expand(s.searchable.GenerateMoves(node.move, s.weights))
		}
		if len(node.children) == 0 {
			player1Score = s.playRandomGame(node.move)
		} else {
			var child = node.selectChild(s.options.MonteCarlo.ExploreExploitRatio)
			s.incMoves()
			s.play(child.move, func() {
				player1Score = s.playSimulation(child)
			})
		}
	}
	node.update(player1Score)
	return player1Score
}

// playRandomGame plays near best random moves on a copy until the game ends
// or the random look ahead is used up.
func (s *uctStrategy) playRandomGame(lastMove *Move) float64 {
	var searchable = s.searchable.Copy()
	var thresh = s.options.MonteCarlo.PercentLessThanBestThresh
	for i := 0; i < s.options.MonteCarlo.RandomLookAhead; i++ {
		if searchable.Done(lastMove, false) {
			break
		}
		var m = searchable.GenerateMoves(lastMove, s.weights).RandomMoveForThresh(thresh)
		if m == nil {
			break
		}
		searchable.MakeInternalMove(m)
		lastMove = m
	}
	if lastMove == nil {
		return 0.5
	}
	switch {
	case lastMove.Value > 0:
		return 1
	case lastMove.Value < 0:
		return 0
	}
	return 0.5
}

func (s *uctStrategy) addToTree(parent *TreeNode, node *uctNode) {
	if parent == nil {
		return
	}
	parent.SetAttribute("visits", node.numVisits)
	parent.SetAttribute("wins", int(math.Round(node.numWins)))
	for _, child := range node.children {
		if child.numVisits == 0 {
			continue
		}
		s.addToTree(parent.AddChild(child.move, FullWindow()), child)
	}
}

// winRateToValue maps a win rate to a score strictly inside the winning range.
func winRateToValue(winRate float64) int {
	return int(math.Round((2*winRate - 1) * (WinningValue - 1)))
}
