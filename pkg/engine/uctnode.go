package engine

import (
	"math"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// uctNode keeps playout statistics for the position after move.
// numWins is counted for the player who made move; a draw counts half.
type uctNode struct {
	move      *Move
	numVisits int
	numWins   float64
	children  []*uctNode
	expanded  bool
}

func newUctNode(m *Move) *uctNode {
	return &uctNode{move: m}
}

func (n *uctNode) winRate() float64 {
	if n.numVisits == 0 {
		return 0
	}
	return n.numWins / float64(n.numVisits)
}

func (n *uctNode) expand(ml MoveList) {
	n.children = make([]*uctNode, len(ml))
	for i, m := range ml {
		n.children[i] = newUctNode(m)
	}
	n.expanded = true
}

// update backs up a playout result given as player 1's score in [0, 1].
func (n *uctNode) update(player1Score float64) {
	n.numVisits++
	if n.move == nil {
		return
	}
	if n.move.Player1 {
		n.numWins += player1Score
	} else {
		n.numWins += 1 - player1Score
	}
}

// selectChild returns the child with the highest upper confidence bound.
// Unvisited children come first.
func (n *uctNode) selectChild(exploreExploitRatio float64) *uctNode {
	var best *uctNode
	var bestValue = math.Inf(-1)
	for _, child := range n.children {
		if child.numVisits == 0 {
			return child
		}
		var value = ucb1(child.winRate(), exploreExploitRatio, n.numVisits, child.numVisits)
		if value > bestValue {
			bestValue = value
			best = child
		}
	}
	return best
}

// bestChild picks the highest win rate among visited children; ties go to the first.
func (n *uctNode) bestChild() *uctNode {
	var best *uctNode
	for _, child := range n.children {
		if child.numVisits == 0 {
			continue
		}
		if best == nil || child.winRate() > best.winRate() {
			best = child
		}
	}
	return best
}

func ucb1(score, exploreExploitRatio float64, parentVisits, visits int) float64 {
	return score + exploreExploitRatio*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}
