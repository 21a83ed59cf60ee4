package game

import (
	"github.com/ChizhovVadim/GameSearch/pkg/common"
)

// sortMoves orders best first for the side to move.
// Insertion sort keeps equal moves in generation order.
func sortMoves(ml common.MoveList, player1 bool) {
	var sign = common.Sign(player1)
	for i := 1; i < len(ml); i++ {
		j, t := i, ml[i]
		for ; j > 0 && sign*ml[j-1].Value < sign*t.Value; j-- {
			ml[j] = ml[j-1]
		}
		ml[j] = t
	}
}

func isSorted(ml common.MoveList, player1 bool) bool {
	var sign = common.Sign(player1)
	for i := 1; i < len(ml); i++ {
		if sign*ml[i-1].Value < sign*ml[i].Value {
			return false
		}
	}
	return true
}
