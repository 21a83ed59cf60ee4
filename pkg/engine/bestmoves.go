package engine

import (
	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// selectBestMoves keeps the top share of a list sorted best first.
// The rest are marked pruned and must not be expanded.
// This trades completeness for speed and may miss the true minimax value.
func selectBestMoves(ml MoveList, options BestMovesOptions) (best, pruned MoveList) {
	var n = len(ml)
	if n == 0 || options.PercentageBestMoves >= 100 {
		return ml, nil
	}
	var keep = (n*options.PercentageBestMoves + 99) / 100
	keep = Min(n, Max(Max(keep, options.MinBestMoves), 1))
	for _, m := range ml[keep:] {
		m.Pruned = true
	}
	return ml[:keep], ml[keep:]
}
