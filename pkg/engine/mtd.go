package engine

import (
	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

const mtdMaxIterations = 100

// mtdStrategy converges on the minimax value with null window searches
// of an inner memory strategy, narrowing a lower and an upper bound.
type mtdStrategy struct {
	inner      windowSearcher
	searchable Searchable
	logger     zerolog.Logger
}

func (s *mtdStrategy) Abort() { s.inner.Abort() }
func (s *mtdStrategy) NumMovesConsidered() int64 { return s.inner.NumMovesConsidered() }
func (s *mtdStrategy) PercentDone() int { return s.inner.PercentDone() }

func (s *mtdStrategy) setMaxNodes(n int64) {
	if limiter, ok := s.inner.(nodeLimiter); ok {
		limiter.setMaxNodes(n)
	}
}

func (s *mtdStrategy) Search(lastMove *Move, window Window, parent *TreeNode) *Move {
	if s.searchable.Done(lastMove, false) {
		return nil
	}
	var player1 = s.searchable.PlayerToMove(lastMove)
	var lower, upper = window.Alpha, window.Beta
	var guess = s.firstGuess(lastMove, player1, lower, upper)
	var bestMove, lastFound *Move
	var iterations int
	for ; iterations < mtdMaxIterations && lower < upper; iterations++ {
		var beta = guess
		if guess == lower {
			beta = guess + 1
		}
		var move, score = s.inner.searchWindow(lastMove, NullWindow(beta), parent)
		if move == nil || s.inner.isAborted() {
			break
		}
		lastFound = move
		guess = score
		if score < beta {
			upper = score
		} else {
			lower = score
			bestMove = move
		}
		s.logger.Debug().
			Int("iteration", iterations).
			Int("beta", beta).
			Int("score", score).
			Int("lower", lower).
			Int("upper", upper).
			Msg("mtd step")
	}
	if iterations == mtdMaxIterations {
		s.logger.Warn().Int("lower", lower).Int("upper", upper).Msg("mtd did not converge")
	}
	if bestMove == nil {
		bestMove = lastFound
	}
	if bestMove == nil {
		return nil
	}
	bestMove.InheritedValue = Sign(player1) * guess
	return bestMove
}

// firstGuess starts from the static value of the current position.
func (s *mtdStrategy) firstGuess(lastMove *Move, player1 bool, lower, upper int) int {
	var guess int
	if lastMove != nil {
		guess = Sign(player1) * lastMove.Value
	}
	return Max(lower+1, Min(upper-1, guess))
}
