package engine

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// Strategy chooses a move for the side to move after lastMove.
// The returned move carries its backed up score in InheritedValue
// from player 1's side. Search returns nil when the game is over.
type Strategy interface {
	Search(lastMove *Move, window Window, parent *TreeNode) *Move
	// Abort stops the search cooperatively. Search then returns
	// the best move among the fully searched ones.
	Abort()
	NumMovesConsidered() int64
	PercentDone() int
}

// windowSearcher is a memory strategy MTD(f) can drive with null windows.
type windowSearcher interface {
	Strategy
	searchWindow(lastMove *Move, window Window, parent *TreeNode) (*Move, int)
	isAborted() bool
}

type searchStrategy struct {
	searchable       Searchable
	weights          Weights
	options          *SearchOptions
	logger           zerolog.Logger
	maxNodes         int64
	aborted          atomic.Bool
	movesConsidered  atomic.Int64
	percentDone      atomic.Int32
	numTopLevelMoves int
}

func NewStrategy(searchable Searchable, weights Weights, options *SearchOptions,
	logger zerolog.Logger) (Strategy, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return newStrategy(options.Strategy, searchable, weights, options, logger)
}

func newStrategy(strategyType StrategyType, searchable Searchable, weights Weights,
	options *SearchOptions, logger zerolog.Logger) (Strategy, error) {
	var base = func() searchStrategy {
		return searchStrategy{
			searchable: searchable,
			weights:    weights,
			options:    options,
			logger:     logger.With().Str("strategy", strategyType.String()).Logger(),
		}
	}
	switch strategyType {
	case MiniMax:
		return &miniMaxStrategy{searchStrategy: base()}, nil
	case NegaMax:
		return &negaMaxStrategy{searchStrategy: base()}, nil
	case NegaMaxMemory:
		return &negaMaxStrategy{searchStrategy: base(), table: NewTransTable(options.TransTableBits)}, nil
	case NegaScout:
		return &negaScoutStrategy{searchStrategy: base()}, nil
	case NegaScoutMemory:
		return &negaScoutStrategy{searchStrategy: base(), table: NewTransTable(options.TransTableBits)}, nil
	case MTD:
		var inner, err = newStrategy(options.MtdInner, searchable, weights, options, logger)
		if err != nil {
			return nil, err
		}
		var ws, ok = inner.(windowSearcher)
		if !ok || !options.MtdInner.Memory() {
			return nil, errors.Errorf("mtd cannot wrap %v", options.MtdInner)
		}
		return &mtdStrategy{
			inner:      ws,
			searchable: searchable,
			logger:     logger.With().Str("strategy", MTD.String()).Logger(),
		}, nil
	case UCT:
		return &uctStrategy{searchStrategy: base()}, nil
	}
	return nil, errors.Errorf("unknown strategy %v", strategyType)
}

func (s *searchStrategy) Abort() {
	s.aborted.Store(true)
}

func (s *searchStrategy) isAborted() bool {
	return s.aborted.Load()
}

func (s *searchStrategy) NumMovesConsidered() int64 {
	return s.movesConsidered.Load()
}

func (s *searchStrategy) PercentDone() int {
	return int(s.percentDone.Load())
}

func (s *searchStrategy) lookAhead() int {
	return s.options.Brute.LookAhead
}

func (s *searchStrategy) incMoves() {
	var n = s.movesConsidered.Add(1)
	if s.maxNodes > 0 && n >= s.maxNodes {
		s.Abort()
	}
}

// updatePercentDone tracks progress over the top level moves only.
func (s *searchStrategy) updatePercentDone(depth, numSearched int) {
	if depth != s.lookAhead() || s.numTopLevelMoves == 0 {
		return
	}
	s.percentDone.Store(int32(100 * numSearched / s.numTopLevelMoves))
}

// play makes m for the duration of fn and undoes it on every exit path.
func (s *searchStrategy) play(m *Move, fn func()) {
	s.searchable.MakeInternalMove(m)
	defer s.searchable.UndoInternalMove(m)
	fn()
}

// quiescent reports whether a leaf is unstable enough to keep searching urgent moves.
func (s *searchStrategy) quiescent(lastMove *Move, depth int, done bool) bool {
	return s.options.Brute.Quiescence && !done &&
		depth > -s.options.Brute.MaxQuiescentDepth &&
		!s.isAborted() &&
		s.searchable.InJeopardy(lastMove, s.weights)
}

// generateMoves returns the moves to expand, applying the best moves filter.
func (s *searchStrategy) generateMoves(lastMove *Move, depth int, parent *TreeNode) MoveList {
	var ml = s.searchable.GenerateMoves(lastMove, s.weights)
	var best, pruned = selectBestMoves(ml, s.options.BestMoves)
	if depth == s.lookAhead() {
		s.numTopLevelMoves = len(best)
	}
	parent.AddPrunedChildren(pruned, FullWindow(), "not among best moves")
	return best
}

// noMovesScore is the value for the side to move when the game is not over
// but no move is available: the last mover wins.
func noMovesScore(lastMove *Move) int {
	if lastMove == nil {
		return 0
	}
	return -WinningValue
}

// leafScore is the static value from the point of view of the side to move.
func (s *searchStrategy) leafScore(lastMove *Move) int {
	if lastMove == nil {
		return 0
	}
	return Sign(s.searchable.PlayerToMove(lastMove)) * lastMove.Value
}

func (s *searchStrategy) setMaxNodes(n int64) {
	s.maxNodes = n
}

// fallbackMove is used when an abort arrives before any move was fully searched.
func fallbackMove(list MoveList) (*Move, int) {
	var m = list[0]
	return m, Sign(m.Player1) * m.Value
}

type nodeLimiter interface {
	setMaxNodes(n int64)
}
