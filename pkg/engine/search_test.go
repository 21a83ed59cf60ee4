package engine

import (
	"testing"

	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
	"github.com/ChizhovVadim/GameSearch/pkg/games/tictactoe"
)

// treeSearchable is a uniform game tree with pseudo random move values.
// Every node has its own hash key, so there are no transpositions.
type treeSearchable struct {
	branching int
	depth     int
	seed      uint64
	path      MoveList
}

func newTreeSearchable(branching, depth int, seed uint64) *treeSearchable {
	return &treeSearchable{branching: branching, depth: depth, seed: seed}
}

func (s *treeSearchable) pathCode(extra int) uint64 {
	var h = s.seed
	for _, m := range s.path {
		h = h*uint64(s.branching+1) + uint64(m.To.Col+1)
	}
	if extra >= 0 {
		h = h*uint64(s.branching+1) + uint64(extra+1)
	}
	return h
}

func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func (s *treeSearchable) GenerateMoves(lastMove *Move, weights Weights) MoveList {
	if len(s.path) >= s.depth {
		return nil
	}
	var ml = make(MoveList, s.branching)
	for i := range ml {
		var m = NewMove(Location{Row: len(s.path), Col: i}, PlayerToMoveAfter(lastMove))
		m.Value = int(mix(s.pathCode(i))%201) - 100
		ml[i] = m
	}
	return ml
}

func (s *treeSearchable) GenerateUrgentMoves(lastMove *Move, weights Weights) MoveList {
	return nil
}

func (s *treeSearchable) MakeInternalMove(m *Move) {
	s.path = append(s.path, m)
}

func (s *treeSearchable) UndoInternalMove(m *Move) {
	if len(s.path) == 0 || s.path[len(s.path)-1] != m {
		panic("undo mismatch")
	}
	s.path = s.path[:len(s.path)-1]
}

func (s *treeSearchable) Worth(lastMove *Move, weights Weights) int {
	if lastMove == nil {
		return 0
	}
	return lastMove.Value
}

func (s *treeSearchable) Done(lastMove *Move, recordWin bool) bool { return false }

func (s *treeSearchable) InJeopardy(lastMove *Move, weights Weights) bool { return false }

func (s *treeSearchable) PlayerToMove(lastMove *Move) bool { return PlayerToMoveAfter(lastMove) }

func (s *treeSearchable) NumMoves() int { return len(s.path) }

func (s *treeSearchable) HashKey() HashKey {
	return HashKey(mix(s.pathCode(-1) ^ uint64(len(s.path))<<56))
}

func (s *treeSearchable) Copy() Searchable {
	var c = *s
	c.path = s.path.Copy()
	return &c
}

func testOptions(strategy StrategyType, lookAhead int) *SearchOptions {
	var options = NewOptions()
	options.Strategy = strategy
	options.Brute.LookAhead = lookAhead
	options.TransTableBits = 16
	return &options
}

func searchValue(t *testing.T, s Searchable, options *SearchOptions) (*Move, int) {
	t.Helper()
	var strategy, err = NewStrategy(s, nil, options, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	var m = strategy.Search(nil, FullWindow(), nil)
	if m == nil {
		t.Fatal("no move from", options.Strategy)
	}
	if s.NumMoves() != 0 {
		t.Fatal("search left moves on the board", options.Strategy)
	}
	return m, m.InheritedValue
}

func TestStrategiesAgreeWithMiniMax(t *testing.T) {
	var strategies = []StrategyType{NegaMax, NegaMaxMemory, NegaScout, NegaScoutMemory, MTD}
	for seed := uint64(1); seed <= 5; seed++ {
		for depth := 1; depth <= 4; depth++ {
			var tree = newTreeSearchable(4, depth, seed)
			var best, expected = searchValue(t, tree, testOptions(MiniMax, depth))
			for _, strategy := range strategies {
				var m, value = searchValue(t, tree, testOptions(strategy, depth))
				if value != expected {
					t.Errorf("seed %d depth %d: %v got %d, minimax %d",
						seed, depth, strategy, value, expected)
				}
				if strategy == NegaMax && m.To != best.To {
					t.Errorf("seed %d depth %d: negamax chose %v, minimax %v",
						seed, depth, m, best)
				}
			}
		}
	}
}

func TestAlphaBetaSearchesFewerMoves(t *testing.T) {
	var tree = newTreeSearchable(5, 4, 7)
	var count = func(alphaBeta bool) int64 {
		var options = testOptions(NegaMax, 4)
		options.Brute.AlphaBeta = alphaBeta
		var strategy, err = NewStrategy(tree, nil, options, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		strategy.Search(nil, FullWindow(), nil)
		return strategy.NumMovesConsidered()
	}
	var full, pruned = count(false), count(true)
	if full != 5+25+125+625 {
		t.Error("full negamax should visit every node", full)
	}
	if pruned >= full {
		t.Error("alpha-beta did not prune", pruned, full)
	}
}

func TestPercentageBestMoves(t *testing.T) {
	var ml = make(MoveList, 10)
	for i := range ml {
		ml[i] = NewMove(Location{Col: i}, true)
	}
	var best, pruned = selectBestMoves(ml, BestMovesOptions{PercentageBestMoves: 20})
	if len(best) != 2 || len(pruned) != 8 {
		t.Fatal("expected 2 kept and 8 pruned", len(best), len(pruned))
	}
	for _, m := range pruned {
		if !m.Pruned {
			t.Error("move not marked pruned", m)
		}
	}
	best, pruned = selectBestMoves(ml.Copy(), BestMovesOptions{PercentageBestMoves: 20, MinBestMoves: 5})
	if len(best) != 5 || len(pruned) != 5 {
		t.Error("min best moves not honoured", len(best))
	}
	best, pruned = selectBestMoves(ml, BestMovesOptions{PercentageBestMoves: 100})
	if len(best) != 10 || len(pruned) != 0 {
		t.Error("100 percent must keep everything")
	}
}

func TestSearchTreeRecordsPrunedMoves(t *testing.T) {
	var tree = newTreeSearchable(10, 2, 3)
	var options = testOptions(NegaMax, 2)
	options.BestMoves = BestMovesOptions{PercentageBestMoves: 20}
	var strategy, err = NewStrategy(tree, nil, options, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	var root = NewTreeNode(nil)
	strategy.Search(nil, FullWindow(), root)
	var pruned int
	root.Walk(func(n *TreeNode, _ int) {
		if n.Pruned {
			pruned++
		}
	})
	if len(root.Children) != 10 || pruned < 8 {
		t.Error("expected the 8 filtered root moves in the tree", len(root.Children), pruned)
	}
}

func TestAbortReturnsBestSoFar(t *testing.T) {
	var tree = newTreeSearchable(6, 6, 11)
	var options = testOptions(NegaScout, 6)
	var strategy, err = NewStrategy(tree, nil, options, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	strategy.(nodeLimiter).setMaxNodes(50)
	var m = strategy.Search(nil, FullWindow(), nil)
	if m == nil || !m.Player1 {
		t.Fatal("aborted search must still return a root move", m)
	}
	if tree.NumMoves() != 0 {
		t.Error("aborted search left moves on the board")
	}
	if n := strategy.NumMovesConsidered(); n != 50 {
		t.Error("node limit not honoured", n)
	}
}

func ticTacToe(t *testing.T, cells ...Location) (*game.Searchable, *Move) {
	t.Helper()
	var s = game.NewSearchable(tictactoe.Rules{})
	var weights = s.Rules().DefaultWeights()
	var last *Move
	for _, loc := range cells {
		var m, err = s.NewMove(loc)
		if err != nil {
			t.Fatal(err)
		}
		s.Play(m, weights)
		last = m
	}
	return s, last
}

func TestStrategiesAgreeOnTicTacToe(t *testing.T) {
	var openings = [][]Location{
		nil,
		{{Row: 1, Col: 1}},
		{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}},
	}
	var strategies = []StrategyType{NegaMax, NegaMaxMemory, NegaScout, NegaScoutMemory, MTD}
	for _, quiescence := range []bool{false, true} {
		for i, opening := range openings {
			for depth := 1; depth <= 6; depth++ {
				var s, last = ticTacToe(t, opening...)
				var weights = s.Rules().DefaultWeights()
				var search = func(strategy StrategyType) int {
					var options = testOptions(strategy, depth)
					options.Brute.Quiescence = quiescence
					var engine, err = NewStrategy(s, weights, options, zerolog.Nop())
					if err != nil {
						t.Fatal(err)
					}
					var m = engine.Search(last, FullWindow(), nil)
					if m == nil {
						t.Fatal("no move from", strategy)
					}
					if s.NumMoves() != len(opening) {
						t.Fatal("search left moves on the board", strategy)
					}
					return m.InheritedValue
				}
				var expected = search(MiniMax)
				for _, strategy := range strategies {
					if value := search(strategy); value != expected {
						t.Errorf("opening %d depth %d quiescence %v: %v got %d, minimax %d",
							i, depth, quiescence, strategy, value, expected)
					}
				}
			}
		}
	}
}

func TestStrategiesFindImmediateWin(t *testing.T) {
	for _, strategy := range StrategyTypes {
		var s, last = ticTacToe(t,
			Location{Row: 0, Col: 0}, Location{Row: 1, Col: 0},
			Location{Row: 0, Col: 1}, Location{Row: 1, Col: 1})
		var options = testOptions(strategy, 3)
		options.MonteCarlo.MaxSimulations = 2000
		options.MonteCarlo.ExploreExploitRatio = 1.4
		var engine, err = NewStrategy(s, s.Rules().DefaultWeights(), options, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		var m = engine.Search(last, FullWindow(), nil)
		if m == nil || m.To != (Location{Row: 0, Col: 2}) {
			t.Errorf("%v: expected win at 0 2, got %v", strategy, m)
		}
		if strategy != UCT && m != nil && m.InheritedValue != WinningValue {
			t.Errorf("%v: expected winning value, got %d", strategy, m.InheritedValue)
		}
	}
}

func TestSearchWhenGameOver(t *testing.T) {
	var s, last = ticTacToe(t,
		Location{Row: 0, Col: 0}, Location{Row: 1, Col: 0},
		Location{Row: 0, Col: 1}, Location{Row: 1, Col: 1},
		Location{Row: 0, Col: 2})
	for _, strategy := range StrategyTypes {
		var engine, err = NewStrategy(s, s.Rules().DefaultWeights(), testOptions(strategy, 2), zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		if m := engine.Search(last, FullWindow(), nil); m != nil {
			t.Errorf("%v: expected no move, got %v", strategy, m)
		}
	}
}

func TestUcb1(t *testing.T) {
	var tests = []struct {
		score, ratio   float64
		parent, visits int
		expected       float64
	}{
		{0.5, 1.0, 10, 2, 1.5729830131446736},
		{0.25, 1.4, 100, 10, 1.2000596594181157},
		{0.8, 0.5, 1000, 250, 0.8831129068134556},
	}
	for _, test := range tests {
		var v = ucb1(test.score, test.ratio, test.parent, test.visits)
		if d := v - test.expected; d > 1e-9 || d < -1e-9 {
			t.Error(test, v)
		}
	}
}

func TestUctNodeUpdate(t *testing.T) {
	var n = newUctNode(NewMove(Location{}, false))
	n.update(1)
	n.update(0)
	n.update(0.5)
	if n.numVisits != 3 || n.numWins != 1.5 {
		t.Error("unexpected stats", n.numVisits, n.numWins)
	}
	if v := winRateToValue(1); v != WinningValue-1 {
		t.Error(v)
	}
	if v := winRateToValue(0.5); v != 0 {
		t.Error(v)
	}
}

func TestQuiescenceExtendsThreats(t *testing.T) {
	var count = func(quiescence bool) int64 {
		var s, last = ticTacToe(t,
			Location{Row: 0, Col: 0}, Location{Row: 1, Col: 0}, Location{Row: 2, Col: 2})
		var options = testOptions(NegaMax, 1)
		options.Brute.Quiescence = quiescence
		var strategy, err = NewStrategy(s, s.Rules().DefaultWeights(), options, zerolog.Nop())
		if err != nil {
			t.Fatal(err)
		}
		if m := strategy.Search(last, FullWindow(), nil); m == nil {
			t.Fatal("no move")
		}
		if s.NumMoves() != 3 {
			t.Fatal("search left moves on the board")
		}
		return strategy.NumMovesConsidered()
	}
	if n := count(false); n != 6 {
		t.Error("depth 1 should consider the 6 root moves only", n)
	}
	if n := count(true); n <= 6 {
		t.Error("threats at the horizon were not extended", n)
	}
}
