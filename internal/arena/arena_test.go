package arena

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/games/tictactoe"
)

func testConfig() Config {
	var a = engine.NewOptions()
	a.Brute.LookAhead = 3
	a.TransTableBits = 12
	var b = a
	b.Strategy = engine.NegaMax
	return Config{
		Games:        6,
		Concurrency:  2,
		OpeningMoves: 1,
		TimeControl:  TimeControl{Nodes: 5000},
		EngineA:      a,
		EngineB:      b,
	}
}

func TestArenaRun(t *testing.T) {
	var rules = tictactoe.Rules{}
	var arena, err = New(testConfig(), rules, rules.DefaultWeights(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	stat, err := arena.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stat.Wins+stat.Losses+stat.Draws != 6 {
		t.Errorf("expected 6 games, got %+v", stat)
	}
}

func TestNewValidates(t *testing.T) {
	var rules = tictactoe.Rules{}
	var tests = []func(*Config){
		func(c *Config) { c.Concurrency = 0 },
		func(c *Config) { c.TimeControl = TimeControl{} },
		func(c *Config) { c.EngineB.Brute.LookAhead = 0 },
	}
	for i, test := range tests {
		var config = testConfig()
		test(&config)
		if _, err := New(config, rules, rules.DefaultWeights(), zerolog.Nop()); err == nil {
			t.Error("expected error for case", i)
		}
	}
}

func TestRandomOpening(t *testing.T) {
	var rules = tictactoe.Rules{}
	var config = testConfig()
	config.OpeningMoves = 3
	var arena, err = New(config, rules, rules.DefaultWeights(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	var opening = arena.randomOpening()
	if len(opening) != 3 {
		t.Fatal("unexpected opening", opening)
	}
	var seen = make(map[[2]int]bool)
	for _, loc := range opening {
		var k = [2]int{loc.Row, loc.Col}
		if seen[k] {
			t.Error("cell played twice", opening)
		}
		seen[k] = true
	}
}

func TestComputeStat(t *testing.T) {
	var stat = computeStat(10, 5, 5)
	if stat.WinningFraction != 0.625 ||
		math.Abs(stat.EloDifference-88.7394998465425) > 1e-9 ||
		math.Abs(stat.LOS-0.9016471987705266) > 1e-9 {
		t.Errorf("unexpected stat %+v", stat)
	}
	if stat = computeStat(0, 0, 4); stat.EloDifference != 0 || stat.LOS != 0.5 {
		t.Errorf("all draws %+v", stat)
	}
	if stat = computeStat(0, 0, 0); stat.WinningFraction != 0 {
		t.Errorf("no games %+v", stat)
	}
}
