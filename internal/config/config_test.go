package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ChizhovVadim/GameSearch/pkg/engine"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	var path = filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	var path = writeConfig(t, `
game: pente
size: 9
search:
  strategy: uct
  monte_carlo:
    max_simulations: 500
arena:
  games: 4
  move_time: 200ms
  opponent:
    strategy: negamax
log:
  level: debug
  pretty: true
`)
	var config, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Game != "pente" || config.Size != 9 ||
		config.Search.Strategy != engine.UCT ||
		config.Search.MonteCarlo.MaxSimulations != 500 ||
		config.Search.Brute.LookAhead != 4 ||
		config.Arena.Games != 4 || config.Arena.Concurrency != 4 ||
		config.Arena.MoveTime != 200*time.Millisecond ||
		config.Arena.Opponent.Strategy != engine.NegaMax ||
		config.Log.Level != "debug" || !config.Log.Pretty {
		t.Errorf("unexpected config %+v", config)
	}
	var rules, _ = config.Rules()
	if rules.NewBoard().Rows() != 9 {
		t.Error("size not applied")
	}
}

func TestLoadDefaults(t *testing.T) {
	var config, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if config.Game != "tictactoe" || config.Search.Strategy != engine.NegaScoutMemory {
		t.Errorf("unexpected defaults %+v", config)
	}
}

func TestLoadErrors(t *testing.T) {
	var tests = []string{
		"game: chess",
		"search:\n  strategy: alphabeta",
		"search:\n  brute:\n    look_ahead: 0",
		"weights: [1, 2]",
		"weights: [1, 2, 5000]",
		"unknown_key: 1",
	}
	for _, test := range tests {
		if _, err := Load(writeConfig(t, test)); err == nil {
			t.Error("expected error for", test)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWeightsFor(t *testing.T) {
	var config = Default()
	config.Weights = []float64{2, 20, 200}
	var rules, err = config.Rules()
	if err != nil {
		t.Fatal(err)
	}
	weights, err := config.WeightsFor(rules)
	if err != nil {
		t.Fatal(err)
	}
	if weights.Value(1) != 20 || rules.DefaultWeights().Value(1) != 10 {
		t.Error("weights not applied to a copy", weights)
	}
}
