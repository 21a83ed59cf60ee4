package protocol

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/games/tictactoe"
)

func newTestProtocol() (*Protocol, *bytes.Buffer) {
	var out = &bytes.Buffer{}
	var options = engine.NewOptions()
	options.TransTableBits = 12
	var e = engine.NewEngine(options, zerolog.Nop())
	return New(e, tictactoe.Rules{}, out, zerolog.Nop()), out
}

func TestRunPlaysWinningMove(t *testing.T) {
	var p, out = newTestProtocol()
	var input = strings.Join([]string{
		"game tictactoe",
		"move 0 0",
		"move 1 0",
		"move 0 1",
		"move 1 1",
		"setoption name LookAhead value 3",
		"go nodes 100000",
	}, "\n")
	if err := p.Run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatal(err)
	}
	var s = out.String()
	for _, expected := range []string{"bestmove 0 2\n", "score 1000\n", "result player1 wins\n"} {
		if !strings.Contains(s, expected) {
			t.Errorf("output %q does not contain %q", s, expected)
		}
	}
	if winner, ok := p.Searchable().Winner(); !ok || !winner {
		t.Error("engine move was not played")
	}
}

func TestHandleErrors(t *testing.T) {
	var p, _ = newTestProtocol()
	var tests = []string{
		"fly",
		"undo",
		"move 5 5",
		"move a b",
		"game chess",
		"setoption name LookAhead value 0",
		"setoption name Colour value red",
		"go depth 3",
	}
	for _, command := range tests {
		if err := p.Handle(command); err == nil {
			t.Error("expected error for", command)
		}
	}
	if err := p.Handle("move 1 1"); err != nil {
		t.Fatal(err)
	}
	if err := p.Handle("move 1 1"); err == nil {
		t.Error("occupied cell accepted")
	}
	if err := p.Handle("undo"); err != nil || p.Searchable().NumMoves() != 0 {
		t.Error("undo failed", err)
	}
}

func TestOnlyStopWhileThinking(t *testing.T) {
	var p, out = newTestProtocol()
	if err := p.Handle("setoption name Strategy value negamax"); err != nil {
		t.Fatal(err)
	}
	if err := p.Handle("go"); err != nil {
		t.Fatal(err)
	}
	if err := p.Handle("show"); !errors.Is(err, errThinking) {
		t.Error("expected thinking error", err)
	}
	if err := p.Handle("stop"); err != nil {
		t.Error(err)
	}
	p.stop()
	if p.handle != nil {
		t.Fatal("search still attached")
	}
	if !strings.Contains(out.String(), "bestmove ") || p.Searchable().NumMoves() != 1 {
		t.Error("search result not reported", out.String())
	}
}

func TestOptionsAndShow(t *testing.T) {
	var p, out = newTestProtocol()
	for _, command := range []string{
		"setoption name strategy value mtd",
		"setoption name ExploreExploitRatio value 1.5",
		"setoption name AlphaBeta value false",
		"options",
		"move 1 1",
		"show",
		"isready",
	} {
		if err := p.Handle(command); err != nil {
			t.Fatal(command, err)
		}
	}
	var options = p.engine.Options()
	if options.Strategy != engine.MTD || options.MonteCarlo.ExploreExploitRatio != 1.5 || options.Brute.AlphaBeta {
		t.Errorf("options not applied %+v", options)
	}
	var s = out.String()
	for _, expected := range []string{
		"option name Strategy type combo default mtd",
		"option name LookAhead type spin default 4 min 1 max 64",
		"___\n_X_\n___\n",
		"to move player2",
		"readyok",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("output does not contain %q", expected)
		}
	}
}

func TestGameKeepsConfiguredWeights(t *testing.T) {
	var p, _ = newTestProtocol()
	var weights = tictactoe.Rules{}.DefaultWeights()
	for i := range weights {
		weights[i].Value *= 2
	}
	p.SetWeights(weights)

	if err := p.Handle("game pente"); err != nil {
		t.Fatal(err)
	}
	if len(p.weights) == 0 || &p.weights[0] == &weights[0] {
		t.Error("pente must use its own weights")
	}
	if err := p.Handle("game tictactoe"); err != nil {
		t.Fatal(err)
	}
	if len(p.weights) != len(weights) || p.weights[0].Value != weights[0].Value {
		t.Error("configured weights dropped", p.weights, weights)
	}
}
