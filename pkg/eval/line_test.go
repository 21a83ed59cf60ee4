package eval

import (
	"reflect"
	"testing"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

func newTestEvaluator() *LineEvaluator {
	var patterns = NewPatterns(4, 2, []Pattern{
		{"_X", 0},
		{"XX", 1},
		{"_XX_", 2},
	})
	var weights = Weights{
		{Name: "single", Value: 4, Max: 100},
		{Name: "pair", Value: 20, Max: 100},
		{Name: "open pair", Value: 24, Max: 100},
	}
	return NewLineEvaluator(patterns, weights)
}

func TestPatternIndex(t *testing.T) {
	var e = newTestEvaluator()
	var tests = []struct {
		pattern string
		index   int
	}{
		{"_X", 0},
		{"X_", 0},
		{"_O", 0},
		{"XX", 1},
		{"_XX_", 2},
		{"_XX", -1},
		{"X_XX", -1},
	}
	for _, test := range tests {
		if index := e.patterns.IndexOf(test.pattern); index != test.index {
			t.Error(test.pattern, index, test.index)
		}
	}
}

func TestEvaluate(t *testing.T) {
	var e = newTestEvaluator()
	var tests = []struct {
		line               string
		player1Perspective bool
		pos, minpos        int
		maxpos             int
		worth              int
		matched            []string
	}{
		{"_XX_", true, 2, 0, 3, 24, []string{"_XX_"}},
		{"_X", true, 1, 0, 1, 4, []string{"_X"}},
		{"X_", true, 0, 0, 1, 4, []string{"X_"}},
		{"XX", true, 1, 0, 1, 20, []string{"XX"}},
		{"_O", false, 1, 0, 1, -4, []string{"_O"}},
		{"OO", false, 0, 0, 1, -20, []string{"OO"}},
		{"X_XX", true, 2, 2, 3, 20, []string{"XX"}},
		{"X_XX", true, 1, 1, 2, 4, []string{"_X"}},
		{"X_XX", true, 3, 0, 3, 0, []string{"X_XX"}},
		{"XOX", true, 2, 0, 2, 0, []string{"X"}},
		{"XOX", true, 1, 0, 2, 0, []string{"X", "X"}},
		{"X_OX", true, 2, 0, 3, 4, []string{"X_", "X"}},
		{"X_OX", false, 2, 0, 3, -4, []string{"_O"}},
		{"X_O_X", true, 2, 0, 4, 8, []string{"X_", "_X"}},
		{"XXOXX", true, 2, 0, 4, 40, []string{"XX", "XX"}},
	}
	for _, test := range tests {
		var worth, matched = e.Evaluate([]byte(test.line), test.player1Perspective,
			test.pos, test.minpos, test.maxpos)
		if worth != test.worth {
			t.Error(test.line, test.pos, "worth", worth, test.worth)
		}
		if !reflect.DeepEqual(matched, test.matched) {
			t.Error(test.line, test.pos, "matched", matched, test.matched)
		}
	}
}

func TestEvaluateShortLine(t *testing.T) {
	var e = newTestEvaluator()
	var worth, matched = e.Evaluate([]byte("X"), true, 0, 0, 0)
	if worth != 0 || len(matched) != 0 {
		t.Error(worth, matched)
	}
}

func TestEvaluateLine(t *testing.T) {
	var e = newTestEvaluator()
	var tests = []struct {
		line               string
		player1Perspective bool
		worth              int
	}{
		{"_XX_", true, 24},
		{"_XX__X", true, 28},
		{"XXOXX", true, 40},
		{"XXOXX", false, 0},
		{"_OO_X", false, -24},
		{"____", true, 0},
	}
	for _, test := range tests {
		var worth, _ = e.EvaluateLine([]byte(test.line), test.player1Perspective)
		if worth != test.worth {
			t.Error(test.line, test.player1Perspective, worth, test.worth)
		}
	}
}

func TestValueDifference(t *testing.T) {
	var e = newTestEvaluator()
	var line = []byte("_XX_")
	// "_X_" is not a known pattern, so the whole "_XX_" is gained
	if diff := e.ValueDifference(line, 2); diff != 24 {
		t.Error("ValueDifference", diff)
	}
	if string(line) != "_XX_" {
		t.Error("line was not restored", string(line))
	}
}
