package game

import (
	"testing"

	"github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/games/tictactoe"
)

func play(t *testing.T, s *Searchable, cells ...common.Location) *common.Move {
	t.Helper()
	var weights = s.Rules().DefaultWeights()
	var last *common.Move
	for _, loc := range cells {
		var m, err = s.NewMove(loc)
		if err != nil {
			t.Fatal(err)
		}
		s.Play(m, weights)
		last = m
	}
	return last
}

func TestGenerateMovesSorted(t *testing.T) {
	var s = NewSearchable(tictactoe.Rules{})
	var weights = s.Rules().DefaultWeights()
	var ml = s.GenerateMoves(nil, weights)
	if len(ml) != 9 {
		t.Fatal("expected 9 moves, got", len(ml))
	}
	if !isSorted(ml, true) {
		t.Error("moves not sorted", ml)
	}
	if ml[0].To != (common.Location{Row: 1, Col: 1}) {
		t.Error("centre should be the best first move", ml[0])
	}
	if s.NumMoves() != 0 || s.HashKey() != 0 {
		t.Error("move generation changed the board")
	}

	var last = play(t, s, common.Location{Row: 1, Col: 1})
	ml = s.GenerateMoves(last, weights)
	if len(ml) != 8 || ml[0].Player1 {
		t.Fatal("expected 8 moves for player 2")
	}
	if !isSorted(ml, false) {
		t.Error("player 2 moves not sorted ascending", ml)
	}
}

func TestWinIsDetected(t *testing.T) {
	var s = NewSearchable(tictactoe.Rules{})
	var weights = s.Rules().DefaultWeights()
	var last = play(t, s,
		common.Location{Row: 0, Col: 0}, common.Location{Row: 1, Col: 0},
		common.Location{Row: 0, Col: 1}, common.Location{Row: 1, Col: 1},
		common.Location{Row: 0, Col: 2})
	if !s.Done(last, false) {
		t.Fatal("game should be over")
	}
	if player1, ok := s.Winner(); !ok || !player1 {
		t.Error("player 1 should be the winner")
	}
	if worth := s.Worth(last, weights); worth != common.WinningValue {
		t.Error("worth of a win", worth)
	}
	if _, err := s.NewMove(common.Location{Row: 2, Col: 2}); err == nil {
		t.Error("move after the end of the game must fail")
	}
}

func TestUrgentMoves(t *testing.T) {
	var s = NewSearchable(tictactoe.Rules{})
	var weights = s.Rules().DefaultWeights()
	var last = play(t, s,
		common.Location{Row: 0, Col: 0},
		common.Location{Row: 1, Col: 1},
		common.Location{Row: 0, Col: 1})
	if !s.InJeopardy(last, weights) {
		t.Error("two in a row with an open end is a threat")
	}
	var urgent = s.GenerateUrgentMoves(last, weights)
	if len(urgent) != 1 || urgent[0].To != (common.Location{Row: 0, Col: 2}) {
		t.Fatal("urgent moves", urgent)
	}
	if !urgent[0].Urgent {
		t.Error("urgent flag not set")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	var s = NewSearchable(tictactoe.Rules{})
	play(t, s, common.Location{Row: 1, Col: 1})
	var c = s.Copy().(*Searchable)
	var m = common.NewMove(common.Location{Row: 0, Col: 0}, false)
	c.MakeInternalMove(m)
	if s.NumMoves() != 1 || !s.Board().IsEmpty(common.Location{Row: 0, Col: 0}) {
		t.Error("copy shares the board")
	}
	if s.HashKey() == c.HashKey() {
		t.Error("different positions hash equal")
	}
	c.UndoInternalMove(m)
	if s.HashKey() != c.HashKey() {
		t.Error("equal positions hash differently")
	}
}

func TestWorthWithoutLastMovePanics(t *testing.T) {
	var s = NewSearchable(tictactoe.Rules{})
	play(t, s, common.Location{Row: 1, Col: 1})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	s.Worth(nil, s.Rules().DefaultWeights())
}

func TestUndoKeepsRecordedWin(t *testing.T) {
	var s = NewSearchable(tictactoe.Rules{})
	var last = play(t, s,
		common.Location{Row: 0, Col: 0}, common.Location{Row: 1, Col: 0},
		common.Location{Row: 0, Col: 1}, common.Location{Row: 1, Col: 1},
		common.Location{Row: 0, Col: 2})

	var m = common.NewMove(common.Location{Row: 2, Col: 2}, false)
	s.MakeInternalMove(m)
	s.UndoInternalMove(m)
	if player1, ok := s.Winner(); !ok || !player1 {
		t.Fatal("undo of another move erased the recorded win")
	}
	if !s.Done(last, false) {
		t.Error("game should still be over")
	}

	s.UndoInternalMove(last)
	if _, ok := s.Winner(); ok {
		t.Error("undo of the winning move must clear the winner")
	}
	if s.Done(s.LastMove(), false) {
		t.Error("game should continue after undoing the win")
	}
}
