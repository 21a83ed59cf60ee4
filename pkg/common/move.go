package common

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"
)

type Piece int8

const (
	Empty Piece = iota
	Player1Piece
	Player2Piece
)

func PieceOf(player1 bool) Piece {
	if player1 {
		return Player1Piece
	}
	return Player2Piece
}

// Symbol is the character used for the piece in line patterns.
func (p Piece) Symbol() byte {
	switch p {
	case Player1Piece:
		return 'X'
	case Player2Piece:
		return 'O'
	}
	return '_'
}

type Location struct {
	Row int
	Col int
}

func (l Location) String() string {
	return fmt.Sprintf("%d %d", l.Row, l.Col)
}

// Move is one ply. Value is the static worth after the move and
// InheritedValue the backed up search score, both from player 1's side.
type Move struct {
	To             Location
	Player1        bool
	Piece          Piece
	Pass           bool
	Value          int
	InheritedValue int
	Selected       bool
	Urgent         bool
	Pruned         bool
}

func NewMove(to Location, player1 bool) *Move {
	return &Move{
		To:      to,
		Player1: player1,
		Piece:   PieceOf(player1),
	}
}

func NewPassMove(player1 bool) *Move {
	return &Move{Player1: player1, Pass: true}
}

func (m *Move) String() string {
	if m == nil {
		return "none"
	}
	var side = let(m.Player1, 1, 2)
	if m.Pass {
		return fmt.Sprintf("P%d pass", side)
	}
	return fmt.Sprintf("P%d (%v)", side, m.To)
}

type MoveList []*Move

func (ml MoveList) Copy() MoveList {
	return append(MoveList(nil), ml...)
}

func (ml MoveList) First() *Move {
	if len(ml) == 0 {
		return nil
	}
	return ml[0]
}

func (ml MoveList) Find(to Location) (*Move, bool) {
	return lo.Find(ml, func(m *Move) bool {
		return !m.Pass && m.To == to
	})
}

func (ml MoveList) Contains(to Location) bool {
	var _, found = ml.Find(to)
	return found
}

func (ml MoveList) Unpruned() MoveList {
	return lo.Filter(ml, func(m *Move, _ int) bool {
		return !m.Pruned
	})
}

func (ml MoveList) RandomMove() *Move {
	if len(ml) == 0 {
		return nil
	}
	return ml[frand.Intn(len(ml))]
}

// RandomMoveForThresh picks a random move whose value is within
// percentLessThanBestThresh percent of the best one.
// The list must be sorted best first for the side to move.
func (ml MoveList) RandomMoveForThresh(percentLessThanBestThresh int) *Move {
	if len(ml) == 0 {
		return nil
	}
	var best = ml[0].Value
	var margin = Abs(best) * percentLessThanBestThresh / 100
	var n = 1
	for n < len(ml) && Abs(best-ml[n].Value) <= margin {
		n++
	}
	return ml[frand.Intn(n)]
}

func (ml MoveList) String() string {
	return strings.Join(lo.Map(ml, func(m *Move, _ int) string {
		return m.String()
	}), ", ")
}
