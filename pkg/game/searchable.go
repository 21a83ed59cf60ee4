package game

import (
	"github.com/pkg/errors"

	"github.com/ChizhovVadim/GameSearch/pkg/board"
	"github.com/ChizhovVadim/GameSearch/pkg/common"
)

var ErrIllegalMove = errors.New("illegal move")

// Searchable drives a board through its Rules.
type Searchable struct {
	rules Rules
	board *board.Board
	won   [3]bool

	// winMove is the move whose Done recorded won.
	winMove *common.Move
}

func NewSearchable(rules Rules) *Searchable {
	return &Searchable{
		rules: rules,
		board: rules.NewBoard(),
	}
}

func (s *Searchable) Rules() Rules { return s.rules }
func (s *Searchable) Board() *board.Board { return s.board }
func (s *Searchable) HashKey() common.HashKey { return s.board.Key() }
func (s *Searchable) NumMoves() int { return s.board.NumMoves() }
func (s *Searchable) LastMove() *common.Move { return s.board.LastMove() }

func (s *Searchable) PlayerToMove(lastMove *common.Move) bool {
	return common.PlayerToMoveAfter(lastMove)
}

func (s *Searchable) GenerateMoves(lastMove *common.Move, weights common.Weights) common.MoveList {
	var player1 = s.PlayerToMove(lastMove)
	var cells = s.rules.CandidateMoves(s.board)
	var ml = make(common.MoveList, 0, len(cells))
	for _, loc := range cells {
		var m = common.NewMove(loc, player1)
		s.board.MakeMove(m)
		m.Value = s.Worth(m, weights)
		s.board.UndoMove(m)
		ml = append(ml, m)
	}
	sortMoves(ml, player1)
	return ml
}

func (s *Searchable) GenerateUrgentMoves(lastMove *common.Move, weights common.Weights) common.MoveList {
	var ml = s.GenerateMoves(lastMove, weights)
	var result = ml[:0]
	for _, m := range ml {
		s.board.MakeMove(m)
		var urgent = s.rules.IsUrgent(s.board, m, weights)
		s.board.UndoMove(m)
		if urgent {
			m.Urgent = true
			result = append(result, m)
		}
	}
	return result
}

func (s *Searchable) MakeInternalMove(m *common.Move) {
	s.board.MakeMove(m)
}

func (s *Searchable) UndoInternalMove(m *common.Move) {
	s.board.UndoMove(m)
	if m == s.winMove {
		s.won = [3]bool{}
		s.winMove = nil
	}
}

// Worth is the static value after lastMove from player 1's side.
// A won position is worth exactly WinningValue to the winner.
func (s *Searchable) Worth(lastMove *common.Move, weights common.Weights) int {
	if lastMove == nil {
		if s.board.NumMoves() != 0 {
			panic("game: worth requested without last move")
		}
		return 0
	}
	if s.rules.Won(s.board, lastMove) {
		return common.Sign(lastMove.Player1) * common.WinningValue
	}
	return common.ClampWorth(s.rules.Worth(s.board, lastMove, weights))
}

func (s *Searchable) Done(lastMove *common.Move, recordWin bool) bool {
	if s.won[common.Player1Piece] || s.won[common.Player2Piece] {
		return true
	}
	if lastMove == nil {
		if s.board.NumMoves() == 0 {
			return false
		}
		lastMove = s.board.LastMove()
	}
	if s.rules.Won(s.board, lastMove) {
		if recordWin {
			s.won[lastMove.Piece] = true
			s.winMove = lastMove
		}
		return true
	}
	return s.board.IsFull() || s.board.NumMoves() >= s.rules.MaxMoves(s.board)
}

// Winner reports the player recorded as winner by Done.
func (s *Searchable) Winner() (player1 bool, ok bool) {
	switch {
	case s.won[common.Player1Piece]:
		return true, true
	case s.won[common.Player2Piece]:
		return false, true
	}
	return false, false
}

func (s *Searchable) InJeopardy(lastMove *common.Move, weights common.Weights) bool {
	return s.rules.InJeopardy(s.board, lastMove, weights)
}

func (s *Searchable) Copy() common.Searchable {
	return &Searchable{
		rules:   s.rules,
		board:   s.board.Copy(),
		won:     s.won,
		winMove: s.winMove,
	}
}

// NewMove creates a legal move at loc for the side to move.
func (s *Searchable) NewMove(loc common.Location) (*common.Move, error) {
	if s.Done(s.board.LastMove(), false) {
		return nil, errors.Wrap(ErrIllegalMove, "game is over")
	}
	if !s.board.InBounds(loc) || !s.board.IsEmpty(loc) {
		return nil, errors.Wrapf(ErrIllegalMove, "cell %v", loc)
	}
	return common.NewMove(loc, s.PlayerToMove(s.board.LastMove())), nil
}

// Play makes a real game move and records a win if it ends the game.
func (s *Searchable) Play(m *common.Move, weights common.Weights) bool {
	s.board.MakeMove(m)
	m.Value = s.Worth(m, weights)
	return s.Done(m, true)
}
