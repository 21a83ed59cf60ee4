// Package game composes a board with per game Rules into a Searchable.
package game

import (
	"github.com/ChizhovVadim/GameSearch/pkg/board"
	"github.com/ChizhovVadim/GameSearch/pkg/common"
)

// Rules is the capability set a placement game supplies to the search.
type Rules interface {
	Name() string
	NewBoard() *board.Board
	// CandidateMoves lists the cells the side to move may play.
	CandidateMoves(b *board.Board) []common.Location
	// Worth evaluates a position that is not won, from player 1's side.
	Worth(b *board.Board, lastMove *common.Move, weights common.Weights) int
	Won(b *board.Board, lastMove *common.Move) bool
	// IsUrgent is asked with m already made on b.
	IsUrgent(b *board.Board, m *common.Move, weights common.Weights) bool
	InJeopardy(b *board.Board, lastMove *common.Move, weights common.Weights) bool
	MaxMoves(b *board.Board) int
	DefaultWeights() common.Weights
}
