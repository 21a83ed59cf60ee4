package common

type HashKey uint64

// Searchable is the game state a search strategy drives.
// MakeInternalMove and UndoInternalMove must be strictly paired;
// violating that is a programming error and panics.
type Searchable interface {
	GenerateMoves(lastMove *Move, weights Weights) MoveList
	GenerateUrgentMoves(lastMove *Move, weights Weights) MoveList
	MakeInternalMove(m *Move)
	UndoInternalMove(m *Move)
	Worth(lastMove *Move, weights Weights) int
	Done(lastMove *Move, recordWin bool) bool
	InJeopardy(lastMove *Move, weights Weights) bool
	PlayerToMove(lastMove *Move) bool
	NumMoves() int
	HashKey() HashKey
	Copy() Searchable
}

// PlayerToMoveAfter reports whether player 1 moves after lastMove.
// Player 1 moves first.
func PlayerToMoveAfter(lastMove *Move) bool {
	return lastMove == nil || !lastMove.Player1
}
