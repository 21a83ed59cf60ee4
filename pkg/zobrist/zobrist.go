// Package zobrist holds the random keys used for incremental board hashing.
package zobrist

import (
	"sync"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

// Table is immutable once built and safe to share between boards and goroutines.
type Table struct {
	rows  int
	cols  int
	cells []uint64
	side  uint64
}

type tableKey struct {
	rows, cols int
}

var tables = struct {
	mu    sync.Mutex
	items map[tableKey]*Table
}{items: make(map[tableKey]*Table)}

// ForSize returns the table for a board of the given dimensions.
// Boards of equal size always get the same keys, so copies hash identically.
func ForSize(rows, cols int) *Table {
	tables.mu.Lock()
	defer tables.mu.Unlock()
	var k = tableKey{rows, cols}
	if t, ok := tables.items[k]; ok {
		return t
	}
	var t = New(rows, cols, 0x9e3779b97f4a7c15^uint64(rows<<16|cols))
	tables.items[k] = t
	return t
}

func New(rows, cols int, seed uint64) *Table {
	var rng = splitmix64{state: seed}
	var t = &Table{
		rows:  rows,
		cols:  cols,
		cells: make([]uint64, rows*cols*2),
	}
	for i := range t.cells {
		t.cells[i] = rng.next()
	}
	t.side = rng.next()
	return t
}

func (t *Table) Piece(loc Location, piece Piece) HashKey {
	var idx = (loc.Row*t.cols + loc.Col) * 2
	if piece == Player2Piece {
		idx++
	}
	return HashKey(t.cells[idx])
}

// Side is toggled on every ply, passes included.
func (t *Table) Side() HashKey {
	return HashKey(t.side)
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	var z = s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
