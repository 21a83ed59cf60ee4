package engine

import (
	"sync/atomic"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

type transEntry struct {
	gate  int32
	key32 uint32
	score int32
	depth int16
	bound uint8
	move  *Move
}

// TransTable caches search results by Zobrist key.
// It always replaces on collision, so a hit is a hint and never a proof.
type TransTable struct {
	entries []transEntry
	mask    uint64
}

func NewTransTable(bits int) *TransTable {
	var size = 1 << bits
	return &TransTable{
		entries: make([]transEntry, size),
		mask:    uint64(size - 1),
	}
}

func (tt *TransTable) Size() int {
	return len(tt.entries)
}

func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

// Get returns the cached score if it was searched at least as deep and its bound
// decides the window: exact always, lower only at or above beta, upper only at or below alpha.
func (tt *TransTable) Get(key HashKey, depth, alpha, beta int) (score int, move *Move, ok bool) {
	var entryDepth, entryScore, bound, entryMove, found = tt.read(key)
	if !found || entryDepth < depth {
		return 0, nil, false
	}
	switch {
	case bound == boundExact,
		bound == boundLower && entryScore >= beta,
		bound == boundUpper && entryScore <= alpha:
		return entryScore, entryMove, true
	}
	return 0, nil, false
}

func (tt *TransTable) read(key HashKey) (depth, score, bound int, move *Move, ok bool) {
	var entry = &tt.entries[uint64(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		if entry.bound != 0 && entry.key32 == uint32(key>>32) {
			score = int(entry.score)
			move = entry.move
			depth = int(entry.depth)
			bound = int(entry.bound)
			ok = true
		}
		atomic.StoreInt32(&entry.gate, 0)
	}
	return
}

func (tt *TransTable) Put(key HashKey, score, depth, bound int, move *Move) {
	var entry = &tt.entries[uint64(key)&tt.mask]
	if atomic.CompareAndSwapInt32(&entry.gate, 0, 1) {
		entry.key32 = uint32(key >> 32)
		entry.score = int32(score)
		entry.depth = int16(depth)
		entry.bound = uint8(bound)
		entry.move = move
		atomic.StoreInt32(&entry.gate, 0)
	}
}

// boundOf classifies a fail-soft result searched with alpha as the lower window edge it started with.
func boundOf(score, alpha, beta int) int {
	if score <= alpha {
		return boundUpper
	}
	if score >= beta {
		return boundLower
	}
	return boundExact
}
