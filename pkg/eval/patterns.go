// Package eval scores board lines by matching piece patterns against tunable weights.
package eval

const Unoccupied = '_'

// maxPatternLength keeps pattern keys inside a uint64.
const maxPatternLength = 63

// Patterns maps piece patterns to weight indices.
// A pattern is stored by occupancy only, so "_XX" and "_OO" share a key,
// and every pattern is registered together with its reverse.
type Patterns struct {
	winRunLength         int
	minInterestingLength int
	indices              map[uint64]int
}

type Pattern struct {
	Shape       string
	WeightIndex int
}

// NewPatterns registers the shapes in order; a later shape overrides
// an earlier one with the same key.
func NewPatterns(winRunLength, minInterestingLength int, shapes []Pattern) *Patterns {
	var p = &Patterns{
		winRunLength:         winRunLength,
		minInterestingLength: minInterestingLength,
		indices:              make(map[uint64]int, 2*len(shapes)),
	}
	for _, shape := range shapes {
		var s = []byte(shape.Shape)
		p.indices[patternKey(s, 0, len(s)-1)] = shape.WeightIndex
		reverse(s)
		p.indices[patternKey(s, 0, len(s)-1)] = shape.WeightIndex
	}
	return p
}

func (p *Patterns) WinRunLength() int { return p.winRunLength }
func (p *Patterns) MinInterestingLength() int { return p.minInterestingLength }

// IndexOf returns the weight index of pattern or -1 if it is not known.
func (p *Patterns) IndexOf(pattern string) int {
	return p.indexOfRange([]byte(pattern), 0, len(pattern)-1)
}

func (p *Patterns) indexOfRange(line []byte, minpos, maxpos int) int {
	if maxpos < minpos || maxpos-minpos+1 > maxPatternLength {
		return -1
	}
	if index, ok := p.indices[patternKey(line, minpos, maxpos)]; ok {
		return index
	}
	return -1
}

// patternKey sets one bit per occupied cell under a leading 1 bit
// that encodes the pattern length.
func patternKey(line []byte, minpos, maxpos int) uint64 {
	var power uint64 = 1
	var sum uint64
	for i := maxpos; i >= minpos; i-- {
		if line[i] != Unoccupied {
			sum += power
		}
		power <<= 1
	}
	return sum + power
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
