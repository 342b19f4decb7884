package model

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// Bitset is a fixed-size multi-word bitmask over region cells. For a
// region of width w, bit r*w+c covers cell (r, c). Regions regularly
// exceed 64 cells, so every operation runs over the full word slice
// rather than assuming a single machine word.
type Bitset []uint64

// NewBitset returns a zeroed bitset with capacity for n bits.
func NewBitset(n int) Bitset {
	return make(Bitset, (n+wordBits-1)/wordBits)
}

// Set marks bit i.
func (b Bitset) Set(i int) {
	b[i/wordBits] |= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (b Bitset) Test(i int) bool {
	return b[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Overlaps reports whether b and other share any set bit.
func (b Bitset) Overlaps(other Bitset) bool {
	for i := range b {
		if b[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// Or merges other into b in place.
func (b Bitset) Or(other Bitset) {
	for i := range b {
		b[i] |= other[i]
	}
}

// CopyFrom overwrites b with the contents of other.
func (b Bitset) CopyFrom(other Bitset) {
	copy(b, other)
}

// Clone returns an independent copy of b.
func (b Bitset) Clone() Bitset {
	out := make(Bitset, len(b))
	copy(out, b)
	return out
}

// Equal reports whether b and other have identical contents.
func (b Bitset) Equal(other Bitset) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (b Bitset) Count() int {
	total := 0
	for _, w := range b {
		total += bits.OnesCount64(w)
	}
	return total
}

// Clear resets all bits.
func (b Bitset) Clear() {
	for i := range b {
		b[i] = 0
	}
}

// String renders the first n*64 bits as '.' and 'X' runs, low bit first.
// Debug aid only.
func (b Bitset) String() string {
	var sb strings.Builder
	for i := 0; i < len(b)*wordBits; i++ {
		if b.Test(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
