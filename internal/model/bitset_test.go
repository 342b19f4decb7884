package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBitset_WordSizing(t *testing.T) {
	cases := []struct {
		bits  int
		words int
	}{
		{1, 1},
		{64, 1},
		{65, 2},
		{128, 2},
		{129, 3},
		{1000, 16},
	}
	for _, c := range cases {
		assert.Len(t, NewBitset(c.bits), c.words, "bits=%d", c.bits)
	}
}

func TestBitset_SetAndTest(t *testing.T) {
	b := NewBitset(200)
	for _, i := range []int{0, 1, 63, 64, 65, 127, 128, 199} {
		assert.False(t, b.Test(i))
		b.Set(i)
		assert.True(t, b.Test(i), "bit %d", i)
	}
	assert.Equal(t, 8, b.Count())
}

func TestBitset_OverlapsAcrossWords(t *testing.T) {
	a := NewBitset(150)
	b := NewBitset(150)
	a.Set(3)
	a.Set(130)
	b.Set(70)

	assert.False(t, a.Overlaps(b))

	b.Set(130)
	assert.True(t, a.Overlaps(b), "overlap in the third word must be seen")
}

func TestBitset_OrAndCopyFrom(t *testing.T) {
	a := NewBitset(100)
	b := NewBitset(100)
	a.Set(5)
	b.Set(99)

	a.Or(b)
	assert.True(t, a.Test(5))
	assert.True(t, a.Test(99))
	assert.False(t, b.Test(5), "Or must not modify the operand")

	c := NewBitset(100)
	c.CopyFrom(a)
	assert.True(t, c.Equal(a))

	// The copy is independent of the source.
	c.Set(42)
	assert.False(t, a.Test(42))
}

func TestBitset_CloneAndEqual(t *testing.T) {
	a := NewBitset(70)
	a.Set(0)
	a.Set(69)

	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Set(33)
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(NewBitset(200)), "different capacity is never equal")
}

func TestBitset_Clear(t *testing.T) {
	b := NewBitset(128)
	b.Set(10)
	b.Set(100)
	b.Clear()
	assert.Equal(t, 0, b.Count())
}
