package bitset

import (
	"encoding/binary"
	"math/bits"
)

// popTable maps a byte value to its number of set bits.
var popTable = [256]uint8{
	0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	1, 2, 2, 3, 2, 3, 3, 4, 2, 3, 3, 4, 3, 4, 4, 5,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	2, 3, 3, 4, 3, 4, 4, 5, 3, 4, 4, 5, 4, 5, 5, 6,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	3, 4, 4, 5, 4, 5, 5, 6, 4, 5, 5, 6, 5, 6, 6, 7,
	4, 5, 5, 6, 5, 6, 6, 7, 5, 6, 6, 7, 6, 7, 7, 8,
}

// Popcount returns the number of set bits.
func (b Bitset) Popcount() int {
	c := 0
	for _, x := range b.bytes {
		c += int(popTable[x])
	}
	return c
}

// Any reports whether at least one bit is set.
func (b Bitset) Any() bool {
	for _, x := range b.bytes {
		if x != 0 {
			return true
		}
	}
	return false
}

// MinIndex returns the lowest set bit, or -1 when b is empty.
func (b Bitset) MinIndex() int {
	for i, x := range b.bytes {
		if x != 0 {
			return i<<3 + bits.TrailingZeros8(x)
		}
	}
	return -1
}

// MaxIndex returns the highest set bit, or -1 when b is empty.
func (b Bitset) MaxIndex() int {
	for i := len(b.bytes) - 1; i >= 0; i-- {
		if x := b.bytes[i]; x != 0 {
			return i<<3 + 7 - bits.LeadingZeros8(x)
		}
	}
	return -1
}

// Rank returns the number of set bits strictly below v.
func (b Bitset) Rank(v int) int {
	hi := v >> 3
	r := 0
	for _, x := range b.bytes[:hi] {
		r += int(popTable[x])
	}
	if hi < len(b.bytes) {
		r += int(popTable[b.bytes[hi]&(byte(1<<(v&7))-1)])
	}
	return r
}

// Indices appends the set bits of b to dst in ascending order.
func (b Bitset) Indices(dst []int32) []int32 {
	for i, x := range b.bytes {
		for x != 0 {
			dst = append(dst, int32(i<<3+bits.TrailingZeros8(x)))
			x &= x - 1
		}
	}
	return dst
}

// Extract visits every set bit in ascending order, clearing each one before
// fn sees it. When fn returns false iteration stops and the bits not yet
// visited stay set. fn must not mutate b.
func (b Bitset) Extract(fn func(v int) bool) {
	buf := b.bytes
	words := len(buf) >> 3

	for w := 0; w < words; w++ {
		off := w << 3
		word := binary.LittleEndian.Uint64(buf[off:])
		if word == 0 {
			continue
		}
		binary.LittleEndian.PutUint64(buf[off:], 0)
		base := off << 3
		for word != 0 {
			v := base + bits.TrailingZeros64(word)
			word &= word - 1
			if !fn(v) {
				binary.LittleEndian.PutUint64(buf[off:], word)
				return
			}
		}
	}

	for i := words << 3; i < len(buf); i++ {
		x := buf[i]
		if x == 0 {
			continue
		}
		buf[i] = 0
		for x != 0 {
			v := i<<3 + bits.TrailingZeros8(x)
			x &= x - 1
			if !fn(v) {
				buf[i] = x
				return
			}
		}
	}
}
