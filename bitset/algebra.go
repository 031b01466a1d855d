package bitset

import "encoding/binary"

type opKind uint8

const (
	opAnd opKind = iota
	opOr
	opXor
	opAndNot
	opOrNot
	opAssign
)

// combine applies op to dst and src over their common prefix, eight bytes at
// a time, then byte by byte for the tail.
func combine(dst, src []byte, op opKind) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	i := 0
	for ; i+8 <= n; i += 8 {
		a := binary.LittleEndian.Uint64(dst[i:])
		s := binary.LittleEndian.Uint64(src[i:])
		switch op {
		case opAnd:
			a &= s
		case opOr:
			a |= s
		case opXor:
			a ^= s
		case opAndNot:
			a &^= s
		case opOrNot:
			a |= ^s
		case opAssign:
			a = s
		}
		binary.LittleEndian.PutUint64(dst[i:], a)
	}
	for ; i < n; i++ {
		switch op {
		case opAnd:
			dst[i] &= src[i]
		case opOr:
			dst[i] |= src[i]
		case opXor:
			dst[i] ^= src[i]
		case opAndNot:
			dst[i] &^= src[i]
		case opOrNot:
			dst[i] |= ^src[i]
		case opAssign:
			dst[i] = src[i]
		}
	}
}

// And sets b = b & o.
func (b Bitset) And(o Bitset) { combine(b.bytes, o.bytes, opAnd) }

// Or sets b = b | o.
func (b Bitset) Or(o Bitset) { combine(b.bytes, o.bytes, opOr) }

// Xor sets b = b ^ o.
func (b Bitset) Xor(o Bitset) { combine(b.bytes, o.bytes, opXor) }

// AndNot sets b = b &^ o.
func (b Bitset) AndNot(o Bitset) { combine(b.bytes, o.bytes, opAndNot) }

// OrNot sets b = b | ^o, restricted to 0..Len()-1.
func (b Bitset) OrNot(o Bitset) {
	combine(b.bytes, o.bytes, opOrNot)
	b.trim()
}

// Assign copies o into b over their common prefix.
func (b Bitset) Assign(o Bitset) { combine(b.bytes, o.bytes, opAssign) }

// Not complements b in place, restricted to 0..Len()-1.
func (b Bitset) Not() {
	buf := b.bytes
	i := 0
	for ; i+8 <= len(buf); i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], ^binary.LittleEndian.Uint64(buf[i:]))
	}
	for ; i < len(buf); i++ {
		buf[i] = ^buf[i]
	}
	b.trim()
}

// SetIndices clears b and raises exactly the bits in list.
func (b Bitset) SetIndices(list []int32) {
	b.Clear()
	b.OrIndices(list)
}

// OrIndices raises every bit in list.
func (b Bitset) OrIndices(list []int32) {
	buf := b.bytes
	for _, v := range list {
		buf[v>>3] |= 1 << (v & 7)
	}
}

// AndIndices keeps only the bits of b that also appear in list. Survivors are
// staged in scratch (grown if shorter than list) and the staged prefix is
// returned, in list order. An empty list leaves b all clear.
func (b Bitset) AndIndices(list, scratch []int32) []int32 {
	if cap(scratch) < len(list) {
		scratch = make([]int32, len(list))
	}
	scratch = scratch[:cap(scratch)]

	buf := b.bytes
	k := 0
	for _, v := range list {
		scratch[k] = v
		k += int((buf[v>>3] >> (v & 7)) & 1)
	}

	b.Clear()
	kept := scratch[:k]
	for _, v := range kept {
		buf[v>>3] |= 1 << (v & 7)
	}
	return kept
}
