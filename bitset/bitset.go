package bitset

// Bitset is a fixed-length packed boolean vector over ids 0..Len()-1.
// The zero value is an empty bitset of length 0.
type Bitset struct {
	bytes []byte
	n     int
}

// ByteLen returns the number of bytes needed to hold n bits.
func ByteLen(n int) int { return (n + 7) >> 3 }

// New allocates an all-clear bitset of length n. Negative n is treated as 0.
func New(n int) Bitset {
	if n < 0 {
		n = 0
	}
	return Bitset{bytes: make([]byte, ByteLen(n)), n: n}
}

// FromBytes returns a Bitset view of length n over buf without copying.
// It panics if buf holds fewer than ByteLen(n) bytes.
func FromBytes(buf []byte, n int) Bitset {
	need := ByteLen(n)
	if len(buf) < need {
		panic("bitset: FromBytes buffer too short")
	}
	return Bitset{bytes: buf[:need:need], n: n}
}

// Len returns the number of addressable bits.
func (b Bitset) Len() int { return b.n }

// Bytes exposes the backing array. Callers must keep bits >= Len() clear.
func (b Bitset) Bytes() []byte { return b.bytes }

// Clone returns an independent copy.
func (b Bitset) Clone() Bitset {
	c := make([]byte, len(b.bytes))
	copy(c, b.bytes)
	return Bitset{bytes: c, n: b.n}
}

// Set raises bit v.
func (b Bitset) Set(v int) { b.bytes[v>>3] |= 1 << (v & 7) }

// Unset clears bit v.
func (b Bitset) Unset(v int) { b.bytes[v>>3] &^= 1 << (v & 7) }

// Test reports whether bit v is set.
func (b Bitset) Test(v int) bool { return b.bytes[v>>3]&(1<<(v&7)) != 0 }

// Clear lowers every bit.
func (b Bitset) Clear() { clear(b.bytes) }

// Fill raises every bit in 0..Len()-1.
func (b Bitset) Fill() {
	for i := range b.bytes {
		b.bytes[i] = 0xff
	}
	b.trim()
}

// trim clears the padding bits of the final byte.
func (b Bitset) trim() {
	if r := b.n & 7; r != 0 && len(b.bytes) > 0 {
		b.bytes[len(b.bytes)-1] &= byte(1<<r) - 1
	}
}

// Equal reports whether b and o have the same length and the same bits.
func (b Bitset) Equal(o Bitset) bool {
	if b.n != o.n {
		return false
	}
	for i := range b.bytes {
		if b.bytes[i] != o.bytes[i] {
			return false
		}
	}
	return true
}
