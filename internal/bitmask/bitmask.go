// Package bitmask implements the 16-bit candidate set used to drive a single
// probe step over a 16-byte control window. A Mask's bit i means "slot
// offset i within the window is a candidate".
//
// Matches is built from the classic SWAR (SIMD-within-a-register) broadword
// trick: each 8-byte lane of the window is XORed against a byte-broadcast
// predicate, then ^(((x &^ msb) + (msb - lsb)) | x) & msb leaves a 0x80
// marker in every byte that was zero after the XOR, i.e. every byte that
// equalled the predicate. No carry crosses a byte boundary, so each byte is
// judged on its own.
// The two lane results are then compacted into one 16-bit mask. This is the
// same trick the control band itself is built around (one byte per slot,
// top bit reserved as a discriminator), and it produces results identical to
// a scalar byte-by-byte comparison loop.
package bitmask

import "math/bits"

const (
	lsb = 0x0101010101010101
	msb = 0x8080808080808080
)

// Mask is a 16-bit set of slot offsets in [0, 16).
type Mask uint16

// New wraps a raw 16-bit value as a Mask.
func New(bits uint16) Mask {
	return Mask(bits)
}

// Matches returns a Mask whose bit i is set iff window[i] == predicate.
func Matches(window [16]byte, predicate byte) Mask {
	lo := laneOf(window[0:8])
	hi := laneOf(window[8:16])
	return Mask(compactLane(laneEq(lo, predicate)) | compactLane(laneEq(hi, predicate))<<8)
}

// Or returns the union of two candidate sets.
func (m Mask) Or(other Mask) Mask {
	return m | other
}

// Any reports whether any candidate offset is set.
func (m Mask) Any() bool {
	return m != 0
}

// Next returns the lowest set offset, the Mask with that offset cleared, and
// true. If the mask is empty it returns ok == false. Repeated calls yield
// offsets in strictly ascending order.
func (m Mask) Next() (offset int, rest Mask, ok bool) {
	if m == 0 {
		return 0, m, false
	}
	offset = bits.TrailingZeros16(uint16(m))
	rest = m & (m - 1)
	return offset, rest, true
}

func laneOf(b []byte) uint64 {
	var lane uint64
	for i := 0; i < 8; i++ {
		lane |= uint64(b[i]) << (8 * i)
	}
	return lane
}

// laneEq compares each of the 8 bytes packed in lane against predicate,
// leaving a 0x80 marker in every byte position that matched.
func laneEq(lane uint64, predicate byte) uint64 {
	pattern := lsb * uint64(predicate)
	x := lane ^ pattern
	return ^(((x &^ msb) + (msb - lsb)) | x) & msb
}

// compactLane turns a laneEq result (0x80 markers in matching byte
// positions) into an 8-bit mask, one bit per matching byte, lowest byte
// first. Each set byte in lane holds exactly one bit (0x80), so clearing the
// lowest set bit of the whole word clears exactly that byte's marker.
func compactLane(lane uint64) uint16 {
	var out uint16
	for lane != 0 {
		idx := bits.TrailingZeros64(lane) >> 3
		out |= 1 << uint(idx)
		lane &= lane - 1
	}
	return out
}
