package hufftree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeBits is the longest code any tree over the alphabet can assign:
// a maximally skewed tree with NumSymbols leaves has depth NumSymbols-1.
const MaxCodeBits = NumSymbols - 1

// Code represents a sequence of up to MaxCodeBits bits.  The first bit
// of the sequence is stored most significant, so codes reach the wire in
// exactly the order they read.
type Code struct {
	size uint16
	bits [4]uint64
}

// Size returns the number of valid bits.
func (hc Code) Size() int {
	return int(hc.size)
}

// Bit returns the i'th bit of the sequence, 0 or 1.
func (hc Code) Bit(i int) uint64 {
	assert.Assertf(i >= 0 && i < int(hc.size), "bit index %d out of range [0, %d)", i, hc.size)
	return (hc.bits[uint(i)>>6] >> (63 - uint(i)&63)) & 1
}

// appendBit returns a copy of this Code with one more bit at the end.
func (hc Code) appendBit(b uint64) Code {
	assert.Assertf(hc.size < MaxCodeBits, "code length %d > MaxCodeBits %d", hc.size+1, MaxCodeBits)
	if b != 0 {
		hc.bits[hc.size>>6] |= uint64(1) << (63 - uint(hc.size)&63)
	}
	hc.size++
	return hc
}

// Write emits the bits of this Code to w, most significant first, in
// chunks of at most 64 bits.
func (hc Code) Write(w BitWriter) error {
	for i := 0; i < int(hc.size); i += 64 {
		n := int(hc.size) - i
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(hc.bits[i>>6]>>uint(64-n), uint8(n)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.size))
	for i := 0; i < int(hc.size); i++ {
		sb.WriteByte(byte('0' + hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
