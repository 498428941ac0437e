package huffman

import (
	"fmt"
	"strings"
)

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of up to MaxCodeSize bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i of the sequence
	// (bit 0 being the first one written) is stored in Bits[i/64] at
	// position 63-(i%64), i.e. the sequence reads left to right across the
	// words.
	Bits [codeWords]uint64
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	var hc Code
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code %q is too long: %d bits, max %d", str, len(str), MaxCodeSize)
	}
	for _, ch := range []byte(str) {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", ch, str)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode, but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Bit returns the i'th bit of the sequence, 0 or 1.
func (hc Code) Bit(i int) uint8 {
	word, shift := i/64, 63-uint(i%64)
	return uint8(hc.Bits[word]>>shift) & 1
}

// Append returns a copy of hc with one more bit at the end.
func (hc Code) Append(bit uint8) Code {
	i := int(hc.Size)
	word, shift := i/64, 63-uint(i%64)
	hc.Bits[word] &^= uint64(1) << shift
	hc.Bits[word] |= uint64(bit&1) << shift
	hc.Size++
	return hc
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(int(hc.Size) + 2)
	buf.WriteByte('"')
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte('0' + hc.Bit(i))
	}
	buf.WriteByte('"')
	return buf.String()
}

var _ fmt.Stringer = Code{}
