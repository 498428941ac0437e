package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder maps each Symbol to its Huffman code.
type Encoder struct {
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// NewEncoder is a convenience function that allocates and initializes an
// Encoder.
func NewEncoder(freqs *FrequencyTable) *Encoder {
	e := new(Encoder)
	e.Init(freqs)
	return e
}

// Init initializes this Encoder from the number of occurrences of each Symbol.
// The tree used to derive the codes is discarded once Init returns.
//
func (e *Encoder) Init(freqs *FrequencyTable) {
	var t tree
	t.build(freqs)

	*e = Encoder{}
	e.minSize, e.maxSize = t.codes(&e.codes)
}

// Encode returns the code for a Symbol.  Every Symbol has a code, including
// those with a count of 0.
func (e *Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range e.codes {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols listed in only are dumped; if only is
// empty, all NumSymbols codes are dumped.
func (e *Encoder) Dump(w io.Writer, only ...Symbol) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	if len(only) == 0 {
		for symbol := 0; symbol < NumSymbols; symbol++ {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
		}
	} else {
		for _, symbol := range only {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
