package huffman

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the size in bytes of a serialized FrequencyTable.
const HeaderSize = NumSymbols * 8

// FrequencyTable holds the number of occurrences of each Symbol.  It always
// has exactly NumSymbols entries; symbols that never occur have a count of 0.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies returns the FrequencyTable of p.
func CountFrequencies(p []byte) FrequencyTable {
	var ft FrequencyTable
	_, _ = ft.Write(p)
	return ft
}

// Write adds the bytes of p to the counts.  It never fails, which lets a
// FrequencyTable be used as the destination of io.Copy.
func (ft *FrequencyTable) Write(p []byte) (int, error) {
	for _, b := range p {
		ft[b]++
	}
	return len(p), nil
}

// Get returns the count for one Symbol.
func (ft *FrequencyTable) Get(symbol Symbol) uint64 {
	return ft[symbol]
}

// Total returns the sum of all counts.  The second result is false if the sum
// does not fit in a uint64, which can only happen for a forged header.
func (ft *FrequencyTable) Total() (uint64, bool) {
	var sum uint64
	for _, n := range ft {
		next := sum + n
		if next < sum {
			return 0, false
		}
		sum = next
	}
	return sum, true
}

// Distinct returns the number of symbols with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}

// MarshalBinary returns the table as HeaderSize bytes: one little-endian
// uint64 per Symbol, in ascending Symbol order.
func (ft *FrequencyTable) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	for symbol, count := range ft {
		binary.LittleEndian.PutUint64(buf[symbol*8:], count)
	}
	return buf, nil
}

// UnmarshalBinary decodes a table produced by MarshalBinary.
func (ft *FrequencyTable) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("frequency header: expected %d bytes, got %d", HeaderSize, len(data))
	}
	for symbol := range ft {
		ft[symbol] = binary.LittleEndian.Uint64(data[symbol*8:])
	}
	return nil
}

// WriteHeader writes the MarshalBinary form of the table to w.
func (ft *FrequencyTable) WriteHeader(w io.Writer) error {
	buf, _ := ft.MarshalBinary()
	_, err := w.Write(buf)
	return err
}

// ReadHeader reads a table written by WriteHeader.  A short read is reported
// as io.ErrUnexpectedEOF, even if no bytes at all could be read.
func (ft *FrequencyTable) ReadHeader(r io.Reader) error {
	var buf [HeaderSize]byte
	_, err := io.ReadFull(r, buf[:])
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	return ft.UnmarshalBinary(buf[:])
}

var (
	_ io.Writer                  = (*FrequencyTable)(nil)
	_ encoding.BinaryMarshaler   = (*FrequencyTable)(nil)
	_ encoding.BinaryUnmarshaler = (*FrequencyTable)(nil)
)
