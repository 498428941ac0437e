package huffman

import (
	"io"

	"github.com/icza/bitio"
)

// writeCode writes the bits of hc to w, first bit first.
func writeCode(w *bitio.Writer, hc Code) error {
	remaining := int(hc.Size)
	for _, word := range hc.Bits {
		if remaining == 0 {
			break
		}
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := w.WriteBits(word>>(64-uint(n)), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// trailing skips the padding bits left in the current byte and reports
// whether any further byte follows it.
func trailing(r *bitio.Reader) (bool, error) {
	r.Align()
	_, err := r.ReadByte()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
