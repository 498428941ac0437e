package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	mathbits "math/bits"

	"github.com/icza/bitio"
	"go.uber.org/zap"
)

// Compress reads all of in and writes its compressed form to out.
//
// If in is an io.Seeker, it is read twice: once to count the bytes, then again
// from the same starting offset to encode them.  Otherwise the whole input is
// buffered in memory.  Neither stream is closed.
//
// A missing stream is reported as an *Error of Kind WrongArguments before any
// I/O takes place.  Failures of the streams themselves are returned wrapped.
//
func Compress(in io.Reader, out io.Writer, opts ...Option) error {
	const op = "compress"
	if isAbsent(in) || isAbsent(out) {
		return &Error{Op: op, Kind: WrongArguments}
	}
	o := newOptions(opts)

	freqs, src, err := countInput(in)
	if err != nil {
		return fmt.Errorf("huffman: %s: %w", op, err)
	}

	enc := NewEncoder(&freqs)

	bw := bufio.NewWriterSize(out, o.BufferSize)
	if err := freqs.WriteHeader(bw); err != nil {
		return fmt.Errorf("huffman: %s: %w", op, err)
	}

	var seen FrequencyTable
	br := bufio.NewReaderSize(src, o.BufferSize)
	w := bitio.NewWriter(bw)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("huffman: %s: %w", op, err)
		}
		seen[b]++
		if err := writeCode(w, enc.Encode(Symbol(b))); err != nil {
			return fmt.Errorf("huffman: %s: %w", op, err)
		}
	}
	// Close pads the final byte with zeros; it leaves bw open.
	if err := w.Close(); err != nil {
		return fmt.Errorf("huffman: %s: %w", op, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("huffman: %s: %w", op, err)
	}
	if seen != freqs {
		return fmt.Errorf("huffman: %s: %w", op, ErrInputChanged)
	}

	total, _ := freqs.Total()
	o.Logger.Debug("compressed",
		zap.Uint64("bytesIn", total),
		zap.Uint64("bytesOut", compressedSize(&freqs, enc)),
		zap.Int("distinct", freqs.Distinct()),
		zap.Uint8("minCodeSize", enc.MinSize()),
		zap.Uint8("maxCodeSize", enc.MaxSize()),
	)
	return nil
}

// countInput computes the FrequencyTable of in and returns a reader that
// yields the same bytes again.
func countInput(in io.Reader) (FrequencyTable, io.Reader, error) {
	var freqs FrequencyTable

	if rs, ok := in.(io.ReadSeeker); ok {
		if start, err := rs.Seek(0, io.SeekCurrent); err == nil {
			if _, err := io.Copy(&freqs, rs); err != nil {
				return freqs, nil, err
			}
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return freqs, nil, err
			}
			return freqs, rs, nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return freqs, nil, err
	}
	_, _ = freqs.Write(data)
	return freqs, bytes.NewReader(data), nil
}

// compressedSize returns the size of the artifact Compress produces for
// freqs, header included.
func compressedSize(freqs *FrequencyTable, enc *Encoder) uint64 {
	var bits uint64
	for symbol, count := range freqs {
		hi, lo := mathbits.Mul64(count, uint64(enc.Encode(Symbol(symbol)).Size))
		if hi != 0 {
			lo = math.MaxUint64
		}
		bits = addSaturating(bits, lo)
	}
	n := bits / 8
	if bits%8 != 0 {
		n++
	}
	return addSaturating(HeaderSize, n)
}

// Decompress reads an artifact produced by Compress from in and writes the
// original bytes to out.  Neither stream is closed.
//
// A missing stream is reported as an *Error of Kind WrongArguments before any
// I/O takes place.  An artifact whose header is short, whose bit stream ends
// before the declared number of bytes has been decoded, or which carries any
// byte past the one holding the final code, is reported as an *Error of Kind
// IncorrectCode.  Output already written when that happens is not meaningful.
//
func Decompress(in io.Reader, out io.Writer, opts ...Option) error {
	const op = "decompress"
	if isAbsent(in) || isAbsent(out) {
		return &Error{Op: op, Kind: WrongArguments}
	}
	o := newOptions(opts)

	corrupt := func(err error) error {
		o.Logger.Warn("corrupt input", zap.Error(err))
		return &Error{Op: op, Kind: IncorrectCode, Err: err}
	}

	br := bufio.NewReaderSize(in, o.BufferSize)

	var freqs FrequencyTable
	if err := freqs.ReadHeader(br); err == io.ErrUnexpectedEOF {
		return corrupt(fmt.Errorf("frequency header: %w", err))
	} else if err != nil {
		return fmt.Errorf("huffman: %s: %w", op, err)
	}

	owed, ok := freqs.Total()
	if !ok {
		return corrupt(errors.New("frequency header: counts overflow uint64"))
	}
	if o.MaxOutput != 0 && owed > o.MaxOutput {
		return corrupt(fmt.Errorf("frequency header: %d symbols exceeds limit of %d", owed, o.MaxOutput))
	}
	total := owed

	d := NewDecoder(&freqs)
	bw := bufio.NewWriterSize(out, o.BufferSize)
	r := bitio.NewReader(br)

	c := d.Root()
	for owed > 0 {
		bit, err := r.ReadBool()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return corrupt(fmt.Errorf("bit stream ended with %d of %d symbols missing: %w", owed, total, io.ErrUnexpectedEOF))
		}
		if err != nil {
			return fmt.Errorf("huffman: %s: %w", op, err)
		}

		var b uint8
		if bit {
			b = 1
		}
		next, symbol, ok := d.Step(c, b)
		c = next
		if !ok {
			continue
		}
		if err := bw.WriteByte(byte(symbol)); err != nil {
			return fmt.Errorf("huffman: %s: %w", op, err)
		}
		owed--
	}

	more, err := trailing(r)
	if err != nil {
		return fmt.Errorf("huffman: %s: %w", op, err)
	}
	if more {
		return corrupt(fmt.Errorf("unexpected data after %d symbols", total))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("huffman: %s: %w", op, err)
	}

	o.Logger.Debug("decompressed",
		zap.Uint64("bytesOut", total),
		zap.Int("distinct", freqs.Distinct()),
	)
	return nil
}

// CompressBytes returns the compressed form of p.
func CompressBytes(p []byte) []byte {
	var buf bytes.Buffer
	if err := Compress(bytes.NewReader(p), &buf); err != nil {
		// Neither stream can fail.
		panic(err)
	}
	return buf.Bytes()
}

// DecompressBytes returns the original bytes of an artifact produced by
// Compress or CompressBytes.
func DecompressBytes(p []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(bytes.NewReader(p), &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
