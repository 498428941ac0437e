package huffman

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies([]byte("aaab"))

	var expect FrequencyTable
	expect['a'] = 3
	expect['b'] = 1
	assert.Equal(t, expect, freqs)
	assert.Equal(t, 2, freqs.Distinct())

	total, ok := freqs.Total()
	require.True(t, ok)
	assert.Equal(t, uint64(4), total)
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies(nil)
	assert.Equal(t, FrequencyTable{}, freqs)
	assert.Equal(t, 0, freqs.Distinct())

	total, ok := freqs.Total()
	require.True(t, ok)
	assert.Zero(t, total)
}

func TestFrequencyTable_Write(t *testing.T) {
	var freqs FrequencyTable
	_, err := io.Copy(&freqs, bytes.NewReader([]byte("hello, world")))
	require.NoError(t, err)
	_, _ = freqs.Write([]byte("!!"))

	assert.Equal(t, uint64(3), freqs.Get('l'))
	assert.Equal(t, uint64(2), freqs.Get('o'))
	assert.Equal(t, uint64(2), freqs.Get('!'))
	assert.Zero(t, freqs.Get('z'))
}

func TestFrequencyTable_TotalOverflow(t *testing.T) {
	var freqs FrequencyTable
	freqs[0] = math.MaxUint64
	freqs[1] = 1
	_, ok := freqs.Total()
	assert.False(t, ok)
}

func TestFrequencyTable_Header(t *testing.T) {
	freqs := CountFrequencies([]byte("aaab"))
	freqs[255] = 1 << 40

	var buf bytes.Buffer
	require.NoError(t, freqs.WriteHeader(&buf))
	require.Equal(t, HeaderSize, buf.Len())

	raw := buf.Bytes()
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(raw['a'*8:]))
	assert.Equal(t, uint64(1), binary.LittleEndian.Uint64(raw['b'*8:]))
	assert.Equal(t, uint64(1<<40), binary.LittleEndian.Uint64(raw[255*8:]))

	var decoded FrequencyTable
	require.NoError(t, decoded.ReadHeader(&buf))
	assert.Equal(t, freqs, decoded)
}

func TestFrequencyTable_ReadHeaderShort(t *testing.T) {
	var freqs FrequencyTable

	err := freqs.ReadHeader(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = freqs.ReadHeader(bytes.NewReader(make([]byte, HeaderSize-1)))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	assert.Error(t, freqs.UnmarshalBinary(make([]byte, 10)))
}
