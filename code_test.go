package huffman

import (
	"strings"
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "", expect: "\"\""},
		{input: "0", expect: "\"0\""},
		{input: "10110", expect: "\"10110\""},
		{input: strings.Repeat("01", 40), expect: "\"" + strings.Repeat("01", 40) + "\""},
		{input: strings.Repeat("1", MaxCodeSize), expect: "\"" + strings.Repeat("1", MaxCodeSize) + "\""},
	}
	for _, row := range testData {
		hc, err := ParseCode(row.input)
		if err != nil {
			t.Errorf("ParseCode(%q) failed: %v", row.input, err)
			continue
		}
		if actual := hc.String(); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
		if int(hc.Size) != len(row.input) {
			t.Errorf("ParseCode(%q): expected size %d, got %d", row.input, len(row.input), hc.Size)
		}
	}
}

func TestCode_Bits(t *testing.T) {
	hc := MustParseCode("1" + strings.Repeat("0", 63) + "11")
	if hc.Bits[0] != 1<<63 {
		t.Errorf("Bits[0]: expected %#x, got %#x", uint64(1)<<63, hc.Bits[0])
	}
	if hc.Bits[1] != 3<<62 {
		t.Errorf("Bits[1]: expected %#x, got %#x", uint64(3)<<62, hc.Bits[1])
	}
	if hc.Bit(0) != 1 || hc.Bit(1) != 0 || hc.Bit(64) != 1 || hc.Bit(65) != 1 {
		t.Errorf("wrong bits in %s", hc)
	}
}

func TestParseCode_Invalid(t *testing.T) {
	for _, input := range []string{"012", "1 0", strings.Repeat("0", MaxCodeSize+1)} {
		if _, err := ParseCode(input); err == nil {
			t.Errorf("ParseCode(%q): expected error", input)
		}
	}
}
