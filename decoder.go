package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder walks a Huffman tree one bit at a time.
type Decoder struct {
	t tree
}

// Cursor is a position inside a Decoder's tree.  The zero Cursor is the
// root.
type Cursor struct {
	// distance from the end of the arena, so that 0 is rootIndex
	offset nodeIndex
}

func cursorAt(index nodeIndex) Cursor {
	return Cursor{rootIndex - index}
}

func (c Cursor) index() nodeIndex {
	return rootIndex - c.offset
}

// NewDecoder is a convenience function that allocates and initializes a
// Decoder.
func NewDecoder(freqs *FrequencyTable) *Decoder {
	d := new(Decoder)
	d.Init(freqs)
	return d
}

// Init initializes this Decoder.  Given the same FrequencyTable, the tree is
// identical to the one built by Encoder.Init.
func (d *Decoder) Init(freqs *FrequencyTable) {
	d.t.build(freqs)
}

// Root returns the Cursor for the root of the tree.
func (d *Decoder) Root() Cursor {
	return Cursor{}
}

// Step advances the Cursor by one bit (0 or 1).
//
// If the bit completes a code, Step returns the decoded Symbol with ok set to
// true, and next is reset to Root.  Otherwise ok is false and next is the
// Cursor to pass to the following call.
//
func (d *Decoder) Step(c Cursor, bit uint8) (next Cursor, symbol Symbol, ok bool) {
	to, symbol, ok := d.t.step(c.index(), bit&1)
	if ok {
		return d.Root(), symbol, true
	}
	return cursorAt(to), 0, false
}

// Decode decodes a single complete code.  It returns false if hc is a proper
// prefix of some code, or if hc continues past a leaf.
func (d *Decoder) Decode(hc Code) (Symbol, bool) {
	c := d.Root()
	for i := 0; i < int(hc.Size); i++ {
		next, symbol, ok := d.Step(c, hc.Bit(i))
		if ok {
			return symbol, i == int(hc.Size)-1
		}
		c = next
	}
	return 0, false
}

// Weight returns the combined count of all leaves below the Cursor.
func (d *Decoder) Weight(c Cursor) uint64 {
	return d.t.nodes[c.index()].value
}

// Dump writes a programmer-readable debugging dump of the Decoder's internal
// nodes to the given writer, root first.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	for index := rootIndex; index >= NumSymbols; index-- {
		n := &d.t.nodes[index]
		fmt.Fprintf(&buf, "\tNode(%d) = {%d, %s, %s}\n", index, n.value, d.describe(n.child0), d.describe(n.child1))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (d *Decoder) describe(index nodeIndex) string {
	if n := &d.t.nodes[index]; n.isLeaf() {
		return fmt.Sprintf("Symbol(%d)", n.symbol)
	}
	return fmt.Sprintf("Node(%d)", index)
}
