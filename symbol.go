package huffman

// Symbol represents one byte value of the input alphabet.
type Symbol uint8

// NumSymbols is the size of the alphabet.  Every Symbol is part of every tree,
// whether or not it occurs in the input.
const NumSymbols = 256

// NumNodes is the number of nodes in every tree: NumSymbols leaves plus
// NumSymbols-1 internal nodes.
const NumNodes = 2*NumSymbols - 1

// MaxCodeSize is the longest possible code, in bits.  A tree with NumSymbols
// leaves is at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1
