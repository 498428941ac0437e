// Package huffman implements a static, byte-oriented Huffman compressor.
//
// Compress counts the occurrences of each of the 256 byte values, builds a
// Huffman tree over all 256 of them (including values that never occur), and
// writes an artifact consisting of:
//
//     1. a header of 256 little-endian uint64 counts, one per byte value in
//        ascending order (2048 bytes in total);
//
//     2. the code of every input byte, in input order, packed MSB-first into
//        bytes; a partially filled final byte is zero-padded in its low bits.
//
// There is no magic number, version or payload length: Decompress rebuilds
// the exact same tree from the header and stops once it has emitted as many
// bytes as the counts add up to.
//
// Tree construction is fully deterministic.  Nodes are ordered by weight, and
// nodes of equal weight by creation order (leaves are created in ascending
// byte order, internal nodes after them as they are merged).  Both sides apply
// the same rule, which is what makes the decoder's tree identical to the
// encoder's.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
