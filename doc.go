// Package huffpack implements a batch Huffman coder for arbitrary comparable
// symbols, together with a compact file format that stores the frequency
// table alongside the packed bitstream.
//
// The code tree is rebuilt from the frequency table alone, so the tie-break
// rule used while merging nodes is part of the format: nodes are ordered by
// frequency, and equal frequencies are ordered by insertion.  Leaves are
// inserted in frequency table order, and each merged node is inserted after
// every node created before it.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
