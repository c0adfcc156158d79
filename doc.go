// Package hufftree implements a lossless byte-stream compressor built on
// a Huffman prefix code.  The code tree itself travels with the stream,
// serialized as a bit-level preorder traversal immediately after the
// magic number, and the payload is terminated by a reserved end-of-data
// symbol rather than a length field.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Binary_tree#Succinct_encodings>
//
package hufftree
