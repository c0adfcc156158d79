package hufftree

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
)

// Decompress reads one compressed stream from in and writes the original
// bytes to out.  It returns ErrFormat if the stream does not start with
// Magic, ErrHeaderCorrupt if the tree header is truncated or invalid,
// and ErrPayloadTruncated if the payload ends before the end-of-data
// code.  Nothing is written to out until the header has been read in
// full; other I/O errors propagate unchanged.
func Decompress(in io.Reader, out io.Writer) error {
	r := bitio.NewReader(in)

	magic, err := r.ReadBits(32)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrFormat
		}
		return err
	}
	if uint32(magic) != Magic {
		return ErrFormat
	}

	tree, err := ReadTree(r)
	if err != nil {
		return err
	}
	if tree.IsLeaf(tree.Root()) {
		// Build always wraps a lone leaf in an internal node, so a
		// bare-leaf root cannot come from a well-formed stream.
		return ErrHeaderCorrupt
	}

	bw := bufio.NewWriter(out)
	index := tree.Root()
	for {
		bit, err := r.ReadBool()
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return ErrPayloadTruncated
			}
			return err
		}
		index = tree.Child(index, bit)
		if !tree.IsLeaf(index) {
			continue
		}
		symbol := tree.LeafSymbol(index)
		if symbol == EOD {
			break
		}
		if err := bw.WriteByte(byte(symbol)); err != nil {
			return err
		}
		index = tree.Root()
	}
	return bw.Flush()
}
