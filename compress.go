package hufftree

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
)

// Magic identifies the compressed format.  It occupies the first 32 bits
// of every well-formed stream.
const Magic = uint32(0x48554631) // "HUF1"

// Compress reads all of in and writes its Huffman-compressed form to
// out.  The input is consumed twice, once to gather frequencies and once
// to encode, so it must be seekable; Compress rewinds it between the two
// passes.  I/O errors propagate unchanged; there are no other failure
// modes.
func Compress(in io.ReadSeeker, out io.Writer) error {
	ft, err := CountBytes(in)
	if err != nil {
		return err
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		return err
	}

	tree := Build(ft)
	ct := Derive(tree)

	w := bitio.NewWriter(out)
	if err := w.WriteBits(uint64(Magic), 32); err != nil {
		return err
	}
	if err := WriteTree(w, tree); err != nil {
		return err
	}

	br := bufio.NewReader(in)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := ct.Encode(Symbol(b)).Write(w); err != nil {
			return err
		}
	}
	if err := ct.Encode(EOD).Write(w); err != nil {
		return err
	}

	// Close pads the final byte with zero bits after the sentinel.
	// Decompress stops at the sentinel and never reads the padding.
	return w.Close()
}
