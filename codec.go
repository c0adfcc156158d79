package hufftree

import (
	"io"
)

// BitReader is the read side of the bit channel the codec consumes:
// fixed-width unsigned values, most significant bit first.  It is the
// subset of *bitio.Reader this package needs.
type BitReader interface {
	ReadBits(n uint8) (u uint64, err error)
	ReadBool() (b bool, err error)
}

// BitWriter is the write side of the bit channel the codec produces
// into.  *bitio.Writer satisfies it.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
	WriteBool(b bool) error
}

// WriteTree serializes t as a preorder traversal: a 0 bit introduces an
// internal node followed by its left and right subtrees, and a 1 bit
// introduces a leaf followed by its 9-bit symbol value.  The structural
// bits exactly delimit the recursion, so the encoding is self-describing
// and needs no length prefix.
func WriteTree(w BitWriter, t *Tree) error {
	return t.writeNode(w, t.root)
}

func (t *Tree) writeNode(w BitWriter, index int32) error {
	if t.IsLeaf(index) {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(t.LeafSymbol(index)), symbolBits)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := t.writeNode(w, t.nodes[index].left); err != nil {
		return err
	}
	return t.writeNode(w, t.nodes[index].right)
}

// ReadTree deserializes a tree previously written by WriteTree,
// consuming exactly the bits the header occupies.  The header's length
// is implied by the tree shape, so running out of bits mid-header is
// always corruption, never legitimate end of input; it yields
// ErrHeaderCorrupt, as do leaf values beyond EOD and nesting deeper than
// MaxCodeBits.  Other read errors propagate unchanged.
func ReadTree(r BitReader) (*Tree, error) {
	t := &Tree{nodes: make([]treeNode, 0, 2*NumSymbols-1)}
	root, err := t.readNode(r, 0)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Tree) readNode(r BitReader, depth int) (int32, error) {
	if depth > MaxCodeBits {
		return 0, ErrHeaderCorrupt
	}
	leaf, err := r.ReadBool()
	if err != nil {
		return 0, headerErr(err)
	}
	if leaf {
		value, err := r.ReadBits(symbolBits)
		if err != nil {
			return 0, headerErr(err)
		}
		if value > uint64(EOD) {
			return 0, ErrHeaderCorrupt
		}
		return t.addLeaf(Symbol(value)), nil
	}
	left, err := t.readNode(r, depth+1)
	if err != nil {
		return 0, err
	}
	right, err := t.readNode(r, depth+1)
	if err != nil {
		return 0, err
	}
	return t.addInternal(left, right), nil
}

func headerErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrHeaderCorrupt
	}
	return err
}
