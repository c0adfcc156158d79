package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol present in a Tree to its Huffman code.
// Symbols absent from the tree keep a zero-size code.
type CodeTable [NumSymbols]Code

// Derive computes the code table for t.  Descending to a left child
// appends a 0 bit, descending to a right child appends a 1 bit, and each
// leaf's accumulated path becomes its symbol's code.  The resulting
// codes are prefix-free because distinct leaves of a proper binary tree
// lie on distinct root-to-leaf paths.
func Derive(t *Tree) *CodeTable {
	var ct CodeTable
	t.visitLeaves(t.root, Code{}, func(symbol Symbol, code Code) {
		ct[symbol] = code
	})
	return &ct
}

// Encode returns the code assigned to symbol.
func (ct *CodeTable) Encode(symbol Symbol) Code {
	return ct[symbol]
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := ct[symbol]
		if hc.Size() == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
