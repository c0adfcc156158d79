package hufftree

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
)

func TestBuild(t *testing.T) {
	// Counts for "aaab": EOD and 'b' merge first, then the merged node
	// pairs with 'a'.
	var ft FrequencyTable
	ft['a'] = 3
	ft['b'] = 1
	ft[EOD] = 1

	tree := Build(&ft)
	root := tree.Root()
	if tree.IsLeaf(root) {
		t.Fatal("root must not be a leaf")
	}

	inner := tree.Child(root, false)
	if tree.IsLeaf(inner) {
		t.Fatal("left child of root must be the merged node")
	}
	if sym := tree.LeafSymbol(tree.Child(inner, false)); sym != 'b' {
		t.Errorf("expected symbol %d, got %d", Symbol('b'), sym)
	}
	if sym := tree.LeafSymbol(tree.Child(inner, true)); sym != EOD {
		t.Errorf("expected symbol %d, got %d", EOD, sym)
	}
	if sym := tree.LeafSymbol(tree.Child(root, true)); sym != 'a' {
		t.Errorf("expected symbol %d, got %d", Symbol('a'), sym)
	}
}

func TestBuild_Degenerate(t *testing.T) {
	// Empty input leaves EOD as the only weighted symbol.  The lone leaf
	// is wrapped so it still gets a one-bit code.
	ft, err := CountBytes(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("CountBytes failed: %v", err)
	}

	tree := Build(ft)
	root := tree.Root()
	if tree.IsLeaf(root) {
		t.Fatal("root must not be a leaf")
	}
	if sym := tree.LeafSymbol(tree.Child(root, false)); sym != EOD {
		t.Errorf("expected lone symbol %d on the left, got %d", EOD, sym)
	}
	if sym := tree.LeafSymbol(tree.Child(root, true)); sym != 0 {
		t.Errorf("expected placeholder symbol 0 on the right, got %d", sym)
	}
}

func TestBuild_DegenerateZero(t *testing.T) {
	// When the lone symbol is 0 the placeholder moves to symbol 1.
	var ft FrequencyTable
	ft[0] = 7

	tree := Build(&ft)
	root := tree.Root()
	if sym := tree.LeafSymbol(tree.Child(root, false)); sym != 0 {
		t.Errorf("expected lone symbol 0 on the left, got %d", sym)
	}
	if sym := tree.LeafSymbol(tree.Child(root, true)); sym != 1 {
		t.Errorf("expected placeholder symbol 1 on the right, got %d", sym)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	ft, err := CountBytes(bytes.NewReader([]byte("abracadabra")))
	if err != nil {
		t.Fatalf("CountBytes failed: %v", err)
	}

	serialize := func() []byte {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		if err := WriteTree(w, Build(ft)); err != nil {
			t.Fatalf("WriteTree failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		return buf.Bytes()
	}

	first := serialize()
	second := serialize()
	if !bytes.Equal(first, second) {
		t.Errorf("tree shape is not deterministic:\n\tfirst:  % x\n\tsecond: % x", first, second)
	}
}

func TestBuild_TwoSymbols(t *testing.T) {
	// 1000 copies of a single byte value: two leaves, one bit each.
	ft, err := CountBytes(bytes.NewReader(bytes.Repeat([]byte{0x41}, 1000)))
	if err != nil {
		t.Fatalf("CountBytes failed: %v", err)
	}

	ct := Derive(Build(ft))
	if size := ct.Encode(0x41).Size(); size != 1 {
		t.Errorf("expected a 1-bit code for 0x41, got %d bits", size)
	}
	if size := ct.Encode(EOD).Size(); size != 1 {
		t.Errorf("expected a 1-bit code for EOD, got %d bits", size)
	}
}
