package hufftree

// Symbol represents a symbol in the compressor's alphabet.  Values 0
// through 255 are literal byte values; EOD is the end-of-data sentinel.
// Negative symbols are not valid.
type Symbol int32

// NumSymbols is the size of the alphabet: 256 byte values plus EOD.
const NumSymbols = 257

// EOD is the end-of-data sentinel.  It terminates every payload, and it
// is the one symbol guaranteed a nonzero frequency even when the input
// is empty.
const EOD = Symbol(256)

// InvalidSymbol marks tree nodes that hold no symbol.
const InvalidSymbol = Symbol(-1)

// symbolBits is the fixed width of a serialized leaf value, wide enough
// to cover EOD.
const symbolBits = 9
