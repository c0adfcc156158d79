package hufftree

import (
	"errors"
)

// ErrFormat is returned by Decompress when the input does not begin with
// the expected magic number.
var ErrFormat = errors.New("hufftree: not a hufftree-compressed stream")

// ErrHeaderCorrupt is returned when the bit channel runs out while
// structural header bits are still required, or when the header encodes
// an impossible tree.
var ErrHeaderCorrupt = errors.New("hufftree: malformed tree header")

// ErrPayloadTruncated is returned when the payload ends before the
// end-of-data code is reached.
var ErrPayloadTruncated = errors.New("hufftree: truncated payload, missing end-of-data code")
