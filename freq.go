package hufftree

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
)

// FrequencyTable counts occurrences for each Symbol in the alphabet.
type FrequencyTable [NumSymbols]uint64

// CountBytes consumes r to exhaustion and returns the frequency table
// for its bytes.  The EOD sentinel always receives a count of 1, so the
// resulting table never has an empty symbol set, even for empty input.
func CountBytes(r io.Reader) (*FrequencyTable, error) {
	var ft FrequencyTable
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ft[b]++
	}
	ft[EOD] = 1
	return &ft, nil
}

// Add increments the count for the given symbol.
func (ft *FrequencyTable) Add(symbol Symbol) {
	assert.Assertf(symbol >= 0 && symbol < NumSymbols, "symbol %d out of range [0, %d)", symbol, NumSymbols)
	ft[symbol]++
}
