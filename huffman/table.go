// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Table holds one weight per symbol.  Build treats it as read-only.
type Table [AlphabetSize]uint64

// NewTable returns a table with every weight set to 1, so that every symbol gets a codeword even if it never
// occurs in the sampled input.
func NewTable() *Table {
	t := new(Table)
	for i := range t {
		t[i] = 1
	}
	return t
}

// CountFrequencies reads r to the end and returns a floor-1 table with one count added per octet seen.
func CountFrequencies(r io.Reader) (*Table, error) {
	t := NewTable()
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return t, nil
		} else if err != nil {
			return nil, errors.Wrap(err, "huffman: counting frequencies")
		}

		t[ch]++
	}
}

// Total returns the sum of all weights.
func (t *Table) Total() (total uint64) {
	for _, w := range t {
		total += w
	}
	return
}

// Fingerprint hashes the table contents.  Two tables with equal fingerprints build the same tree for all
// practical purposes; the value is meant to be compared by hand between the encoding and decoding sides.
func (t *Table) Fingerprint() uint64 {
	var raw [AlphabetSize * 8]byte
	for i, w := range t {
		binary.LittleEndian.PutUint64(raw[i*8:], w)
	}
	return xxhash.Sum64(raw[:])
}

// WriteTo writes one line per symbol giving its value, quoted form, and weight.
func (t *Table) WriteTo(w io.Writer) (total int64, err error) {
	for i, weight := range t {
		var n int
		n, err = fmt.Fprintf(w, "%3d %-6q %d\n", i, byte(i), weight)
		total += int64(n)
		if err != nil {
			return
		}
	}
	return
}
