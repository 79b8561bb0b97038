// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

/*
Package huffman implements a byte-oriented Huffman coder for 256-symbol alphabets.

A Table of per-byte frequencies is turned into a tree with Build.  The same table must be used on both sides:
the coded stream carries no header and no code table, so a decoder only works when it rebuilds the tree from
exactly the frequencies the encoder used.  Table.Fingerprint gives a short value that two sides can compare
out of band.

Encode and Decode move bytes between an io.Reader and an io.Writer.  Codewords are packed most significant
bit first.  How the final partial octet is treated is controlled by the boundary parameter; see Boundary.
*/
package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffcode/huffman")

var LogModules = []string{
	"huffcode/huffman",
	"huffcode/main",
}

// AlphabetSize is the number of distinct symbols, one per octet value.
const AlphabetSize = 256
