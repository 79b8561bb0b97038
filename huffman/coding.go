// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"fmt"
	"io"
)

// Lookup returns the codeword for sym by searching the tree depth-first, left before right.  It panics if no
// leaf holds sym, which cannot happen for a tree returned by Build.
func Lookup(root Node, sym byte) BitString {
	path, found := findPath(root, sym, nil)
	if !found {
		panic(fmt.Sprintf("huffman: symbol %d not present in tree", sym))
	}
	return packBits(path)
}

func findPath(node Node, sym byte, path []Bit) ([]Bit, bool) {
	switch n := node.(type) {
	case *Leaf:
		return path, n.Symbol == sym
	case *Branch:
		if found, ok := findPath(n.Left, sym, append(path, Zero)); ok {
			return found, true
		}
		return findPath(n.Right, sym, append(path, One))
	default:
		panic("huffman: unknown node type")
	}
}

// Coding holds a tree together with the codeword of every symbol, so that encoding does not search the
// tree once per input octet.
type Coding struct {
	root    Node
	codes   [AlphabetSize]BitString
	present [AlphabetSize]bool
}

// NewCoding records the codeword of every leaf under root.
func NewCoding(root Node) *Coding {
	coding := &Coding{root: root}
	Walk(root, func(leaf *Leaf, code BitString) {
		coding.codes[leaf.Symbol] = code
		coding.present[leaf.Symbol] = true
	})
	return coding
}

// Root returns the tree the coding was made from.
func (coding *Coding) Root() Node {
	return coding.root
}

// Code returns the codeword for sym.  It panics if the tree had no leaf for sym.
func (coding *Coding) Code(sym byte) BitString {
	if !coding.present[sym] {
		panic(fmt.Sprintf("huffman: symbol %d not present in tree", sym))
	}
	return coding.codes[sym]
}

// Depth returns the length in bits of the codeword for sym.
func (coding *Coding) Depth(sym byte) int {
	return coding.Code(sym).BitLength
}

// DecodeStep reads bits from br, descending from root (Zero left, One right) until it reaches a leaf, and
// returns that leaf's symbol.  If the stream ends before the first bit, it returns io.EOF; if it ends after
// some bits have been consumed, it returns ErrTruncated.
func DecodeStep(root Node, br *BitReader) (byte, error) {
	if _, ok := root.(*Leaf); ok {
		panic("huffman: cannot decode with a single-leaf tree")
	}

	node := root
	for {
		switch n := node.(type) {
		case *Leaf:
			return n.Symbol, nil
		case *Branch:
			bit, err := br.ReadBit()
			if err == io.EOF {
				if node == root {
					return 0, io.EOF
				}
				return 0, ErrTruncated
			} else if err != nil {
				return 0, err
			}

			if bit == Zero {
				node = n.Left
			} else {
				node = n.Right
			}
		default:
			panic("huffman: unknown node type")
		}
	}
}

// WriteCodeList writes one line per leaf, in tree order, giving the symbol and its codeword as binary
// digits.
func WriteCodeList(w io.Writer, root Node) (err error) {
	Walk(root, func(leaf *Leaf, code BitString) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%3d %-6q %s\n", leaf.Symbol, leaf.Symbol, code)
	})
	return
}
