// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func smallTree() Node {
	// 'a' = 0, 'b' = 10, 'c' = 11
	return newBranch(
		&Leaf{Symbol: 'a', weight: 3},
		newBranch(&Leaf{Symbol: 'b', weight: 1}, &Leaf{Symbol: 'c', weight: 1}),
	)
}

func TestLookupSmallTree(t *testing.T) {
	root := smallTree()
	require.Equal(t, "0", Lookup(root, 'a').String())
	require.Equal(t, "10", Lookup(root, 'b').String())
	require.Equal(t, "11", Lookup(root, 'c').String())
	require.Equal(t, uint64(5), root.Weight())
}

func TestLookupMissingSymbolPanics(t *testing.T) {
	root := smallTree()
	require.Panics(t, func() { Lookup(root, 'z') })
	require.Panics(t, func() { NewCoding(root).Code('z') })
}

func TestReportExitTo(t *testing.T) {
	run := func() (err error) {
		defer ReportExitTo(&err)
		NewCoding(smallTree()).Code('z')
		return nil
	}

	err := run()
	require.IsType(t, &PanicError{}, err)
	require.Contains(t, err.Error(), "symbol 122 not present")
}

func TestPackedCodesSatisfyInvariants(t *testing.T) {
	Walk(Build(NewTable()), func(leaf *Leaf, code BitString) {
		require.NotPanics(t, code.check)
	})

	bad := BitString{[]uint8{0xff}, 3}
	require.Panics(t, bad.check)
}
