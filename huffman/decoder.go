// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Decode reads codewords from r until the end of the stream and writes the decoded octets to w.  root must be
// the tree the stream was encoded with, and p must carry the same Boundary; a nil p means DefParams.
//
// Under BoundaryTrailer a stream that ends inside a codeword is an error.  Under BoundaryPad and
// BoundaryDrop that is the expected shape of the tail and decoding simply stops there.  See Boundary for what
// the output looks like in those cases.
func Decode(root Node, r io.Reader, w io.Writer, p *Params) (stats Stats, err error) {
	p = paramsOrDefault(p)

	counted := &countingReader{r: r}
	br := NewBitReader(bufio.NewReader(counted), p.Boundary)
	out := bufio.NewWriter(w)

	for {
		sym, serr := DecodeStep(root, br)
		if serr == io.EOF {
			break
		} else if serr == ErrTruncated && p.Boundary != BoundaryTrailer {
			log.Debugf("discarding partial codeword at end of stream (boundary %v)", p.Boundary)
			break
		} else if serr != nil {
			return stats, errors.Wrap(serr, "huffman: decoding input")
		}

		if err = out.WriteByte(sym); err != nil {
			return stats, errors.Wrap(err, "huffman: writing output")
		}
		stats.OutBytes++
	}

	if err = out.Flush(); err != nil {
		return stats, errors.Wrap(err, "huffman: writing output")
	}

	stats.Bits = br.Bits()
	stats.InBytes = counted.n
	log.Infof("decoded %d bits (%d bytes, boundary %v) into %d bytes",
		stats.Bits, stats.InBytes, p.Boundary, stats.OutBytes)
	return stats, nil
}
