// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Stats summarizes one Encode or Decode run.  InBytes and OutBytes count octets on the respective side of
// the run; Bits counts codeword bits written (Encode) or consumed (Decode).
type Stats struct {
	InBytes  int64
	OutBytes int64
	Bits     int64
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Encode reads r to the end and writes the codeword of each octet to w, settling the final partial octet
// according to p.Boundary.  A nil p means DefParams.  No header, length, or table is written.
func Encode(coding *Coding, r io.Reader, w io.Writer, p *Params) (stats Stats, err error) {
	p = paramsOrDefault(p)

	in := bufio.NewReader(r)
	counted := &countingWriter{w: w}
	out := bufio.NewWriter(counted)
	bw := NewBitWriter(out, p.Boundary)

	for {
		ch, rerr := in.ReadByte()
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			return stats, errors.Wrap(rerr, "huffman: reading input")
		}

		stats.InBytes++
		if err = bw.WriteBits(coding.Code(ch)); err != nil {
			return stats, errors.Wrap(err, "huffman: writing output")
		}
	}

	if err = bw.Close(); err != nil {
		return stats, errors.Wrap(err, "huffman: writing output")
	}
	if err = out.Flush(); err != nil {
		return stats, errors.Wrap(err, "huffman: writing output")
	}

	stats.Bits = bw.Bits()
	stats.OutBytes = counted.n
	log.Infof("encoded %d bytes into %d bits (%d bytes, boundary %v)",
		stats.InBytes, stats.Bits, stats.OutBytes, p.Boundary)
	return stats, nil
}
