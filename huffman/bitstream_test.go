// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman_test

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"

	"github.com/blanu/huffcode/huffman"
)

func randomBits(rng *rand.Rand, n int) []huffman.Bit {
	bits := make([]huffman.Bit, n)
	for i := range bits {
		bits[i] = huffman.Bit(rng.Intn(2))
	}
	return bits
}

func writeAll(t *testing.T, boundary huffman.Boundary, bits []huffman.Bit) []byte {
	var buf bytes.Buffer
	bw := huffman.NewBitWriter(&buf, boundary)
	for _, bit := range bits {
		require.NoError(t, bw.WriteBit(bit))
	}
	require.NoError(t, bw.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, boundary huffman.Boundary, coded []byte) []huffman.Bit {
	br := huffman.NewBitReader(bytes.NewReader(coded), boundary)
	var bits []huffman.Bit
	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			return bits
		}
		require.NoError(t, err)
		bits = append(bits, bit)
	}
}

func TestBitWriterAgreesWithBitio(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		bits := randomBits(rng, rng.Intn(100))
		coded := writeAll(t, huffman.BoundaryPad, bits)
		require.Len(t, coded, (len(bits)+7)/8)

		r := bitio.NewReader(bytes.NewReader(coded))
		for i, bit := range bits {
			got, err := r.ReadBool()
			require.NoError(t, err)
			require.Equal(t, bit == huffman.One, got, "bit %d", i)
		}
	}
}

func TestBitReaderAgreesWithBitio(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		bits := randomBits(rng, 8*rng.Intn(12))

		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		for _, bit := range bits {
			require.NoError(t, w.WriteBool(bit == huffman.One))
		}
		require.NoError(t, w.Close())

		require.Equal(t, bits, nilIfEmpty(readAll(t, huffman.BoundaryDrop, buf.Bytes()), len(bits)))
	}
}

// nilIfEmpty lets an empty read compare equal to an empty expectation made by make.
func nilIfEmpty(bits []huffman.Bit, expectedLen int) []huffman.Bit {
	if bits == nil && expectedLen == 0 {
		return []huffman.Bit{}
	}
	return bits
}

func TestBitReaderMostSignificantFirst(t *testing.T) {
	bits := readAll(t, huffman.BoundaryPad, []byte{0xa5})
	require.Equal(t, []huffman.Bit{1, 0, 1, 0, 0, 1, 0, 1}, bits)
}

func TestBitWriterBoundaries(t *testing.T) {
	partial := []huffman.Bit{1, 0, 1}
	full := []huffman.Bit{1, 1, 0, 0, 1, 0, 1, 0}

	cases := []struct {
		boundary huffman.Boundary
		bits     []huffman.Bit
		expected []byte
	}{
		{huffman.BoundaryDrop, partial, nil},
		{huffman.BoundaryPad, partial, []byte{0xa0}},
		{huffman.BoundaryTrailer, partial, []byte{0xa0, 3}},
		{huffman.BoundaryDrop, full, []byte{0xca}},
		{huffman.BoundaryPad, full, []byte{0xca}},
		{huffman.BoundaryTrailer, full, []byte{0xca, 8}},
		{huffman.BoundaryDrop, append(full, partial...), []byte{0xca}},
		{huffman.BoundaryTrailer, append(full, partial...), []byte{0xca, 0xa0, 3}},
		{huffman.BoundaryDrop, nil, nil},
		{huffman.BoundaryPad, nil, nil},
		{huffman.BoundaryTrailer, nil, nil},
	}

	for _, c := range cases {
		coded := writeAll(t, c.boundary, c.bits)
		if len(c.expected) == 0 {
			require.Empty(t, coded, "%v %v", c.boundary, c.bits)
		} else {
			require.Equal(t, c.expected, coded, "%v %v", c.boundary, c.bits)
		}
	}
}

func TestBitWriterPending(t *testing.T) {
	var buf bytes.Buffer
	bw := huffman.NewBitWriter(&buf, huffman.BoundaryDrop)
	for i := 0; i < 11; i++ {
		require.NoError(t, bw.WriteBit(huffman.One))
	}
	require.Equal(t, 3, bw.Pending())
	require.Equal(t, int64(11), bw.Bits())
	require.Equal(t, []byte{0xff}, buf.Bytes())
}

func TestBitWriterInvalidBitLatches(t *testing.T) {
	var buf bytes.Buffer
	bw := huffman.NewBitWriter(&buf, huffman.BoundaryTrailer)
	require.NoError(t, bw.WriteBit(huffman.One))
	require.ErrorIs(t, bw.WriteBit(huffman.Bit(2)), huffman.ErrInvalidBit)
	require.ErrorIs(t, bw.WriteBit(huffman.Zero), huffman.ErrInvalidBit)
	require.ErrorIs(t, bw.Close(), huffman.ErrInvalidBit)
	require.Empty(t, buf.Bytes())
}

func TestBitWriterClosed(t *testing.T) {
	var buf bytes.Buffer
	bw := huffman.NewBitWriter(&buf, huffman.BoundaryPad)
	require.NoError(t, bw.WriteBit(huffman.One))
	require.NoError(t, bw.Close())
	require.NoError(t, bw.Close())
	require.ErrorIs(t, bw.WriteBit(huffman.One), huffman.ErrWriterClosed)
	require.Equal(t, []byte{0x80}, buf.Bytes())
}

func TestBitReaderTrailer(t *testing.T) {
	require.Equal(t, []huffman.Bit{1, 0, 1}, readAll(t, huffman.BoundaryTrailer, []byte{0xa0, 3}))
	require.Equal(t,
		[]huffman.Bit{1, 1, 0, 0, 1, 0, 1, 0, 1},
		readAll(t, huffman.BoundaryTrailer, []byte{0xca, 0x80, 1}))
	require.Empty(t, readAll(t, huffman.BoundaryTrailer, nil))

	malformed := [][]byte{
		{0x80},
		{0x80, 0},
		{0x80, 9},
		{0x80, 0xff},
	}
	for _, coded := range malformed {
		br := huffman.NewBitReader(bytes.NewReader(coded), huffman.BoundaryTrailer)
		_, err := br.ReadBit()
		require.ErrorIs(t, err, huffman.ErrBadTrailer, "%x", coded)
	}
}

func TestBitStreamLoopback(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	boundaries := []huffman.Boundary{huffman.BoundaryTrailer, huffman.BoundaryPad, huffman.BoundaryDrop}

	for iteration := 0; iteration < iterations; iteration++ {
		bits := randomBits(rng, rng.Intn(200))
		for _, boundary := range boundaries {
			got := readAll(t, boundary, writeAll(t, boundary, bits))
			keep := len(bits)
			switch boundary {
			case huffman.BoundaryPad:
				keep = (len(bits) + 7) / 8 * 8
			case huffman.BoundaryDrop:
				keep = len(bits) / 8 * 8
			}
			require.Len(t, got, keep, "%v", boundary)

			common := len(bits)
			if keep < common {
				common = keep
			}
			require.Equal(t, bits[:common], got[:common], "%v", boundary)
			for _, pad := range got[common:] {
				require.Equal(t, huffman.Zero, pad)
			}
		}
	}
}
