// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"io"
)

// Boundary selects what happens to a final octet that is only partly filled with codeword bits.
type Boundary int

const (
	// BoundaryTrailer pads the final octet with zero bits and appends one more octet giving the number of
	// meaningful bits (1 through 8) in the one before it.  Nothing at all is written for an empty input.
	// Decoding stops exactly at the last meaningful bit.
	BoundaryTrailer Boundary = iota

	// BoundaryPad pads the final octet with zero bits.  A decoder cannot tell the padding from codeword
	// bits, so it may emit extra symbols at the end: whatever the padding zeros spell out.
	BoundaryPad

	// BoundaryDrop discards the partial final octet.  Codewords whose bits fell into it are lost.
	BoundaryDrop
)

var boundaryNames = map[Boundary]string{
	BoundaryTrailer: "trailer",
	BoundaryPad:     "pad",
	BoundaryDrop:    "drop",
}

func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return "???"
}

// ParseBoundary returns the Boundary with the given name.
func ParseBoundary(name string) (Boundary, bool) {
	for b, bname := range boundaryNames {
		if bname == name {
			return b, true
		}
	}
	return 0, false
}

const (
	emptyReadCursor  = -1
	fullReadCursor   = 7
	emptyWriteCursor = 7
	fullWriteCursor  = -1
)

// BitReader reads single bits, most significant first, from an underlying octet stream.
type BitReader struct {
	src      io.ByteReader
	boundary Boundary
	buffer   uint8
	cursor   int

	// floor is the lowest meaningful bit position in buffer.  It is nonzero only for the final data octet
	// of a trailer-framed stream.
	floor int

	// ahead holds octets read but not yet loaded, when looking for the trailer.
	ahead   []byte
	srcDone bool

	bits int64
}

// NewBitReader constructs a BitReader drawing octets from src.  Under BoundaryTrailer it reads up to two
// octets ahead of the one being consumed; otherwise it reads exactly one octet whenever the buffer runs out.
func NewBitReader(src io.ByteReader, boundary Boundary) *BitReader {
	return &BitReader{
		src:      src,
		boundary: boundary,
		cursor:   emptyReadCursor,
	}
}

func (br *BitReader) load(octet uint8, floor int) {
	br.buffer = octet
	br.cursor = fullReadCursor
	br.floor = floor
}

func (br *BitReader) refill() error {
	if br.boundary != BoundaryTrailer {
		octet, err := br.src.ReadByte()
		if err != nil {
			return err
		}
		br.load(octet, 0)
		return nil
	}

	for len(br.ahead) < 3 && !br.srcDone {
		octet, err := br.src.ReadByte()
		if err == io.EOF {
			br.srcDone = true
		} else if err != nil {
			return err
		} else {
			br.ahead = append(br.ahead, octet)
		}
	}

	switch len(br.ahead) {
	case 0:
		return io.EOF
	case 1:
		// A trailer with no data before it.
		return ErrBadTrailer
	case 2:
		valid := int(br.ahead[1])
		if !(1 <= valid && valid <= 8) {
			return ErrBadTrailer
		}
		br.load(br.ahead[0], 8-valid)
		br.ahead = br.ahead[:0]
		return nil
	default:
		br.load(br.ahead[0], 0)
		br.ahead = br.ahead[:copy(br.ahead, br.ahead[1:])]
		return nil
	}
}

// ReadBit returns the next bit.  At the end of the stream it returns io.EOF.
func (br *BitReader) ReadBit() (Bit, error) {
	if br.cursor < br.floor {
		if err := br.refill(); err != nil {
			return 0, err
		}
	}

	bit := Bit(br.buffer>>uint(br.cursor)) & 1
	br.cursor--
	br.bits++
	return bit, nil
}

// Bits returns the number of bits returned so far.
func (br *BitReader) Bits() int64 {
	return br.bits
}

// BitWriter accumulates single bits, most significant first, and writes each octet to an underlying stream
// as soon as it is full.  What happens to a partial final octet is decided by Close according to the
// BitWriter's Boundary.
type BitWriter struct {
	dst      io.ByteWriter
	boundary Boundary
	buffer   uint8
	cursor   int
	bits     int64

	// err is sticky: once set, every later write returns it.
	err error
}

// NewBitWriter constructs an empty BitWriter writing octets to dst.
func NewBitWriter(dst io.ByteWriter, boundary Boundary) *BitWriter {
	return &BitWriter{
		dst:      dst,
		boundary: boundary,
		cursor:   emptyWriteCursor,
	}
}

// WriteBit appends one bit.  A value other than Zero or One fails with ErrInvalidBit and leaves the writer
// unusable.
func (bw *BitWriter) WriteBit(bit Bit) error {
	if bw.err != nil {
		return bw.err
	}
	if bit != Zero && bit != One {
		bw.err = ErrInvalidBit
		return bw.err
	}

	bw.buffer |= uint8(bit) << uint(bw.cursor)
	bw.cursor--
	bw.bits++
	if bw.cursor == fullWriteCursor {
		if err := bw.dst.WriteByte(bw.buffer); err != nil {
			bw.err = err
			return err
		}
		bw.buffer = 0
		bw.cursor = emptyWriteCursor
	}
	return nil
}

// WriteBits appends every bit of bs in order.
func (bw *BitWriter) WriteBits(bs BitString) error {
	for i := 0; i < bs.BitLength; i++ {
		if err := bw.WriteBit(bs.At(i)); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the number of bits held in the partial octet that has not been written yet.
func (bw *BitWriter) Pending() int {
	return emptyWriteCursor - bw.cursor
}

// Bits returns the number of bits accepted so far.
func (bw *BitWriter) Bits() int64 {
	return bw.bits
}

// Close settles the partial final octet according to the writer's Boundary.  It does not close dst.  Closing
// twice is harmless; writing after Close fails with ErrWriterClosed.
func (bw *BitWriter) Close() error {
	if bw.err == ErrWriterClosed {
		return nil
	} else if bw.err != nil {
		return bw.err
	}

	pending := bw.Pending()
	var tail []byte
	switch bw.boundary {
	case BoundaryDrop:
		if pending > 0 {
			log.Debugf("dropping %d trailing bits", pending)
		}
	case BoundaryPad:
		if pending > 0 {
			log.Debugf("padding %d trailing bits with %d zeros", pending, 8-pending)
			tail = append(tail, bw.buffer)
		}
	case BoundaryTrailer:
		if bw.bits == 0 {
			break
		}
		valid := 8
		if pending > 0 {
			tail = append(tail, bw.buffer)
			valid = pending
		}
		tail = append(tail, uint8(valid))
	default:
		panic("huffman: unknown boundary policy")
	}

	for _, octet := range tail {
		if err := bw.dst.WriteByte(octet); err != nil {
			bw.err = err
			return err
		}
	}

	bw.buffer = 0
	bw.cursor = emptyWriteCursor
	bw.err = ErrWriterClosed
	return nil
}
