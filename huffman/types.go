// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

// Bit is a single binary digit.  Only Zero and One are valid; a BitWriter rejects anything else.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// BitString represents a packed bit string.  Within each octet, bits are addressed most significant first.
// A codeword is a BitString whose bits give the path from the tree root, Zero for left and One for right.
//
// Invariants:
//   - 0 <= BitLength <= len(Packed)*8
//   - if BitLength%8 != 0, the low (8 - BitLength%8) bits of Packed[BitLength/8] are zero
type BitString struct {
	Packed    []uint8
	BitLength int
}

// packBits builds a BitString from a slice of single bits.
func packBits(bits []Bit) BitString {
	packed := make([]uint8, (len(bits)+7)/8)
	for i, bit := range bits {
		packed[i/8] |= uint8(bit) << uint(7-i%8)
	}
	return BitString{packed, len(bits)}
}

// At returns the bit at position i, counting from the start of the string.
func (bs BitString) At(i int) Bit {
	if !(0 <= i && i < bs.BitLength) {
		panic("huffman: bit string index out of range")
	}
	return Bit(bs.Packed[i/8]>>uint(7-i%8)) & 1
}

// HasPrefix returns true iff prefix is a (possibly equal) prefix of bs.
func (bs BitString) HasPrefix(prefix BitString) bool {
	if prefix.BitLength > bs.BitLength {
		return false
	}
	for i := 0; i < prefix.BitLength; i++ {
		if bs.At(i) != prefix.At(i) {
			return false
		}
	}
	return true
}

// check panics if any of the invariants are invalid for bs.
func (bs BitString) check() {
	switch {
	case !(0 <= bs.BitLength):
		panic("huffman: bit string with negative length")
	case !(bs.BitLength <= len(bs.Packed)*8):
		panic("huffman: bit string with insufficient octets to represent it")
	}

	if bs.BitLength%8 != 0 {
		// Conversion safety: 0 < bs.BitLength%8 <= 7.
		shift := uint(8 - bs.BitLength%8)
		lowBits := bs.Packed[bs.BitLength/8] & (uint8(1)<<shift - 1)
		if lowBits != 0 {
			panic("huffman: bit string with extraneous nonzero bits in representation")
		}
	}
}

// String renders bs as a run of '0' and '1' digits.
func (bs BitString) String() string {
	bitRunes := make([]rune, bs.BitLength)
	for i := range bitRunes {
		if bs.At(i) == Zero {
			bitRunes[i] = '0'
		} else {
			bitRunes[i] = '1'
		}
	}

	return string(bitRunes)
}
