// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBit   = errors.New("huffman: bit value other than 0 or 1")
	ErrWriterClosed = errors.New("huffman: bit writer already closed")
	ErrTruncated    = errors.New("huffman: stream ended in the middle of a codeword")
	ErrBadTrailer   = errors.New("huffman: malformed bit-count trailer")
)

// ParameterErrorHow describes whether the parameter referenced in a ParameterError is missing, unexpected
// (present but without a known interpretation), or invalid (present when expected but with an uninterpretable
// value).
type ParameterErrorHow int

const (
	ParameterErrorUnknown ParameterErrorHow = iota
	ParameterMissing
	ParameterUnexpected
	ParameterInvalid
)

// ParameterError describes a problem relating to a specific parameter.  Specific may be the empty string
// to refer to the single element of a kind.
type ParameterError struct {
	How      ParameterErrorHow
	Kind     string
	Specific string
}

func (pe *ParameterError) Error() string {
	var str string
	switch pe.How {
	case ParameterErrorUnknown:
		str = "??? "
	case ParameterMissing:
		str = "missing "
	case ParameterUnexpected:
		str = "unexpected "
	case ParameterInvalid:
		str = "invalid "
	}

	str += pe.Kind
	if pe.Specific != "" {
		str += " '" + pe.Specific + "'"
	}
	return str
}

// PanicError carries a recovered panic value, such as a symbol missing from a tree, as an ordinary error.
type PanicError struct {
	Value interface{}
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", pe.Value)
}

// ReportExitTo must be deferred directly.  It converts a panic in progress into a *PanicError stored in *cell.
func ReportExitTo(cell *error) {
	if panicked := recover(); panicked != nil {
		*cell = &PanicError{panicked}
	}
}
