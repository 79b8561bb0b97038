// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"strings"
)

const (
	paramBoundary = "boundary"

	suffixOptional = "?"
)

var (
	ErrInvalidBoundary = &ParameterError{ParameterInvalid, "boundary policy", ""}
)

// Params represents the settings that must agree between the encoding and decoding sides, apart from the
// frequency table itself.
type Params struct {
	Boundary Boundary
}

var defParams = Params{
	Boundary: BoundaryTrailer,
}

// DefParams returns the stock parameters.
func DefParams() Params {
	return defParams
}

// CheckUnackedParams ensures that all parameters in params are either acknowledged by being associated
// with a true value in ackedParams or are optional due to being suffixed with a question mark.  If any
// unacknowledged requisite parameters are present, it returns an appropriate error.
func CheckUnackedParams(params map[string]string, ackedParams map[string]bool) error {
	for key := range params {
		if !ackedParams[key] && !strings.HasSuffix(key, suffixOptional) {
			return &ParameterError{ParameterUnexpected, "parameter", key}
		}
	}

	return nil
}

// ParseFrom fills in p from the unparsed KEY=VALUE pairs, marking each key it consumes in acked.  Keys that
// are absent leave the corresponding field alone.
func (p *Params) ParseFrom(unparsed map[string]string, acked map[string]bool) error {
	if name, present := unparsed[paramBoundary]; present {
		boundary, ok := ParseBoundary(name)
		if !ok {
			return &ParameterError{ParameterInvalid, "boundary policy", name}
		}

		acked[paramBoundary] = true
		p.Boundary = boundary
	}

	return p.Validate()
}

// ParseParams returns the stock parameters overridden by unparsed.  Unknown keys are an error unless they
// end in a question mark.
func ParseParams(unparsed map[string]string) (*Params, error) {
	// Must explicitly copy here.
	p := defParams
	acked := make(map[string]bool)
	if err := p.ParseFrom(unparsed, acked); err != nil {
		return nil, err
	}

	if err := CheckUnackedParams(unparsed, acked); err != nil {
		return nil, err
	}

	return &p, nil
}

// UnparseInto writes the parameters that differ from the stock ones into unparsed.
func (p *Params) UnparseInto(unparsed map[string]string) {
	def := &defParams

	if p.Boundary != def.Boundary {
		unparsed[paramBoundary] = p.Boundary.String()
	}
}

func (p *Params) Unparse() (unparsed map[string]string) {
	unparsed = make(map[string]string)
	p.UnparseInto(unparsed)
	return
}

func (p *Params) Validate() error {
	if _, ok := boundaryNames[p.Boundary]; !ok {
		return ErrInvalidBoundary
	}
	return nil
}

func paramsOrDefault(p *Params) *Params {
	if p == nil {
		def := defParams
		return &def
	}
	return p
}
