// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../../LICENSE.md.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/blanu/huffcode/huffman"
)

var ErrVerifyMismatch = errors.New("decoded output does not match input")

// splitParams turns KEY=VALUE arguments into a map.
func splitParams(args []string) (map[string]string, error) {
	unparsed := make(map[string]string)
	for _, arg := range args {
		equals := strings.IndexRune(arg, '=')
		if equals < 0 {
			return nil, fmt.Errorf("parameter \"%s\" must be of the form KEY=VALUE", arg)
		}

		key, val := arg[:equals], arg[equals+1:]
		unparsed[key] = val
	}
	return unparsed, nil
}

func loadTable(freqPath string) (*huffman.Table, error) {
	f, err := os.Open(freqPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := huffman.CountFrequencies(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", freqPath)
	}

	log.Infof("frequency table from %s: %d bytes, fingerprint %016x",
		freqPath, table.Total()-huffman.AlphabetSize, table.Fingerprint())
	return table, nil
}

// transcodeFile opens inPath and creates outPath, then runs transcode between them.  The output file is
// closed before returning so that write errors surface.
func transcodeFile(inPath, outPath string, transcode func(r io.Reader, w io.Writer) error) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return transcode(in, out)
}

func encodeFile(freqPath, inPath, outPath string, p *huffman.Params) error {
	table, err := loadTable(freqPath)
	if err != nil {
		return err
	}

	coding := huffman.NewCoding(huffman.Build(table))
	return transcodeFile(inPath, outPath, func(r io.Reader, w io.Writer) error {
		_, err := huffman.Encode(coding, r, w, p)
		return err
	})
}

func decodeFile(freqPath, inPath, outPath string, p *huffman.Params) error {
	table, err := loadTable(freqPath)
	if err != nil {
		return err
	}

	root := huffman.Build(table)
	return transcodeFile(inPath, outPath, func(r io.Reader, w io.Writer) error {
		_, err := huffman.Decode(root, r, w, p)
		return err
	})
}

func showCodes(w io.Writer, freqPath string) error {
	table, err := loadTable(freqPath)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "fingerprint %016x\n", table.Fingerprint()); err != nil {
		return err
	}
	return huffman.WriteCodeList(w, huffman.Build(table))
}

func showTable(w io.Writer, freqPath string) error {
	table, err := loadTable(freqPath)
	if err != nil {
		return err
	}

	_, err = table.WriteTo(w)
	return err
}

// verifyFile encodes inPath into memory, decodes it again, and reports whether the result hashes the same
// as the input.  A mismatch is expected for some inputs under the pad and drop boundaries.
func verifyFile(w io.Writer, freqPath, inPath string, p *huffman.Params) error {
	table, err := loadTable(freqPath)
	if err != nil {
		return err
	}
	coding := huffman.NewCoding(huffman.Build(table))

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	inDigest := xxhash.New()
	var coded bytes.Buffer
	encStats, err := huffman.Encode(coding, io.TeeReader(in, inDigest), &coded, p)
	if err != nil {
		return err
	}

	outDigest := xxhash.New()
	decStats, err := huffman.Decode(coding.Root(), &coded, outDigest, p)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "input   %016x %d bytes\n", inDigest.Sum64(), encStats.InBytes)
	fmt.Fprintf(w, "coded   %d bits, %d bytes\n", encStats.Bits, encStats.OutBytes)
	fmt.Fprintf(w, "output  %016x %d bytes\n", outDigest.Sum64(), decStats.OutBytes)

	if inDigest.Sum64() != outDigest.Sum64() || encStats.InBytes != decStats.OutBytes {
		return ErrVerifyMismatch
	}
	_, err = fmt.Fprintf(w, "ok\n")
	return err
}
