// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../../LICENSE.md.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/blanu/huffcode/huffman"
)

var log = logging.MustGetLogger("huffcode/main")

const progName = "huffcode"
const usageMessageRaw = `
Usage: huffcode OPTIONS SUBCOMMAND...

Options:
  --debug, -d
	Log every boundary decision to standard error.

Subcommands:
  encode FREQ-FILE INPUT OUTPUT [PARAM...]
	Count byte frequencies in FREQ-FILE, build the code from them,
	and write the coded form of INPUT to OUTPUT.  "huffcode" is
	accepted as another name for this subcommand.

  decode FREQ-FILE INPUT OUTPUT [PARAM...]
	Rebuild the code from FREQ-FILE, which must have the same
	contents as when encoding, and write the decoded form of INPUT
	to OUTPUT.  "huffdecode" is accepted as another name.

  codes FREQ-FILE
	Write the table fingerprint and every symbol's codeword to
	standard output.

  table FREQ-FILE
	Write the frequency table to standard output.

  verify FREQ-FILE INPUT [PARAM...]
	Encode INPUT in memory, decode the result, and compare digests.

Each PARAM must be of the form KEY=VALUE.  Parameters:
  boundary=trailer|pad|drop
	Treatment of the final partial byte (default trailer).  Both
	sides must use the same value.
`

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func remainingArgs() []string {
	slice := ourFlags.Args()[argI:]
	argI = ourFlags.NArg()
	return slice
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

func paramsFromArgs() *huffman.Params {
	unparsed, err := splitParams(remainingArgs())
	if err != nil {
		usageErrorf("%s", err.Error())
	}

	params, err := huffman.ParseParams(unparsed)
	if err != nil {
		usageErrorf("%s", err.Error())
	}
	return params
}

func transcodeFromArgs(transcode func(freqPath, inPath, outPath string, p *huffman.Params) error) func() error {
	freqPath := nextArg("FREQ-FILE")
	inPath := nextArg("INPUT")
	outPath := nextArg("OUTPUT")
	params := paramsFromArgs()

	return func() error {
		return transcode(freqPath, inPath, outPath, params)
	}
}

func codesFromArgs() func() error {
	freqPath := nextArg("FREQ-FILE")
	endOfArgs()

	return func() error {
		return showCodes(os.Stdout, freqPath)
	}
}

func tableFromArgs() func() error {
	freqPath := nextArg("FREQ-FILE")
	endOfArgs()

	return func() error {
		return showTable(os.Stdout, freqPath)
	}
}

func verifyFromArgs() func() error {
	freqPath := nextArg("FREQ-FILE")
	inPath := nextArg("INPUT")
	params := paramsFromArgs()

	return func() error {
		return verifyFile(os.Stdout, freqPath, inPath, params)
	}
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func runCommand(command func() error) (err error) {
	defer huffman.ReportExitTo(&err)
	return command()
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		for _, module := range huffman.LogModules {
			leveledLogBackend.SetLevel(logging.DEBUG, module)
		}
	}

	var requestedCommand func() error
	subcommandArg := nextArg("SUBCOMMAND")
	switch subcommandArg {
	default:
		usageErrorf("unrecognized subcommand \"%s\"", subcommandArg)
	case "encode", "huffcode":
		requestedCommand = transcodeFromArgs(encodeFile)
	case "decode", "huffdecode":
		requestedCommand = transcodeFromArgs(decodeFile)
	case "codes":
		requestedCommand = codesFromArgs()
	case "table":
		requestedCommand = tableFromArgs()
	case "verify":
		requestedCommand = verifyFromArgs()
	}

	log.Debugf("running %s", subcommandArg)
	if err := runCommand(requestedCommand); err != nil {
		exitError(err)
	}
}
