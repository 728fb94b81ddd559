// Command huffpack compresses and decompresses files with a Huffman code.
//
// Usage:
//
//     huffpack [-binary] [-v] encode INPUT OUTPUT
//     huffpack [-binary] [-v] decode INPUT OUTPUT
//     huffpack [-binary] dump ARCHIVE
//
// By default INPUT is treated as UTF-8 text and each code point is a symbol.
// With -binary, each byte is a symbol and INPUT may hold anything.  The same
// -binary setting must be used to encode and decode a file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	binary  bool
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.binary, "binary", false, "treat input as raw bytes instead of UTF-8 text")
	fs.BoolVar(&opts.verbose, "v", false, "log sizes and timing")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: huffpack [-binary] [-v] encode|decode INPUT OUTPUT\n")
		fmt.Fprintf(stderr, "       huffpack [-binary] dump ARCHIVE\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	logg := logger.New(stderr, opts.verbose)
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}

	var err error
	switch mode := rest[0]; {
	case mode == "encode" && len(rest) == 3:
		err = encodeFile(opts, logg, rest[1], rest[2])
	case mode == "decode" && len(rest) == 3:
		err = decodeFile(opts, logg, rest[1], rest[2])
	case mode == "dump" && len(rest) == 2:
		err = dumpFile(opts, stdout, rest[1])
	default:
		fs.Usage()
		return exitUsage
	}
	if err != nil {
		logg.Errorf("%v", err)
		return exitError
	}
	return exitOK
}

func encodeFile(opts options, logg logger.Logger, inputPath, outputPath string) error {
	start := time.Now()

	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var output []byte
	if opts.binary {
		output, err = huffpack.CompressBytes(input)
	} else {
		output, err = huffpack.Compress(string(input))
	}
	if errors.Is(err, huffpack.ErrInvalidUTF8) {
		return fmt.Errorf("compress %s: %w (use -binary for non-text input)", inputPath, err)
	}
	if err != nil {
		return fmt.Errorf("compress %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logg.Infof("%s: %d bytes -> %d bytes (%s)", inputPath, len(input), len(output), ratio(len(output), len(input)))
	logg.Infof("elapsed time: %.2f seconds", time.Since(start).Seconds())
	return nil
}

func decodeFile(opts options, logg logger.Logger, inputPath, outputPath string) error {
	start := time.Now()

	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var output []byte
	if opts.binary {
		output, err = huffpack.DecompressBytes(input)
	} else {
		var text string
		text, err = huffpack.Decompress(input)
		output = []byte(text)
	}
	if err != nil {
		return fmt.Errorf("decompress %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logg.Infof("%s: %d bytes -> %d bytes", inputPath, len(input), len(output))
	logg.Infof("elapsed time: %.2f seconds", time.Since(start).Seconds())
	return nil
}

func dumpFile(opts options, w io.Writer, archivePath string) error {
	input, err := os.ReadFile(archivePath)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}
	if opts.binary {
		return dumpModel[byte](w, huffpack.Bytes{}, input)
	}
	return dumpModel[rune](w, huffpack.UTF8{}, input)
}

func dumpModel[S comparable](w io.Writer, codec huffpack.SymbolCodec[S], archive []byte) error {
	freqs, _, err := huffpack.ParseFrequencies(codec, archive)
	if err != nil {
		return err
	}
	m, err := huffpack.NewModel(freqs)
	if err != nil {
		return err
	}
	_, err = m.Dump(w)
	return err
}

func ratio(num, den int) string {
	if den == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(num)/float64(den))
}
