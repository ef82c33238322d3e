// zit exposes a handful of byte-level helpers behind a single positional
// command: zlib compression and decompression of files, Adler-32 of a
// string, and character/code-point conversions.
//
// Usage: zit <command> [<args>...]
//
//	zit decompress <input-path>
//	zit compress <input-path> [<output-path>]
//	zit adler32 <string>
//	zit ord <string>
//	zit chr <integer>
//	zit hex <integer>
//
// Byte buffers written to stdout use Go quoted-string notation, since
// compressed bytes are not guaranteed to be valid text. An unrecognized or
// missing command does nothing and exits 0.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/NyuB/zit/charcode"
	"github.com/NyuB/zit/zlibio"
)

// command is the closed set of operations selectable by the first
// argument. Anything else resolves to cmdNone, which does nothing: the
// original tool silently ignored unknown commands and that behavior is
// preserved.
type command int

const (
	cmdNone command = iota
	cmdDecompress
	cmdCompress
	cmdAdler32
	cmdOrd
	cmdChr
	cmdHex
)

func parseCommand(name string) command {
	switch name {
	case "decompress":
		return cmdDecompress
	case "compress":
		return cmdCompress
	case "adler32":
		return cmdAdler32
	case "ord":
		return cmdOrd
	case "chr":
		return cmdChr
	case "hex":
		return cmdHex
	default:
		return cmdNone
	}
}

var errMissingArgument = errors.New("missing argument")

// operand returns args[i], or an error if the argument list is too short.
func operand(args []string, i int) (string, error) {
	if i >= len(args) {
		return "", errMissingArgument
	}
	return args[i], nil
}

// run executes the single operation selected by args, writing any result
// to stdout. args is the argument list without the program name.
func run(args []string, stdout io.Writer) error {
	cmd := cmdNone
	if len(args) > 0 {
		cmd = parseCommand(args[0])
	}

	switch cmd {
	case cmdDecompress:
		path, err := operand(args, 1)
		if err != nil {
			return err
		}
		return decompressFile(path, stdout)

	case cmdCompress:
		inPath, err := operand(args, 1)
		if err != nil {
			return err
		}
		outPath := ""
		if len(args) > 2 {
			outPath = args[2]
		}
		return compressFile(inPath, outPath, stdout)

	case cmdAdler32:
		s, err := operand(args, 1)
		if err != nil {
			return err
		}
		sum, err := charcode.Adler32(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%d\n", sum)
		return err

	case cmdOrd:
		s, err := operand(args, 1)
		if err != nil {
			return err
		}
		codePoint, err := charcode.Ord(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%d\n", codePoint)
		return err

	case cmdChr:
		s, err := operand(args, 1)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("chr: %w", err)
		}
		c, err := charcode.Chr(n)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, c)
		return err

	case cmdHex:
		s, err := operand(args, 1)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("hex: %w", err)
		}
		_, err = fmt.Fprintln(stdout, charcode.Hex(n))
		return err
	}

	// cmdNone: unknown or missing command is a silent no-op
	return nil
}

// decompressFile reads a zlib-framed file and prints the inflated bytes in
// quoted form.
func decompressFile(path string, stdout io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	inflated, err := zlibio.Decompress(content)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%q\n", inflated)
	return err
}

// compressFile compresses a file at the default zlib level. With an output
// path it writes the raw compressed bytes there; without one it prints
// them in quoted form.
func compressFile(inPath string, outPath string, stdout io.Writer) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	deflated, err := zlibio.Compress(content)
	if err != nil {
		return err
	}
	if outPath != "" {
		return os.WriteFile(outPath, deflated, 0644)
	}
	_, err = fmt.Fprintf(stdout, "%q\n", deflated)
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "zit: %s\n", err.Error())
		os.Exit(1)
	}
}
