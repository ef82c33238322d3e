// Package charcode converts between characters, code points and printed
// integer forms, and checksums strings through a one-byte-per-character
// code page.
package charcode

import (
	"errors"
	"fmt"
	"hash/adler32"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrEmptyString is returned by Ord when there is no first character.
var ErrEmptyString = errors.New("charcode: empty string")

// ErrCodePointRange is returned by Chr for values outside the valid code
// point domain.
var ErrCodePointRange = errors.New("charcode: code point out of range")

// Ord returns the code point of the first character of s as an integer.
func Ord(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyString
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("charcode: invalid UTF-8 at start of %q", s)
	}
	return int(r), nil
}

// Chr returns the character with code point n. n must be in 0..0x10FFFF
// and not a surrogate: exactly the values that print as a single character.
func Chr(n int) (string, error) {
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return "", fmt.Errorf("%w: %d", ErrCodePointRange, n)
	}
	return string(rune(n)), nil
}

// Hex formats n in lowercase hexadecimal with a leading 0x prefix.
// Hex(0) is "0x0"; negative values render with a leading minus sign.
func Hex(n int64) string {
	return fmt.Sprintf("%#x", n)
}

// ByteString encodes s one byte per character: code points 0-255 map to
// the identical byte value, anything above is an error. This is the
// ISO 8859-1 repertoire, so the encoder enforces the range check.
func ByteString(s string) ([]byte, error) {
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("charcode: encoding %q one byte per character: %w", s, err)
	}
	return encoded, nil
}

// Adler32 returns the Adler-32 checksum of s encoded with ByteString.
// The checksum of the empty string is the initial value 1.
func Adler32(s string) (uint32, error) {
	encoded, err := ByteString(s)
	if err != nil {
		return 0, err
	}
	return adler32.Checksum(encoded), nil
}
