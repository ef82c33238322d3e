// Package zlibio compresses and decompresses whole byte buffers using zlib
// framing (RFC 1950): a two-byte header, the DEFLATE payload, and a
// four-byte Adler-32 trailer. All framing comes from compress/zlib; nothing
// here adds chunking or streaming.
package zlibio

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// Compress returns data compressed at the default zlib level.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, fmt.Errorf("zlibio: compressing: %w", err)
	}
	// Close writes the final block and the Adler-32 trailer.
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlibio: closing compressor: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a complete zlib-framed buffer. It fails if data does
// not start with a valid zlib header or the stream is truncated or corrupt.
func Decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlibio: reading zlib header: %w", err)
	}
	defer zr.Close()

	inflated, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("zlibio: decompressing: %w", err)
	}
	return inflated, nil
}
