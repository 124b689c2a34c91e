// Package zlibcodec provides a zlib compression codec.
//
// Loose version-control objects are deflate streams with zlib framing, so
// this is the codec the disk store uses by default.
package zlibcodec

import (
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/loosegit/objcat/internal/codec"
)

// Compile-time checks that Codec implements codec.Codec and codec.Sniffer.
var (
	_ codec.Codec   = (*Codec)(nil)
	_ codec.Sniffer = (*Codec)(nil)
)

// Codec implements zlib compression.
type Codec struct{}

// New returns a new zlib codec.
func New() *Codec {
	return &Codec{}
}

// Reader wraps r to decompress zlib data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

// Writer wraps w to compress data with zlib.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriter(w), nil
}

// Extension returns empty string: loose objects carry no suffix.
func (c *Codec) Extension() string {
	return ""
}

// Sniff reports whether blob starts with a zlib stream header.
func (c *Codec) Sniff(blob []byte) bool {
	return HasHeader(blob)
}

// HasHeader reports whether blob starts with a zlib stream header.
func HasHeader(blob []byte) bool {
	return len(blob) >= 2 && blob[0] == 0x78 &&
		(blob[1] == 0x01 || blob[1] == 0x5e || blob[1] == 0x9c || blob[1] == 0xda)
}
