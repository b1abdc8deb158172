// Package compress wraps github.com/ulikunitz/xz to provide the streaming
// XZ/LZMA CompressorStream the RPM payload is written through. Both
// directions are sequential byte streams: the encoder must be closed to
// flush the final block, and closing it never closes the underlying sink.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// ErrCompressionFailed wraps any error reported by the underlying codec.
var ErrCompressionFailed = fmt.Errorf("compress: compression failed")

// Encoder is a streaming XZ encoder. Write pushes plaintext bytes in; Close
// flushes the final XZ block to the underlying writer without closing it.
type Encoder struct {
	w   *xz.Writer
	dst io.Writer
}

// NewEncoder returns an Encoder that writes a complete XZ stream to dst as
// bytes are pushed through Write and finalized by Close.
func NewEncoder(dst io.Writer) (*Encoder, error) {
	w, err := xz.NewWriter(dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompressionFailed, err)
	}
	return &Encoder{w: w, dst: dst}, nil
}

// Write compresses p into the underlying stream.
func (e *Encoder) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: %s", ErrCompressionFailed, err)
	}
	return n, nil
}

// Close flushes the final XZ block. The underlying writer passed to
// NewEncoder is left open.
func (e *Encoder) Close() error {
	if err := e.w.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrCompressionFailed, err)
	}
	return nil
}

// Decoder is a streaming XZ decoder.
type Decoder struct {
	r *xz.Reader
}

// NewDecoder returns a Decoder that reads decompressed bytes from an XZ
// stream read from src.
func NewDecoder(src io.Reader) (*Decoder, error) {
	r, err := xz.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompressionFailed, err)
	}
	return &Decoder{r: r}, nil
}

// Read decompresses bytes from the underlying XZ stream.
func (d *Decoder) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w: %s", ErrCompressionFailed, err)
	}
	return n, err
}

// CompressAll is a convenience helper that XZ-compresses the entirety of src
// into a freshly allocated byte slice. Used by the assembler, which must
// have the whole compressed payload addressable before it can compute the
// header/signature digests and the lead.
func CompressAll(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(src); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
