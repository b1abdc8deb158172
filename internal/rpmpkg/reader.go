package rpmpkg

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gorpm/rpmpack/internal/compress"
	"github.com/gorpm/rpmpack/internal/cpio"
	"github.com/gorpm/rpmpack/internal/digest"
	"github.com/gorpm/rpmpack/internal/rpmsection"
	"github.com/gorpm/rpmpack/internal/rpmtag"
)

// File is one decoded CPIO payload member, exposed for test assertions
// against the structural contents of an assembled package.
type File struct {
	Name    string
	Mode    uint32
	Size    uint32
	Payload []byte
}

// PackageView is the parsed, verified contents of an assembled RPM file:
// the inverse of Assemble, used to confirm the pipeline round-trips.
type PackageView struct {
	Lead      Lead
	Header    *rpmtag.TagStore
	Signature *rpmtag.TagStore
	Files     []File
}

// Read parses an assembled RPM file from in: lead, signature section,
// header section, decompressed CPIO payload, verifying the digests the
// signature section records along the way.
func Read(in io.Reader) (*PackageView, error) {
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}

	if len(raw) < leadSize {
		return nil, fmt.Errorf("%w: truncated lead", ErrInvalidFormat)
	}
	lead, err := DecodeLead(raw[:leadSize])
	if err != nil {
		return nil, err
	}
	rest := raw[leadSize:]

	sig, sigLen, err := rpmsection.Decode(rest)
	if err != nil {
		return nil, err
	}
	sigLen = padTo8(sigLen)
	if sigLen > len(rest) {
		return nil, fmt.Errorf("%w: truncated signature section", ErrInvalidFormat)
	}
	rest = rest[sigLen:]

	header, headerLen, err := rpmsection.Decode(rest)
	if err != nil {
		return nil, err
	}
	headerBlob := rest[:headerLen]
	compressedPayload := rest[headerLen:]

	if v, ok := sig.Get(rpmtag.SigSize); ok && len(v.Int32s) == 1 {
		want := int(v.Int32s[0])
		got := len(headerBlob) + len(compressedPayload)
		if want != got {
			return nil, fmt.Errorf("%w: signature size %d, got %d", ErrDigestMismatch, want, got)
		}
	}
	if v, ok := sig.Get(rpmtag.SigSHA256); ok && v.String != "" {
		if got := digest.SHA256Hex(headerBlob); got != v.String {
			return nil, fmt.Errorf("%w: header SHA256 mismatch", ErrDigestMismatch)
		}
	}
	if v, ok := sig.Get(rpmtag.SigMD5); ok && len(v.Binary) > 0 {
		body := append(append([]byte{}, headerBlob...), compressedPayload...)
		if got := digest.MD5(body); !bytes.Equal(got, v.Binary) {
			return nil, fmt.Errorf("%w: combined MD5 mismatch", ErrDigestMismatch)
		}
	}

	dec, err := compress.NewDecoder(bytes.NewReader(compressedPayload))
	if err != nil {
		return nil, err
	}
	cpioBytes, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	files, err := readCPIOFiles(cpioBytes)
	if err != nil {
		return nil, err
	}

	return &PackageView{Lead: lead, Header: header, Signature: sig, Files: files}, nil
}

func readCPIOFiles(cpioBytes []byte) ([]File, error) {
	r := cpio.NewReader(bytes.NewReader(cpioBytes))
	var files []File
	for {
		entry, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
		}
		payload, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrIO, err)
		}
		files = append(files, File{
			Name:    entry.Name,
			Mode:    entry.Mode,
			Size:    entry.Size,
			Payload: payload,
		})
	}
	return files, nil
}

// padTo8 rounds n up to the next multiple of 8, mirroring the tail pad
// Encode adds to signature sections.
func padTo8(n int) int {
	if rem := n % 8; rem != 0 {
		return n + (8 - rem)
	}
	return n
}
