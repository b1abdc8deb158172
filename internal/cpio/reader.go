package cpio

import (
	"fmt"
	"io"

	"github.com/gorpm/rpmpack/internal/binaryio"
)

// Reader parses a newc CPIO stream entry-by-entry. Call Next to advance to
// the next entry, then Read to consume its payload; the payload view
// returned by one Next call is invalidated as soon as Next is called again.
type Reader struct {
	r         io.Reader
	remaining int64 // unread payload bytes of the current entry
	pad       int   // trailing padding still owed for the current entry
	started   bool
}

// NewReader returns a Reader over r. If r also implements io.Seeker, payload
// bytes that the caller never reads are skipped with Seek instead of being
// read and discarded.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next advances to the next entry and returns its header. It returns io.EOF
// once the TRAILER!!! entry is reached; the trailer itself is not returned
// as a visible entry.
func (r *Reader) Next() (*Entry, error) {
	if err := r.skipRest(); err != nil {
		return nil, err
	}

	var hdr wireHeader
	if err := binaryio.ReadBE(r.r, &hdr); err != nil {
		return nil, err
	}
	if string(hdr.Magic[:]) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, hdr.Magic)
	}

	nameSize, err := binaryio.ParseHex8(hdr.NameSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}
	if nameSize == 0 {
		return nil, fmt.Errorf("%w: zero-length name", ErrInvalidFormat)
	}

	nameBuf := make([]byte, nameSize)
	if _, err := io.ReadFull(r.r, nameBuf); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, err)
	}
	if nameBuf[nameSize-1] != 0 {
		return nil, fmt.Errorf("%w: name not NUL-terminated", ErrInvalidFormat)
	}
	name := string(nameBuf[:nameSize-1])

	if err := discard(r.r, int64(binaryio.PadTo4(headerSize+int(nameSize)))); err != nil {
		return nil, err
	}

	size, err := decodeAll(hdr)
	if err != nil {
		return nil, err
	}
	size.Name = name

	if name == TrailerName {
		return nil, io.EOF
	}

	r.remaining = int64(size.Size)
	r.pad = binaryio.PadTo4(int(size.Size))
	r.started = true

	return &size, nil
}

type decoded = Entry

func decodeAll(hdr wireHeader) (decoded, error) {
	var e Entry
	parse := func(raw [8]byte, out *uint32) error {
		v, err := binaryio.ParseHex8(raw)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFormat, err)
		}
		*out = v
		return nil
	}
	if err := parse(hdr.Inode, &e.Inode); err != nil {
		return e, err
	}
	if err := parse(hdr.Mode, &e.Mode); err != nil {
		return e, err
	}
	if err := parse(hdr.UID, &e.UID); err != nil {
		return e, err
	}
	if err := parse(hdr.GID, &e.GID); err != nil {
		return e, err
	}
	if err := parse(hdr.NLink, &e.NLink); err != nil {
		return e, err
	}
	if err := parse(hdr.Mtime, &e.Mtime); err != nil {
		return e, err
	}
	if err := parse(hdr.FileSize, &e.Size); err != nil {
		return e, err
	}
	if err := parse(hdr.DevMajor, &e.DevMajor); err != nil {
		return e, err
	}
	if err := parse(hdr.DevMinor, &e.DevMinor); err != nil {
		return e, err
	}
	if err := parse(hdr.RdevMajor, &e.RdevMajor); err != nil {
		return e, err
	}
	if err := parse(hdr.RdevMinor, &e.RdevMinor); err != nil {
		return e, err
	}
	return e, nil
}

// Read reads from the payload of the entry returned by the most recent
// Next call. It returns io.EOF once that entry's payload is exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	if !r.started || r.remaining == 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > r.remaining {
		p = p[:r.remaining]
	}
	n, err := r.r.Read(p)
	r.remaining -= int64(n)
	return n, err
}

// skipRest discards whatever is left of the current entry (unread payload
// plus its padding) before starting the next one.
func (r *Reader) skipRest() error {
	if !r.started {
		return nil
	}
	if err := discard(r.r, r.remaining); err != nil {
		return err
	}
	r.remaining = 0
	if err := discard(r.r, int64(r.pad)); err != nil {
		return err
	}
	r.pad = 0
	return nil
}

func discard(r io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}
	if seeker, ok := r.(io.Seeker); ok {
		_, err := seeker.Seek(n, io.SeekCurrent)
		return err
	}
	_, err := io.CopyN(io.Discard, r, n)
	return err
}
