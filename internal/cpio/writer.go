package cpio

import (
	"io"

	"github.com/gorpm/rpmpack/internal/binaryio"
)

// Writer emits a newc CPIO stream, one entry at a time: call WriteHeader to
// start an entry and Write (zero or more times) to supply its payload, or
// call Write once with the entire payload. WriteTrailer finalizes the
// archive; callers must not write further entries afterwards.
type Writer struct {
	w          io.Writer
	curSize    int64 // declared payload size for the current entry
	curWritten int64 // bytes of payload written so far for the current entry
	closed     bool
	err        error
}

// NewWriter returns a Writer that emits to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the 110-byte ASCII-hex header and the NUL-terminated,
// padded name for e, and declares that exactly e.Size bytes of payload will
// follow via subsequent Write calls. The Signature field is always
// "070701", the NameSize field is always len(e.Name)+1: caller-provided
// values for these are ignored.
func (w *Writer) WriteHeader(e *Entry) error {
	if w.err != nil {
		return w.err
	}
	if err := w.finishCurrentEntry(); err != nil {
		return err
	}

	nameBytes := append([]byte(e.Name), 0x00)

	hdr := wireHeader{
		Magic:     [6]byte{'0', '7', '0', '7', '0', '1'},
		Inode:     hex8(e.Inode),
		Mode:      hex8(e.Mode),
		UID:       hex8(e.UID),
		GID:       hex8(e.GID),
		NLink:     hex8(e.NLink),
		Mtime:     hex8(e.Mtime),
		FileSize:  hex8(e.Size),
		DevMajor:  hex8(e.DevMajor),
		DevMinor:  hex8(e.DevMinor),
		RdevMajor: hex8(e.RdevMajor),
		RdevMinor: hex8(e.RdevMinor),
		NameSize:  hex8(uint32(len(nameBytes))),
		Check:     hex8(0),
	}

	if err := binaryio.WriteBE(w.w, &hdr); err != nil {
		w.err = err
		return err
	}
	if _, err := w.w.Write(nameBytes); err != nil {
		w.err = err
		return err
	}
	if err := writeZeros(w.w, binaryio.PadTo4(headerSize+len(nameBytes))); err != nil {
		w.err = err
		return err
	}

	w.curSize = int64(e.Size)
	w.curWritten = 0
	return nil
}

// Write streams payload bytes for the entry started by the last WriteHeader
// call. It is an error to write more than the declared Size.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.curWritten+int64(len(p)) > w.curSize {
		return 0, io.ErrShortWrite
	}
	n, err := w.w.Write(p)
	w.curWritten += int64(n)
	if err != nil {
		w.err = err
	}
	return n, err
}

// finishCurrentEntry pads out the payload of the entry in progress (if any)
// to a 4-byte boundary.
func (w *Writer) finishCurrentEntry() error {
	if w.curSize == 0 && w.curWritten == 0 {
		return nil
	}
	return writeZeros(w.w, binaryio.PadTo4(int(w.curSize)))
}

// WriteTrailer emits the zero-payload TRAILER!!! entry that terminates the
// archive. No further WriteHeader/Write calls are permitted afterwards.
func (w *Writer) WriteTrailer() error {
	if w.err != nil {
		return w.err
	}
	if err := w.WriteHeader(&Entry{Name: TrailerName, NLink: 1}); err != nil {
		return err
	}
	if err := w.finishCurrentEntry(); err != nil {
		w.err = err
		return err
	}
	w.closed = true
	return nil
}

func writeZeros(w io.Writer, n int) error {
	if n == 0 {
		return nil
	}
	var zeros [4]byte
	_, err := w.Write(zeros[:n])
	return err
}
