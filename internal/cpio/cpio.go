// Package cpio implements a reader and writer for the "newc" (070701) CPIO
// format used as the RPM payload container. The API mirrors archive/tar:
// WriteHeader/Write to produce entries, Next/Read to consume them. Hand-rolled
// on purpose — this is the component the spec calls out as the in-scope hard
// core, not a wrapper around a third-party CPIO library.
package cpio

import (
	"fmt"

	"github.com/gorpm/rpmpack/internal/binaryio"
)

// Magic is the newc format signature.
const Magic = "070701"

// TrailerName is the sentinel entry name that terminates a newc archive.
const TrailerName = "TRAILER!!!"

const headerSize = 110

// Entry describes one CPIO archive member. On Read, Size is filled in from
// the on-disk header. On Write, Size is written into the header as the
// payload length and must equal the number of bytes then passed to
// Writer.Write; the writer does not compute it from the bytes written, and
// rejects a Write that would exceed it.
type Entry struct {
	Name      string
	Mode      uint32
	UID       uint32
	GID       uint32
	NLink     uint32
	Mtime     uint32
	Size      uint32
	DevMajor  uint32
	DevMinor  uint32
	RdevMajor uint32
	RdevMinor uint32
	Inode     uint32
}

type wireHeader struct {
	Magic     [6]byte
	Inode     [8]byte
	Mode      [8]byte
	UID       [8]byte
	GID       [8]byte
	NLink     [8]byte
	Mtime     [8]byte
	FileSize  [8]byte
	DevMajor  [8]byte
	DevMinor  [8]byte
	RdevMajor [8]byte
	RdevMinor [8]byte
	NameSize  [8]byte
	Check     [8]byte
}

func hex8(v uint32) [8]byte { return binaryio.FormatHex8(v) }

// ErrInvalidFormat is returned by Reader when the stream does not parse as a
// newc CPIO archive.
var ErrInvalidFormat = fmt.Errorf("cpio: invalid format")
