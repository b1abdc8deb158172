package rpmpkg

import (
	"fmt"

	"github.com/gorpm/rpmpack/internal/binaryio"
)

const leadSize = 96

var leadMagic = [4]byte{0xed, 0xab, 0xee, 0xdb}

// archNums maps the header ARCH tag's string value to the lead's legacy
// archnum field. The lead's arch encoding predates multiarch and most
// modern architectures share table slot 1; unrecognized arches default to
// 1 rather than failing the build.
var archNums = map[string]int16{
	"noarch": 1,
	"i386":   1,
	"i686":   1,
	"x86_64": 1,
	"aarch64": 14,
	"armv7hl": 12,
	"ppc64le": 17,
	"s390x":   19,
}

// osNums maps the header OS tag's string value to the lead's legacy osnum
// field.
var osNums = map[string]int16{
	"linux": 1,
}

// Lead is the 96-byte structure that opens every RPM file. It predates the
// tagged header sections and exists today only for backward compatibility.
type Lead struct {
	Major, Minor   uint8
	Type           int16
	ArchNum        int16
	Name           string // truncated/padded to 66 bytes on encode
	OSNum          int16
	SignatureType  int16
}

// NewLead builds a Lead for the given NVR name string and header ARCH/OS
// tag values.
func NewLead(nvr, arch, os string) Lead {
	return Lead{
		Major:         3,
		Minor:         0,
		Type:          0,
		ArchNum:       archNumFor(arch),
		Name:          nvr,
		OSNum:         osNumFor(os),
		SignatureType: 5,
	}
}

func archNumFor(arch string) int16 {
	if n, ok := archNums[arch]; ok {
		return n
	}
	return 1
}

func osNumFor(os string) int16 {
	if n, ok := osNums[os]; ok {
		return n
	}
	return 1
}

// Encode renders the lead as its fixed 96-byte wire form. Name longer than
// 66 bytes is silently truncated, matching reference rpm behavior.
func (l Lead) Encode() []byte {
	var name [66]byte
	copy(name[:], l.Name)

	buf := make([]byte, 0, leadSize)
	buf = append(buf, leadMagic[:]...)
	buf = append(buf, l.Major, l.Minor)
	buf = binaryio.AppendBE(buf, l.Type)
	buf = binaryio.AppendBE(buf, l.ArchNum)
	buf = append(buf, name[:]...)
	buf = binaryio.AppendBE(buf, l.OSNum)
	buf = binaryio.AppendBE(buf, l.SignatureType)
	buf = append(buf, make([]byte, 16)...) // reserved

	if len(buf) != leadSize {
		panic(fmt.Sprintf("rpmpkg: encoded lead is %d bytes, want %d", len(buf), leadSize))
	}
	return buf
}

// DecodeLead parses a 96-byte lead. It does not validate ArchNum/OSNum
// against archNums/osNums since those tables are lossy in the forward
// direction; Name is returned with its trailing NUL padding stripped.
func DecodeLead(buf []byte) (Lead, error) {
	if len(buf) < leadSize {
		return Lead{}, fmt.Errorf("%w: lead shorter than %d bytes", ErrInvalidFormat, leadSize)
	}
	if [4]byte(buf[0:4]) != leadMagic {
		return Lead{}, fmt.Errorf("%w: bad lead magic", ErrInvalidFormat)
	}

	l := Lead{
		Major: buf[4],
		Minor: buf[5],
	}
	l.Type = int16(uint16(buf[6])<<8 | uint16(buf[7]))
	l.ArchNum = int16(uint16(buf[8])<<8 | uint16(buf[9]))

	name := buf[10:76]
	end := len(name)
	for i, b := range name {
		if b == 0 {
			end = i
			break
		}
	}
	l.Name = string(name[:end])

	l.OSNum = int16(uint16(buf[76])<<8 | uint16(buf[77]))
	l.SignatureType = int16(uint16(buf[78])<<8 | uint16(buf[79]))

	return l, nil
}
