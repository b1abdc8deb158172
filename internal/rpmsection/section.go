// Package rpmsection implements SectionCodec: the encoder/decoder for the
// RPM "header structure" binary format shared by the header section and the
// signature section of an RPM package — a 16-byte preamble, an array of
// 16-byte index entries, and a data store, with an optional immutable-region
// marker whose back-reference trailer is written last but indexed first.
package rpmsection

import (
	"fmt"

	"github.com/gorpm/rpmpack/internal/rpmtag"
)

// Magic is the 4-byte section preamble magic: 3-byte header magic plus the
// version byte.
var Magic = [4]byte{0x8e, 0xad, 0xe8, 0x01}

const (
	preambleSize  = 16
	indexEntrySize = 16
	regionDataSize = 16
)

// ErrInvalidFormat reports a structural violation while decoding a section.
var ErrInvalidFormat = fmt.Errorf("rpmsection: invalid format")

// indexEntry mirrors the on-disk 16-byte index record.
type indexEntry struct {
	tag    rpmtag.Tag
	typ    rpmtag.Type
	offset int32
	count  int32
}
