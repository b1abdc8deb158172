package rpmsection

import (
	"fmt"

	"github.com/gorpm/rpmpack/internal/binaryio"
	"github.com/gorpm/rpmpack/internal/rpmtag"
)

// Encode serializes store into the on-disk section format. tail8 pads the
// result with zero bytes to the next 8-byte boundary (the signature
// section's contract); pass false for the header section, which carries no
// trailing pad.
func Encode(store *rpmtag.TagStore, tail8 bool) ([]byte, error) {
	regionTag, hasRegion := store.ImmutableRegionTag()

	var data []byte
	var index []indexEntry
	tagsNum := 0

	var encErr error
	store.Iter(func(tag rpmtag.Tag, value rpmtag.Value) bool {
		tagsNum++
		if hasRegion && tag == regionTag {
			return true // handled separately, below
		}
		packed, count, err := packValue(value)
		if err != nil {
			encErr = fmt.Errorf("rpmsection: tag %d: %w", tag, err)
			return false
		}
		if align := value.Type.Alignment(); align > 1 {
			data = padTo(data, align)
		}
		index = append(index, indexEntry{tag: tag, typ: value.Type, offset: int32(len(data)), count: count})
		data = append(data, packed...)
		return true
	})
	if encErr != nil {
		return nil, encErr
	}

	if hasRegion {
		regionIndex := indexEntry{
			tag:    regionTag,
			typ:    rpmtag.TypeBinary,
			offset: int32(len(data)),
			count:  regionDataSize,
		}
		// The back-reference counts backward, in bytes, from the end of the
		// index array to the start of the region it bounds — here, the
		// whole section — so it is -(tagsNum entries)*16 bytes.
		regionData := indexEntry{
			tag:    regionTag,
			typ:    rpmtag.TypeBinary,
			offset: -int32(tagsNum) * indexEntrySize,
			count:  regionDataSize,
		}
		index = append([]indexEntry{regionIndex}, index...)
		data = append(data, encodeIndexEntry(regionData)...)
	}

	out := make([]byte, 0, preambleSize+len(index)*indexEntrySize+len(data))
	out = append(out, Magic[:]...)
	out = binaryio.AppendBE(out, int32(0)) // reserved
	out = binaryio.AppendBE(out, int32(len(index)))
	out = binaryio.AppendBE(out, int32(len(data)))
	for _, e := range index {
		out = append(out, encodeIndexEntry(e)...)
	}
	out = append(out, data...)

	if tail8 {
		if pad := binaryio.PadTo8(len(out)); pad > 0 {
			out = append(out, make([]byte, pad)...)
		}
	}
	return out, nil
}

func encodeIndexEntry(e indexEntry) []byte {
	var buf []byte
	buf = binaryio.AppendBE(buf, int32(e.tag))
	buf = binaryio.AppendBE(buf, int32(e.typ))
	buf = binaryio.AppendBE(buf, e.offset)
	buf = binaryio.AppendBE(buf, e.count)
	return buf
}

func padTo(data []byte, align int) []byte {
	if rem := len(data) % align; rem != 0 {
		data = append(data, make([]byte, align-rem)...)
	}
	return data
}

func packValue(v rpmtag.Value) ([]byte, int32, error) {
	switch v.Type {
	case rpmtag.TypeNull:
		return nil, 1, nil

	case rpmtag.TypeChar, rpmtag.TypeBinary:
		return v.Binary, int32(len(v.Binary)), nil

	case rpmtag.TypeString:
		return append([]byte(v.String), 0), 1, nil

	case rpmtag.TypeStringArray, rpmtag.TypeI18NString:
		var buf []byte
		for _, s := range v.Strings {
			buf = append(buf, []byte(s)...)
			buf = append(buf, 0)
		}
		return buf, int32(len(v.Strings)), nil

	case rpmtag.TypeInt8:
		buf := make([]byte, len(v.Int8s))
		for i, x := range v.Int8s {
			buf[i] = byte(x)
		}
		return buf, int32(len(v.Int8s)), nil

	case rpmtag.TypeInt16:
		var buf []byte
		for _, x := range v.Int16s {
			buf = binaryio.AppendBE(buf, x)
		}
		return buf, int32(len(v.Int16s)), nil

	case rpmtag.TypeInt32:
		var buf []byte
		for _, x := range v.Int32s {
			buf = binaryio.AppendBE(buf, x)
		}
		return buf, int32(len(v.Int32s)), nil

	case rpmtag.TypeInt64:
		var buf []byte
		for _, x := range v.Int64s {
			buf = binaryio.AppendBE(buf, x)
		}
		return buf, int32(len(v.Int64s)), nil

	default:
		return nil, 0, fmt.Errorf("unknown type %d", v.Type)
	}
}
