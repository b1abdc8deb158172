package rpmsection

import (
	"encoding/binary"
	"fmt"

	"github.com/gorpm/rpmpack/internal/rpmtag"
)

// Decode parses a section previously produced by Encode, returning the
// reconstructed TagStore and the number of bytes consumed from buf (not
// counting any 8-byte tail padding — callers that know they are decoding a
// signature section must strip that padding themselves based on the
// section's own length accounting, since the padding is not self-describing).
func Decode(buf []byte) (*rpmtag.TagStore, int, error) {
	if len(buf) < preambleSize {
		return nil, 0, fmt.Errorf("%w: section shorter than preamble", ErrInvalidFormat)
	}
	if [4]byte(buf[0:4]) != Magic {
		return nil, 0, fmt.Errorf("%w: bad section magic", ErrInvalidFormat)
	}
	count := int(binary.BigEndian.Uint32(buf[8:12]))
	dataLen := int(binary.BigEndian.Uint32(buf[12:16]))

	indexStart := preambleSize
	indexEnd := indexStart + count*indexEntrySize
	dataStart := indexEnd
	dataEnd := dataStart + dataLen
	if dataEnd > len(buf) {
		return nil, 0, fmt.Errorf("%w: section truncated", ErrInvalidFormat)
	}

	entries := make([]indexEntry, count)
	for i := 0; i < count; i++ {
		raw := buf[indexStart+i*indexEntrySize : indexStart+(i+1)*indexEntrySize]
		entries[i] = indexEntry{
			tag:    rpmtag.Tag(int32(binary.BigEndian.Uint32(raw[0:4]))),
			typ:    rpmtag.Type(int32(binary.BigEndian.Uint32(raw[4:8]))),
			offset: int32(binary.BigEndian.Uint32(raw[8:12])),
			count:  int32(binary.BigEndian.Uint32(raw[12:16])),
		}
	}
	data := buf[dataStart:dataEnd]

	store := rpmtag.NewTagStore()

	start := 0
	if count > 0 && isRegionEntry(entries[0], data, count) {
		if err := store.SetImmutableRegion(entries[0].tag); err != nil {
			return nil, 0, err
		}
		start = 1
	}

	for _, e := range entries[start:] {
		if e.offset < 0 || int(e.offset) > len(data) {
			return nil, 0, fmt.Errorf("%w: tag %d offset out of range", ErrInvalidFormat, e.tag)
		}
		value, err := unpackValue(e, data)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: tag %d: %s", ErrInvalidFormat, e.tag, err)
		}
		if err := store.Set(e.tag, value); err != nil {
			return nil, 0, err
		}
	}

	return store, dataEnd, nil
}

// isRegionEntry reports whether the first index entry is the
// immutable-region marker this codec writes: a Binary tag of count 16
// pointing at the final 16 bytes of the data store, which hold the
// back-reference record, and whose back-reference value is exactly
// -totalCount*16 — the byte distance from the end of the index array back
// to the start of the section.
func isRegionEntry(e indexEntry, data []byte, totalCount int) bool {
	if e.typ != rpmtag.TypeBinary || e.count != regionDataSize {
		return false
	}
	if int(e.offset) != len(data)-regionDataSize {
		return false
	}
	trailer := data[e.offset:]
	backref := int32(binary.BigEndian.Uint32(trailer[8:12]))
	return backref == -int32(totalCount)*indexEntrySize
}

func unpackValue(e indexEntry, data []byte) (rpmtag.Value, error) {
	off := int(e.offset)
	n := int(e.count)

	switch e.typ {
	case rpmtag.TypeNull:
		return rpmtag.NullValue(), nil

	case rpmtag.TypeChar:
		b, err := slice(data, off, n)
		if err != nil {
			return rpmtag.Value{}, err
		}
		return rpmtag.CharValue(b), nil

	case rpmtag.TypeBinary:
		b, err := slice(data, off, n)
		if err != nil {
			return rpmtag.Value{}, err
		}
		return rpmtag.BinaryValue(b), nil

	case rpmtag.TypeString:
		s, _, err := readCString(data, off)
		if err != nil {
			return rpmtag.Value{}, err
		}
		return rpmtag.StringValue(s), nil

	case rpmtag.TypeStringArray, rpmtag.TypeI18NString:
		strs := make([]string, 0, n)
		pos := off
		for i := 0; i < n; i++ {
			s, next, err := readCString(data, pos)
			if err != nil {
				return rpmtag.Value{}, err
			}
			strs = append(strs, s)
			pos = next
		}
		if e.typ == rpmtag.TypeI18NString {
			return rpmtag.I18NStringValue(strs), nil
		}
		return rpmtag.StringArrayValue(strs), nil

	case rpmtag.TypeInt8:
		b, err := slice(data, off, n)
		if err != nil {
			return rpmtag.Value{}, err
		}
		out := make([]int8, n)
		for i, x := range b {
			out[i] = int8(x)
		}
		return rpmtag.Int8Value(out), nil

	case rpmtag.TypeInt16:
		b, err := slice(data, off, n*2)
		if err != nil {
			return rpmtag.Value{}, err
		}
		out := make([]int16, n)
		for i := 0; i < n; i++ {
			out[i] = int16(binary.BigEndian.Uint16(b[i*2:]))
		}
		return rpmtag.Int16Value(out), nil

	case rpmtag.TypeInt32:
		b, err := slice(data, off, n*4)
		if err != nil {
			return rpmtag.Value{}, err
		}
		out := make([]int32, n)
		for i := 0; i < n; i++ {
			out[i] = int32(binary.BigEndian.Uint32(b[i*4:]))
		}
		return rpmtag.Int32Value(out), nil

	case rpmtag.TypeInt64:
		b, err := slice(data, off, n*8)
		if err != nil {
			return rpmtag.Value{}, err
		}
		out := make([]int64, n)
		for i := 0; i < n; i++ {
			out[i] = int64(binary.BigEndian.Uint64(b[i*8:]))
		}
		return rpmtag.Int64Value(out), nil

	default:
		return rpmtag.Value{}, fmt.Errorf("unknown type %d", e.typ)
	}
}

func slice(data []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(data) {
		return nil, fmt.Errorf("%w: out of range", ErrInvalidFormat)
	}
	out := make([]byte, n)
	copy(out, data[off:off+n])
	return out, nil
}

func readCString(data []byte, off int) (string, int, error) {
	if off < 0 || off > len(data) {
		return "", 0, fmt.Errorf("%w: string offset out of range", ErrInvalidFormat)
	}
	for i := off; i < len(data); i++ {
		if data[i] == 0 {
			return string(data[off:i]), i + 1, nil
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated string", ErrInvalidFormat)
}
