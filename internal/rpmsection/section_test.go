package rpmsection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorpm/rpmpack/internal/rpmtag"
)

func buildStore(t *testing.T, withRegion bool) *rpmtag.TagStore {
	t.Helper()
	s := rpmtag.NewTagStore()
	if withRegion {
		require.NoError(t, s.SetImmutableRegion(rpmtag.HeaderImmutable))
	}
	require.NoError(t, s.Set(rpmtag.Name, rpmtag.StringValue("myapp")))
	require.NoError(t, s.Set(rpmtag.Version, rpmtag.StringValue("1.0.0")))
	require.NoError(t, s.Set(rpmtag.DirIndexes, rpmtag.Int32Value([]int32{1, 2, 3})))
	require.NoError(t, s.Set(rpmtag.BaseNames, rpmtag.StringArrayValue([]string{"a.txt", "b.txt"})))
	require.NoError(t, s.Set(rpmtag.FileSizes, rpmtag.Int32Value([]int32{10, 20})))
	return s
}

func assertStoreEqual(t *testing.T, want, got *rpmtag.TagStore) {
	t.Helper()
	var wantTags, gotTags []rpmtag.Tag
	want.Iter(func(tag rpmtag.Tag, _ rpmtag.Value) bool {
		wantTags = append(wantTags, tag)
		return true
	})
	got.Iter(func(tag rpmtag.Tag, _ rpmtag.Value) bool {
		gotTags = append(gotTags, tag)
		return true
	})
	require.Equal(t, wantTags, gotTags)

	for _, tag := range wantTags {
		wv, _ := want.Get(tag)
		gv, _ := got.Get(tag)
		assert.Equal(t, wv, gv, "tag %d", tag)
	}
}

func TestEncodeDecodeRoundTripWithRegion(t *testing.T) {
	s := buildStore(t, true)
	encoded, err := Encode(s, false)
	require.NoError(t, err)

	decoded, n, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assertStoreEqual(t, s, decoded)
}

func TestEncodeDecodeRoundTripWithoutRegion(t *testing.T) {
	s := buildStore(t, false)
	encoded, err := Encode(s, false)
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	assertStoreEqual(t, s, decoded)
}

func TestEncodeHeaderSectionHasNoTailPad(t *testing.T) {
	s := buildStore(t, true)
	encoded, err := Encode(s, false)
	require.NoError(t, err)

	decoded, n, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n, "header section must not carry trailing padding")
	_ = decoded
}

func TestEncodeSignatureSectionPadsToEightBytes(t *testing.T) {
	s := rpmtag.NewTagStore()
	require.NoError(t, s.SetImmutableRegion(rpmtag.SigHeaderImmutable))
	require.NoError(t, s.Set(rpmtag.SigSize, rpmtag.Int32Value([]int32{123})))

	encoded, err := Encode(s, true)
	require.NoError(t, err)
	assert.Equal(t, 0, len(encoded)%8)

	decoded, n, err := Decode(encoded)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, len(encoded))
	assertStoreEqual(t, s, decoded)
}

func TestRegionMarkerIsFirstIndexEntry(t *testing.T) {
	s := buildStore(t, true)
	encoded, err := Encode(s, false)
	require.NoError(t, err)

	// First index entry immediately follows the 16-byte preamble.
	firstTag := int32(encoded[16])<<24 | int32(encoded[17])<<16 | int32(encoded[18])<<8 | int32(encoded[19])
	assert.EqualValues(t, rpmtag.HeaderImmutable, firstTag)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	s := buildStore(t, true)
	encoded, err := Encode(s, false)
	require.NoError(t, err)
	encoded[0] = 0x00

	_, _, err = Decode(encoded)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestEncodeAlignsInt32DataOn4ByteBoundary(t *testing.T) {
	s := rpmtag.NewTagStore()
	require.NoError(t, s.Set(rpmtag.Name, rpmtag.StringValue("x"))) // 2 bytes, unaligned
	require.NoError(t, s.Set(rpmtag.FileSizes, rpmtag.Int32Value([]int32{7})))

	encoded, err := Encode(s, false)
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	v, ok := decoded.Get(rpmtag.FileSizes)
	require.True(t, ok)
	assert.Equal(t, []int32{7}, v.Int32s)
}
