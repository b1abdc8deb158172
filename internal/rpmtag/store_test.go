package rpmtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRemove(t *testing.T) {
	s := NewTagStore()
	require.NoError(t, s.Set(Name, StringValue("myapp")))
	require.NoError(t, s.Set(Version, StringValue("1.0.0")))

	v, ok := s.Get(Name)
	require.True(t, ok)
	assert.Equal(t, "myapp", v.String)

	s.Remove(Name)
	_, ok = s.Get(Name)
	assert.False(t, ok)

	v, ok = s.Get(Version)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", v.String)
	assert.Equal(t, 1, s.Len())
}

func TestSetPreservesInsertionOrder(t *testing.T) {
	s := NewTagStore()
	require.NoError(t, s.Set(Release, StringValue("1")))
	require.NoError(t, s.Set(Name, StringValue("myapp")))
	require.NoError(t, s.Set(Version, StringValue("1.0.0")))

	var order []Tag
	s.Iter(func(tag Tag, _ Value) bool {
		order = append(order, tag)
		return true
	})
	assert.Equal(t, []Tag{Release, Name, Version}, order)
}

func TestSetOverwriteKeepsPosition(t *testing.T) {
	s := NewTagStore()
	require.NoError(t, s.Set(Name, StringValue("old")))
	require.NoError(t, s.Set(Version, StringValue("1.0.0")))
	require.NoError(t, s.Set(Name, StringValue("new")))

	var order []Tag
	s.Iter(func(tag Tag, _ Value) bool {
		order = append(order, tag)
		return true
	})
	assert.Equal(t, []Tag{Name, Version}, order)

	v, _ := s.Get(Name)
	assert.Equal(t, "new", v.String)
}

func TestSetRejectsInvalidType(t *testing.T) {
	s := NewTagStore()
	err := s.Set(Name, Value{Type: Type(99)})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestImmutableRegionMarker(t *testing.T) {
	s := NewTagStore()
	require.NoError(t, s.SetImmutableRegion(HeaderImmutable))
	require.NoError(t, s.Set(Name, StringValue("myapp")))

	tag, ok := s.ImmutableRegionTag()
	require.True(t, ok)
	assert.Equal(t, HeaderImmutable, tag)
}

func TestSigOrderIsAscending(t *testing.T) {
	in := []Tag{SigSize, SigMD5, SigPayloadSize, SigSHA256}
	out := SigOrder(in)
	assert.Equal(t, []Tag{SigSHA256, SigSize, SigMD5, SigPayloadSize}, out)
	// original untouched
	assert.Equal(t, []Tag{SigSize, SigMD5, SigPayloadSize, SigSHA256}, in)
}

func TestValueCount(t *testing.T) {
	assert.Equal(t, 1, NullValue().Count())
	assert.Equal(t, 3, BinaryValue([]byte{1, 2, 3}).Count())
	assert.Equal(t, 1, StringValue("x").Count())
	assert.Equal(t, 2, StringArrayValue([]string{"a", "b"}).Count())
	assert.Equal(t, 4, Int32Value([]int32{1, 2, 3, 4}).Count())
}
