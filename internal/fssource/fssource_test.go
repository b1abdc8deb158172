package fssource

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryIsDirAndIsSymlink(t *testing.T) {
	dir := Entry{Mode: 0040755}
	assert.True(t, dir.IsDir())
	assert.False(t, dir.IsSymlink())

	link := Entry{Mode: 0120777}
	assert.True(t, link.IsSymlink())
	assert.False(t, link.IsDir())

	regular := Entry{Mode: 0100644}
	assert.False(t, regular.IsDir())
	assert.False(t, regular.IsSymlink())
}

func TestStaticEntriesReturnsItself(t *testing.T) {
	want := Static{
		{Path: "a", Mode: 0100644, MTime: time.Unix(0, 0)},
		{Path: "b", Mode: 0040755, MTime: time.Unix(0, 0)},
	}
	got, err := want.Entries()
	require.NoError(t, err)
	assert.Equal(t, []Entry(want), got)
}

func TestStaticEntryOpenProducesContent(t *testing.T) {
	entry := Entry{
		Path: "readme.txt",
		Mode: 0100644,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("hello")), nil
		},
	}
	r, err := entry.Open()
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
