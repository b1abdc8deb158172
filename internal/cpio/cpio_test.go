package cpio

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, w *Writer, name string, payload []byte) {
	t.Helper()
	require.NoError(t, w.WriteHeader(&Entry{
		Name:  name,
		Mode:  0100644,
		NLink: 1,
		Size:  uint32(len(payload)),
	}))
	if len(payload) > 0 {
		n, err := w.Write(payload)
		require.NoError(t, err)
		require.Equal(t, len(payload), n)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"empty", nil},
		{"short", []byte("hello\n")},
		{"exactly-four", []byte("abcd")},
		{"odd-length", []byte("abcde")},
		{"long", bytes.Repeat([]byte("x"), 16*1024)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			writeEntry(t, w, tc.name, tc.payload)
			require.NoError(t, w.WriteTrailer())

			assert.Equal(t, 0, buf.Len()%4, "stream must stay 4-byte aligned")

			r := NewReader(bytes.NewReader(buf.Bytes()))
			entry, err := r.Next()
			require.NoError(t, err)
			assert.Equal(t, tc.name, entry.Name)
			assert.EqualValues(t, len(tc.payload), entry.Size)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			if len(tc.payload) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.payload, got)
			}

			_, err = r.Next()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestWriteMultipleEntriesThenTrailer(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	writeEntry(t, w, "./a/x", []byte("1"))
	writeEntry(t, w, "./a/y", []byte("22"))
	writeEntry(t, w, "./b/z", []byte("333"))
	require.NoError(t, w.WriteTrailer())

	r := NewReader(bytes.NewReader(buf.Bytes()))

	names := []string{}
	for {
		entry, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, entry.Name)
		_, _ = io.ReadAll(r)
	}
	assert.Equal(t, []string{"./a/x", "./a/y", "./b/z"}, names)
}

func TestReadSkipsUnreadPayload(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	writeEntry(t, w, "first", []byte("payload-one"))
	writeEntry(t, w, "second", []byte("payload-two"))
	require.NoError(t, w.WriteTrailer())

	r := NewReader(bytes.NewReader(buf.Bytes()))

	_, err := r.Next() // "first" — payload intentionally never read
	require.NoError(t, err)

	entry, err := r.Next() // must correctly skip over "first"'s payload+pad
	require.NoError(t, err)
	assert.Equal(t, "second", entry.Name)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "payload-two", string(got))
}

func TestRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	writeEntry(t, w, "x", nil)
	require.NoError(t, w.WriteTrailer())

	corrupt := buf.Bytes()
	corrupt[0] = 'Z'

	r := NewReader(bytes.NewReader(corrupt))
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestEmptyArchiveIsJustTrailer(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteTrailer())

	r := NewReader(bytes.NewReader(buf.Bytes()))
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
