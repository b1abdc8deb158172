package binaryio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadTo4(t *testing.T) {
	assert := assert.New(t)

	for n := 0; n < 32; n++ {
		pad := PadTo4(n)
		assert.GreaterOrEqual(pad, 0)
		assert.Less(pad, 4)
		assert.Equal(0, (n+pad)%4)
	}
}

func TestPadTo8(t *testing.T) {
	assert := assert.New(t)

	for n := 0; n < 64; n++ {
		pad := PadTo8(n)
		assert.GreaterOrEqual(pad, 0)
		assert.Less(pad, 8)
		assert.Equal(0, (n+pad)%8)
	}
}

func TestFormatParseHex8RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []uint32{0, 1, 0xdeadbeef, 0xffffffff, 12345} {
		field := FormatHex8(v)
		parsed, err := ParseHex8(field)
		assert.NoError(err)
		assert.Equal(v, parsed)
	}
}

func TestFormatHex8IsUppercase(t *testing.T) {
	field := FormatHex8(0xdeadbeef)
	assert.Equal(t, "DEADBEEF", string(field[:]))
}

func TestParseHex8Invalid(t *testing.T) {
	_, err := ParseHex8([8]byte{'0', '7', '0', '7', '0', '1', 'z', 'z'})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestCursorReadFullAndDiscard(t *testing.T) {
	assert := assert.New(t)

	data := []byte("0123456789abcdef")
	cur := NewCursor(bytes.NewReader(data))

	buf := make([]byte, 4)
	assert.NoError(cur.ReadFull(buf))
	assert.Equal("0123", string(buf))
	assert.EqualValues(4, cur.Pos())

	assert.NoError(cur.Discard(4))
	assert.EqualValues(8, cur.Pos())

	assert.NoError(cur.ReadFull(buf))
	assert.Equal("89ab", string(buf))

	assert.ErrorIs(cur.ReadFull(make([]byte, 100)), ErrUnexpectedEOF)
}
