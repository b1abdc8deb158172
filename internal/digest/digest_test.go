package digest

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMD5MatchesStdlib(t *testing.T) {
	data := []byte("header blob followed by compressed payload")
	want := md5.Sum(data)
	assert.Equal(t, want[:], MD5(data))
	assert.Equal(t, fmt.Sprintf("%x", want), MD5Hex(data))
}

func TestSHA1HexMatchesStdlib(t *testing.T) {
	data := []byte("some header bytes")
	want := sha1.Sum(data)
	assert.Equal(t, fmt.Sprintf("%x", want), SHA1Hex(data))
}

func TestSHA256HexMatchesStdlib(t *testing.T) {
	data := []byte("some header bytes")
	want := sha256.Sum256(data)
	assert.Equal(t, fmt.Sprintf("%x", want), SHA256Hex(data))
}

func TestReaderMD5MatchesMD5(t *testing.T) {
	data := []byte("file payload contents")
	sum, err := ReaderMD5(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, MD5(data), sum)

	hexSum, err := ReaderMD5Hex(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, MD5Hex(data), hexSum)
}

func TestSignPGPFailsWithEmptyKeyring(t *testing.T) {
	_, err := SignPGP([]byte("data"), nil)
	assert.ErrorIs(t, err, ErrNoSigningKey)
}
