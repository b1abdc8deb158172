// Package digest computes the MD5/SHA1/SHA256 digests the assembler stores
// in the signature section and per-file header tags, and produces an
// optional detached OpenPGP signature over the same byte ranges.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"io"
)

// MD5 returns the raw MD5 digest of data.
func MD5(data []byte) []byte {
	sum := md5.Sum(data)
	return sum[:]
}

// SHA1Hex returns the lowercase hex SHA1 digest of data.
func SHA1Hex(data []byte) string {
	sum := sha1.Sum(data)
	return fmt.Sprintf("%x", sum)
}

// SHA256Hex returns the lowercase hex SHA256 digest of data.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum)
}

// MD5Hex returns the lowercase hex MD5 digest of data.
func MD5Hex(data []byte) string {
	return fmt.Sprintf("%x", MD5(data))
}

// ReaderMD5 streams r through an MD5 hasher, for use while a file's payload
// is being copied into the CPIO archive rather than buffered separately.
func ReaderMD5(r io.Reader) ([]byte, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// ReaderMD5Hex is ReaderMD5 with a lowercase hex result, the form stored in
// a per-file FILEDIGESTS entry.
func ReaderMD5Hex(r io.Reader) (string, error) {
	sum, err := ReaderMD5(r)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", sum), nil
}
