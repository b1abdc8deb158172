package rpmpkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadEncodeIsFixedSize(t *testing.T) {
	l := NewLead("foo-1.0-1", "x86_64", "linux")
	assert.Len(t, l.Encode(), leadSize)
}

func TestLeadEncodeDecodeRoundTrip(t *testing.T) {
	l := NewLead("foo-1.0-1", "aarch64", "linux")
	got, err := DecodeLead(l.Encode())
	require.NoError(t, err)
	assert.Equal(t, l, got)
}

func TestLeadArchAndOSDefaults(t *testing.T) {
	l := NewLead("foo-1.0-1", "riscv64", "plan9")
	assert.EqualValues(t, 1, l.ArchNum)
	assert.EqualValues(t, 1, l.OSNum)
}

func TestDecodeLeadRejectsBadMagic(t *testing.T) {
	l := NewLead("foo-1.0-1", "noarch", "linux")
	buf := l.Encode()
	buf[0] = 0x00
	_, err := DecodeLead(buf)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodeLeadRejectsShortBuffer(t *testing.T) {
	_, err := DecodeLead(make([]byte, leadSize-1))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
