package rpmpkg

import "fmt"

var (
	// ErrIO wraps a failure writing to or reading from the package stream.
	ErrIO = fmt.Errorf("rpmpkg: io failure")
	// ErrInvalidFormat reports a structural violation in an RPM being read.
	ErrInvalidFormat = fmt.Errorf("rpmpkg: invalid format")
	// ErrDigestMismatch is surfaced only by the reader, when a computed
	// digest disagrees with the one recorded in the signature section.
	ErrDigestMismatch = fmt.Errorf("rpmpkg: digest mismatch")
	// ErrInvalidField reports a value that exceeds what a fixed-width
	// on-disk field can encode, where silent truncation is not the
	// reference behavior (e.g. an overflowing size field).
	ErrInvalidField = fmt.Errorf("rpmpkg: invalid field")
)
