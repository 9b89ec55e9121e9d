package osc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Decoding errors. Every error returned by Decode wraps exactly one of these
// and can be matched with errors.Is.
var (
	// ErrEOF is returned when the data ends before a complete element was read.
	ErrEOF = errors.New("unexpected end of data")
	// ErrInvalidTypeTag is returned when the type tag string doesn't start with ','.
	ErrInvalidTypeTag = errors.New("invalid type tag string")
	// ErrInvalidAddress is returned when a packet is neither a bundle nor a message with a '/' address.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrPaddingMismatch is returned for non-zero padding, misaligned element lengths or trailing bytes.
	ErrPaddingMismatch = errors.New("padding mismatch")
	// ErrUnsupportedType is returned for type tags outside of i, f, s, b, T, F and t.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrDepthExceeded is returned when bundles are nested deeper than the decoder allows.
	ErrDepthExceeded = errors.New("bundle nesting too deep")
)

// Encoding errors.
var (
	// ErrPacketTooLarge is returned when an encoded packet would exceed MaxPacketSize.
	ErrPacketTooLarge = errors.New("packet too large")
	// ErrInvalidString is returned when encoding a string that contains a NUL byte.
	ErrInvalidString = errors.New("string contains NUL byte")
)

// DecodeError describes where in the data a decoding failure occurred.
type DecodeError struct {
	Err    error
	Offset int
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("osc: %v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("osc: %v at offset %d: %s", e.Err, e.Offset, e.Detail)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(err error, offset int, format string, args ...interface{}) error {
	return &DecodeError{Err: err, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
