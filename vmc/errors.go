package vmc

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSignatureMismatch is returned when a catalog address carries the wrong
	// number or types of arguments.
	ErrSignatureMismatch = errors.New("signature mismatch")
	// ErrInvalidEnum is returned when an integer argument is outside of its enumeration.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrClosed is returned by Performer and Marionette after Close, and by a
	// Marionette whose transport failed.
	ErrClosed = errors.New("vmc: closed")
	// ErrConcurrentNext is returned when Next is called while another call is in progress.
	ErrConcurrentNext = errors.New("vmc: concurrent call to Next")
)

// MessageError reports a message whose address is in the catalog but whose
// arguments don't match it.
type MessageError struct {
	Address  string
	TypeTags string
	Err      error
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("vmc: %s %s: %v", e.Address, e.TypeTags, e.Err)
}

func (e *MessageError) Unwrap() error { return e.Err }

// IOError wraps a failure of the underlying transport.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return "vmc: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

func signatureErr(addr, tags string) error {
	return &MessageError{Address: addr, TypeTags: tags, Err: ErrSignatureMismatch}
}

func enumErr(addr, tags, name string, v int32) error {
	return &MessageError{Address: addr, TypeTags: tags, Err: errors.Wrapf(ErrInvalidEnum, "%s %d", name, v)}
}
