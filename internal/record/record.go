// Package record captures received VMC datagrams to a CBOR file and reads
// them back for replay and inspection.
//
// A capture is a Header followed by any number of Entry values, each a
// separate CBOR data item.
package record

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Version is the capture format version written by this package.
const Version = 1

// ErrVersion is returned when a capture was written by an unknown format version.
var ErrVersion = errors.New("record: unsupported capture version")

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create capture CBOR decoder mode: %v", err))
	}
}

// Header starts every capture.
type Header struct {
	Version uint32    `cbor:"1,keyasint"`
	Session string    `cbor:"2,keyasint"`
	Started time.Time `cbor:"3,keyasint"`
	Listen  string    `cbor:"4,keyasint,omitempty"`
}

// Entry is one captured datagram.
type Entry struct {
	// At is when the datagram was received.
	At time.Time `cbor:"1,keyasint"`

	// From is the sender address, if known.
	From string `cbor:"2,keyasint,omitempty"`

	// Data is the datagram exactly as received.
	Data []byte `cbor:"3,keyasint"`
}

// Writer appends entries to a capture.
type Writer struct {
	enc    *cbor.Encoder
	closer io.Closer
	header Header
}

// NewWriter writes a header for a new session to w. listen is recorded as the
// capture's local address and may be empty.
func NewWriter(w io.Writer, listen string) (*Writer, error) {
	h := Header{
		Version: Version,
		Session: uuid.NewString(),
		Started: time.Now(),
		Listen:  listen,
	}
	enc := encMode.NewEncoder(w)
	if err := enc.Encode(h); err != nil {
		return nil, errors.Wrap(err, "record: write header")
	}
	wr := &Writer{enc: enc, header: h}
	if c, ok := w.(io.Closer); ok {
		wr.closer = c
	}
	return wr, nil
}

// Create creates or truncates the file at path and starts a capture in it.
func Create(path, listen string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "record: create")
	}
	w, err := NewWriter(f, listen)
	if err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Header returns the header written for this capture.
func (w *Writer) Header() Header {
	return w.header
}

// Write appends one datagram.
func (w *Writer) Write(at time.Time, from net.Addr, data []byte) error {
	e := Entry{At: at, Data: data}
	if from != nil {
		e.From = from.String()
	}
	return errors.Wrap(w.enc.Encode(e), "record: write entry")
}

// Close closes the underlying writer if it is an io.Closer.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// Reader reads entries from a capture.
type Reader struct {
	dec    *cbor.Decoder
	closer io.Closer
	header Header
}

// NewReader reads and checks the capture header from r.
func NewReader(r io.Reader) (*Reader, error) {
	dec := decMode.NewDecoder(r)
	var h Header
	if err := dec.Decode(&h); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "record: read header")
		}
		return nil, errors.Wrap(err, "record: read header")
	}
	if h.Version != Version {
		return nil, errors.Wrapf(ErrVersion, "version %d", h.Version)
	}
	rd := &Reader{dec: dec, header: h}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd, nil
}

// Open opens the capture at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "record: open")
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Header returns the capture header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next entry, or io.EOF at the end of the capture.
func (r *Reader) Next() (Entry, error) {
	var e Entry
	if err := r.dec.Decode(&e); err != nil {
		if err == io.EOF {
			return Entry{}, io.EOF
		}
		return Entry{}, errors.Wrap(err, "record: read entry")
	}
	return e, nil
}

// All reads every remaining entry.
func (r *Reader) All() ([]Entry, error) {
	var entries []Entry
	for {
		e, err := r.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
}

// Close closes the underlying reader if it is an io.Closer.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
