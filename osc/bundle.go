package osc

import (
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
)

const (
	bundleTagString = "#bundle"
	// bundleHeaderSize is the padded "#bundle" string followed by the time tag.
	bundleHeaderSize = 16
)

var bundlePrefix = []byte(bundleTagString + "\x00")

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. The OSC-timetag is a 64-bit fixed point time tag. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
type Bundle struct {
	Timetag  Timetag
	Elements []Packet
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

func (*Bundle) packet() {}

// NewBundle returns a bundle with an immediate time tag containing the given elements.
func NewBundle(elems ...Packet) *Bundle {
	return &Bundle{Timetag: Immediately, Elements: elems}
}

// NewBundleWithTime returns an empty OSC Bundle scheduled at the given time.
func NewBundleWithTime(time time.Time) *Bundle {
	return &Bundle{Timetag: NewTimetagFromTime(time)}
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(pck Packet) error {
	switch t := pck.(type) {
	case *Bundle:
		if t == nil {
			return errors.New("Append: nil bundle")
		}
	case *Message:
		if t == nil {
			return errors.New("Append: nil message")
		}
	default:
		return errors.New("Append: only Bundle and Message are supported")
	}
	b.Elements = append(b.Elements, pck)
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	return Encode(b)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}
	bundle, ok := p.(*Bundle)
	if !ok {
		return errors.Wrap(ErrInvalidAddress, "UnmarshalBinary: data is a message")
	}
	*b = *bundle
	return nil
}

// appendBundle writes the bundle header followed by every element prefixed
// with its length.
func appendBundle(b []byte, bundle *Bundle) ([]byte, error) {
	b = append(b, bundlePrefix...)
	b = binary.BigEndian.AppendUint64(b, uint64(bundle.Timetag))

	for _, elem := range bundle.Elements {
		// Reserve the length prefix and fill it in once the element is written.
		lenAt := len(b)
		b = append(b, 0, 0, 0, 0)

		var err error
		b, err = appendPacket(b, elem)
		if err != nil {
			return b, err
		}
		binary.BigEndian.PutUint32(b[lenAt:], uint32(len(b)-lenAt-bit32Size))
	}

	return b, nil
}

// decodeBundle parses a bundle occupying all of data. depth is the nesting
// level of this bundle, starting at 1 for the outermost one.
func (d Decoder) decodeBundle(data []byte, base, depth int) (*Bundle, error) {
	if depth > d.maxDepth() {
		return nil, decodeErr(ErrDepthExceeded, base, "depth %d exceeds %d", depth, d.maxDepth())
	}
	if len(data) < bundleHeaderSize {
		return nil, decodeErr(ErrEOF, base+len(data), "reading bundle time tag")
	}

	b := &Bundle{Timetag: Timetag(binary.BigEndian.Uint64(data[len(bundlePrefix):]))}

	off := bundleHeaderSize
	for off < len(data) {
		if len(data)-off < bit32Size {
			return nil, decodeErr(ErrEOF, base+off, "reading bundle element length")
		}
		length := int64(int32(binary.BigEndian.Uint32(data[off:])))
		off += bit32Size

		if length < 0 || length > int64(len(data)-off) {
			return nil, decodeErr(ErrEOF, base+off, "bundle element length %d", length)
		}
		if length%bit32Size != 0 {
			return nil, decodeErr(ErrPaddingMismatch, base+off, "bundle element length %d is not 32-bit aligned", length)
		}

		n := int(length)
		p, err := d.decodePacket(data[off:off+n], base+off, depth)
		if err != nil {
			return nil, err
		}
		b.Elements = append(b.Elements, p)
		off += n
	}

	return b, nil
}
