package osc

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern and zero or more arguments.
type Message struct {
	Address   string
	Arguments []Value
}

// Verify that Messages implements the Packet interface.
var _ Packet = (*Message)(nil)

func (*Message) packet() {}

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string, args ...Value) *Message {
	return &Message{Address: addr, Arguments: args}
}

// Append appends the given arguments to the arguments list. Native Go values
// (int32, float32, string, []byte, bool) are converted with ToValue.
func (m *Message) Append(args ...interface{}) error {
	for _, a := range args {
		v, err := ToValue(a)
		if err != nil {
			return err
		}
		m.Arguments = append(m.Arguments, v)
	}
	return nil
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Arguments = m.Arguments[:0]
}

// Equals returns true if the given OSC Message is equal to the current OSC
// Message, comparing the address and the arguments in order.
func (m *Message) Equals(o *Message) bool {
	return reflect.DeepEqual(m, o)
}

// TypeTags returns the type tag string.
func (m *Message) TypeTags() string {
	return GetTypeTags(m.Arguments)
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.Address)
	sb.WriteByte(' ')
	sb.WriteString(m.TypeTags())

	for _, arg := range m.Arguments {
		switch arg := arg.(type) {
		case Blob:
			fmt.Fprintf(&sb, " blob(%d)", len(arg))
		case Timetag:
			fmt.Fprintf(&sb, " %d", arg.TimeTag())
		default:
			fmt.Fprintf(&sb, " %v", arg)
		}
	}

	return sb.String()
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (m *Message) MarshalBinary() ([]byte, error) {
	return Encode(m)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(data []byte) error {
	p, err := Decode(data)
	if err != nil {
		return err
	}
	msg, ok := p.(*Message)
	if !ok {
		return errors.Wrap(ErrInvalidAddress, "UnmarshalBinary: data is a bundle")
	}
	*m = *msg
	return nil
}

// appendMessage writes the address, the type tag string and the arguments.
func appendMessage(b []byte, m *Message) ([]byte, error) {
	if !strings.HasPrefix(m.Address, "/") {
		return b, errors.Wrapf(ErrInvalidAddress, "encode: %q", m.Address)
	}
	if strings.IndexByte(m.Address, 0) != -1 {
		return b, errors.Wrapf(ErrInvalidString, "encode: address %q", m.Address)
	}

	b = appendPaddedString(b, m.Address)
	b = appendPaddedString(b, m.TypeTags())

	for i, arg := range m.Arguments {
		if s, ok := arg.(String); ok && strings.IndexByte(string(s), 0) != -1 {
			return b, errors.Wrapf(ErrInvalidString, "encode: %s argument %d", m.Address, i)
		}
		b = AppendValue(b, arg)
	}

	return b, nil
}

// decodeMessage parses a message occupying all of data. base is the offset
// of data within the datagram and is only used for error reporting.
func decodeMessage(data []byte, base int) (*Message, error) {
	addr, n, err := parsePaddedString(data, 0)
	if err != nil {
		return nil, rebase(err, base)
	}
	if !strings.HasPrefix(addr, "/") {
		return nil, decodeErr(ErrInvalidAddress, base, "address %q", addr)
	}

	m := &Message{Address: addr}

	// OSC 1.0 allows messages without a type tag string.
	if n == len(data) {
		return m, nil
	}

	typetags, n, err := parsePaddedString(data, n)
	if err != nil {
		return nil, rebase(err, base)
	}
	if len(typetags) == 0 || typetags[0] != ',' {
		return nil, decodeErr(ErrInvalidTypeTag, base, "%q", typetags)
	}

	if len(typetags) > 1 {
		m.Arguments = make([]Value, 0, len(typetags)-1)
	}
	for _, c := range []byte(typetags[1:]) {
		var v Value
		v, n, err = DecodeValue(TypeTag(c), data, n)
		if err != nil {
			return nil, rebase(err, base)
		}
		m.Arguments = append(m.Arguments, v)
	}

	if n != len(data) {
		return nil, decodeErr(ErrPaddingMismatch, base+n, "%d trailing bytes after arguments", len(data)-n)
	}

	return m, nil
}

// rebase shifts the offset of a DecodeError by base.
func rebase(err error, base int) error {
	var de *DecodeError
	if base != 0 && errors.As(err, &de) {
		de.Offset += base
	}
	return err
}
