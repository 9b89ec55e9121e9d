package osc

import (
	"bytes"
	"encoding"

	"github.com/pkg/errors"
)

const (
	// MaxPacketSize is the largest packet Encode produces; it is the maximum
	// payload of a UDP datagram over IPv4.
	MaxPacketSize = 65507

	// DefaultMaxDepth is the bundle nesting limit used by Decode.
	DefaultMaxDepth = 16
)

// Packet is the interface for Message and Bundle. The set of implementations is closed.
type Packet interface {
	encoding.BinaryMarshaler
	packet()
}

// Decoder decodes OSC packets.
type Decoder struct {
	// MaxDepth bounds bundle nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (d Decoder) maxDepth() int {
	if d.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return d.MaxDepth
}

// Decode parses an OSC packet with the default decoder.
func Decode(data []byte) (Packet, error) {
	return Decoder{}.Decode(data)
}

// Decode parses a complete OSC packet. Errors are *DecodeError values
// wrapping one of the Err* decoding sentinels. The returned packet doesn't
// reference data.
func (d Decoder) Decode(data []byte) (Packet, error) {
	return d.decodePacket(data, 0, 0)
}

func (d Decoder) decodePacket(data []byte, base, depth int) (Packet, error) {
	if len(data) == 0 {
		return nil, decodeErr(ErrEOF, base, "empty packet")
	}
	if bytes.HasPrefix(data, bundlePrefix) {
		return d.decodeBundle(data, base, depth+1)
	}
	if data[0] != '/' {
		return nil, decodeErr(ErrInvalidAddress, base, "packet starts with %q", data[0])
	}
	return decodeMessage(data, base)
}

// Encode serializes an OSC packet. The output is deterministic and always a
// multiple of 4 bytes long.
func Encode(p Packet) ([]byte, error) {
	buf := bPool.Get().(*[]byte)
	defer bPool.Put(buf)

	b, err := appendPacket((*buf)[:0], p)
	*buf = b[:0]
	if err != nil {
		return nil, err
	}
	if len(b) > MaxPacketSize {
		return nil, errors.Wrapf(ErrPacketTooLarge, "encode: %d bytes", len(b))
	}

	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// AppendPacket appends the encoding of p to b.
func AppendPacket(b []byte, p Packet) ([]byte, error) {
	return appendPacket(b, p)
}

func appendPacket(b []byte, p Packet) ([]byte, error) {
	switch t := p.(type) {
	case *Message:
		if t == nil {
			return b, errors.New("encode: nil message")
		}
		return appendMessage(b, t)
	case *Bundle:
		if t == nil {
			return b, errors.New("encode: nil bundle")
		}
		return appendBundle(b, t)
	default:
		return b, errors.Errorf("encode: unsupported packet type %T", p)
	}
}
