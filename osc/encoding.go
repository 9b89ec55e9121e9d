package osc

import (
	"bytes"
	"encoding/binary"
	"math"
)

////
// De/Encoding functions
////

const (
	bit32Size = 4
	bit64Size = 8
)

// parsePaddedString reads a NUL terminated string starting at off and
// returns it together with the offset of the next 4-byte aligned element.
func parsePaddedString(data []byte, off int) (string, int, error) {
	if off >= len(data) {
		return "", off, decodeErr(ErrEOF, off, "reading string")
	}
	pos := bytes.IndexByte(data[off:], 0)
	if pos == -1 {
		return "", off, decodeErr(ErrEOF, len(data), "string is not NUL terminated")
	}

	str := string(data[off : off+pos])
	n := pos + 1
	end := off + n + padBytesNeeded(n)
	if end > len(data) {
		return "", off, decodeErr(ErrEOF, len(data), "string padding")
	}
	if err := checkPadding(data, off+n, end); err != nil {
		return "", off, err
	}

	return str, end, nil
}

// appendPaddedString appends str, its NUL terminator and the padding bytes to b.
func appendPaddedString(b []byte, str string) []byte {
	b = append(b, str...)
	n := len(str) + 1
	return append(b, make([]byte, 1+padBytesNeeded(n))...)
}

// parseBlob reads an OSC blob starting at off. The returned slice is a copy.
func parseBlob(data []byte, off int) ([]byte, int, error) {
	if len(data)-off < bit32Size {
		return nil, off, decodeErr(ErrEOF, off, "reading blob length")
	}
	blobLen := int64(int32(binary.BigEndian.Uint32(data[off:])))
	off += bit32Size

	if blobLen < 0 || blobLen > int64(len(data)-off) {
		return nil, off, decodeErr(ErrEOF, off, "blob length %d", blobLen)
	}
	n := int(blobLen)
	end := off + n + padBytesNeeded(n)
	if end > len(data) {
		return nil, off, decodeErr(ErrEOF, len(data), "blob padding")
	}
	if err := checkPadding(data, off+n, end); err != nil {
		return nil, off, err
	}

	blob := make([]byte, n)
	copy(blob, data[off:off+n])
	return blob, end, nil
}

// appendBlob appends the length prefix, the data and the padding bytes to b.
func appendBlob(b []byte, data []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, data...)
	return append(b, make([]byte, padBytesNeeded(len(data)))...)
}

// checkPadding verifies that data[from:to] only contains zero bytes.
func checkPadding(data []byte, from, to int) error {
	for i := from; i < to; i++ {
		if data[i] != 0 {
			return decodeErr(ErrPaddingMismatch, i, "non-zero padding byte %#x", data[i])
		}
	}
	return nil
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

// DecodeValue decodes the argument described by tag from data, starting at
// offset. It returns the value and the offset of the next argument. It never
// reads past the end of data.
func DecodeValue(tag TypeTag, data []byte, offset int) (Value, int, error) {
	if offset < 0 || offset > len(data) {
		return nil, offset, decodeErr(ErrEOF, offset, "offset out of range")
	}

	switch tag {
	case TypeInt32:
		if len(data)-offset < bit32Size {
			return nil, offset, decodeErr(ErrEOF, offset, "reading int32")
		}
		return Int32(binary.BigEndian.Uint32(data[offset:])), offset + bit32Size, nil

	case TypeFloat32:
		if len(data)-offset < bit32Size {
			return nil, offset, decodeErr(ErrEOF, offset, "reading float32")
		}
		return Float32(math.Float32frombits(binary.BigEndian.Uint32(data[offset:]))), offset + bit32Size, nil

	case TypeString:
		s, n, err := parsePaddedString(data, offset)
		if err != nil {
			return nil, offset, err
		}
		return String(s), n, nil

	case TypeBlob:
		b, n, err := parseBlob(data, offset)
		if err != nil {
			return nil, offset, err
		}
		return Blob(b), n, nil

	case TypeTimetag:
		if len(data)-offset < bit64Size {
			return nil, offset, decodeErr(ErrEOF, offset, "reading timetag")
		}
		return Timetag(binary.BigEndian.Uint64(data[offset:])), offset + bit64Size, nil

	case TypeTrue:
		return Bool(true), offset, nil

	case TypeFalse:
		return Bool(false), offset, nil

	default:
		return nil, offset, decodeErr(ErrUnsupportedType, offset, "type tag %q", rune(tag))
	}
}

// AppendValue appends the wire encoding of v to b. Bool values have no payload.
func AppendValue(b []byte, v Value) []byte {
	switch t := v.(type) {
	case Int32:
		return binary.BigEndian.AppendUint32(b, uint32(t))
	case Float32:
		return binary.BigEndian.AppendUint32(b, math.Float32bits(float32(t)))
	case String:
		return appendPaddedString(b, string(t))
	case Blob:
		return appendBlob(b, t)
	case Timetag:
		return binary.BigEndian.AppendUint64(b, uint64(t))
	case Bool:
		return b
	}
	// Value is sealed; all implementations are handled above.
	panic("osc: unknown Value implementation")
}

// EncodeValue returns the wire encoding of v.
func EncodeValue(v Value) []byte {
	return AppendValue(nil, v)
}
