package osc

import "github.com/pkg/errors"

// TypeTag is a single character of an OSC type tag string.
type TypeTag byte

const (
	TypeInt32   TypeTag = 'i'
	TypeFloat32 TypeTag = 'f'
	TypeString  TypeTag = 's'
	TypeBlob    TypeTag = 'b'
	TypeTrue    TypeTag = 'T'
	TypeFalse   TypeTag = 'F'
	TypeTimetag TypeTag = 't'
)

func (t TypeTag) String() string {
	return string(rune(t))
}

// Value is an OSC argument. The set of implementations is closed: Int32,
// Float32, String, Blob, Bool and Timetag.
type Value interface {
	// TypeTag returns the tag character used for the value in a type tag string.
	TypeTag() TypeTag
	value()
}

// Int32 is a 32-bit big-endian two's complement integer ('i').
type Int32 int32

// Float32 is a 32-bit big-endian IEEE 754 floating point number ('f').
type Float32 float32

// String is a NUL terminated, 4-byte aligned sequence of bytes ('s').
type String string

// Blob is a length prefixed, 4-byte aligned sequence of bytes ('b').
type Blob []byte

// Bool is encoded only in the type tag string ('T' or 'F').
type Bool bool

func (Int32) TypeTag() TypeTag   { return TypeInt32 }
func (Float32) TypeTag() TypeTag { return TypeFloat32 }
func (String) TypeTag() TypeTag  { return TypeString }
func (Blob) TypeTag() TypeTag    { return TypeBlob }
func (Timetag) TypeTag() TypeTag { return TypeTimetag }

func (b Bool) TypeTag() TypeTag {
	if b {
		return TypeTrue
	}
	return TypeFalse
}

func (Int32) value()   {}
func (Float32) value() {}
func (String) value()  {}
func (Blob) value()    {}
func (Bool) value()    {}
func (Timetag) value() {}

// ToValue converts a native Go value into an OSC Value. It returns an error
// wrapping ErrUnsupportedType for types that have no OSC representation.
func ToValue(arg interface{}) (Value, error) {
	switch t := arg.(type) {
	case Value:
		return t, nil
	case int32:
		return Int32(t), nil
	case float32:
		return Float32(t), nil
	case string:
		return String(t), nil
	case []byte:
		return Blob(t), nil
	case bool:
		return Bool(t), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "ToValue: %T", arg)
	}
}

// GetTypeTags returns the OSC type tag string, including the leading ',', for the given arguments.
func GetTypeTags(args []Value) string {
	tags := make([]byte, 0, len(args)+1)
	tags = append(tags, ',')
	for _, a := range args {
		tags = append(tags, byte(a.TypeTag()))
	}
	return string(tags)
}
