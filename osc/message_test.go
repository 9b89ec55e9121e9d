package osc

import (
	"errors"
	"reflect"
	"testing"
)

func TestMessage_Append(t *testing.T) {
	message := NewMessage("/address")

	if err := message.Append("string argument", int32(123456789), true, []byte{1}, float32(0.5)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if len(message.Arguments) != 5 {
		t.Errorf("Number of arguments should be %d and is %d", 5, len(message.Arguments))
	}
	if tags := message.TypeTags(); tags != ",siTbf" {
		t.Errorf("TypeTags() = %q, want %q", tags, ",siTbf")
	}

	if err := message.Append(int64(1)); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Append(int64) error = %v, want ErrUnsupportedType", err)
	}
}

func TestMessage_String(t *testing.T) {
	m := NewMessage("/VMC/Ext/Blend/Val", String("Joy"), Float32(1), Blob{1, 2})
	want := "/VMC/Ext/Blend/Val ,sfb Joy 1 blob(2)"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMessage_MarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.obj.MarshalBinary()
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.raw) {
				t.Errorf("MarshalBinary() got = %q, want %q", got, tt.raw)
			}
		})
	}
}

func TestMessage_UnmarshalBinary(t *testing.T) {
	for _, tt := range messageTestCases {
		t.Run(tt.name, func(t *testing.T) {
			m := new(Message)
			if err := m.UnmarshalBinary(tt.raw); (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(m, tt.obj) {
				t.Errorf("UnmarshalBinary() got = %v, want %v", m, tt.obj)
			}
		})
	}
}

func TestMessage_MarshalBinaryInvalid(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
		want error
	}{
		{"no_slash", NewMessage("VMC/Ext/T"), ErrInvalidAddress},
		{"empty_address", NewMessage(""), ErrInvalidAddress},
		{"nul_in_address", NewMessage("/a\x00b"), ErrInvalidString},
		{"nul_in_string", NewMessage("/a", String("x\x00y")), ErrInvalidString},
		{"too_large", NewMessage("/a", Blob(make([]byte, MaxPacketSize))), ErrPacketTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.msg.MarshalBinary(); !errors.Is(err, tt.want) {
				t.Errorf("MarshalBinary() error = %v, want %v", err, tt.want)
			}
		})
	}
}

var result interface{}

func BenchmarkMessageMarshalBinary(b *testing.B) {
	var buf []byte
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		buf, _ = temp.MarshalBinary()
	}
	result = buf
}
