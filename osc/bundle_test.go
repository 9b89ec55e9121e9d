package osc

import (
	"reflect"
	"testing"
	"time"
)

func TestBundle_MarshalBinary(t *testing.T) {
	for _, tt := range bundleTestCases {
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

func TestBundle_UnmarshalBinary(t *testing.T) {
	for _, tt := range bundleTestCases {
		t.Run(tt.name, func(t *testing.T) {
			b := new(Bundle)
			if err := b.UnmarshalBinary(tt.raw); (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalBinary() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(b, tt.obj) {
				t.Errorf("UnmarshalBinary() got = %v, want %v", b, tt.obj)
			}
		})
	}
}

func TestBundle_Append(t *testing.T) {
	b := NewBundleWithTime(time.Now())
	if err := b.Append(NewMessage("/a")); err != nil {
		t.Fatalf("Append(message) error = %v", err)
	}
	if err := b.Append(NewBundle()); err != nil {
		t.Fatalf("Append(bundle) error = %v", err)
	}
	if err := b.Append((*Message)(nil)); err == nil {
		t.Error("Append(nil message) expected an error")
	}
	if len(b.Elements) != 2 {
		t.Errorf("len(Elements) = %d, want 2", len(b.Elements))
	}
}

func TestBundle_UnmarshalBinaryRejectsMessage(t *testing.T) {
	b := new(Bundle)
	if err := b.UnmarshalBinary(messageTestCases[0].raw); err == nil {
		t.Error("UnmarshalBinary() of a message expected an error")
	}
}
