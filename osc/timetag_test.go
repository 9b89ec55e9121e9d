package osc

import (
	"testing"
	"time"
)

func TestNewImmediateTimetag(t *testing.T) {
	tt := NewImmediateTimetag()
	if tt != 1 || !tt.IsImmediate() {
		t.Errorf("NewImmediateTimetag() = %d, want 1", tt)
	}
	if i := tt.ExpiresIn(); i != 0 {
		t.Errorf("ExpiresIn() = %v, want 0", i)
	}
}

func TestNewTimetag(t *testing.T) {
	before := time.Now().Add(-time.Millisecond)
	tt := NewTimetag()
	if got := tt.Time(); got.Before(before) {
		t.Errorf("NewTimetag().Time() = %v, want after %v", got, before)
	}
	if i := tt.ExpiresIn(); i != 0 {
		t.Errorf("ExpiresIn() = %v, want 0", i)
	}
}

func TestTimetag_ExpiresIn(t *testing.T) {
	tests := []struct {
		name string
		t    Timetag
		min  time.Duration
		max  time.Duration
	}{
		{"one_second", NewTimetagFromTime(time.Now().Add(time.Second)), 900 * time.Millisecond, time.Second},
		{"immediate", NewImmediateTimetag(), 0, 0},
		{"zero", Timetag(0), 0, 0},
		{"late", NewTimetagFromTime(time.Now().Add(-time.Second)), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.ExpiresIn(); got < tt.min || got > tt.max {
				t.Errorf("ExpiresIn() = %v, want between %v and %v", got, tt.min, tt.max)
			}
		})
	}
}

func TestTimetag_Parts(t *testing.T) {
	tests := []struct {
		name    string
		t       Timetag
		seconds uint32
		frac    uint32
	}{
		{"immediate", Immediately, 0, 1},
		{"unix_epoch", Timetag(secondsFrom1900To1970 << 32), secondsFrom1900To1970, 0},
		{"half_second", Timetag(secondsFrom1900To1970<<32 | 0x80000000), secondsFrom1900To1970, 0x80000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.SecondsSinceEpoch(); got != tt.seconds {
				t.Errorf("SecondsSinceEpoch() = %v, want %v", got, tt.seconds)
			}
			if got := tt.t.FractionalSecond(); got != tt.frac {
				t.Errorf("FractionalSecond() = %v, want %v", got, tt.frac)
			}
		})
	}
}

func TestTimetag_Time(t *testing.T) {
	tests := []struct {
		name string
		t    Timetag
		want time.Time
	}{
		{"unix_epoch", Timetag(secondsFrom1900To1970 << 32), time.Unix(0, 0)},
		{"half_second", Timetag(secondsFrom1900To1970<<32 | 0x80000000), time.Unix(0, int64(500*time.Millisecond))},
		{"2022", Timetag(uint64(secondsFrom1900To1970+1640995200) << 32), time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Time(); !got.Equal(tt.want) {
				t.Errorf("Time() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimetag_SetTime(t *testing.T) {
	want := time.Date(2021, 6, 1, 12, 30, 15, 250_000_000, time.UTC)
	var tt Timetag
	tt.SetTime(want)
	// The fraction loses less than a nanosecond in each direction.
	if d := tt.Time().Sub(want); d < -time.Nanosecond || d > time.Nanosecond {
		t.Errorf("Time() after SetTime = %v, want %v", tt.Time(), want)
	}
	if tt != NewTimetagFromTime(want) {
		t.Errorf("SetTime() = %d, want %d", tt, NewTimetagFromTime(want))
	}
}

func TestTimetag_MarshalBinary(t *testing.T) {
	b, err := Timetag(0x0102030405060708).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if string(b) != string(want) {
		t.Errorf("MarshalBinary() = %x, want %x", b, want)
	}
}
