package vmc

import (
	"reflect"
	"sort"

	"github.com/chabad360/go-vmc/osc"
)

// args gives typed access to arguments whose type tags were already checked
// against a catalog signature.
type args []osc.Value

func (a args) str(i int) string  { return string(a[i].(osc.String)) }
func (a args) f32(i int) float32 { return float32(a[i].(osc.Float32)) }
func (a args) i32(i int) int32   { return int32(a[i].(osc.Int32)) }
func (a args) bool(i int) bool   { return a.i32(i) != 0 }

func (a args) vec3(i int) Vec3 {
	return Vec3{X: a.f32(i), Y: a.f32(i + 1), Z: a.f32(i + 2)}
}

func (a args) quat(i int) Quat {
	return Quat{X: a.f32(i), Y: a.f32(i + 1), Z: a.f32(i + 2), W: a.f32(i + 3)}
}

func (a args) color(i int) Color {
	return Color{R: a.f32(i), G: a.f32(i + 1), B: a.f32(i + 2), A: a.f32(i + 3)}
}

type entry struct {
	// signatures lists the accepted type tag strings, including the leading ','.
	signatures []string
	decode     func(addr, tags string, a args) (Message, error)
}

func (e entry) accepts(tags string) bool {
	for _, s := range e.signatures {
		if s == tags {
			return true
		}
	}
	return false
}

const (
	sigTransform = ",sfffffff"
	sigRootMR    = ",sfffffffffffff"
)

var catalog = map[string]entry{
	AddrRootTransform: {
		signatures: []string{sigTransform, sigRootMR},
		decode: func(_, _ string, a args) (Message, error) {
			m := RootTransform{Position: a.vec3(1), Rotation: a.quat(4)}
			if len(a) == 14 {
				m.MixedReality = &MixedReality{Scale: a.vec3(8), Offset: a.vec3(11)}
			}
			return m, nil
		},
	},
	AddrBoneTransform: {
		signatures: []string{sigTransform},
		decode: func(_, _ string, a args) (Message, error) {
			return BoneTransform{Bone: a.str(0), Position: a.vec3(1), Rotation: a.quat(4)}, nil
		},
	},
	AddrHMDTransform:        deviceEntry(DeviceHMD, false),
	AddrHMDLocal:            deviceEntry(DeviceHMD, true),
	AddrControllerTransform: deviceEntry(DeviceController, false),
	AddrControllerLocal:     deviceEntry(DeviceController, true),
	AddrTrackerTransform:    deviceEntry(DeviceTracker, false),
	AddrTrackerLocal:        deviceEntry(DeviceTracker, true),
	AddrBlendShape: {
		signatures: []string{",sf"},
		decode: func(_, _ string, a args) (Message, error) {
			return BlendShape{Name: a.str(0), Value: a.f32(1)}, nil
		},
	},
	AddrApplyBlendShapes: {
		signatures: []string{","},
		decode: func(_, _ string, _ args) (Message, error) {
			return ApplyBlendShapes{}, nil
		},
	},
	AddrState: {
		signatures: []string{",i", ",iii", ",iiii"},
		decode:     decodeState,
	},
	AddrTime: {
		signatures: []string{",f"},
		decode: func(_, _ string, a args) (Message, error) {
			return Time{Seconds: a.f32(0)}, nil
		},
	},
	AddrCamera: {
		signatures: []string{",sffffffff"},
		decode: func(_, _ string, a args) (Message, error) {
			return CameraTransform{Name: a.str(0), Position: a.vec3(1), Rotation: a.quat(4), FOV: a.f32(8)}, nil
		},
	},
	AddrControllerInput: {
		signatures: []string{",isiiifff"},
		decode: func(_, _ string, a args) (Message, error) {
			return ControllerInput{
				Active:  a.i32(0),
				Name:    a.str(1),
				IsLeft:  a.bool(2),
				IsTouch: a.bool(3),
				IsAxis:  a.bool(4),
				Axis:    a.vec3(5),
			}, nil
		},
	},
	AddrKeyInput: {
		signatures: []string{",isi"},
		decode: func(_, _ string, a args) (Message, error) {
			return KeyInput{Active: a.i32(0), Name: a.str(1), KeyCode: a.i32(2)}, nil
		},
	},
	AddrMidiNote: {
		signatures: []string{",iiif"},
		decode: func(_, _ string, a args) (Message, error) {
			return MidiNote{Active: a.i32(0), Channel: a.i32(1), Note: a.i32(2), Velocity: a.f32(3)}, nil
		},
	},
	AddrMidiCCValue: {
		signatures: []string{",if"},
		decode: func(_, _ string, a args) (Message, error) {
			return MidiCCValue{Knob: a.i32(0), Value: a.f32(1)}, nil
		},
	},
	AddrMidiCCButton: {
		signatures: []string{",ii"},
		decode: func(_, _ string, a args) (Message, error) {
			return MidiCCButton{Knob: a.i32(0), Active: a.i32(1)}, nil
		},
	},
	AddrLight: {
		signatures: []string{",sfffffffffff"},
		decode: func(_, _ string, a args) (Message, error) {
			return LightTransform{Name: a.str(0), Position: a.vec3(1), Rotation: a.quat(4), Color: a.color(8)}, nil
		},
	},
	AddrBackgroundColor: {
		signatures: []string{",ffff"},
		decode: func(_, _ string, a args) (Message, error) {
			return BackgroundColor{Color: a.color(0)}, nil
		},
	},
	AddrWindowAttribute: {
		signatures: []string{",iiii"},
		decode: func(_, _ string, a args) (Message, error) {
			return WindowAttribute{
				IsTopMost:          a.i32(0),
				IsTransparent:      a.i32(1),
				WindowClickThrough: a.i32(2),
				HideBorder:         a.i32(3),
			}, nil
		},
	},
	AddrLoadedSettingPath: {
		signatures: []string{",s"},
		decode: func(_, _ string, a args) (Message, error) {
			return LoadedSettingPath{Path: a.str(0)}, nil
		},
	},
	AddrCalibrationReady: {
		signatures: []string{","},
		decode: func(_, _ string, _ args) (Message, error) {
			return CalibrationReady{}, nil
		},
	},
	AddrCalibrationExec: {
		signatures: []string{",i"},
		decode: func(addr, tags string, a args) (Message, error) {
			mode := CalibrationMode(a.i32(0))
			if !mode.valid() {
				return nil, enumErr(addr, tags, "calibration mode", a.i32(0))
			}
			return CalibrationExec{Mode: mode}, nil
		},
	},
	AddrConfigRequest: {
		signatures: []string{",s"},
		decode: func(_, _ string, a args) (Message, error) {
			return ConfigRequest{Path: a.str(0)}, nil
		},
	},
	AddrSendPeriod: {
		signatures: []string{",iiiiii"},
		decode: func(_, _ string, a args) (Message, error) {
			return SendPeriod{
				Status:     a.i32(0),
				Root:       a.i32(1),
				Bone:       a.i32(2),
				BlendShape: a.i32(3),
				Camera:     a.i32(4),
				Devices:    a.i32(5),
			}, nil
		},
	},
	AddrReceiveEnable: {
		signatures: []string{",ii", ",iis"},
		decode: func(_, _ string, a args) (Message, error) {
			m := ReceiveEnable{Enable: a.i32(0), Port: a.i32(1)}
			if len(a) == 3 {
				m.IP = a.str(2)
			}
			return m, nil
		},
	},
}

func deviceEntry(device DeviceType, local bool) entry {
	return entry{
		signatures: []string{sigTransform},
		decode: func(_, _ string, a args) (Message, error) {
			return DeviceTransform{
				Device:   device,
				Serial:   a.str(0),
				Position: a.vec3(1),
				Rotation: a.quat(4),
				Local:    local,
			}, nil
		},
	}
}

// decodeState reads model state, then calibration state and mode, then tracking.
func decodeState(addr, tags string, a args) (Message, error) {
	m := State{Model: ModelState(a.i32(0))}
	if !m.Model.valid() {
		return nil, enumErr(addr, tags, "model state", a.i32(0))
	}
	if len(a) == 1 {
		return m, nil
	}

	c := Calibration{State: CalibrationState(a.i32(1)), Mode: CalibrationMode(a.i32(2))}
	if !c.State.valid() {
		return nil, enumErr(addr, tags, "calibration state", a.i32(1))
	}
	if !c.Mode.valid() {
		return nil, enumErr(addr, tags, "calibration mode", a.i32(2))
	}
	m.Calibration = &c
	if len(a) == 3 {
		return m, nil
	}

	t := TrackingState(a.i32(3))
	if !t.valid() {
		return nil, enumErr(addr, tags, "tracking state", a.i32(3))
	}
	c.Tracking = &t
	return m, nil
}

// ToOSC encodes m into its OSC message.
func ToOSC(m Message) *osc.Message {
	return m.OSCMessage()
}

// FromOSC converts an OSC message into a VMC message. ok is false if the
// address isn't in the catalog; such messages are not an error. A recognized
// address with arguments that don't match its signature returns a
// *MessageError.
func FromOSC(m *osc.Message) (msg Message, ok bool, err error) {
	if m == nil {
		return nil, false, nil
	}
	e, ok := catalog[m.Address]
	if !ok {
		return nil, false, nil
	}

	tags := m.TypeTags()
	if !e.accepts(tags) {
		return nil, true, signatureErr(m.Address, tags)
	}
	msg, err = e.decode(m.Address, tags, args(m.Arguments))
	return msg, true, err
}

// Addresses returns every address of the catalog in lexical order.
func Addresses() []string {
	addrs := make([]string, 0, len(catalog))
	for addr := range catalog {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	return addrs
}

// Signatures returns the type tag strings accepted at addr, or nil if addr
// isn't in the catalog.
func Signatures(addr string) []string {
	e, ok := catalog[addr]
	if !ok {
		return nil
	}
	return append([]string(nil), e.signatures...)
}

// Kind returns the name of the message's type, such as "BoneTransform".
func Kind(m Message) string {
	if m == nil {
		return ""
	}
	return reflect.TypeOf(m).Name()
}
