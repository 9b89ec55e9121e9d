package vmc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chabad360/go-vmc/osc"
)

func ptr[T any](v T) *T { return &v }

var (
	pos = Vec3{X: 0.5, Y: 0.2, Z: -0.4}
	rot = Quat{X: 0.18257418, Y: 0.36514837, Z: 0.5477226, W: 0.73029673}
)

// catalogSamples holds one message per catalog signature.
var catalogSamples = []Message{
	RootTransform{Position: pos, Rotation: rot},
	RootTransform{Position: pos, Rotation: rot, MixedReality: &MixedReality{Scale: Vec3{0.8, 1, 0.3}, Offset: Vec3{-0.1, 0.12, -0.3}}},
	RootTransform{Position: pos, Rotation: rot, MixedReality: &MixedReality{Scale: Vec3{0.8, 1, 0.3}}},
	BoneTransform{Bone: BoneLeftHand, Position: pos, Rotation: rot},
	BoneTransform{Bone: "CustomTail", Position: pos, Rotation: IdentityQuat},
	DeviceTransform{Device: DeviceHMD, Serial: "LHR-0001", Position: pos, Rotation: rot},
	DeviceTransform{Device: DeviceHMD, Serial: "LHR-0001", Position: pos, Rotation: rot, Local: true},
	DeviceTransform{Device: DeviceController, Serial: "LHR-0002", Position: pos, Rotation: rot},
	DeviceTransform{Device: DeviceController, Serial: "LHR-0002", Position: pos, Rotation: rot, Local: true},
	DeviceTransform{Device: DeviceTracker, Serial: "LHR-0003", Position: pos, Rotation: rot},
	DeviceTransform{Device: DeviceTracker, Serial: "LHR-0003", Position: pos, Rotation: rot, Local: true},
	BlendShape{Name: BlendShapeJoy, Value: 1},
	BlendShape{Name: BlendShapeBlinkL, Value: 0.25},
	ApplyBlendShapes{},
	State{Model: ModelLoaded},
	State{Model: ModelNotLoaded, Calibration: &Calibration{Mode: CalibrationMixedRealityHand, State: Calibrating}},
	State{Model: ModelLoaded, Calibration: &Calibration{Mode: CalibrationNormal, State: Calibrated, Tracking: ptr(TrackingGood)}},
	State{Model: ModelLoaded, Calibration: &Calibration{Mode: CalibrationNormal, State: Uncalibrated, Tracking: ptr(TrackingPoor)}},
	Time{Seconds: 12.5},
	CameraTransform{Name: "Camera", Position: pos, Rotation: rot, FOV: 60},
	ControllerInput{Active: 1, Name: "ClickTrigger", IsLeft: true, IsAxis: true, Axis: Vec3{X: 1}},
	KeyInput{Active: 1, Name: "Z", KeyCode: 90},
	MidiNote{Active: 1, Channel: 0, Note: 60, Velocity: 0.5},
	MidiCCValue{Knob: 3, Value: 0.75},
	MidiCCButton{Knob: 3, Active: 1},
	LightTransform{Name: "Light", Position: pos, Rotation: rot, Color: Color{R: 1, G: 0.9, B: 0.8, A: 1}},
	BackgroundColor{Color: Color{R: 0, G: 1, B: 0, A: 1}},
	WindowAttribute{IsTopMost: 1, IsTransparent: 1, WindowClickThrough: 0, HideBorder: 1},
	LoadedSettingPath{Path: `C:\VMC\default.json`},
	CalibrationReady{},
	CalibrationExec{Mode: CalibrationMixedRealityFloor},
	ConfigRequest{Path: `C:\VMC\other.json`},
	SendPeriod{Status: 1, Root: 1, Bone: 1, BlendShape: 1, Camera: 1, Devices: 1},
	ReceiveEnable{Enable: 1, Port: 39540},
	ReceiveEnable{Enable: 1, Port: 39540, IP: "192.168.0.2"},
}

func TestCatalogRoundTrip(t *testing.T) {
	for _, m := range catalogSamples {
		t.Run(Kind(m)+m.Address(), func(t *testing.T) {
			raw := ToOSC(m)
			assert.Equal(t, m.Address(), raw.Address)
			assert.Contains(t, Signatures(raw.Address), raw.TypeTags())

			got, ok, err := FromOSC(raw)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, m, got)
		})
	}
}

func TestCatalogRoundTripWire(t *testing.T) {
	for _, m := range catalogSamples {
		data, err := osc.Encode(ToOSC(m))
		require.NoError(t, err)

		outcomes, err := Parse(data)
		require.NoError(t, err)
		require.Len(t, outcomes, 1)
		assert.Equal(t, Recognized, outcomes[0].Kind)
		assert.Equal(t, m, outcomes[0].Message)
	}
}

func TestCatalogCoversEveryAddress(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range catalogSamples {
		seen[m.Address()] = true
	}
	for _, addr := range Addresses() {
		assert.True(t, seen[addr], "no sample for %s", addr)
	}
	assert.Len(t, Addresses(), len(catalog))
	assert.IsIncreasing(t, Addresses())
}

func TestBlendShapeEncoding(t *testing.T) {
	data, err := osc.Encode(ToOSC(BlendShape{Name: "Joy", Value: 1}))
	require.NoError(t, err)

	want := []byte("/VMC/Ext/Blend/Val\x00\x00" + ",sf\x00" + "Joy\x00" + "\x3f\x80\x00\x00")
	assert.Equal(t, want, data)

	outcomes, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, BlendShape{Name: "Joy", Value: 1}, outcomes[0].Message)
}

func TestStateArgumentOrder(t *testing.T) {
	m := State{
		Model:       ModelLoaded,
		Calibration: &Calibration{Mode: CalibrationMixedRealityFloor, State: WaitingForCalibration, Tracking: ptr(TrackingPoor)},
	}
	want := osc.NewMessage(AddrState, osc.Int32(1), osc.Int32(1), osc.Int32(2), osc.Int32(0))
	assert.Equal(t, want, ToOSC(m))
}

func TestRootTransformName(t *testing.T) {
	raw := ToOSC(RootTransform{Rotation: IdentityQuat})
	require.NotEmpty(t, raw.Arguments)
	assert.Equal(t, osc.String("root"), raw.Arguments[0])

	raw = ToOSC(RootTransform{Rotation: IdentityQuat, MixedReality: &MixedReality{Scale: Vec3{1, 1, 1}}})
	assert.Equal(t, sigRootMR, raw.TypeTags())
}

func TestPartialFieldsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		tags string
	}{
		{"root_scale_only", RootTransform{Rotation: IdentityQuat, MixedReality: &MixedReality{Scale: Vec3{2, 2, 2}}}, sigRootMR},
		{"root_offset_only", RootTransform{Rotation: IdentityQuat, MixedReality: &MixedReality{Offset: Vec3{Y: 0.1}}}, sigRootMR},
		{"state_calibration_only", State{Model: ModelLoaded, Calibration: &Calibration{State: Calibrating}}, ",iii"},
		{"state_with_tracking", State{Model: ModelLoaded, Calibration: &Calibration{Tracking: ptr(TrackingGood)}}, ",iiii"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := ToOSC(tt.msg)
			assert.Equal(t, tt.tags, raw.TypeTags())

			got, ok, err := FromOSC(raw)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.msg, got)
		})
	}
}

func TestInvalidEnumPanics(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{"model_state", State{Model: 7}},
		{"calibration_state", State{Model: ModelLoaded, Calibration: &Calibration{State: 9}}},
		{"calibration_mode", State{Model: ModelLoaded, Calibration: &Calibration{Mode: -1}}},
		{"tracking_state", State{Model: ModelLoaded, Calibration: &Calibration{Tracking: ptr(TrackingState(3))}}},
		{"calibration_exec", CalibrationExec{Mode: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { ToOSC(tt.msg) })
		})
	}
}

func TestFromOSCUnrecognized(t *testing.T) {
	for _, m := range []*osc.Message{
		osc.NewMessage("/VMC/Ext/Unknown", osc.Int32(1)),
		osc.NewMessage("/vmc/ext/blend/val", osc.String("Joy"), osc.Float32(1)),
		osc.NewMessage("/VMC/Ext/Blend/Val/"),
		osc.NewMessage("/VMC/Ext/Dev/Pos", osc.String("x")),
		nil,
	} {
		got, ok, err := FromOSC(m)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	}
}

func TestFromOSCSignatureMismatch(t *testing.T) {
	tests := []struct {
		name string
		msg  *osc.Message
	}{
		{"missing_argument", osc.NewMessage(AddrBlendShape, osc.String("Joy"))},
		{"extra_argument", osc.NewMessage(AddrBlendShape, osc.String("Joy"), osc.Float32(1), osc.Float32(2))},
		{"wrong_type", osc.NewMessage(AddrBlendShape, osc.String("Joy"), osc.Int32(1))},
		{"swapped", osc.NewMessage(AddrBlendShape, osc.Float32(1), osc.String("Joy"))},
		{"apply_with_args", osc.NewMessage(AddrApplyBlendShapes, osc.Int32(1))},
		{"state_two_ints", osc.NewMessage(AddrState, osc.Int32(1), osc.Int32(1))},
		{"time_as_int", osc.NewMessage(AddrTime, osc.Int32(7))},
		{"bone_short", osc.NewMessage(AddrBoneTransform, osc.String("Hips"), osc.Float32(0))},
		{"root_between_forms", osc.NewMessage(AddrRootTransform, appendVec3(transformArgs("root", pos, rot), pos)...)},
		{"bool_argument", osc.NewMessage(AddrTime, osc.Bool(true))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := FromOSC(tt.msg)
			assert.True(t, ok)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSignatureMismatch))

			var me *MessageError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.msg.Address, me.Address)
			assert.Equal(t, tt.msg.TypeTags(), me.TypeTags)
		})
	}
}

func TestFromOSCInvalidEnum(t *testing.T) {
	tests := []struct {
		name string
		msg  *osc.Message
	}{
		{"model_state", osc.NewMessage(AddrState, osc.Int32(2))},
		{"negative_model_state", osc.NewMessage(AddrState, osc.Int32(-1))},
		{"calibration_state", osc.NewMessage(AddrState, osc.Int32(1), osc.Int32(4), osc.Int32(0))},
		{"calibration_mode", osc.NewMessage(AddrState, osc.Int32(1), osc.Int32(3), osc.Int32(3))},
		{"tracking_state", osc.NewMessage(AddrState, osc.Int32(1), osc.Int32(3), osc.Int32(0), osc.Int32(2))},
		{"calibration_exec", osc.NewMessage(AddrCalibrationExec, osc.Int32(9))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := FromOSC(tt.msg)
			assert.True(t, ok)
			assert.True(t, errors.Is(err, ErrInvalidEnum), "err = %v", err)
			assert.False(t, errors.Is(err, ErrSignatureMismatch))
		})
	}
}

func TestDeviceTransformUnknownDevicePanics(t *testing.T) {
	assert.Panics(t, func() {
		DeviceTransform{Device: "Foo"}.OSCMessage()
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, "BoneTransform", Kind(BoneTransform{}))
	assert.Equal(t, "ApplyBlendShapes", Kind(ApplyBlendShapes{}))
	assert.Equal(t, "", Kind(nil))
}

func TestStandardNames(t *testing.T) {
	assert.True(t, IsStandardBone(BoneHips))
	assert.True(t, IsStandardBone("RightLittleDistal"))
	assert.False(t, IsStandardBone("hips"))
	assert.True(t, IsStandardBlendShape("Blink_R"))
	assert.False(t, IsStandardBlendShape("BlinkR"))
	assert.Len(t, standardBones, 56)
	assert.Len(t, standardBlendShapes, 17)
}

func TestElapsed(t *testing.T) {
	a := Elapsed()
	b := Elapsed()
	assert.GreaterOrEqual(t, b.Seconds, a.Seconds)
	assert.GreaterOrEqual(t, a.Seconds, float32(0))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Loaded", ModelLoaded.String())
	assert.Equal(t, "WaitingForCalibration", WaitingForCalibration.String())
	assert.Equal(t, "MixedRealityFloor", CalibrationMixedRealityFloor.String())
	assert.Equal(t, "Good", TrackingGood.String())
	assert.Equal(t, "TrackingState(7)", TrackingState(7).String())
}
