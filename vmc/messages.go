package vmc

import (
	"fmt"
	"time"

	"github.com/chabad360/go-vmc/osc"
)

// Addresses of the VMC catalog.
const (
	AddrRootTransform       = "/VMC/Ext/Root/Pos"
	AddrBoneTransform       = "/VMC/Ext/Bone/Pos"
	AddrHMDTransform        = "/VMC/Ext/Hmd/Pos"
	AddrHMDLocal            = "/VMC/Ext/Hmd/Pos/Local"
	AddrControllerTransform = "/VMC/Ext/Con/Pos"
	AddrControllerLocal     = "/VMC/Ext/Con/Pos/Local"
	AddrTrackerTransform    = "/VMC/Ext/Tra/Pos"
	AddrTrackerLocal        = "/VMC/Ext/Tra/Pos/Local"
	AddrBlendShape          = "/VMC/Ext/Blend/Val"
	AddrApplyBlendShapes    = "/VMC/Ext/Blend/Apply"
	AddrState               = "/VMC/Ext/OK"
	AddrTime                = "/VMC/Ext/T"
	AddrCamera              = "/VMC/Ext/Cam"
	AddrControllerInput     = "/VMC/Ext/Con"
	AddrKeyInput            = "/VMC/Ext/Key"
	AddrMidiNote            = "/VMC/Ext/Midi/Note"
	AddrMidiCCValue         = "/VMC/Ext/Midi/CC/Val"
	AddrMidiCCButton        = "/VMC/Ext/Midi/CC/Bit"
	AddrLight               = "/VMC/Ext/Light"
	AddrBackgroundColor     = "/VMC/Ext/Setting/Color"
	AddrWindowAttribute     = "/VMC/Ext/Setting/Win"
	AddrLoadedSettingPath   = "/VMC/Ext/Config"
	AddrCalibrationReady    = "/VMC/Ext/Set/Calib/Ready"
	AddrCalibrationExec     = "/VMC/Ext/Set/Calib/Exec"
	AddrConfigRequest       = "/VMC/Ext/Set/Config"
	AddrSendPeriod          = "/VMC/Ext/Set/Period"
	AddrReceiveEnable       = "/VMC/Ext/Rcv"
)

// rootName is the transform name sent with every root transform.
const rootName = "root"

// Message is a VMC message. The set of implementations is closed and matches
// the catalog one to one.
type Message interface {
	// Address returns the OSC address the message is sent to.
	Address() string
	// OSCMessage encodes the message into its OSC form.
	OSCMessage() *osc.Message
	message()
}

// MixedReality is the scale and offset of the root sent by mixed reality
// capable performers.
type MixedReality struct {
	Scale  Vec3 `json:"scale" yaml:"scale" cbor:"scale"`
	Offset Vec3 `json:"offset" yaml:"offset" cbor:"offset"`
}

// RootTransform is the position and rotation of the avatar's root.
type RootTransform struct {
	Position     Vec3          `json:"position" yaml:"position" cbor:"position"`
	Rotation     Quat          `json:"rotation" yaml:"rotation" cbor:"rotation"`
	MixedReality *MixedReality `json:"mixed_reality,omitempty" yaml:"mixed_reality,omitempty" cbor:"mixed_reality,omitempty"`
}

func (RootTransform) Address() string { return AddrRootTransform }

func (m RootTransform) OSCMessage() *osc.Message {
	args := make([]osc.Value, 0, 14)
	args = append(args, osc.String(rootName))
	args = appendVec3(args, m.Position)
	args = appendQuat(args, m.Rotation)
	if m.MixedReality != nil {
		args = appendVec3(args, m.MixedReality.Scale)
		args = appendVec3(args, m.MixedReality.Offset)
	}
	return osc.NewMessage(AddrRootTransform, args...)
}

// BoneTransform is the local position and rotation of a humanoid bone.
type BoneTransform struct {
	Bone     string `json:"bone" yaml:"bone" cbor:"bone"`
	Position Vec3   `json:"position" yaml:"position" cbor:"position"`
	Rotation Quat   `json:"rotation" yaml:"rotation" cbor:"rotation"`
}

func (BoneTransform) Address() string { return AddrBoneTransform }

func (m BoneTransform) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrBoneTransform, transformArgs(m.Bone, m.Position, m.Rotation)...)
}

// DeviceTransform is the transform of a tracked device, identified by its
// serial. Local selects the avatar-relative form of the address.
type DeviceTransform struct {
	Device   DeviceType `json:"device" yaml:"device" cbor:"device"`
	Serial   string     `json:"serial" yaml:"serial" cbor:"serial"`
	Position Vec3       `json:"position" yaml:"position" cbor:"position"`
	Rotation Quat       `json:"rotation" yaml:"rotation" cbor:"rotation"`
	Local    bool       `json:"local" yaml:"local" cbor:"local"`
}

func (m DeviceTransform) Address() string {
	addr := "/VMC/Ext/" + string(m.Device) + "/Pos"
	if m.Local {
		addr += "/Local"
	}
	return addr
}

// OSCMessage panics if Device is not one of the known device types.
func (m DeviceTransform) OSCMessage() *osc.Message {
	switch m.Device {
	case DeviceHMD, DeviceController, DeviceTracker:
	default:
		panic("vmc: unknown device type " + string(m.Device))
	}
	return osc.NewMessage(m.Address(), transformArgs(m.Serial, m.Position, m.Rotation)...)
}

// BlendShape sets the weight of a blend shape. Values take effect on the next ApplyBlendShapes.
type BlendShape struct {
	Name  string  `json:"name" yaml:"name" cbor:"name"`
	Value float32 `json:"value" yaml:"value" cbor:"value"`
}

func (BlendShape) Address() string { return AddrBlendShape }

func (m BlendShape) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrBlendShape, osc.String(m.Name), osc.Float32(m.Value))
}

// ApplyBlendShapes commits the pending blend shape values.
type ApplyBlendShapes struct{}

func (ApplyBlendShapes) Address() string { return AddrApplyBlendShapes }

func (ApplyBlendShapes) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrApplyBlendShapes)
}

// Calibration is the calibration part of a State message. Tracking is only
// ever sent after the calibration fields.
type Calibration struct {
	Mode     CalibrationMode  `json:"mode" yaml:"mode" cbor:"mode"`
	State    CalibrationState `json:"state" yaml:"state" cbor:"state"`
	Tracking *TrackingState   `json:"tracking,omitempty" yaml:"tracking,omitempty" cbor:"tracking,omitempty"`
}

// State reports model availability and optionally calibration and tracking status.
type State struct {
	Model       ModelState   `json:"model" yaml:"model" cbor:"model"`
	Calibration *Calibration `json:"calibration,omitempty" yaml:"calibration,omitempty" cbor:"calibration,omitempty"`
}

func (State) Address() string { return AddrState }

// OSCMessage panics if any of the enum fields is out of range.
func (m State) OSCMessage() *osc.Message {
	mustValid(m.Model.valid(), "model state", int32(m.Model))
	args := []osc.Value{osc.Int32(m.Model)}
	if c := m.Calibration; c != nil {
		mustValid(c.State.valid(), "calibration state", int32(c.State))
		mustValid(c.Mode.valid(), "calibration mode", int32(c.Mode))
		args = append(args, osc.Int32(c.State), osc.Int32(c.Mode))
		if c.Tracking != nil {
			mustValid(c.Tracking.valid(), "tracking state", int32(*c.Tracking))
			args = append(args, osc.Int32(*c.Tracking))
		}
	}
	return osc.NewMessage(AddrState, args...)
}

// Time is the performer's relative time in seconds.
type Time struct {
	Seconds float32 `json:"seconds" yaml:"seconds" cbor:"seconds"`
}

func (Time) Address() string { return AddrTime }

func (m Time) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrTime, osc.Float32(m.Seconds))
}

var epoch = time.Now()

// Elapsed returns a Time holding the seconds since the process started,
// measured with the monotonic clock.
func Elapsed() Time {
	return Time{Seconds: float32(time.Since(epoch).Seconds())}
}

// CameraTransform is the position, rotation and field of view of the camera.
type CameraTransform struct {
	Name     string  `json:"name" yaml:"name" cbor:"name"`
	Position Vec3    `json:"position" yaml:"position" cbor:"position"`
	Rotation Quat    `json:"rotation" yaml:"rotation" cbor:"rotation"`
	FOV      float32 `json:"fov" yaml:"fov" cbor:"fov"`
}

func (CameraTransform) Address() string { return AddrCamera }

func (m CameraTransform) OSCMessage() *osc.Message {
	args := append(transformArgs(m.Name, m.Position, m.Rotation), osc.Float32(m.FOV))
	return osc.NewMessage(AddrCamera, args...)
}

// ControllerInput is a button or axis event from a VR controller.
type ControllerInput struct {
	Active  int32  `json:"active" yaml:"active" cbor:"active"`
	Name    string `json:"name" yaml:"name" cbor:"name"`
	IsLeft  bool   `json:"is_left" yaml:"is_left" cbor:"is_left"`
	IsTouch bool   `json:"is_touch" yaml:"is_touch" cbor:"is_touch"`
	IsAxis  bool   `json:"is_axis" yaml:"is_axis" cbor:"is_axis"`
	Axis    Vec3   `json:"axis" yaml:"axis" cbor:"axis"`
}

func (ControllerInput) Address() string { return AddrControllerInput }

func (m ControllerInput) OSCMessage() *osc.Message {
	args := []osc.Value{
		osc.Int32(m.Active),
		osc.String(m.Name),
		boolInt(m.IsLeft),
		boolInt(m.IsTouch),
		boolInt(m.IsAxis),
	}
	return osc.NewMessage(AddrControllerInput, appendVec3(args, m.Axis)...)
}

// KeyInput is a keyboard event.
type KeyInput struct {
	Active  int32  `json:"active" yaml:"active" cbor:"active"`
	Name    string `json:"name" yaml:"name" cbor:"name"`
	KeyCode int32  `json:"keycode" yaml:"keycode" cbor:"keycode"`
}

func (KeyInput) Address() string { return AddrKeyInput }

func (m KeyInput) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrKeyInput, osc.Int32(m.Active), osc.String(m.Name), osc.Int32(m.KeyCode))
}

// MidiNote is a MIDI note on or off event.
type MidiNote struct {
	Active   int32   `json:"active" yaml:"active" cbor:"active"`
	Channel  int32   `json:"channel" yaml:"channel" cbor:"channel"`
	Note     int32   `json:"note" yaml:"note" cbor:"note"`
	Velocity float32 `json:"velocity" yaml:"velocity" cbor:"velocity"`
}

func (MidiNote) Address() string { return AddrMidiNote }

func (m MidiNote) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrMidiNote, osc.Int32(m.Active), osc.Int32(m.Channel), osc.Int32(m.Note), osc.Float32(m.Velocity))
}

// MidiCCValue is the value of a MIDI control change knob.
type MidiCCValue struct {
	Knob  int32   `json:"knob" yaml:"knob" cbor:"knob"`
	Value float32 `json:"value" yaml:"value" cbor:"value"`
}

func (MidiCCValue) Address() string { return AddrMidiCCValue }

func (m MidiCCValue) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrMidiCCValue, osc.Int32(m.Knob), osc.Float32(m.Value))
}

// MidiCCButton is the state of a MIDI control change button.
type MidiCCButton struct {
	Knob   int32 `json:"knob" yaml:"knob" cbor:"knob"`
	Active int32 `json:"active" yaml:"active" cbor:"active"`
}

func (MidiCCButton) Address() string { return AddrMidiCCButton }

func (m MidiCCButton) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrMidiCCButton, osc.Int32(m.Knob), osc.Int32(m.Active))
}

// LightTransform is the transform and color of the directional light.
type LightTransform struct {
	Name     string `json:"name" yaml:"name" cbor:"name"`
	Position Vec3   `json:"position" yaml:"position" cbor:"position"`
	Rotation Quat   `json:"rotation" yaml:"rotation" cbor:"rotation"`
	Color    Color  `json:"color" yaml:"color" cbor:"color"`
}

func (LightTransform) Address() string { return AddrLight }

func (m LightTransform) OSCMessage() *osc.Message {
	args := appendColor(transformArgs(m.Name, m.Position, m.Rotation), m.Color)
	return osc.NewMessage(AddrLight, args...)
}

// BackgroundColor is the background color of the performer's window.
type BackgroundColor struct {
	Color Color `json:"color" yaml:"color" cbor:"color"`
}

func (BackgroundColor) Address() string { return AddrBackgroundColor }

func (m BackgroundColor) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrBackgroundColor, appendColor(nil, m.Color)...)
}

// WindowAttribute describes the performer's window.
type WindowAttribute struct {
	IsTopMost          int32 `json:"is_top_most" yaml:"is_top_most" cbor:"is_top_most"`
	IsTransparent      int32 `json:"is_transparent" yaml:"is_transparent" cbor:"is_transparent"`
	WindowClickThrough int32 `json:"window_click_through" yaml:"window_click_through" cbor:"window_click_through"`
	HideBorder         int32 `json:"hide_border" yaml:"hide_border" cbor:"hide_border"`
}

func (WindowAttribute) Address() string { return AddrWindowAttribute }

func (m WindowAttribute) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrWindowAttribute,
		osc.Int32(m.IsTopMost), osc.Int32(m.IsTransparent), osc.Int32(m.WindowClickThrough), osc.Int32(m.HideBorder))
}

// LoadedSettingPath is the path of the settings file loaded by the performer.
type LoadedSettingPath struct {
	Path string `json:"path" yaml:"path" cbor:"path"`
}

func (LoadedSettingPath) Address() string { return AddrLoadedSettingPath }

func (m LoadedSettingPath) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrLoadedSettingPath, osc.String(m.Path))
}

// CalibrationReady asks the performer to prepare calibration.
type CalibrationReady struct{}

func (CalibrationReady) Address() string { return AddrCalibrationReady }

func (CalibrationReady) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrCalibrationReady)
}

// CalibrationExec asks the performer to calibrate in the given mode.
type CalibrationExec struct {
	Mode CalibrationMode `json:"mode" yaml:"mode" cbor:"mode"`
}

func (CalibrationExec) Address() string { return AddrCalibrationExec }

// OSCMessage panics if Mode is out of range.
func (m CalibrationExec) OSCMessage() *osc.Message {
	mustValid(m.Mode.valid(), "calibration mode", int32(m.Mode))
	return osc.NewMessage(AddrCalibrationExec, osc.Int32(m.Mode))
}

// ConfigRequest asks the performer to load a settings file.
type ConfigRequest struct {
	Path string `json:"path" yaml:"path" cbor:"path"`
}

func (ConfigRequest) Address() string { return AddrConfigRequest }

func (m ConfigRequest) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrConfigRequest, osc.String(m.Path))
}

// SendPeriod sets how many frames the performer waits between sends of each
// message group.
type SendPeriod struct {
	Status     int32 `json:"status" yaml:"status" cbor:"status"`
	Root       int32 `json:"root" yaml:"root" cbor:"root"`
	Bone       int32 `json:"bone" yaml:"bone" cbor:"bone"`
	BlendShape int32 `json:"blend_shape" yaml:"blend_shape" cbor:"blend_shape"`
	Camera     int32 `json:"camera" yaml:"camera" cbor:"camera"`
	Devices    int32 `json:"devices" yaml:"devices" cbor:"devices"`
}

func (SendPeriod) Address() string { return AddrSendPeriod }

func (m SendPeriod) OSCMessage() *osc.Message {
	return osc.NewMessage(AddrSendPeriod,
		osc.Int32(m.Status), osc.Int32(m.Root), osc.Int32(m.Bone),
		osc.Int32(m.BlendShape), osc.Int32(m.Camera), osc.Int32(m.Devices))
}

// ReceiveEnable toggles the performer's receiver on a port. IP is optional.
type ReceiveEnable struct {
	Enable int32  `json:"enable" yaml:"enable" cbor:"enable"`
	Port   int32  `json:"port" yaml:"port" cbor:"port"`
	IP     string `json:"ip,omitempty" yaml:"ip,omitempty" cbor:"ip,omitempty"`
}

func (ReceiveEnable) Address() string { return AddrReceiveEnable }

func (m ReceiveEnable) OSCMessage() *osc.Message {
	args := []osc.Value{osc.Int32(m.Enable), osc.Int32(m.Port)}
	if m.IP != "" {
		args = append(args, osc.String(m.IP))
	}
	return osc.NewMessage(AddrReceiveEnable, args...)
}

func (RootTransform) message()     {}
func (BoneTransform) message()     {}
func (DeviceTransform) message()   {}
func (BlendShape) message()        {}
func (ApplyBlendShapes) message()  {}
func (State) message()             {}
func (Time) message()              {}
func (CameraTransform) message()   {}
func (ControllerInput) message()   {}
func (KeyInput) message()          {}
func (MidiNote) message()          {}
func (MidiCCValue) message()       {}
func (MidiCCButton) message()      {}
func (LightTransform) message()    {}
func (BackgroundColor) message()   {}
func (WindowAttribute) message()   {}
func (LoadedSettingPath) message() {}
func (CalibrationReady) message()  {}
func (CalibrationExec) message()   {}
func (ConfigRequest) message()     {}
func (SendPeriod) message()        {}
func (ReceiveEnable) message()     {}

func appendVec3(args []osc.Value, v Vec3) []osc.Value {
	return append(args, osc.Float32(v.X), osc.Float32(v.Y), osc.Float32(v.Z))
}

func appendQuat(args []osc.Value, q Quat) []osc.Value {
	return append(args, osc.Float32(q.X), osc.Float32(q.Y), osc.Float32(q.Z), osc.Float32(q.W))
}

func appendColor(args []osc.Value, c Color) []osc.Value {
	return append(args, osc.Float32(c.R), osc.Float32(c.G), osc.Float32(c.B), osc.Float32(c.A))
}

func transformArgs(name string, pos Vec3, rot Quat) []osc.Value {
	args := make([]osc.Value, 0, 13)
	args = append(args, osc.String(name))
	args = appendVec3(args, pos)
	return appendQuat(args, rot)
}

func mustValid(ok bool, name string, v int32) {
	if !ok {
		panic(fmt.Sprintf("vmc: invalid %s %d", name, v))
	}
}

func boolInt(b bool) osc.Int32 {
	if b {
		return 1
	}
	return 0
}
