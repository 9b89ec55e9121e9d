package vmc

import "fmt"

// Vec3 is a position, scale or offset in Unity's left-handed coordinate system.
type Vec3 struct {
	X float32 `json:"x" yaml:"x" cbor:"x"`
	Y float32 `json:"y" yaml:"y" cbor:"y"`
	Z float32 `json:"z" yaml:"z" cbor:"z"`
}

// Quat is a rotation quaternion.
type Quat struct {
	X float32 `json:"x" yaml:"x" cbor:"x"`
	Y float32 `json:"y" yaml:"y" cbor:"y"`
	Z float32 `json:"z" yaml:"z" cbor:"z"`
	W float32 `json:"w" yaml:"w" cbor:"w"`
}

// IdentityQuat is the rotation that leaves orientation unchanged.
var IdentityQuat = Quat{W: 1}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float32 `json:"r" yaml:"r" cbor:"r"`
	G float32 `json:"g" yaml:"g" cbor:"g"`
	B float32 `json:"b" yaml:"b" cbor:"b"`
	A float32 `json:"a" yaml:"a" cbor:"a"`
}

// ModelState is the loading state of the avatar on the sender's side.
type ModelState int32

const (
	// ModelNotLoaded means the model is not loaded yet or is loading.
	ModelNotLoaded ModelState = 0
	// ModelLoaded means the model is loaded and tracking can start.
	ModelLoaded ModelState = 1
)

func (s ModelState) String() string {
	switch s {
	case ModelNotLoaded:
		return "NotLoaded"
	case ModelLoaded:
		return "Loaded"
	}
	return fmt.Sprintf("ModelState(%d)", int32(s))
}

func (s ModelState) valid() bool { return s == ModelNotLoaded || s == ModelLoaded }

// CalibrationState is the progress of tracking calibration.
type CalibrationState int32

const (
	Uncalibrated          CalibrationState = 0
	WaitingForCalibration CalibrationState = 1
	Calibrating           CalibrationState = 2
	Calibrated            CalibrationState = 3
)

func (s CalibrationState) String() string {
	switch s {
	case Uncalibrated:
		return "Uncalibrated"
	case WaitingForCalibration:
		return "WaitingForCalibration"
	case Calibrating:
		return "Calibrating"
	case Calibrated:
		return "Calibrated"
	}
	return fmt.Sprintf("CalibrationState(%d)", int32(s))
}

func (s CalibrationState) valid() bool { return s >= Uncalibrated && s <= Calibrated }

// CalibrationMode selects how the performer calibrates.
type CalibrationMode int32

const (
	CalibrationNormal            CalibrationMode = 0
	CalibrationMixedRealityHand  CalibrationMode = 1
	CalibrationMixedRealityFloor CalibrationMode = 2
)

func (m CalibrationMode) String() string {
	switch m {
	case CalibrationNormal:
		return "Normal"
	case CalibrationMixedRealityHand:
		return "MixedRealityHand"
	case CalibrationMixedRealityFloor:
		return "MixedRealityFloor"
	}
	return fmt.Sprintf("CalibrationMode(%d)", int32(m))
}

func (m CalibrationMode) valid() bool {
	return m >= CalibrationNormal && m <= CalibrationMixedRealityFloor
}

// TrackingState is the quality of tracking.
type TrackingState int32

const (
	// TrackingPoor is reported at the edge of the camera's view or in poor lighting.
	TrackingPoor TrackingState = 0
	TrackingGood TrackingState = 1
)

func (s TrackingState) String() string {
	switch s {
	case TrackingPoor:
		return "Poor"
	case TrackingGood:
		return "Good"
	}
	return fmt.Sprintf("TrackingState(%d)", int32(s))
}

func (s TrackingState) valid() bool { return s == TrackingPoor || s == TrackingGood }

// DeviceType is the kind of tracked device in a DeviceTransform.
type DeviceType string

const (
	DeviceHMD        DeviceType = "Hmd"
	DeviceController DeviceType = "Con"
	DeviceTracker    DeviceType = "Tra"
)
