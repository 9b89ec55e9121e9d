package vmc

// Humanoid bone names of the VRM 0.x specification.
const (
	BoneHips                    = "Hips"
	BoneLeftUpperLeg            = "LeftUpperLeg"
	BoneRightUpperLeg           = "RightUpperLeg"
	BoneLeftLowerLeg            = "LeftLowerLeg"
	BoneRightLowerLeg           = "RightLowerLeg"
	BoneLeftFoot                = "LeftFoot"
	BoneRightFoot               = "RightFoot"
	BonePelvis                  = "Pelvis"
	BoneSpine                   = "Spine"
	BoneChest                   = "Chest"
	BoneUpperChest              = "UpperChest"
	BoneNeck                    = "Neck"
	BoneHead                    = "Head"
	BoneLeftShoulder            = "LeftShoulder"
	BoneRightShoulder           = "RightShoulder"
	BoneLeftUpperArm            = "LeftUpperArm"
	BoneRightUpperArm           = "RightUpperArm"
	BoneLeftLowerArm            = "LeftLowerArm"
	BoneRightLowerArm           = "RightLowerArm"
	BoneLeftHand                = "LeftHand"
	BoneRightHand               = "RightHand"
	BoneLeftToes                = "LeftToes"
	BoneRightToes               = "RightToes"
	BoneLeftEye                 = "LeftEye"
	BoneRightEye                = "RightEye"
	BoneJaw                     = "Jaw"
	BoneLeftThumbProximal       = "LeftThumbProximal"
	BoneLeftThumbIntermediate   = "LeftThumbIntermediate"
	BoneLeftThumbDistal         = "LeftThumbDistal"
	BoneLeftIndexProximal       = "LeftIndexProximal"
	BoneLeftIndexIntermediate   = "LeftIndexIntermediate"
	BoneLeftIndexDistal         = "LeftIndexDistal"
	BoneLeftMiddleProximal      = "LeftMiddleProximal"
	BoneLeftMiddleIntermediate  = "LeftMiddleIntermediate"
	BoneLeftMiddleDistal        = "LeftMiddleDistal"
	BoneLeftRingProximal        = "LeftRingProximal"
	BoneLeftRingIntermediate    = "LeftRingIntermediate"
	BoneLeftRingDistal          = "LeftRingDistal"
	BoneLeftLittleProximal      = "LeftLittleProximal"
	BoneLeftLittleIntermediate  = "LeftLittleIntermediate"
	BoneLeftLittleDistal        = "LeftLittleDistal"
	BoneRightThumbProximal      = "RightThumbProximal"
	BoneRightThumbIntermediate  = "RightThumbIntermediate"
	BoneRightThumbDistal        = "RightThumbDistal"
	BoneRightIndexProximal      = "RightIndexProximal"
	BoneRightIndexIntermediate  = "RightIndexIntermediate"
	BoneRightIndexDistal        = "RightIndexDistal"
	BoneRightMiddleProximal     = "RightMiddleProximal"
	BoneRightMiddleIntermediate = "RightMiddleIntermediate"
	BoneRightMiddleDistal       = "RightMiddleDistal"
	BoneRightRingProximal       = "RightRingProximal"
	BoneRightRingIntermediate   = "RightRingIntermediate"
	BoneRightRingDistal         = "RightRingDistal"
	BoneRightLittleProximal     = "RightLittleProximal"
	BoneRightLittleIntermediate = "RightLittleIntermediate"
	BoneRightLittleDistal       = "RightLittleDistal"
)

// Preset blend shape names of the VRM 0.x specification.
const (
	BlendShapeNeutral   = "Neutral"
	BlendShapeA         = "A"
	BlendShapeI         = "I"
	BlendShapeU         = "U"
	BlendShapeE         = "E"
	BlendShapeO         = "O"
	BlendShapeBlink     = "Blink"
	BlendShapeJoy       = "Joy"
	BlendShapeAngry     = "Angry"
	BlendShapeSorrow    = "Sorrow"
	BlendShapeFun       = "Fun"
	BlendShapeLookUp    = "LookUp"
	BlendShapeLookDown  = "LookDown"
	BlendShapeLookLeft  = "LookLeft"
	BlendShapeLookRight = "LookRight"
	BlendShapeBlinkL    = "Blink_L"
	BlendShapeBlinkR    = "Blink_R"
)

var standardBones = map[string]struct{}{
	BoneHips:                    {},
	BoneLeftUpperLeg:            {},
	BoneRightUpperLeg:           {},
	BoneLeftLowerLeg:            {},
	BoneRightLowerLeg:           {},
	BoneLeftFoot:                {},
	BoneRightFoot:               {},
	BonePelvis:                  {},
	BoneSpine:                   {},
	BoneChest:                   {},
	BoneUpperChest:              {},
	BoneNeck:                    {},
	BoneHead:                    {},
	BoneLeftShoulder:            {},
	BoneRightShoulder:           {},
	BoneLeftUpperArm:            {},
	BoneRightUpperArm:           {},
	BoneLeftLowerArm:            {},
	BoneRightLowerArm:           {},
	BoneLeftHand:                {},
	BoneRightHand:               {},
	BoneLeftToes:                {},
	BoneRightToes:               {},
	BoneLeftEye:                 {},
	BoneRightEye:                {},
	BoneJaw:                     {},
	BoneLeftThumbProximal:       {},
	BoneLeftThumbIntermediate:   {},
	BoneLeftThumbDistal:         {},
	BoneLeftIndexProximal:       {},
	BoneLeftIndexIntermediate:   {},
	BoneLeftIndexDistal:         {},
	BoneLeftMiddleProximal:      {},
	BoneLeftMiddleIntermediate:  {},
	BoneLeftMiddleDistal:        {},
	BoneLeftRingProximal:        {},
	BoneLeftRingIntermediate:    {},
	BoneLeftRingDistal:          {},
	BoneLeftLittleProximal:      {},
	BoneLeftLittleIntermediate:  {},
	BoneLeftLittleDistal:        {},
	BoneRightThumbProximal:      {},
	BoneRightThumbIntermediate:  {},
	BoneRightThumbDistal:        {},
	BoneRightIndexProximal:      {},
	BoneRightIndexIntermediate:  {},
	BoneRightIndexDistal:        {},
	BoneRightMiddleProximal:     {},
	BoneRightMiddleIntermediate: {},
	BoneRightMiddleDistal:       {},
	BoneRightRingProximal:       {},
	BoneRightRingIntermediate:   {},
	BoneRightRingDistal:         {},
	BoneRightLittleProximal:     {},
	BoneRightLittleIntermediate: {},
	BoneRightLittleDistal:       {},
}

var standardBlendShapes = map[string]struct{}{
	BlendShapeNeutral:   {},
	BlendShapeA:         {},
	BlendShapeI:         {},
	BlendShapeU:         {},
	BlendShapeE:         {},
	BlendShapeO:         {},
	BlendShapeBlink:     {},
	BlendShapeJoy:       {},
	BlendShapeAngry:     {},
	BlendShapeSorrow:    {},
	BlendShapeFun:       {},
	BlendShapeLookUp:    {},
	BlendShapeLookDown:  {},
	BlendShapeLookLeft:  {},
	BlendShapeLookRight: {},
	BlendShapeBlinkL:    {},
	BlendShapeBlinkR:    {},
}

// IsStandardBone reports whether name is a VRM 0.x humanoid bone. Bone
// transforms with other names are still valid; models may define extra bones.
func IsStandardBone(name string) bool {
	_, ok := standardBones[name]
	return ok
}

// IsStandardBlendShape reports whether name is a VRM 0.x preset blend shape.
func IsStandardBlendShape(name string) bool {
	_, ok := standardBlendShapes[name]
	return ok
}
