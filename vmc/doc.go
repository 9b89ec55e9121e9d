// Package vmc implements the Virtual Motion Capture protocol on top of package osc.
//
// A performer streams avatar tracking data (bone transforms, blend shapes,
// device transforms, timing and state) to a marionette over UDP. Every VMC
// message type is bound to one OSC address and a fixed argument signature;
// FromOSC and ToOSC convert between the two forms and Parse turns a whole
// datagram into one Outcome per contained message.
//
// Sending:
//
//	p, err := vmc.DialPerformer(vmc.DefaultAddr)
//	if err != nil {
//		return err
//	}
//	defer p.Close()
//	err = p.Send(ctx, vmc.BlendShape{Name: vmc.BlendShapeJoy, Value: 1})
//
// Receiving:
//
//	m, err := vmc.ListenMarionette(vmc.DefaultAddr)
//	if err != nil {
//		return err
//	}
//	defer m.Close()
//	for o, err := range m.Messages(ctx) {
//		if err != nil {
//			continue
//		}
//		if bone, ok := o.Message.(vmc.BoneTransform); ok {
//			fmt.Println(bone.Bone, bone.Position, bone.Rotation)
//		}
//	}
//
// Messages whose address is not part of the catalog are reported as
// Unrecognized outcomes and never cause an error.
package vmc
