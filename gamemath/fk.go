package gamemath

// GripperOpenWidth is the half-gap between the jaws when fully open.
const GripperOpenWidth = 0.15

// Frame is an orthonormal coordinate frame. Links extend along +Z, pitch
// turns about X, and Y is the frame's up.
type Frame struct {
	Origin  Vec3
	X, Y, Z Vec3
}

// WorldFrame is the identity frame at the world origin.
func WorldFrame() Frame {
	return Frame{
		X: Vec3{X: 1},
		Y: Vec3{Y: 1},
		Z: Vec3{Z: 1},
	}
}

// Yaw turns the frame about its own Y axis.
func (f Frame) Yaw(angle float64) Frame {
	f.X = f.X.Rotate(f.Y, angle)
	f.Z = f.Z.Rotate(f.Y, angle)
	return f
}

// Pitch tilts the frame's Z axis upward by angle.
func (f Frame) Pitch(angle float64) Frame {
	f.Y = f.Y.Rotate(f.X, -angle)
	f.Z = f.Z.Rotate(f.X, -angle)
	return f
}

// Roll spins the frame about its own Z axis.
func (f Frame) Roll(angle float64) Frame {
	f.X = f.X.Rotate(f.Z, angle)
	f.Y = f.Y.Rotate(f.Z, angle)
	return f
}

// Forward moves the origin along Z.
func (f Frame) Forward(d float64) Frame {
	f.Origin = f.Origin.Add(f.Z.Scale(d))
	return f
}

// Lift moves the origin along Y.
func (f Frame) Lift(d float64) Frame {
	f.Origin = f.Origin.Add(f.Y.Scale(d))
	return f
}

// Local converts a point in frame coordinates to world coordinates.
func (f Frame) Local(x, y, z float64) Vec3 {
	return f.Origin.
		Add(f.X.Scale(x)).
		Add(f.Y.Scale(y)).
		Add(f.Z.Scale(z))
}

// ArmPose is the world-space layout of the arm for one set of angles.
type ArmPose struct {
	Base        Vec3
	Shoulder    Vec3
	Elbow       Vec3
	Wrist       Vec3
	WristRoll   Vec3
	EndEffector Vec3
	JawLeft     Vec3
	JawRight    Vec3
	Gripper     Frame
}

// Chain returns joint positions from the base to the end effector.
func (p ArmPose) Chain() []Vec3 {
	return []Vec3{p.Base, p.Shoulder, p.Elbow, p.Wrist, p.WristRoll, p.EndEffector}
}

// ForwardKinematics walks the joint hierarchy and returns world positions for
// every joint. gripperClose is how far each jaw has moved in from open.
func ForwardKinematics(geom ArmGeometry, angles JointAngles, gripperClose float64) ArmPose {
	var pose ArmPose

	f := WorldFrame().Yaw(angles.Base)
	pose.Base = f.Origin

	f = f.Lift(geom.BaseHeight).Pitch(angles.Shoulder)
	pose.Shoulder = f.Origin

	f = f.Forward(geom.ShoulderLength).Pitch(angles.Elbow)
	pose.Elbow = f.Origin

	f = f.Forward(geom.ElbowLength).Pitch(angles.WristPitch)
	pose.Wrist = f.Origin

	f = f.Forward(geom.WristLength).Roll(angles.WristRoll)
	pose.WristRoll = f.Origin
	pose.Gripper = f

	half := GripperOpenWidth - gripperClose
	pose.EndEffector = f.Local(0, 0, geom.GripperLength/2)
	pose.JawLeft = f.Local(-half, 0, geom.GripperLength*0.75)
	pose.JawRight = f.Local(half, 0, geom.GripperLength*0.75)

	return pose
}
