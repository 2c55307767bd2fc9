package gamemath

import "math"

// UnreachableRatio is the fraction of total reach beyond which the solver
// stops bending the arm and points it straight at the target instead.
const UnreachableRatio = 0.95

// ArmGeometry holds the segment lengths of the arm. Immutable per session.
type ArmGeometry struct {
	BaseHeight     float64
	ShoulderLength float64
	ElbowLength    float64
	WristLength    float64
	GripperLength  float64
}

// Reach is the maximum distance from the shoulder joint the wrist can extend.
func (g ArmGeometry) Reach() float64 {
	return g.ShoulderLength + g.ElbowLength + g.WristLength
}

// JointAngles holds one rotation per joint, in radians.
type JointAngles struct {
	Base       float64 // yaw about the vertical axis
	Shoulder   float64 // elevation of the upper arm above the floor plane
	Elbow      float64 // bend relative to the upper arm (negative = folded)
	WristPitch float64 // pitch relative to the forearm
	WristRoll  float64 // decorative; not driven by Solve
}

// JointLimit is an inclusive rotation range.
type JointLimit struct {
	Min, Max float64
}

func (l JointLimit) Clamp(v float64) float64 {
	return Clamp(v, l.Min, l.Max)
}

func (l JointLimit) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

// JointLimits holds the hard limits for every joint.
type JointLimits struct {
	Base       JointLimit
	Shoulder   JointLimit
	Elbow      JointLimit
	WristPitch JointLimit
	WristRoll  JointLimit
}

// DefaultJointLimits returns the stock limits of the rig.
func DefaultJointLimits() JointLimits {
	return JointLimits{
		Base:       JointLimit{Min: -math.Pi * 2, Max: math.Pi * 2},
		Shoulder:   JointLimit{Min: -math.Pi / 2, Max: math.Pi / 2},
		Elbow:      JointLimit{Min: -math.Pi * 0.8, Max: math.Pi * 0.1},
		WristPitch: JointLimit{Min: -math.Pi / 2, Max: math.Pi / 2},
		WristRoll:  JointLimit{Min: -math.Pi, Max: math.Pi},
	}
}

// Clamp forces every angle into its limit range.
func (l JointLimits) Clamp(a JointAngles) JointAngles {
	return JointAngles{
		Base:       l.Base.Clamp(a.Base),
		Shoulder:   l.Shoulder.Clamp(a.Shoulder),
		Elbow:      l.Elbow.Clamp(a.Elbow),
		WristPitch: l.WristPitch.Clamp(a.WristPitch),
		WristRoll:  l.WristRoll.Clamp(a.WristRoll),
	}
}

// Solve computes joint angles that bring the wrist to target.
//
// The base always yaws to face the target. The remaining joints are solved as
// a planar two-link problem in the vertical plane through base and target:
// link one is the upper arm, link two is forearm plus wrist. Targets further
// than UnreachableRatio of the reach get a straight arm aimed at them. The
// wrist pitch cancels shoulder and elbow so the gripper stays level.
//
// Solve is pure and its result always lies within limits.
func Solve(target Vec3, geom ArmGeometry, limits JointLimits, prev JointAngles) JointAngles {
	result := prev
	result.Base = math.Atan2(target.X, target.Z)

	distXZ := target.LenXZ()
	height := target.Y - geom.BaseHeight
	dist := math.Hypot(distXZ, height)
	elevation := math.Atan2(height, distXZ)

	if dist > geom.Reach()*UnreachableRatio {
		result.Shoulder = elevation
		result.Elbow = 0
		result.WristPitch = 0
		return limits.Clamp(result)
	}

	l1 := geom.ShoulderLength
	l2 := geom.ElbowLength + geom.WristLength
	if dist < 1e-9 {
		dist = 1e-9
	}

	cosElbow := (l1*l1 + l2*l2 - dist*dist) / (2 * l1 * l2)
	result.Elbow = -(math.Pi - math.Acos(Clamp(cosElbow, -1, 1)))

	cosShoulder := (l1*l1 + dist*dist - l2*l2) / (2 * l1 * dist)
	result.Shoulder = elevation + math.Acos(Clamp(cosShoulder, -1, 1))

	result.WristPitch = -(result.Shoulder + result.Elbow)

	return limits.Clamp(result)
}
