package components

import (
	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi"
)

// ArmData is the arm's owned per-frame state.
type ArmData struct {
	Geometry gamemath.ArmGeometry
	Limits   gamemath.JointLimits

	Angles   gamemath.JointAngles // smoothed, what gets rendered
	Raw      gamemath.JointAngles // last solver output
	Velocity gamemath.JointAngles // smoother velocity per joint

	Target gamemath.Vec3 // where the wrist is heading
	Anchor gamemath.Vec3 // point the pointer projection plane passes through

	Pose gamemath.ArmPose

	// Motion trails behind the upper arm and forearm links.
	ShoulderTrail TrailData
	ElbowTrail    TrailData
}

var Arm = donburi.NewComponentType[ArmData]()
