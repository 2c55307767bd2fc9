package factory

import (
	"github.com/ashreef/armlab/archetypes"
	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArm spawns the arm in its rest pose with the gripper open.
func CreateArm(ecs *ecs.ECS) *donburi.Entry {
	arm := archetypes.Arm.Spawn(ecs)

	geom := cfg.Arm.Geometry
	angles := cfg.Arm.Limits.Clamp(cfg.Arm.InitialAngles)

	components.Arm.SetValue(arm, components.ArmData{
		Geometry: geom,
		Limits:   cfg.Arm.Limits,
		Angles:   angles,
		Raw:      angles,
		Target:   cfg.Arm.InitialTarget,
		Anchor:   cfg.Arm.InitialTarget,
		Pose:     gamemath.ForwardKinematics(geom, angles, cfg.Gripper.OpenTarget),
	})
	components.Gripper.SetValue(arm, components.GripperData{
		Current: cfg.Gripper.OpenTarget,
		Target:  cfg.Gripper.OpenTarget,
	})
	components.State.SetValue(arm, components.StateData{
		CurrentState:  cfg.Tracking,
		PreviousState: cfg.StateNone,
	})

	return arm
}
