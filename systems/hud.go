package systems

import (
	"fmt"
	"math"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/fonts"
	"github.com/ashreef/armlab/gamemath"
	"github.com/ashreef/armlab/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var hudLines []string

// DrawHUD renders the control hints and, when enabled, the performance panel.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	ui := cfg.UI
	face := fonts.MonoSmall.Get()
	height := screen.Bounds().Dy()

	hint := "move: aim   click/space: grab   P: monitor   esc: quit"
	text.Draw(screen, hint, face, int(ui.HUDMargin), height-int(ui.HUDMargin), ui.HintColor)

	if !GetOrCreateSettings(ecs).ShowHUD {
		return
	}

	hudLines = PerformanceLines(ecs, hudLines[:0])
	panelW := float32(300)
	panelH := float32(float64(len(hudLines))*ui.HUDLineHeight + ui.HUDMargin)
	vector.DrawFilledRect(screen,
		float32(ui.HUDMargin), float32(ui.HUDMargin),
		panelW, panelH,
		ui.HUDBgColor, false)

	mono := fonts.Mono.Get()
	for i, line := range hudLines {
		y := ui.HUDMargin*1.5 + float64(i+1)*ui.HUDLineHeight - 4
		text.Draw(screen, line, mono, int(ui.HUDMargin*2), int(y), ui.HUDTextColor)
	}
}

// PerformanceLines appends the monitor readout to dst.
func PerformanceLines(ecs *ecs.ECS, dst []string) []string {
	dst = append(dst, fmt.Sprintf("FPS %5.1f  TPS %5.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))

	if armEntry, ok := tags.Arm.First(ecs.World); ok {
		arm := components.Arm.Get(armEntry)
		state := components.State.Get(armEntry)
		a := arm.Angles
		dst = append(dst,
			fmt.Sprintf("state    %s", cfg.StateToName[state.CurrentState]),
			fmt.Sprintf("base     %7.1f°", degrees(a.Base)),
			fmt.Sprintf("shoulder %7.1f°", degrees(a.Shoulder)),
			fmt.Sprintf("elbow    %7.1f°", degrees(a.Elbow)),
			fmt.Sprintf("wrist    %7.1f°", degrees(a.WristPitch)),
			fmt.Sprintf("roll     %7.1f°", degrees(a.WristRoll)),
			"target   "+formatVec(arm.Target),
			"gripper  "+formatVec(arm.Pose.EndEffector),
		)
	}

	dst = append(dst, fmt.Sprintf("particles %d  ripples %d  sparks %d",
		countEntries(ecs.World, components.Particle),
		countEntries(ecs.World, components.Ripple),
		countEntries(ecs.World, components.Spark),
	))
	return dst
}

type eachable interface {
	Each(w donburi.World, f func(*donburi.Entry))
}

func countEntries(w donburi.World, c eachable) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func formatVec(v gamemath.Vec3) string {
	return fmt.Sprintf("(%5.2f, %5.2f, %5.2f)", v.X, v.Y, v.Z)
}
