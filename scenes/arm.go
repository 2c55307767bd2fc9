package scenes

import (
	"sync"

	"github.com/ashreef/armlab/components"
	cfg "github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/systems"
	factory2 "github.com/ashreef/armlab/systems/factory"
	"github.com/ashreef/armlab/tags"
	"github.com/ashreef/armlab/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArmScene is the interactive arm lab: the arm follows the pointer and grabs
// on click while the overlay draws effects on top.
type ArmScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     components.SettingsData
	guide        *ui.GuideUI
	once         sync.Once
	closed       bool

	width, height int
}

// NewArmScene creates the arm scene with the persisted preferences
func NewArmScene(sc SceneChanger, settings components.SettingsData) *ArmScene {
	return &ArmScene{
		sceneChanger: sc,
		settings:     settings,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
	}
}

func (as *ArmScene) Update() {
	as.once.Do(as.configure)
	if as.closed {
		return
	}

	input := systems.GetInput(as.ecs)
	input.Captured = as.guide != nil && as.guide.IsOpen()

	as.ecs.Update()

	if as.guide != nil {
		if systems.GetAction(input, cfg.ActionDismiss).JustPressed {
			as.guide.Dismiss()
		}
		as.guide.Update()
		if !as.guide.IsOpen() {
			as.guide.Close()
			as.guide = nil
		}
	}

	if systems.QuitRequested(as.ecs) {
		as.Close()
		as.sceneChanger.Quit()
	}
}

func (as *ArmScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		screen.Fill(cfg.Scene.BackgroundColor)
		return
	}
	as.ecs.Draw(screen)
	if as.guide != nil {
		as.guide.Draw(screen)
	}
}

// Resize adapts the camera and overlay to a new viewport. Repeating the same
// size is a no-op.
func (as *ArmScene) Resize(width, height int) {
	as.width, as.height = width, height
	if as.ecs == nil || as.closed {
		return
	}
	systems.ResizeViewport(as.ecs, width, height)
}

// Close unsubscribes the scene's event handlers and drops pending timers.
func (as *ArmScene) Close() {
	if as.ecs == nil || as.closed {
		return
	}
	as.closed = true
	systems.UnsubscribeEvents(as.ecs.World)

	tags.Arm.Each(as.ecs.World, func(e *donburi.Entry) {
		components.Gripper.Get(e).Hold = nil
	})
	if as.guide != nil {
		as.guide.Close()
		as.guide = nil
	}
}

func (as *ArmScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock and input first so every later system sees this tick's state
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddSystem(systems.UpdateArm)
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.UpdateParticles)
	ecs.AddSystem(systems.UpdateSparks)
	ecs.AddSystem(systems.UpdateOverlay)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawSparks)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs

	factory2.CreateClock(as.ecs)
	factory2.CreateRandom(as.ecs, cfg.Debug.Seed)

	settings := as.settings
	if cfg.Debug.ShowHUD {
		settings.ShowHUD = true
	}
	factory2.CreateSettings(as.ecs, settings)

	factory2.CreateCamera(as.ecs, float64(as.width), float64(as.height))
	spaceEntry := factory2.CreateSpace(as.ecs, as.width, as.height, systems.SpaceCellSize, systems.SpaceCellSize)
	factory2.CreateOverlay(as.ecs, components.Space.Get(spaceEntry))
	factory2.CreateArm(as.ecs)

	systems.SubscribeEvents(as.ecs.World)

	if !settings.GuideSeen && !cfg.Debug.SkipGuide {
		as.guide = ui.NewGuideUI(func() {
			systems.MarkGuideSeen(as.ecs)
		})
	}
}
