package main

import (
	"fmt"
	"image"
	"os"

	"github.com/ashreef/armlab/config"
	"github.com/ashreef/armlab/fonts"
	"github.com/ashreef/armlab/scenes"
	"github.com/ashreef/armlab/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Resizer is implemented by scenes that track the viewport size
type Resizer interface {
	Resize(width, height int)
}

// Closer is implemented by scenes holding subscriptions or timers
type Closer interface {
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene, closing the current one
func (g *Game) ChangeScene(scene interface{}) {
	if c, ok := g.scene.(Closer); ok {
		c.Close()
	}
	g.scene = scene.(Scene)
	if r, ok := g.scene.(Resizer); ok && !g.bounds.Empty() {
		r.Resize(g.bounds.Dx(), g.bounds.Dy())
	}
}

// Quit ends the run loop after the current tick
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(settings systems.SavedSettings) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArmScene(g, settings.ToSettingsData())

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		if c, ok := g.scene.(Closer); ok {
			c.Close()
		}
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		width, height = config.C.Width, config.C.Height
	}
	g.bounds = image.Rect(0, 0, width, height)
	if r, ok := g.scene.(Resizer); ok {
		r.Resize(width, height)
	}
	return width, height
}

func run() error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("armlab")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		zap.L().Warn("persistence unavailable, settings will not be saved", zap.Error(err))
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		zap.L().Warn("could not load settings, using defaults", zap.Error(err))
	}

	game, err := NewGame(saved)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "armlab",
		Short: "Interactive robotic arm lab",
		Long: `armlab - Interactive robotic arm lab

A five-joint arm follows the pointer with inverse kinematics.

Controls:
  Move        - Aim the gripper
  Click/Space - Grab
  P           - Toggle performance monitor
  Enter       - Dismiss the guide
  Esc         - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().BoolVar(&config.Debug.ShowHUD, "hud", config.Debug.ShowHUD, "Show the performance monitor at startup")
	cmd.Flags().Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "Effects random seed (0 = time based)")
	cmd.Flags().BoolVar(&config.Debug.SkipGuide, "skip-guide", config.Debug.SkipGuide, "Never show the welcome guide")
	cmd.Flags().IntVar(&config.C.Width, "width", config.C.Width, "Initial window width")
	cmd.Flags().IntVar(&config.C.Height, "height", config.C.Height, "Initial window height")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
