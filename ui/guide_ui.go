package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/ashreef/armlab/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gomono"
)

// GuideUI is the welcome panel shown until the user dismisses it
type GuideUI struct {
	UI *ebitenui.UI

	// Called once, when the panel is dismissed
	OnDismiss func()

	open  bool
	fade  *gween.Tween
	alpha float32

	canvas   *ebiten.Image
	canvasOp ebiten.DrawImageOptions

	titleFace  text.Face
	normalFace text.Face
}

// NewGuideUI creates an open guide panel
func NewGuideUI(onDismiss func()) *GuideUI {
	g := &GuideUI{
		OnDismiss: onDismiss,
		open:      true,
		fade:      gween.New(0, 1, cfg.UI.GuideFadeSeconds, ease.OutQuad),
	}

	g.loadFonts()
	g.buildUI()

	return g
}

func (g *GuideUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		panic(err)
	}

	g.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	g.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (g *GuideUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 18, Bottom: 18, Left: 24, Right: 24}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.HUDBgColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.UI.GuideTitle, &g.titleFace, &widget.LabelColor{
			Idle: cfg.Cyan,
		}),
	))

	for _, line := range cfg.UI.GuideLines {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &g.normalFace, &widget.LabelColor{
				Idle: cfg.UI.HUDTextColor,
			}),
		))
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(cfg.UI.GuideButton, &g.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.Dismiss()
		}),
	))

	rootContainer.AddChild(panel)

	g.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{0, 120, 104, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{0, 160, 138, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{0, 90, 78, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// IsOpen reports whether the panel is still shown
func (g *GuideUI) IsOpen() bool {
	return g.open
}

// Dismiss closes the panel and fires OnDismiss. Further calls are no-ops.
func (g *GuideUI) Dismiss() {
	if !g.open {
		return
	}
	g.open = false
	if g.OnDismiss != nil {
		g.OnDismiss()
	}
}

// Update advances the fade-in and forwards input to ebitenui
func (g *GuideUI) Update() {
	if !g.open {
		return
	}
	if g.fade != nil {
		var done bool
		g.alpha, done = g.fade.Update(1 / float32(ebiten.TPS()))
		if done {
			g.fade = nil
		}
	}
	g.UI.Update()
}

// Draw renders the panel onto screen at its current fade level
func (g *GuideUI) Draw(screen *ebiten.Image) {
	if !g.open {
		return
	}
	b := screen.Bounds()
	if g.canvas == nil || g.canvas.Bounds() != b {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.canvas.Clear()
	g.UI.Draw(g.canvas)

	g.canvasOp.ColorScale.Reset()
	g.canvasOp.ColorScale.ScaleAlpha(g.alpha)
	screen.DrawImage(g.canvas, &g.canvasOp)
}

// Close releases the offscreen canvas
func (g *GuideUI) Close() {
	if g.canvas != nil {
		g.canvas.Deallocate()
		g.canvas = nil
	}
}
