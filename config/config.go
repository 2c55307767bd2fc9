package config

import (
	"image/color"

	"github.com/ashreef/armlab/gamemath"
)

// ArmConfig contains the rig's geometry and tracking behavior
type ArmConfig struct {
	Geometry      gamemath.ArmGeometry
	Limits        gamemath.JointLimits
	InitialAngles gamemath.JointAngles
	InitialTarget gamemath.Vec3

	// Per-tick lerp factors (0.0-1.0)
	TargetFollow float64 // target point toward projected pointer
	AnchorFollow float64 // projection plane anchor toward target point

	// Idle wrist roll
	WristRollFrequency float64 // radians per second of elapsed time
	WristRollAmplitude float64 // radians
}

// SmoothingConfig holds per-joint smoothing times in seconds
type SmoothingConfig struct {
	Base       float64
	Shoulder   float64
	Elbow      float64
	WristPitch float64
}

// GripperConfig contains grab behavior configuration
type GripperConfig struct {
	OpenTarget      float64 // jaw travel when open
	ClosedTarget    float64 // jaw travel when closed
	HoldDuration    float32 // seconds before a grab releases
	SpringFrequency float64 // angular frequency of the jaw spring
	SpringDamping   float64 // 1.0 = critically damped
}

// ParticlesConfig contains 3D grab particle configuration
type ParticlesConfig struct {
	MinCount     int
	MaxCount     int     // inclusive
	AngleJitter  float64 // radians, spread around the even ring
	MinSpeed     float64 // horizontal, world units per second
	SpeedRange   float64
	MinRise      float64 // initial vertical speed
	RiseRange    float64
	MinLife      float64 // seconds
	LifeRange    float64
	MaxLife      float64 // used for fading
	Size         float64 // world units
	Gravity      float64
	MinPixelSize float64
}

// OverlayConfig contains screen-space effect configuration
type OverlayConfig struct {
	HoverRadius float64 // pixels between pointer and gripper to count as hovering
	GlowEase    float64 // fraction of remaining glow distance covered per tick
	TrailFade   float64 // alpha removed from the overlay canvas each frame

	// Energy beam
	BeamMaxDistance float64
	BeamSteps       int
	BeamWaveAmp     float64
	BeamWidth       float32
	BeamGlowWidth   float32
	BeamMotes       int
	BeamMoteSpeed   float64 // cycles per millisecond
	BeamMoteRadius  float32

	// Gripper glow
	GlowRadius     float64
	GlowPulseSpeed float64 // radians per millisecond
	GlowMotes      int
	GlowMoteSpeed  float64 // radians per millisecond

	// Click ripples
	RippleMinRadius   float64
	RippleRadiusRange float64
	RippleGrowth      float64
	RippleDecay       float64
	RippleRings       int
	RippleRingGap     float64
	RipplePalette     []color.RGBA

	BeamColor      color.RGBA
	BeamGlowColor  color.RGBA
	GlowColor      color.RGBA
	GlowInnerColor color.RGBA
	GlowMoteColor  color.RGBA
}

// SparksConfig contains the 2D click spark burst configuration
type SparksConfig struct {
	MinCount    int
	CountRange  int
	AngleJitter float64
	MinSpeed    float64 // pixels per tick
	SpeedRange  float64
	UpwardBias  float64
	MinLife     float64 // seconds
	LifeRange   float64
	TickDecay   float64 // life lost per tick before dividing by max life
	Gravity     float64 // pixels per tick squared
	Drag        float64
	SpinRange   float64
	TrailFade   float64
	MinSize     float64
	SizeRange   float64
	Palette     []color.RGBA
}

// CameraConfig contains the fixed scene camera
type CameraConfig struct {
	Position gamemath.Vec3
	LookAt   gamemath.Vec3
	FovY     float64 // degrees
	Near     float64
	Far      float64
}

// SceneConfig contains 3D scene dressing values
type SceneConfig struct {
	BackgroundColor color.RGBA
	GridSize        float64
	GridDivisions   int
	GridColor       color.RGBA
	GridCenterColor color.RGBA
	LinkColor       color.RGBA
	LinkWidth       float64 // world units, scaled by perspective
	JointColor      color.RGBA
	JointRadius     float64
	JawColor        color.RGBA
	JawActiveColor  color.RGBA
	TargetColor     color.RGBA
	TargetSize      float64
	LaserColor      color.RGBA
	LaserGrabColor  color.RGBA

	// Link motion trails, widths in pixels at the newest sample
	TrailColor         color.RGBA
	ShoulderTrailWidth float64
	ElbowTrailWidth    float64
}

// UIConfig contains HUD and guide configuration
type UIConfig struct {
	HUDFontSize   float64
	HUDMargin     float64
	HUDLineHeight float64
	HUDTextColor  color.RGBA
	HUDBgColor    color.RGBA
	HintColor     color.RGBA

	GuideFadeSeconds float32
	GuideTitle       string
	GuideLines       []string
	GuideButton      string
}

// Config holds general program configuration
type Config struct {
	Width   int
	Height  int
	TPS     int
	AppName string
}

// DebugConfig contains command-line overrides
type DebugConfig struct {
	ShowHUD   bool  // Force the performance HUD on at startup
	SkipGuide bool  // Never show the welcome guide
	Seed      int64 // 0 = seed from the clock
}

// Global configuration instances
var C *Config
var Arm ArmConfig
var Smoothing SmoothingConfig
var Projector gamemath.ProjectorLimits
var Gripper GripperConfig
var Particles ParticlesConfig
var Overlay OverlayConfig
var Sparks SparksConfig
var Camera CameraConfig
var Scene SceneConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	OffWhite   = color.RGBA{R: 245, G: 245, B: 240, A: 255}
	Silver     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	Red        = color.RGBA{R: 255, G: 51, B: 51, A: 255}
	BrightRed  = color.RGBA{R: 255, G: 59, B: 59, A: 255}
	Blue       = color.RGBA{R: 57, G: 186, B: 230, A: 255}
	SteelBlue  = color.RGBA{R: 74, G: 144, B: 226, A: 255}
	Cyan       = color.RGBA{R: 0, G: 232, B: 198, A: 255}
	Mint       = color.RGBA{R: 0, G: 255, B: 159, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Ink        = color.RGBA{R: 10, G: 14, B: 20, A: 255}
	DarkGray   = color.RGBA{R: 19, G: 24, B: 32, A: 255}
	GridBlue   = color.RGBA{R: 26, G: 29, B: 46, A: 255}
	PanelColor = color.RGBA{R: 19, G: 24, B: 32, A: 235}
)

func init() {
	C = &Config{
		Width:   1280,
		Height:  720,
		TPS:     60,
		AppName: "armlab",
	}

	Arm = ArmConfig{
		Geometry: gamemath.ArmGeometry{
			BaseHeight:     0.5,
			ShoulderLength: 2.0,
			ElbowLength:    1.5,
			WristLength:    0.8,
			GripperLength:  0.4,
		},
		Limits: gamemath.DefaultJointLimits(),
		InitialAngles: gamemath.JointAngles{
			Shoulder: 0.5,
			Elbow:    -0.5,
		},
		InitialTarget: gamemath.V3(0, 2, 3),

		TargetFollow: 0.25,
		AnchorFollow: 0.15,

		WristRollFrequency: 2,
		WristRollAmplitude: 0.2,
	}

	Smoothing = SmoothingConfig{
		Base:       0.10,
		Shoulder:   0.15,
		Elbow:      0.15,
		WristPitch: 0.10,
	}

	Projector = gamemath.DefaultProjectorLimits()

	Gripper = GripperConfig{
		OpenTarget:      0,
		ClosedTarget:    0.3,
		HoldDuration:    0.5,
		SpringFrequency: 20,
		SpringDamping:   1.0,
	}

	Particles = ParticlesConfig{
		MinCount:     15,
		MaxCount:     25,
		AngleJitter:  0.3,
		MinSpeed:     2,
		SpeedRange:   2,
		MinRise:      2,
		RiseRange:    3,
		MinLife:      1.0,
		LifeRange:    0.5,
		MaxLife:      1.5,
		Size:         0.1,
		Gravity:      9.8,
		MinPixelSize: 1.5,
	}

	Overlay = OverlayConfig{
		HoverRadius: 100,
		GlowEase:    0.1,
		TrailFade:   0.3,

		BeamMaxDistance: 500,
		BeamSteps:       20,
		BeamWaveAmp:     5,
		BeamWidth:       2,
		BeamGlowWidth:   6,
		BeamMotes:       5,
		BeamMoteSpeed:   0.002,
		BeamMoteRadius:  3,

		GlowRadius:     40,
		GlowPulseSpeed: 0.005,
		GlowMotes:      3,
		GlowMoteSpeed:  0.003,

		RippleMinRadius:   100,
		RippleRadiusRange: 50,
		RippleGrowth:      0.1,
		RippleDecay:       0.02,
		RippleRings:       3,
		RippleRingGap:     20,
		RipplePalette:     []color.RGBA{OffWhite, Red, Blue, BrightRed},

		BeamColor:      Cyan,
		BeamGlowColor:  Blue,
		GlowColor:      Cyan,
		GlowInnerColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		GlowMoteColor:  Mint,
	}

	Sparks = SparksConfig{
		MinCount:    30,
		CountRange:  20,
		AngleJitter: 0.5,
		MinSpeed:    2,
		SpeedRange:  4,
		UpwardBias:  1,
		MinLife:     0.5,
		LifeRange:   0.5,
		TickDecay:   0.016,
		Gravity:     0.15,
		Drag:        0.98,
		SpinRange:   0.2,
		TrailFade:   0.1,
		MinSize:     2,
		SizeRange:   4,
		Palette:     []color.RGBA{Silver, Red, Blue, OffWhite, BrightRed},
	}

	Camera = CameraConfig{
		Position: gamemath.V3(6, 4, 6),
		LookAt:   gamemath.V3(0, 1.5, 0),
		FovY:     50,
		Near:     0.1,
		Far:      1000,
	}

	Scene = SceneConfig{
		BackgroundColor: Ink,
		GridSize:        20,
		GridDivisions:   20,
		GridColor:       GridBlue,
		GridCenterColor: OffWhite,
		LinkColor:       OffWhite,
		LinkWidth:       0.12,
		JointColor:      SteelBlue,
		JointRadius:     0.15,
		JawColor:        OffWhite,
		JawActiveColor:  BrightRed,
		TargetColor:     Magenta,
		TargetSize:      0.2,
		LaserColor:      color.RGBA{R: 245, G: 245, B: 240, A: 90},
		LaserGrabColor:  color.RGBA{R: 255, G: 59, B: 59, A: 200},

		TrailColor:         OffWhite,
		ShoulderTrailWidth: 6,
		ElbowTrailWidth:    5,
	}

	UI = UIConfig{
		HUDFontSize:   13,
		HUDMargin:     12,
		HUDLineHeight: 16,
		HUDTextColor:  OffWhite,
		HUDBgColor:    color.RGBA{R: 0, G: 0, B: 0, A: 150},
		HintColor:     color.RGBA{R: 245, G: 245, B: 240, A: 140},

		GuideFadeSeconds: 0.4,
		GuideTitle:       "WELCOME TO THE LAB",
		GuideLines: []string{
			"Move the pointer: the arm follows it.",
			"Click or tap: the gripper grabs.",
			"P: toggle the performance monitor.",
			"Esc: quit.",
		},
		GuideButton: "GOT IT",
	}

	Debug = DebugConfig{
		ShowHUD:   false,
		SkipGuide: false,
		Seed:      0,
	}
}
