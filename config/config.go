package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer used for all draw systems.
const Default = ecs.LayerDefault

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per second)
	Speed     float64
	JumpForce float64
	Gravity   float64

	// DeathMargin is how far below the level bottom the kill height sits
	DeathMargin float64

	// Dimensions
	Width  float64
	Height float64

	Color color.RGBA
}

// PhysicsConfig contains simulation-wide physics configuration
type PhysicsConfig struct {
	// Delta is the fixed timestep of one simulation frame
	Delta float64

	// Gravity applied to enemies that fall (pixels per second squared)
	EnemyGravity float64
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64
	Zoom            float64
}

// MenuConfig contains main menu layout and colors
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColorNormal color.RGBA
	TextColorActive color.RGBA
	Title           string
	TitleY          float64
	MenuStartY      float64
	MenuItemHeight  float64
}

// FlashConfig contains the respawn flash overlay tuning
type FlashConfig struct {
	StartAlpha float32
	Duration   float32
	Color      color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Menu MenuConfig
var Flash FlashConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red         = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green       = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	Blue        = color.RGBA{R: 100, G: 100, B: 250, A: 255}
	Grey        = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Sand        = color.RGBA{R: 210, G: 180, B: 120, A: 255}
	Background  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackShroud = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Alien Run",
	}

	Player = PlayerConfig{
		Speed:       220,
		JumpForce:   620,
		Gravity:     1500,
		DeathMargin: 200,
		Width:       20,
		Height:      40,
		Color:       Blue,
	}

	Physics = PhysicsConfig{
		Delta:        1.0 / 60.0,
		EnemyGravity: 1400,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		Zoom:            1.0,
	}

	Menu = MenuConfig{
		BackgroundColor: Background,
		TitleColor:      White,
		TextColorNormal: DarkBlue,
		TextColorActive: LightBlue,
		Title:           "ALIEN RUN",
		TitleY:          140,
		MenuStartY:      260,
		MenuItemHeight:  40,
	}

	Flash = FlashConfig{
		StartAlpha: 0.6,
		Duration:   0.5,
		Color:      Red,
	}
}
