package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every scene draws on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	CursorColor     color.RGBA
	DisabledColor   color.RGBA
	EditColor       color.RGBA
	BarColor        color.RGBA
	BarBackColor    color.RGBA

	// Frames a direction must be held before it auto-repeats
	RepeatDelay int

	// Cursor highlight pulse, in seconds per half cycle
	CursorPulse float32
	CursorPad   float32

	// Volume bar geometry
	BarWidth  float32
	BarHeight float32

	// Offset from an option's Y to its text baseline
	Baseline int
}

// StorageConfig locates persisted data
type StorageConfig struct {
	AppName  string
	ReplayDB string // Relative to the user config directory
	Player   string
	Language string
}

// GameConfig contains the launched game screen configuration
type GameConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool   // Launch straight into a practice session
	LogLevel string // charmbracelet/log level name
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var Storage StorageConfig
var Game GameConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 64, A: 255}
	Red          = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	Periwinkle   = color.RGBA{R: 160, G: 160, B: 255, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Navy         = color.RGBA{R: 8, G: 8, B: 32, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "QUINTESSE",
		TPS:    60,
	}

	Menu = MenuConfig{
		BackgroundColor: Navy,
		TitleColor:      White,
		CursorColor:     color.RGBA{R: 64, G: 64, B: 160, A: 255},
		DisabledColor:   Grey,
		EditColor:       Yellow,
		BarColor:        Periwinkle,
		BarBackColor:    color.RGBA{R: 40, G: 40, B: 72, A: 255},
		RepeatDelay:     18,
		CursorPulse:     0.6,
		CursorPad:       3,
		BarWidth:        100,
		BarHeight:       8,
		Baseline:        12,
	}

	Storage = StorageConfig{
		AppName:  "quintesse",
		ReplayDB: "replays.db",
		Player:   "ARK",
		Language: "en",
	}

	Game = GameConfig{
		BackgroundColor: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		TextColor:       White,
		HintColor:       Grey,
	}

	Debug = DebugConfig{
		SkipMenu: false,
		LogLevel: "info",
	}
}
