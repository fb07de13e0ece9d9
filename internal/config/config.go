// Package config handles desktop pet configuration loading and management.
package config

import "time"

// Config holds all pet settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Movement MovementConfig `yaml:"movement"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Sprites  SpritesConfig  `yaml:"sprites"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
	Seed     int64          `yaml:"seed"` // 0 seeds from the clock
}

// WindowConfig holds the creature window geometry and platform hints.
type WindowConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"`
	Display      int     `yaml:"display"`
	ForceX11     bool    `yaml:"force_x11"` // Hyprland/XWayland setups need the x11 video driver
}

// MovementConfig holds autonomous movement tuning. Speed, state_interval_ms,
// turn_probability and turn_cooldown_ms are accepted and carried but not
// consulted by the current behavior logic.
type MovementConfig struct {
	Speed           float64   `yaml:"speed"`
	UpdateRateMs    int       `yaml:"update_rate_ms"`
	StateIntervalMs int       `yaml:"state_interval_ms"`
	WalkSpeedRange  []float64 `yaml:"walk_speed_range"`
	WalkIntervalMs  []float64 `yaml:"walk_interval_ms"`
	TurnProbability float64   `yaml:"turn_probability"`
	TurnCooldownMs  int       `yaml:"turn_cooldown_ms"`
	BobAmplitude    float64   `yaml:"bob_amplitude"`
	BobSpeed        float64   `yaml:"bob_speed"`
}

// PhysicsConfig holds the physical tuning. Velocities are in pixels per tick.
type PhysicsConfig struct {
	Gravity          float64   `yaml:"gravity"`
	HopImpulse       float64   `yaml:"hop_impulse"`
	HoverImpulse     float64   `yaml:"hover_impulse"`
	HopIntervalMs    []float64 `yaml:"hop_interval_ms"`
	HoverCooldownMs  float64   `yaml:"hover_cooldown_ms"`
	GroundDrag       float64   `yaml:"ground_drag"`
	AirDrag          float64   `yaml:"air_drag"`
	BounceDamping    float64   `yaml:"bounce_damping"`
	LaunchMultiplier float64   `yaml:"launch_multiplier"`
	MaxSpeedX        float64   `yaml:"max_speed_x"`
	MaxSpeedY        float64   `yaml:"max_speed_y"`
}

// SpritesConfig maps animation state names to their sheet definitions.
type SpritesConfig struct {
	BasePath string                 `yaml:"base_path"`
	States   map[string]SpriteState `yaml:"states"`
}

// SpriteState describes one animation sheet on disk and how to slice it.
type SpriteState struct {
	File      string `yaml:"file"`
	Frames    int    `yaml:"frames"`
	FPS       int    `yaml:"fps"`
	Layout    string `yaml:"layout"`     // horizontal or vertical
	FrameSize []int  `yaml:"frame_size"` // optional [w, h] override
}

// FrameInterval returns the per-frame display time, floored at 16ms so a
// misconfigured fps cannot spin the animation timer.
func (s SpriteState) FrameInterval() time.Duration {
	fps := s.FPS
	if fps < 1 {
		fps = 1
	}
	ms := 1000 / fps
	if ms < 16 {
		ms = 16
	}
	return time.Duration(ms) * time.Millisecond
}

// AudioConfig holds the optional sound effect settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	BounceSound string  `yaml:"bounce_sound"`
	LaunchSound string  `yaml:"launch_sound"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:        140,
			Height:       160,
			BottomOffset: 0,
			Display:      0,
			ForceX11:     true,
		},
		Movement: MovementConfig{
			Speed:           2.0,
			UpdateRateMs:    16,
			StateIntervalMs: 2500,
			WalkSpeedRange:  []float64{0.6, 2.4},
			WalkIntervalMs:  []float64{1200, 2800},
			TurnProbability: 0,
			TurnCooldownMs:  0,
			BobAmplitude:    2,
			BobSpeed:        0.25,
		},
		Physics: PhysicsConfig{
			Gravity:          0.35,
			HopImpulse:       4.0,
			HoverImpulse:     6.0,
			HopIntervalMs:    []float64{800, 2000},
			HoverCooldownMs:  900,
			GroundDrag:       0.12,
			AirDrag:          0.02,
			BounceDamping:    0.5,
			LaunchMultiplier: 0.02,
			MaxSpeedX:        8.0,
			MaxSpeedY:        14.0,
		},
		Sprites: SpritesConfig{
			BasePath: "assets",
			// States stay empty here: a file-defined set must fully replace
			// the built-in one, not merge with it. normalize() fills the
			// built-in set when no file provides one.
			States: nil,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.8,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Seed: 0,
	}
}
