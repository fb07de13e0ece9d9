package config

import "fmt"

// Validate checks the loaded configuration. Violations are fatal at startup;
// a running simulation never sees an invalid value.
func (c *Config) Validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Display < 0 {
		return fmt.Errorf("window: negative display index %d", c.Window.Display)
	}
	if c.Movement.UpdateRateMs < 1 {
		return fmt.Errorf("movement: update_rate_ms must be at least 1, got %d", c.Movement.UpdateRateMs)
	}

	ranges := []struct {
		name string
		r    []float64
	}{
		{"movement.walk_speed_range", c.Movement.WalkSpeedRange},
		{"movement.walk_interval_ms", c.Movement.WalkIntervalMs},
		{"physics.hop_interval_ms", c.Physics.HopIntervalMs},
	}
	for _, e := range ranges {
		if len(e.r) != 2 {
			return fmt.Errorf("%s: expected [low, high], got %d values", e.name, len(e.r))
		}
		if e.r[0] < 0 {
			return fmt.Errorf("%s: negative lower bound %g", e.name, e.r[0])
		}
		if e.r[0] > e.r[1] {
			return fmt.Errorf("%s: lower bound %g exceeds upper bound %g", e.name, e.r[0], e.r[1])
		}
	}

	scalars := []struct {
		name string
		v    float64
	}{
		{"movement.speed", c.Movement.Speed},
		{"movement.turn_probability", c.Movement.TurnProbability},
		{"movement.bob_amplitude", c.Movement.BobAmplitude},
		{"movement.bob_speed", c.Movement.BobSpeed},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.hop_impulse", c.Physics.HopImpulse},
		{"physics.hover_impulse", c.Physics.HoverImpulse},
		{"physics.hover_cooldown_ms", c.Physics.HoverCooldownMs},
		{"physics.ground_drag", c.Physics.GroundDrag},
		{"physics.air_drag", c.Physics.AirDrag},
		{"physics.bounce_damping", c.Physics.BounceDamping},
		{"physics.launch_multiplier", c.Physics.LaunchMultiplier},
		{"physics.max_speed_x", c.Physics.MaxSpeedX},
		{"physics.max_speed_y", c.Physics.MaxSpeedY},
		{"audio.volume", c.Audio.Volume},
	}
	for _, e := range scalars {
		if e.v < 0 {
			return fmt.Errorf("%s: negative value %g", e.name, e.v)
		}
	}

	if _, ok := c.Sprites.States["idle"]; !ok {
		return fmt.Errorf("sprites: no idle state configured")
	}
	for name, state := range c.Sprites.States {
		if state.File == "" {
			return fmt.Errorf("sprites.%s: missing file", name)
		}
		if state.Layout != "horizontal" && state.Layout != "vertical" {
			return fmt.Errorf("sprites.%s: unknown layout %q", name, state.Layout)
		}
		if n := len(state.FrameSize); n != 0 && n != 2 {
			return fmt.Errorf("sprites.%s: frame_size expects [w, h], got %d values", name, n)
		}
		if len(state.FrameSize) == 2 && (state.FrameSize[0] < 1 || state.FrameSize[1] < 1) {
			return fmt.Errorf("sprites.%s: frame_size must be positive, got %v", name, state.FrameSize)
		}
	}

	if c.Audio.Enabled && c.Audio.BounceSound == "" && c.Audio.LaunchSound == "" {
		return fmt.Errorf("audio: enabled without any sound configured")
	}

	return nil
}
