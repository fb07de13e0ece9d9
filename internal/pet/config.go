// Package pet implements the creature simulation: physics integration,
// autonomous hop/walk scheduling, hover-triggered jumps, drag-launch velocity
// estimation, and the animation state machine. The simulation is pure state
// with no window, renderer, or timer resources of its own, advanced by a
// fixed-rate tick plus gesture callbacks delivered on the same goroutine.
package pet

import "fmt"

// Range is an inclusive numeric interval used for uniform random draws.
type Range struct {
	Low, High float64
}

// Config is the immutable tunable set for a Simulation. Velocities are in
// pixels per tick, intervals in milliseconds. A Config is copied at
// construction and never mutated afterwards.
type Config struct {
	// Creature geometry in pixels.
	Width, Height int
	// BottomOffset lifts the resolved ground line above the screen's bottom
	// work-area edge.
	BottomOffset float64

	// Autonomous walking.
	WalkSpeed    Range // magnitude of a horizontal push
	WalkInterval Range // ms between pushes

	// Parsed and carried for forward compatibility; not consulted by the
	// behavior logic.
	MoveSpeed       float64
	StateIntervalMs float64
	TurnProbability float64
	TurnCooldownMs  float64

	// Walking bob (small vertical sine layered on the resting ground line).
	BobAmplitude float64
	BobSpeed     float64

	// Physics.
	Gravity          float64
	HopImpulse       float64
	HoverImpulse     float64
	HopInterval      Range // ms between idle hops
	HoverCooldownMs  float64
	GroundDrag       float64
	AirDrag          float64
	BounceDamping    float64
	LaunchMultiplier float64
	MaxSpeedX        float64
	MaxSpeedY        float64
}

// Validate checks the Config invariants: positive creature size, non-negative
// intervals and magnitudes, and ordered ranges.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("creature size must be positive, got %dx%d", c.Width, c.Height)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"walk_speed_range", c.WalkSpeed},
		{"walk_interval_ms", c.WalkInterval},
		{"hop_interval_ms", c.HopInterval},
	}
	for _, e := range ranges {
		if e.r.Low < 0 {
			return fmt.Errorf("%s: negative lower bound %g", e.name, e.r.Low)
		}
		if e.r.Low > e.r.High {
			return fmt.Errorf("%s: lower bound %g exceeds upper bound %g", e.name, e.r.Low, e.r.High)
		}
	}
	scalars := []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"hop_impulse", c.HopImpulse},
		{"hover_impulse", c.HoverImpulse},
		{"hover_cooldown_ms", c.HoverCooldownMs},
		{"ground_drag", c.GroundDrag},
		{"air_drag", c.AirDrag},
		{"bounce_damping", c.BounceDamping},
		{"launch_multiplier", c.LaunchMultiplier},
		{"max_speed_x", c.MaxSpeedX},
		{"max_speed_y", c.MaxSpeedY},
		{"bob_amplitude", c.BobAmplitude},
		{"state_interval_ms", c.StateIntervalMs},
		{"turn_cooldown_ms", c.TurnCooldownMs},
	}
	for _, e := range scalars {
		if e.v < 0 {
			return fmt.Errorf("%s: negative value %g", e.name, e.v)
		}
	}
	return nil
}
