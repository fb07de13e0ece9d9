package pet

import "math"

// Logical animation states. Walk is logical only: it renders through the
// idle clip, so drifting between idle and walk never restarts the animation.
const (
	StateIdle = "idle"
	StateWalk = "walk"
	StateJump = "jump"
)

// Physical thresholds for choosing the animation state, in pixels per tick.
const (
	jumpSpeedY = 0.3
	walkSpeedX = 0.25
)

// visualFor maps a logical state onto the clip name that renders it.
func visualFor(state string) string {
	if state == StateJump {
		return StateJump
	}
	return StateIdle
}

// animator derives the animation from the physical state: which clip plays,
// which frame it is on, and whether the artwork is mirrored for leftward
// motion. Frame advancement runs on its own cadence via advanceFrame.
type animator struct {
	catalog  *Catalog
	state    string
	visual   string
	frame    int
	mirrored bool
}

func newAnimator(catalog *Catalog) *animator {
	return &animator{
		catalog: catalog,
		state:   StateIdle,
		visual:  visualFor(StateIdle),
	}
}

// update recomputes the desired state from ground contact and velocity.
// The mirror flag follows the horizontal velocity every call; the clip rolls
// over only when the logical state actually changes.
func (a *animator) update(phys *physicsEngine) {
	desired := StateIdle
	switch {
	case !phys.onGround || math.Abs(phys.vel.Y) > jumpSpeedY:
		desired = StateJump
	case math.Abs(phys.vel.X) > walkSpeedX:
		desired = StateWalk
	}
	a.mirrored = phys.vel.X < 0
	if desired == a.state {
		return
	}
	a.state = desired
	a.setVisual(visualFor(desired))
}

// enterJump switches to the jump state immediately, without waiting for the
// next update. Hops and launches call this so the artwork changes on the
// same tick the impulse lands.
func (a *animator) enterJump() {
	a.state = StateJump
	a.setVisual(visualFor(StateJump))
}

// setVisual swaps the playing clip and rewinds it. Re-selecting the current
// clip keeps the frame position.
func (a *animator) setVisual(name string) {
	if a.visual == name {
		return
	}
	a.visual = name
	a.frame = 0
}

// advanceFrame steps the playing clip by one frame, wrapping at the end.
// Single-frame clips stay put.
func (a *animator) advanceFrame() {
	clip := a.catalog.Resolve(a.visual)
	if clip.Frames <= 1 {
		return
	}
	a.frame = (a.frame + 1) % clip.Frames
}
