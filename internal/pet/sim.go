package pet

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/iYeremy/deskpet/pkg/geom"
)

// ErrNilCatalog reports a Simulation constructed without animations.
var ErrNilCatalog = errors.New("pet: nil animation catalog")

// Frame is the per-tick render snapshot: where the creature window sits and
// which clip frame it shows.
type Frame struct {
	X, Y       float64
	Animation  string
	FrameIndex int
	Mirrored   bool
}

// Simulation is the creature's complete state behind a single-goroutine API.
// Tick advances physics and behavior at a fixed rate, AnimationTick advances
// the playing clip on its own cadence, and the remaining methods deliver
// cursor gestures. None of the methods are safe for concurrent use.
type Simulation struct {
	cfg     Config
	catalog *Catalog
	rng     *rand.Rand

	phys     *physicsEngine
	behavior *behaviorScheduler
	gesture  *gestureTracker
	anim     *animator

	screen geom.Rect

	cursorInside   bool
	cursor         geom.Vec2
	hoverElapsedMs float64

	dragging   bool
	grabOffset geom.Vec2

	lastBounce bool
}

// New builds a Simulation resting at the bottom center of screen. cfg is
// validated and copied; catalog must carry an idle clip. A nil rng falls back
// to a time-seeded source, so deterministic runs should inject their own.
func New(cfg Config, catalog *Catalog, screen geom.Rect, rng *rand.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Simulation{
		cfg:      cfg,
		catalog:  catalog,
		rng:      rng,
		phys:     newPhysicsEngine(cfg, rng),
		behavior: newBehaviorScheduler(cfg, rng),
		gesture:  &gestureTracker{},
		anim:     newAnimator(catalog),
		screen:   screen,
	}

	env := boundsFor(screen, cfg)
	s.phys.pos = geom.V(
		screen.X+math.Floor((screen.W-float64(cfg.Width))/2),
		env.groundY,
	)
	s.phys.onGround = true
	return s, nil
}

// Tick advances the simulation by dtMs of simulated time and returns the
// render snapshot. While a drag is in progress physics stays suspended and
// the snapshot simply reflects the dragged position.
func (s *Simulation) Tick(dtMs float64) Frame {
	if s.dragging {
		return s.snapshot()
	}

	if s.cursorInside {
		s.hoverElapsedMs += dtMs
	}

	env := boundsFor(s.screen, s.cfg)
	if imp := s.behavior.evaluate(dtMs, s.phys, s.cursorInside, s.dragging, s.hoverElapsedMs); imp != nil {
		s.applyImpulse(imp)
	}

	_, bounced := s.phys.integrate(s.behavior, env)
	s.lastBounce = bounced
	s.phys.decaySettle(dtMs)
	s.phys.applyBob(env)
	s.anim.update(s.phys)

	return s.snapshot()
}

// AnimationTick advances the playing clip by one frame. The host drives this
// from a timer armed with the clip's frame interval.
func (s *Simulation) AnimationTick() {
	s.anim.advanceFrame()
}

// HoverEnter marks the cursor inside the creature and restarts the dwell
// clock that gates hover jumps.
func (s *Simulation) HoverEnter(p geom.Vec2) {
	s.cursorInside = true
	s.cursor = p
	s.hoverElapsedMs = 0
}

// HoverMove tracks the cursor while it stays inside and gives the hover jump
// an immediate chance to fire, so a petting motion reacts between ticks.
func (s *Simulation) HoverMove(p geom.Vec2) {
	if !s.cursorInside {
		return
	}
	s.cursor = p
	if imp := s.behavior.maybeHoverJump(s.phys, s.dragging, s.hoverElapsedMs); imp != nil {
		s.applyImpulse(imp)
	}
}

// HoverLeave clears the cursor tracking and releases the hover anchor.
func (s *Simulation) HoverLeave() {
	s.cursorInside = false
	s.hoverElapsedMs = 0
	s.behavior.clearHover()
}

// DragStart begins a grab at cursor position p. Physics suspends, velocity
// zeroes, the hover anchor releases, and the gesture history restarts with
// this first sample.
func (s *Simulation) DragStart(p geom.Vec2, now time.Time) {
	s.dragging = true
	s.grabOffset = p.Sub(s.phys.pos)
	s.gesture.reset()
	s.phys.vel = geom.Vec2{}
	s.behavior.clearHover()
	s.gesture.record(now, p)
}

// DragMove repositions the creature under the cursor, keeping the grab point
// fixed, and records the cursor sample for launch estimation.
func (s *Simulation) DragMove(p geom.Vec2, now time.Time) {
	if !s.dragging {
		return
	}
	s.phys.pos = p.Sub(s.grabOffset)
	s.gesture.record(now, p)
}

// DragEnd releases the grab. A throw fast enough turns into a launch and
// DragEnd reports true; anything slower falls back to a standard hop. Either
// way the behavior countdowns restart.
func (s *Simulation) DragEnd() bool {
	if !s.dragging {
		return false
	}
	s.dragging = false

	vel, ok := s.gesture.estimate(s.cfg.LaunchMultiplier)
	if !ok {
		// The sub-threshold horizontal remnant stays; the hop only replaces
		// the vertical component.
		s.phys.vel = vel
		s.applyImpulse(s.behavior.triggerHop(s.phys))
		return false
	}

	s.phys.vel = vel
	s.phys.onGround = false
	s.anim.enterJump()
	s.behavior.resetAfterLaunch()
	return true
}

// SetBounds swaps the screen rect the creature is confined to. The next tick
// clamps the position into the new envelope.
func (s *Simulation) SetBounds(screen geom.Rect) {
	s.screen = screen
}

// applyImpulse writes a behavioral decision into the physical state. Lifts
// always launch upward regardless of sign, and leave the ground on the same
// tick so the jump artwork applies immediately.
func (s *Simulation) applyImpulse(imp *impulse) {
	switch imp.kind {
	case impulseWalk:
		s.phys.vel.X += imp.push
	case impulseHop:
		s.phys.vel.Y = -math.Abs(imp.lift)
		s.phys.vel.X += imp.push
		s.phys.onGround = false
		s.anim.enterJump()
	case impulseHoverJump:
		s.phys.vel.X = 0
		s.phys.vel.Y = -math.Abs(imp.lift)
		s.phys.onGround = false
		s.anim.enterJump()
	}
}

func (s *Simulation) snapshot() Frame {
	return Frame{
		X:          s.phys.pos.X,
		Y:          s.phys.pos.Y,
		Animation:  s.anim.visual,
		FrameIndex: s.anim.frame,
		Mirrored:   s.anim.mirrored,
	}
}

// Position returns the creature's top-left corner in screen space.
func (s *Simulation) Position() geom.Vec2 { return s.phys.pos }

// Velocity returns the current velocity in pixels per tick.
func (s *Simulation) Velocity() geom.Vec2 { return s.phys.vel }

// OnGround reports whether the creature rests on the ground line.
func (s *Simulation) OnGround() bool { return s.phys.onGround }

// Dragging reports whether a grab is in progress.
func (s *Simulation) Dragging() bool { return s.dragging }

// Bounced reports whether the most recent Tick reflected a bounce off the
// ground. Hosts use it to cue landing effects.
func (s *Simulation) Bounced() bool { return s.lastBounce }

// Cursor returns the last hover position and whether the cursor is inside.
func (s *Simulation) Cursor() (geom.Vec2, bool) { return s.cursor, s.cursorInside }

// Animation returns the playing clip's name and definition.
func (s *Simulation) Animation() (string, Clip) {
	return s.anim.visual, s.catalog.Resolve(s.anim.visual)
}

// Size returns the creature's window size in pixels.
func (s *Simulation) Size() (w, h int) { return s.cfg.Width, s.cfg.Height }
