package pet

import (
	"math"
	"math/rand"
)

const (
	// hoverDwellMs is how long the cursor must rest inside the creature
	// before a hover jump can fire.
	hoverDwellMs = 150.0

	// slowSpeed is the horizontal speed under which the creature counts as
	// settled enough to receive a fresh push.
	slowSpeed = 0.3
)

type impulseKind uint8

const (
	impulseHop impulseKind = iota
	impulseWalk
	impulseHoverJump
)

// impulse is one behavioral kick to be applied to the physical state: an
// upward lift (applied as negative vertical velocity) and/or a signed
// horizontal push.
type impulse struct {
	kind impulseKind
	lift float64
	push float64
}

// behaviorScheduler decides when the creature hops, walks and hover-jumps.
// It owns the randomized countdown timers and the hover gate, reads the
// physical state, and never writes it; decisions come back as impulses.
type behaviorScheduler struct {
	cfg Config
	rng *rand.Rand

	hopInMs    float64
	walkInMs   float64
	cooldownMs float64

	hoverActive bool
	anchorX     float64
	anchored    bool
}

func newBehaviorScheduler(cfg Config, rng *rand.Rand) *behaviorScheduler {
	b := &behaviorScheduler{cfg: cfg, rng: rng}
	b.hopInMs = b.uniform(cfg.HopInterval)
	b.walkInMs = b.uniform(cfg.WalkInterval)
	return b
}

// uniform draws from [r.Low, r.High).
func (b *behaviorScheduler) uniform(r Range) float64 {
	return r.Low + b.rng.Float64()*(r.High-r.Low)
}

// randomPush draws a walk push with random sign.
func (b *behaviorScheduler) randomPush() float64 {
	mag := b.uniform(b.cfg.WalkSpeed)
	if b.rng.Intn(2) == 0 {
		return -mag
	}
	return mag
}

// evaluate advances the countdown timers by dtMs and returns at most one
// impulse for this tick. The hover jump outranks the idle hop, which outranks
// the walk push; ordinary hops and pushes fire only on the ground.
func (b *behaviorScheduler) evaluate(dtMs float64, phys *physicsEngine, cursorInside, dragging bool, hoverElapsedMs float64) *impulse {
	b.hopInMs = math.Max(0, b.hopInMs-dtMs)
	b.walkInMs = math.Max(0, b.walkInMs-dtMs)
	b.cooldownMs = math.Max(0, b.cooldownMs-dtMs)

	if cursorInside {
		if imp := b.maybeHoverJump(phys, dragging, hoverElapsedMs); imp != nil {
			return imp
		}
	}

	// A resting cursor suppresses ordinary hops unless the creature is
	// already in a hover-jump cycle.
	if phys.onGround && b.hopInMs <= 0 && (!cursorInside || b.hoverActive) {
		return b.triggerHop(phys)
	}

	if phys.onGround && !b.hoverActive && b.walkInMs <= 0 && math.Abs(phys.vel.X) < slowSpeed {
		b.walkInMs = b.uniform(b.cfg.WalkInterval)
		return &impulse{kind: impulseWalk, push: b.randomPush()}
	}

	return nil
}

// maybeHoverJump fires a hover jump when the creature is grounded, the
// cooldown has expired, no drag is in progress, and the cursor has dwelled
// long enough. Firing pins the horizontal anchor and arms the cooldown.
func (b *behaviorScheduler) maybeHoverJump(phys *physicsEngine, dragging bool, hoverElapsedMs float64) *impulse {
	if dragging || !phys.onGround || b.cooldownMs > 0 {
		return nil
	}
	if hoverElapsedMs < hoverDwellMs {
		return nil
	}
	b.hoverActive = true
	b.anchorX = phys.pos.X
	b.anchored = true
	b.cooldownMs = b.cfg.HoverCooldownMs
	b.hopInMs = b.uniform(b.cfg.HopInterval)
	b.walkInMs = b.uniform(b.cfg.WalkInterval)
	return &impulse{kind: impulseHoverJump, lift: b.cfg.HoverImpulse}
}

// triggerHop builds an idle hop. A creature that is close to standing still
// also gets a random horizontal push so hops wander. Both countdowns restart.
func (b *behaviorScheduler) triggerHop(phys *physicsEngine) *impulse {
	imp := &impulse{kind: impulseHop, lift: b.cfg.HopImpulse}
	if math.Abs(phys.vel.X) < slowSpeed {
		imp.push = b.randomPush()
	}
	b.hopInMs = b.uniform(b.cfg.HopInterval)
	b.walkInMs = b.uniform(b.cfg.WalkInterval)
	return imp
}

// resetAfterLaunch restarts both countdowns after a drag launch, so the
// creature does not hop or walk the instant it lands.
func (b *behaviorScheduler) resetAfterLaunch() {
	b.hopInMs = b.uniform(b.cfg.HopInterval)
	b.walkInMs = b.uniform(b.cfg.WalkInterval)
}

// clearHover drops the hover gate state when the cursor leaves or a drag
// begins.
func (b *behaviorScheduler) clearHover() {
	b.hoverActive = false
	b.anchored = false
}
