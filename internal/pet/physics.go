package pet

import (
	"math"
	"math/rand"

	"github.com/iYeremy/deskpet/pkg/geom"
)

// Ground-contact tunables. The bounce threshold is in pixels per tick, the
// settle windows in milliseconds. A fresh bounce keeps the bob suppressed for
// a shorter window than a clean landing.
const (
	bounceThreshold = 1.4
	bounceLift      = 0.1
	bounceSettleMs  = 80.0
	landingSettleMs = 200.0

	// bobMinSpeed is the horizontal speed below which the walk bob stays off.
	bobMinSpeed = 0.35
)

// bounds is the motion envelope resolved from the current screen rect: the
// clamp range for x and the resting ground line for y.
type bounds struct {
	minX, maxX float64
	groundY    float64
}

// boundsFor derives the envelope for a creature of cfg's size inside screen.
func boundsFor(screen geom.Rect, cfg Config) bounds {
	return bounds{
		minX:    screen.X,
		maxX:    screen.Right() - float64(cfg.Width),
		groundY: screen.Bottom() - float64(cfg.Height) - cfg.BottomOffset,
	}
}

// physicsEngine owns the physical state: position, velocity, ground contact,
// the post-landing settle timer and the bob phase. Nothing else writes these
// fields directly; behavior feeds velocity changes through impulses.
type physicsEngine struct {
	cfg Config

	pos      geom.Vec2
	vel      geom.Vec2
	onGround bool
	settleMs float64
	bobPhase float64
}

func newPhysicsEngine(cfg Config, rng *rand.Rand) *physicsEngine {
	// The bob phase starts randomized so several creatures do not breathe
	// in lockstep.
	return &physicsEngine{cfg: cfg, bobPhase: rng.Float64() * 2 * math.Pi}
}

// integrate advances one tick: gravity, speed clamping, position update,
// horizontal confinement (or hover pinning), ground collision with the bounce
// rule, and drag. It reports the resulting ground contact and whether this
// tick reflected a bounce off the ground.
func (p *physicsEngine) integrate(b *behaviorScheduler, env bounds) (onGround, bounced bool) {
	p.vel.Y += p.cfg.Gravity
	p.vel.X = geom.Clamp(p.vel.X, -p.cfg.MaxSpeedX, p.cfg.MaxSpeedX)
	p.vel.Y = geom.Clamp(p.vel.Y, -p.cfg.MaxSpeedY, p.cfg.MaxSpeedY)

	p.pos.X += p.vel.X
	p.pos.Y += p.vel.Y

	if b.hoverActive {
		// While a hover jump is in flight the creature stays pinned to the
		// column it was petted on.
		if !b.anchored {
			b.anchorX = geom.Clamp(p.pos.X, env.minX, env.maxX)
			b.anchored = true
		}
		p.pos.X = b.anchorX
		p.vel.X = 0
	} else if p.pos.X < env.minX {
		p.pos.X = env.minX
		p.vel.X = math.Abs(p.vel.X) * p.cfg.BounceDamping
	} else if p.pos.X > env.maxX {
		p.pos.X = env.maxX
		p.vel.X = -math.Abs(p.vel.X) * p.cfg.BounceDamping
	}

	if p.pos.Y >= env.groundY {
		if p.vel.Y > bounceThreshold {
			p.pos.Y = env.groundY - bounceLift
			p.vel.Y = -p.vel.Y * p.cfg.BounceDamping
			p.onGround = false
			p.settleMs = bounceSettleMs
			bounced = true
		} else {
			p.pos.Y = env.groundY
			if p.vel.Y > 0 {
				p.vel.Y = 0
			}
			if !p.onGround {
				p.settleMs = landingSettleMs
			}
			p.onGround = true
		}
	} else {
		p.onGround = false
	}

	drag := p.cfg.AirDrag
	if p.onGround {
		drag = p.cfg.GroundDrag
	}
	p.vel.X *= math.Max(0, 1-drag)

	return p.onGround, bounced
}

// decaySettle runs down the post-landing settle window.
func (p *physicsEngine) decaySettle(dtMs float64) {
	p.settleMs = math.Max(0, p.settleMs-dtMs)
}

// applyBob layers a sine offset on the resting ground line while the creature
// is walking. The bob stays off in the air, during the settle window, below
// the minimum walking speed, and whenever the amplitude is non-positive.
func (p *physicsEngine) applyBob(env bounds) {
	if !p.onGround || p.cfg.BobAmplitude <= 0 || p.settleMs > 0 {
		return
	}
	if math.Abs(p.vel.X) < bobMinSpeed {
		return
	}
	p.bobPhase += p.cfg.BobSpeed
	p.pos.Y = env.groundY + math.Sin(p.bobPhase)*p.cfg.BobAmplitude
}
