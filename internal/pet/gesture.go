package pet

import (
	"math"
	"time"

	"github.com/iYeremy/deskpet/pkg/geom"
)

// gestureCap bounds the drag trajectory history; older samples fall off.
const gestureCap = 12

const (
	// launchLookback is how far back the estimator reaches for its reference
	// sample, so the velocity reflects the gesture's recent motion rather
	// than a single noisy frame pair.
	launchLookback = 60 * time.Millisecond

	// minLaunchDt floors the estimation window against duplicate timestamps.
	minLaunchDt = time.Millisecond

	// minLaunchSpeed is the per-axis speed under which a release counts as a
	// plain drop rather than a throw.
	minLaunchSpeed = 0.2
)

type gestureSample struct {
	at  time.Time
	pos geom.Vec2
}

// gestureTracker keeps a fixed ring of recent drag positions and turns them
// into a launch velocity on release.
type gestureTracker struct {
	samples [gestureCap]gestureSample
	head    int
	n       int
}

func (g *gestureTracker) reset() {
	g.head, g.n = 0, 0
}

// record appends a sample, evicting the oldest once the ring is full.
func (g *gestureTracker) record(now time.Time, pos geom.Vec2) {
	if g.n < gestureCap {
		g.samples[(g.head+g.n)%gestureCap] = gestureSample{at: now, pos: pos}
		g.n++
		return
	}
	g.samples[g.head] = gestureSample{at: now, pos: pos}
	g.head = (g.head + 1) % gestureCap
}

// at returns the i-th retained sample, oldest first.
func (g *gestureTracker) at(i int) gestureSample {
	return g.samples[(g.head+i)%gestureCap]
}

func (g *gestureTracker) len() int {
	return g.n
}

// estimate derives a launch velocity in pixels per tick from the retained
// trajectory. The reference sample is the newest one at least launchLookback
// older than the release sample, or the oldest retained sample when the whole
// gesture fits inside the window.
//
// ok is false when fewer than two samples exist, or when both velocity
// components land under minLaunchSpeed. In the latter case the sub-threshold
// estimate is still returned: the caller keeps its horizontal remnant when it
// falls back to a plain hop.
func (g *gestureTracker) estimate(multiplier float64) (vel geom.Vec2, ok bool) {
	if g.n < 2 {
		return geom.Vec2{}, false
	}

	last := g.at(g.n - 1)
	ref := g.at(0)
	for i := g.n - 1; i >= 0; i-- {
		s := g.at(i)
		if last.at.Sub(s.at) >= launchLookback {
			ref = s
			break
		}
	}

	dt := last.at.Sub(ref.at)
	if dt < minLaunchDt {
		dt = minLaunchDt
	}
	secs := dt.Seconds()

	vel = geom.V(
		(last.pos.X-ref.pos.X)/secs*multiplier,
		(last.pos.Y-ref.pos.Y)/secs*multiplier,
	)
	if math.Abs(vel.X) < minLaunchSpeed && math.Abs(vel.Y) < minLaunchSpeed {
		return vel, false
	}
	return vel, true
}
