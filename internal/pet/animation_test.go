package pet

import (
	"testing"
	"time"

	"github.com/iYeremy/deskpet/pkg/geom"
)

func TestAnimatorStateSelection(t *testing.T) {
	tests := []struct {
		name       string
		onGround   bool
		vel        geom.Vec2
		wantState  string
		wantVisual string
		wantMirror bool
	}{
		{"resting", true, geom.V(0, 0), StateIdle, StateIdle, false},
		{"walking right", true, geom.V(1, 0), StateWalk, StateIdle, false},
		{"walking left", true, geom.V(-1, 0), StateWalk, StateIdle, true},
		{"barely drifting", true, geom.V(0.2, 0), StateIdle, StateIdle, false},
		{"airborne", false, geom.V(0, 0), StateJump, StateJump, false},
		{"rising on ground contact", true, geom.V(0, -0.4), StateJump, StateJump, false},
		{"falling left", false, geom.V(-2, 3), StateJump, StateJump, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAnimator(testCatalog(t))
			phys := &physicsEngine{cfg: testConfig()}
			phys.onGround = tt.onGround
			phys.vel = tt.vel

			a.update(phys)

			if a.state != tt.wantState {
				t.Errorf("expected state %q, got %q", tt.wantState, a.state)
			}
			if a.visual != tt.wantVisual {
				t.Errorf("expected visual %q, got %q", tt.wantVisual, a.visual)
			}
			if a.mirrored != tt.wantMirror {
				t.Errorf("expected mirrored=%v, got %v", tt.wantMirror, a.mirrored)
			}
		})
	}
}

func TestIdleWalkShareVisual(t *testing.T) {
	a := newAnimator(testCatalog(t))
	phys := &physicsEngine{cfg: testConfig()}
	phys.onGround = true

	a.frame = 2

	// Drifting between idle and walk must not rewind the shared clip.
	phys.vel.X = 1
	a.update(phys)
	if a.state != StateWalk || a.frame != 2 {
		t.Fatalf("expected walk keeping frame 2, got state=%q frame=%d", a.state, a.frame)
	}

	phys.vel.X = 0
	a.update(phys)
	if a.state != StateIdle || a.frame != 2 {
		t.Fatalf("expected idle keeping frame 2, got state=%q frame=%d", a.state, a.frame)
	}
}

func TestJumpRewindsClip(t *testing.T) {
	a := newAnimator(testCatalog(t))
	phys := &physicsEngine{cfg: testConfig()}
	phys.onGround = true

	a.frame = 2

	phys.onGround = false
	a.update(phys)
	if a.visual != StateJump {
		t.Fatalf("expected jump visual, got %q", a.visual)
	}
	if a.frame != 0 {
		t.Errorf("expected clip rewound, got frame %d", a.frame)
	}
}

func TestEnterJumpImmediate(t *testing.T) {
	a := newAnimator(testCatalog(t))

	a.enterJump()
	if a.state != StateJump || a.visual != StateJump {
		t.Fatalf("expected jump state, got state=%q visual=%q", a.state, a.visual)
	}

	// Hopping again mid-jump keeps the clip position.
	a.frame = 1
	a.enterJump()
	if a.frame != 1 {
		t.Errorf("expected frame kept at 1, got %d", a.frame)
	}
}

func TestAdvanceFrameWraps(t *testing.T) {
	a := newAnimator(testCatalog(t))

	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		a.advanceFrame()
		if a.frame != w {
			t.Fatalf("step %d: expected frame %d, got %d", i, w, a.frame)
		}
	}
}

func TestAdvanceFrameSingleFrameClip(t *testing.T) {
	a := newAnimator(testCatalog(t))
	a.enterJump()

	a.advanceFrame()
	if a.frame != 0 {
		t.Errorf("expected single-frame clip to stay on frame 0, got %d", a.frame)
	}
}

func TestMissingClipAdvancesThroughIdle(t *testing.T) {
	catalog, err := NewCatalog(map[string]Clip{
		StateIdle: {Frames: 2, Interval: 125 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	a := newAnimator(catalog)
	a.enterJump()

	// No jump artwork registered: the frame counter runs against the idle
	// clip it resolves to.
	a.advanceFrame()
	if a.frame != 1 {
		t.Fatalf("expected frame 1, got %d", a.frame)
	}
	a.advanceFrame()
	if a.frame != 0 {
		t.Fatalf("expected wrap to frame 0, got %d", a.frame)
	}
}
