package pet

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoIdleClip reports a catalog without the mandatory idle animation.
	ErrNoIdleClip = errors.New("animation catalog: missing idle clip")
	// ErrEmptyClip reports a clip declared with zero frames.
	ErrEmptyClip = errors.New("animation catalog: clip has no frames")
)

// Clip describes one named animation: how many frames it holds and how long
// each frame stays on screen.
type Clip struct {
	Frames   int
	Interval time.Duration
}

// Catalog is an immutable set of named animation clips. Every catalog holds
// an idle clip; lookups for unknown names resolve to it.
type Catalog struct {
	clips map[string]Clip
}

// NewCatalog validates and copies clips. The idle clip is mandatory and every
// clip needs at least one frame; both violations are construction errors so a
// bad sprite set fails at startup rather than mid-session.
func NewCatalog(clips map[string]Clip) (*Catalog, error) {
	if _, ok := clips[StateIdle]; !ok {
		return nil, ErrNoIdleClip
	}
	owned := make(map[string]Clip, len(clips))
	for name, clip := range clips {
		if clip.Frames < 1 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyClip, name)
		}
		owned[name] = clip
	}
	return &Catalog{clips: owned}, nil
}

// Resolve returns the clip registered under name, or the idle clip when the
// name is unknown.
func (c *Catalog) Resolve(name string) Clip {
	if clip, ok := c.clips[name]; ok {
		return clip
	}
	return c.clips[StateIdle]
}

// Has reports whether a clip is registered under its own name, without the
// idle fallback.
func (c *Catalog) Has(name string) bool {
	_, ok := c.clips[name]
	return ok
}
