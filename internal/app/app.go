// Package app wires the creature simulation to the SDL shell and runs the
// main loop.
package app

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/iYeremy/deskpet/internal/config"
	"github.com/iYeremy/deskpet/internal/engine/audio"
	"github.com/iYeremy/deskpet/internal/engine/input"
	"github.com/iYeremy/deskpet/internal/engine/renderer"
	"github.com/iYeremy/deskpet/internal/engine/sprite"
	"github.com/iYeremy/deskpet/internal/engine/window"
	"github.com/iYeremy/deskpet/internal/logger"
	"github.com/iYeremy/deskpet/internal/pet"
	"github.com/iYeremy/deskpet/pkg/geom"
)

// Sound cue names fired by the loop.
const (
	cueBounce = "bounce"
	cueLaunch = "launch"
)

// maxCatchUp caps how much simulated time one loop iteration may replay, so
// a laptop resume does not fast-forward the creature through thousands of
// ticks.
const maxCatchUp = 250 * time.Millisecond

// App owns the window, renderer, input pump, optional audio, and the
// simulation they all serve.
type App struct {
	cfg      *config.Config
	sim      *pet.Simulation
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	sfx      *audio.Manager // nil when audio is disabled

	frame    pet.Frame
	clipName string
	clip     pet.Clip

	running bool
}

// New builds the full application: window, sprites, simulation, renderer,
// and the optional sound manager.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("simulation seeded", zap.Int64("seed", seed))

	var err error
	a.window, err = window.New(window.Config{
		Title:   "deskpet",
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Display: cfg.Window.Display,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	bounds, err := window.UsableBounds(cfg.Window.Display)
	if err != nil {
		a.window.Close()
		return nil, err
	}

	anims, err := sprite.Load(cfg.Sprites.BasePath, spriteSpecs(cfg))
	if err != nil {
		a.window.Close()
		return nil, err
	}

	catalog, err := pet.NewCatalog(clipsOf(anims))
	if err != nil {
		a.window.Close()
		return nil, err
	}

	a.sim, err = pet.New(petConfig(cfg), catalog, screenRect(bounds), rng)
	if err != nil {
		a.window.Close()
		return nil, err
	}

	a.renderer, err = renderer.New(a.window.Renderer(), cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	for name, anim := range anims {
		if err := a.renderer.Upload(name, anim.Frames); err != nil {
			a.renderer.Close()
			a.window.Close()
			return nil, err
		}
	}

	a.input = input.New()
	a.sfx = newSFX(cfg)

	pos := a.sim.Position()
	a.clipName, a.clip = a.sim.Animation()
	a.frame = pet.Frame{X: pos.X, Y: pos.Y, Animation: a.clipName}

	logger.Info("pet initialized",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("animations", len(anims)),
	)
	return a, nil
}

// Run drives the main loop until a quit event arrives. Simulation ticks run
// on a fixed step of movement.update_rate_ms; the animation frame timer runs
// on the wall clock with the playing clip's interval.
func (a *App) Run() error {
	a.running = true

	step := time.Duration(a.cfg.Movement.UpdateRateMs) * time.Millisecond
	stepMs := float64(a.cfg.Movement.UpdateRateMs)
	frameLeft := a.clip.Interval

	lastTime := time.Now()
	var acc time.Duration

	logger.Info("starting pet loop", zap.Duration("step", step))

	for a.running {
		now := time.Now()
		elapsed := now.Sub(lastTime)
		lastTime = now
		if elapsed > maxCatchUp {
			elapsed = maxCatchUp
		}
		acc += elapsed

		// 1. Input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		// 2. Fixed-step simulation
		for acc >= step {
			a.frame = a.sim.Tick(stepMs)
			acc -= step
			if a.sim.Bounced() && a.sfx != nil {
				a.sfx.Play(cueBounce)
			}
		}

		// 3. Animation frame pacing. A clip change re-arms the timer with
		// the new clip's interval.
		if name, clip := a.sim.Animation(); name != a.clipName {
			a.clipName, a.clip = name, clip
			frameLeft = clip.Interval
		}
		if a.clip.Interval > 0 {
			frameLeft -= elapsed
			for frameLeft <= 0 {
				a.sim.AnimationTick()
				frameLeft += a.clip.Interval
			}
		}

		// 4. Move the window and draw the frame
		a.window.SetPosition(int(a.frame.X), int(a.frame.Y))
		if err := a.renderer.Draw(a.frame.Animation, a.frame.FrameIndex, a.frame.Mirrored); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 5. Sleep off the remainder of the step
		if wait := step - acc; wait > 0 {
			time.Sleep(wait)
		}
	}

	return nil
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing pet")

	if a.sfx != nil {
		a.sfx.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// handleEvent forwards one input event to the simulation.
func (a *App) handleEvent(event input.Event) {
	p := geom.V(event.X, event.Y)

	switch event.Type {
	case input.EventQuit:
		a.running = false

	case input.EventHoverEnter:
		a.sim.HoverEnter(p)
	case input.EventHoverMove:
		a.sim.HoverMove(p)
	case input.EventHoverLeave:
		a.sim.HoverLeave()

	case input.EventDragStart:
		a.sim.DragStart(p, time.Now())
	case input.EventDragMove:
		a.sim.DragMove(p, time.Now())
		a.frame = a.tickFrame()
	case input.EventDragEnd:
		if launched := a.sim.DragEnd(); launched && a.sfx != nil {
			a.sfx.Play(cueLaunch)
		}

	case input.EventDisplayChange:
		bounds, err := window.UsableBounds(a.cfg.Window.Display)
		if err != nil {
			logger.Warn("failed to refresh display bounds", zap.Error(err))
			return
		}
		a.sim.SetBounds(screenRect(bounds))
		logger.Info("display changed",
			zap.Int32("width", bounds.W),
			zap.Int32("height", bounds.H),
		)
	}
}

// tickFrame refreshes the render snapshot without advancing time, so a
// dragged window follows the cursor within the same loop iteration.
func (a *App) tickFrame() pet.Frame {
	return a.sim.Tick(0)
}

// newSFX builds the sound manager, or nil when audio is disabled or the
// speaker cannot be opened. Sound is decoration; its failures never stop
// the pet.
func newSFX(cfg *config.Config) *audio.Manager {
	if !cfg.Audio.Enabled {
		return nil
	}

	m := audio.New(cfg.Audio.Volume)
	if err := m.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return nil
	}

	cues := map[string]string{
		cueBounce: cfg.Audio.BounceSound,
		cueLaunch: cfg.Audio.LaunchSound,
	}
	loaded := 0
	for name, file := range cues {
		if file == "" {
			continue
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(cfg.Sprites.BasePath, file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Warn("failed to read sound cue", zap.String("cue", name), zap.Error(err))
			continue
		}
		if err := m.LoadCue(name, data); err != nil {
			logger.Warn("failed to decode sound cue", zap.String("cue", name), zap.Error(err))
			continue
		}
		loaded++
	}
	if loaded == 0 {
		m.Close()
		return nil
	}

	logger.Info("audio initialized", zap.Int("cues", loaded))
	return m
}

// spriteSpecs converts the sprite config into loader specs.
func spriteSpecs(cfg *config.Config) map[string]sprite.Spec {
	specs := make(map[string]sprite.Spec, len(cfg.Sprites.States))
	for name, state := range cfg.Sprites.States {
		specs[name] = sprite.Spec{
			File:      state.File,
			Frames:    state.Frames,
			Interval:  state.FrameInterval(),
			Layout:    state.Layout,
			FrameSize: state.FrameSize,
		}
	}
	return specs
}

// clipsOf reduces loaded animations to the catalog's frame counts and
// intervals.
func clipsOf(anims map[string]sprite.Animation) map[string]pet.Clip {
	clips := make(map[string]pet.Clip, len(anims))
	for name, anim := range anims {
		clips[name] = pet.Clip{
			Frames:   len(anim.Frames),
			Interval: anim.Interval,
		}
	}
	return clips
}

// petConfig maps the file schema onto the simulation's tunables.
func petConfig(cfg *config.Config) pet.Config {
	return pet.Config{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		BottomOffset: cfg.Window.BottomOffset,

		WalkSpeed:    rangeOf(cfg.Movement.WalkSpeedRange),
		WalkInterval: rangeOf(cfg.Movement.WalkIntervalMs),

		MoveSpeed:       cfg.Movement.Speed,
		StateIntervalMs: float64(cfg.Movement.StateIntervalMs),
		TurnProbability: cfg.Movement.TurnProbability,
		TurnCooldownMs:  float64(cfg.Movement.TurnCooldownMs),

		BobAmplitude: cfg.Movement.BobAmplitude,
		BobSpeed:     cfg.Movement.BobSpeed,

		Gravity:          cfg.Physics.Gravity,
		HopImpulse:       cfg.Physics.HopImpulse,
		HoverImpulse:     cfg.Physics.HoverImpulse,
		HopInterval:      rangeOf(cfg.Physics.HopIntervalMs),
		HoverCooldownMs:  cfg.Physics.HoverCooldownMs,
		GroundDrag:       cfg.Physics.GroundDrag,
		AirDrag:          cfg.Physics.AirDrag,
		BounceDamping:    cfg.Physics.BounceDamping,
		LaunchMultiplier: cfg.Physics.LaunchMultiplier,
		MaxSpeedX:        cfg.Physics.MaxSpeedX,
		MaxSpeedY:        cfg.Physics.MaxSpeedY,
	}
}

// rangeOf converts a validated [low, high] pair.
func rangeOf(r []float64) pet.Range {
	return pet.Range{Low: r[0], High: r[1]}
}

// screenRect converts SDL display bounds into simulation space.
func screenRect(b sdl.Rect) geom.Rect {
	return geom.R(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
}
