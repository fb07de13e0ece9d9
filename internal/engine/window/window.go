// Package window handles the SDL2 overlay window the creature lives in.
package window

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	Display int
}

// Window wraps the borderless always-on-top SDL2 window and its 2D renderer.
// The window is exactly creature-sized and is moved around the desktop every
// frame; the desktop itself stays visible behind the transparent clear color
// wherever a compositor honors the alpha channel.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
}

// New creates the overlay window on the configured display.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	// Initialize SDL2
	slog.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// An always-on-top window that bypasses the compositor flickers on X11,
	// so keep compositing enabled.
	sdl.SetHint(sdl.HINT_VIDEO_X11_NET_WM_BYPASS_COMPOSITOR, "0")

	bounds, err := UsableBounds(cfg.Display)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	// Borderless utility window: no decorations, no taskbar entry, always
	// above normal windows.
	flags := uint32(sdl.WINDOW_BORDERLESS | sdl.WINDOW_ALWAYS_ON_TOP |
		sdl.WINDOW_SKIP_TASKBAR | sdl.WINDOW_UTILITY | sdl.WINDOW_SHOWN)

	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		bounds.X+(bounds.W-int32(cfg.Width))/2,
		bounds.Y+bounds.H-int32(cfg.Height),
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	if err := w.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		slog.Warn("failed to enable alpha blending", "error", err)
	}

	slog.Info("window created",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"display", cfg.Display,
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	slog.Info("closing window")

	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Renderer returns the 2D renderer for the window.
func (w *Window) Renderer() *sdl.Renderer {
	return w.renderer
}

// Size returns the creature window size.
func (w *Window) Size() (int, int) {
	return w.config.Width, w.config.Height
}

// Position returns the window origin in desktop coordinates.
func (w *Window) Position() (int, int) {
	x, y := w.sdlWindow.GetPosition()
	return int(x), int(y)
}

// SetPosition moves the window to the given desktop coordinates.
func (w *Window) SetPosition(x, y int) {
	w.sdlWindow.SetPosition(int32(x), int32(y))
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// UsableBounds returns the work area of the given display, falling back to
// the primary display when the index does not exist.
func UsableBounds(display int) (sdl.Rect, error) {
	n, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return sdl.Rect{}, fmt.Errorf("SDL_GetNumVideoDisplays failed: %w", err)
	}
	if display < 0 || display >= n {
		slog.Warn("display index out of range, using primary", "display", display, "displays", n)
		display = 0
	}

	bounds, err := sdl.GetDisplayUsableBounds(display)
	if err != nil {
		return sdl.Rect{}, fmt.Errorf("SDL_GetDisplayUsableBounds failed: %w", err)
	}
	return bounds, nil
}
