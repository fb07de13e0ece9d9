// Package input translates SDL2 events into creature-level events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for the pet loop
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventHoverEnter
	EventHoverLeave
	EventHoverMove
	EventDragStart
	EventDragMove
	EventDragEnd
	EventDisplayChange
)

// Event represents a processed input event. X and Y are desktop coordinates:
// the window is creature-sized and roams the screen, so window-local
// positions mean nothing to the simulation.
type Event struct {
	Type EventType
	X    float64
	Y    float64
}

// Input turns the SDL event stream into pet events. It tracks the held drag
// button itself so motion is classified as hover or drag without the caller
// keeping state.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to pet events.
// Returns true if the pet should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_ENTER:
				i.append(EventHoverEnter)
			case sdl.WINDOWEVENT_LEAVE:
				// A drag keeps the pointer logically inside; the leave is
				// the window being dragged out from under the cursor.
				if !i.dragging {
					i.append(EventHoverLeave)
				}
			}

		case *sdl.DisplayEvent:
			i.events = append(i.events, Event{Type: EventDisplayChange})

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				switch e.Keysym.Scancode {
				case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
					i.events = append(i.events, Event{Type: EventQuit})
					quit = true
				}
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.append(EventDragMove)
			} else {
				i.append(EventHoverMove)
			}

		case *sdl.MouseButtonEvent:
			switch {
			case e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT:
				i.dragging = true
				// Capture so motion keeps flowing while the cursor
				// outruns the window.
				sdl.CaptureMouse(true)
				i.append(EventDragStart)
			case e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT:
				if i.dragging {
					i.dragging = false
					sdl.CaptureMouse(false)
					i.append(EventDragEnd)
				}
			case e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_RIGHT:
				i.events = append(i.events, Event{Type: EventQuit})
				quit = true
			}
		}
	}

	return quit
}

// append records an event at the current global cursor position.
func (i *Input) append(t EventType) {
	x, y, _ := sdl.GetGlobalMouseState()
	i.events = append(i.events, Event{Type: t, X: float64(x), Y: float64(y)})
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsDragging reports whether a drag is in progress.
func (i *Input) IsDragging() bool {
	return i.dragging
}
