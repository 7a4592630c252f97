// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

// Event types for game use.
const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type EventType
	Key  sdl.Scancode
}

// Input polls SDL events and tracks which keys are held between frames,
// which the movement code needs for continuous motion.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (in *Input) Update() bool {
	in.events = in.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.events = append(in.events, Event{Type: EventQuit})
			return true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					in.events = append(in.events, Event{Type: EventQuit})
					return true
				}
				in.held[e.Keysym.Scancode] = true
				in.events = append(in.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				delete(in.held, e.Keysym.Scancode)
				in.events = append(in.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}
		}
	}

	return false
}

// Held reports whether a key is currently held down.
func (in *Input) Held(key sdl.Scancode) bool {
	return in.held[key]
}

// Events returns the events collected by the last Update call.
func (in *Input) Events() []Event {
	return in.events
}
