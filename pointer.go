package ringfinder

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PointerKind identifies the device that produced a pointer event.
// Gesture code reads it only where thresholds differ between devices.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

func (k PointerKind) String() string {
	switch k {
	case PointerTouch:
		return "touch"
	default:
		return "mouse"
	}
}

// ParsePointerKind parses "mouse" or "touch". Empty means mouse.
func ParsePointerKind(s string) (PointerKind, error) {
	switch strings.ToLower(s) {
	case "", "mouse":
		return PointerMouse, nil
	case "touch":
		return PointerTouch, nil
	}
	return PointerMouse, fmt.Errorf("unknown pointer kind %q", s)
}

// PointerPhase is the stage of a pointer gesture an event belongs to.
type PointerPhase int

const (
	PhaseDown PointerPhase = iota
	PhaseMove
	PhaseUp
)

func (p PointerPhase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	}
	return "unknown"
}

// PointerEvent is the single source of truth for pointer position,
// regardless of whether a mouse or a finger produced it.
// Coordinates are in pixels.
type PointerEvent struct {
	Kind  PointerKind
	Phase PointerPhase
	X, Y  float64
}

// FromMouse converts a terminal mouse message into a pointer event.
// Cells are mapped to their pixel centres. Wheel events and presses of
// buttons other than the left one are not pointer gestures and report false.
func FromMouse(msg tea.MouseMsg, cellW, cellH float64) (PointerEvent, bool) {
	ev := PointerEvent{
		Kind: PointerMouse,
		X:    (float64(msg.X) + 0.5) * cellW,
		Y:    (float64(msg.Y) + 0.5) * cellH,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Phase = PhaseDown
	case tea.MouseActionMotion:
		ev.Phase = PhaseMove
	case tea.MouseActionRelease:
		ev.Phase = PhaseUp
	default:
		return ev, false
	}
	return ev, true
}
