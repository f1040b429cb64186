package ringfinder

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of pointer and keyboard steps.
type Script struct {
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one replayed input.
//
// Actions: down, move, up, click (down then up), wait, key.
// Positions resolve against Target ("slider", "metal:yellow-gold", ...):
// x = target.X + At*target.W + DX, y = target centre. Without a target, a
// step reuses the previous position shifted by DX.
type Step struct {
	Action string        `yaml:"action"`
	Kind   string        `yaml:"kind,omitempty"`
	Target string        `yaml:"target,omitempty"`
	At     *float64      `yaml:"at,omitempty"`
	DX     float64       `yaml:"dx,omitempty"`
	Wait   time.Duration `yaml:"wait,omitempty"`
	Key    string        `yaml:"key,omitempty"`
}

// Result is the state left behind by a replay.
type Result struct {
	View          string    `yaml:"view"`
	Transitioning bool      `yaml:"transitioning"`
	Selection     Selection `yaml:"selection"`
	CarouselIndex *int      `yaml:"carousel_index,omitempty"`
}

// ParseScript decodes a YAML script. Unknown fields are errors.
func ParseScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, nil
}

// Snapshot reports the model's current state.
func Snapshot(m *Model) Result {
	r := Result{
		View:          m.host.View().String(),
		Transitioning: m.host.Transitioning(),
		Selection:     m.host.Selection(),
	}
	if m.carousel != nil {
		i := m.carousel.Index()
		r.CarouselIndex = &i
	}
	return r
}

var replayKeys = map[string]tea.KeyType{
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := replayKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// Replay runs script against m, advancing sched on wait steps. The model is
// rendered before every step so targets resolve against what is on screen.
func Replay(m *Model, sched *ManualScheduler, script *Script) (Result, error) {
	var x, y float64
	for i, st := range script.Steps {
		m.View()

		if st.Target != "" {
			r, ok := m.Locate(st.Target)
			if !ok {
				return Snapshot(m), fmt.Errorf("step %d: target %q not on screen", i, st.Target)
			}
			at := 0.5
			if st.At != nil {
				at = *st.At
			}
			x = r.X + at*r.W + st.DX
			_, y = r.Center()
		} else {
			x += st.DX
		}

		kind, err := ParsePointerKind(st.Kind)
		if err != nil {
			return Snapshot(m), fmt.Errorf("step %d: %w", i, err)
		}
		ev := PointerEvent{Kind: kind, X: x, Y: y}

		switch st.Action {
		case "down":
			ev.Phase = PhaseDown
			m.HandlePointer(ev)
		case "move":
			ev.Phase = PhaseMove
			m.HandlePointer(ev)
		case "up":
			ev.Phase = PhaseUp
			m.HandlePointer(ev)
		case "click":
			ev.Phase = PhaseDown
			m.HandlePointer(ev)
			ev.Phase = PhaseUp
			m.HandlePointer(ev)
		case "wait":
			sched.Advance(st.Wait)
			m.sync()
		case "key":
			m.Update(keyMsg(st.Key))
		default:
			return Snapshot(m), fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	m.View()
	return Snapshot(m), nil
}
