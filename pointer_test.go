package ringfinder

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromMouse(t *testing.T) {
	t.Run("CellCentre", func(t *testing.T) {
		ev, ok := FromMouse(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, 8, 16)
		if !ok {
			t.Fatal("expected left press to convert")
		}
		if ev.Phase != PhaseDown || ev.Kind != PointerMouse {
			t.Errorf("expected mouse down, got %s %s", ev.Kind, ev.Phase)
		}
		if ev.X != 28 || ev.Y != 40 {
			t.Errorf("expected (28, 40), got (%v, %v)", ev.X, ev.Y)
		}
	})

	t.Run("MotionAndRelease", func(t *testing.T) {
		if ev, ok := FromMouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, 8, 16); !ok || ev.Phase != PhaseMove {
			t.Errorf("expected move, got %s ok=%v", ev.Phase, ok)
		}
		if ev, ok := FromMouse(tea.MouseMsg{Action: tea.MouseActionRelease}, 8, 16); !ok || ev.Phase != PhaseUp {
			t.Errorf("expected up, got %s ok=%v", ev.Phase, ok)
		}
	})

	t.Run("IgnoresOtherButtons", func(t *testing.T) {
		for _, b := range []tea.MouseButton{tea.MouseButtonRight, tea.MouseButtonWheelUp} {
			if _, ok := FromMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: b}, 8, 16); ok {
				t.Errorf("expected %v press to be ignored", b)
			}
		}
	})
}

func TestParsePointerKind(t *testing.T) {
	for in, want := range map[string]PointerKind{"": PointerMouse, "mouse": PointerMouse, "Touch": PointerTouch} {
		got, err := ParsePointerKind(in)
		if err != nil || got != want {
			t.Errorf("ParsePointerKind(%q): expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParsePointerKind("pen"); err == nil {
		t.Error("expected error for pen")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(12345); got != "$12,345" {
		t.Errorf("expected $12,345, got %q", got)
	}
}
