package ringfinder

import "testing"

func TestFocusManager(t *testing.T) {
	bus := NewPointerBus()
	metal := NewButtonRow("metal", bus, DefaultCatalogs().Metals.Options)
	slider := NewSlider("slider", bus)
	budget := NewButtonRow("budget", bus, DefaultCatalogs().Budgets.Options)

	fm := NewFocusManager()
	var changes []int
	fm.OnChange(func(i int) { changes = append(changes, i) })
	fm.Register(metal).Register(slider).Register(budget)

	t.Run("FirstRegisteredFocused", func(t *testing.T) {
		if !metal.Focused() || fm.Current() != metal {
			t.Error("expected metal focused")
		}
	})

	t.Run("NextAndPrevWrap", func(t *testing.T) {
		fm.Prev()
		if fm.Index() != 2 || !budget.Focused() || metal.Focused() {
			t.Errorf("expected budget focused, got index %d", fm.Index())
		}
		fm.Next()
		if fm.Index() != 0 {
			t.Errorf("expected index 0, got %d", fm.Index())
		}
	})

	t.Run("FocusNamed", func(t *testing.T) {
		fm.FocusNamed("slider")
		if !slider.Focused() {
			t.Error("expected slider focused")
		}
		fm.FocusNamed("missing")
		if fm.Index() != 1 {
			t.Errorf("expected focus unchanged, got %d", fm.Index())
		}
	})

	t.Run("OnChange", func(t *testing.T) {
		want := []int{2, 0, 1}
		if len(changes) != len(want) {
			t.Fatalf("expected %v, got %v", want, changes)
		}
		for i := range want {
			if changes[i] != want[i] {
				t.Errorf("change %d: expected %d, got %d", i, want[i], changes[i])
			}
		}
	})

	t.Run("Clear", func(t *testing.T) {
		fm.Clear()
		if fm.Current() != nil {
			t.Error("expected no current widget")
		}
		if slider.Focused() {
			t.Error("expected slider unfocused")
		}
	})
}
