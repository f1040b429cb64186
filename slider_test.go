package ringfinder

import "testing"

func newTestSlider() (*Slider, *PointerBus, *[]int) {
	bus := NewPointerBus()
	var commits []int
	s := NewSlider("slider", bus).OnChange(func(level int) {
		commits = append(commits, level)
	})
	s.SetBounds(Rect{X: 100, Y: 0, W: 400, H: 16})
	s.SetValue(2)
	return s, bus, &commits
}

func press(kind PointerKind, phase PointerPhase, x, y float64) PointerEvent {
	return PointerEvent{Kind: kind, Phase: phase, X: x, Y: y}
}

func TestQuantize(t *testing.T) {
	cases := []struct {
		p    float64
		want int
	}{
		{0, 0},
		{12.4, 0},
		{12.5, 1},
		{25, 1},
		{49.9, 2},
		{62.5, 3},
		{87.4, 3},
		{87.5, 4},
		{100, 4},
		{-30, 0},
		{180, 4},
	}
	for _, c := range cases {
		if got := Quantize(c.p); got != c.want {
			t.Errorf("Quantize(%v): expected %d, got %d", c.p, c.want, got)
		}
	}

	t.Run("LevelPositionRoundTrips", func(t *testing.T) {
		for level := 0; level < SliderLevels; level++ {
			if got := Quantize(LevelPosition(level)); got != level {
				t.Errorf("level %d: expected %d, got %d", level, level, got)
			}
		}
	})
}

func TestSliderPosition(t *testing.T) {
	track := Rect{X: 100, W: 400, H: 16}

	t.Run("ClampsOutsideTrack", func(t *testing.T) {
		if got := SliderPosition(20, track); got != 0 {
			t.Errorf("expected 0 left of track, got %v", got)
		}
		if got := SliderPosition(900, track); got != 100 {
			t.Errorf("expected 100 right of track, got %v", got)
		}
	})

	t.Run("Midpoint", func(t *testing.T) {
		if got := SliderPosition(300, track); got != 50 {
			t.Errorf("expected 50, got %v", got)
		}
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		if got := SliderPosition(300, Rect{X: 100}); got != 0 {
			t.Errorf("expected 0 for zero-width track, got %v", got)
		}
	})
}

func TestMarkerOffsets(t *testing.T) {
	got := MarkerOffsets(400)
	want := [SliderLevels]float64{0, 100, 200, 300, 400}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSliderDrag(t *testing.T) {
	t.Run("TapCommitsNearestLevel", func(t *testing.T) {
		s, bus, commits := newTestSlider()
		s.PointerDown(press(PointerMouse, PhaseDown, 110, 8))
		bus.Dispatch(press(PointerMouse, PhaseUp, 110, 8))

		if len(*commits) != 1 || (*commits)[0] != 0 {
			t.Errorf("expected one commit of 0, got %v", *commits)
		}
		if bus.Len() != 0 {
			t.Errorf("expected bus empty after release, got %d", bus.Len())
		}
	})

	t.Run("DragCommitsOnlyOnRelease", func(t *testing.T) {
		s, bus, commits := newTestSlider()
		s.PointerDown(press(PointerMouse, PhaseDown, 300, 8))
		bus.Dispatch(press(PointerMouse, PhaseMove, 350, 8))
		bus.Dispatch(press(PointerMouse, PhaseMove, 450, 8))

		if len(*commits) != 0 {
			t.Errorf("expected no commits during drag, got %v", *commits)
		}
		if s.Position() != 87.5 {
			t.Errorf("expected unsnapped position 87.5, got %v", s.Position())
		}

		bus.Dispatch(press(PointerMouse, PhaseUp, 450, 8))
		if len(*commits) != 1 || (*commits)[0] != 4 {
			t.Errorf("expected one commit of 4, got %v", *commits)
		}
	})

	t.Run("ReleaseOutsideTrackClamps", func(t *testing.T) {
		s, bus, commits := newTestSlider()
		s.PointerDown(press(PointerTouch, PhaseDown, 300, 8))
		bus.Dispatch(press(PointerTouch, PhaseMove, -500, 200))
		bus.Dispatch(press(PointerTouch, PhaseUp, -500, 200))

		if len(*commits) != 1 || (*commits)[0] != 0 {
			t.Errorf("expected one commit of 0, got %v", *commits)
		}
	})

	t.Run("MarkersDimWhileDragging", func(t *testing.T) {
		s, bus, _ := newTestSlider()
		if !s.MarkerActive(2) {
			t.Error("expected marker 2 active at rest")
		}
		s.PointerDown(press(PointerMouse, PhaseDown, 300, 8))
		for i := 0; i < SliderLevels; i++ {
			if s.MarkerActive(i) {
				t.Errorf("expected marker %d dimmed while dragging", i)
			}
		}
		bus.Dispatch(press(PointerMouse, PhaseUp, 300, 8))
	})

	t.Run("PositionFollowsValueAtRest", func(t *testing.T) {
		s, _, _ := newTestSlider()
		s.SetValue(3)
		if s.Position() != 75 {
			t.Errorf("expected 75, got %v", s.Position())
		}
		s.SetValue(9)
		if s.Value() != 4 {
			t.Errorf("expected value clamped to 4, got %d", s.Value())
		}
	})

	t.Run("TeardownDiscards", func(t *testing.T) {
		s, bus, commits := newTestSlider()
		s.PointerDown(press(PointerMouse, PhaseDown, 480, 8))
		s.Teardown()
		bus.Dispatch(press(PointerMouse, PhaseUp, 480, 8))

		if len(*commits) != 0 {
			t.Errorf("expected no commit after teardown, got %v", *commits)
		}
		if s.Dragging() {
			t.Error("expected no drag after teardown")
		}
		if bus.Len() != 0 {
			t.Errorf("expected bus empty after teardown, got %d", bus.Len())
		}
	})

	t.Run("SecondPressIgnoredWhileDragging", func(t *testing.T) {
		s, bus, commits := newTestSlider()
		s.PointerDown(press(PointerMouse, PhaseDown, 110, 8))
		s.PointerDown(press(PointerMouse, PhaseDown, 490, 8))
		if bus.Len() != 1 {
			t.Errorf("expected one listener, got %d", bus.Len())
		}
		bus.Dispatch(press(PointerMouse, PhaseUp, 110, 8))
		if len(*commits) != 1 || (*commits)[0] != 0 {
			t.Errorf("expected one commit of 0, got %v", *commits)
		}
	})
}

func TestSliderStep(t *testing.T) {
	s, _, commits := newTestSlider()
	s.Step(1)
	s.SetValue(4)
	s.Step(1)

	if len(*commits) != 1 || (*commits)[0] != 3 {
		t.Errorf("expected one commit of 3, got %v", *commits)
	}
}
