package ringfinder

import "testing"

type recorder struct {
	moves, ups int
	onUp       func()
}

func (r *recorder) PointerMove(PointerEvent) { r.moves++ }
func (r *recorder) PointerUp(PointerEvent) {
	r.ups++
	if r.onUp != nil {
		r.onUp()
	}
}

func TestPointerBus(t *testing.T) {
	t.Run("SubscribeIsIdempotent", func(t *testing.T) {
		bus := NewPointerBus()
		r := &recorder{}
		detach := bus.Subscribe(r)
		bus.Subscribe(r)
		if bus.Len() != 1 {
			t.Errorf("expected 1 listener, got %d", bus.Len())
		}
		bus.Dispatch(PointerEvent{Phase: PhaseMove})
		if r.moves != 1 {
			t.Errorf("expected 1 move, got %d", r.moves)
		}
		detach()
		detach()
		if bus.Len() != 0 {
			t.Errorf("expected 0 listeners, got %d", bus.Len())
		}
	})

	t.Run("PressesAreNotDispatched", func(t *testing.T) {
		bus := NewPointerBus()
		r := &recorder{}
		bus.Subscribe(r)
		bus.Dispatch(PointerEvent{Phase: PhaseDown})
		if r.moves != 0 || r.ups != 0 {
			t.Errorf("expected no calls, got moves=%d ups=%d", r.moves, r.ups)
		}
	})

	t.Run("DetachDuringDispatchSkipsListener", func(t *testing.T) {
		bus := NewPointerBus()
		first, second := &recorder{}, &recorder{}
		bus.Subscribe(first)
		first.onUp = bus.Subscribe(second)

		bus.Dispatch(PointerEvent{Phase: PhaseUp})
		if first.ups != 1 {
			t.Errorf("expected first to see the release, got %d", first.ups)
		}
		if second.ups != 0 {
			t.Errorf("expected detached listener to be skipped, got %d", second.ups)
		}
	})
}

func TestDragSession(t *testing.T) {
	t.Run("BeginAttachesEndDetaches", func(t *testing.T) {
		bus := NewPointerBus()
		var d Drag[int]
		r := &recorder{}
		s, started := d.begin(bus, r, PointerEvent{Kind: PointerTouch, X: 42}, 7)
		if !started || s.ID == "" {
			t.Fatal("expected a new session with an id")
		}
		if s.Kind != PointerTouch || s.OriginX != 42 || s.Origin != 7 {
			t.Errorf("unexpected session %+v", s)
		}
		if bus.Len() != 1 {
			t.Errorf("expected 1 listener, got %d", bus.Len())
		}

		again, started := d.begin(bus, r, PointerEvent{X: 99}, 1)
		if started || again != s {
			t.Error("expected the active session back")
		}

		if got := d.end(); got != s || !s.closed {
			t.Error("expected end to close and return the session")
		}
		if d.end() != nil {
			t.Error("expected second end to return nil")
		}
		if bus.Len() != 0 {
			t.Errorf("expected 0 listeners, got %d", bus.Len())
		}
	})

	t.Run("SessionIDsAreUnique", func(t *testing.T) {
		var d Drag[int]
		a, _ := d.begin(nil, nil, PointerEvent{}, 0)
		d.end()
		b, _ := d.begin(nil, nil, PointerEvent{}, 0)
		if a.ID == b.ID {
			t.Errorf("expected distinct ids, both %q", a.ID)
		}
	})

	t.Run("Rebase", func(t *testing.T) {
		s := &DragSession[int]{OriginX: 10, Origin: 1}
		s.Rebase(120, 2)
		if s.OriginX != 120 || s.Origin != 2 {
			t.Errorf("expected origin (120, 2), got (%v, %d)", s.OriginX, s.Origin)
		}
		s.Close()
		s.Close()
	})
}
