package ringfinder

import "github.com/google/uuid"

// PointerListener receives pointer events that happen anywhere on screen.
// Widgets are attached only while they hold an active drag session.
type PointerListener interface {
	PointerMove(ev PointerEvent)
	PointerUp(ev PointerEvent)
}

// PointerBus fans screen-wide move and release events out to the widgets
// currently dragging. It plays the part of document-level listeners.
type PointerBus struct {
	entries []busEntry
	nextID  int
}

type busEntry struct {
	id int
	l  PointerListener
}

// NewPointerBus creates an empty bus.
func NewPointerBus() *PointerBus {
	return &PointerBus{}
}

// Subscribe attaches l and returns its detach function.
// Attaching a listener that is already attached does nothing and returns a
// no-op, so the original detach function stays the only owner.
// Detach is idempotent.
func (b *PointerBus) Subscribe(l PointerListener) func() {
	for _, e := range b.entries {
		if e.l == l {
			return func() {}
		}
	}
	b.nextID++
	id := b.nextID
	b.entries = append(b.entries, busEntry{id: id, l: l})
	return func() {
		b.remove(id)
	}
}

func (b *PointerBus) remove(id int) {
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

func (b *PointerBus) attached(id int) bool {
	for _, e := range b.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of attached listeners.
func (b *PointerBus) Len() int {
	return len(b.entries)
}

// Dispatch delivers a move or release event to every attached listener.
// Listeners detached by an earlier listener during the same dispatch are
// skipped. Press events are routed by hit testing, not by the bus.
func (b *PointerBus) Dispatch(ev PointerEvent) {
	snapshot := make([]busEntry, len(b.entries))
	copy(snapshot, b.entries)
	for _, e := range snapshot {
		if !b.attached(e.id) {
			continue
		}
		switch ev.Phase {
		case PhaseMove:
			e.l.PointerMove(ev)
		case PhaseUp:
			e.l.PointerUp(ev)
		}
	}
}

// DragSession is the state of one in-progress gesture on one widget.
// Closing it detaches the widget from the bus; Close is safe to call on
// every exit path.
type DragSession[T any] struct {
	ID      string
	Kind    PointerKind
	OriginX float64
	Origin  T
	// Moved is set by the first move event and never cleared.
	Moved bool

	closed bool
	detach func()
}

// Rebase moves the drag origin to x and origin.
func (s *DragSession[T]) Rebase(x float64, origin T) {
	s.OriginX = x
	s.Origin = origin
}

// Close detaches the session's listener. Further calls are no-ops.
func (s *DragSession[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
}

// Drag holds at most one active session for a widget.
type Drag[T any] struct {
	session *DragSession[T]
}

// begin opens a session and attaches l to bus. If a session is already
// active it is returned unchanged with started=false.
func (d *Drag[T]) begin(bus *PointerBus, l PointerListener, ev PointerEvent, origin T) (s *DragSession[T], started bool) {
	if d.session != nil {
		return d.session, false
	}
	s = &DragSession[T]{
		ID:      uuid.NewString(),
		Kind:    ev.Kind,
		OriginX: ev.X,
		Origin:  origin,
	}
	if bus != nil {
		s.detach = bus.Subscribe(l)
	}
	d.session = s
	return s, true
}

// end closes and returns the active session, or nil when there is none.
func (d *Drag[T]) end() *DragSession[T] {
	s := d.session
	if s == nil {
		return nil
	}
	d.session = nil
	s.Close()
	return s
}

// Session returns the active session or nil.
func (d *Drag[T]) Session() *DragSession[T] {
	return d.session
}

// Dragging reports whether a session is active.
func (d *Drag[T]) Dragging() bool {
	return d.session != nil
}
