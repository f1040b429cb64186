package ringfinder

// Widget is a pointer-driven component placed on screen by the layout.
// Press events are delivered by hit testing against Bounds; moves and
// releases arrive through the PointerBus while the widget is dragging.
type Widget interface {
	Name() string
	SetBounds(r Rect)
	Bounds() Rect
	PointerDown(ev PointerEvent)
	// Teardown ends any active drag session without committing it.
	Teardown()
}

// leaver is implemented by widgets that react to the pointer leaving them.
type leaver interface {
	PointerLeave()
}

// focusable is implemented by widgets that take keyboard focus.
type focusable interface {
	Name() string
	setFocused(focused bool)
	// Step nudges the widget's value by delta positions.
	Step(delta int)
	// Activate triggers the widget's primary action.
	Activate()
}

// base carries the fields every widget shares.
type base struct {
	name    string
	bounds  Rect
	focused bool
	bus     *PointerBus
}

func (b *base) Name() string { return b.name }
func (b *base) Bounds() Rect { return b.bounds }
func (b *base) Focused() bool { return b.focused }
func (b *base) setFocused(f bool) { b.focused = f }
func (b *base) setBounds(r Rect) { b.bounds = r }
