package ringfinder

import (
	"log"
	"math"
)

// ButtonRow is a row of click targets. A click is a press and a release
// over the same button; the pointer may wander in between.
type ButtonRow struct {
	base
	Drag[string]

	buttons     []Option
	selected    string
	buttonWidth float64
	disabled    bool
	onSelect    func(id string)
}

// NewButtonRow creates a row over buttons. Buttons share the row width
// equally unless ButtonWidth is set.
func NewButtonRow(name string, bus *PointerBus, buttons []Option) *ButtonRow {
	r := &ButtonRow{
		base:    base{name: name, bus: bus},
		buttons: buttons,
	}
	if len(buttons) == 1 {
		r.selected = buttons[0].ID
	}
	return r
}

// OnSelect sets the callback invoked with the clicked button id.
func (r *ButtonRow) OnSelect(fn func(id string)) *ButtonRow {
	r.onSelect = fn
	return r
}

// ButtonWidth fixes each button to w pixels, laid out from the left edge.
func (r *ButtonRow) ButtonWidth(w float64) *ButtonRow {
	r.buttonWidth = w
	return r
}

// SetBounds sets the row rectangle.
func (r *ButtonRow) SetBounds(b Rect) {
	r.setBounds(b)
}

// Buttons returns the buttons in display order.
func (r *ButtonRow) Buttons() []Option {
	return r.buttons
}

// SetSelected marks id as the selected button.
func (r *ButtonRow) SetSelected(id string) {
	r.selected = id
}

// Selected returns the selected button id.
func (r *ButtonRow) Selected() string {
	return r.selected
}

// SetDisabled turns press handling off or on. Disabling cancels a press
// in progress.
func (r *ButtonRow) SetDisabled(d bool) {
	r.disabled = d
	if d {
		r.end()
	}
}

// Disabled reports whether presses are ignored.
func (r *ButtonRow) Disabled() bool {
	return r.disabled
}

func (r *ButtonRow) width() float64 {
	if r.buttonWidth > 0 {
		return r.buttonWidth
	}
	if len(r.buttons) == 0 {
		return 0
	}
	return r.bounds.W / float64(len(r.buttons))
}

// ButtonAt returns the id of the button under (x, y), or "".
func (r *ButtonRow) ButtonAt(x, y float64) string {
	w := r.width()
	if w <= 0 || !r.bounds.Contains(x, y) {
		return ""
	}
	i := int(math.Floor((x - r.bounds.X) / w))
	if i < 0 || i >= len(r.buttons) {
		return ""
	}
	return r.buttons[i].ID
}

// ButtonRect returns the rectangle of button id.
func (r *ButtonRow) ButtonRect(id string) (Rect, bool) {
	w := r.width()
	for i, b := range r.buttons {
		if b.ID == id {
			return Rect{X: r.bounds.X + float64(i)*w, Y: r.bounds.Y, W: w, H: r.bounds.H}, true
		}
	}
	return Rect{}, false
}

// PointerDown arms the button under the pointer.
func (r *ButtonRow) PointerDown(ev PointerEvent) {
	if r.disabled {
		return
	}
	id := r.ButtonAt(ev.X, ev.Y)
	if id == "" {
		return
	}
	r.begin(r.bus, r, ev, id)
}

// PointerMove only marks the session as moved; buttons do not drag.
func (r *ButtonRow) PointerMove(ev PointerEvent) {
	if s := r.Session(); s != nil {
		s.Moved = true
	}
}

// PointerUp clicks the armed button if the release is over it.
func (r *ButtonRow) PointerUp(ev PointerEvent) {
	sess := r.end()
	if sess == nil || r.disabled {
		return
	}
	if r.ButtonAt(ev.X, ev.Y) != sess.Origin {
		return
	}
	log.Printf("buttons %s: click %q", r.name, sess.Origin)
	if r.onSelect != nil {
		r.onSelect(sess.Origin)
	}
}

// Teardown drops an armed press.
func (r *ButtonRow) Teardown() {
	r.end()
}

// Step selects the button delta positions from the selected one.
// Rows with a single button have nothing to step through.
func (r *ButtonRow) Step(delta int) {
	if len(r.buttons) < 2 || r.disabled {
		return
	}
	i := 0
	for j, b := range r.buttons {
		if b.ID == r.selected {
			i = j
		}
	}
	next := r.buttons[clampInt(i+delta, 0, len(r.buttons)-1)].ID
	if next != r.selected && r.onSelect != nil {
		r.onSelect(next)
	}
}

// Activate clicks the selected button.
func (r *ButtonRow) Activate() {
	if r.disabled || r.selected == "" {
		return
	}
	if r.onSelect != nil {
		r.onSelect(r.selected)
	}
}
