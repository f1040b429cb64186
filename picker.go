package ringfinder

import (
	"log"
	"math"
)

// DragGain is how far a picker scrolls per pixel of pointer travel.
const DragGain = 2

// Picker is a horizontally overflowing row of option cards. Dragging
// scrolls it freely, with no momentum and no snapping to card edges.
// A press and release with no move in between selects the card under the
// pointer; any move, even one that returns to the origin, turns the press
// into a drag and suppresses selection.
type Picker struct {
	base
	Drag[float64]

	options   []Option
	selected  string
	offset    float64
	cardWidth float64
	pressedID string
	onSelect  func(id string)
}

// NewPicker creates a picker over options. cardWidth is the pixel width of
// one card including its gap.
func NewPicker(name string, bus *PointerBus, options []Option, cardWidth float64) *Picker {
	return &Picker{
		base:      base{name: name, bus: bus},
		options:   options,
		cardWidth: cardWidth,
	}
}

// OnSelect sets the callback invoked when a card is clicked.
func (p *Picker) OnSelect(fn func(id string)) *Picker {
	p.onSelect = fn
	return p
}

// Options returns the cards in display order.
func (p *Picker) Options() []Option {
	return p.options
}

// SetSelected marks id as the selected card.
func (p *Picker) SetSelected(id string) {
	p.selected = id
}

// Selected returns the selected card id.
func (p *Picker) Selected() string {
	return p.selected
}

// CardWidth returns the pixel width of one card.
func (p *Picker) CardWidth() float64 {
	return p.cardWidth
}

// SetBounds sets the visible viewport and re-clamps the scroll offset.
func (p *Picker) SetBounds(r Rect) {
	p.setBounds(r)
	p.setOffset(p.offset)
}

// Offset returns the scroll offset in pixels.
func (p *Picker) Offset() float64 {
	return p.offset
}

// MaxOffset is the furthest the content can scroll.
func (p *Picker) MaxOffset() float64 {
	return math.Max(0, float64(len(p.options))*p.cardWidth-p.bounds.W)
}

func (p *Picker) setOffset(v float64) {
	p.offset = clamp(v, 0, p.MaxOffset())
}

// Dragging reports whether the current press has turned into a drag.
// A press that has not moved yet is not a drag.
func (p *Picker) Dragging() bool {
	s := p.Session()
	return s != nil && s.Moved
}

// OptionAt returns the id of the card under (x, y), or "" when the point
// is outside the viewport or past the last card.
func (p *Picker) OptionAt(x, y float64) string {
	if !p.bounds.Contains(x, y) || p.cardWidth <= 0 {
		return ""
	}
	i := int(math.Floor((x - p.bounds.X + p.offset) / p.cardWidth))
	if i < 0 || i >= len(p.options) {
		return ""
	}
	return p.options[i].ID
}

// CardRect returns the on-screen rectangle of card id, which may extend
// past the viewport.
func (p *Picker) CardRect(id string) (Rect, bool) {
	i := p.indexOf(id)
	if i < 0 {
		return Rect{}, false
	}
	return Rect{
		X: p.bounds.X + float64(i)*p.cardWidth - p.offset,
		Y: p.bounds.Y,
		W: p.cardWidth,
		H: p.bounds.H,
	}, true
}

func (p *Picker) indexOf(id string) int {
	for i, o := range p.options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// PointerDown records the press position and current scroll offset.
func (p *Picker) PointerDown(ev PointerEvent) {
	sess, started := p.begin(p.bus, p, ev, p.offset)
	if !started {
		return
	}
	p.pressedID = p.OptionAt(ev.X, ev.Y)
	log.Printf("picker %s: press %s on %q", p.name, sess.ID, p.pressedID)
}

// PointerMove scrolls by DragGain times the travel since the press.
func (p *Picker) PointerMove(ev PointerEvent) {
	sess := p.Session()
	if sess == nil {
		return
	}
	sess.Moved = true
	p.setOffset(sess.Origin - (ev.X-sess.OriginX)*DragGain)
}

// PointerUp ends the gesture and selects the pressed card if the pointer
// never moved and is released over the same card.
func (p *Picker) PointerUp(ev PointerEvent) {
	sess := p.end()
	if sess == nil {
		return
	}
	pressed := p.pressedID
	p.pressedID = ""
	if sess.Moved {
		log.Printf("picker %s: drag %s ended at offset %.0f", p.name, sess.ID, p.offset)
		return
	}
	if pressed == "" || p.OptionAt(ev.X, ev.Y) != pressed {
		return
	}
	log.Printf("picker %s: click %s selects %q", p.name, sess.ID, pressed)
	if p.onSelect != nil {
		p.onSelect(pressed)
	}
}

// PointerLeave clears the drag when the pointer leaves the viewport.
// No selection happens for a gesture cut short this way.
func (p *Picker) PointerLeave() {
	if sess := p.end(); sess != nil {
		log.Printf("picker %s: drag %s left viewport", p.name, sess.ID)
	}
	p.pressedID = ""
}

// Teardown ends any gesture without selecting.
func (p *Picker) Teardown() {
	p.end()
	p.pressedID = ""
}

// Step selects the card delta positions from the current one and scrolls
// it into view.
func (p *Picker) Step(delta int) {
	if len(p.options) == 0 || p.Session() != nil {
		return
	}
	i := clampInt(p.indexOf(p.selected)+delta, 0, len(p.options)-1)
	id := p.options[i].ID
	p.EnsureVisible(id)
	if id != p.selected && p.onSelect != nil {
		p.onSelect(id)
	}
}

// Activate does nothing; clicking a card already selects it.
func (p *Picker) Activate() {}

// EnsureVisible scrolls the least amount needed to show card id in full.
func (p *Picker) EnsureVisible(id string) {
	i := p.indexOf(id)
	if i < 0 {
		return
	}
	left := float64(i) * p.cardWidth
	right := left + p.cardWidth
	switch {
	case left < p.offset:
		p.setOffset(left)
	case right > p.offset+p.bounds.W:
		p.setOffset(right - p.bounds.W)
	}
}
