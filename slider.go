package ringfinder

import (
	"log"
	"math"
)

// SliderLevels is the number of discrete values a Slider commits.
const SliderLevels = 5

const maxLevel = SliderLevels - 1

// SliderPosition maps a pointer x onto the track as a percentage in [0, 100].
// Positions outside the track clamp to the nearest end; a track with no
// width maps everything to 0.
func SliderPosition(x float64, track Rect) float64 {
	if track.W <= 0 {
		return 0
	}
	return clamp((x-track.X)/track.W, 0, 1) * 100
}

// Quantize snaps a percentage to the nearest level in [0, SliderLevels-1].
// Halves round away from zero.
func Quantize(p float64) int {
	level := int(math.Round(clamp(p, 0, 100) / 100 * maxLevel))
	return clampInt(level, 0, maxLevel)
}

// LevelPosition returns the percentage at which level sits on the track.
func LevelPosition(level int) float64 {
	return float64(clampInt(level, 0, maxLevel)) / maxLevel * 100
}

// MarkerOffsets returns the pixel offsets of the level markers for a track
// of the given width.
func MarkerOffsets(width float64) [SliderLevels]float64 {
	var out [SliderLevels]float64
	for i := range out {
		out[i] = float64(i) / maxLevel * width
	}
	return out
}

// Slider maps a horizontal drag along a fixed track to one of five levels.
// While dragging the thumb follows the pointer unsnapped; the level is
// committed once, on release.
type Slider struct {
	base
	Drag[int]

	value    int
	dragPos  float64
	onChange func(level int)
}

// NewSlider creates a slider attached to bus for drag tracking.
func NewSlider(name string, bus *PointerBus) *Slider {
	return &Slider{base: base{name: name, bus: bus}}
}

// OnChange sets the callback invoked with the committed level on release.
func (s *Slider) OnChange(fn func(level int)) *Slider {
	s.onChange = fn
	return s
}

// SetValue sets the committed level. Out-of-range values are clamped.
func (s *Slider) SetValue(level int) {
	s.value = clampInt(level, 0, maxLevel)
}

// Value returns the committed level.
func (s *Slider) Value() int {
	return s.value
}

// SetBounds sets the track rectangle.
func (s *Slider) SetBounds(r Rect) {
	s.setBounds(r)
}

// Position returns where the thumb is drawn, as a percentage.
// During a drag this is the raw pointer position, otherwise the committed
// level's marker.
func (s *Slider) Position() float64 {
	if s.Dragging() {
		return s.dragPos
	}
	return LevelPosition(s.value)
}

// MarkerActive reports whether marker i is highlighted. Markers follow the
// committed value only and are all dimmed while a drag is in progress.
func (s *Slider) MarkerActive(i int) bool {
	return !s.Dragging() && s.value == i
}

// PointerDown starts a drag at the pressed position.
func (s *Slider) PointerDown(ev PointerEvent) {
	sess, started := s.begin(s.bus, s, ev, s.value)
	if !started {
		return
	}
	s.dragPos = SliderPosition(ev.X, s.bounds)
	log.Printf("slider %s: drag %s start p=%.1f", s.name, sess.ID, s.dragPos)
}

// PointerMove updates the unsnapped thumb position.
func (s *Slider) PointerMove(ev PointerEvent) {
	sess := s.Session()
	if sess == nil {
		return
	}
	sess.Moved = true
	s.dragPos = SliderPosition(ev.X, s.bounds)
}

// PointerUp commits the nearest level to the last drag position.
// A tap with no moves commits the level nearest the press.
func (s *Slider) PointerUp(ev PointerEvent) {
	sess := s.end()
	if sess == nil {
		return
	}
	level := Quantize(s.dragPos)
	log.Printf("slider %s: drag %s release p=%.1f level=%d", s.name, sess.ID, s.dragPos, level)
	s.dragPos = 0
	if s.onChange != nil {
		s.onChange(level)
	}
}

// Teardown drops an in-progress drag without committing.
func (s *Slider) Teardown() {
	if sess := s.end(); sess != nil {
		log.Printf("slider %s: drag %s torn down", s.name, sess.ID)
	}
	s.dragPos = 0
}

// Step commits the level delta positions away from the current one.
func (s *Slider) Step(delta int) {
	if s.Dragging() {
		return
	}
	next := clampInt(s.value+delta, 0, maxLevel)
	if next != s.value && s.onChange != nil {
		s.onChange(next)
	}
}

// Activate does nothing; a slider has no primary action.
func (s *Slider) Activate() {}
