package ringfinder

import "log"

// Swipe distances that flip a carousel page, in pixels. Touch swipes are
// usually shorter, so the touch threshold is lower.
const (
	MouseSwipeThreshold = 100
	TouchSwipeThreshold = 80
)

// SwipeThreshold returns the page-flip distance for a pointer kind.
func SwipeThreshold(kind PointerKind) float64 {
	if kind == PointerTouch {
		return TouchSwipeThreshold
	}
	return MouseSwipeThreshold
}

// Carousel pages through a fixed set of images with wrap-around.
// A drag flips one page each time the pointer travels past the threshold
// from the last flip; the track never shows partial pages.
type Carousel struct {
	base
	Drag[int]

	images     []string
	index      int
	startIndex int
	onChange   func(index int)
}

// NewCarousel creates a carousel over images, showing the first one.
// An empty image list is treated as a single blank page.
func NewCarousel(name string, bus *PointerBus, images []string) *Carousel {
	if len(images) == 0 {
		images = []string{""}
	}
	return &Carousel{
		base:   base{name: name, bus: bus},
		images: images,
	}
}

// OnChange sets the callback invoked once per completed gesture or control
// press that changed the index.
func (c *Carousel) OnChange(fn func(index int)) *Carousel {
	c.onChange = fn
	return c
}

// SetBounds sets the drag area.
func (c *Carousel) SetBounds(r Rect) {
	c.setBounds(r)
}

// Images returns the image references in page order.
func (c *Carousel) Images() []string {
	return c.images
}

// Len returns the number of pages.
func (c *Carousel) Len() int {
	return len(c.images)
}

// Index returns the current page.
func (c *Carousel) Index() int {
	return c.index
}

// Current returns the image reference of the current page.
func (c *Carousel) Current() string {
	return c.images[c.index]
}

// TrackOffset is the track translation in percent of one page.
func (c *Carousel) TrackOffset() float64 {
	return float64(-c.index * 100)
}

// Next moves one page forward, wrapping to the first page.
// It does nothing while a drag is active.
func (c *Carousel) Next() bool {
	return c.jump(wrap(c.index+1, len(c.images)))
}

// Prev moves one page back, wrapping to the last page.
// It does nothing while a drag is active.
func (c *Carousel) Prev() bool {
	return c.jump(wrap(c.index-1, len(c.images)))
}

// GoTo jumps to page i. Out-of-range pages are ignored, as are calls made
// while a drag is active.
func (c *Carousel) GoTo(i int) bool {
	if i < 0 || i >= len(c.images) {
		return false
	}
	return c.jump(i)
}

func (c *Carousel) jump(i int) bool {
	if c.Dragging() {
		return false
	}
	if i == c.index {
		return true
	}
	c.index = i
	if c.onChange != nil {
		c.onChange(i)
	}
	return true
}

// PointerDown starts a swipe from the current page.
func (c *Carousel) PointerDown(ev PointerEvent) {
	sess, started := c.begin(c.bus, c, ev, c.index)
	if !started {
		return
	}
	c.startIndex = c.index
	log.Printf("carousel %s: swipe %s start (%s) at page %d", c.name, sess.ID, sess.Kind, c.index)
}

// PointerMove flips a page when the travel since the last flip passes the
// threshold, then rebases the origin on the pointer so a continued drag
// can flip again.
func (c *Carousel) PointerMove(ev PointerEvent) {
	sess := c.Session()
	if sess == nil {
		return
	}
	sess.Moved = true
	delta := ev.X - sess.OriginX
	threshold := SwipeThreshold(sess.Kind)

	var target int
	switch {
	case delta > threshold:
		target = wrap(sess.Origin-1, len(c.images))
	case delta < -threshold:
		target = wrap(sess.Origin+1, len(c.images))
	default:
		return
	}
	if target == c.index {
		return
	}
	c.index = target
	sess.Rebase(ev.X, target)
}

// PointerUp ends the swipe and reports the page if it changed.
func (c *Carousel) PointerUp(PointerEvent) {
	sess := c.end()
	if sess == nil {
		return
	}
	log.Printf("carousel %s: swipe %s end at page %d", c.name, sess.ID, c.index)
	if c.index != c.startIndex && c.onChange != nil {
		c.onChange(c.index)
	}
}

// Teardown ends any swipe. The index it reached is kept.
func (c *Carousel) Teardown() {
	c.end()
}

// Step pages forward for positive delta and back for negative.
func (c *Carousel) Step(delta int) {
	switch {
	case delta > 0:
		c.Next()
	case delta < 0:
		c.Prev()
	}
}

// Activate does nothing.
func (c *Carousel) Activate() {}
