package ringfinder

import (
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// region is a hit area recorded while rendering.
type region struct {
	id   string
	rect Rect
	w    Widget
}

// Model is the bubbletea model of the configurator. It owns the widgets of
// the mounted view, routes pointer input to them and renders both views.
type Model struct {
	cfg      Config
	catalogs *Catalogs
	host     *Host
	bus      *PointerBus
	sched    Scheduler
	theme    Theme
	keys     KeyMap
	help     help.Model
	focus    *FocusManager
	trace    *TraceLog

	// configurator view
	metal        *ButtonRow
	ringStyle    *Picker
	diamondShape *Picker
	slider       *Slider
	budget       *ButtonRow
	viewRings    *ButtonRow

	// results view
	ring     Ring
	carousel *Carousel
	prevBtn  *ButtonRow
	nextBtn  *ButtonRow
	dots     *ButtonRow
	choose   *ButtonRow
	back     *ButtonRow
	chosen   bool

	widgets   []Widget
	regions   []region
	hover     Widget
	last      PointerEvent
	width     int
	height    int
	showTrace bool
}

// NewModel builds a model on the configurator view. sched runs the deferred
// view switch; trace may be nil.
func NewModel(cfg Config, catalogs *Catalogs, sched Scheduler, trace *TraceLog) *Model {
	if trace == nil {
		trace = NewTraceLog()
	}
	trace.MaxLines(cfg.TraceLines)
	m := &Model{
		cfg:      cfg,
		catalogs: catalogs,
		bus:      NewPointerBus(),
		sched:    sched,
		theme:    ThemeNamed(cfg.Theme),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		focus:    NewFocusManager(),
		trace:    trace,
	}
	m.focus.OnChange(func(int) {
		log.Printf("model: focus on %s", m.focus.Current().Name())
	})
	m.host = NewHost(catalogs, sched)
	m.host.Subscribe(m.apply)
	m.host.OnViewChange(m.mount)
	m.mount(ViewConfiguring, ViewConfiguring)
	return m
}

// Host returns the selection host.
func (m *Model) Host() *Host { return m.host }

// Bus returns the pointer bus widgets attach to while dragging.
func (m *Model) Bus() *PointerBus { return m.bus }

// Slider returns the diamond preference slider, or nil when not mounted.
func (m *Model) Slider() *Slider { return m.slider }

// RingStyle returns the ring style picker, or nil when not mounted.
func (m *Model) RingStyle() *Picker { return m.ringStyle }

// DiamondShape returns the diamond shape picker, or nil when not mounted.
func (m *Model) DiamondShape() *Picker { return m.diamondShape }

// Carousel returns the image carousel, or nil when not mounted.
func (m *Model) Carousel() *Carousel { return m.carousel }

// Trace returns the trace log shown in the debug pane.
func (m *Model) Trace() *TraceLog { return m.trace }

func (m *Model) cardWidth() float64 {
	return float64(m.cfg.CardColumns) * m.cfg.CellWidth
}

// mount tears down the widgets of the current view and builds those of to.
func (m *Model) mount(from, to View) {
	for _, w := range m.widgets {
		w.Teardown()
	}
	m.widgets = nil
	m.regions = nil
	m.hover = nil
	m.focus.Clear()

	m.metal, m.ringStyle, m.diamondShape, m.slider, m.budget, m.viewRings = nil, nil, nil, nil, nil, nil
	m.carousel, m.prevBtn, m.nextBtn, m.dots, m.choose, m.back = nil, nil, nil, nil, nil, nil

	if to == ViewShowing {
		m.buildResults()
	} else {
		m.buildConfigurator()
	}
	m.apply(m.host.Selection())
	m.sync()
	log.Printf("model: mounted %s (from %s)", to, from)
}

func (m *Model) buildConfigurator() {
	c := m.catalogs
	m.metal = NewButtonRow("metal", m.bus, c.Metals.Options).
		OnSelect(func(id string) { m.host.SetMetal(id) })
	m.ringStyle = NewPicker("ring-style", m.bus, c.RingStyles.Options, m.cardWidth()).
		OnSelect(func(id string) { m.host.SetRingStyle(id) })
	m.diamondShape = NewPicker("diamond-shape", m.bus, c.DiamondShapes.Options, m.cardWidth()).
		OnSelect(func(id string) { m.host.SetDiamondShape(id) })
	m.slider = NewSlider("slider", m.bus).
		OnChange(func(level int) { m.host.SetDiamondPreference(level) })
	m.budget = NewButtonRow("budget", m.bus, c.Budgets.Options).
		OnSelect(func(id string) { m.host.SetBudget(id) })
	m.viewRings = NewButtonRow("view-rings", m.bus, []Option{{ID: "view-rings", Name: "VIEW RINGS"}}).
		OnSelect(func(string) { m.host.RequestViewChange(ViewShowing) })

	m.widgets = []Widget{m.metal, m.ringStyle, m.diamondShape, m.slider, m.budget, m.viewRings}
	m.focus.Register(m.metal).
		Register(m.ringStyle).
		Register(m.diamondShape).
		Register(m.slider).
		Register(m.budget).
		Register(m.viewRings)
}

func (m *Model) buildResults() {
	m.ring = Recommend(m.host.Selection())
	m.chosen = false
	m.carousel = NewCarousel("carousel", m.bus, m.ring.Images).
		OnChange(func(i int) { log.Printf("model: showing image %d %s", i, m.carousel.Current()) })

	var dots []Option
	for i := range m.carousel.Images() {
		dots = append(dots, Option{ID: strconv.Itoa(i), Name: "●"})
	}
	m.dots = NewButtonRow("dots", m.bus, dots).
		ButtonWidth(3 * m.cfg.CellWidth).
		OnSelect(func(id string) {
			if i, err := strconv.Atoi(id); err == nil {
				m.carousel.GoTo(i)
			}
		})
	m.prevBtn = NewButtonRow("carousel-prev", m.bus, []Option{{ID: "prev", Name: "‹"}}).
		OnSelect(func(string) { m.carousel.Prev() })
	m.nextBtn = NewButtonRow("carousel-next", m.bus, []Option{{ID: "next", Name: "›"}}).
		OnSelect(func(string) { m.carousel.Next() })
	m.choose = NewButtonRow("choose", m.bus, []Option{{ID: "choose", Name: "CHOOSE THIS RING ▸"}}).
		OnSelect(func(string) {
			m.chosen = true
			log.Printf("model: ring chosen %q with %+v", m.ring.Name, m.host.Selection())
		})
	m.back = NewButtonRow("back", m.bus, []Option{{ID: "back", Name: "‹ UPDATE OPTIONS"}}).
		OnSelect(func(string) { m.host.RequestViewChange(ViewConfiguring) })

	m.widgets = []Widget{m.carousel, m.dots, m.prevBtn, m.nextBtn, m.choose, m.back}
	m.focus.Register(m.carousel).
		Register(m.dots).
		Register(m.choose).
		Register(m.back)
}

// apply republishes the host's selection to the mounted widgets.
func (m *Model) apply(sel Selection) {
	if m.metal != nil {
		m.metal.SetSelected(sel.Metal)
	}
	if m.ringStyle != nil {
		m.ringStyle.SetSelected(sel.RingStyle)
	}
	if m.diamondShape != nil {
		m.diamondShape.SetSelected(sel.DiamondShape)
	}
	if m.slider != nil {
		m.slider.SetValue(sel.DiamondPreference)
	}
	if m.budget != nil {
		m.budget.SetSelected(sel.Budget)
	}
}

// sync derives widget state that depends on the host or on other widgets.
func (m *Model) sync() {
	busy := m.host.Transitioning()
	if m.viewRings != nil {
		m.viewRings.SetDisabled(busy)
	}
	if m.back != nil {
		m.back.SetDisabled(busy)
	}
	if m.dots != nil && m.carousel != nil {
		m.dots.SetSelected(strconv.Itoa(m.carousel.Index()))
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("ringfinder")
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.MouseMsg:
		if ev, ok := FromMouse(msg, m.cfg.CellWidth, m.cfg.CellHeight); ok {
			m.HandlePointer(ev)
		}
	case tea.BlurMsg:
		m.Cancel()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case deferredMsg:
		msg.fn()
		m.sync()
	}
	if ts, ok := m.sched.(*TickScheduler); ok {
		cmd = tea.Batch(cmd, ts.Flush())
	}
	return m, cmd
}

// HandlePointer routes one pointer event. Presses go to the widget under
// the pointer; moves and releases go to whichever widgets are dragging.
func (m *Model) HandlePointer(ev PointerEvent) {
	m.last = ev
	switch ev.Phase {
	case PhaseDown:
		if w := m.widgetAt(ev.X, ev.Y); w != nil {
			m.focus.FocusNamed(w.Name())
			w.PointerDown(ev)
		}
	case PhaseMove, PhaseUp:
		m.bus.Dispatch(ev)
	}
	m.updateHover(ev)
	m.sync()
}

// Cancel ends every active gesture when the terminal loses focus and the
// real release may never arrive. Presses on cards and buttons are dropped,
// since a click needs a real release. Slider and carousel drags are
// released at the last known pointer position.
func (m *Model) Cancel() {
	if m.bus.Len() == 0 {
		return
	}
	log.Printf("model: focus lost, ending %d gesture(s)", m.bus.Len())
	for _, w := range m.widgets {
		switch w.(type) {
		case *Picker, *ButtonRow:
			w.Teardown()
		}
	}
	ev := m.last
	ev.Phase = PhaseUp
	m.bus.Dispatch(ev)
	m.sync()
}

func (m *Model) updateHover(ev PointerEvent) {
	w := m.widgetAt(ev.X, ev.Y)
	if w == m.hover {
		return
	}
	if l, ok := m.hover.(leaver); ok {
		l.PointerLeave()
	}
	m.hover = w
}

func (m *Model) widgetAt(x, y float64) Widget {
	for _, r := range m.regions {
		if r.rect.Contains(x, y) {
			return r.w
		}
	}
	return nil
}

// Region returns the on-screen rectangle of a region id as of the last
// render.
func (m *Model) Region(id string) (Rect, bool) {
	for _, r := range m.regions {
		if r.id == id {
			return r.rect, true
		}
	}
	return Rect{}, false
}

// Locate resolves a target such as "slider" or "metal:yellow-gold" to its
// rectangle as of the last render. The part after the colon names a button
// or card inside the region.
func (m *Model) Locate(target string) (Rect, bool) {
	id, item, _ := strings.Cut(target, ":")
	for _, r := range m.regions {
		if r.id != id {
			continue
		}
		if item == "" {
			return r.rect, true
		}
		switch w := r.w.(type) {
		case *ButtonRow:
			return w.ButtonRect(item)
		case *Picker:
			return w.CardRect(item)
		}
		return Rect{}, false
	}
	return Rect{}, false
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	cur := m.focus.Current()
	switch {
	case key.Matches(msg, m.keys.Quit):
		for _, w := range m.widgets {
			w.Teardown()
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.focus.Next()
	case key.Matches(msg, m.keys.Prev):
		m.focus.Prev()
	case key.Matches(msg, m.keys.Left):
		if cur != nil {
			cur.Step(-1)
		}
	case key.Matches(msg, m.keys.Right):
		if cur != nil {
			cur.Step(1)
		}
	case key.Matches(msg, m.keys.Activate):
		if cur != nil {
			cur.Activate()
		}
	case key.Matches(msg, m.keys.Back):
		if m.host.View() == ViewShowing {
			m.host.RequestViewChange(ViewConfiguring)
		}
	case key.Matches(msg, m.keys.Reset):
		m.host.Reset()
	case key.Matches(msg, m.keys.Trace):
		m.showTrace = !m.showTrace
	case key.Matches(msg, m.keys.TraceUp):
		m.trace.ScrollUp(5)
	case key.Matches(msg, m.keys.TraceDn):
		m.trace.ScrollDown(5)
	}
	m.sync()
	return nil
}
