package ringfinder

import (
	"log"
	"time"
)

// ViewSwitchDelay is how long a view change waits so the outgoing view's
// exit animation can finish before the next view mounts.
const ViewSwitchDelay = 300 * time.Millisecond

// View is the screen the host is showing.
type View int

const (
	ViewConfiguring View = iota
	ViewShowing
)

func (v View) String() string {
	if v == ViewShowing {
		return "showing"
	}
	return "configuring"
}

// Selection is the user's aggregate choice. Every field always holds a
// valid value from its catalog.
type Selection struct {
	Metal             string `yaml:"metal"`
	RingStyle         string `yaml:"ring_style"`
	DiamondShape      string `yaml:"diamond_shape"`
	DiamondPreference int    `yaml:"diamond_preference"`
	Budget            string `yaml:"budget"`
}

// Host owns the selection and the current view. Widgets never hold
// canonical state: they report intents to the host, and the host
// republishes the result to every subscriber.
type Host struct {
	catalogs      *Catalogs
	selection     *Observable[Selection]
	view          View
	transitioning bool
	sched         Scheduler
	onView        []func(from, to View)
}

// NewHost creates a host seeded with the catalogs' defaults.
func NewHost(catalogs *Catalogs, sched Scheduler) *Host {
	return &Host{
		catalogs:  catalogs,
		selection: NewObservable(catalogs.Defaults()),
		sched:     sched,
	}
}

// Catalogs returns the option catalogs the host validates against.
func (h *Host) Catalogs() *Catalogs {
	return h.catalogs
}

// Selection returns the current selection.
func (h *Host) Selection() Selection {
	return h.selection.Get()
}

// Subscribe registers fn to receive every new selection and returns an
// unsubscribe function.
func (h *Host) Subscribe(fn func(Selection)) func() {
	return h.selection.Subscribe(func(c Change[Selection]) {
		fn(c.New)
	})
}

// SetMetal selects a metal. Unknown ids are ignored and report false.
func (h *Host) SetMetal(id string) bool {
	return h.choose("metal", h.catalogs.Metals, id, func(s *Selection) { s.Metal = id })
}

// SetRingStyle selects a ring style. Unknown ids are ignored and report false.
func (h *Host) SetRingStyle(id string) bool {
	return h.choose("ring style", h.catalogs.RingStyles, id, func(s *Selection) { s.RingStyle = id })
}

// SetDiamondShape selects a diamond shape. Unknown ids are ignored and report false.
func (h *Host) SetDiamondShape(id string) bool {
	return h.choose("diamond shape", h.catalogs.DiamondShapes, id, func(s *Selection) { s.DiamondShape = id })
}

// SetBudget selects a budget. Unknown ids are ignored and report false.
func (h *Host) SetBudget(id string) bool {
	return h.choose("budget", h.catalogs.Budgets, id, func(s *Selection) { s.Budget = id })
}

// SetDiamondPreference sets the preference level. Levels outside the
// slider's range are ignored and report false.
func (h *Host) SetDiamondPreference(level int) bool {
	if level < 0 || level >= SliderLevels {
		log.Printf("host: ignoring diamond preference %d", level)
		return false
	}
	h.selection.Update(func(s *Selection) { s.DiamondPreference = level })
	return true
}

func (h *Host) choose(field string, cat Catalog, id string, apply func(*Selection)) bool {
	if !cat.Has(id) {
		log.Printf("host: ignoring unknown %s %q", field, id)
		return false
	}
	h.selection.Update(apply)
	return true
}

// Reset restores every field to its default and republishes the selection
// even if nothing changed.
func (h *Host) Reset() {
	d := h.catalogs.Defaults()
	if h.selection.Get() == d {
		h.selection.Publish()
		return
	}
	h.selection.Set(d)
}

// View returns the view currently mounted.
func (h *Host) View() View {
	return h.view
}

// Transitioning reports whether a view switch is pending.
func (h *Host) Transitioning() bool {
	return h.transitioning
}

// OnViewChange registers fn to run when a view switch completes.
func (h *Host) OnViewChange(fn func(from, to View)) *Host {
	h.onView = append(h.onView, fn)
	return h
}

// RequestViewChange switches to target after ViewSwitchDelay. Requests made
// while a switch is pending are dropped and report false.
func (h *Host) RequestViewChange(target View) bool {
	if h.transitioning {
		log.Printf("host: view request %s dropped, switch pending", target)
		return false
	}
	h.transitioning = true
	log.Printf("host: switching %s -> %s", h.view, target)
	h.sched.After(ViewSwitchDelay, func() {
		from := h.view
		h.view = target
		h.transitioning = false
		for _, fn := range h.onView {
			fn(from, target)
		}
	})
	return true
}
