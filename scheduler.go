package ringfinder

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler runs a one-shot callback after a delay, on the same event loop
// that delivers input. Scheduled callbacks cannot be cancelled.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// deferredMsg carries a scheduled callback back into the update loop.
type deferredMsg struct {
	fn func()
}

// TickScheduler schedules callbacks as tea.Tick commands. The model drains
// the queued commands after every update, and runs the callback when the
// tick message arrives, so callbacks never run concurrently with input.
type TickScheduler struct {
	queued []tea.Cmd
}

// After queues a tick that fires fn after d.
func (s *TickScheduler) After(d time.Duration, fn func()) {
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return deferredMsg{fn: fn}
	}))
}

// Flush returns the queued ticks as one command and clears the queue.
func (s *TickScheduler) Flush() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// ManualScheduler runs callbacks when virtual time is advanced.
// It drives the deferred view switch in tests and replays.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []manualTimer
}

type manualTimer struct {
	at  time.Duration
	seq int
	fn  func()
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After schedules fn at now+d.
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, manualTimer{at: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves virtual time forward by d, running every callback that
// comes due, in due order. Callbacks scheduled while advancing run too if
// they fall within the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].at == s.pending[j].at {
				return s.pending[i].seq < s.pending[j].seq
			}
			return s.pending[i].at < s.pending[j].at
		})
		if len(s.pending) == 0 || s.pending[0].at > end {
			break
		}
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.now = t.at
		t.fn()
	}
	s.now = end
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks not yet run.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}
