package ringfinder

import (
	"strings"
	"sync"
)

// TraceLog keeps the most recent log lines for the debug pane.
// It is an io.Writer, so the standard logger can be pointed at it.
// Lines are buffered with a max line limit (ring buffer).
type TraceLog struct {
	maxLines int

	mu           sync.Mutex
	lines        []string
	partial      strings.Builder
	scroll       int  // lines scrolled up from the bottom
	following    bool // true = pinned to newest line
	newLineCount int  // lines arrived while not following
}

// NewTraceLog creates a trace log holding up to 500 lines.
func NewTraceLog() *TraceLog {
	return &TraceLog{
		maxLines:  500,
		following: true,
	}
}

// MaxLines sets the maximum number of lines to keep in the buffer.
// Oldest lines are dropped when the limit is exceeded.
func (tl *TraceLog) MaxLines(n int) *TraceLog {
	tl.mu.Lock()
	tl.maxLines = n
	tl.trim()
	tl.mu.Unlock()
	return tl
}

// Write appends p, splitting it into lines. A trailing fragment without a
// newline is held until the rest of the line arrives.
func (tl *TraceLog) Write(p []byte) (int, error) {
	tl.mu.Lock()
	added := 0
	for _, b := range p {
		if b == '\n' {
			tl.lines = append(tl.lines, tl.partial.String())
			tl.partial.Reset()
			added++
			continue
		}
		tl.partial.WriteByte(b)
	}
	tl.trim()
	if !tl.following {
		tl.newLineCount += added
		tl.scroll += added
	}
	tl.clampScroll()
	tl.mu.Unlock()
	return len(p), nil
}

// trim drops the oldest lines over the limit. Callers hold mu.
func (tl *TraceLog) trim() {
	if tl.maxLines > 0 && len(tl.lines) > tl.maxLines {
		dropped := len(tl.lines) - tl.maxLines
		tl.lines = tl.lines[dropped:]
	}
}

func (tl *TraceLog) clampScroll() {
	tl.scroll = clampInt(tl.scroll, 0, max(0, len(tl.lines)-1))
	if tl.scroll == 0 {
		tl.following = true
		tl.newLineCount = 0
	}
}

// Len returns the number of buffered lines.
func (tl *TraceLog) Len() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return len(tl.lines)
}

// Tail returns up to n lines ending at the current scroll position.
func (tl *TraceLog) Tail(n int) []string {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	end := len(tl.lines) - tl.scroll
	start := max(0, end-n)
	out := make([]string, end-start)
	copy(out, tl.lines[start:end])
	return out
}

// ScrollUp moves the view n lines towards older entries and stops
// following new ones.
func (tl *TraceLog) ScrollUp(n int) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.scroll += n
	tl.following = false
	tl.clampScroll()
}

// ScrollDown moves the view n lines towards newer entries. Reaching the
// bottom resumes following.
func (tl *TraceLog) ScrollDown(n int) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.scroll -= n
	tl.clampScroll()
}

// NewLines returns the number of new lines that have arrived while not following.
func (tl *TraceLog) NewLines() int {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.newLineCount
}
