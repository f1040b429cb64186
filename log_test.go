package ringfinder

import (
	"fmt"
	"log"
	"testing"
)

func TestTraceLogBasic(t *testing.T) {
	tl := NewTraceLog()
	fmt.Fprint(tl, "line 1\nline 2\nline")
	fmt.Fprint(tl, " 3\n")

	lines := tl.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "line 1" {
		t.Errorf("expected lines[0]='line 1', got %q", lines[0])
	}
	if lines[2] != "line 3" {
		t.Errorf("expected lines[2]='line 3', got %q", lines[2])
	}
}

func TestTraceLogRingBuffer(t *testing.T) {
	tl := NewTraceLog().MaxLines(3)
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(tl, "line %d\n", i)
	}

	if tl.Len() != 3 {
		t.Fatalf("expected 3 lines, got %d", tl.Len())
	}
	lines := tl.Tail(3)
	if lines[0] != "line 3" || lines[2] != "line 5" {
		t.Errorf("expected lines 3..5, got %v", lines)
	}
}

func TestTraceLogScroll(t *testing.T) {
	tl := NewTraceLog()
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(tl, "line %d\n", i)
	}

	tl.ScrollUp(4)
	lines := tl.Tail(2)
	if lines[1] != "line 6" {
		t.Errorf("expected view to end at line 6, got %v", lines)
	}

	fmt.Fprintln(tl, "line 11")
	if tl.NewLines() != 1 {
		t.Errorf("expected 1 new line, got %d", tl.NewLines())
	}
	if got := tl.Tail(1)[0]; got != "line 6" {
		t.Errorf("expected view pinned at line 6, got %q", got)
	}

	tl.ScrollDown(100)
	if tl.NewLines() != 0 {
		t.Errorf("expected new lines cleared at bottom, got %d", tl.NewLines())
	}
	if got := tl.Tail(1)[0]; got != "line 11" {
		t.Errorf("expected following line 11, got %q", got)
	}
}

func TestTraceLogAsLogOutput(t *testing.T) {
	tl := NewTraceLog()
	l := log.New(tl, "", 0)
	l.Printf("host: switching %s -> %s", ViewConfiguring, ViewShowing)

	if got := tl.Tail(1); len(got) != 1 || got[0] != "host: switching configuring -> showing" {
		t.Errorf("unexpected trace %v", got)
	}
}
