package ringfinder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// App is a terminal application running the configurator with mouse
// input via bubbletea.
type App struct {
	cfg   Config
	model *Model
	trace *TraceLog
}

// NewApp creates the application. Deferred view switches run as tea.Tick
// commands on the program's event loop.
func NewApp(cfg Config, catalogs *Catalogs) *App {
	trace := NewTraceLog()
	return &App{
		cfg:   cfg,
		model: NewModel(cfg, catalogs, &TickScheduler{}, trace),
		trace: trace,
	}
}

// Model returns the application's model.
func (a *App) Model() *Model {
	return a.model
}

// Selection returns the user's current selection.
func (a *App) Selection() Selection {
	return a.model.Host().Selection()
}

// Run starts the application. Blocks until the user quits or ctx is done.
// While running, the standard logger is also copied into the trace pane.
func (a *App) Run(ctx context.Context) error {
	prev := log.Writer()
	log.SetOutput(io.MultiWriter(prev, a.trace))
	defer log.SetOutput(prev)

	p := tea.NewProgram(a.model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run configurator: %w", err)
	}
	return nil
}
