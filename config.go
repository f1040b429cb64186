package ringfinder

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds terminal layout and runtime settings. Gesture thresholds
// and the view-switch delay are fixed and not configurable.
type Config struct {
	// CellWidth and CellHeight are the pixel size of one terminal cell.
	CellWidth  float64 `toml:"cell_width_px"`
	CellHeight float64 `toml:"cell_height_px"`

	SliderColumns   int `toml:"slider_columns"`
	CardColumns     int `toml:"card_columns"`
	ViewportColumns int `toml:"viewport_columns"`
	CarouselRows    int `toml:"carousel_rows"`

	// TraceLines caps the lines kept for the trace pane.
	TraceLines int `toml:"max_trace_lines"`

	Catalog string `toml:"catalog"`
	LogFile string `toml:"log_file"`
	Theme   string `toml:"theme"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		CellWidth:       8,
		CellHeight:      16,
		SliderColumns:   41,
		CardColumns:     16,
		ViewportColumns: 64,
		CarouselRows:    7,
		TraceLines:      500,
		Theme:           "dark",
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects sizes the layout cannot draw.
func (c Config) Validate() error {
	switch {
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("cell size must be positive, got %gx%g", c.CellWidth, c.CellHeight)
	case c.SliderColumns < SliderLevels:
		return fmt.Errorf("slider_columns must be at least %d, got %d", SliderLevels, c.SliderColumns)
	case c.CardColumns < 4:
		return fmt.Errorf("card_columns must be at least 4, got %d", c.CardColumns)
	case c.ViewportColumns < c.CardColumns:
		return fmt.Errorf("viewport_columns (%d) narrower than a card (%d)", c.ViewportColumns, c.CardColumns)
	case c.CarouselRows < 3:
		return fmt.Errorf("carousel_rows must be at least 3, got %d", c.CarouselRows)
	case c.TraceLines < 1:
		return fmt.Errorf("max_trace_lines must be positive, got %d", c.TraceLines)
	case c.Theme != "" && c.Theme != "dark" && c.Theme != "light":
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}
