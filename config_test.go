package ringfinder

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := writeFile(t, "config.toml", "cell_width_px = 10\ntheme = \"light\"\nmax_trace_lines = 50\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.CellWidth != 10 || cfg.Theme != "light" || cfg.TraceLines != 50 {
			t.Errorf("expected overrides applied, got %+v", cfg)
		}
		if cfg.CellHeight != 16 || cfg.SliderColumns != 41 {
			t.Errorf("expected defaults kept, got %+v", cfg)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		cases := map[string]string{
			"zero cell":     "cell_height_px = 0\n",
			"short slider":  "slider_columns = 3\n",
			"narrow view":   "viewport_columns = 8\n",
			"unknown theme": "theme = \"neon\"\n",
			"no trace":      "max_trace_lines = 0\n",
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := LoadConfig(writeFile(t, "config.toml", body)); err == nil {
					t.Errorf("expected error for %q", body)
				}
			})
		}
	})
}
