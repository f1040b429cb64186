package ringfinder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultCatalogs(t *testing.T) {
	c := DefaultCatalogs()
	if err := c.Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}

	counts := map[string]int{
		"metal":         len(c.Metals.Options),
		"ring_style":    len(c.RingStyles.Options),
		"diamond_shape": len(c.DiamondShapes.Options),
		"budget":        len(c.Budgets.Options),
	}
	want := map[string]int{"metal": 3, "ring_style": 8, "diamond_shape": 8, "budget": 5}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s: expected %d options, got %d", k, n, counts[k])
		}
	}

	if got := c.RingStyles.Name("pave"); got != "pavé" {
		t.Errorf("expected pavé, got %q", got)
	}
	if got := c.Budgets.Name("nope"); got != "nope" {
		t.Errorf("expected unknown id echoed, got %q", got)
	}
}

func TestLoadCatalogs(t *testing.T) {
	t.Run("EmptyPathIsBuiltIn", func(t *testing.T) {
		c, err := LoadCatalogs("")
		if err != nil {
			t.Fatal(err)
		}
		if c.Metals.Default != "white-metals" {
			t.Errorf("expected white-metals, got %q", c.Metals.Default)
		}
	})

	t.Run("OverridesOnlyDefinedTables", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", `
[budget]
title = "budget"
default = "low"

  [[budget.options]]
  id = "low"
  name = "low"

  [[budget.options]]
  id = "high"
  name = "high"
`)
		c, err := LoadCatalogs(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(c.Budgets.Options) != 2 || c.Budgets.Default != "low" {
			t.Errorf("expected replaced budgets, got %+v", c.Budgets)
		}
		if len(c.Metals.Options) != 3 {
			t.Errorf("expected built-in metals kept, got %d", len(c.Metals.Options))
		}
	})

	t.Run("DefaultMustBeAnOption", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", `
[metal]
default = "platinum"

  [[metal.options]]
  id = "gold"
  name = "gold"
`)
		_, err := LoadCatalogs(path)
		if err == nil || !strings.Contains(err.Error(), "platinum") {
			t.Errorf("expected error naming platinum, got %v", err)
		}
	})

	t.Run("DuplicateIDs", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", `
[budget]
default = "a"

  [[budget.options]]
  id = "a"

  [[budget.options]]
  id = "a"
`)
		if _, err := LoadCatalogs(path); err == nil {
			t.Error("expected duplicate id error")
		}
	})

	t.Run("PreferenceOutOfRange", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", "[preference]\ndefault = 7\n")
		if _, err := LoadCatalogs(path); err == nil {
			t.Error("expected preference range error")
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeFile(t, "catalog.toml", "[metal\n")
		if _, err := LoadCatalogs(path); err == nil {
			t.Error("expected parse error")
		}
	})
}
