package ringfinder

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalogTOML string

// Option is one selectable entry in a catalog.
type Option struct {
	ID         string `toml:"id" yaml:"id"`
	Name       string `toml:"name" yaml:"name"`
	Image      string `toml:"image" yaml:"image,omitempty"`
	Popularity string `toml:"popularity" yaml:"popularity,omitempty"`
	Color      string `toml:"color" yaml:"color,omitempty"`
}

// Catalog is an ordered, read-only list of options with a default.
type Catalog struct {
	Title   string   `toml:"title"`
	Default string   `toml:"default"`
	Options []Option `toml:"options"`
}

// Has reports whether id is one of the catalog's options.
func (c Catalog) Has(id string) bool {
	for _, o := range c.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Find returns the option with the given id.
func (c Catalog) Find(id string) (Option, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Name returns the display name of id, or id itself if unknown.
func (c Catalog) Name(id string) string {
	if o, ok := c.Find(id); ok {
		return o.Name
	}
	return id
}

// PreferenceScale describes the five-level diamond preference slider.
type PreferenceScale struct {
	Title     string `toml:"title"`
	Default   int    `toml:"default"`
	LowLabel  string `toml:"low_label"`
	HighLabel string `toml:"high_label"`
	Caption   string `toml:"caption"`
}

// Catalogs holds every option list the configurator shows.
type Catalogs struct {
	Metals        Catalog         `toml:"metal"`
	RingStyles    Catalog         `toml:"ring_style"`
	DiamondShapes Catalog         `toml:"diamond_shape"`
	Preference    PreferenceScale `toml:"preference"`
	Budgets       Catalog         `toml:"budget"`
}

// DefaultCatalogs returns the built-in catalogs.
func DefaultCatalogs() *Catalogs {
	var c Catalogs
	if _, err := toml.Decode(defaultCatalogTOML, &c); err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return &c
}

// LoadCatalogs reads a TOML catalog file. Tables the file defines replace
// the built-in ones wholesale; tables it omits keep their built-in values.
// An empty path returns the built-in catalogs.
func LoadCatalogs(path string) (*Catalogs, error) {
	c := DefaultCatalogs()
	if path == "" {
		return c, nil
	}
	var file Catalogs
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("load catalogs %s: %w", path, err)
	}
	if md.IsDefined("metal") {
		c.Metals = file.Metals
	}
	if md.IsDefined("ring_style") {
		c.RingStyles = file.RingStyles
	}
	if md.IsDefined("diamond_shape") {
		c.DiamondShapes = file.DiamondShapes
	}
	if md.IsDefined("preference") {
		c.Preference = file.Preference
	}
	if md.IsDefined("budget") {
		c.Budgets = file.Budgets
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("load catalogs %s: %w", path, err)
	}
	return c, nil
}

// Validate checks that every catalog has options, unique ids and a default
// that is one of its options.
func (c *Catalogs) Validate() error {
	for _, named := range []struct {
		key string
		cat Catalog
	}{
		{"metal", c.Metals},
		{"ring_style", c.RingStyles},
		{"diamond_shape", c.DiamondShapes},
		{"budget", c.Budgets},
	} {
		if len(named.cat.Options) == 0 {
			return fmt.Errorf("%s: no options", named.key)
		}
		seen := make(map[string]bool, len(named.cat.Options))
		for _, o := range named.cat.Options {
			if o.ID == "" {
				return fmt.Errorf("%s: option with empty id", named.key)
			}
			if seen[o.ID] {
				return fmt.Errorf("%s: duplicate option %q", named.key, o.ID)
			}
			seen[o.ID] = true
		}
		if !named.cat.Has(named.cat.Default) {
			return fmt.Errorf("%s: default %q is not an option", named.key, named.cat.Default)
		}
	}
	if c.Preference.Default < 0 || c.Preference.Default >= SliderLevels {
		return fmt.Errorf("preference: default %d outside 0..%d", c.Preference.Default, SliderLevels-1)
	}
	return nil
}

// Defaults returns the selection every field starts from.
func (c *Catalogs) Defaults() Selection {
	return Selection{
		Metal:             c.Metals.Default,
		RingStyle:         c.RingStyles.Default,
		DiamondShape:      c.DiamondShapes.Default,
		DiamondPreference: c.Preference.Default,
		Budget:            c.Budgets.Default,
	}
}
