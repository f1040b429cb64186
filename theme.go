package ringfinder

import "github.com/charmbracelet/lipgloss"

// Theme provides a set of styles for consistent UI appearance.
type Theme struct {
	Base     lipgloss.Style // default text style
	Muted    lipgloss.Style // de-emphasized text
	Accent   lipgloss.Style // highlighted/important text
	Title    lipgloss.Style // section headings
	Focus    lipgloss.Style // heading of the focused section
	Selected lipgloss.Style // selected option
	Button   lipgloss.Style // call to action
	Disabled lipgloss.Style // inactive call to action
	Header   lipgloss.Style // top bar
}

// Pre-defined themes

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Base:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0d9488")).Bold(true),
	Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true),
	Focus:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ca8a04")).Bold(true),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")).Bold(true),
	Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ca8a04")).Bold(true),
	Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")).Bold(true),
}

// ThemeLight is a light theme with dark text on light background.
var ThemeLight = Theme{
	Base:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0f766e")).Bold(true),
	Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
	Focus:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a16207")).Bold(true),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")).Bold(true),
	Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a16207")).Bold(true),
	Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")).Bold(true),
}

// ThemeNamed returns the theme for a config name, defaulting to dark.
func ThemeNamed(name string) Theme {
	if name == "light" {
		return ThemeLight
	}
	return ThemeDark
}

// swatch returns a style painting an option's colour behind its label.
func (t Theme) swatch(hex string) lipgloss.Style {
	if hex == "" {
		return t.Base
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color(hex))
}
