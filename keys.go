package ringfinder

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the keyboard bindings of the configurator.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Back     key.Binding
	Reset    key.Binding
	Trace    key.Binding
	TraceUp  key.Binding
	TraceDn  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Trace:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "trace")),
		TraceUp:  key.NewBinding(key.WithKeys("pgup")),
		TraceDn:  key.NewBinding(key.WithKeys("pgdown")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Right, k.Activate, k.Back, k.Reset, k.Quit}
}
