package ringfinder

// FocusManager coordinates keyboard focus across the widgets of a view.
// Tab and Shift-Tab cycle through them; arrow keys and Enter go to the
// focused one.
//
// usage:
//
//	fm := NewFocusManager()
//	fm.Register(metal).Register(slider)
//	fm.Next()
//	fm.Current().Step(+1)
type FocusManager struct {
	items    []focusable
	current  int
	onChange func(index int) // called when focus changes
}

// NewFocusManager creates an empty focus manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Register adds a widget to the manager.
// The first registered widget receives initial focus.
func (fm *FocusManager) Register(f focusable) *FocusManager {
	fm.items = append(fm.items, f)
	if len(fm.items) == 1 {
		fm.current = 0
		f.setFocused(true)
	}
	return fm
}

// Clear unfocuses and forgets every registered widget.
func (fm *FocusManager) Clear() {
	for _, f := range fm.items {
		f.setFocused(false)
	}
	fm.items = nil
	fm.current = 0
}

// OnChange sets a callback that fires when focus changes.
func (fm *FocusManager) OnChange(fn func(index int)) *FocusManager {
	fm.onChange = fn
	return fm
}

// Next moves focus to the next widget.
func (fm *FocusManager) Next() {
	fm.moveFocus(1)
}

// Prev moves focus to the previous widget.
func (fm *FocusManager) Prev() {
	fm.moveFocus(-1)
}

func (fm *FocusManager) moveFocus(delta int) {
	if len(fm.items) <= 1 {
		return
	}
	fm.Focus(wrap(fm.current+delta, len(fm.items)))
}

// Focus sets focus to a specific index.
func (fm *FocusManager) Focus(index int) {
	if index < 0 || index >= len(fm.items) {
		return
	}
	if fm.current == index {
		return
	}
	fm.items[fm.current].setFocused(false)
	fm.current = index
	fm.items[fm.current].setFocused(true)
	if fm.onChange != nil {
		fm.onChange(fm.current)
	}
}

// FocusNamed focuses the widget with the given name, if registered.
func (fm *FocusManager) FocusNamed(name string) {
	for i, f := range fm.items {
		if f.Name() == name {
			fm.Focus(i)
			return
		}
	}
}

// Index returns the currently focused index.
func (fm *FocusManager) Index() int {
	return fm.current
}

// Current returns the focused widget, or nil when none is registered.
func (fm *FocusManager) Current() focusable {
	if len(fm.items) == 0 {
		return nil
	}
	return fm.items[fm.current]
}
