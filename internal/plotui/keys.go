package plotui

import "charm.land/bubbles/v2/key"

// keyMap lists the bindings. Which ones are enabled depends on whether the
// result dialog is open.
type keyMap struct {
	Start   key.Binding
	Clear   key.Binding
	Close   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start quiz"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "close"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forResult returns a copy with the dialog bindings enabled when the
// result dialog is open and the plane bindings enabled otherwise.
func (k keyMap) forResult(open bool) keyMap {
	k.Start.SetEnabled(!open)
	k.Clear.SetEnabled(!open)
	k.Close.SetEnabled(open)
	k.Restart.SetEnabled(open)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Clear, k.Close, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Start, k.Clear}, {k.Close, k.Restart}, {k.Quit}}
}
