package retained

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the retained front-end.
type keyMap struct {
	Select        key.Binding
	Left          key.Binding
	Right         key.Binding
	ClearPrevious key.Binding
	ClearCurrent  key.Binding
	Lower         key.Binding
	Raise         key.Binding
	Apply         key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// defaultKeyMap returns the standard bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Select:        key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "select")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev channel")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next channel")),
		ClearPrevious: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "clear previous")),
		ClearCurrent:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear current")),
		Lower:         key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "lower limit")),
		Raise:         key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "raise limit")),
		Apply:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply limit")),
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Left, k.Right, k.Apply, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Left, k.Right},
		{k.ClearPrevious, k.ClearCurrent},
		{k.Lower, k.Raise, k.Apply},
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}
