package tab

// Tab identifies one page of the application.
type Tab int

const (
	// Main shows the channel panel.
	Main Tab = iota
	// Dummy is a placeholder page.
	Dummy
	// About shows build information.
	About
)

// count is the number of tabs.
const count = 3

// All returns the tabs in display order.
func All() []Tab {
	return []Tab{Main, Dummy, About}
}

// Title returns the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case Main:
		return "Main"
	case Dummy:
		return "Dummy"
	case About:
		return "About"
	default:
		return "?"
	}
}

// Next returns the tab to the right, wrapping to the first.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % count)
}

// Prev returns the tab to the left, wrapping to the last.
func (t Tab) Prev() Tab {
	return Tab((int(t) - 1 + count) % count)
}
