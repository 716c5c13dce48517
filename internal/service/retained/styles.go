package retained

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles of the view.
type styles struct {
	tab        lipgloss.Style
	tabActive  lipgloss.Style
	label      lipgloss.Style
	header     lipgloss.Style
	field      lipgloss.Style
	button     lipgloss.Style
	buttonHot  lipgloss.Style
	suspicious lipgloss.Style
	pending    lipgloss.Style
	errLine    lipgloss.Style
	separator  lipgloss.Style
	page       lipgloss.Style
}

// defaultStyles returns the palette used by the view.
func defaultStyles() styles {
	var (
		brand  = lipgloss.Color("39")
		subtle = lipgloss.Color("245")
		alarm  = lipgloss.Color("203")
	)

	return styles{
		tab:        lipgloss.NewStyle().Padding(0, 1).Foreground(subtle),
		tabActive:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("15")).Background(brand),
		label:      lipgloss.NewStyle().Width(10).Align(lipgloss.Right),
		header:     lipgloss.NewStyle().Bold(true).Foreground(brand),
		field:      lipgloss.NewStyle().Width(8).Border(lipgloss.NormalBorder(), false, true).BorderForeground(subtle).Align(lipgloss.Center),
		button:     lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(subtle),
		buttonHot:  lipgloss.NewStyle().Padding(0, 2).Bold(true).Border(lipgloss.ThickBorder()).BorderForeground(brand),
		suspicious: lipgloss.NewStyle().Foreground(alarm).Bold(true),
		pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		errLine:    lipgloss.NewStyle().Foreground(alarm),
		separator:  lipgloss.NewStyle().Foreground(subtle),
		page:       lipgloss.NewStyle().Padding(1, 2),
	}
}
