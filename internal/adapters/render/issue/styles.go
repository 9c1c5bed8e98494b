package issue

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	fieldKey   lipgloss.Style
	fieldValue lipgloss.Style
	body       lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	timestamp  lipgloss.Style
	kind       lipgloss.Style
	warning    lipgloss.Style
	statusOpen lipgloss.Style
	statusDone lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		fieldKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		fieldValue: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		body:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		timestamp:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		kind:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		statusOpen: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		statusDone: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
	}
}
