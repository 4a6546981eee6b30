package summary

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	wallet   lipgloss.Style
	detail   lipgloss.Style
	key      lipgloss.Style
	balance  lipgloss.Style
	incoming lipgloss.Style
	outgoing lipgloss.Style
	failed   lipgloss.Style
	pending  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		wallet:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		balance:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		incoming: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		outgoing: lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
		failed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
