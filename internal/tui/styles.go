package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the menu views.
type Styles struct {
	Header   lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Pending  lipgloss.Style
	Success  lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
	Dim      lipgloss.Style
}

// DefaultStyles mirrors the classic palette: white-on-blue header,
// inverted selection, red errors, green confirmations.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")),
		Option:   lipgloss.NewStyle(),
		Pending:  lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
