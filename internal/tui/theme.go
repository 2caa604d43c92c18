package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles of the terminal picker.
type Theme struct {
	Base         lipgloss.Style
	Title        lipgloss.Style
	Headline     lipgloss.Style
	Header       lipgloss.Style
	Weekday      lipgloss.Style
	Day          lipgloss.Style
	Today        lipgloss.Style
	Selected     lipgloss.Style
	Cursor       lipgloss.Style
	Year         lipgloss.Style
	SelectedYear lipgloss.Style
	Dim          lipgloss.Style
}

// DefaultTheme mirrors the desktop colour roles on a 256-colour palette.
func DefaultTheme() Theme {
	primary := lipgloss.Color("63")
	return Theme{
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Headline:     lipgloss.NewStyle().Bold(true),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Weekday:      lipgloss.NewStyle().Bold(true),
		Day:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Today:        lipgloss.NewStyle().Foreground(primary).Underline(true),
		Selected:     lipgloss.NewStyle().Background(primary).Foreground(lipgloss.Color("231")).Bold(true),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Year:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelectedYear: lipgloss.NewStyle().Background(primary).Foreground(lipgloss.Color("231")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
