package ui

import "github.com/charmbracelet/lipgloss"

// Palette: warm spice tones on a dark plum base.
var (
	ColorBase    = lipgloss.Color("#1E1B22")
	ColorSurface = lipgloss.Color("#2C2733")
	ColorMuted   = lipgloss.Color("#8A8095")
	ColorText    = lipgloss.Color("#E4DCEB")
	ColorAccent  = lipgloss.Color("#C9A66B")
	ColorGreen   = lipgloss.Color("#9BC48A")
	ColorRed     = lipgloss.Color("#E07A7A")
	ColorYellow  = lipgloss.Color("#E8C872")
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bordered(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(c).
		Padding(0, 1)
}

// Chrome
var (
	HeaderStyle = fg(ColorAccent).Bold(true).Padding(0, 1)
	TitleStyle  = HeaderStyle.
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)
	FooterStyle = fg(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)
	BreadcrumbStyle       = fg(ColorMuted)
	BreadcrumbActiveStyle = fg(ColorAccent)
	StatusBarStyle        = fg(ColorMuted).Padding(0, 1)
	HelpKeyStyle          = fg(ColorAccent)
	HelpDescStyle         = fg(ColorMuted)
	LabelStyle            = fg(ColorAccent).Bold(true)
)

// Banners
var (
	ErrorStyle      = fg(ColorRed).Padding(0, 1)
	SuccessStyle    = fg(ColorGreen).Padding(0, 1)
	WarningStyle    = fg(ColorYellow).Bold(true).Padding(1, 2)
	EmptyStateStyle = fg(ColorMuted).Italic(true).Padding(2, 4)
)

// Tables
var (
	TableHeaderStyle = fg(ColorAccent).Bold(true).Padding(0, 1).Background(ColorSurface)
	NormalRowStyle   = fg(ColorText).Padding(0, 1)
	SelectedRowStyle = fg(ColorBase).Background(ColorAccent)
)

// Control panel
var (
	PanelStyle          = bordered(ColorMuted)
	ActivePanelStyle    = bordered(ColorAccent)
	ControlLabelStyle   = fg(ColorMuted).Width(16)
	ControlFocusedStyle = fg(ColorAccent).Bold(true).Width(16)
	ControlValueStyle   = fg(ColorText)
)
