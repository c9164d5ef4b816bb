package ui

import (
	"strings"

	"mooddine/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func RenderHelp(screen model.Screen, mode model.Mode, pane model.Pane, width int) string {
	if mode == model.ModeInsert {
		return renderInputHelp(width)
	}

	switch {
	case screen == model.ScreenShortlist:
		return renderShortlistHelp(width)
	case pane == model.PaneResults:
		return renderResultsHelp(width)
	default:
		return renderControlsHelp(width)
	}
}

func renderControlsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "control"),
		helpKey("h/l", "adjust"),
		helpKey("enter", "edit name"),
		helpKey("tab", "results"),
		helpKey("R", "reset"),
		helpKey("w", "shortlist"),
		helpKey("?", "help"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderResultsHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("tab", "next col"),
		helpKey("c/C", "hide/show col"),
		helpKey("a", "shortlist"),
		helpKey("b/esc", "controls"),
		helpKey("/", "jump col"),
		helpKey("w", "shortlist"),
	}
	return renderHelpLine(keys, width)
}

func renderShortlistHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("tab", "next col"),
		helpKey("c/C", "hide/show col"),
		helpKey("d", "delete"),
		helpKey("r", "recommend"),
		helpKey("/", "jump col"),
	}
	return renderHelpLine(keys, width)
}

func renderInputHelp(width int) string {
	keys := []string{
		helpKey("type", "filter by name"),
		helpKey("enter", "done"),
		helpKey("esc", "clear"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Anywhere"),
		helpSection([]helpItem{
			{"r", "Recommend screen"},
			{"w", "Shortlist screen"},
			{"gg / G", "Jump to top / bottom"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}),
		titleSection("Controls"),
		helpSection([]helpItem{
			{"j / k", "Move between controls"},
			{"h / l", "Previous / next value, slider down / up"},
			{"enter", "Edit the name filter"},
			{"R", "Reset controls to defaults"},
			{"tab", "Focus results"},
		}),
		titleSection("Results"),
		helpSection([]helpItem{
			{"j / k", "Move between rows"},
			{"tab / shift+tab", "Cycle active column"},
			{"/ then 1-9", "Jump to column"},
			{"c / C", "Hide active column / show all"},
			{"a", "Add selected place to shortlist"},
			{"b / esc", "Back to controls"},
		}),
		titleSection("Shortlist"),
		helpSection([]helpItem{
			{"d", "Remove selected entry"},
			{"b / esc", "Back to recommendations"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
