package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings.
// The overlay is styled with the palette colors and grouped by function.
func HelpOverlay(width, height int) string {
	groups := []struct {
		title    string
		bindings []struct {
			key  string
			desc string
		}
	}{
		{
			title: "Videos",
			bindings: []struct {
				key  string
				desc string
			}{
				{"a", "Add a video by path"},
				{"J / ↓", "Select next video"},
				{"K / ↑", "Select previous video"},
				{"p", "Play selected video with default player"},
			},
		},
		{
			title: "Time selectors",
			bindings: []struct {
				key  string
				desc string
			}{
				{"H / ← , L / →", "Move between IN/OUT fields"},
				{"+ / -", "Step field value up/down"},
				{"e", "Type a value for the active field"},
				{"Tab", "Toggle quick-insert grid focus"},
				{"Enter (grid)", "Insert highlighted value into active field"},
			},
		},
		{
			title: "Extraction",
			bindings: []struct {
				key  string
				desc string
			}{
				{"x", "Extract selected video"},
				{"X / Ctrl+E", "Extract all videos"},
			},
		},
		{
			title: "General",
			bindings: []struct {
				key  string
				desc string
			}{
				{"?", "Show/hide this help"},
				{"Esc", "Cancel prompt / edit"},
				{"q", "Quit application"},
			},
		},
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Padding(0, 1)

	groupStyle := lipgloss.NewStyle().
		Foreground(styles.Magenta).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Orange).
		Bold(true).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.OffWhite)

	var lines []string
	lines = append(lines, titleStyle.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	for _, group := range groups {
		lines = append(lines, groupStyle.Render(" "+group.title))
		for _, b := range group.bindings {
			lines = append(lines, fmt.Sprintf("  %s%s", keyStyle.Render(b.key), descStyle.Render(b.desc)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(styles.Gray).Italic(true).Render(" Press any key to close"))

	return centerContent(strings.Join(lines, "\n"), width, height)
}

// centerContent centers a block of content within the given bounds.
func centerContent(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(styles.Charcoal))
}
