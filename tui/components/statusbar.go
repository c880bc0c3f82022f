package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// StatusBarState holds the session summary for the status bar.
type StatusBarState struct {
	// Count is the number of tracked videos
	Count int
	// OutputDir is where clips are written
	OutputDir string
	// Extracting indicates a batch extraction is running
	Extracting bool
	// Message is a transient result message, if any
	Message string
	// IsError styles the message as an error
	IsError bool
}

// StatusBar renders the status bar component. The left side shows either
// the transient message or the session summary; the right side shows key
// hints.
func StatusBar(state StatusBarState, width int) string {
	var left string
	switch {
	case state.Message != "":
		style := lipgloss.NewStyle().Foreground(styles.Lime).Bold(true)
		if state.IsError {
			style = lipgloss.NewStyle().Foreground(styles.Red).Bold(true)
		}
		left = " " + style.Render(state.Message)
	case state.Extracting:
		left = " " + lipgloss.NewStyle().Foreground(styles.Orange).Render("Extracting…")
	default:
		left = fmt.Sprintf(" %d video(s)  →  %s", state.Count, state.OutputDir)
	}

	right := "? help  q quit "

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	middle := ""
	for i := 0; i < padding; i++ {
		middle += " "
	}

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.Graphite).
		Foreground(styles.OffWhite).
		Width(width)

	return statusBarStyle.Render(left + middle + right)
}
