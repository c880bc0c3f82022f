// Package layout provides sizing helpers for composing TUI panels.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// Container wraps content into an exact Width x Height bounding box.
// Lines are truncated/padded to Width and the line count is padded/truncated
// to Height. When content is truncated vertically, the last visible line
// shows a scroll indicator.
type Container struct {
	Width  int
	Height int
}

// Render returns the content constrained to exactly Width columns and Height lines.
func (c Container) Render(content string) string {
	lines := strings.Split(content, "\n")

	if len(lines) > c.Height {
		lines = lines[:c.Height]
		indicator := lipgloss.NewStyle().Foreground(styles.Slate).Render("↓ More...")
		lines[c.Height-1] = PadToWidth(indicator, c.Width)
	}

	for len(lines) < c.Height {
		lines = append(lines, "")
	}

	for i, line := range lines {
		lines[i] = PadToWidth(line, c.Width)
	}

	return strings.Join(lines, "\n")
}

// PadToWidth pads or truncates a string to exactly the specified width.
// Uses ansi.Truncate for ANSI-aware, grapheme-aware truncation that correctly
// handles double-width characters (emoji, East-Asian).
func PadToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currentWidth := lipgloss.Width(s)
	if currentWidth == width {
		return s
	}
	if currentWidth > width {
		s = ansi.Truncate(s, width, "")
		currentWidth = lipgloss.Width(s)
	}
	if currentWidth < width {
		return s + strings.Repeat(" ", width-currentWidth)
	}
	return s
}
