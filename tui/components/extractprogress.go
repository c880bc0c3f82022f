package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// ExtractProgressState holds the state for the batch extraction progress box.
type ExtractProgressState struct {
	Active      bool
	Total       int
	Completed   int
	Errors      int
	CurrentFile string
}

// ExtractProgress renders a bordered info box showing batch progress.
// It displays a progress bar, percentage, job counter, current file, and
// error count. Failed jobs count as completed; the batch never stops early.
func ExtractProgress(state ExtractProgressState, width int) string {
	if !state.Active || width < 10 {
		return ""
	}

	limeStyle := lipgloss.NewStyle().Foreground(styles.Lime)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Gray)
	redStyle := lipgloss.NewStyle().Foreground(styles.Red)
	textStyle := lipgloss.NewStyle().Foreground(styles.OffWhite)

	// Inner width for content (box border = 2, plus 1 space padding each side)
	innerW := width - 4
	if innerW < 6 {
		innerW = 6
	}

	var contentLines []string

	var pct int
	if state.Total > 0 {
		pct = state.Completed * 100 / state.Total
	}

	// Bar width: innerW minus " XXX%" label (5 chars) minus 1 space padding
	barWidth := innerW - 6
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if state.Total > 0 {
		filled = barWidth * state.Completed / state.Total
	}
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	bar := limeStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", empty))
	pctLabel := fmt.Sprintf(" %3d%%", pct)
	contentLines = append(contentLines, " "+bar+textStyle.Render(pctLabel))

	counterLine := fmt.Sprintf(" %d/%d videos", state.Completed, state.Total)
	if state.Errors > 0 {
		counterLine += "  " + redStyle.Render(fmt.Sprintf("%d errors", state.Errors))
	}
	contentLines = append(contentLines, textStyle.Render(counterLine))

	if state.Completed == state.Total && state.Total > 0 {
		contentLines = append(contentLines, " "+limeStyle.Render("Batch complete"))
	} else if state.CurrentFile != "" {
		maxFileW := innerW - 2
		fileDisplay := state.CurrentFile
		if lipgloss.Width(fileDisplay) > maxFileW {
			fileDisplay = ansi.Truncate(fileDisplay, maxFileW-3, "...")
		}
		contentLines = append(contentLines, " "+textStyle.Render(fileDisplay))
	}

	return RenderInfoBox("Extract All", contentLines, width)
}
