package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/inout-extractor-cli/pkg/timeutil"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// RowStatus is the last extraction outcome shown under a video row.
type RowStatus struct {
	// Message is the output path on success or the error text on failure
	Message string
	// Err indicates the row's last extraction failed
	Err bool
}

// FieldEdit is an in-progress manual edit of the active time field.
type FieldEdit struct {
	// Active indicates an edit is in progress
	Active bool
	// Text is the raw text typed so far; it is coerced on commit
	Text string
}

// FileRow is one tracked video prepared for display.
type FileRow struct {
	Path   string
	In     int
	Out    int
	Status *RowStatus
}

// FileList renders the video rows with their IN/OUT selectors. The active
// field on the selected row is highlighted; when listFocused is false the
// highlight dims so the quick-insert grid reads as focused instead.
func FileList(rows []FileRow, selected int, active Field, edit FieldEdit, listFocused bool, width, height int) string {
	if len(rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.Gray).
			Italic(true).
			Padding(1, 2)
		return emptyStyle.Render("No videos yet. Press 'a' to add one.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(styles.OffWhite).Bold(true)
	selectedNameStyle := nameStyle.Foreground(styles.Orange)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Gray).Bold(true)

	var lines []string
	for i, row := range rows {
		marker := "  "
		name := nameStyle.Render(filepath.Base(row.Path))
		if i == selected {
			marker = lipgloss.NewStyle().Foreground(styles.Orange).Render("▸ ")
			name = selectedNameStyle.Render(filepath.Base(row.Path))
		}
		lines = append(lines, marker+"📽 "+name)

		inFields := renderSelector(row.In, true, i == selected, active, edit, listFocused)
		outFields := renderSelector(row.Out, false, i == selected, active, edit, listFocused)
		lines = append(lines, fmt.Sprintf("     %s %s   %s %s",
			labelStyle.Render("IN:"), inFields,
			labelStyle.Render("OUT:"), outFields))

		if row.Status != nil {
			statusStyle := lipgloss.NewStyle().Foreground(styles.Lime)
			icon := "✓"
			if row.Status.Err {
				statusStyle = lipgloss.NewStyle().Foreground(styles.Red)
				icon = "✗"
			}
			lines = append(lines, "     "+statusStyle.Render(icon+" "+row.Status.Message))
		}
		lines = append(lines, "")
	}

	// Keep the selected row visible: scroll in whole-row steps.
	const linesPerRow = 4
	visibleRows := height / linesPerRow
	if visibleRows < 1 {
		visibleRows = 1
	}
	first := 0
	if selected >= visibleRows {
		first = selected - visibleRows + 1
	}
	start := first * linesPerRow
	if start > len(lines) {
		start = len(lines)
	}
	return strings.Join(lines[start:], "\n")
}

// renderSelector renders one HH : MM : SS selector triple.
func renderSelector(total int, isIn bool, rowSelected bool, active Field, edit FieldEdit, listFocused bool) string {
	h, m, s := timeutil.SplitHMS(total)

	fields := [3]Field{FieldInHour, FieldInMinute, FieldInSecond}
	if !isIn {
		fields = [3]Field{FieldOutHour, FieldOutMinute, FieldOutSecond}
	}
	values := [3]int{h, m, s}
	colors := [3]lipgloss.Color{styles.Cyan, styles.NeonGreen, styles.Red}

	sep := lipgloss.NewStyle().Foreground(styles.Gray).Render(":")
	var parts []string
	for i := 0; i < 3; i++ {
		style := lipgloss.NewStyle().
			Background(styles.Steel).
			Foreground(colors[i]).
			Bold(true)

		text := fmt.Sprintf("%02d", values[i])
		if rowSelected && listFocused && fields[i] == active {
			if edit.Active {
				// Show the raw text being typed; commit coerces it.
				text = edit.Text + "▏"
				if edit.Text == "" {
					text = "▏"
				}
			}
			style = style.
				Background(styles.Orange).
				Foreground(styles.Charcoal)
		}
		parts = append(parts, style.Render(" "+text+" "))
	}
	return parts[0] + sep + parts[1] + sep + parts[2]
}
