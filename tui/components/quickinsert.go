package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// Grid geometry: 60 values in 3 rows of 20, as in the original layout.
const (
	quickInsertValues = 60
	quickInsertCols   = 20
)

// QuickInsertState holds the state for the 0-59 quick-insert grid.
type QuickInsertState struct {
	// Focused indicates the grid has keyboard focus
	Focused bool
	// Selected is the highlighted value (0-59)
	Selected int
}

// MoveLeft moves the highlighted value one cell left.
func (s *QuickInsertState) MoveLeft() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// MoveRight moves the highlighted value one cell right.
func (s *QuickInsertState) MoveRight() {
	if s.Selected < quickInsertValues-1 {
		s.Selected++
	}
}

// MoveUp moves the highlighted value one grid row up.
func (s *QuickInsertState) MoveUp() {
	if s.Selected >= quickInsertCols {
		s.Selected -= quickInsertCols
	}
}

// MoveDown moves the highlighted value one grid row down.
func (s *QuickInsertState) MoveDown() {
	if s.Selected < quickInsertValues-quickInsertCols {
		s.Selected += quickInsertCols
	}
}

// QuickInsert renders the quick-insert grid. Values 0-2 keep the cyan
// accent of the original, the rest magenta. When the grid is focused the
// highlighted cell flips to the orange focus colour.
func QuickInsert(state QuickInsertState, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(styles.Gray)
	title := " Quick insert"
	if state.Focused {
		titleStyle = lipgloss.NewStyle().Foreground(styles.Orange).Bold(true)
		title = " Quick insert (Enter applies to the active field)"
	}

	cellBase := lipgloss.NewStyle().Background(styles.Steel).Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Background(styles.Orange).
		Foreground(styles.Charcoal).
		Bold(true)

	var rows []string
	for row := 0; row < quickInsertValues/quickInsertCols; row++ {
		var cells []string
		for col := 0; col < quickInsertCols; col++ {
			v := row*quickInsertCols + col
			label := fmt.Sprintf(" %2d ", v)

			style := cellBase.Foreground(styles.Magenta)
			if v <= 2 {
				style = cellBase.Foreground(styles.Cyan)
			}
			if state.Focused && v == state.Selected {
				style = selectedStyle
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, " "+strings.Join(cells, " "))
	}

	return titleStyle.Render(title) + "\n" + strings.Join(rows, "\n")
}
