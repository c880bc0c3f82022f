package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// Theme returns a custom huh theme that matches the neon TUI palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Orange).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Gray)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Orange)

	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.OffWhite)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Green).
		Foreground(styles.Charcoal).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Steel).
		Foreground(styles.Gray).
		Padding(0, 1)

	t.Focused.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	t.Focused.Next = t.Focused.FocusedButton

	// Blurred field styles
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Gray)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Gray)

	t.Blurred.FocusedButton = lipgloss.NewStyle().
		Background(styles.Steel).
		Foreground(styles.Gray).
		Padding(0, 1)

	t.Blurred.BlurredButton = lipgloss.NewStyle().
		Background(styles.Graphite).
		Foreground(styles.Slate).
		Padding(0, 1)

	t.Blurred.Next = t.Blurred.FocusedButton

	return t
}
