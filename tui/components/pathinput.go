package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// PathInputState holds the state for the add-video path prompt.
type PathInputState struct {
	// Active indicates the prompt is visible
	Active bool
	// Input is the path typed so far
	Input string
	// CursorPos is the cursor position within Input
	CursorPos int
}

// Clear resets and hides the prompt.
func (s *PathInputState) Clear() {
	s.Active = false
	s.Input = ""
	s.CursorPos = 0
}

// InsertChar inserts a character at the cursor position.
func (s *PathInputState) InsertChar(r rune) {
	s.Input = s.Input[:s.CursorPos] + string(r) + s.Input[s.CursorPos:]
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *PathInputState) Backspace() {
	if s.CursorPos > 0 {
		s.Input = s.Input[:s.CursorPos-1] + s.Input[s.CursorPos:]
		s.CursorPos--
	}
}

// MoveCursorLeft moves the cursor one position left.
func (s *PathInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor one position right.
func (s *PathInputState) MoveCursorRight() {
	if s.CursorPos < len(s.Input) {
		s.CursorPos++
	}
}

// PathInput renders the add-video prompt with a visible cursor.
func PathInput(state PathInputState, width int) string {
	if !state.Active {
		return ""
	}

	promptStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(styles.OffWhite)
	cursorStyle := lipgloss.NewStyle().Foreground(styles.Orange).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(styles.Gray).Italic(true)

	before := state.Input[:state.CursorPos]
	after := state.Input[state.CursorPos:]
	line := " " + promptStyle.Render("Add video: ") +
		textStyle.Render(before) + cursorStyle.Render("▏") + textStyle.Render(after)

	hint := hintStyle.Render(" .mp4, .avi, .mkv  (Enter to add, Esc to cancel)")

	return RenderInfoBox("Add", []string{line, hint}, width)
}
