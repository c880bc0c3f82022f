package tui

// FocusTarget represents which panel currently has focus.
type FocusTarget int

const (
	// FocusList focuses the video list and its time selectors.
	FocusList FocusTarget = iota
	// FocusQuickBar focuses the 0-59 quick-insert grid.
	FocusQuickBar
)
