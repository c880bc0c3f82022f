// Package styles provides Lipgloss styles for the TUI using the neon-on-dark palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - neon accents on a near-black background
const (
	// Charcoal is the main background colour
	Charcoal = lipgloss.Color("#121212")
	// Graphite is the panel background colour
	Graphite = lipgloss.Color("#1E1E1E")
	// Steel is the background for grid cells and inactive controls
	Steel = lipgloss.Color("#2A2A2A")
	// Slate is the border/dim accent colour
	Slate = lipgloss.Color("#333333")
	// Cyan marks hour fields and primary accents
	Cyan = lipgloss.Color("#00FFFF")
	// Magenta marks the quick-insert values
	Magenta = lipgloss.Color("#FF00FF")
	// NeonGreen marks minute fields
	NeonGreen = lipgloss.Color("#39FF14")
	// Red marks second fields and errors
	Red = lipgloss.Color("#FF0000")
	// Orange marks the focused time field
	Orange = lipgloss.Color("#FFA500")
	// Lime is used for playback and success accents
	Lime = lipgloss.Color("#32CD32")
	// Green is the extract-all accent
	Green = lipgloss.Color("#4CAF50")
	// OffWhite is the primary text colour
	OffWhite = lipgloss.Color("#E0E0E0")
	// Gray is the secondary text colour
	Gray = lipgloss.Color("#9E9E9E")
)

// Pre-defined styles using the color palette

// Background is the main background style for the entire TUI
var Background = lipgloss.NewStyle().
	Background(Charcoal)

// Panel is the style for content panels
var Panel = lipgloss.NewStyle().
	Background(Graphite).
	Padding(1, 2)

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Slate)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Steel).
	Foreground(Orange).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(OffWhite)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Gray)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Lime).
	Bold(true)
