package tui

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/user/inout-extractor-cli/extract"
	"github.com/user/inout-extractor-cli/pkg/timeutil"
	"github.com/user/inout-extractor-cli/player"
	"github.com/user/inout-extractor-cli/session"
	"github.com/user/inout-extractor-cli/tui/components"
	"github.com/user/inout-extractor-cli/tui/layout"
	"github.com/user/inout-extractor-cli/tui/styles"
)

// resultDisplayDuration is how long to show transient result messages.
const resultDisplayDuration = 4 * time.Second

// clearResultMsg is sent to clear the transient status message.
type clearResultMsg struct{}

// singleExtractDoneMsg reports the outcome of a one-off extraction.
type singleExtractDoneMsg struct {
	path   string
	output string
	err    error
}

// Model is the Bubbletea model for the TUI application.
// It implements the tea.Model interface with Init, Update, and View methods.
type Model struct {
	// sess tracks the videos and their in/out selections
	sess *session.Session
	// database records extraction history; may be nil
	database *sql.DB
	// invoker runs ffmpeg jobs
	invoker *extract.Invoker
	// log is the file-backed application logger
	log zerolog.Logger
	// terminal size
	width  int
	height int
	// focus is the panel receiving key input
	focus FocusTarget
	// selected is the index of the selected video row
	selected int
	// activeField is the time selector field edits apply to
	activeField components.Field
	// edit is the in-progress manual entry for the active field
	edit components.FieldEdit
	// quickBar is the 0-59 quick-insert grid state
	quickBar components.QuickInsertState
	// pathInput is the add-video prompt state
	pathInput components.PathInputState
	// progress is the batch extraction progress state
	progress components.ExtractProgressState
	// statuses holds the last extraction outcome per video path
	statuses map[string]*components.RowStatus
	// statusBar holds the transient message and summary state
	statusBar components.StatusBarState
	// extractCh delivers messages from the batch goroutine
	extractCh <-chan tea.Msg
	// extracting blocks further extraction requests while one runs
	extracting bool
	// showHelp indicates if the help overlay is visible
	showHelp bool
	// quitting flag to signal shutdown
	quitting bool
}

// NewModel creates a new TUI model over the given session.
func NewModel(sess *session.Session, database *sql.DB, logger zerolog.Logger) *Model {
	return &Model{
		sess:     sess,
		database: database,
		invoker:  extract.NewInvoker(extract.DefaultOutputDir, logger),
		log:      logger,
		statuses: make(map[string]*components.RowStatus),
	}
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearResultMsg:
		m.statusBar.Message = ""
		m.statusBar.IsError = false
		return m, nil

	case singleExtractDoneMsg:
		m.extracting = false
		m.statusBar.Extracting = false
		m.recordRowStatus(msg.path, msg.output, msg.err)
		if msg.err != nil {
			return m, m.showResult("Error: "+msg.err.Error(), true)
		}
		return m, m.showResult(fmt.Sprintf("Extraction completed for %s", filepath.Base(msg.path)), false)

	case extractProgressMsg:
		m.progress.Completed = msg.current - 1
		m.progress.Total = msg.total
		m.progress.CurrentFile = filepath.Base(msg.file)
		return m, waitForExtractMsg(m.extractCh)

	case rowResultMsg:
		m.recordRowStatus(msg.path, msg.output, msg.err)
		if msg.err != nil {
			m.progress.Errors++
		}
		return m, waitForExtractMsg(m.extractCh)

	case extractAllDoneMsg:
		m.extracting = false
		m.statusBar.Extracting = false
		m.progress.Completed = m.progress.Total
		m.progress.CurrentFile = ""
		summary := fmt.Sprintf("Extracted %d/%d video(s)", msg.completed, msg.total)
		isErr := msg.errors > 0
		if isErr {
			summary += fmt.Sprintf(", %d failed", msg.errors)
		}
		return m, m.showResult(summary, isErr)

	case tea.KeyMsg:
		// Any key dismisses the help overlay
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.pathInput.Active {
			return m.handlePathInput(msg)
		}

		if m.edit.Active {
			return m.handleFieldEdit(msg)
		}

		if m.focus == FocusQuickBar {
			return m.handleQuickBar(msg)
		}

		return m.handleListKeys(msg)
	}

	return m, nil
}

// handleListKeys handles key events in normal mode with the list focused.
func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "a", "A":
		m.pathInput.Active = true
		return m, nil
	case "j", "down":
		if m.selected < m.sess.Len()-1 {
			m.selected++
		}
		return m, nil
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "h", "left":
		m.activeField = m.activeField.Prev()
		return m, nil
	case "l", "right":
		m.activeField = m.activeField.Next()
		return m, nil
	case "tab":
		m.quickBar.Focused = true
		m.focus = FocusQuickBar
		return m, nil
	case "+", "=":
		m.bumpActiveField(1)
		return m, nil
	case "-", "_":
		m.bumpActiveField(-1)
		return m, nil
	case "e", "E":
		if m.sess.Len() > 0 {
			m.edit.Active = true
			m.edit.Text = ""
		}
		return m, nil
	case "p", "P":
		return m.playSelected()
	case "x":
		return m.extractSelected()
	case "X", "ctrl+e":
		return m.extractAll()
	}
	return m, nil
}

// handleQuickBar handles key events while the quick-insert grid has focus.
func (m *Model) handleQuickBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab", "esc":
		m.quickBar.Focused = false
		m.focus = FocusList
		return m, nil
	case "h", "left":
		m.quickBar.MoveLeft()
		return m, nil
	case "l", "right":
		m.quickBar.MoveRight()
		return m, nil
	case "k", "up":
		m.quickBar.MoveUp()
		return m, nil
	case "j", "down":
		m.quickBar.MoveDown()
		return m, nil
	case "enter":
		// Insert the highlighted value into the active field. Values above
		// the field's range coerce to 0, same as manual entry.
		m.commitFieldText(strconv.Itoa(m.quickBar.Selected))
		return m, nil
	}
	return m, nil
}

// handlePathInput handles key events for the add-video prompt.
func (m *Model) handlePathInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pathInput.Clear()
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.pathInput.Input)
		m.pathInput.Clear()
		if path == "" {
			return m, nil
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if !session.IsVideoFile(path) {
			return m, m.showResult("Unsupported file type (use .mp4, .avi, .mkv)", true)
		}
		if !m.sess.Add(path) {
			return m, m.showResult("Already added: "+filepath.Base(path), true)
		}
		m.selected = m.sess.Len() - 1
		m.log.Info().Str("path", path).Msg("video added")
		return m, m.showResult("Added "+filepath.Base(path), false)

	case "backspace":
		m.pathInput.Backspace()
		return m, nil
	case "left":
		m.pathInput.MoveCursorLeft()
		return m, nil
	case "right":
		m.pathInput.MoveCursorRight()
		return m, nil
	default:
		if len(msg.String()) == 1 {
			m.pathInput.InsertChar(rune(msg.String()[0]))
		} else if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.pathInput.InsertChar(r)
			}
		}
		return m, nil
	}
}

// handleFieldEdit handles key events while manually typing a field value.
func (m *Model) handleFieldEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.edit = components.FieldEdit{}
		return m, nil
	case "enter":
		m.commitFieldText(m.edit.Text)
		m.edit = components.FieldEdit{}
		return m, nil
	case "backspace":
		if len(m.edit.Text) > 0 {
			m.edit.Text = m.edit.Text[:len(m.edit.Text)-1]
		}
		return m, nil
	default:
		// Any printable text is accepted here; commit coerces bad input to 0.
		if len(msg.String()) == 1 {
			m.edit.Text += msg.String()
		} else if msg.Type == tea.KeyRunes {
			m.edit.Text += string(msg.Runes)
		}
		return m, nil
	}
}

// commitFieldText applies manual text to the active field of the selected
// row, coercing non-numeric or out-of-range input to 0.
func (m *Model) commitFieldText(text string) {
	m.setFieldValue(m.activeField, timeutil.CoerceField(text, m.activeField.Max()))
}

// fieldValue returns the current value of field f on the selected row.
func (m *Model) fieldValue(f components.Field) int {
	entries := m.sess.Entries()
	if m.selected >= len(entries) {
		return 0
	}
	total := entries[m.selected].In
	if !f.IsIn() {
		total = entries[m.selected].Out
	}
	h, mm, s := timeutil.SplitHMS(total)
	switch f {
	case components.FieldInHour, components.FieldOutHour:
		return h
	case components.FieldInMinute, components.FieldOutMinute:
		return mm
	default:
		return s
	}
}

// setFieldValue overwrites field f on the selected row with v.
func (m *Model) setFieldValue(f components.Field, v int) {
	entries := m.sess.Entries()
	if m.selected >= len(entries) {
		return
	}
	e := entries[m.selected]
	total := e.In
	if !f.IsIn() {
		total = e.Out
	}
	h, mm, s := timeutil.SplitHMS(total)
	switch f {
	case components.FieldInHour, components.FieldOutHour:
		h = v
	case components.FieldInMinute, components.FieldOutMinute:
		mm = v
	default:
		s = v
	}
	combined := timeutil.CombineHMS(h, mm, s)
	if f.IsIn() {
		m.sess.SetIn(e.Path, combined)
	} else {
		m.sess.SetOut(e.Path, combined)
	}
}

// bumpActiveField steps the active field by delta, wrapping within its range.
func (m *Model) bumpActiveField(delta int) {
	if m.sess.Len() == 0 {
		return
	}
	max := m.activeField.Max()
	v := (m.fieldValue(m.activeField) + delta + max + 1) % (max + 1)
	m.setFieldValue(m.activeField, v)
}

// playSelected asks the OS to open the selected video with the default player.
func (m *Model) playSelected() (tea.Model, tea.Cmd) {
	entries := m.sess.Entries()
	if m.selected >= len(entries) {
		return m, nil
	}
	path := entries[m.selected].Path
	if err := player.Play(path); err != nil {
		return m, m.showResult("Error: "+err.Error(), true)
	}
	return m, m.showResult("Playing "+filepath.Base(path), false)
}

// extractSelected runs a single extraction for the selected row in the
// background. Requests while one is running are refused.
func (m *Model) extractSelected() (tea.Model, tea.Cmd) {
	entries := m.sess.Entries()
	if m.selected >= len(entries) {
		return m, nil
	}
	if m.extracting {
		return m, m.showResult("An extraction is already running", true)
	}

	e := entries[m.selected]
	m.extracting = true
	m.statusBar.Extracting = true

	inv := m.invoker
	database := m.database
	return m, func() tea.Msg {
		output, err := inv.Extract(context.Background(), e.Path, e.In, e.Out)
		recordExtraction(database, e, output, err)
		return singleExtractDoneMsg{path: e.Path, output: output, err: err}
	}
}

// extractAll starts the sequential batch extraction goroutine.
func (m *Model) extractAll() (tea.Model, tea.Cmd) {
	if m.sess.Len() == 0 {
		return m, nil
	}
	if m.extracting {
		return m, m.showResult("An extraction is already running", true)
	}

	ch, err := startExtractAll(m.invoker, m.database, m.sess.Entries())
	if err != nil {
		return m, m.showResult("Error: "+err.Error(), true)
	}

	m.extractCh = ch
	m.extracting = true
	m.statusBar.Extracting = true
	m.progress = components.ExtractProgressState{
		Active: true,
		Total:  m.sess.Len(),
	}
	return m, waitForExtractMsg(ch)
}

// recordRowStatus stores a row's last extraction outcome for display.
func (m *Model) recordRowStatus(path, output string, err error) {
	if err != nil {
		m.statuses[path] = &components.RowStatus{Message: err.Error(), Err: true}
		return
	}
	m.statuses[path] = &components.RowStatus{Message: output}
}

// showResult sets a transient status message and schedules its removal.
func (m *Model) showResult(text string, isError bool) tea.Cmd {
	m.statusBar.Message = text
	m.statusBar.IsError = isError
	return tea.Tick(resultDisplayDuration, func(t time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// View renders the full TUI frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Width(m.width).
		Align(lipgloss.Center)
	header := headerStyle.Render("In-Out Extractor")

	grid := components.QuickInsert(m.quickBar, m.width)

	var extras []string
	if m.progress.Active {
		extras = append(extras, components.ExtractProgress(m.progress, m.width))
	}
	if m.pathInput.Active {
		extras = append(extras, components.PathInput(m.pathInput, m.width))
	}

	m.statusBar.Count = m.sess.Len()
	m.statusBar.OutputDir = m.invoker.OutputDir
	statusBar := components.StatusBar(m.statusBar, m.width)

	extrasHeight := 0
	for _, e := range extras {
		extrasHeight += lipgloss.Height(e)
	}
	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(grid) - extrasHeight - 2
	if listHeight < 3 {
		listHeight = 3
	}

	list := layout.Container{Width: m.width, Height: listHeight}.
		Render(components.FileList(m.rows(), m.selected, m.activeField, m.edit,
			m.focus == FocusList, m.width, listHeight))

	sections := []string{header, grid, list}
	sections = append(sections, extras...)
	sections = append(sections, statusBar)

	return styles.Background.Render(strings.Join(sections, "\n"))
}

// rows builds the display rows from the session entries and their statuses.
func (m *Model) rows() []components.FileRow {
	entries := m.sess.Entries()
	rows := make([]components.FileRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, components.FileRow{
			Path:   e.Path,
			In:     e.In,
			Out:    e.Out,
			Status: m.statuses[e.Path],
		})
	}
	return rows
}

// Run starts the Bubbletea program with the given model.
// It returns an error if the program fails to start or run.
func Run(sess *session.Session, database *sql.DB, logger zerolog.Logger) error {
	model := NewModel(sess, database, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
