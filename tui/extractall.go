package tui

import (
	"context"
	"database/sql"
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/inout-extractor-cli/db"
	"github.com/user/inout-extractor-cli/extract"
	"github.com/user/inout-extractor-cli/session"
)

// extractProgressMsg announces that job `current` of `total` is starting.
type extractProgressMsg struct {
	current int
	total   int
	file    string
}

// rowResultMsg carries one finished job's outcome.
type rowResultMsg struct {
	path   string
	output string
	err    error
}

// extractAllDoneMsg is sent when the whole batch has been attempted.
type extractAllDoneMsg struct {
	completed int
	errors    int
	total     int
}

// waitForExtractMsg returns a tea.Cmd that waits for the next message on the channel.
func waitForExtractMsg(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// startExtractAll validates prerequisites and starts the batch extraction
// in a background goroutine. Jobs run strictly sequentially; a failed job
// is reported and the batch moves on to the next entry.
func startExtractAll(inv *extract.Invoker, database *sql.DB, entries []session.Entry) (<-chan tea.Msg, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("ffmpeg not found. Install: https://ffmpeg.org/download.html")
	}

	total := len(entries)

	ch := make(chan tea.Msg)
	go func() {
		defer close(ch)

		completed := 0
		failed := 0
		for i, e := range entries {
			ch <- extractProgressMsg{current: i + 1, total: total, file: e.Path}

			output, err := inv.Extract(context.Background(), e.Path, e.In, e.Out)
			recordExtraction(database, e, output, err)
			if err != nil {
				failed++
			} else {
				completed++
			}

			ch <- rowResultMsg{path: e.Path, output: output, err: err}
		}

		ch <- extractAllDoneMsg{completed: completed, errors: failed, total: total}
	}()

	return ch, nil
}

// recordExtraction writes one attempt to the history ledger. A nil database
// (history unavailable) is a no-op.
func recordExtraction(database *sql.DB, e session.Entry, output string, err error) {
	if database == nil {
		return
	}
	rec := db.Extraction{
		SourcePath:   e.Path,
		OutputPath:   output,
		StartSeconds: e.In,
		EndSeconds:   e.Out,
		Status:       db.StatusCompleted,
	}
	if err != nil {
		rec.Status = db.StatusError
		rec.Error = err.Error()
	}
	_, _ = db.InsertExtraction(database, rec)
}
