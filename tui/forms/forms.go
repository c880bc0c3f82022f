// Package forms provides huh-based prompts used outside the main TUI loop.
package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/user/inout-extractor-cli/pkg/timeutil"
)

// NewRangeForm creates a huh form prompting for IN and OUT times of a clip.
// Values accept HH:MM:SS, MM:SS, or raw seconds. The pointers are bound to
// the input fields and populated on submit.
func NewRangeForm(videoName string, in, out *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(fmt.Sprintf("Extract from %s", videoName)),

			huh.NewInput().
				Title("IN time").
				Description("HH:MM:SS, MM:SS, or seconds").
				Value(in).
				Validate(validateTime),

			huh.NewInput().
				Title("OUT time").
				Description("HH:MM:SS, MM:SS, or seconds").
				Value(out).
				Validate(validateTime),
		),
	).WithTheme(Theme())
}

func validateTime(s string) error {
	if _, err := timeutil.ParseTimeToSeconds(s); err != nil {
		return err
	}
	return nil
}

// NewConfirmClearForm creates a huh confirm form asking whether to wipe the
// recorded extraction history. The result pointer is bound to the confirm
// field value.
func NewConfirmClearForm(count int64, confirm *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear extraction history?").
				Description(fmt.Sprintf("This deletes %d recorded extraction(s). Output files are not touched.", count)).
				Affirmative("Yes, clear").
				Negative("No, keep").
				Value(confirm),
		),
	).WithTheme(Theme())
}
