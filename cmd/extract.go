package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/user/inout-extractor-cli/db"
	"github.com/user/inout-extractor-cli/extract"
	"github.com/user/inout-extractor-cli/pkg/timeutil"
	"github.com/user/inout-extractor-cli/player"
	"github.com/user/inout-extractor-cli/session"
	"github.com/user/inout-extractor-cli/tui/forms"
)

var extractCmd = &cobra.Command{
	Use:   "extract <video-file> [in] [out]",
	Short: "Extract a sub-clip without opening the session UI",
	Long: `Extract the [in, out] range of a video as a stream copy into the output
directory. Times accept HH:MM:SS, MM:SS, or raw seconds. When in/out are
omitted, an interactive prompt asks for them.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		if !session.IsVideoFile(videoPath) {
			return fmt.Errorf("unsupported file type (use .mp4, .avi, .mkv): %s", args[0])
		}

		var inStr, outStr string
		if len(args) == 3 {
			inStr, outStr = args[1], args[2]
		} else {
			// Prompt for the missing range.
			form := forms.NewRangeForm(filepath.Base(videoPath), &inStr, &outStr)
			if err := form.Run(); err != nil {
				return err
			}
		}

		inSeconds, err := timeutil.ParseTimeToSeconds(inStr)
		if err != nil {
			return fmt.Errorf("invalid IN time: %w", err)
		}
		outSeconds, err := timeutil.ParseTimeToSeconds(outStr)
		if err != nil {
			return fmt.Errorf("invalid OUT time: %w", err)
		}

		outputDir, _ := cmd.Flags().GetString("output-dir")
		play, _ := cmd.Flags().GetBool("play")

		invoker := extract.NewInvoker(outputDir, setupLogger())
		outputPath, extractErr := invoker.Extract(cmd.Context(), videoPath, inSeconds, outSeconds)

		// Record the attempt whether or not it succeeded.
		if database, err := db.Open(); err == nil {
			entry := session.Entry{Path: videoPath, In: inSeconds, Out: outSeconds}
			rec := db.Extraction{
				SourcePath:   entry.Path,
				OutputPath:   outputPath,
				StartSeconds: entry.In,
				EndSeconds:   entry.Out,
				Status:       db.StatusCompleted,
			}
			if extractErr != nil {
				rec.Status = db.StatusError
				rec.Error = extractErr.Error()
			}
			_, _ = db.InsertExtraction(database, rec)
			database.Close()
		}

		if extractErr != nil {
			var toolErr *extract.ToolError
			if errors.As(extractErr, &toolErr) {
				return fmt.Errorf("extraction failed: %w", toolErr)
			}
			return extractErr
		}

		fmt.Printf("Extracted %s - %s to %s\n",
			timeutil.FormatTime(inSeconds), timeutil.FormatTime(outSeconds), outputPath)

		if play {
			if err := player.Play(outputPath); err != nil {
				return fmt.Errorf("failed to open clip: %w", err)
			}
			fmt.Println("Opening clip with the default player...")
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("output-dir", "o", extract.DefaultOutputDir, "Directory extracted clips are written to")
	extractCmd.Flags().BoolP("play", "p", false, "Open the extracted clip with the default player")
	rootCmd.AddCommand(extractCmd)
}
