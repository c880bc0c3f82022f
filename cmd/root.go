package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/user/inout-extractor-cli/db"
	"github.com/user/inout-extractor-cli/deps"
	"github.com/user/inout-extractor-cli/logs"
	"github.com/user/inout-extractor-cli/session"
	"github.com/user/inout-extractor-cli/tui"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "inout-extractor [video-file...]",
	Short: "Pick in/out points and extract sub-clips with ffmpeg",
	Long: `inout-extractor is a terminal tool for cutting sub-clips out of video files.

Add videos, dial in IN and OUT timestamps with HH:MM:SS selectors, and
extract the selected range as a stream copy (no re-encoding) into ./output.
Clips can be previewed with the system default video player.

Features:
  - Track multiple videos in one session
  - Quick-insert grid for fast 0-59 value entry
  - Extract one video or the whole session sequentially
  - Extraction history recorded in SQLite`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger()

		sess := session.New()
		for _, arg := range args {
			path, err := filepath.Abs(arg)
			if err != nil {
				path = arg
			}
			if !session.IsVideoFile(path) {
				fmt.Fprintf(os.Stderr, "skipping unsupported file: %s\n", arg)
				continue
			}
			sess.Add(path)
		}

		// History is best effort; the session works without it.
		database, err := db.Open()
		if err != nil {
			logger.Warn().Err(err).Msg("extraction history unavailable")
			database = nil
		} else {
			defer database.Close()
		}

		return tui.Run(sess, database, logger)
	},
}

// setupLogger builds the file-backed logger; logging is disabled when the
// data directory cannot be created.
func setupLogger() zerolog.Logger {
	logPath, err := logs.DefaultPath()
	if err != nil {
		return zerolog.Nop()
	}
	return logs.Setup(logPath)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inout-extractor version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (ffmpeg, the OS default-open launcher) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckFfmpeg(); err != nil {
			fmt.Println("✗ ffmpeg: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffmpeg: OK")
		}

		if err := deps.CheckLauncher(); err != nil {
			fmt.Printf("✗ %s: NOT FOUND\n", deps.LauncherName())
			allGood = false
		} else {
			fmt.Printf("✓ %s: OK\n", deps.LauncherName())
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
