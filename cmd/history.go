package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/inout-extractor-cli/db"
	"github.com/user/inout-extractor-cli/pkg/timeutil"
	"github.com/user/inout-extractor-cli/tui/forms"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded extractions",
	Long:  `Display recent extraction attempts as a table, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		extractions, err := db.SelectRecentExtractions(database, limit)
		if err != nil {
			return fmt.Errorf("failed to query history: %w", err)
		}

		if len(extractions) == 0 {
			fmt.Println("No extractions recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWhen\tSource\tRange\tStatus\tResult")
		fmt.Fprintln(w, "--\t----\t------\t-----\t------\t------")

		for _, e := range extractions {
			rangeStr := fmt.Sprintf("%s - %s",
				timeutil.FormatTime(e.StartSeconds), timeutil.FormatTime(e.EndSeconds))

			result := filepath.Base(e.OutputPath)
			if e.Status == db.StatusError {
				result = e.Error
				if len(result) > 60 {
					result = result[:57] + "..."
				}
			}

			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				e.ID,
				e.CreatedAt.Format("2006-01-02 15:04"),
				filepath.Base(e.SourcePath),
				rangeStr,
				e.Status,
				result)
		}
		w.Flush()

		fmt.Printf("\n%d extraction(s).\n", len(extractions))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded extractions",
	Long:  `Delete every row of the extraction history after confirmation. Extracted clip files are not touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		extractions, err := db.SelectRecentExtractions(database, 1<<31-1)
		if err != nil {
			return fmt.Errorf("failed to query history: %w", err)
		}
		if len(extractions) == 0 {
			fmt.Println("History is already empty.")
			return nil
		}

		var confirm bool
		form := forms.NewConfirmClearForm(int64(len(extractions)), &confirm)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirm {
			fmt.Println("Cancelled.")
			return nil
		}

		deleted, err := db.DeleteAllExtractions(database)
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Printf("Deleted %d extraction(s).\n", deleted)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of rows to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
