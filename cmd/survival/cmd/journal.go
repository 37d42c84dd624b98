package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rustyeddy/survival/journal"
	"github.com/rustyeddy/survival/pkg/id"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded simulation runs",
	Long: `Query and display runs recorded with 'simulate --record' in the SQLite journal.

Subcommands:
  list    - List recent runs, or the runs of one day
  show    - Show one run as an Org-mode entry
  export  - Write the percentile bands of one run as CSV

Examples:
  survival journal list --limit 5
  survival journal list --day 2024-01-15
  survival journal show <run-id>
  survival journal export <run-id> -o bands.csv`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show details of a specific run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalExportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Export the bands of a run as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalExport,
}

var (
	journalDBPath string
	journalLimit  int
	journalDay    string
	journalOutput string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalExportCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB, overrides journal.db_path")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum runs to list")
	journalListCmd.Flags().StringVar(&journalDay, "day", "", "only runs created on this local day (YYYY-MM-DD)")
	journalExportCmd.Flags().StringVarP(&journalOutput, "output", "o", "", "output file (default stdout)")
}

func openJournal() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	if path == "" {
		return nil, fmt.Errorf("no journal database: set --db or journal.db_path")
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	var recs []journal.RunRecord
	if journalDay != "" {
		start, end, err := dayBounds(time.Local, journalDay)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		recs, err = j.ListRunsBetween(start, end)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
	} else {
		recs, err = j.ListRecent(journalLimit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
	}

	fmt.Println(journal.FormatRunsOrg(recs))
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	runID := args[0]
	if err := id.Validate(runID); err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetRun(runID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Println(journal.FormatRunOrg(rec))
	return nil
}

func runJournalExport(cmd *cobra.Command, args []string) error {
	runID := args[0]
	if err := id.Validate(runID); err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetRun(runID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	var w io.Writer = os.Stdout
	if journalOutput != "" {
		f, err := os.Create(journalOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := journal.WriteBandsCSV(w, rec); err != nil {
		return fmt.Errorf("write bands: %w", err)
	}
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
