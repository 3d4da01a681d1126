package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/payments/config"
	"github.com/rustyeddy/payments/feed"
	"github.com/rustyeddy/payments/journal"
	"github.com/rustyeddy/payments/ledger"
	"github.com/rustyeddy/payments/process"
	"github.com/rustyeddy/payments/report"
)

var runCmd = &cobra.Command{
	Use:   "run [transactions.csv]",
	Short: "Process a transaction file and print the account snapshot",
	Long: `Process an ordered CSV transaction stream and print the final state
of every client account to stdout.

The snapshot goes to stdout; the run summary, and rejection notices when
--verbose is set, go to stderr. Individual bad records never fail the
run, only an unreadable input does.

Examples:
  payments run transactions.csv
  payments run -v --journal csv --journal-path rejections.csv transactions.csv
  payments run -f payments.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

var (
	runConfigPath  string
	runVerbose     bool
	runJournalType string
	runJournalPath string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "report each rejected record on stderr")
	runCmd.Flags().StringVar(&runJournalType, "journal", "", "rejection journal backend: none, csv or sqlite")
	runCmd.Flags().StringVar(&runJournalPath, "journal-path", "", "path for the rejection journal file")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Flags beat the config file.
	if cmd.Flags().Changed("verbose") {
		cfg.Diagnostics.Verbose = runVerbose
	}
	if cmd.Flags().Changed("journal") {
		cfg.Diagnostics.Journal.Type = runJournalType
	}
	if cmd.Flags().Changed("journal-path") {
		cfg.Diagnostics.Journal.Path = runJournalPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	input := cfg.Input
	if len(args) == 1 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("no input file: pass a path or set input in the config")
	}

	f, err := feed.Open(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}

	j, err := openJournal(cfg.Diagnostics.Journal)
	if err != nil {
		f.Close()
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	eng := ledger.NewEngine()
	runner := process.Runner{
		Engine:  eng,
		Feed:    f,
		Journal: j,
		Verbose: cfg.Diagnostics.Verbose,
		Stderr:  os.Stderr,
	}

	sum, err := runner.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("process %s: %w", input, err)
	}

	if err := report.WriteCSV(os.Stdout, eng.Snapshot()); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	fmt.Fprintf(os.Stderr, "processed %d records: %d accepted, %d rejected, %d malformed (run %s)\n",
		sum.Records, sum.Accepted, sum.Rejected, sum.Malformed, sum.RunID)
	return nil
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "csv":
		return journal.NewCSV(cfg.Path)
	case "sqlite":
		return journal.NewSQLite(cfg.Path)
	}
	return journal.Nop(), nil
}
