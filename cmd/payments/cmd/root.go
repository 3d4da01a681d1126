package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "payments",
	Short: "A streaming transaction processor for client account settlement",
	Long: `Payments replays an ordered CSV stream of transaction records
(deposit, withdrawal, dispute, resolve, chargeback) through an in-memory
ledger and prints the final per-client account snapshot as CSV.

It provides:
  - One-pass streaming ingestion, suitable for very large files
  - Strict dispute lifecycle handling with permanent account locks
  - Silent per-record rejection with an optional diagnostics journal
  - Exact fixed-point amounts with four fractional digits`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
