package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/collect"
	"github.com/pdiddy/snowball/internal/semanticscholar"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full collection: search seeds, then expand their neighborhoods",
	Long: `Run executes the complete snowball workflow. A keyword search selects the
top-N seed papers and persists the raw result; each seed's metadata is fetched
and saved under "seed papers"; then every referenced and citing paper is
fetched and saved under "snowballing papers".

A failed seed fetch aborts the run. Failures while expanding a neighborhood
are reported and skipped. The output directories must already exist; create
them with "snowball init".`,
	RunE: runRun,
}

func init() {
	addCollectFlags(runCmd)
	runCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := collectConfig(cmd)
	if err != nil {
		return err
	}

	store := &artifact.Store{Root: cfg.OutputDir}
	client := semanticscholar.New(cfg, os.Stderr)

	result, err := collect.Run(cmd.Context(), client, store, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := collect.WriteReport(reportPath, cfg, result); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "report written to %s\n", reportPath)
	}
	return nil
}
