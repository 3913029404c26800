package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/seed"
	"github.com/pdiddy/snowball/internal/semanticscholar"
)

var expandCmd = &cobra.Command{
	Use:   "expand [identifier]",
	Short: "Expand one seed paper's citation neighborhood",
	Long: `Expand fetches the given paper as a seed, saves its metadata under
"seed papers", then fetches every paper it references and every paper citing
it, saving each under "snowballing papers". References are expanded before
citations.`,
	RunE: runExpand,
}

func init() {
	addCollectFlags(expandCmd)

	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one Semantic Scholar paper identifier")
	}

	cfg, err := collectConfig(cmd)
	if err != nil {
		return err
	}

	store := &artifact.Store{Root: cfg.OutputDir}
	client := semanticscholar.New(cfg, os.Stderr)

	s, err := seed.New(cmd.Context(), args[0], client, store)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "seed %s: %d references, %d citations\n",
		s.ID(), len(s.References()), len(s.Citations()))

	result, err := s.Snowball(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d paper(s) failed during expansion", result.Failed)
	}
	return nil
}
