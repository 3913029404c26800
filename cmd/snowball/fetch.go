package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/semanticscholar"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [identifiers...]",
	Short: "Fetch full metadata for individual papers",
	Long: `Fetch retrieves full metadata, including reference and citation lists, for
each given paper identifier and prints a one-line summary. With --save the raw
responses are persisted under the "seed papers" directory.

Failures do not stop the batch; they are counted and reported at the end.`,
	RunE: runFetch,
}

func init() {
	addCollectFlags(fetchCmd)
	fetchCmd.Flags().Bool("save", false, "persist raw responses under the seed papers directory")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more Semantic Scholar paper identifiers")
	}

	cfg, err := collectConfig(cmd)
	if err != nil {
		return err
	}

	store := &artifact.Store{Root: cfg.OutputDir}
	client := semanticscholar.New(cfg, os.Stderr)
	save, _ := cmd.Flags().GetBool("save")

	fetched, failed := 0, 0
	for _, id := range args {
		savePath := ""
		if save {
			savePath = store.SeedPath(id)
		}
		p, err := client.Fetch(cmd.Context(), id, semanticscholar.PaperFields, savePath)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed: %s (%v)\n", id, err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: %s (%d references, %d citations)\n",
			p.PaperID, p.Title, len(p.References), len(p.Citations))
		fetched++
	}

	fmt.Fprintf(os.Stdout, "\nFetch summary: %d fetched, %d failed\n", fetched, failed)
	if failed > 0 {
		return fmt.Errorf("%d paper(s) failed to fetch", failed)
	}
	return nil
}
