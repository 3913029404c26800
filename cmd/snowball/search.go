package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/semanticscholar"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search Semantic Scholar for the top papers matching keywords",
	Long: `Search queries the Semantic Scholar Graph API for the top-N papers matching
the configured keywords and prints one paper identifier per line. With --save
the raw search response is also persisted under the output directory, named
after the query.`,
	RunE: runSearch,
}

func init() {
	addCollectFlags(searchCmd)
	searchCmd.Flags().Bool("save", false, "persist the raw search response under the output directory")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := collectConfig(cmd)
	if err != nil {
		return err
	}

	savePath := ""
	if save, _ := cmd.Flags().GetBool("save"); save {
		store := &artifact.Store{Root: cfg.OutputDir}
		savePath = store.SearchPath(cfg.TopN, cfg.Keywords)
	}

	client := semanticscholar.New(cfg, os.Stderr)
	q := semanticscholar.Query{
		Keywords:     cfg.Keywords,
		FieldOfStudy: cfg.FieldOfStudy,
		Limit:        cfg.TopN,
		Fields:       semanticscholar.SearchFields,
	}
	ids, err := client.Search(cmd.Context(), q, savePath)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(os.Stdout, id)
	}
	return nil
}
