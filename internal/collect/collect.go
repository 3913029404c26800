// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect orchestrates a full snowball collection run: one keyword
// search selects the seed papers, then every seed's one-hop neighborhood is
// fetched and persisted.
package collect

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/seed"
	"github.com/pdiddy/snowball/internal/semanticscholar"
	"github.com/pdiddy/snowball/pkg/types"
)

// Client is the query surface the driver uses. *semanticscholar.Client
// implements it.
type Client interface {
	Search(ctx context.Context, q semanticscholar.Query, savePath string) ([]string, error)
	Fetch(ctx context.Context, id string, fields []string, savePath string) (*semanticscholar.Paper, error)
}

// Result summarizes a collection run. Only identifiers and counters are
// retained; paper metadata lives solely in the persisted artifacts.
type Result struct {
	SeedIDs []string
	Fetched int
	Failed  int
}

// Run executes the whole workflow: search for the top-N seed identifiers
// (persisting the raw search result under a name describing the query),
// construct one seed paper per identifier in result order, then expand each
// seed in construction order. A failed seed construction aborts the run;
// failures during expansion are counted and skipped.
func Run(ctx context.Context, c Client, store *artifact.Store, cfg types.CollectConfig, w io.Writer) (Result, error) {
	var result Result

	q := semanticscholar.Query{
		Keywords:     cfg.Keywords,
		FieldOfStudy: cfg.FieldOfStudy,
		Limit:        cfg.TopN,
		Fields:       semanticscholar.SearchFields,
	}
	ids, err := c.Search(ctx, q, store.SearchPath(cfg.TopN, cfg.Keywords))
	if err != nil {
		return result, fmt.Errorf("searching seed papers: %w", err)
	}
	result.SeedIDs = ids
	fmt.Fprintf(w, "found %d seed papers\n", len(ids))

	seeds := make([]*seed.Paper, 0, len(ids))
	for _, id := range ids {
		s, err := seed.New(ctx, id, c, store)
		if err != nil {
			return result, err
		}
		fmt.Fprintf(w, "seed %s: %d references, %d citations\n",
			s.ID(), len(s.References()), len(s.Citations()))
		seeds = append(seeds, s)
	}

	for _, s := range seeds {
		expansion, err := s.Snowball(ctx, w)
		result.Fetched += expansion.Fetched
		result.Failed += expansion.Failed
		if err != nil {
			return result, err
		}
	}

	fmt.Fprintf(w, "\nCollection summary: %d seeds, %d neighbors fetched, %d failed\n",
		len(seeds), result.Fetched, result.Failed)
	return result, nil
}
