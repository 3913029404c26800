// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/snowball/internal/semanticscholar"
)

// ExpandResult holds the outcome of one seed's snowball expansion.
type ExpandResult struct {
	Fetched int
	Failed  int
}

// Total returns the number of neighbors attempted.
func (r ExpandResult) Total() int {
	return r.Fetched + r.Failed
}

// Snowball fetches and persists metadata for every one-hop neighbor of the
// seed: the reference list first (backward), then the citation list
// (forward). Fetched records are discarded; the persisted artifacts are the
// operation's only output. A neighbor that fails to fetch is reported on w
// and skipped, leaving no artifact behind. Only context cancellation stops
// the expansion early.
func (p *Paper) Snowball(ctx context.Context, w io.Writer) (ExpandResult, error) {
	var result ExpandResult

	// Backward: papers the seed cites.
	for _, id := range p.references {
		if err := p.expandOne(ctx, id, w, &result); err != nil {
			return result, err
		}
	}
	// Forward: papers citing the seed.
	for _, id := range p.citations {
		if err := p.expandOne(ctx, id, w, &result); err != nil {
			return result, err
		}
	}

	fmt.Fprintf(w, "expanded %s: %d fetched, %d failed (total: %d)\n",
		p.id, result.Fetched, result.Failed, result.Total())
	return result, nil
}

func (p *Paper) expandOne(ctx context.Context, id string, w io.Writer, result *ExpandResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := p.fetcher.Fetch(ctx, id, semanticscholar.PaperFields, p.store.SnowballPath(id))
	if err != nil {
		fmt.Fprintf(w, "failed: %s (%v)\n", id, err)
		result.Failed++
		return nil
	}
	result.Fetched++
	return nil
}
