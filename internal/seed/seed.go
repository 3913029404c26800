// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package seed models a starting paper and its one-hop citation
// neighborhood. A seed's neighbor lists are derived from a single metadata
// fetch at construction and never revalidated.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/semanticscholar"
)

// ErrMissingLists indicates a metadata response that decoded but carries
// no citation or reference list, so the paper cannot anchor an expansion.
var ErrMissingLists = errors.New("metadata response missing citation or reference list")

// Fetcher retrieves one paper's metadata, optionally persisting the raw
// response body. *semanticscholar.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, id string, fields []string, savePath string) (*semanticscholar.Paper, error)
}

// Paper is a seed paper. It owns its identifier and the citation and
// reference identifier lists derived at construction; both lists preserve
// service order and duplicates. Immutable after New returns.
type Paper struct {
	id         string
	citations  []string
	references []string

	fetcher Fetcher
	store   *artifact.Store
}

// New fetches full metadata for id through f, persisting the raw response
// under the store's seed-papers directory, and derives the citation and
// reference identifier lists. A response missing either list fails with
// ErrMissingLists; a present-but-empty list is a valid zero-neighbor seed.
func New(ctx context.Context, id string, f Fetcher, store *artifact.Store) (*Paper, error) {
	meta, err := f.Fetch(ctx, id, semanticscholar.PaperFields, store.SeedPath(id))
	if err != nil {
		return nil, fmt.Errorf("fetching seed %s: %w", id, err)
	}
	if meta.Citations == nil || meta.References == nil {
		return nil, fmt.Errorf("seed %s: %w", id, ErrMissingLists)
	}

	p := &Paper{id: id, fetcher: f, store: store}
	for _, c := range meta.Citations {
		p.citations = append(p.citations, c.PaperID)
	}
	for _, r := range meta.References {
		p.references = append(p.references, r.PaperID)
	}
	return p, nil
}

// ID returns the seed's paper identifier.
func (p *Paper) ID() string { return p.id }

// Citations returns the identifiers of papers citing the seed, in service
// order. The slice is a read-only view into the seed.
func (p *Paper) Citations() []string { return p.citations }

// References returns the identifiers of papers the seed cites, in service
// order.
func (p *Paper) References() []string { return p.references }
