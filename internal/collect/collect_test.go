// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/semanticscholar"
	"github.com/pdiddy/snowball/pkg/types"
)

// fakeClient serves a canned search result and canned metadata, recording
// call order.
type fakeClient struct {
	searchIDs  []string
	searchErr  error
	searchQ    semanticscholar.Query
	searchSave string

	papers    map[string]*semanticscholar.Paper
	failFetch map[string]error
	fetches   []string
}

func (f *fakeClient) Search(_ context.Context, q semanticscholar.Query, savePath string) ([]string, error) {
	f.searchQ = q
	f.searchSave = savePath
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchIDs, nil
}

func (f *fakeClient) Fetch(_ context.Context, id string, _ []string, _ string) (*semanticscholar.Paper, error) {
	f.fetches = append(f.fetches, id)
	if err, ok := f.failFetch[id]; ok {
		return nil, err
	}
	if p, ok := f.papers[id]; ok {
		return p, nil
	}
	return &semanticscholar.Paper{
		PaperID:    id,
		Citations:  []semanticscholar.PaperRef{},
		References: []semanticscholar.PaperRef{},
	}, nil
}

func paperWith(id string, refs, cits []string) *semanticscholar.Paper {
	p := &semanticscholar.Paper{
		PaperID:    id,
		Citations:  []semanticscholar.PaperRef{},
		References: []semanticscholar.PaperRef{},
	}
	for _, r := range refs {
		p.References = append(p.References, semanticscholar.PaperRef{PaperID: r})
	}
	for _, c := range cits {
		p.Citations = append(p.Citations, semanticscholar.PaperRef{PaperID: c})
	}
	return p
}

func testCfg() types.CollectConfig {
	cfg := types.DefaultCollectConfig()
	cfg.Pause = 0
	cfg.TopN = 2
	return cfg
}

// --- Driver workflow ---

func TestRunWorkflowOrder(t *testing.T) {
	f := &fakeClient{
		searchIDs: []string{"A1", "B2"},
		papers: map[string]*semanticscholar.Paper{
			"A1": paperWith("A1", []string{"R1"}, []string{"C1"}),
			"B2": paperWith("B2", []string{"R2"}, nil),
		},
	}
	cfg := testCfg()
	store := &artifact.Store{Root: cfg.OutputDir}

	result, err := Run(context.Background(), f, store, cfg, io.Discard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Every seed is constructed before any expansion starts; each seed
	// expands references before citations.
	wantFetches := []string{"A1", "B2", "R1", "C1", "R2"}
	if !reflect.DeepEqual(f.fetches, wantFetches) {
		t.Errorf("fetch order = %v, want %v", f.fetches, wantFetches)
	}

	if !reflect.DeepEqual(result.SeedIDs, []string{"A1", "B2"}) {
		t.Errorf("SeedIDs = %v, want [A1 B2]", result.SeedIDs)
	}
	if result.Fetched != 3 || result.Failed != 0 {
		t.Errorf("result = %+v, want 3 fetched, 0 failed", result)
	}
}

func TestRunSearchRequest(t *testing.T) {
	f := &fakeClient{searchIDs: []string{}}
	cfg := testCfg()
	store := &artifact.Store{Root: cfg.OutputDir}

	if _, err := Run(context.Background(), f, store, cfg, io.Discard); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !reflect.DeepEqual(f.searchQ.Keywords, cfg.Keywords) {
		t.Errorf("search keywords = %v, want %v", f.searchQ.Keywords, cfg.Keywords)
	}
	if f.searchQ.FieldOfStudy != cfg.FieldOfStudy {
		t.Errorf("search field of study = %q, want %q", f.searchQ.FieldOfStudy, cfg.FieldOfStudy)
	}
	if f.searchQ.Limit != cfg.TopN {
		t.Errorf("search limit = %d, want %d", f.searchQ.Limit, cfg.TopN)
	}
	if !reflect.DeepEqual(f.searchQ.Fields, semanticscholar.SearchFields) {
		t.Errorf("search fields = %v, want search field set", f.searchQ.Fields)
	}
	if want := store.SearchPath(cfg.TopN, cfg.Keywords); f.searchSave != want {
		t.Errorf("search save path = %q, want %q", f.searchSave, want)
	}
}

func TestRunSearchErrorAborts(t *testing.T) {
	f := &fakeClient{searchErr: fmt.Errorf("HTTP 500")}
	cfg := testCfg()

	_, err := Run(context.Background(), f, &artifact.Store{Root: cfg.OutputDir}, cfg, io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "searching seed papers") {
		t.Errorf("error = %q, want search context", err.Error())
	}
	if len(f.fetches) != 0 {
		t.Errorf("fetches = %v, want none after failed search", f.fetches)
	}
}

func TestRunSeedFailureAborts(t *testing.T) {
	f := &fakeClient{
		searchIDs: []string{"A1", "B2"},
		papers: map[string]*semanticscholar.Paper{
			"A1": paperWith("A1", []string{"R1"}, []string{"C1"}),
		},
		failFetch: map[string]error{"B2": fmt.Errorf("HTTP 500")},
	}
	cfg := testCfg()

	result, err := Run(context.Background(), f, &artifact.Store{Root: cfg.OutputDir}, cfg, io.Discard)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "B2") {
		t.Errorf("error = %q, want failing seed identifier", err.Error())
	}

	// The run stops during seeding: A1's neighborhood is never expanded.
	wantFetches := []string{"A1", "B2"}
	if !reflect.DeepEqual(f.fetches, wantFetches) {
		t.Errorf("fetches = %v, want %v", f.fetches, wantFetches)
	}
	if result.Fetched != 0 {
		t.Errorf("Fetched = %d, want 0", result.Fetched)
	}
}

func TestRunExpansionFailuresContinue(t *testing.T) {
	f := &fakeClient{
		searchIDs: []string{"A1", "B2"},
		papers: map[string]*semanticscholar.Paper{
			"A1": paperWith("A1", []string{"R1"}, []string{"C1"}),
			"B2": paperWith("B2", []string{"R2"}, nil),
		},
		failFetch: map[string]error{"R1": fmt.Errorf("HTTP 500")},
	}
	cfg := testCfg()

	var buf strings.Builder
	result, err := Run(context.Background(), f, &artifact.Store{Root: cfg.OutputDir}, cfg, &buf)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Fetched != 2 || result.Failed != 1 {
		t.Errorf("result = %+v, want 2 fetched, 1 failed", result)
	}
	if !strings.Contains(buf.String(), "failed: R1") {
		t.Errorf("output %q missing failure line", buf.String())
	}
	if !strings.Contains(buf.String(), "Collection summary: 2 seeds, 2 neighbors fetched, 1 failed") {
		t.Errorf("output %q missing summary line", buf.String())
	}
}

func TestRunNoSeeds(t *testing.T) {
	f := &fakeClient{searchIDs: []string{}}
	cfg := testCfg()

	result, err := Run(context.Background(), f, &artifact.Store{Root: cfg.OutputDir}, cfg, io.Discard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.SeedIDs) != 0 || result.Fetched != 0 || result.Failed != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
	if len(f.fetches) != 0 {
		t.Errorf("fetches = %v, want none", f.fetches)
	}
}
