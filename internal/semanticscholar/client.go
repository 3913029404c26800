// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package semanticscholar is a client for the Semantic Scholar Graph API
// paper endpoints. Every call is paced: after each response the client
// blocks for a fixed interval, success or failure, so a run never exceeds
// the service's published rate ceiling. There is no automatic retry.
package semanticscholar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/internal/httputil"
	"github.com/pdiddy/snowball/pkg/types"
)

// apiBase is the Semantic Scholar Graph API paper endpoint. Declared as a
// var so tests can substitute an httptest server.
var apiBase = "https://api.semanticscholar.org/graph/v1/paper"

// searchOffset is the fixed result-window offset sent with every search.
const searchOffset = 10

// defaultSearchLimit bounds a search when the caller passes no limit.
const defaultSearchLimit = 5

// SearchFields is the field set requested for keyword searches.
var SearchFields = []string{
	"url", "title", "abstract", "authors", "year", "publicationTypes", "venue",
}

// PaperFields is the field set requested for single-paper fetches. It
// includes the citation and reference lists that drive snowball expansion.
var PaperFields = []string{
	"url", "title", "abstract", "authors", "year", "publicationTypes",
	"citations", "references", "citations.fieldsOfStudy",
}

// Client issues paced GET requests against the Graph API. Construct one
// per run; the HTTP client and its connections are reused across calls.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	UserAgent  string
	Pacer      *httputil.Pacer

	// Progress receives one "querying <url>" line per call. Nil silences it.
	Progress io.Writer
}

// New builds a Client from cfg. Progress lines go to w.
func New(cfg types.CollectConfig, w io.Writer) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		APIKey:     cfg.APIKey,
		UserAgent:  cfg.UserAgent,
		Pacer:      httputil.NewPacer(cfg.Pause),
		Progress:   w,
	}
}

// Query holds the parameters of a paper search.
type Query struct {
	Keywords     []string
	FieldOfStudy string
	Limit        int
	Fields       []string
}

// Search queries for papers matching q and returns the identifier of every
// record in the response's data list, in service order. When savePath is
// non-empty the raw response body is persisted there after a successful
// decode. Failures return no identifiers; there is no retry.
func (c *Client) Search(ctx context.Context, q Query, savePath string) ([]string, error) {
	if len(q.Keywords) == 0 {
		return nil, fmt.Errorf("empty search: provide at least one keyword")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	fields := q.Fields
	if len(fields) == 0 {
		fields = SearchFields
	}

	params := url.Values{
		"query":  {strings.Join(q.Keywords, " ")},
		"offset": {fmt.Sprintf("%d", searchOffset)},
		"limit":  {fmt.Sprintf("%d", limit)},
		"fields": {strings.Join(fields, ",")},
	}
	if q.FieldOfStudy != "" {
		params.Set("fieldsOfStudy", q.FieldOfStudy)
	}
	reqURL := apiBase + "/search?" + params.Encode()

	var sr SearchResponse
	if err := c.get(ctx, reqURL, savePath, &sr); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(sr.Data))
	for _, p := range sr.Data {
		ids = append(ids, p.PaperID)
	}
	return ids, nil
}

// Fetch retrieves metadata for one identifier with the given field set,
// defaulting to PaperFields. When savePath is non-empty the raw response
// body is persisted there after a successful decode.
func (c *Client) Fetch(ctx context.Context, id string, fields []string, savePath string) (*Paper, error) {
	if id == "" {
		return nil, fmt.Errorf("empty paper identifier")
	}
	if len(fields) == 0 {
		fields = PaperFields
	}

	params := url.Values{"fields": {strings.Join(fields, ",")}}
	reqURL := apiBase + "/" + url.PathEscape(id) + "?" + params.Encode()

	var p Paper
	if err := c.get(ctx, reqURL, savePath, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// get performs one round trip and then waits out the pacing interval on
// every path, so the delay floors throughput whether or not the call
// succeeded.
func (c *Client) get(ctx context.Context, reqURL, savePath string, out any) error {
	err := c.roundTrip(ctx, reqURL, savePath, out)
	if werr := c.Pacer.Wait(ctx); werr != nil && err == nil {
		err = werr
	}
	return err
}

// roundTrip issues the GET, decodes the body into out, and persists the raw
// body to savePath when one is supplied. The write happens only after a
// successful decode; a failed call leaves no file behind.
func (c *Client) roundTrip(ctx context.Context, reqURL, savePath string, out any) error {
	c.logf("querying %s\n", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("semantic scholar request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{URL: reqURL, Err: err}
	}

	if savePath != "" {
		if err := artifact.Write(savePath, body); err != nil {
			return fmt.Errorf("saving response: %w", err)
		}
	}
	return nil
}

func (c *Client) logf(format string, args ...any) {
	if c.Progress == nil {
		return
	}
	fmt.Fprintf(c.Progress, format, args...)
}
