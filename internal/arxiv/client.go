// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv implements the arXiv query client: canonical query
// construction, feed parsing, transparent result caching, and
// pagination over the rate-limited transport.
package arxiv

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/arxiv-scout/internal/cache"
	"github.com/pdiddy/arxiv-scout/internal/httputil"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// apiBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://export.arxiv.org/api/query"

// Getter issues one rate-limited GET and returns the response body.
// *httputil.Transport implements it; tests substitute a counter.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Cache is the subset of the cache store the client uses. A nil Cache
// disables caching.
type Cache interface {
	Get(key string) (*cache.Entry, error)
	Put(key string, total int, papers []types.Paper) error
}

// Client queries the arXiv API. All requests from one Client share a
// single rate limiter, so pacing holds across concurrent callers.
type Client struct {
	Transport Getter
	Cache     Cache
	Config    types.ClientConfig

	// Warn receives cache degradation notices. A broken cache never
	// blocks a query; it just stops saving round-trips.
	Warn io.Writer
}

// NewClient builds a Client with a rate-limited transport from cfg.
// store may be nil to disable caching.
func NewClient(cfg types.ClientConfig, store Cache, warn io.Writer) *Client {
	cfg.ApplyDefaults()
	if warn == nil {
		warn = io.Discard
	}
	return &Client{
		Transport: httputil.NewTransport(cfg.Transport),
		Cache:     store,
		Config:    cfg,
		Warn:      warn,
	}
}

// Search fetches one page of results for q, consulting the cache
// first. On a miss the page is fetched, parsed, and stored under the
// query's canonical key.
func (c *Client) Search(ctx context.Context, q Query) (*Feed, error) {
	key := q.CacheKey()

	if c.Cache != nil {
		entry, err := c.Cache.Get(key)
		switch {
		case err != nil:
			fmt.Fprintf(c.Warn, "warning: cache read failed, fetching from API: %v\n", err)
		case entry != nil:
			return &Feed{Total: entry.Total, Papers: entry.Papers}, nil
		}
	}

	body, err := c.Transport.Get(ctx, apiBase+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	feed, err := ParseFeed(body)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if err := c.Cache.Put(key, feed.Total, feed.Papers); err != nil {
			fmt.Fprintf(c.Warn, "warning: cache write failed: %v\n", err)
		}
	}
	return feed, nil
}

// Paper looks up a single paper by arXiv ID or arxiv.org URL. It
// returns nil when the ID does not resolve to a paper.
func (c *Client) Paper(ctx context.Context, id string) (*types.Paper, error) {
	feed, err := c.Search(ctx, Query{IDList: []string{id}, MaxResults: 1})
	if err != nil {
		return nil, err
	}
	if len(feed.Papers) == 0 {
		return nil, nil
	}
	return &feed.Papers[0], nil
}

// Papers looks up several papers by ID in one request.
func (c *Client) Papers(ctx context.Context, ids []string) ([]types.Paper, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	feed, err := c.Search(ctx, Query{IDList: ids, MaxResults: len(ids)})
	if err != nil {
		return nil, err
	}
	return feed.Papers, nil
}

// Recent returns the most recently submitted papers, optionally
// constrained to a category and a free-form query expression. daysBack
// filters out papers submitted more than that many days ago; zero
// disables the filter.
func (c *Client) Recent(ctx context.Context, category, query string, max, daysBack int) ([]types.Paper, error) {
	if category == "" && query == "" {
		return nil, fmt.Errorf("recent papers need a category or a query")
	}

	q := Query{
		Raw:       query,
		Category:  category,
		SortBy:    SortSubmitted,
		SortOrder: OrderDescending,
	}

	papers, err := c.SearchAll(ctx, q, max)
	if err != nil {
		return nil, err
	}

	if daysBack > 0 {
		cutoff := time.Now().AddDate(0, 0, -daysBack)
		kept := papers[:0]
		for _, p := range papers {
			if !p.Published.IsZero() && p.Published.After(cutoff) {
				kept = append(kept, p)
			}
		}
		papers = kept
	}
	return papers, nil
}
