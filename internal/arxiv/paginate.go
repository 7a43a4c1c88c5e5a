// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// SearchAll accumulates pages for q until the requested total is
// reached, a page comes back short (end of results), or the feed's
// reported total is exhausted. total <= 0 means "everything the feed
// has". Each page goes through the cache and transport independently,
// so a resumed survey reuses the pages already fetched.
//
// A failure on any page aborts the whole operation with no partial
// result: a silently truncated survey is worse than a visible error.
func (c *Client) SearchAll(ctx context.Context, q Query, total int) ([]types.Paper, error) {
	pageSize := q.MaxResults
	if pageSize <= 0 {
		pageSize = c.Config.Search.PageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	start := q.Start
	if start < 0 {
		start = 0
	}

	seen := make(map[string]struct{})
	var papers []types.Paper

	for {
		size := pageSize
		if total > 0 {
			remaining := total - len(papers)
			if remaining <= 0 {
				break
			}
			if remaining < size {
				size = remaining
			}
		}

		feed, err := c.Search(ctx, q.WithPage(start, size))
		if err != nil {
			return nil, err
		}

		// The feed order is preserved; IDs repeated across pages (a
		// shifting result window between requests) are dropped.
		for _, p := range feed.Papers {
			if _, dup := seen[p.ArxivID]; dup {
				continue
			}
			seen[p.ArxivID] = struct{}{}
			papers = append(papers, p)
		}

		if len(feed.Papers) < size {
			break
		}
		start += len(feed.Papers)
		if feed.Total > 0 && start >= feed.Total {
			break
		}
	}

	if total > 0 && len(papers) > total {
		papers = papers[:total]
	}
	return papers, nil
}
