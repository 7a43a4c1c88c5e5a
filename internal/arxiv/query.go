// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// MaxPageSize is the server-side hard maximum for max_results. Larger
// page sizes are clamped, not rejected.
const MaxPageSize = 2000

// Field is an arXiv search field tag.
type Field string

const (
	FieldAll      Field = "all"
	FieldTitle    Field = "ti"
	FieldAuthor   Field = "au"
	FieldAbstract Field = "abs"
	FieldCategory Field = "cat"
	FieldComment  Field = "co"
)

// SortBy selects the result ordering.
type SortBy string

const (
	SortRelevance   SortBy = "relevance"
	SortLastUpdated SortBy = "lastUpdatedDate"
	SortSubmitted   SortBy = "submittedDate"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	OrderAscending  SortOrder = "ascending"
	OrderDescending SortOrder = "descending"
)

// Expr is one node of a boolean search predicate.
type Expr interface {
	// render produces the wire form. Nested groups are parenthesized
	// exactly once per nesting level; the top level is bare.
	render(nested bool) string
}

// Term matches a value in a single field.
type Term struct {
	Field Field
	Value string

	// Phrase quotes the value so multi-word terms match exactly.
	Phrase bool
}

func (t Term) render(bool) string {
	field := t.Field
	if field == "" {
		field = FieldAll
	}
	value := strings.Join(strings.Fields(t.Value), " ")
	if t.Phrase {
		value = `"` + value + `"`
	}
	return string(field) + ":" + value
}

// Group joins sub-expressions with a boolean operator.
type Group struct {
	Op    string // "AND", "OR", or "ANDNOT"
	Exprs []Expr
}

func (g Group) render(nested bool) string {
	parts := make([]string, len(g.Exprs))
	for i, e := range g.Exprs {
		parts[i] = e.render(true)
	}
	s := strings.Join(parts, " "+g.Op+" ")
	if nested && len(g.Exprs) > 1 {
		s = "(" + s + ")"
	}
	return s
}

// And groups expressions with AND.
func And(exprs ...Expr) Expr { return Group{Op: "AND", Exprs: exprs} }

// Or groups expressions with OR.
func Or(exprs ...Expr) Expr { return Group{Op: "OR", Exprs: exprs} }

// AndNot matches include while excluding exclude.
func AndNot(include, exclude Expr) Expr {
	return Group{Op: "ANDNOT", Exprs: []Expr{include, exclude}}
}

// Query is an immutable description of one search request. Two
// logically identical queries always encode to byte-identical strings,
// which is what makes the cache key stable.
type Query struct {
	// Raw is a pre-built search_query expression, used verbatim. Set
	// either Raw or Expr, not both.
	Raw string

	// Expr is a structured predicate.
	Expr Expr

	// Category ANDs a cat: filter onto the predicate. A query with
	// only a category filter is valid.
	Category string

	// IDList requests specific papers instead of a search.
	IDList []string

	// Start is the result offset for pagination.
	Start int

	// MaxResults is the page size, clamped to MaxPageSize.
	MaxResults int

	SortBy    SortBy
	SortOrder SortOrder
}

// SearchQuery renders the search_query parameter value.
func (q Query) SearchQuery() string {
	var parts []string
	switch {
	case q.Raw != "":
		parts = append(parts, q.Raw)
	case q.Expr != nil:
		parts = append(parts, q.Expr.render(false))
	}
	if q.Category != "" {
		parts = append(parts, string(FieldCategory)+":"+q.Category)
	}
	return strings.Join(parts, " AND ")
}

// Values renders the full wire-format parameter set. url.Values.Encode
// sorts keys, so the output is deterministic.
func (q Query) Values() url.Values {
	v := url.Values{}
	if len(q.IDList) > 0 {
		ids := make([]string, len(q.IDList))
		for i, id := range q.IDList {
			ids[i] = CleanID(id)
		}
		v.Set("id_list", strings.Join(ids, ","))
	}
	if sq := q.SearchQuery(); sq != "" {
		v.Set("search_query", sq)
	}

	start := q.Start
	if start < 0 {
		start = 0
	}
	v.Set("start", strconv.Itoa(start))

	pageSize := q.MaxResults
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	v.Set("max_results", strconv.Itoa(pageSize))

	if q.SortBy != "" {
		v.Set("sortBy", string(q.SortBy))
		order := q.SortOrder
		if order == "" {
			order = OrderDescending
		}
		v.Set("sortOrder", string(order))
	}
	return v
}

// Encode returns the canonical query string.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// CacheKey returns the cache address for this exact parameter set.
func (q Query) CacheKey() string {
	sum := sha256.Sum256([]byte(q.Encode()))
	return hex.EncodeToString(sum[:])
}

// WithPage returns a copy of q at the given offset and page size.
func (q Query) WithPage(start, pageSize int) Query {
	q.Start = start
	q.MaxResults = pageSize
	return q
}

var (
	newIDPattern = regexp.MustCompile(`(\d{4}\.\d{4,5})(v\d+)?`)
	oldIDPattern = regexp.MustCompile(`([a-z-]+(?:\.[A-Z]{2})?/\d{7})(v\d+)?`)
	versionTail  = regexp.MustCompile(`v\d+$`)
)

// CleanID extracts a bare arXiv ID from an ID string or an arxiv.org
// URL, stripping any version suffix (e.g.
// "https://arxiv.org/abs/2301.07041v2" → "2301.07041").
func CleanID(id string) string {
	if strings.Contains(id, "arxiv.org") {
		if m := newIDPattern.FindStringSubmatch(id); m != nil {
			return m[1]
		}
		if m := oldIDPattern.FindStringSubmatch(id); m != nil {
			return m[1]
		}
	}
	return versionTail.ReplaceAllString(id, "")
}
