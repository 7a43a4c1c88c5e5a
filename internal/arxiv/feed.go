// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// The feed mixes three namespaces: generic Atom fields, the arXiv
// extension namespace (primary category, DOI, journal reference,
// comment, affiliation), and OpenSearch paging metadata. The struct
// tags below are the complete field mapping; adding an extracted field
// is a one-line change here plus its copy in entryToPaper.
type atomFeed struct {
	XMLName      xml.Name    `xml:"feed"`
	TotalResults int         `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults"`
	StartIndex   int         `xml:"http://a9.com/-/spec/opensearch/1.1/ startIndex"`
	Entries      []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string        `xml:"id"`
	Title           string        `xml:"title"`
	Summary         string        `xml:"summary"`
	Published       string        `xml:"published"`
	Updated         string        `xml:"updated"`
	Authors         []atomAuthor  `xml:"author"`
	Categories      []atomTermTag `xml:"category"`
	PrimaryCategory atomTermTag   `xml:"http://arxiv.org/schemas/atom primary_category"`
	DOI             string        `xml:"http://arxiv.org/schemas/atom doi"`
	JournalRef      string        `xml:"http://arxiv.org/schemas/atom journal_ref"`
	Comment         string        `xml:"http://arxiv.org/schemas/atom comment"`
	Links           []atomLink    `xml:"link"`
}

type atomAuthor struct {
	Name        string `xml:"name"`
	Affiliation string `xml:"http://arxiv.org/schemas/atom affiliation"`
}

type atomTermTag struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// Feed is one parsed API response: the papers in feed order plus the
// total result count the server reports for the whole query. The total
// is a pagination-termination hint only; the entries actually returned
// are authoritative.
type Feed struct {
	Total  int
	Papers []types.Paper
}

// ParseFeed converts one raw response body into a Feed. A zero-entry
// feed is a valid empty result. A feed whose single entry is titled
// "Error: ..." is the API's documented signal for a rejected query and
// surfaces as a *types.QueryError, never as an empty success.
func ParseFeed(data []byte) (*Feed, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, &types.ParseError{Err: err}
	}

	if len(feed.Entries) == 1 {
		title := strings.TrimSpace(feed.Entries[0].Title)
		if strings.HasPrefix(title, "Error") {
			msg := strings.TrimSpace(feed.Entries[0].Summary)
			if msg == "" {
				msg = title
			}
			return nil, &types.QueryError{Message: msg}
		}
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for i, entry := range feed.Entries {
		p, err := entryToPaper(entry)
		if err != nil {
			return nil, &types.ParseError{Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		papers = append(papers, p)
	}

	return &Feed{Total: feed.TotalResults, Papers: papers}, nil
}

func entryToPaper(entry atomEntry) (types.Paper, error) {
	arxivID := idFromURL(entry.ID)
	if arxivID == "" {
		return types.Paper{}, fmt.Errorf("entry has no arXiv identifier (id=%q)", entry.ID)
	}
	baseID := versionTail.ReplaceAllString(arxivID, "")

	p := types.Paper{
		ArxivID:         arxivID,
		BaseID:          baseID,
		Title:           collapseWhitespace(entry.Title),
		Abstract:        collapseWhitespace(entry.Summary),
		PrimaryCategory: entry.PrimaryCategory.Term,
		DOI:             strings.TrimSpace(entry.DOI),
		JournalRef:      strings.TrimSpace(entry.JournalRef),
		Comment:         collapseWhitespace(entry.Comment),
		AbsURL:          "https://arxiv.org/abs/" + baseID,
		PDFURL:          "https://arxiv.org/pdf/" + baseID + ".pdf",
	}

	for _, a := range entry.Authors {
		p.Authors = append(p.Authors, types.Author{
			Name:        strings.TrimSpace(a.Name),
			Affiliation: strings.TrimSpace(a.Affiliation),
		})
	}
	for _, c := range entry.Categories {
		if c.Term != "" {
			p.Categories = append(p.Categories, c.Term)
		}
	}

	if t, err := time.Parse(time.RFC3339, entry.Published); err == nil {
		p.Published = t
	}
	if t, err := time.Parse(time.RFC3339, entry.Updated); err == nil {
		p.Updated = t
	}

	// Feed links override the constructed canonical URLs when present.
	for _, l := range entry.Links {
		switch {
		case l.Type == "application/pdf" && l.Href != "":
			p.PDFURL = l.Href
		case l.Rel == "alternate" && l.Href != "":
			p.AbsURL = l.Href
		}
	}

	return p, nil
}

// idFromURL pulls the versioned arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041v1").
func idFromURL(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(idURL[idx+len(prefix):])
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
