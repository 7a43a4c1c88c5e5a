// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

func samplePaper() types.Paper {
	return types.Paper{
		ArxivID: "1706.03762v7",
		BaseID:  "1706.03762",
		Title:   "Attention Is All You Need",
		Authors: []types.Author{
			{Name: "Ashish Vaswani", Affiliation: "Google Brain"},
			{Name: "Noam Shazeer"},
		},
		Abstract:        "The dominant sequence transduction models are based on recurrent networks.",
		Published:       time.Date(2017, 6, 12, 17, 57, 34, 0, time.UTC),
		Updated:         time.Date(2023, 8, 2, 0, 41, 18, 0, time.UTC),
		PrimaryCategory: "cs.CL",
		Categories:      []string{"cs.CL", "cs.LG"},
		DOI:             "10.48550/arXiv.1706.03762",
		JournalRef:      "NeurIPS 2017",
		Comment:         "15 pages, 5 figures",
		AbsURL:          "https://arxiv.org/abs/1706.03762",
		PDFURL:          "https://arxiv.org/pdf/1706.03762.pdf",
	}
}

func TestWriteJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON([]types.Paper{samplePaper()}, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("len = %d, want 1", len(decoded))
	}

	rec := decoded[0]
	if rec["arxiv_id"] != "1706.03762v7" {
		t.Errorf("arxiv_id = %v", rec["arxiv_id"])
	}
	if rec["arxiv_url"] != "https://arxiv.org/abs/1706.03762" {
		t.Errorf("arxiv_url = %v", rec["arxiv_url"])
	}
	if rec["pdf_url"] != "https://arxiv.org/pdf/1706.03762.pdf" {
		t.Errorf("pdf_url = %v", rec["pdf_url"])
	}
	authors, ok := rec["authors"].([]any)
	if !ok || len(authors) != 2 {
		t.Fatalf("authors = %v", rec["authors"])
	}
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty export = %q, want []", got)
	}
}

// A feed parsed from Atom XML and exported to JSON keeps the feed's
// entry order end to end.
func TestFeedToJSONPreservesOrder(t *testing.T) {
	ids := []string{"2301.00003v1", "2301.00001v1", "2301.00002v1"}
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/"
      xmlns:arxiv="http://arxiv.org/schemas/atom">
  <opensearch:totalResults>3</opensearch:totalResults>
`)
	for _, id := range ids {
		fmt.Fprintf(&b, `  <entry>
    <id>http://arxiv.org/abs/%s</id>
    <title>Paper %s</title>
    <summary>s</summary>
    <published>2023-01-01T00:00:00Z</published>
    <updated>2023-01-01T00:00:00Z</updated>
    <author><name>A</name></author>
  </entry>
`, id, id)
	}
	b.WriteString("</feed>")

	feed, err := arxiv.ParseFeed([]byte(b.String()))
	if err != nil {
		t.Fatalf("ParseFeed() error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(feed.Papers, &buf); err != nil {
		t.Fatal(err)
	}
	var decoded []types.Paper
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	for i, want := range ids {
		if decoded[i].ArxivID != want {
			t.Errorf("decoded[%d].ArxivID = %q, want %q", i, decoded[i].ArxivID, want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV([]types.Paper{samplePaper()}, &buf); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(records))
	}

	header, row := records[0], records[1]
	if header[0] != "arxiv_id" || header[len(header)-1] != "pdf_url" {
		t.Errorf("header = %v", header)
	}
	if len(row) != len(header) {
		t.Fatalf("row has %d cells, header %d", len(row), len(header))
	}

	cell := func(name string) string {
		for i, h := range header {
			if h == name {
				return row[i]
			}
		}
		t.Fatalf("no column %q", name)
		return ""
	}
	if cell("arxiv_id") != "1706.03762v7" {
		t.Errorf("arxiv_id = %q", cell("arxiv_id"))
	}
	if cell("authors") != "Ashish Vaswani; Noam Shazeer" {
		t.Errorf("authors = %q", cell("authors"))
	}
	if cell("affiliations") != "Google Brain" {
		t.Errorf("affiliations = %q", cell("affiliations"))
	}
	if cell("categories") != "cs.CL; cs.LG" {
		t.Errorf("categories = %q", cell("categories"))
	}
	if cell("published") != "2017-06-12" {
		t.Errorf("published = %q", cell("published"))
	}
}

func TestWriteCSVEmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(nil, &buf); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("rows = %d, want header only", len(records))
	}
}

func TestBibTeXEntryFull(t *testing.T) {
	entry := BibTeXEntry(samplePaper())

	wants := []string{
		"@article{vaswani2017attention,",
		"title = {{Attention Is All You Need}},",
		"author = {Ashish Vaswani and Noam Shazeer},",
		"year = {2017},",
		"eprint = {1706.03762},",
		"archivePrefix = {arXiv},",
		"primaryClass = {cs.CL},",
		"doi = {10.48550/arXiv.1706.03762},",
		"journal = {NeurIPS 2017},",
		"url = {https://arxiv.org/abs/1706.03762},",
	}
	for _, want := range wants {
		if !strings.Contains(entry, want) {
			t.Errorf("entry missing %q\n%s", want, entry)
		}
	}
	if !strings.HasSuffix(entry, "}") {
		t.Errorf("entry not closed:\n%s", entry)
	}
}

func TestBibTeXEntryOmitsMissingFields(t *testing.T) {
	p := samplePaper()
	p.DOI = ""
	p.JournalRef = ""
	p.Abstract = ""

	entry := BibTeXEntry(p)
	for _, field := range []string{"doi =", "journal =", "abstract ="} {
		if strings.Contains(entry, field) {
			t.Errorf("entry should omit %q:\n%s", field, entry)
		}
	}
	// The last field before the closing brace carries no trailing comma.
	lines := strings.Split(entry, "\n")
	last := lines[len(lines)-2]
	if strings.HasSuffix(last, ",") {
		t.Errorf("trailing comma before closing brace: %q", last)
	}
}

func TestBibTeXEscapesBraces(t *testing.T) {
	p := samplePaper()
	p.Abstract = "We study {braced} text."
	entry := BibTeXEntry(p)
	if !strings.Contains(entry, `\{braced\}`) {
		t.Errorf("braces not escaped:\n%s", entry)
	}
}

func TestWriteBibTeXSeparatesStanzas(t *testing.T) {
	second := samplePaper()
	second.ArxivID = "2301.07041v2"
	second.BaseID = "2301.07041"
	second.Title = "Another Paper"

	var buf bytes.Buffer
	if err := WriteBibTeX([]types.Paper{samplePaper(), second}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "@article{") != 2 {
		t.Errorf("stanza count wrong:\n%s", out)
	}
	if !strings.Contains(out, "}\n\n@article{") {
		t.Errorf("stanzas not separated by a blank line:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output missing trailing newline")
	}
}

func TestCiteKey(t *testing.T) {
	tests := []struct {
		name  string
		paper types.Paper
		want  string
	}{
		{"full", samplePaper(), "vaswani2017attention"},
		{
			"no authors",
			types.Paper{Title: "Orphan Work", Published: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
			"unknown2020orphan",
		},
		{
			"no date",
			types.Paper{Title: "Undated", Authors: []types.Author{{Name: "Ada Lovelace"}}},
			"lovelace0000undated",
		},
		{
			"punctuation stripped",
			types.Paper{
				Title:     "Q-Learning: A Survey",
				Authors:   []types.Author{{Name: "J. O'Brien"}},
				Published: time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			"obrien2021qlearning",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CiteKey(tt.paper); got != tt.want {
				t.Errorf("CiteKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
