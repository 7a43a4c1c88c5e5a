// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

func TestHighlightMarkers(t *testing.T) {
	got := Highlight("Attention is all you need", []string{"attention"}, false)
	if got != "**Attention** is all you need" {
		t.Errorf("Highlight() = %q", got)
	}
}

func TestHighlightPreservesCasing(t *testing.T) {
	got := Highlight("GAN and gan and Gan", []string{"gan"}, false)
	if got != "**GAN** and **gan** and **Gan**" {
		t.Errorf("Highlight() = %q", got)
	}
}

func TestHighlightMultipleKeywords(t *testing.T) {
	got := Highlight("sparse attention for transformers", []string{"attention", "transformer"}, false)
	if !strings.Contains(got, "**attention**") || !strings.Contains(got, "**transformer**s") {
		t.Errorf("Highlight() = %q", got)
	}
}

func TestHighlightNoMatchUnchanged(t *testing.T) {
	text := "Nothing of interest here"
	if got := Highlight(text, []string{"quantum"}, false); got != text {
		t.Errorf("Highlight() = %q, want unchanged", got)
	}
	if got := Highlight(text, nil, false); got != text {
		t.Errorf("Highlight() with no keywords = %q, want unchanged", got)
	}
}

func TestHighlightEscapesRegexMeta(t *testing.T) {
	got := Highlight("what is C++ anyway", []string{"c++"}, false)
	if got != "what is **C++** anyway" {
		t.Errorf("Highlight() = %q", got)
	}
}

func TestKeywordCounts(t *testing.T) {
	p := types.Paper{
		Title:    "Attention Is All You Need",
		Abstract: "Self-attention replaces recurrence. Attention scales well.",
	}
	counts := KeywordCounts(p, []string{"attention", "recurrence", "quantum"})
	if counts["attention"] != 3 {
		t.Errorf(`counts["attention"] = %d, want 3`, counts["attention"])
	}
	if counts["recurrence"] != 1 {
		t.Errorf(`counts["recurrence"] = %d, want 1`, counts["recurrence"])
	}
	if counts["quantum"] != 0 {
		t.Errorf(`counts["quantum"] = %d, want 0`, counts["quantum"])
	}
}

func TestFilterByKeywords(t *testing.T) {
	papers := []types.Paper{
		{ArxivID: "1", Title: "Attention networks", Abstract: "transformers everywhere"},
		{ArxivID: "2", Title: "Graph methods", Abstract: "spectral clustering"},
		{ArxivID: "3", Title: "Attention again", Abstract: "no transformers though"},
	}

	kept := FilterByKeywords(papers, []string{"attention"}, 1)
	if len(kept) != 2 || kept[0].ArxivID != "1" || kept[1].ArxivID != "3" {
		t.Errorf("single keyword filter kept %v", ids(kept))
	}

	// minMatches 2 requires both distinct keywords to appear.
	kept = FilterByKeywords(papers, []string{"attention", "transformers"}, 2)
	if len(kept) != 2 {
		t.Errorf("two-keyword filter kept %v", ids(kept))
	}

	// No keywords disables filtering.
	kept = FilterByKeywords(papers, nil, 1)
	if len(kept) != 3 {
		t.Errorf("nil keywords kept %v", ids(kept))
	}

	// minMatches below 1 is treated as 1.
	kept = FilterByKeywords(papers, []string{"spectral"}, 0)
	if len(kept) != 1 || kept[0].ArxivID != "2" {
		t.Errorf("zero minMatches kept %v", ids(kept))
	}
}

func ids(papers []types.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.ArxivID
	}
	return out
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable([]types.Paper{samplePaper()}, &buf)
	out := buf.String()

	for _, want := range []string{"1706.03762", "Attention Is All You Need", "Ashish Vaswani et al.", "cs.CL", "1 results"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No results") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestFormatCompactTruncatesAbstract(t *testing.T) {
	p := samplePaper()
	p.Abstract = strings.Repeat("x", 300)

	var buf bytes.Buffer
	FormatCompact([]types.Paper{p}, &buf)
	out := buf.String()

	if !strings.Contains(out, strings.Repeat("x", 150)+"...") {
		t.Error("abstract not truncated at 150")
	}
	if strings.Contains(out, strings.Repeat("x", 151)) {
		t.Error("abstract longer than the preview limit")
	}
	if !strings.Contains(out, "-> https://arxiv.org/abs/1706.03762") {
		t.Errorf("missing abstract URL:\n%s", out)
	}
}

func TestFormatDetailed(t *testing.T) {
	var buf bytes.Buffer
	FormatDetailed([]types.Paper{samplePaper()}, []string{"sequence"}, false, &buf)
	out := buf.String()

	for _, want := range []string{
		"Title: Attention Is All You Need",
		"Authors: Ashish Vaswani, Noam Shazeer",
		"DOI: 10.48550/arXiv.1706.03762",
		"Journal: NeurIPS 2017",
		"**sequence**",
		"PDF: https://arxiv.org/pdf/1706.03762.pdf",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detailed output missing %q:\n%s", want, out)
		}
	}
}
