// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

var highlightColor = color.New(color.FgYellow, color.Bold)

// Highlight wraps each keyword occurrence in text, case-insensitively
// and preserving the original casing. With useColor it emits ANSI
// color; otherwise it wraps matches in ** markers.
func Highlight(text string, keywords []string, useColor bool) string {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw))
		text = pattern.ReplaceAllStringFunc(text, func(m string) string {
			if useColor {
				return highlightColor.Sprint(m)
			}
			return "**" + m + "**"
		})
	}
	return text
}

// KeywordCounts counts case-insensitive occurrences of each keyword in
// the paper's title and abstract.
func KeywordCounts(p types.Paper, keywords []string) map[string]int {
	text := strings.ToLower(p.Title + " " + p.Abstract)
	counts := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		counts[kw] = strings.Count(text, strings.ToLower(kw))
	}
	return counts
}

// FilterByKeywords keeps papers whose title or abstract mentions at
// least minMatches of the keywords.
func FilterByKeywords(papers []types.Paper, keywords []string, minMatches int) []types.Paper {
	if len(keywords) == 0 {
		return papers
	}
	if minMatches <= 0 {
		minMatches = 1
	}
	var kept []types.Paper
	for _, p := range papers {
		matched := 0
		for _, n := range KeywordCounts(p, keywords) {
			if n > 0 {
				matched++
			}
		}
		if matched >= minMatches {
			kept = append(kept, p)
		}
	}
	return kept
}

// FormatTable writes papers as a human-readable table.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-14s  %-56s  %-20s  %-10s  %s\n",
		"#", "ID", "Title", "Authors", "Date", "Category")
	fmt.Fprintln(w, strings.Repeat("-", 118))

	for i, p := range papers {
		fmt.Fprintf(w, "%-4d  %-14s  %-56s  %-20s  %-10s  %s\n",
			i+1,
			truncate(p.BaseID, 14),
			truncate(p.Title, 56),
			formatAuthors(p.AuthorNames()),
			formatDate(p, false),
			p.PrimaryCategory)
	}
	fmt.Fprintf(w, "\n%d results\n", len(papers))
}

// FormatCompact writes one short block per paper: title, date,
// abstract preview, and abstract-page URL.
func FormatCompact(papers []types.Paper, w io.Writer) {
	for _, p := range papers {
		abstract := p.Abstract
		if len(abstract) > 150 {
			abstract = abstract[:150] + "..."
		}
		fmt.Fprintf(w, "%s | %s\n  %s\n  -> %s\n\n",
			truncate(p.Title, 70), formatDate(p, false), abstract, p.AbsURL)
	}
}

// FormatDetailed writes the full record for each paper, highlighting
// keywords in the title and abstract when given.
func FormatDetailed(papers []types.Paper, keywords []string, useColor bool, w io.Writer) {
	for _, p := range papers {
		fmt.Fprintln(w, strings.Repeat("=", 80))
		fmt.Fprintf(w, "Title: %s\n", Highlight(p.Title, keywords, useColor))
		if len(p.Authors) > 0 {
			fmt.Fprintf(w, "Authors: %s\n", strings.Join(p.AuthorNames(), ", "))
		}
		fmt.Fprintf(w, "Published: %s\n", formatDate(p, false))
		if len(p.Categories) > 0 {
			fmt.Fprintf(w, "Categories: %s\n", strings.Join(p.Categories, ", "))
		}
		if p.DOI != "" {
			fmt.Fprintf(w, "DOI: %s\n", p.DOI)
		}
		if p.JournalRef != "" {
			fmt.Fprintf(w, "Journal: %s\n", p.JournalRef)
		}
		if p.Comment != "" {
			fmt.Fprintf(w, "Comment: %s\n", p.Comment)
		}
		fmt.Fprintf(w, "\nAbstract:\n%s\n\n", Highlight(p.Abstract, keywords, useColor))
		fmt.Fprintf(w, "ArXiv: %s\nPDF: %s\n", p.AbsURL, p.PDFURL)
	}
}

func formatAuthors(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return truncate(names[0], 20)
	default:
		return truncate(names[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
