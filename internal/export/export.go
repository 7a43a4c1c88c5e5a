// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes paper records to JSON, CSV, and BibTeX,
// and renders them for the terminal. Every transform is pure and
// stateless: records in, bytes out.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// multiValueSep joins multi-valued fields (authors, categories) into
// one CSV cell.
const multiValueSep = "; "

// csvHeader is the CSV column order, matching the Paper field names.
var csvHeader = []string{
	"arxiv_id", "base_id", "title", "authors", "affiliations",
	"published", "updated", "primary_category", "categories",
	"abstract", "doi", "journal_ref", "comment", "arxiv_url", "pdf_url",
}

// WriteJSON writes papers as an indented JSON array.
func WriteJSON(papers []types.Paper, w io.Writer) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// WriteCSV writes papers as CSV with a header row, one row per record.
func WriteCSV(papers []types.Paper, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.ArxivID,
			p.BaseID,
			p.Title,
			strings.Join(p.AuthorNames(), multiValueSep),
			strings.Join(affiliations(p), multiValueSep),
			formatDate(p, false),
			formatDate(p, true),
			p.PrimaryCategory,
			strings.Join(p.Categories, multiValueSep),
			p.Abstract,
			p.DOI,
			p.JournalRef,
			p.Comment,
			p.AbsURL,
			p.PDFURL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.ArxivID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBibTeX writes one @article stanza per paper, separated by blank
// lines. Records missing an optional field omit it rather than failing
// the export.
func WriteBibTeX(papers []types.Paper, w io.Writer) error {
	for i, p := range papers {
		if i > 0 {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, BibTeXEntry(p)); err != nil {
			return err
		}
	}
	if len(papers) > 0 {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// BibTeXEntry renders one paper as a BibTeX @article stanza. The
// citation key is first author surname + year + first title word,
// lowercased with non-alphanumerics stripped.
func BibTeXEntry(p types.Paper) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("@article{%s,", CiteKey(p)))
	lines = append(lines, fmt.Sprintf("  title = {{%s}},", escapeBraces(p.Title)))
	if names := p.AuthorNames(); len(names) > 0 {
		lines = append(lines, fmt.Sprintf("  author = {%s},", strings.Join(names, " and ")))
	}
	if y := p.Year(); y > 0 {
		lines = append(lines, fmt.Sprintf("  year = {%d},", y))
	}
	lines = append(lines, fmt.Sprintf("  eprint = {%s},", p.BaseID))
	lines = append(lines, "  archivePrefix = {arXiv},")
	if p.PrimaryCategory != "" {
		lines = append(lines, fmt.Sprintf("  primaryClass = {%s},", p.PrimaryCategory))
	}
	if p.DOI != "" {
		lines = append(lines, fmt.Sprintf("  doi = {%s},", p.DOI))
	}
	if p.JournalRef != "" {
		lines = append(lines, fmt.Sprintf("  journal = {%s},", escapeBraces(p.JournalRef)))
	}
	if p.AbsURL != "" {
		lines = append(lines, fmt.Sprintf("  url = {%s},", p.AbsURL))
	}
	if p.Abstract != "" {
		lines = append(lines, fmt.Sprintf("  abstract = {%s}", escapeBraces(p.Abstract)))
	}
	// Trim the trailing comma when abstract is absent.
	last := len(lines) - 1
	lines[last] = strings.TrimSuffix(lines[last], ",")
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// CiteKey derives the citation key for a paper, e.g. "vaswani2017attention".
func CiteKey(p types.Paper) string {
	surname := "unknown"
	if len(p.Authors) > 0 {
		fields := strings.Fields(p.Authors[0].Name)
		if len(fields) > 0 {
			surname = fields[len(fields)-1]
		}
	}
	year := "0000"
	if y := p.Year(); y > 0 {
		year = fmt.Sprintf("%d", y)
	}
	token := "paper"
	if fields := strings.Fields(p.Title); len(fields) > 0 {
		token = fields[0]
	}
	return stripNonAlnum(strings.ToLower(surname + year + token))
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeBraces(s string) string {
	s = strings.ReplaceAll(s, "{", `\{`)
	return strings.ReplaceAll(s, "}", `\}`)
}

func affiliations(p types.Paper) []string {
	var out []string
	for _, a := range p.Authors {
		if a.Affiliation != "" {
			out = append(out, a.Affiliation)
		}
	}
	return out
}

func formatDate(p types.Paper, updated bool) string {
	t := p.Published
	if updated {
		t = p.Updated
	}
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
