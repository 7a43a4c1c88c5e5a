// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/arxiv-scout/internal/export"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// writePapers renders papers in the requested format, to stdout or to
// a file. Keyword highlighting applies only to the detailed format and
// uses plain markers when writing to a file.
func writePapers(papers []types.Paper, format, outPath string, keywords []string, noColor bool) error {
	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	useColor := !noColor && outPath == ""

	switch format {
	case "table", "":
		export.FormatTable(papers, w)
	case "compact":
		export.FormatCompact(papers, w)
	case "detailed":
		export.FormatDetailed(papers, keywords, useColor, w)
	case "json":
		return export.WriteJSON(papers, w)
	case "csv":
		return export.WriteCSV(papers, w)
	case "bibtex":
		return export.WriteBibTeX(papers, w)
	default:
		return fmt.Errorf("unsupported format %q: use table, compact, detailed, json, csv, or bibtex", format)
	}
	return nil
}
