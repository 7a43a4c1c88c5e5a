// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/export"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recently submitted papers in a category",
	Long: `Recent lists papers sorted by submission date, newest first,
restricted to a category and optionally an extra query expression.
--days-back drops papers submitted more than N days ago.`,
	Example: `  arxiv-scout recent --category cs.LG --max-results 20
  arxiv-scout recent --category q-bio.QM --days-back 7 --highlight crispr`,
	RunE: runRecent,
}

func runRecent(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	query, _ := cmd.Flags().GetString("query")
	daysBack, _ := cmd.Flags().GetInt("days-back")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	keywords, _ := cmd.Flags().GetStringSlice("highlight")
	minMatches, _ := cmd.Flags().GetInt("min-matches")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if category == "" && query == "" {
		return fmt.Errorf("provide --category and/or --query")
	}

	client, closeStore := newClient(os.Stderr)
	defer closeStore()

	papers, err := client.Recent(context.Background(), category, query, maxResults, daysBack)
	if err != nil {
		return err
	}

	papers = export.FilterByKeywords(papers, keywords, minMatches)
	return writePapers(papers, format, output, keywords, noColor)
}

func init() {
	recentCmd.Flags().String("category", "", "arXiv category (e.g. cs.LG, q-bio.QM)")
	recentCmd.Flags().String("query", "", "extra query expression ANDed with the category")
	recentCmd.Flags().Int("days-back", 0, "only papers submitted within the last N days (0 = no filter)")
	recentCmd.Flags().Int("max-results", 50, "maximum number of papers to list")
	recentCmd.Flags().String("format", "compact", "output format: table, compact, detailed, json, csv, or bibtex")
	recentCmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")
	recentCmd.Flags().StringSlice("highlight", nil, "keywords to highlight and filter on")
	recentCmd.Flags().Int("min-matches", 0, "keep only papers matching at least this many highlight keywords")
	recentCmd.Flags().Bool("no-color", false, "disable ANSI color in highlighted output")

	rootCmd.AddCommand(recentCmd)
}
