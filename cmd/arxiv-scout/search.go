// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/export"
)

var searchCmd = &cobra.Command{
	Use:   "search [free text...]",
	Short: "Search arXiv for papers matching a query",
	Long: `Search queries the arXiv API. Free-text arguments match all fields;
--title, --author, --abstract, and --category narrow the match, and all
given terms are ANDed together. --query bypasses the builder and sends a
raw arXiv query expression (field tags ti:, au:, abs:, cat:, co:).

Results come back in feed order. A search repeated within the cache TTL
is served locally without touching the network.`,
	Example: `  arxiv-scout search --category cs.LG --title transformer
  arxiv-scout search --query "cat:cs.LG AND ti:transformer" --sort-by submitted
  arxiv-scout search "sparse attention" --max-results 50 --format bibtex -o refs.bib`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	keywords, _ := cmd.Flags().GetStringSlice("highlight")
	minMatches, _ := cmd.Flags().GetInt("min-matches")
	noColor, _ := cmd.Flags().GetBool("no-color")
	savePath, _ := cmd.Flags().GetString("save")
	loadPath, _ := cmd.Flags().GetString("load")

	// A saved query file replays without any network traffic.
	if loadPath != "" {
		qf, err := export.ReadQueryFile(loadPath)
		if err != nil {
			return err
		}
		papers := export.FilterByKeywords(qf.Results, keywords, minMatches)
		return writePapers(papers, format, output, keywords, noColor)
	}

	q, err := queryFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if q.SearchQuery() == "" {
		return fmt.Errorf("empty query: provide search terms, --query, or --category")
	}

	maxResults, _ := cmd.Flags().GetInt("max-results")

	client, closeStore := newClient(os.Stderr)
	defer closeStore()
	if maxResults <= 0 {
		maxResults = client.Config.Search.MaxResults
	}

	papers, err := client.SearchAll(context.Background(), q, maxResults)
	if err != nil {
		return err
	}

	if savePath != "" {
		if err := export.WriteQueryFile(savePath, q, maxResults, papers); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved query and %d result(s) to %s\n", len(papers), savePath)
	}

	papers = export.FilterByKeywords(papers, keywords, minMatches)
	return writePapers(papers, format, output, keywords, noColor)
}

// queryFromFlags assembles a Query from the search flags. Field flags
// and free-text arguments are ANDed; --query is used verbatim.
func queryFromFlags(cmd *cobra.Command, args []string) (arxiv.Query, error) {
	raw, _ := cmd.Flags().GetString("query")
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	abstract, _ := cmd.Flags().GetString("abstract")
	category, _ := cmd.Flags().GetString("category")
	start, _ := cmd.Flags().GetInt("start")

	q := arxiv.Query{Raw: raw, Category: category, Start: start}

	if raw == "" {
		var terms []arxiv.Expr
		if text := strings.Join(args, " "); text != "" {
			terms = append(terms, arxiv.Term{Field: arxiv.FieldAll, Value: text})
		}
		if title != "" {
			terms = append(terms, arxiv.Term{Field: arxiv.FieldTitle, Value: title})
		}
		if author != "" {
			terms = append(terms, arxiv.Term{Field: arxiv.FieldAuthor, Value: author})
		}
		if abstract != "" {
			terms = append(terms, arxiv.Term{Field: arxiv.FieldAbstract, Value: abstract})
		}
		switch len(terms) {
		case 0:
		case 1:
			q.Expr = terms[0]
		default:
			q.Expr = arxiv.And(terms...)
		}
	}

	var err error
	q.SortBy, q.SortOrder, err = sortFromFlags(cmd)
	return q, err
}

func sortFromFlags(cmd *cobra.Command) (arxiv.SortBy, arxiv.SortOrder, error) {
	sortBy, _ := cmd.Flags().GetString("sort-by")
	sortOrder, _ := cmd.Flags().GetString("sort-order")

	var by arxiv.SortBy
	switch sortBy {
	case "", "relevance":
		by = arxiv.SortRelevance
	case "updated", "lastUpdatedDate":
		by = arxiv.SortLastUpdated
	case "submitted", "submittedDate":
		by = arxiv.SortSubmitted
	default:
		return "", "", fmt.Errorf("unknown sort field %q: use relevance, updated, or submitted", sortBy)
	}

	var order arxiv.SortOrder
	switch sortOrder {
	case "", "descending", "desc":
		order = arxiv.OrderDescending
	case "ascending", "asc":
		order = arxiv.OrderAscending
	default:
		return "", "", fmt.Errorf("unknown sort order %q: use ascending or descending", sortOrder)
	}
	return by, order, nil
}

func init() {
	searchCmd.Flags().String("query", "", "raw arXiv query expression (bypasses the builder)")
	searchCmd.Flags().String("title", "", "match in title (ti:)")
	searchCmd.Flags().String("author", "", "match in author names (au:)")
	searchCmd.Flags().String("abstract", "", "match in abstract (abs:)")
	searchCmd.Flags().String("category", "", "restrict to an arXiv category (e.g. cs.LG)")
	searchCmd.Flags().Int("max-results", 0, "total number of results to fetch (0 = config default)")
	searchCmd.Flags().Int("start", 0, "result offset to start from")
	searchCmd.Flags().String("sort-by", "relevance", "sort field: relevance, updated, or submitted")
	searchCmd.Flags().String("sort-order", "descending", "sort order: ascending or descending")
	searchCmd.Flags().String("format", "table", "output format: table, compact, detailed, json, csv, or bibtex")
	searchCmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")
	searchCmd.Flags().StringSlice("highlight", nil, "keywords to highlight and filter on")
	searchCmd.Flags().Int("min-matches", 0, "keep only papers matching at least this many highlight keywords")
	searchCmd.Flags().Bool("no-color", false, "disable ANSI color in highlighted output")
	searchCmd.Flags().String("save", "", "save query and results to a YAML query file")
	searchCmd.Flags().String("load", "", "replay a saved query file instead of querying the API")

	rootCmd.AddCommand(searchCmd)
}
