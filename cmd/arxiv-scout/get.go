// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <arxiv-id>...",
	Short: "Look up papers by arXiv ID or URL",
	Long: `Get fetches specific papers by identifier. IDs may be bare
("2301.07041"), versioned ("2301.07041v2"), or full arxiv.org URLs;
several IDs are fetched in a single request.`,
	Example: `  arxiv-scout get 2301.07041
  arxiv-scout get https://arxiv.org/abs/1706.03762 --format bibtex`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")

	client, closeStore := newClient(os.Stderr)
	defer closeStore()

	papers, err := client.Papers(context.Background(), args)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		return fmt.Errorf("no papers found for %v", args)
	}
	if len(papers) < len(args) {
		fmt.Fprintf(os.Stderr, "warning: %d of %d identifier(s) not found\n", len(args)-len(papers), len(args))
	}

	return writePapers(papers, format, output, nil, noColor)
}

func init() {
	getCmd.Flags().String("format", "detailed", "output format: table, compact, detailed, json, csv, or bibtex")
	getCmd.Flags().StringP("output", "o", "", "write output to a file instead of stdout")
	getCmd.Flags().Bool("no-color", false, "disable ANSI color in output")

	rootCmd.AddCommand(getCmd)
}
