// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results.
// The researcher can save a survey to a file and reload it later
// without touching the API again.
type QueryFile struct {
	Query   QueryParams   `yaml:"query"`
	Results []types.Paper `yaml:"results"`
	Summary QuerySummary  `yaml:"summary"`
}

// QueryParams stores the query parameters in a serializable form.
type QueryParams struct {
	Search    string   `yaml:"search,omitempty"`
	Category  string   `yaml:"category,omitempty"`
	IDList    []string `yaml:"id_list,omitempty"`
	SortBy    string   `yaml:"sort_by,omitempty"`
	SortOrder string   `yaml:"sort_order,omitempty"`
	Total     int      `yaml:"total_requested,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves query parameters and results to a YAML file.
func WriteQueryFile(path string, q arxiv.Query, total int, papers []types.Paper) error {
	qf := QueryFile{
		Query: QueryParams{
			Search:    q.SearchQuery(),
			Category:  q.Category,
			IDList:    q.IDList,
			SortBy:    string(q.SortBy),
			SortOrder: string(q.SortOrder),
			Total:     total,
		},
		Results: papers,
		Summary: QuerySummary{
			Total:     len(papers),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}
