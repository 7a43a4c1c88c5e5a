// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-scout CLI: polite,
// cached access to arXiv bibliographic metadata from the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-scout/internal/arxiv"
	"github.com/pdiddy/arxiv-scout/internal/cache"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-scout",
	Short: "Search and browse arXiv preprints from the terminal",
	Long: `arxiv-scout queries the arXiv API for bibliographic metadata. Requests
are paced to the API's three-second courtesy interval, transient failures
are retried with exponential backoff, and results are cached locally so a
repeated or resumed survey does not hit the network twice.

Results can be rendered as a table, compact or detailed listings, or
exported as JSON, CSV, or BibTeX.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-scout.yaml or ~/.config/arxiv-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-scout"))
		}
	}

	viper.SetEnvPrefix("ARXIV_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig assembles the client configuration from viper, with
// package defaults for anything unset.
func clientConfig() types.ClientConfig {
	cfg := types.ClientConfig{
		Transport: types.TransportConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("http.timeout"),
				UserAgent: viper.GetString("http.user_agent"),
			},
			RateLimitDelay: viper.GetDuration("http.rate_limit_delay"),
			MaxRetries:     viper.GetInt("http.max_retries"),
			RetryBaseDelay: viper.GetDuration("http.retry_base_delay"),
		},
		Cache: types.CacheConfig{
			Dir:      viper.GetString("cache.dir"),
			TTL:      viper.GetDuration("cache.ttl"),
			Disabled: viper.GetBool("cache.disabled"),
		},
		Search: types.SearchConfig{
			PageSize:   viper.GetInt("search.page_size"),
			MaxResults: viper.GetInt("search.max_results"),
		},
	}
	cfg.ApplyDefaults()
	if cfg.Cache.Dir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(base, "arxiv-scout")
		}
	}
	return cfg
}

// newClient builds the arXiv client and opens the cache store. A cache
// that fails to open is reported and skipped; queries still work.
func newClient(warn io.Writer) (*arxiv.Client, func()) {
	cfg := clientConfig()

	var store arxiv.Cache
	closeStore := func() {}
	if !cfg.Cache.Disabled && cfg.Cache.Dir != "" {
		s, err := cache.Open(cfg.Cache)
		if err != nil {
			fmt.Fprintf(warn, "warning: cache unavailable, queries will not be cached: %v\n", err)
		} else {
			store = s
			closeStore = func() { s.Close() }
		}
	}

	return arxiv.NewClient(cfg, store, warn), closeStore
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
