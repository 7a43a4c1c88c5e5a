package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s). A timed-out
	// attempt counts as a retryable failure.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "arxiv-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// TransportConfig holds pacing and retry settings for the arXiv API
// transport. The API's terms of use ask for no more than one request
// every three seconds.
type TransportConfig struct {
	HTTPConfig `yaml:",inline"`

	// RateLimitDelay is the minimum interval between consecutive
	// requests (default 3s).
	RateLimitDelay time.Duration `json:"rate_limit_delay" yaml:"rate_limit_delay"`

	// MaxRetries is the total number of attempts for one logical
	// request (default 3). HTTP 4xx is never retried.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RetryBaseDelay is the base duration for exponential backoff
	// between attempts (default 1s): 1s, 2s, 4s, ...
	RetryBaseDelay time.Duration `json:"retry_base_delay" yaml:"retry_base_delay"`
}

// CacheConfig holds settings for the query-result cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database. Empty disables
	// caching entirely.
	Dir string `json:"dir" yaml:"dir"`

	// TTL is how long a cached result set stays valid (default 24h).
	// Expired entries are treated as misses and evicted lazily.
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Disabled turns the cache off even when Dir is set.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// SearchConfig holds settings for the search operations.
type SearchConfig struct {
	// PageSize is the number of results requested per API call
	// (default 100). The server-side hard maximum is 2000.
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxResults is the default total number of results to return
	// when the caller does not ask for a specific count (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ClientConfig groups all configuration for the arXiv client.
type ClientConfig struct {
	Transport TransportConfig `json:"transport" yaml:"transport"`
	Cache     CacheConfig     `json:"cache" yaml:"cache"`
	Search    SearchConfig    `json:"search" yaml:"search"`
}

// Defaults for ClientConfig fields left at their zero value.
const (
	DefaultTimeout        = 30 * time.Second
	DefaultRateLimitDelay = 3 * time.Second
	DefaultMaxRetries     = 3
	DefaultRetryBaseDelay = 1 * time.Second
	DefaultCacheTTL       = 24 * time.Hour
	DefaultPageSize       = 100
	DefaultMaxResults     = 10
	DefaultUserAgent      = "arxiv-scout/0.1"
)

// ApplyDefaults fills zero-valued fields with the package defaults.
func (c *ClientConfig) ApplyDefaults() {
	if c.Transport.Timeout <= 0 {
		c.Transport.Timeout = DefaultTimeout
	}
	if c.Transport.UserAgent == "" {
		c.Transport.UserAgent = DefaultUserAgent
	}
	if c.Transport.RateLimitDelay <= 0 {
		c.Transport.RateLimitDelay = DefaultRateLimitDelay
	}
	if c.Transport.MaxRetries <= 0 {
		c.Transport.MaxRetries = DefaultMaxRetries
	}
	if c.Transport.RetryBaseDelay <= 0 {
		c.Transport.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Search.PageSize <= 0 {
		c.Search.PageSize = DefaultPageSize
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = DefaultMaxResults
	}
}
