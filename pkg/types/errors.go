// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// QueryError reports that the arXiv API rejected the query syntax.
// The API signals this with a single feed entry whose title begins
// with "Error:"; it is never retried.
type QueryError struct {
	// Message is the error description from the feed entry summary.
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("arXiv rejected query: %s", e.Message)
}

// TransportError reports a network, timeout, or HTTP failure after the
// retry budget is exhausted (or immediately for non-retryable HTTP
// status codes). Callers that retry the same logical query must back
// off further themselves.
type TransportError struct {
	// StatusCode is the last HTTP status, or 0 when the failure was
	// below the HTTP layer (connection error, timeout).
	StatusCode int

	// Attempts is the number of attempts made.
	Attempts int

	// Err is the last underlying error, if any.
	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("arXiv request failed with HTTP %d after %d attempt(s)", e.StatusCode, e.Attempts)
	}
	return fmt.Sprintf("arXiv request failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that does not conform to the
// expected Atom feed schema. It is fatal for that response and never
// coerced into an empty result set.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing arXiv feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CacheError reports an unreadable or unwritable cache store. The
// client degrades it to a miss on reads and skips the write on stores;
// a broken cache never blocks a query.
type CacheError struct {
	// Op is the failing operation: "open", "get", "put", or "clear".
	Op  string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }
