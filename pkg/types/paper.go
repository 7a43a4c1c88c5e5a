// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for arxiv-scout: the
// normalized paper record returned by the arXiv API, configuration
// structs, and the error taxonomy used across the client.
package types

import "time"

// Author is one paper author with an optional affiliation. The arXiv
// Atom extension namespace carries affiliations for a minority of
// entries; most records have only a name.
type Author struct {
	// Name is the author name as returned by the feed.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the author's institution, when the feed provides one.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// Paper is the normalized representation of one arXiv feed entry.
// ArxivID is always present and is the field downstream consumers key
// on; every other field may be empty.
type Paper struct {
	// ArxivID is the identifier including the version suffix (e.g. "2301.07041v2").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// BaseID is the identifier with the version suffix stripped (e.g. "2301.07041").
	BaseID string `json:"base_id" yaml:"base_id"`

	// Title is the paper title with whitespace collapsed.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in feed order.
	Authors []Author `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract with whitespace collapsed.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Published is the first-submission timestamp.
	Published time.Time `json:"published" yaml:"published"`

	// Updated is the timestamp of the most recent version.
	Updated time.Time `json:"updated" yaml:"updated"`

	// PrimaryCategory is the primary arXiv category (e.g. "cs.LG").
	PrimaryCategory string `json:"primary_category" yaml:"primary_category"`

	// Categories lists all categories the paper is filed under.
	Categories []string `json:"categories" yaml:"categories"`

	// DOI is set once a DOI has been registered for the paper.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// JournalRef is the journal reference, present once published.
	JournalRef string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`

	// Comment is the author comment (page counts, venue notes).
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	// AbsURL is the canonical abstract page URL.
	AbsURL string `json:"arxiv_url" yaml:"arxiv_url"`

	// PDFURL is the canonical PDF URL.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}

// Year returns the publication year, or 0 when the published date is unknown.
func (p Paper) Year() int {
	if p.Published.IsZero() {
		return 0
	}
	return p.Published.Year()
}

// AuthorNames returns the author names in feed order.
func (p Paper) AuthorNames() []string {
	names := make([]string, len(p.Authors))
	for i, a := range p.Authors {
		names[i] = a.Name
	}
	return names
}
