// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BookEntry is one parsed line of the book log. Entries render in file
// order; nothing resorts them.
type BookEntry struct {
	// Rating is the star-glyph rating exactly as written in the log.
	Rating string `json:"rating" yaml:"rating"`

	// DateRead is the date field, ISO (YYYY-MM-DD) or preformatted.
	DateRead string `json:"date_read" yaml:"date_read"`

	// Title is the book title.
	Title string `json:"title" yaml:"title"`

	// Author is the book author.
	Author string `json:"author" yaml:"author"`

	// Description is the free-text review. It may itself contain the
	// field delimiter.
	Description string `json:"description" yaml:"description"`
}
