// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import "errors"

var (
	// ErrNotFound means the markdown input was not found at the literal
	// path or under the drafts directory.
	ErrNotFound = errors.New("markdown file not found")

	// ErrMissingField means a required frontmatter key is absent or empty.
	ErrMissingField = errors.New("missing frontmatter field")
)
