// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ArticleMeta holds the frontmatter fields recognized by the converter.
// Title is required; everything else is optional.
type ArticleMeta struct {
	// Title is the article headline, also the source of the output slug.
	Title string `json:"title" yaml:"title"`

	// Date is the publication date, either ISO (YYYY-MM-DD) or an already
	// formatted string that is passed through verbatim.
	Date string `json:"date,omitempty" yaml:"date,omitempty"`

	// Author is the article byline, if any.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Tags are free-form article labels.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Draft marks an article as unpublished. The converter ignores it; the
	// field exists so drafts carrying it round-trip without errors.
	Draft bool `json:"draft,omitempty" yaml:"draft,omitempty"`

	// Custom collects any frontmatter keys outside the fixed schema.
	Custom map[string]any `json:"-" yaml:",inline"`
}

// Article is one markdown source resolved to its metadata and body.
type Article struct {
	// SourcePath is the markdown file the article was loaded from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// Meta is the parsed frontmatter.
	Meta ArticleMeta `json:"meta" yaml:"meta"`

	// Body is the markdown content after the frontmatter block.
	Body []byte `json:"-" yaml:"-"`
}
