// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/kgatera/site-tools/pkg/types"
)

// ParseSource splits markdown source into typed frontmatter and body.
// The frontmatter block is delimited by "---" lines; a file without one
// yields empty metadata and the full source as body. Title is required.
func ParseSource(path string, source []byte) (types.Article, error) {
	var meta types.ArticleMeta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return types.Article{}, fmt.Errorf("parsing frontmatter of %s: %w", path, err)
	}

	if meta.Title == "" {
		return types.Article{}, fmt.Errorf("%s: %w: title", path, ErrMissingField)
	}

	return types.Article{
		SourcePath: path,
		Meta:       meta,
		Body:       body,
	}, nil
}
