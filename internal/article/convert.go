// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package article implements the markdown-to-HTML article converter: locate
// a draft, parse its frontmatter, render the body, and write a styled page
// into the output directory under a slug-derived filename.
package article

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goliatone/go-slug"

	"github.com/kgatera/site-tools/internal/site"
	"github.com/kgatera/site-tools/internal/textdate"
	"github.com/kgatera/site-tools/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Locate resolves a markdown path. The literal path wins; a relative path
// that does not exist is retried under the drafts directory.
func Locate(path, draftsDir string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if !filepath.IsAbs(path) {
		draft := filepath.Join(draftsDir, path)
		if _, err := os.Stat(draft); err == nil {
			return draft, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}

// OutputName returns the article filename for a title: "article-<slug>.html".
func OutputName(title string) (string, error) {
	s, err := slug.Normalize(title)
	if err != nil {
		return "", fmt.Errorf("slugifying title %q: %w", title, err)
	}
	return "article-" + s + ".html", nil
}

// Convert runs the full pipeline for one markdown file and returns the path
// of the written HTML file. Nothing is written on error.
func Convert(path string, cfg types.BlogConfig, settings site.Settings) (string, error) {
	src, err := Locate(path, cfg.DraftsDir)
	if err != nil {
		return "", err
	}

	source, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", src, err)
	}

	art, err := ParseSource(src, source)
	if err != nil {
		return "", err
	}

	body, err := RenderMarkdown(art.Body)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", src, err)
	}

	date := ""
	if art.Meta.Date != "" {
		date = textdate.Format(art.Meta.Date)
	}

	page, err := RenderPage(art.Meta.Title, date, body, settings)
	if err != nil {
		return "", err
	}

	name, err := OutputName(art.Meta.Title)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	outPath := filepath.Join(cfg.OutputDir, name)
	if err := os.WriteFile(outPath, page, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	return outPath, nil
}

// ConvertBatch runs Convert over paths, printing per-file status to w and
// returning a summary. Failures do not stop the remaining files.
func ConvertBatch(paths []string, cfg types.BlogConfig, settings site.Settings, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		out, err := Convert(p, cfg, settings)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", p, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", filepath.Base(p), out)
		result.Converted++
	}
	if len(paths) > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
			result.Converted, result.Failed, result.Total())
	}
	return result
}
