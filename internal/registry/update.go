// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kgatera/site-tools/pkg/types"
)

// Marker comments bounding the generated regions of the registry page.
// Everything strictly between a pair is replaced on update; the markers
// and the rest of the file are preserved byte for byte.
const (
	SummaryStart = "<!-- BOOKS:SUMMARY -->"
	SummaryEnd   = "<!-- /BOOKS:SUMMARY -->"
	DetailStart  = "<!-- BOOKS:DETAIL -->"
	DetailEnd    = "<!-- /BOOKS:DETAIL -->"
)

// ErrMarkerNotFound means the registry page lacks an expected marker
// comment pair.
var ErrMarkerNotFound = errors.New("marker comment not found")

// ErrNoEntries means the book log produced no valid entries.
var ErrNoEntries = errors.New("no book entries found")

// Result holds the outcome of a registry update.
type Result struct {
	Parsed  int
	Skipped int
}

// spliceRegion replaces the content between the start and end markers in
// doc with fragment, keeping the markers. The end marker must follow the
// start marker.
func spliceRegion(doc, start, end, fragment string) (string, error) {
	startIdx := strings.Index(doc, start)
	if startIdx < 0 {
		return "", fmt.Errorf("%w: %s", ErrMarkerNotFound, start)
	}
	regionStart := startIdx + len(start)

	endOffset := strings.Index(doc[regionStart:], end)
	if endOffset < 0 {
		return "", fmt.Errorf("%w: %s", ErrMarkerNotFound, end)
	}
	regionEnd := regionStart + endOffset

	return doc[:regionStart] + "\n" + fragment + "\n" + doc[regionEnd:], nil
}

// Update reads the book log, renders both fragments, and rewrites the
// registry page in place. Per-line log problems are reported to w and
// skipped; a missing marker pair is fatal and leaves the page untouched.
func Update(cfg types.RegistryConfig, w io.Writer) (Result, error) {
	f, err := os.Open(cfg.BooksFile)
	if err != nil {
		return Result{}, fmt.Errorf("opening book log: %w", err)
	}
	defer f.Close()

	entries, skipped, err := ParseLog(f, w)
	if err != nil {
		return Result{}, err
	}
	result := Result{Parsed: len(entries), Skipped: skipped}
	if len(entries) == 0 {
		return result, fmt.Errorf("%w in %s", ErrNoEntries, cfg.BooksFile)
	}
	fmt.Fprintf(w, "Found %d book(s)\n", len(entries))

	pageBytes, err := os.ReadFile(cfg.RegistryPath)
	if err != nil {
		return result, fmt.Errorf("reading registry page: %w", err)
	}
	page := string(pageBytes)

	summary, detail, err := RenderFragments(entries)
	if err != nil {
		return result, err
	}

	page, err = spliceRegion(page, SummaryStart, SummaryEnd, summary)
	if err != nil {
		return result, err
	}
	page, err = spliceRegion(page, DetailStart, DetailEnd, detail)
	if err != nil {
		return result, err
	}

	if err := os.WriteFile(cfg.RegistryPath, []byte(page), 0o644); err != nil {
		return result, fmt.Errorf("writing registry page: %w", err)
	}

	fmt.Fprintf(w, "updated: %s\n", cfg.RegistryPath)
	return result, nil
}
