// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry implements the book registry generator: parse the
// line-oriented book log, render summary and detail HTML fragments, and
// splice them into the registry page between marker comments.
package registry

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kgatera/site-tools/pkg/types"
)

// delimiter separates the five fields of a log line. A description may
// contain the delimiter; SplitN caps the split so the remainder stays in
// the description field.
const delimiter = " - "

// fieldCount is rating, date, title, author, description.
const fieldCount = 5

// ParseError reports a log line that does not split into five fields.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields (rating - date - title - author - description), got %q",
		e.Line, fieldCount, e.Text)
}

// ParseLine parses one log line into a BookEntry. The caller has already
// stripped blank and comment lines.
func ParseLine(line string, lineNum int) (types.BookEntry, error) {
	parts := strings.SplitN(line, delimiter, fieldCount)
	if len(parts) < fieldCount {
		return types.BookEntry{}, &ParseError{Line: lineNum, Text: line}
	}
	return types.BookEntry{
		Rating:      strings.TrimSpace(parts[0]),
		DateRead:    strings.TrimSpace(parts[1]),
		Title:       strings.TrimSpace(parts[2]),
		Author:      strings.TrimSpace(parts[3]),
		Description: strings.TrimSpace(parts[4]),
	}, nil
}

// ParseLog reads the book log from r, returning entries in file order.
// Blank lines and lines starting with '#' are skipped silently; malformed
// lines are reported to w and skipped, without stopping the run. The
// second return value counts skipped malformed lines.
func ParseLog(r io.Reader, w io.Writer) ([]types.BookEntry, int, error) {
	var (
		entries []types.BookEntry
		skipped int
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := ParseLine(line, lineNum)
		if err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading book log: %w", err)
	}

	return entries, skipped, nil
}
