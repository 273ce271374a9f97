// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgatera/site-tools/pkg/types"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    types.BookEntry
		wantErr bool
	}{
		{
			name: "five fields",
			line: "★★★★☆ - 2024-12-15 - Dune - Frank Herbert - A classic.",
			want: types.BookEntry{
				Rating:      "★★★★☆",
				DateRead:    "2024-12-15",
				Title:       "Dune",
				Author:      "Frank Herbert",
				Description: "A classic.",
			},
		},
		{
			name: "description keeps extra delimiters",
			line: "★★★☆☆ - 2024-01-02 - Cryptonomicon - Neal Stephenson - Long - dense - worth it.",
			want: types.BookEntry{
				Rating:      "★★★☆☆",
				DateRead:    "2024-01-02",
				Title:       "Cryptonomicon",
				Author:      "Neal Stephenson",
				Description: "Long - dense - worth it.",
			},
		},
		{
			name: "delimiter at the description boundary",
			line: "★★★★★ - 2023-07-09 - Title - Author - - starts with the delimiter",
			want: types.BookEntry{
				Rating:      "★★★★★",
				DateRead:    "2023-07-09",
				Title:       "Title",
				Author:      "Author",
				Description: "- starts with the delimiter",
			},
		},
		{
			name:    "four fields",
			line:    "★★★★☆ - 2024-12-15 - Dune - Frank Herbert",
			wantErr: true,
		},
		{
			name:    "single field",
			line:    "not a book line",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line, 1)
			if tt.wantErr {
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, 1, perr.Line)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLog(t *testing.T) {
	log := `# reading log
# rating - date - title - author - description

★★★★☆ - 2024-12-15 - Dune - Frank Herbert - A classic.
broken line without enough fields
★★★★★ - 2025-02-01 - Piranesi - Susanna Clarke - Strange and lovely.
`
	var warnings bytes.Buffer
	entries, skipped, err := ParseLog(strings.NewReader(log), &warnings)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, 1, skipped)

	// Entries stay in file order.
	assert.Equal(t, "Dune", entries[0].Title)
	assert.Equal(t, "Piranesi", entries[1].Title)

	assert.Contains(t, warnings.String(), "warning:")
	assert.Contains(t, warnings.String(), "line 5")
}

func TestParseLog_Empty(t *testing.T) {
	var warnings bytes.Buffer
	entries, skipped, err := ParseLog(strings.NewReader("# only comments\n\n"), &warnings)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Zero(t, skipped)
	assert.Empty(t, warnings.String())
}
