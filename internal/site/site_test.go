// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "site.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), s)
	assert.NotEmpty(t, s.Nav)
}

func TestLoad_OverridesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `title: Example
footer: "© 2026 Example"
nav:
  - label: Home
    href: /index.html
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Example", s.Title)
	assert.Equal(t, "© 2026 Example", s.Footer)
	require.Len(t, s.Nav, 1)
	assert.Equal(t, NavLink{Label: "Home", Href: "/index.html"}, s.Nav[0])
	// Untouched fields keep defaults.
	assert.Equal(t, Default().BlogHref, s.BlogHref)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing site settings")
}
