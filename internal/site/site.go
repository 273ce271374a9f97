// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site loads site-wide page settings (title, navigation, footer)
// from an optional YAML file. The article template consumes these so the
// chrome around generated pages is not hardcoded in the binary.
package site

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// NavLink is one entry in the page navigation bar.
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Settings holds the page chrome shared by all generated articles.
type Settings struct {
	// Title is the site owner or site name, shown in the page title and
	// as the first navigation entry.
	Title string `yaml:"title"`

	// TitleHref is the destination of the site title link.
	TitleHref string `yaml:"title_href"`

	// Nav lists the navigation links after the title entry.
	Nav []NavLink `yaml:"nav"`

	// Footer is the footer line, rendered verbatim as text.
	Footer string `yaml:"footer"`

	// BlogHref is the destination of the "Back to Blog" link on articles.
	BlogHref string `yaml:"blog_href"`
}

// Default returns the built-in settings used when no site file exists.
func Default() Settings {
	return Settings{
		Title:     "Ken",
		TitleHref: "../../index.html",
		Nav: []NavLink{
			{Label: "Blog", Href: "../../blog.html"},
			{Label: "Now", Href: "../../now.html"},
			{Label: "Quotes", Href: "../../quotes.html"},
			{Label: "Book Registry", Href: "../../book-registry.html"},
		},
		Footer:   "© 2025 Ken Gatera. All rights reserved.",
		BlogHref: "../../blog.html",
	}
}

// Load reads settings from path. A missing file is not an error; Load
// returns Default. Fields absent from the file keep their default value.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading site settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing site settings %s: %w", path, err)
	}
	return s, nil
}
