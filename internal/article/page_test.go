// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"strings"
	"testing"

	"github.com/kgatera/site-tools/internal/site"
)

func TestRenderPage(t *testing.T) {
	body := []byte("<p>Hello <strong>there</strong>.</p>")

	out, err := RenderPage("A <Title>", "January 4, 2025", body, site.Default())
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	page := string(out)

	// Title is escaped; body is injected as-is.
	if !strings.Contains(page, "<h1>A &lt;Title&gt;</h1>") {
		t.Error("title should be HTML-escaped")
	}
	if !strings.Contains(page, "<p>Hello <strong>there</strong>.</p>") {
		t.Error("pre-rendered body must not be re-escaped")
	}
	if !strings.Contains(page, `<div class="article-meta">January 4, 2025</div>`) {
		t.Error("date should appear in the article meta")
	}
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Error("page should be a full document")
	}
}

func TestRenderPage_SiteSettings(t *testing.T) {
	settings := site.Settings{
		Title:     "Example",
		TitleHref: "/index.html",
		Nav: []site.NavLink{
			{Label: "Blog", Href: "/blog.html"},
		},
		Footer:   "© 2026 Example",
		BlogHref: "/blog.html",
	}

	out, err := RenderPage("Post", "", nil, settings)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"<title>Post - Example</title>",
		`<a href="/index.html"><strong>Example</strong></a>`,
		`<a href="/blog.html">Blog</a>`,
		"© 2026 Example",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
