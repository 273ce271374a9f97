// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSource(t *testing.T) {
	src := `---
title: A Post
date: 2024-06-01
author: Ken
tags:
  - go
  - blogging
extra_key: ignored but kept
---

Body text here.
`
	art, err := ParseSource("drafts/a-post.md", []byte(src))
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}

	if art.Meta.Title != "A Post" {
		t.Errorf("title = %q", art.Meta.Title)
	}
	if art.Meta.Date != "2024-06-01" {
		t.Errorf("date = %q", art.Meta.Date)
	}
	if art.Meta.Author != "Ken" {
		t.Errorf("author = %q", art.Meta.Author)
	}
	if len(art.Meta.Tags) != 2 {
		t.Errorf("tags = %v", art.Meta.Tags)
	}
	if _, ok := art.Meta.Custom["extra_key"]; !ok {
		t.Error("unknown keys should land in Custom")
	}
	if !strings.Contains(string(art.Body), "Body text here.") {
		t.Errorf("body = %q", art.Body)
	}
	if strings.Contains(string(art.Body), "---") {
		t.Error("body should not contain frontmatter delimiters")
	}
}

func TestParseSource_MissingTitle(t *testing.T) {
	src := "---\ndate: 2024-06-01\n---\n\nBody.\n"

	_, err := ParseSource("x.md", []byte(src))
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("err = %v, want ErrMissingField", err)
	}
	if !strings.Contains(err.Error(), "title") {
		t.Errorf("error should name the missing field: %v", err)
	}
}

func TestParseSource_NoFrontmatter(t *testing.T) {
	_, err := ParseSource("x.md", []byte("# Just markdown\n\nNo metadata.\n"))
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("a file without frontmatter has no title; err = %v", err)
	}
}
