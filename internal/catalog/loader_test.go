package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inframe/campus-portal/pkg/client"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "blog", "b-second.yaml"), `
title: Second Post
excerpt: Another one
`)
	writeFile(t, filepath.Join(dir, "blog", "a-first.yaml"), `
slug: first-post
title: First Post
category: Career
sections:
  - id: intro
    title: Intro
    content: Hello
`)
	writeFile(t, filepath.Join(dir, "blog", "broken.yaml"), "title: [unterminated")
	writeFile(t, filepath.Join(dir, "blog", "untitled.yaml"), "excerpt: no title")
	writeFile(t, filepath.Join(dir, "news.yaml"), `
- id: 1
  title: Award
  summary: Student wins
`)
	writeFile(t, filepath.Join(dir, "events.yaml"), `
- id: 7
  title: Exhibition
  description: Student work
  location: Main Gallery
`)

	l := NewLoader()
	require.NoError(t, l.LoadFromDir(dir))

	posts := l.BlogPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, "first-post", posts[0].Slug)
	assert.Equal(t, "b-second", posts[1].Slug)
	assert.Equal(t, "General", posts[1].Category)

	first := l.BlogPost("first-post")
	require.NotNil(t, first)
	require.Len(t, first.Sections, 1)
	assert.Equal(t, "Hello", first.Sections[0].Content)
	assert.Nil(t, l.BlogPost("missing"))

	require.Len(t, l.News(), 1)
	assert.Equal(t, "Award", l.News()[0].Title)
	require.Len(t, l.Events(), 1)
	assert.Equal(t, "Main Gallery", l.Events()[0].Location)
}

func TestLoadFromDir_Missing(t *testing.T) {
	l := NewLoader()
	require.NoError(t, l.LoadFromDir(filepath.Join(t.TempDir(), "nope")))
	assert.Empty(t, l.BlogPosts())
	assert.Empty(t, l.News())
	assert.Empty(t, l.Events())
}

func TestAddBlogPost_ReplaceKeepsOrder(t *testing.T) {
	l := NewLoader()
	l.AddBlogPost(&client.BlogPost{Slug: "a", Title: "A"})
	l.AddBlogPost(&client.BlogPost{Slug: "b", Title: "B"})
	l.AddBlogPost(&client.BlogPost{Slug: "a", Title: "A2"})

	posts := l.BlogPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, "A2", posts[0].Title)
	assert.Equal(t, "B", posts[1].Title)
}

func TestLoadShippedContent(t *testing.T) {
	dir := filepath.Join("..", "..", "content")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Skip("content directory not found, skipping")
	}

	l := NewLoader()
	require.NoError(t, l.LoadFromDir(dir))

	assert.NotEmpty(t, l.BlogPosts())
	assert.NotNil(t, l.BlogPost("top-5-reasons-to-choose-inframe-school"))
	assert.Len(t, l.News(), 4)
	assert.Len(t, l.Events(), 4)
}
