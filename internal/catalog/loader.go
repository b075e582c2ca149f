package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/inframe/campus-portal/pkg/client"
)

// Loader manages loading and caching of the static site content: blog
// posts shipped with the site and the news/events listings
type Loader struct {
	mu     sync.RWMutex
	blogs  map[string]*client.BlogPost
	order  []string
	news   []NewsItem
	events []Event
}

// NewLoader creates an empty content loader
func NewLoader() *Loader {
	return &Loader{
		blogs: make(map[string]*client.BlogPost),
	}
}

// LoadFromDir loads blog/*.yaml, news.yaml and events.yaml from dir.
// A missing directory or file leaves the corresponding content empty.
func (l *Loader) LoadFromDir(dir string) error {
	slog.Info("loading static content from directory", "dir", dir)

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("content directory not found, static content disabled", "dir", dir)
		return nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, "blog", pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	loaded := 0
	for _, file := range files {
		if err := l.LoadBlogFile(file); err != nil {
			slog.Warn("failed to load blog post", "file", file, "error", err)
			continue
		}
		loaded++
	}
	slog.Info("static blog posts loaded", "count", loaded, "total_files", len(files))

	var news []NewsItem
	if err := readYAML(filepath.Join(dir, "news.yaml"), &news); err != nil {
		slog.Warn("failed to load news", "error", err)
	}
	var events []Event
	if err := readYAML(filepath.Join(dir, "events.yaml"), &events); err != nil {
		slog.Warn("failed to load events", "error", err)
	}

	l.mu.Lock()
	l.news = news
	l.events = events
	l.mu.Unlock()

	slog.Info("news and events loaded", "news", len(news), "events", len(events))
	return nil
}

// LoadBlogFile loads a single blog post. The slug defaults to the file name.
func (l *Loader) LoadBlogFile(path string) error {
	var post client.BlogPost
	if err := readYAML(path, &post); err != nil {
		return err
	}

	if post.Slug == "" {
		post.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if post.Title == "" {
		return fmt.Errorf("title is required")
	}
	if post.Category == "" {
		post.Category = "General"
	}

	l.AddBlogPost(&post)
	return nil
}

// AddBlogPost programmatically adds or replaces a blog post
func (l *Loader) AddBlogPost(post *client.BlogPost) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.blogs[post.Slug]; !exists {
		l.order = append(l.order, post.Slug)
	}
	l.blogs[post.Slug] = post
}

// BlogPost returns the static post for slug, or nil
func (l *Loader) BlogPost(slug string) *client.BlogPost {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blogs[slug]
}

// BlogPosts returns all static posts in load order
func (l *Loader) BlogPosts() []client.BlogPost {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]client.BlogPost, 0, len(l.order))
	for _, slug := range l.order {
		result = append(result, *l.blogs[slug])
	}
	return result
}

// News returns the static news items
func (l *Loader) News() []NewsItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]NewsItem(nil), l.news...)
}

// Events returns the static event listings
func (l *Loader) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Event(nil), l.events...)
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", filepath.Base(path), err)
	}
	return nil
}
