package content

import (
	"os"
	"path/filepath"
	"strings"
)

// WorkContent is a long-form write-up for one case study.
type WorkContent struct {
	Slug    string `json:"slug"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

// Writeups reads long-form work write-ups from per-slug markdown files.
type Writeups struct {
	dir string
}

// NewWriteups creates a reader over the given directory.
func NewWriteups(dir string) *Writeups {
	return &Writeups{dir: dir}
}

// Get reads the write-up for slug. Slugs carrying path separators or
// parent references are rejected before any file access.
func (w *Writeups) Get(slug string) (WorkContent, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return WorkContent{}, NewKind("content.writeup", ErrInvalidSlug, slug)
	}
	raw, err := os.ReadFile(filepath.Join(w.dir, slug+".md"))
	if err != nil {
		return WorkContent{}, NewKind("content.writeup", ErrNotFound, slug)
	}
	return WorkContent{Slug: slug, Format: "markdown", Content: string(raw)}, nil
}
