package posts

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Post is one article: front-matter metadata plus the raw Markdown body.
// A Post is constructed once per load pass and never mutated afterwards;
// the next pass rebuilds the collection wholesale.
type Post struct {
	// Slug identifies the post, derived from its file name. Unique across
	// the collection.
	Slug string `json:"slug" yaml:"slug"`
	// Title is required, non-empty front matter.
	Title string `json:"title" yaml:"title"`
	// Date orders the feed (most recent first).
	Date time.Time `json:"date" yaml:"date"`
	// Description and Summary are optional; empty when the source omits them.
	Description string `json:"description" yaml:"description"`
	Summary     string `json:"summary" yaml:"summary"`
	// Tags is never nil: deduplicated and sorted ascending for determinism.
	Tags []string `json:"tags" yaml:"tags"`
	// ShowToc and TocOpen are display flags for the downstream renderer.
	ShowToc bool `json:"show_toc" yaml:"show_toc"`
	TocOpen bool `json:"toc_open" yaml:"toc_open"`
	// Draft posts are excluded from the index unless explicitly requested.
	Draft bool `json:"draft,omitempty" yaml:"draft,omitempty"`
	// Body is the Markdown source after the closing front-matter delimiter,
	// verbatim. Fenced code blocks and their annotations are opaque here.
	Body string `json:"body" yaml:"body"`
	// BodyHTML is the rendered body; empty when rendering was skipped.
	BodyHTML string `json:"body_html,omitempty" yaml:"body_html,omitempty"`
	// Checksum is the hex SHA-256 of the source file, for change detection
	// in the publishing pipeline.
	Checksum string `json:"checksum" yaml:"checksum"`
	// SourcePath is the file the post was loaded from, relative to the
	// content directory.
	SourcePath string `json:"source_path" yaml:"source_path"`
	// LastModified is the source file's modification time.
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
	// Custom retains unrecognized front-matter keys.
	Custom map[string]any `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Index is the validated, deterministically ordered post collection handed
// to the rendering collaborator.
type Index struct {
	// BuildID correlates an emitted index with the log entries of the load
	// pass that produced it.
	BuildID uuid.UUID `json:"build_id" yaml:"build_id"`
	// GeneratedAt records when the load pass ran.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	// Posts is sorted by date descending, ties broken by slug ascending.
	Posts []Post `json:"posts" yaml:"posts"`
}

// Len reports the number of posts in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.Posts)
}

// Lookup returns the post with the given slug.
func (idx *Index) Lookup(slug string) (Post, bool) {
	if idx == nil {
		return Post{}, false
	}
	for _, post := range idx.Posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return Post{}, false
}

// Tags groups posts by tag, preserving the index ordering within each group.
// Map iteration order is up to the caller; TagNames supplies a sorted view.
func (idx *Index) Tags() map[string][]Post {
	grouped := map[string][]Post{}
	if idx == nil {
		return grouped
	}
	for _, post := range idx.Posts {
		for _, tag := range post.Tags {
			grouped[tag] = append(grouped[tag], post)
		}
	}
	return grouped
}

// TagNames returns every tag used by the collection, sorted ascending.
func (idx *Index) TagNames() []string {
	grouped := idx.Tags()
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
