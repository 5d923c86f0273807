package posts

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stefanwaldhauser/blog/internal/logging"
	"github.com/stefanwaldhauser/blog/internal/markdown"
	"github.com/stefanwaldhauser/blog/pkg/interfaces"
)

// Config controls how the post index service discovers and parses files.
type Config struct {
	// ContentDir is the directory holding the post source files.
	ContentDir string
	// Pattern limits discovery to matching files (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// Parser holds default Markdown rendering options.
	Parser interfaces.ParseOptions
}

// LoadOptions provide call-specific overrides for a load pass.
type LoadOptions struct {
	// IncludeDrafts keeps posts marked draft in the index.
	IncludeDrafts bool
	// SkipRender leaves Post.BodyHTML empty.
	SkipRender bool
}

// Service builds the validated, ordered post index from a directory of
// Markdown files. The load pass is a stateless one-shot transform; every
// error is fatal so no partial index ever escapes.
type Service struct {
	cfg      Config
	loader   *markdown.Loader
	renderer interfaces.MarkdownRenderer
	logger   interfaces.Logger
	now      func() time.Time
}

// NewService constructs a post index service rooted at cfg.ContentDir. When
// renderer is nil, a goldmark renderer with the configured defaults is used.
func NewService(cfg Config, renderer interfaces.MarkdownRenderer, logger interfaces.Logger) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	return newService(filesystem, cfg, renderer, logger), nil
}

// NewServiceWithFS constructs a service over the supplied filesystem instead
// of cfg.ContentDir.
func NewServiceWithFS(filesystem fs.FS, cfg Config, renderer interfaces.MarkdownRenderer, logger interfaces.Logger) *Service {
	return newService(filesystem, cfg, renderer, logger)
}

func newService(filesystem fs.FS, cfg Config, renderer interfaces.MarkdownRenderer, logger interfaces.Logger) *Service {
	if renderer == nil {
		renderer = markdown.NewGoldmarkRenderer(cfg.Parser)
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	loader := markdown.NewLoader(filesystem, markdown.LoaderConfig{
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:      cfg,
		loader:   loader,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Load reads every post file under the content directory and produces the
// ordered index: date descending, ties broken by slug ascending. The sort is
// applied after loading so filesystem enumeration order never leaks into the
// published feed.
func (s *Service) Load(ctx context.Context, opts LoadOptions) (*Index, error) {
	s.logger.Debug("posts.load.start", "content_dir", s.cfg.ContentDir)

	docs, err := s.loader.LoadDirectory(ctx, ".")
	if err != nil {
		var parseErr *markdown.ParseError
		if errors.As(err, &parseErr) {
			return nil, &MalformedFrontMatterError{Path: parseErr.Path, Reason: parseErr.Err}
		}
		return nil, err
	}

	collection := make([]Post, 0, len(docs))
	seen := make(map[string]string, len(docs))
	drafts := 0

	for _, doc := range docs {
		post, err := s.buildPost(ctx, doc, opts)
		if err != nil {
			return nil, err
		}

		if post.Draft && !opts.IncludeDrafts {
			drafts++
			continue
		}

		if existing, ok := seen[post.Slug]; ok {
			return nil, &DuplicateSlugError{
				Slug:         post.Slug,
				Path:         post.SourcePath,
				ExistingPath: existing,
			}
		}
		seen[post.Slug] = post.SourcePath

		collection = append(collection, post)
	}

	sort.SliceStable(collection, func(i, j int) bool {
		if !collection[i].Date.Equal(collection[j].Date) {
			return collection[i].Date.After(collection[j].Date)
		}
		return collection[i].Slug < collection[j].Slug
	})

	index := &Index{
		BuildID:     uuid.New(),
		GeneratedAt: s.now().UTC(),
		Posts:       collection,
	}

	s.logger.Info("posts.load.completed",
		"build_id", index.BuildID,
		"post_count", len(collection),
		"draft_count", drafts,
	)

	return index, nil
}

func (s *Service) buildPost(ctx context.Context, doc *markdown.Document, opts LoadOptions) (Post, error) {
	meta := doc.FrontMatter

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return Post{}, &MissingFieldError{Path: doc.FilePath, Field: "title"}
	}

	rawDate := strings.TrimSpace(meta.Date)
	if rawDate == "" {
		return Post{}, &MissingFieldError{Path: doc.FilePath, Field: "date"}
	}
	date, err := parseDate(rawDate)
	if err != nil {
		return Post{}, &InvalidDateError{Path: doc.FilePath, Value: rawDate}
	}

	postSlug, err := DeriveSlug(doc.FilePath)
	if err != nil || postSlug == "" {
		return Post{}, &InvalidSlugError{Path: doc.FilePath, Slug: postSlug}
	}

	post := Post{
		Slug:         postSlug,
		Title:        title,
		Date:         date,
		Description:  meta.Description,
		Summary:      meta.Summary,
		Tags:         normalizeTags(meta.Tags),
		ShowToc:      meta.ShowToc,
		TocOpen:      meta.TocOpen,
		Draft:        meta.Draft,
		Body:         string(doc.Body),
		Checksum:     hex.EncodeToString(doc.Checksum),
		SourcePath:   doc.FilePath,
		LastModified: doc.LastModified,
		Custom:       meta.Custom,
	}

	if !opts.SkipRender {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Post{}, ctxErr
		}
		html, err := s.renderer.Render(doc.Body)
		if err != nil {
			return Post{}, fmt.Errorf("posts: render %s: %w", doc.FilePath, err)
		}
		post.BodyHTML = string(html)
	}

	logging.WithPostContext(s.logger, post.SourcePath, post.Slug, "load").Trace("posts.load.file")

	return post, nil
}

// dateLayouts enumerates the accepted calendar forms, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// normalizeTags collapses duplicates, drops empties, and sorts ascending so
// tag order never depends on the source file.
func normalizeTags(tags []string) []string {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		set[trimmed] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func prepareFilesystem(contentDir string) (fs.FS, error) {
	if strings.TrimSpace(contentDir) == "" {
		return nil, ErrContentDirRequired
	}
	if _, err := os.Stat(contentDir); err != nil {
		return nil, fmt.Errorf("posts: stat content dir %s: %w", contentDir, err)
	}
	return os.DirFS(contentDir), nil
}
