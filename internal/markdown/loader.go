package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// LoaderConfig configures how post files are discovered within a base directory.
type LoaderConfig struct {
	// Pattern limits discovered files to those matching the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Loader turns filesystem paths into parsed documents.
type Loader struct {
	fs        fs.FS
	pattern   string
	recursive bool
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads and parses a single post file. Front-matter failures are
// returned as *ParseError so callers can recover the offending path.
func (l *Loader) LoadFile(ctx context.Context, name string) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	name = path.Clean(filepath.ToSlash(name))

	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", name, err)
	}

	info, err := fs.Stat(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", name, err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	sum := sha256.Sum256(data)

	return &Document{
		FilePath:     name,
		FrontMatter:  meta,
		Body:         body,
		Checksum:     sum[:],
		LastModified: info.ModTime(),
	}, nil
}

// LoadDirectory discovers post files under dir and returns parsed documents
// ordered by file path, independent of filesystem enumeration order. Any
// file failure aborts the whole pass.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root := path.Clean(filepath.ToSlash(dir))

	var docs []*Document

	walkErr := fs.WalkDir(l.fs, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if p != root && !l.recursive {
				return fs.SkipDir
			}
			if skipName(d.Name()) && p != root {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if skipName(d.Name()) || !l.matchesPattern(p) {
			return nil
		}

		doc, err := l.LoadFile(ctx, p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})

	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})

	return docs, nil
}

func (l *Loader) matchesPattern(p string) bool {
	pattern := filepath.ToSlash(l.pattern)
	var target string
	if strings.Contains(pattern, "/") {
		target = p
	} else {
		target = path.Base(p)
	}
	match, err := path.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

// skipName hides editor and tooling artifacts (dot and underscore prefixes)
// from discovery.
func skipName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
