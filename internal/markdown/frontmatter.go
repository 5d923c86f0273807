package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrNoFrontMatter reports a source file without a recognizable front-matter
// block (missing or unterminated delimiters).
var ErrNoFrontMatter = errors.New("markdown: front matter block not found")

// FrontMatter is the raw metadata envelope decoded from a post file. Date is
// kept as the source string so callers own calendar validation and can
// surface their own error types. Custom retains unrecognized keys for
// forward compatibility.
type FrontMatter struct {
	Title       string         `yaml:"title"`
	Date        string         `yaml:"date"`
	Description string         `yaml:"description"`
	Summary     string         `yaml:"summary"`
	Tags        []string       `yaml:"tags"`
	ShowToc     bool           `yaml:"ShowToc"`
	TocOpen     bool           `yaml:"TocOpen"`
	Draft       bool           `yaml:"draft"`
	Custom      map[string]any `yaml:",inline"`
}

// Document is one parsed content file: the metadata envelope plus the raw
// Markdown body after the closing delimiter, passed through verbatim.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	Checksum     []byte
	LastModified time.Time
}

// ParseError carries the offending file path alongside the underlying
// front-matter failure so callers can map it to their own error kinds.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markdown parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFrontMatter extracts the metadata envelope and Markdown body from the
// provided source bytes. A file without a front-matter block fails with
// ErrNoFrontMatter; an undecodable block surfaces the YAML error.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.MustParse(reader, &meta)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return FrontMatter{}, nil, ErrNoFrontMatter
		}
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}

	return meta, body, nil
}
