package posts

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField         = errors.New("posts: required front matter field is missing")
	ErrInvalidDate          = errors.New("posts: date field does not parse as a calendar date")
	ErrDuplicateSlug        = errors.New("posts: two source files resolve to the same slug")
	ErrMalformedFrontMatter = errors.New("posts: front matter block is missing or unparsable")
	ErrSlugInvalid          = errors.New("posts: derived slug contains invalid characters")
	ErrContentDirRequired   = errors.New("posts: content directory is required")
)

// MissingFieldError reports a required front-matter field absent from a
// source file.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	if e == nil {
		return ErrMissingField.Error()
	}
	return fmt.Sprintf("%s: field=%s file=%s", ErrMissingField.Error(), e.Field, e.Path)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// InvalidDateError reports a date value that failed calendar parsing.
type InvalidDateError struct {
	Path  string
	Value string
}

func (e *InvalidDateError) Error() string {
	if e == nil {
		return ErrInvalidDate.Error()
	}
	return fmt.Sprintf("%s: value=%q file=%s", ErrInvalidDate.Error(), e.Value, e.Path)
}

func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// DuplicateSlugError reports two source files mapping to one slug. The load
// pass aborts; no partial index is produced.
type DuplicateSlugError struct {
	Slug         string
	Path         string
	ExistingPath string
}

func (e *DuplicateSlugError) Error() string {
	if e == nil {
		return ErrDuplicateSlug.Error()
	}
	return fmt.Sprintf("%s: slug=%s file=%s conflicts_with=%s", ErrDuplicateSlug.Error(), e.Slug, e.Path, e.ExistingPath)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// MalformedFrontMatterError reports a file whose front-matter block is
// missing, unterminated, or undecodable.
type MalformedFrontMatterError struct {
	Path   string
	Reason error
}

func (e *MalformedFrontMatterError) Error() string {
	if e == nil {
		return ErrMalformedFrontMatter.Error()
	}
	if e.Reason != nil {
		return fmt.Sprintf("%s: file=%s: %v", ErrMalformedFrontMatter.Error(), e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: file=%s", ErrMalformedFrontMatter.Error(), e.Path)
}

func (e *MalformedFrontMatterError) Unwrap() error {
	return ErrMalformedFrontMatter
}

// InvalidSlugError reports a file name that normalizes to an unusable slug.
type InvalidSlugError struct {
	Path string
	Slug string
}

func (e *InvalidSlugError) Error() string {
	if e == nil {
		return ErrSlugInvalid.Error()
	}
	return fmt.Sprintf("%s: slug=%q file=%s", ErrSlugInvalid.Error(), e.Slug, e.Path)
}

func (e *InvalidSlugError) Unwrap() error {
	return ErrSlugInvalid
}
