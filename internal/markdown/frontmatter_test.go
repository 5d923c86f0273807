package markdown

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Post" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Date != "2024-05-05" {
		t.Fatalf("FrontMatter Date mismatch, got %q", fm.Date)
	}
	if fm.Description != "A short sample." {
		t.Fatalf("FrontMatter Description mismatch, got %q", fm.Description)
	}
	if fm.Summary != "Sample summary goes here" {
		t.Fatalf("FrontMatter Summary mismatch, got %q", fm.Summary)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "aws" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if !fm.ShowToc || fm.TocOpen {
		t.Fatalf("FrontMatter toc flags mismatch: ShowToc=%v TocOpen=%v", fm.ShowToc, fm.TocOpen)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Sample Post") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatter_OptionalFieldsDefault(t *testing.T) {
	source := []byte("---\ntitle: \"Bare\"\ndate: \"2024-05-05\"\n---\nBody.\n")

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Description != "" || fm.Summary != "" {
		t.Fatalf("expected empty optional strings, got %q / %q", fm.Description, fm.Summary)
	}
	if fm.ShowToc || fm.TocOpen || fm.Draft {
		t.Fatalf("expected boolean flags to default false")
	}
	if fm.Tags != nil {
		t.Fatalf("expected absent tags to stay nil at envelope level, got %#v", fm.Tags)
	}
	if fm.Custom == nil {
		t.Fatalf("expected Custom map to be initialised")
	}
}

func TestParseFrontMatter_MissingBlock(t *testing.T) {
	data := readFixture(t, "testdata/none.md")

	_, _, err := ParseFrontMatter(data)
	if !errors.Is(err, ErrNoFrontMatter) {
		t.Fatalf("expected ErrNoFrontMatter, got %v", err)
	}
}

func TestParseFrontMatter_UndecodableBlock(t *testing.T) {
	data := readFixture(t, "testdata/malformed.md")

	_, _, err := ParseFrontMatter(data)
	if err == nil {
		t.Fatalf("expected error for malformed front matter")
	}
	if errors.Is(err, ErrNoFrontMatter) {
		t.Fatalf("expected a decode error, got ErrNoFrontMatter")
	}
}

func readFixture(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}
