package postscmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/stefanwaldhauser/blog/posts"
)

type stubIndexService struct {
	index *posts.Index
	err   error
	opts  posts.LoadOptions
}

func (s *stubIndexService) Load(_ context.Context, opts posts.LoadOptions) (*posts.Index, error) {
	s.opts = opts
	return s.index, s.err
}

func stubIndex() *posts.Index {
	return &posts.Index{
		BuildID:     uuid.New(),
		GeneratedAt: time.Date(2024, 5, 13, 12, 0, 0, 0, time.UTC),
		Posts: []posts.Post{
			{Slug: "b", Title: "Newer", Date: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), Tags: []string{}},
			{Slug: "a", Title: "Older", Date: time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), Tags: []string{"AWS"}},
		},
	}
}

func TestBuildIndexHandler_WritesJSONToDefaultWriter(t *testing.T) {
	stub := &stubIndexService{index: stubIndex()}
	var out bytes.Buffer

	handler := NewBuildIndexHandler(stub, nil, &out)
	if err := handler.Execute(context.Background(), BuildIndexCommand{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var decoded posts.Index
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded.Posts) != 2 || decoded.Posts[0].Slug != "b" {
		t.Fatalf("unexpected index payload: %#v", decoded.Posts)
	}
}

func TestBuildIndexHandler_WritesYAMLToFile(t *testing.T) {
	stub := &stubIndexService{index: stubIndex()}
	output := filepath.Join(t.TempDir(), "index.yaml")

	handler := NewBuildIndexHandler(stub, nil, nil)
	cmd := BuildIndexCommand{Output: output, Format: FormatYAML}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	var decoded struct {
		Posts []struct {
			Slug string `yaml:"slug"`
		} `yaml:"posts"`
	}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode yaml output: %v", err)
	}
	if len(decoded.Posts) != 2 || decoded.Posts[0].Slug != "b" {
		t.Fatalf("unexpected yaml payload: %#v", decoded.Posts)
	}
}

func TestBuildIndexHandler_ForwardsLoadOptions(t *testing.T) {
	stub := &stubIndexService{index: stubIndex()}

	handler := NewBuildIndexHandler(stub, nil, &bytes.Buffer{})
	cmd := BuildIndexCommand{IncludeDrafts: true, SkipRender: true}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !stub.opts.IncludeDrafts || !stub.opts.SkipRender {
		t.Fatalf("load options not forwarded: %#v", stub.opts)
	}
}

func TestBuildIndexCommand_RejectsUnknownFormat(t *testing.T) {
	stub := &stubIndexService{index: stubIndex()}

	handler := NewBuildIndexHandler(stub, nil, &bytes.Buffer{})
	err := handler.Execute(context.Background(), BuildIndexCommand{Format: "xml"})
	if err == nil {
		t.Fatalf("expected validation failure for unknown format")
	}
}

func TestBuildIndexCommand_ValidateNamesFormat(t *testing.T) {
	err := BuildIndexCommand{Format: "xml"}.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "format") {
		t.Fatalf("expected format in error, got %v", err)
	}
}

func TestEncodeIndex_DefaultsToJSON(t *testing.T) {
	encoded, err := EncodeIndex(stubIndex(), "")
	if err != nil {
		t.Fatalf("EncodeIndex: %v", err)
	}
	if !json.Valid(encoded) {
		t.Fatalf("expected valid JSON, got %q", encoded)
	}
}
