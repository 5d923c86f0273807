package logging

import (
	"context"
	"testing"

	"github.com/stefanwaldhauser/blog/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "blog.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	// Ensure chained calls do not panic.
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	PostsLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != postsModule {
		t.Fatalf("expected module %s requested, got %v", postsModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != postsModule {
		t.Fatalf("expected module field annotation, got %#v", rec.fields)
	}
}

func TestWithPostContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	WithPostContext(rec, "posts/a.md", "", "load")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one field set, got %#v", rec.fields)
	}
	fields := rec.fields[0]
	if fields[fieldPostPath] != "posts/a.md" || fields[fieldAction] != "load" {
		t.Fatalf("unexpected fields: %#v", fields)
	}
	if _, ok := fields[fieldPostSlug]; ok {
		t.Fatalf("empty slug should be omitted: %#v", fields)
	}
}

func TestWithFieldsNilSafety(t *testing.T) {
	if got := WithFields(nil, map[string]any{"a": 1}); got != nil {
		t.Fatalf("expected nil logger passthrough, got %T", got)
	}
	rec := &recordingLogger{}
	if got := WithFields(rec, nil); got != rec {
		t.Fatalf("expected same logger for empty fields")
	}
}
