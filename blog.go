// Package blog turns this repository's Markdown articles into a validated,
// deterministically ordered post index for a downstream static-site
// renderer.
package blog

import (
	"strings"

	"github.com/stefanwaldhauser/blog/internal/logging"
	"github.com/stefanwaldhauser/blog/internal/logging/gologger"
	"github.com/stefanwaldhauser/blog/internal/markdown"
	"github.com/stefanwaldhauser/blog/pkg/interfaces"
	"github.com/stefanwaldhauser/blog/posts"
)

// PostService exports the post index service contract for consumers of the
// blog package.
type PostService = posts.Service

// Post exports the post record type.
type Post = posts.Post

// Index exports the ordered post collection type.
type Index = posts.Index

// Module is the top level blog runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	renderer interfaces.MarkdownRenderer
	posts    *posts.Service
}

// New constructs a blog module using the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := buildLoggerProvider(cfg.Logging)
	if err != nil {
		return nil, err
	}

	parser := interfaces.ParseOptions{
		Extensions: cfg.Markdown.Parser.Extensions,
		HardWraps:  cfg.Markdown.Parser.HardWraps,
		SafeMode:   cfg.Markdown.Parser.SafeMode,
	}
	renderer := markdown.NewGoldmarkRenderer(parser)

	service, err := posts.NewService(posts.Config{
		ContentDir: cfg.Content.Dir,
		Pattern:    cfg.Content.Pattern,
		Recursive:  cfg.Content.Recursive,
		Parser:     parser,
	}, renderer, logging.PostsLogger(provider))
	if err != nil {
		return nil, err
	}

	return &Module{
		cfg:      cfg,
		provider: provider,
		renderer: renderer,
		posts:    service,
	}, nil
}

// Posts returns the configured post index service.
func (m *Module) Posts() *PostService {
	return m.posts
}

// Renderer returns the configured Markdown renderer.
func (m *Module) Renderer() interfaces.MarkdownRenderer {
	return m.renderer
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	if m == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(m.provider, name)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func (m *Module) CommandsLogger() interfaces.Logger {
	if m == nil {
		return logging.NoOp()
	}
	return logging.CommandsLogger(m.provider)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		// Validate already rejected unknown providers; noop lands here.
		return nil, nil
	}
}
