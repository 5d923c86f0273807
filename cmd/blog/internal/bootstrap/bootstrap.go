// Package bootstrap shares module wiring between the blog CLI entry points.
package bootstrap

import (
	"fmt"
	"strings"

	blog "github.com/stefanwaldhauser/blog"
	postscmd "github.com/stefanwaldhauser/blog/internal/commands/posts"
	"github.com/stefanwaldhauser/blog/pkg/interfaces"
)

// Options collect the flag values the CLIs translate into a blog.Config.
type Options struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	LogLevel   string
	LogFormat  string
	Quiet      bool
}

// Module bundles the services a CLI entry point needs. Posts is
// interface-typed so tests can substitute a stub.
type Module struct {
	Posts  postscmd.IndexService
	Logger interfaces.Logger
}

// BuildModule turns CLI options into a ready module.
func BuildModule(opts Options) (*Module, error) {
	cfg := blog.DefaultConfig()

	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.Content.Dir = dir
	}
	if pattern := strings.TrimSpace(opts.Pattern); pattern != "" {
		cfg.Content.Pattern = pattern
	}
	cfg.Content.Recursive = opts.Recursive

	if opts.Quiet {
		cfg.Logging.Provider = "noop"
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	module, err := blog.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build blog module: %w", err)
	}

	return &Module{
		Posts:  module.Posts(),
		Logger: module.CommandsLogger(),
	}, nil
}
