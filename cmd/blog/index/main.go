package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/stefanwaldhauser/blog/cmd/blog/internal/bootstrap"
	postscmd "github.com/stefanwaldhauser/blog/internal/commands/posts"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runIndex(os.Args[1:]); err != nil {
		log.Fatalf("blog index: %v", err)
	}
}

func runIndex(args []string) error {
	fs := flag.NewFlagSet("blog-index", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content/posts", "Path to the post content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering post files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories of the content root")
	output := fs.String("output", "", "File the encoded index is written to (stdout when empty)")
	format := fs.String("format", "json", "Index encoding: json or yaml")
	includeDrafts := fs.Bool("include-drafts", false, "Keep draft posts in the emitted index")
	skipRender := fs.Bool("skip-render", false, "Omit rendered HTML bodies from the index")
	logLevel := fs.String("log-level", "info", "Minimum log level")
	logFormat := fs.String("log-format", "console", "Log output format: json, console, or pretty")
	quiet := fs.Bool("quiet", false, "Disable logging entirely")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  *recursive,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
		Quiet:      *quiet,
	})
	if err != nil {
		return err
	}

	handler := postscmd.NewBuildIndexHandler(module.Posts, module.Logger, os.Stdout)
	cmd := postscmd.BuildIndexCommand{
		Output:        *output,
		Format:        *format,
		IncludeDrafts: *includeDrafts,
		SkipRender:    *skipRender,
	}

	return handler.Execute(context.Background(), cmd)
}
