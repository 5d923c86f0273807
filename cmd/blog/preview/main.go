package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stefanwaldhauser/blog/cmd/blog/internal/bootstrap"
	"github.com/stefanwaldhauser/blog/posts"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("blog preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("blog-preview", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content/posts", "Path to the post content root")
	slug := fs.String("slug", "", "Slug of the post to render")
	includeDrafts := fs.Bool("include-drafts", true, "Allow previewing draft posts")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *slug == "" {
		return fmt.Errorf("slug is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Recursive:  true,
		Quiet:      true,
	})
	if err != nil {
		return err
	}

	index, err := module.Posts.Load(context.Background(), posts.LoadOptions{
		IncludeDrafts: *includeDrafts,
	})
	if err != nil {
		return err
	}

	post, ok := index.Lookup(*slug)
	if !ok {
		return fmt.Errorf("no post with slug %q", *slug)
	}

	fmt.Fprintln(os.Stdout, post.BodyHTML)
	return nil
}
