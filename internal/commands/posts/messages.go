package postscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const buildIndexMessageType = "blog.posts.build_index"

// Output formats accepted by the build-index command.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// BuildIndexCommand triggers a full load pass over the configured content
// directory and emits the resulting index. The command mirrors
// posts.Service.Load semantics: any file error aborts the pass and nothing
// is written.
type BuildIndexCommand struct {
	// Output selects the file the encoded index is written to. Empty writes
	// to the handler's default writer (stdout in the CLI).
	Output string `json:"output,omitempty"`
	// Format selects the index encoding, json (default) or yaml.
	Format string `json:"format,omitempty"`
	// IncludeDrafts keeps draft posts in the emitted index.
	IncludeDrafts bool `json:"include_drafts,omitempty"`
	// SkipRender omits rendered HTML bodies from the index.
	SkipRender bool `json:"skip_render,omitempty"`
}

// Type implements command.Message.
func (BuildIndexCommand) Type() string { return buildIndexMessageType }

// Validate rejects unknown output formats before the handler executes.
func (cmd BuildIndexCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Format, validation.By(func(value any) error {
			switch strings.ToLower(strings.TrimSpace(value.(string))) {
			case "", FormatJSON, FormatYAML:
				return nil
			default:
				return validation.NewError("blog.posts.build_index.format_invalid", "format must be json or yaml")
			}
		})),
	)
}
