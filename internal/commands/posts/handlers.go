package postscmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	command "github.com/goliatone/go-command"
	"gopkg.in/yaml.v3"

	"github.com/stefanwaldhauser/blog/internal/commands"
	"github.com/stefanwaldhauser/blog/internal/logging"
	"github.com/stefanwaldhauser/blog/pkg/interfaces"
	"github.com/stefanwaldhauser/blog/posts"
)

const buildIndexOperation = "posts.build_index"

var _ command.Commander[BuildIndexCommand] = (*BuildIndexHandler)(nil)

// IndexService is the slice of posts.Service the handler depends on.
type IndexService interface {
	Load(ctx context.Context, opts posts.LoadOptions) (*posts.Index, error)
}

// BuildIndexHandler orchestrates index builds via the shared command handler
// foundation.
type BuildIndexHandler struct {
	inner *commands.Handler[BuildIndexCommand]
}

// NewBuildIndexHandler creates a handler bound to the supplied post index
// service. Encoded output goes to out when the command names no output file;
// a nil out falls back to stdout.
func NewBuildIndexHandler(service IndexService, logger interfaces.Logger, out io.Writer, opts ...commands.HandlerOption[BuildIndexCommand]) *BuildIndexHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if out == nil {
		out = os.Stdout
	}

	exec := func(ctx context.Context, msg BuildIndexCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		index, err := service.Load(ctx, posts.LoadOptions{
			IncludeDrafts: msg.IncludeDrafts,
			SkipRender:    msg.SkipRender,
		})
		if err != nil {
			return err
		}

		encoded, err := EncodeIndex(index, msg.Format)
		if err != nil {
			return err
		}

		if output := strings.TrimSpace(msg.Output); output != "" {
			if err := os.WriteFile(output, encoded, 0o644); err != nil {
				return fmt.Errorf("write index %s: %w", output, err)
			}
		} else if _, err := out.Write(encoded); err != nil {
			return fmt.Errorf("write index: %w", err)
		}

		logging.WithFields(baseLogger, map[string]any{
			"build_id":   index.BuildID,
			"post_count": index.Len(),
			"format":     normalizeFormat(msg.Format),
			"output":     msg.Output,
		}).Info("posts.command.build_index.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildIndexCommand]{
		commands.WithLogger[BuildIndexCommand](baseLogger),
		commands.WithOperation[BuildIndexCommand](buildIndexOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildIndexHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute implements command.Commander[BuildIndexCommand].
func (h *BuildIndexHandler) Execute(ctx context.Context, msg BuildIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}

// EncodeIndex serializes the index in the requested format, defaulting to
// indented JSON.
func EncodeIndex(index *posts.Index, format string) ([]byte, error) {
	switch normalizeFormat(format) {
	case FormatYAML:
		encoded, err := yaml.Marshal(index)
		if err != nil {
			return nil, fmt.Errorf("encode index yaml: %w", err)
		}
		return encoded, nil
	case FormatJSON:
		encoded, err := json.MarshalIndent(index, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode index json: %w", err)
		}
		return append(encoded, '\n'), nil
	default:
		return nil, fmt.Errorf("encode index: unsupported format %q", format)
	}
}

func normalizeFormat(format string) string {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		return FormatJSON
	}
	return normalized
}
