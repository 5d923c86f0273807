package blog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrContentDirRequired      = errors.New("blog config: content directory is required")
	ErrLoggingProviderRequired = errors.New("blog config: logging provider is required")
	ErrLoggingProviderUnknown  = errors.New("blog config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("blog config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("blog config: logging format is invalid")
)

// Config is the root runtime configuration for the blog module.
type Config struct {
	Content  ContentConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
}

// ContentConfig locates the post source files.
type ContentConfig struct {
	// Dir is the directory scanned for post files.
	Dir string
	// Pattern limits discovery to matching files (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// MarkdownConfig holds rendering options.
type MarkdownConfig struct {
	Parser ParserConfig
}

// ParserConfig mirrors the renderer's parse options.
type ParserConfig struct {
	// Extensions selects goldmark extensions by name.
	Extensions []string
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// SafeMode suppresses raw HTML in rendered output.
	SafeMode bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	// Provider selects the logging backend: gologger or noop.
	Provider string
	// Level is the minimum level emitted (trace..fatal).
	Level string
	// Format selects the gologger output format: json, console, or pretty.
	Format string
	// AddSource annotates entries with caller information.
	AddSource bool
}

// DefaultConfig returns the configuration used when the host supplies
// nothing: the repository's content tree, recursive discovery, and console
// logging at info level.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content/posts",
			Pattern:   "*.md",
			Recursive: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate checks cross-field constraints before the module boots.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	switch provider {
	case "gologger", "noop":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}

	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}

	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "json", "console", "pretty":
		return true
	}
	return false
}
