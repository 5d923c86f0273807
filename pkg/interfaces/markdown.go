package interfaces

// ParseOptions tune Markdown rendering behaviour.
type ParseOptions struct {
	// Extensions selects goldmark extensions by name (defaults to the GFM set).
	Extensions []string
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// SafeMode suppresses raw HTML in the output.
	SafeMode bool
}

// MarkdownRenderer converts Markdown source into HTML.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
	RenderWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}
