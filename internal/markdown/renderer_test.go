package markdown

import (
	"strings"
	"testing"

	"github.com/stefanwaldhauser/blog/pkg/interfaces"
)

func TestGoldmarkRenderer(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{})

	html, err := renderer.Render([]byte("# Heading\n\nSome *text*.\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<h1") {
		t.Fatalf("expected heading in output: %s", html)
	}
	if !strings.Contains(string(html), "<em>text</em>") {
		t.Fatalf("expected emphasis in output: %s", html)
	}
}

func TestGoldmarkRenderer_GFMTable(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{})

	source := "| a | b |\n| - | - |\n| 1 | 2 |\n"
	html, err := renderer.Render([]byte(source))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<table>") {
		t.Fatalf("expected GFM table in output: %s", html)
	}
}

func TestGoldmarkRenderer_FencedCodePassthrough(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{})

	source := "```go\nfmt.Println(\"hi\")\n```\n"
	html, err := renderer.Render([]byte(source))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<code") || !strings.Contains(string(html), "fmt.Println") {
		t.Fatalf("expected fenced block in output: %s", html)
	}
}

func TestGoldmarkRenderer_SafeMode(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{SafeMode: true})

	html, err := renderer.Render([]byte("before\n\n<script>alert(1)</script>\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("raw HTML leaked in safe mode: %s", html)
	}
}

func TestGoldmarkRenderer_UnknownExtensionIgnored(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{Extensions: []string{"table", "bogus"}})

	if _, err := renderer.Render([]byte("plain text")); err != nil {
		t.Fatalf("Render with unknown extension: %v", err)
	}
}
