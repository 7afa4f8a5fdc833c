// Package goldmark renders Markdown notes to HTML using goldmark.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/lawcopy"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements lawcopy.Renderer at compile time.
var _ lawcopy.Renderer = (*Renderer)(nil)

// Renderer renders notes the way a note viewer does: single newlines inside
// a paragraph become line breaks and inline HTML is passed through.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Render converts Markdown source to HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", lawcopy.Errorf(lawcopy.EINVALID, "failed to render markdown: %v", err)
	}
	return buf.String(), nil
}
