// Package clipboard writes copied articles to the system clipboard using
// atotto/clipboard.
package clipboard

import (
	"context"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/lawcopy"
)

// Ensure Clipboard implements lawcopy.Clipboard at compile time.
var _ lawcopy.Clipboard = (*Clipboard)(nil)

// Clipboard writes to the system clipboard.
type Clipboard struct {
	write func(text string) error
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithWriteFunc replaces the system clipboard call, for tests.
func WithWriteFunc(fn func(text string) error) Option {
	return func(c *Clipboard) {
		c.write = fn
	}
}

// NewClipboard creates a new Clipboard.
func NewClipboard(opts ...Option) *Clipboard {
	c := &Clipboard{write: clipboard.WriteAll}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Supported reports whether a system clipboard utility is available.
func Supported() bool {
	return !clipboard.Unsupported
}

// WriteText places text on the clipboard.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Ensure WriterClipboard implements lawcopy.Clipboard at compile time.
var _ lawcopy.Clipboard = (*WriterClipboard)(nil)

// WriterClipboard writes copied text to an io.Writer, one article per write
// followed by a newline. It stands in for the system clipboard when output
// should go to a terminal or pipe.
type WriterClipboard struct {
	w io.Writer
}

// NewWriterClipboard creates a new WriterClipboard.
func NewWriterClipboard(w io.Writer) *WriterClipboard {
	return &WriterClipboard{w: w}
}

// WriteText writes text and a trailing newline.
func (c *WriterClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(c.w, text+"\n")
	return err
}
