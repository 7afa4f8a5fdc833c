package mock

import (
	"context"

	"github.com/fwojciec/lawcopy"
)

var _ lawcopy.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of lawcopy.Clipboard.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}

var _ lawcopy.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of lawcopy.Notifier.
type Notifier struct {
	NotifyFn func(message string)
}

func (n *Notifier) Notify(message string) {
	n.NotifyFn(message)
}
