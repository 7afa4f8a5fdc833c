package main

import (
	"fmt"

	"github.com/fwojciec/lawcopy"
	"github.com/fwojciec/lawcopy/clipboard"
)

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	whitelist, err := loadWhitelist(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	_, paragraphs, err := loadParagraphs(deps, whitelist, c.Note)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		return err
	}

	copier := &lawcopy.Copier{
		Clipboard: deps.Clipboard,
		Notifier:  deps.Notifier,
	}
	if c.Stdout {
		copier = &lawcopy.Copier{Clipboard: clipboard.NewWriterClipboard(deps.Stdout)}
	}

	article, err := copier.Copy(deps.Ctx, paragraphs, c.Index)
	if err != nil {
		if lawcopy.ErrorCode(err) != lawcopy.EINTERNAL {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lawcopy.ErrorMessage(err))
		} else if !clipboard.Supported() {
			fmt.Fprintln(deps.Stderr, "Hint: install xclip, xsel or wl-clipboard, or use --stdout")
		}
		return err
	}

	deps.Logger.Debug("article copied",
		"index", article.Index,
		"kind", article.Kind.String(),
		"lines", len(article.Lines),
	)
	return nil
}
