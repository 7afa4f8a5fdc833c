package lawcopy

import "context"

// Copier copies articles to a Clipboard and reports the outcome through a
// Notifier.
type Copier struct {
	Clipboard Clipboard
	Notifier  Notifier
}

// Copy extracts the article starting at index and writes it to the
// clipboard. Only heading paragraphs can be copied. A failed clipboard write
// is reported to the user and returned as EINTERNAL.
func (c *Copier) Copy(ctx context.Context, paragraphs []string, index int) (*Article, error) {
	if !IsHeadingStart(paragraphs, index) {
		return nil, Errorf(EINVALID, "paragraph %d is not an article heading", index)
	}

	lines, err := ExtractSpan(paragraphs, index)
	if err != nil {
		return nil, err
	}
	article := &Article{Index: index, Kind: classify(paragraphs[index]), Lines: lines}

	if err := c.Clipboard.WriteText(ctx, article.Text()); err != nil {
		c.notify(MsgCopyFailed)
		return nil, Errorf(EINTERNAL, "clipboard write failed: %v", err)
	}

	c.notify(MsgCopied)
	return article, nil
}

func (c *Copier) notify(msg string) {
	if c.Notifier != nil {
		c.Notifier.Notify(msg)
	}
}
