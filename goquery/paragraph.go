// Package goquery extracts paragraph text from rendered notes using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lawcopy"
	"golang.org/x/net/html"
)

// ArtifactSelector matches decorations that are rendered into paragraphs but
// are not part of the note text: the copy button and hover previews.
const ArtifactSelector = ".law-copy-btn, .snw-block-preview, .snw-link-preview"

// Ensure ParagraphExtractor implements lawcopy.ParagraphExtractor at compile time.
var _ lawcopy.ParagraphExtractor = (*ParagraphExtractor)(nil)

// ParagraphExtractor returns the visible text of every <p> element.
type ParagraphExtractor struct {
	converter lawcopy.Converter
}

// Option configures a ParagraphExtractor.
type Option func(*ParagraphExtractor)

// WithConverter makes the extractor return each paragraph as Markdown, so
// inline markup such as bold survives.
func WithConverter(c lawcopy.Converter) Option {
	return func(e *ParagraphExtractor) {
		e.converter = c
	}
}

// NewParagraphExtractor creates a new ParagraphExtractor.
func NewParagraphExtractor(opts ...Option) *ParagraphExtractor {
	e := &ParagraphExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractParagraphs parses HTML and returns one string per paragraph in
// document order. Empty paragraphs are kept so indexes match the document.
func (e *ParagraphExtractor) ExtractParagraphs(htmlContent string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, lawcopy.Errorf(lawcopy.EINVALID, "failed to parse HTML: %v", err)
	}

	var paragraphs []string
	var extractErr error
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		// Work on a copy so the caller's document is never modified.
		clone := sel.Clone()
		clone.Find(ArtifactSelector).Remove()

		text, err := e.paragraphText(clone)
		if err != nil {
			extractErr = err
			return false
		}
		paragraphs = append(paragraphs, text)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return paragraphs, nil
}

func (e *ParagraphExtractor) paragraphText(sel *goquery.Selection) (string, error) {
	if e.converter == nil {
		return InnerText(sel), nil
	}

	inner, err := sel.Html()
	if err != nil {
		return "", lawcopy.Errorf(lawcopy.EINVALID, "failed to render paragraph: %v", err)
	}
	if strings.TrimSpace(inner) == "" {
		return "", nil
	}

	md, err := e.converter.Convert(inner)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// InnerText approximates the browser's innerText for a paragraph: whitespace
// runs collapse to one space, <br> becomes a newline, lines are trimmed.
func InnerText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
	}

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
		switch n.Data {
		case "br":
			sb.WriteByte('\n')
			return
		case "script", "style":
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
}

// collapseSpace replaces every run of ASCII whitespace with a single space.
// Non-breaking and ideographic spaces are content and stay.
func collapseSpace(s string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inSpace {
				sb.WriteByte(' ')
			}
			inSpace = true
		default:
			inSpace = false
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
