// Package htmltomarkdown converts rendered paragraph HTML back to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/lawcopy"
)

// Ensure Converter implements lawcopy.Converter at compile time.
var _ lawcopy.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert paragraph HTML to Markdown.
//
// Escaping is disabled: article numbering such as "1. " or "1、" must reach
// the heading classifier as written, not as "1\. ".
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithStrongDelimiter("**"),
			),
		),
		converter.WithEscapeMode(converter.EscapeModeDisabled),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into trimmed Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", lawcopy.Errorf(lawcopy.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
