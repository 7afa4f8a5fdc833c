package lawcopy

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}

// Renderer renders a note's Markdown source to HTML, standing in for the
// host's reading view.
type Renderer interface {
	Render(markdown string) (string, error)
}

// ParagraphExtractor returns the visible text of every paragraph of a
// rendered note, in document order, with UI decorations removed.
type ParagraphExtractor interface {
	ExtractParagraphs(html string) ([]string, error)
}
