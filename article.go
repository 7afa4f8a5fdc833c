package lawcopy

import (
	"regexp"
	"strings"
)

// Glyphs the copy action places in front of a heading paragraph.
const (
	CopyGlyph   = "📋"
	CopiedGlyph = "✅"
)

// blockRefRe matches a trailing block reference such as " ^abc123".
var blockRefRe = regexp.MustCompile(`[\s\p{Zs}]*\^[a-zA-Z0-9_-]+$`)

// Article is a contiguous run of paragraphs starting at a heading.
type Article struct {
	// Index is the position of the heading paragraph in the document.
	Index int         `json:"index"`
	Kind  HeadingKind `json:"kind"`

	// Lines holds the cleaned paragraph texts, heading first.
	Lines []string `json:"lines"`
}

// Title returns the cleaned heading paragraph.
func (a *Article) Title() string {
	if len(a.Lines) == 0 {
		return ""
	}
	return a.Lines[0]
}

// Text returns the article as it is placed on the clipboard.
func (a *Article) Text() string {
	return JoinSpan(a.Lines)
}

// JoinSpan joins cleaned lines one per line.
func JoinSpan(lines []string) string {
	return strings.Join(lines, "\n")
}

// IsHeadingStart reports whether the paragraph at index opens an article.
// An index outside paragraphs is never a heading.
func IsHeadingStart(paragraphs []string, index int) bool {
	if index < 0 || index >= len(paragraphs) {
		return false
	}
	return classify(paragraphs[index]) != HeadingNone
}

// ExtractSpan returns the cleaned paragraphs of the article starting at
// startIndex. The scan stops before the next paragraph of any heading kind,
// or at the end of paragraphs. Empty cleaned lines are kept.
//
// startIndex is not required to be a heading itself; callers that only offer
// extraction on headings should check IsHeadingStart first.
func ExtractSpan(paragraphs []string, startIndex int) ([]string, error) {
	if startIndex < 0 || startIndex >= len(paragraphs) {
		return nil, Errorf(EINVALID, "paragraph index %d out of range [0, %d)", startIndex, len(paragraphs))
	}

	lines := make([]string, 0, 4)
	for i := startIndex; i < len(paragraphs); i++ {
		if i != startIndex && classify(paragraphs[i]) != HeadingNone {
			break
		}
		lines = append(lines, CleanParagraph(paragraphs[i]))
	}
	return lines, nil
}

// FindArticles returns every article in paragraphs, in document order.
// Each heading paragraph starts its own article.
func FindArticles(paragraphs []string) []*Article {
	var articles []*Article
	for i, p := range paragraphs {
		kind := classify(p)
		if kind == HeadingNone {
			continue
		}
		lines, err := ExtractSpan(paragraphs, i)
		if err != nil {
			continue
		}
		articles = append(articles, &Article{Index: i, Kind: kind, Lines: lines})
	}
	return articles
}

// CleanParagraph removes copy-action glyphs, surrounding whitespace and a
// trailing block reference from a paragraph's visible text.
func CleanParagraph(raw string) string {
	cleaned := stripArtifacts(raw)
	return blockRefRe.ReplaceAllString(cleaned, "")
}

// stripArtifacts removes leading copy-action glyphs and trims whitespace.
func stripArtifacts(s string) string {
	s = strings.TrimSpace(s)
	for {
		switch {
		case strings.HasPrefix(s, CopyGlyph):
			s = strings.TrimSpace(strings.TrimPrefix(s, CopyGlyph))
		case strings.HasPrefix(s, CopiedGlyph):
			s = strings.TrimSpace(strings.TrimPrefix(s, CopiedGlyph))
		default:
			return s
		}
	}
}

func classify(paragraph string) HeadingKind {
	return ClassifyHeading(stripArtifacts(paragraph))
}
