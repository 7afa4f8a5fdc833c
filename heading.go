package lawcopy

import (
	"regexp"
	"strings"
)

// HeadingKind classifies the leading text of a paragraph by the article
// numbering convention it uses.
type HeadingKind int

// HeadingKind constants. HeadingNone marks an ordinary paragraph.
const (
	HeadingNone HeadingKind = iota
	HeadingChineseNumbered
	HeadingDecimalNumbered
	HeadingDotNumbered
	HeadingCommaNumbered
)

// String returns a short identifier for the kind.
func (k HeadingKind) String() string {
	switch k {
	case HeadingChineseNumbered:
		return "chinese"
	case HeadingDecimalNumbered:
		return "decimal"
	case HeadingDotNumbered:
		return "dot"
	case HeadingCommaNumbered:
		return "comma"
	default:
		return "none"
	}
}

// MarshalText encodes the kind by its String form.
func (k HeadingKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// headingPatterns are tested in order and the first match wins.
// Decimal must come before dot: "1.2" would otherwise read as "1." numbering.
var headingPatterns = []struct {
	kind HeadingKind
	re   *regexp.Regexp
}{
	{HeadingChineseNumbered, regexp.MustCompile(`^(\*\*)?第.+条`)},
	{HeadingDecimalNumbered, regexp.MustCompile(`^\d+(\.\d+)+\s*`)},
	{HeadingDotNumbered, regexp.MustCompile(`^\d+\.\s*`)},
	{HeadingCommaNumbered, regexp.MustCompile(`^\d+、\s*`)},
}

// ClassifyHeading reports which article heading convention, if any, the
// paragraph text starts with. Blank text is always HeadingNone.
func ClassifyHeading(text string) HeadingKind {
	text = strings.TrimSpace(text)
	if text == "" {
		return HeadingNone
	}

	for _, p := range headingPatterns {
		if p.re.MatchString(text) {
			return p.kind
		}
	}
	return HeadingNone
}
