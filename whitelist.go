package lawcopy

import "strings"

// Whitelist restricts the notes the copy action applies to by folder.
// An empty whitelist applies everywhere.
type Whitelist []string

// ParseWhitelist reads one folder per line, ignoring blank lines.
func ParseWhitelist(text string) Whitelist {
	var w Whitelist
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w = append(w, line)
	}
	return w
}

// Allows reports whether the note at sourcePath lies in a whitelisted folder.
// sourcePath is slash-separated and relative to the vault root.
func (w Whitelist) Allows(sourcePath string) bool {
	if len(w) == 0 {
		return true
	}
	if sourcePath == "" {
		return false
	}

	for _, folder := range w {
		if sourcePath == folder || strings.HasPrefix(sourcePath, folder+"/") {
			return true
		}
	}
	return false
}

// String returns the whitelist in its one-folder-per-line form.
func (w Whitelist) String() string {
	return strings.Join(w, "\n")
}
