package lawcopy

import "context"

// NoteFormat identifies how a note's content is encoded.
type NoteFormat string

// NoteFormat constants.
const (
	FormatMarkdown NoteFormat = "markdown"
	FormatHTML     NoteFormat = "html"
)

// Note is a document the copy action runs over.
type Note struct {
	// SourcePath is slash-separated and relative to the vault root.
	// It is what the folder whitelist is matched against.
	SourcePath string     `json:"sourcePath"`
	Format     NoteFormat `json:"format"`
	Content    string     `json:"content"`
}

// NoteReader loads notes from a vault.
type NoteReader interface {
	// ReadNote loads the note at path.
	// Returns ENOTFOUND if the note does not exist.
	ReadNote(ctx context.Context, path string) (*Note, error)
}
