package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lawcopy"
)

// SourcePath converts a file path to the slash-separated path of the note
// relative to the vault root, as matched by the folder whitelist.
// Example: (vault=/home/u/notes, file=/home/u/notes/法律法规/刑法.md) → 法律法规/刑法.md
func SourcePath(vault, file string) (string, error) {
	absVault, err := filepath.Abs(vault)
	if err != nil {
		return "", err
	}
	absFile, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absVault, absFile)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", lawcopy.Errorf(lawcopy.EINVALID, "note %s is outside vault %s", file, vault)
	}
	return rel, nil
}

// FormatForPath returns the note format implied by a file extension.
func FormatForPath(path string) lawcopy.NoteFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return lawcopy.FormatHTML
	default:
		return lawcopy.FormatMarkdown
	}
}

// Ensure NoteReader implements lawcopy.NoteReader at compile time.
var _ lawcopy.NoteReader = (*NoteReader)(nil)

// NoteReader reads notes from a vault directory.
type NoteReader struct {
	vault string
}

// NewNoteReader creates a new NoteReader rooted at vault.
func NewNoteReader(vault string) *NoteReader {
	return &NoteReader{vault: vault}
}

// ReadNote reads the note at path. Relative paths resolve against the
// working directory, not the vault.
func (r *NoteReader) ReadNote(ctx context.Context, path string) (*lawcopy.Note, error) {
	sourcePath, err := SourcePath(r.vault, path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, lawcopy.Errorf(lawcopy.ENOTFOUND, "note %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}

	return &lawcopy.Note{
		SourcePath: sourcePath,
		Format:     FormatForPath(path),
		Content:    string(data),
	}, nil
}
