package main

import (
	"github.com/fwojciec/lawcopy"
)

// loadWhitelist returns the stored folder whitelist.
func loadWhitelist(deps *Dependencies) (lawcopy.Whitelist, error) {
	settings, err := deps.Settings.LoadSettings(deps.Ctx)
	if err != nil {
		return nil, err
	}
	return settings.Whitelist(), nil
}

// loadParagraphs reads a note, checks it against the whitelist and returns
// its rendered paragraphs. Notes outside the whitelist return EFORBIDDEN.
func loadParagraphs(deps *Dependencies, whitelist lawcopy.Whitelist, path string) (*lawcopy.Note, []string, error) {
	note, err := deps.Notes.ReadNote(deps.Ctx, path)
	if err != nil {
		return nil, nil, err
	}

	if !whitelist.Allows(note.SourcePath) {
		return note, nil, lawcopy.Errorf(lawcopy.EFORBIDDEN, "%s is outside the whitelisted folders", note.SourcePath)
	}

	html := note.Content
	if note.Format != lawcopy.FormatHTML {
		html, err = deps.Renderer.Render(note.Content)
		if err != nil {
			return note, nil, err
		}
	}

	paragraphs, err := deps.Paragraphs.ExtractParagraphs(html)
	if err != nil {
		return note, nil, err
	}

	deps.Logger.Debug("note loaded",
		"path", note.SourcePath,
		"format", note.Format,
		"paragraphs", len(paragraphs),
	)
	return note, paragraphs, nil
}
