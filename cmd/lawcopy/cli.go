package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/lawcopy"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Settings   lawcopy.SettingsService
	Notes      lawcopy.NoteReader
	Renderer   lawcopy.Renderer
	Paragraphs lawcopy.ParagraphExtractor
	Clipboard  lawcopy.Clipboard
	Notifier   lawcopy.Notifier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Settings string `env:"LAWCOPY_SETTINGS" help:"Settings file; .db or .sqlite selects SQLite (default: ~/.lawcopy/data.json)"`
	Vault    string `env:"LAWCOPY_VAULT" default:"." help:"Vault root the folder whitelist is relative to"`
	Markdown bool   `short:"m" help:"Keep inline Markdown such as **bold** in copied text"`
	Verbose  bool   `short:"v" help:"Log debug output to stderr"`

	List      ListCmd      `cmd:"" help:"List article headings in a note"`
	Copy      CopyCmd      `cmd:"" help:"Copy the article starting at a paragraph"`
	Dump      DumpCmd      `cmd:"" help:"Print every article of one or more notes"`
	Whitelist WhitelistCmd `cmd:"" help:"Show or set the folder whitelist"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Note string `arg:"" help:"Note file (.md or .html)"`
}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Note   string `arg:"" help:"Note file (.md or .html)"`
	Index  int    `arg:"" help:"Paragraph index of the article heading, as shown by list"`
	Stdout bool   `help:"Print the article instead of copying it"`
}

// DumpCmd is the "dump" subcommand.
type DumpCmd struct {
	Notes       []string `arg:"" help:"Note files (.md or .html)"`
	Concurrency int      `short:"c" default:"4" help:"Notes read in parallel"`
	JSON        bool     `help:"Print articles as JSON"`
}

// WhitelistCmd is the "whitelist" subcommand group.
type WhitelistCmd struct {
	Show WhitelistShowCmd `cmd:"" default:"1" help:"Show whitelisted folders"`
	Set  WhitelistSetCmd  `cmd:"" help:"Replace whitelisted folders; no folders applies everywhere"`
}

// WhitelistShowCmd is the "whitelist show" subcommand.
type WhitelistShowCmd struct{}

// WhitelistSetCmd is the "whitelist set" subcommand.
type WhitelistSetCmd struct {
	Folders []string `arg:"" optional:"" help:"Folders relative to the vault root"`
}

// WriterNotifier prints notifications on their own line.
type WriterNotifier struct {
	W io.Writer
}

// Notify writes message followed by a newline.
func (n *WriterNotifier) Notify(message string) {
	fmt.Fprintln(n.W, message)
}
