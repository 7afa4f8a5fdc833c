package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lawcopy"
	"github.com/fwojciec/lawcopy/clipboard"
	"github.com/fwojciec/lawcopy/fs"
	"github.com/fwojciec/lawcopy/goldmark"
	"github.com/fwojciec/lawcopy/goquery"
	"github.com/fwojciec/lawcopy/htmltomarkdown"
	lawslog "github.com/fwojciec/lawcopy/slog"
	"github.com/fwojciec/lawcopy/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Clipboard receives copied articles. Defaults to the system clipboard.
	Clipboard lawcopy.Clipboard

	// SQLite database, set when settings are stored in SQLite.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Clipboard: clipboard.NewClipboard(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lawcopy"),
		kong.Description("Find legal articles in notes and copy one article at a time"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lawcopy --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	settingsPath := cli.Settings
	if settingsPath == "" {
		settingsPath = defaultSettingsPath()
	}
	settings, err := m.openSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set LAWCOPY_SETTINGS to use a different settings file\n")
		return err
	}
	defer m.Close()
	deps.Settings = lawslog.NewLoggingSettingsService(settings, deps.Logger)

	deps.Notes = fs.NewNoteReader(cli.Vault)
	deps.Renderer = goldmark.NewRenderer()
	if cli.Markdown {
		deps.Paragraphs = goquery.NewParagraphExtractor(goquery.WithConverter(htmltomarkdown.NewConverter()))
	} else {
		deps.Paragraphs = goquery.NewParagraphExtractor()
	}
	deps.Clipboard = lawslog.NewLoggingClipboard(m.Clipboard, deps.Logger)
	deps.Notifier = &WriterNotifier{W: stderr}

	return kongCtx.Run(deps)
}

// openSettings picks the settings store from the file extension.
func (m *Main) openSettings(path string) (lawcopy.SettingsService, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, err
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open settings database at %q: %w", path, err)
		}
		return sqlite.NewSettingsService(m.DB), nil
	default:
		return fs.NewSettingsService(path), nil
	}
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lawcopy.json"
	}
	return filepath.Join(home, ".lawcopy", "data.json")
}
