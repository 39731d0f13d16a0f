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
	"github.com/fwojciec/artparse/batch"
	"github.com/fwojciec/artparse/fs"
	"github.com/fwojciec/artparse/goquery"
	artslog "github.com/fwojciec/artparse/slog"
	"github.com/fwojciec/artparse/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("artparse"),
		kong.Description("Extract artworks from saved image search pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'artparse --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	parsing := strings.HasPrefix(kongCtx.Command(), "parse")
	if !parsing || !cli.Parse.NoStore {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set ARTPARSE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Artworks = sqlite.NewArtworkService(m.DB)
	}

	if parsing {
		extractor := goquery.NewExtractor(goquery.WithBaseOrigin(cli.Parse.BaseOrigin))
		writer := fs.NewJSONWriter(cli.Parse.Output)
		deps.Writer = writer
		deps.Runner = &batch.Runner{
			Source:      fs.NewReader(),
			Parser:      artslog.NewLoggingParser(goquery.NewParser(extractor), logger),
			Writer:      artslog.NewLoggingResultWriter(writer, logger),
			Artworks:    deps.Artworks,
			Concurrency: cli.Parse.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("ARTPARSE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "artparse.db"
	}
	dir := filepath.Join(home, ".artparse")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "artparse.db")
}
