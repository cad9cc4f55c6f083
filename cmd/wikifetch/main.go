package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/bluemonday"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/goquery"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/htmltomarkdown"
	wfhttp "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/http"
	wfslog "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/slog"
	"github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/sqlite"
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

	// Wiki origin pages are fetched from.
	BaseURL string

	// SQLite database used by the page cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		BaseURL: defaultBaseURL(),
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
	// The server logs structured JSON to stdout; interactive commands log
	// text to stderr so their own output stays clean.
	var logger *slog.Logger
	if len(args) > 0 && args[0] == "serve" {
		logger = slog.New(slog.NewJSONHandler(stdout, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		BaseURL: m.BaseURL,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikifetch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikifetch --help' to see available commands")
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

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIKIFETCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Cache = sqlite.NewPageCache(m.DB, sqlite.DefaultTTL)
	deps.Parser = wfslog.NewLoggingParser(goquery.NewParser(), logger)
	deps.Search = wfhttp.NewSearchService(nil, m.BaseURL)
	deps.Sitemaps = wfhttp.NewSitemapService(nil)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Sanitizer = bluemonday.NewSanitizer()

	limiter := wfhttp.NewDomainLimiter(requestsPerSecond)
	fetcher := wfhttp.NewFetcher(wfhttp.WithLimiter(limiter))
	deps.Fetcher = wfslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	return kongCtx.Run(deps)
}

// requestsPerSecond limits outbound fetches per domain.
const requestsPerSecond = 2.0

func defaultDBPath() string {
	if path := os.Getenv("WIKIFETCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wikifetch.db"
	}
	dir := filepath.Join(home, ".wikifetch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wikifetch.db")
}

func defaultBaseURL() string {
	if u := os.Getenv("WIKIFETCH_BASE_URL"); u != "" {
		return u
	}
	return wikifetch.DefaultBaseURL
}
