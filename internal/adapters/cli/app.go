package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tscat/internal/config"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
	"tscat/internal/ports/output"
)

// Exit statuses.
const (
	ExitOK    = 0
	ExitFail  = 1
	ExitUsage = 2
)

// Deps are the ports the command line adapter drives.
type Deps struct {
	Config   *config.Config
	Catalogs input.CatalogUseCase
	T        output.T

	// NewTranslator builds a resolver over loaded catalogs.
	NewTranslator func(cats []*entities.Catalog, locale string) input.TranslateUseCase
	// OpenStore returns catalog use cases backed by the configured store, and
	// a function releasing it. Nil when no store is configured.
	OpenStore func(ctx context.Context) (input.CatalogUseCase, func(), error)
	// Migrate applies the store schema.
	Migrate func(ctx context.Context) error

	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// App is the command line adapter.
type App struct {
	Deps
	uiLocale string
}

type command struct {
	name    string
	summary string
	run     func(a *App, ctx context.Context, args []string) int
}

var commands = []command{
	{"lint", "check catalogs for well-formedness", (*App).lint},
	{"stats", "count entries by translation state", (*App).stats},
	{"fmt", "re-serialize catalogs in canonical layout", (*App).format},
	{"resolve", "translate one source string", (*App).resolve},
	{"export", "write go-i18n message files", (*App).export},
	{"import", "store catalogs in the database", (*App).importCatalogs},
	{"list", "list stored catalogs", (*App).list},
	{"migrate", "apply database migrations", (*App).migrate},
}

// NewApp creates an App. Missing writers and logger default to io.Discard
// and slog.Default.
func NewApp(deps Deps) *App {
	if deps.Stdout == nil {
		deps.Stdout = io.Discard
	}
	if deps.Stderr == nil {
		deps.Stderr = io.Discard
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	a := &App{Deps: deps, uiLocale: "en"}
	if deps.Config != nil {
		a.uiLocale = strings.ReplaceAll(deps.Config.UILocale, "_", "-")
	}
	return a
}

// Run executes the subcommand named by args[0] and returns the exit status.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return ExitUsage
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(a, ctx, args[1:])
		}
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		return ExitOK
	}
	fmt.Fprintf(a.Stderr, "tscat: unknown command %q\n", args[0])
	a.usage()
	return ExitUsage
}

func (a *App) usage() {
	fmt.Fprintln(a.Stderr, "usage: tscat <command> [flags] [catalog.ts ...]")
	fmt.Fprintln(a.Stderr)
	for _, c := range commands {
		fmt.Fprintf(a.Stderr, "  %-8s %s\n", c.name, c.summary)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("tscat "+name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	return fs
}

// catalogs loads the named files, or every catalog of the configured
// directory when none are named.
func (a *App) catalogs(ctx context.Context, paths []string) ([]*entities.Catalog, error) {
	if len(paths) == 0 {
		dir := "."
		if a.Config != nil {
			dir = a.Config.CatalogDir
		}
		return a.Catalogs.LoadDir(ctx, dir)
	}
	out := make([]*entities.Catalog, 0, len(paths))
	for _, p := range paths {
		cat, err := a.Catalogs.Load(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, nil
}
