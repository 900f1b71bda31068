package cli

import (
	"context"
	"fmt"

	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
)

func (a *App) resolve(ctx context.Context, args []string) int {
	var defLocale, defDir string
	if a.Config != nil {
		defLocale, defDir = a.Config.Locale, a.Config.CatalogDir
	}

	fs := a.flagSet("resolve")
	locale := fs.String("locale", defLocale, "target locale (default TSCAT_LOCALE)")
	contextName := fs.String("context", "", "context name, e.g. a dialog class")
	comment := fs.String("comment", "", "disambiguation comment")
	count := fs.Int("n", -1, "count for numerus messages (-1 = none)")
	dir := fs.String("dir", defDir, "directory of catalogs")
	file := fs.String("file", "", "single catalog to use instead of -dir")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() == 0 || *contextName == "" {
		fmt.Fprintln(a.Stderr, "usage: tscat resolve -context NAME [-locale L] [-n N] source [arg ...]")
		return ExitUsage
	}

	var (
		cats []*entities.Catalog
		err  error
	)
	if *file != "" {
		var cat *entities.Catalog
		cat, err = a.Catalogs.Load(ctx, *file)
		cats = []*entities.Catalog{cat}
	} else {
		cats, err = a.Catalogs.LoadDir(ctx, *dir)
	}
	if err != nil {
		return a.fail(err, nil)
	}

	req := input.Request{
		Locale:  *locale,
		Context: *contextName,
		Source:  fs.Arg(0),
		Comment: *comment,
		Args:    fs.Args()[1:],
	}
	if *count >= 0 {
		req.Count = count
	}
	fmt.Fprintln(a.Stdout, a.NewTranslator(cats, *locale).Translate(req))
	return ExitOK
}
