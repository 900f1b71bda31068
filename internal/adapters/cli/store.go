package cli

import (
	"context"
	"fmt"
	"time"

	"tscat/internal/domain"
	"tscat/internal/ports/input"
)

func (a *App) store(ctx context.Context) (input.CatalogUseCase, func(), error) {
	if a.OpenStore == nil {
		return nil, nil, domain.ErrStoreUnavailable
	}
	return a.OpenStore(ctx)
}

func (a *App) importCatalogs(ctx context.Context, args []string) int {
	fs := a.flagSet("import")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cats, err := a.catalogs(ctx, fs.Args())
	if err != nil {
		return a.fail(err, nil)
	}
	svc, release, err := a.store(ctx)
	if err != nil {
		return a.fail(err, nil)
	}
	defer release()

	for _, cat := range cats {
		if err := svc.Import(ctx, cat); err != nil {
			return a.fail(err, nil)
		}
		fmt.Fprintln(a.Stdout, a.tr("import.done", map[string]any{
			"Language": cat.Language,
			"Messages": cat.Len(),
		}))
	}
	return ExitOK
}

func (a *App) list(ctx context.Context, args []string) int {
	fs := a.flagSet("list")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	svc, release, err := a.store(ctx)
	if err != nil {
		return a.fail(err, nil)
	}
	defer release()

	stored, err := svc.Stored(ctx)
	if err != nil {
		return a.fail(err, nil)
	}
	for _, s := range stored {
		fmt.Fprintln(a.Stdout, a.tr("list.line", map[string]any{
			"Language":   s.Language,
			"Messages":   s.Messages,
			"ImportedAt": s.ImportedAt.Format(time.DateTime),
		}))
	}
	return ExitOK
}

func (a *App) migrate(ctx context.Context, args []string) int {
	fs := a.flagSet("migrate")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if a.Migrate == nil {
		return a.fail(domain.ErrStoreUnavailable, nil)
	}
	if err := a.Migrate(ctx); err != nil {
		return a.fail(err, nil)
	}
	fmt.Fprintln(a.Stdout, a.tr("migrate.done", nil))
	return ExitOK
}
