package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func (a *App) export(ctx context.Context, args []string) int {
	fs := a.flagSet("export")
	format := fs.String("format", "toml", "output format: toml, json or yaml")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cats, err := a.catalogs(ctx, fs.Args())
	if err != nil {
		return a.fail(err, nil)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return a.fail(err, nil)
	}

	for _, cat := range cats {
		name, data, err := a.Catalogs.Render(cat, *format)
		if err != nil {
			return a.fail(err, map[string]any{"Locale": cat.Language, "Format": *format})
		}
		// Written files must load back into go-i18n.
		n, err := a.Catalogs.CheckExport(data, name)
		if err != nil {
			return a.fail(err, nil)
		}

		path := filepath.Join(*out, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return a.fail(err, nil)
		}
		a.Logger.DebugContext(ctx, "exported", "catalog", cat.Path, "file", path)
		fmt.Fprintln(a.Stdout, a.tr("export.written", map[string]any{"Path": path, "Messages": n}))
	}
	return ExitOK
}
