package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

func (a *App) format(ctx context.Context, args []string) int {
	fs := a.flagSet("fmt")
	write := fs.Bool("w", false, "write result to the source file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(a.Stderr, "usage: tscat fmt [-w] catalog.ts ...")
		return ExitUsage
	}

	for _, path := range fs.Args() {
		cat, err := a.Catalogs.Load(ctx, path)
		if err != nil {
			return a.fail(err, nil)
		}
		if !*write {
			if err := a.Catalogs.Format(cat, a.Stdout); err != nil {
				return a.fail(err, nil)
			}
			continue
		}

		var buf bytes.Buffer
		if err := a.Catalogs.Format(cat, &buf); err != nil {
			return a.fail(err, nil)
		}
		old, err := os.ReadFile(path)
		if err != nil {
			return a.fail(err, nil)
		}
		if bytes.Equal(old, buf.Bytes()) {
			continue
		}
		if err := a.Catalogs.Save(ctx, cat); err != nil {
			return a.fail(err, nil)
		}
		fmt.Fprintln(a.Stdout, a.tr("fmt.rewritten", map[string]any{"Path": path}))
	}
	return ExitOK
}
