package cli

import (
	"context"
	"fmt"

	"tscat/internal/domain/entities"
)

func (a *App) lint(ctx context.Context, args []string) int {
	fs := a.flagSet("lint")
	roundTrip := fs.Bool("roundtrip", true, "also check that catalogs survive re-serialization")
	strict := fs.Bool("strict", false, "treat warnings as errors")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cats, err := a.catalogs(ctx, fs.Args())
	if err != nil {
		return a.fail(err, nil)
	}

	status := ExitOK
	for _, cat := range cats {
		r := a.Catalogs.Lint(cat)
		for _, issue := range r.Issues {
			fmt.Fprintln(a.Stdout, a.issueLine(cat.Path, issue))
		}
		errs, warns := r.Count(entities.SeverityError), r.Count(entities.SeverityWarning)

		if *roundTrip {
			if err := a.Catalogs.VerifyRoundTrip(cat); err != nil {
				fmt.Fprintf(a.Stdout, "%s: %s: %s\n", cat.Path, a.tr("severity.error", nil),
					a.tr("lint.round_trip", map[string]any{"Err": err.Error()}))
				errs++
			}
		}

		fmt.Fprintln(a.Stdout, a.tr("lint.summary", map[string]any{
			"Path":     cat.Path,
			"Errors":   errs,
			"Warnings": warns,
		}))
		if errs > 0 || (*strict && warns > 0) {
			status = ExitFail
		}
	}
	return status
}

func (a *App) stats(ctx context.Context, args []string) int {
	fs := a.flagSet("stats")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cats, err := a.catalogs(ctx, fs.Args())
	if err != nil {
		return a.fail(err, nil)
	}
	for _, cat := range cats {
		s := a.Catalogs.Lint(cat).Stats
		fmt.Fprintln(a.Stdout, a.tr("stats.line", map[string]any{
			"Path":       cat.Path,
			"Language":   cat.Language,
			"Contexts":   s.Contexts,
			"Messages":   s.Messages,
			"Finished":   s.Finished,
			"Unfinished": s.Unfinished,
			"Obsolete":   s.Obsolete,
			"Vanished":   s.Vanished,
		}))
	}
	return ExitOK
}
