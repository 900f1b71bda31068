package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

func (a *App) tr(key string, data map[string]any) string {
	return a.T.T(a.uiLocale, key, data)
}

// issueLine renders one lint finding as "path: severity: message [file:line]".
func (a *App) issueLine(path string, i entities.Issue) string {
	data := map[string]any{
		"Context": i.Context,
		"Source":  quote(i.Source),
		"Comment": i.Comment,
	}
	for k, v := range i.Data {
		if s, ok := v.(string); ok && k == "Translation" {
			v = quote(s)
		}
		data[k] = v
	}

	line := fmt.Sprintf("%s: %s: %s", path, a.tr("severity."+i.Severity.String(), nil), a.tr("lint."+i.Code, data))
	if i.Location.File != "" {
		line += " [" + i.Location.File
		if i.Location.Line != "" {
			line += ":" + i.Location.Line
		}
		line += "]"
	}
	return line
}

// errorLine renders err for the user, using the message of its domain code
// when there is one.
func (a *App) errorLine(err error, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Err"] = err.Error()
	if code := domain.Code(err); code != "" {
		key := "error." + code
		if msg := a.tr(key, data); msg != key {
			return "tscat: " + msg
		}
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "tscat: " + err.Error()
	}
	return "tscat: " + a.tr("error.generic", data)
}

func (a *App) fail(err error, data map[string]any) int {
	fmt.Fprintln(a.Stderr, a.errorLine(err, data))
	return ExitFail
}

func quote(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
