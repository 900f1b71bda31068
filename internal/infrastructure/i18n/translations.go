package i18n

import (
	"embed"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"tscat/internal/ports/output"
	"tscat/pkg/locale"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator renders the messages printed by the command line tool itself
// (lint findings, summaries, errors). Message files are the embedded
// active.<lang>.toml; English is the bundle default.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger

	localizers sync.Map // reduced tag string -> *i18n.Localizer
}

// NewTranslator loads every embedded message file. An unparseable
// defaultLocale selects English.
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Warn("i18n: failed to load message file", "file", file, "error", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          logger,
	}
}

// Languages lists the languages the tool has messages for.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// localizer returns the localizer for locale, cached per language, script
// and region. Unparseable locales share the default locale's localizer.
func (t *Translator) localizer(l string) *i18n.Localizer {
	key := ""
	if tag, err := locale.Parse(l); err == nil {
		key = locale.Reduce(tag).String()
	}
	if v, ok := t.localizers.Load(key); ok {
		return v.(*i18n.Localizer)
	}
	langs := []string{t.defaultLanguage.String()}
	if key != "" {
		langs = append([]string{key}, langs...)
	}
	v, _ := t.localizers.LoadOrStore(key, i18n.NewLocalizer(t.bundle, langs...))
	return v.(*i18n.Localizer)
}

// T renders key for locale. Missing keys fall back to the default locale,
// then English, then the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Debug("i18n: localize failed", "key", key, "locale", locale, "error", err)
		return key
	}
	return msg
}
