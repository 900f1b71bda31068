package application

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
	"tscat/pkg/locale"
	"tscat/pkg/qtarg"
)

var _ input.TranslateUseCase = (*Translator)(nil)

// Translator resolves user-interface strings against a fixed set of catalogs.
// Catalogs are never modified after construction, so a Translator is safe for
// concurrent use; only the active locale can change.
type Translator struct {
	catalogs []*entities.Catalog
	tags     []language.Tag
	matcher  language.Matcher
	logger   *slog.Logger

	active   atomic.Pointer[string]
	selected sync.Map // reduced tag string -> *selection
}

type selection struct {
	cat *entities.Catalog
	tag language.Tag
}

// NewTranslator builds a Translator over cats with defaultLocale active.
// Catalogs whose language cannot be parsed are skipped.
func NewTranslator(cats []*entities.Catalog, defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Translator{logger: logger}
	for _, c := range cats {
		tag, err := locale.Parse(c.Language)
		if err != nil {
			logger.Warn("skipping catalog with unusable language", "path", c.Path, "language", c.Language, "error", err)
			continue
		}
		t.catalogs = append(t.catalogs, c)
		t.tags = append(t.tags, tag)
	}
	if len(t.tags) > 0 {
		t.matcher = language.NewMatcher(t.tags)
	}
	t.active.Store(&defaultLocale)
	return t
}

// SetLocale switches the locale used by requests without one.
func (t *Translator) SetLocale(l string) error {
	if _, err := locale.Parse(l); err != nil {
		return domain.ErrUnknownLocale
	}
	t.active.Store(&l)
	return nil
}

// Locale returns the active locale.
func (t *Translator) Locale() string {
	return *t.active.Load()
}

// Languages returns the languages of the usable catalogs.
func (t *Translator) Languages() []string {
	out := make([]string, len(t.tags))
	for i, tag := range t.tags {
		out[i] = tag.String()
	}
	return out
}

var noSelection = &selection{}

// selectFor picks the catalog for locale l. Selections are cached per
// language, script and region so that arbitrary variants and extensions do
// not grow the cache.
func (t *Translator) selectFor(l string) *selection {
	if t.matcher == nil {
		return noSelection
	}
	tag, err := locale.Parse(l)
	if err != nil {
		return noSelection
	}
	tag = locale.Reduce(tag)
	key := tag.String()
	if v, ok := t.selected.Load(key); ok {
		return v.(*selection)
	}
	sel := noSelection
	if _, idx, conf := t.matcher.Match(tag); conf != language.No {
		sel = &selection{cat: t.catalogs[idx], tag: t.tags[idx]}
	}
	v, _ := t.selected.LoadOrStore(key, sel)
	return v.(*selection)
}

// Translate returns the translation of req in the best matching catalog, or
// the source text when there is none. Placeholders are substituted either way.
func (t *Translator) Translate(req input.Request) string {
	l := req.Locale
	if l == "" {
		l = t.Locale()
	}

	text := req.Source
	sel := t.selectFor(l)
	if sel.cat != nil {
		m, ok := sel.cat.Lookup(req.Context, req.Source, req.Comment)
		if !ok && req.Comment != "" {
			// A miss with a disambiguation retries without it.
			m, ok = sel.cat.Lookup(req.Context, req.Source, "")
		}
		switch {
		case !ok:
			t.logger.Debug("no translation", "locale", l, "context", req.Context, "source", req.Source)
		case !m.Usable():
			t.logger.Debug("translation not usable", "locale", l, "context", req.Context, "source", req.Source, "type", string(m.Type))
		case m.Numerus:
			idx := -1
			if req.Count != nil {
				idx = locale.FormIndex(sel.tag, *req.Count)
			}
			text = m.Form(idx)
		default:
			text = m.Translation
		}
	}

	if req.Count != nil {
		text = qtarg.Count(text, *req.Count)
	}
	return qtarg.Arg(text, req.Args...)
}

// Resolve is Translate for a plain message.
func (t *Translator) Resolve(l, context, source string, args ...string) string {
	return t.Translate(input.Request{Locale: l, Context: context, Source: source, Args: args})
}
