package i18n

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/infrastructure/tsfile"
)

func loadFixture(t *testing.T, name string) *entities.Catalog {
	t.Helper()
	cat, err := tsfile.LoadFile(filepath.Join("..", "tsfile", "testdata", name))
	require.NoError(t, err)
	return cat
}

func TestTranslatorRendersCLIMessages(t *testing.T) {
	tr := NewTranslator("en", nil)

	data := map[string]any{"Path": "a.ts", "Errors": 2, "Warnings": 1}
	require.Equal(t, "a.ts: 2 error(s), 1 warning(s)", tr.T("en", "lint.summary", data))
	require.Equal(t, "a.ts : 2 erreur(s), 1 avertissement(s)", tr.T("fr", "lint.summary", data))
	require.Equal(t, "a.ts: 2 error(s), 1 warning(s)", tr.T("ja", "lint.summary", data), "falls back to the default locale")
	require.Equal(t, "no.such.key", tr.T("en", "no.such.key", nil))
	require.Equal(t, "", tr.T("en", "", nil))
}

func TestTranslatorDefaultLocale(t *testing.T) {
	tr := NewTranslator("fr", nil)
	require.Equal(t, "erreur", tr.T("", "severity.error", nil))
	require.Equal(t, "error", tr.T("en", "severity.error", nil))
}

func TestTranslatorLanguages(t *testing.T) {
	tr := NewTranslator("not a locale", nil)

	var got []string
	for _, tag := range tr.Languages() {
		got = append(got, tag.String())
	}
	require.ElementsMatch(t, []string{"en", "fr"}, got)
	require.Equal(t, "error", tr.T("", "severity.error", nil), "bad default locale selects English")
}

func TestTranslatorCachesReducedLocales(t *testing.T) {
	tr := NewTranslator("en", nil)

	require.Equal(t, "erreur", tr.T("fr-x-one", "severity.error", nil))
	require.Equal(t, "erreur", tr.T("fr_FR-u-ca-gregory", "severity.error", nil))
	require.Equal(t, "erreur", tr.T("fr", "severity.error", nil))
	require.Equal(t, "error", tr.T("not a locale", "severity.error", nil))
	require.Equal(t, "error", tr.T("", "severity.error", nil))

	var keys []string
	tr.localizers.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	require.ElementsMatch(t, []string{"fr", "fr-FR", ""}, keys)
}

func TestMessageID(t *testing.T) {
	require.Equal(t, "EditBarline|Set %1", MessageID(&entities.Message{Context: "EditBarline", Source: "Set %1"}))
	require.Equal(t, "PowerTabEditor|&Open...|File menu",
		MessageID(&entities.Message{Context: "PowerTabEditor", Source: "&Open...", Comment: "File menu"}))
}

func TestMessagesSkipsUnusableEntries(t *testing.T) {
	msgs, err := Messages(loadFixture(t, "editor_ja.ts"))
	require.NoError(t, err)

	require.Len(t, msgs, 9)
	require.NotContains(t, msgs, "PlaybackWidget|Metronome")
	require.NotContains(t, msgs, "PowerTabEditor|Old Toolbar")
	require.Equal(t, "%1を設定", msgs["EditBarline|Set %1"]["other"])
	require.True(t, strings.HasPrefix(msgs["EditBarline|Set %1"]["hash"], "sha1-"))
}

func TestMessagesMapsNumerusForms(t *testing.T) {
	msgs, err := Messages(loadFixture(t, "editor_fr.ts"))
	require.NoError(t, err)

	m := msgs["PowerTabEditor|%n note(s) selected"]
	require.Equal(t, "%n note sélectionnée", m["one"])
	require.Equal(t, "%n notes sélectionnées", m["other"])
}

func TestMessagesFollowLatvianFormOrder(t *testing.T) {
	cat := &entities.Catalog{
		Language: "lv",
		Contexts: []entities.Context{{
			Name: "FileDialog",
			Messages: []entities.Message{{
				Context:      "FileDialog",
				Source:       "%n file(s)",
				Numerus:      true,
				NumerusForms: []string{"%n fails", "%n faili", "%n failu"},
			}},
		}},
	}
	msgs, err := Messages(cat)
	require.NoError(t, err)

	m := msgs["FileDialog|%n file(s)"]
	require.Equal(t, "%n fails", m["one"])
	require.Equal(t, "%n faili", m["other"])
	require.Equal(t, "%n failu", m["zero"])
}

func TestExportLoadsIntoGoI18n(t *testing.T) {
	for _, format := range []string{FormatTOML, FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			cat := loadFixture(t, "editor_fr.ts")
			name, err := Exporter{}.FileName(cat, format)
			require.NoError(t, err)
			require.Equal(t, "active.fr-FR."+format, name)

			var buf bytes.Buffer
			require.NoError(t, Exporter{}.Export(&buf, cat, format))
			data := buf.Bytes()

			n, err := Check(data, name)
			require.NoError(t, err)
			require.Equal(t, 2, n)

			bundle := NewBundle(language.English)
			_, err = bundle.ParseMessageFileBytes(data, name)
			require.NoError(t, err)

			loc := i18n.NewLocalizer(bundle, "fr-FR")
			got, err := loc.Localize(&i18n.LocalizeConfig{
				MessageID:   "PowerTabEditor|%n note(s) selected",
				PluralCount: 5,
			})
			require.NoError(t, err)
			require.Equal(t, "%n notes sélectionnées", got)

			got, err = loc.Localize(&i18n.LocalizeConfig{MessageID: "AddBarline|Insert Barline"})
			require.NoError(t, err)
			require.Equal(t, "Insérer une barre de mesure", got)
		})
	}
}

func TestFileNameRejectsBadLanguage(t *testing.T) {
	_, err := FileName(&entities.Catalog{Language: "??"}, FormatTOML)
	require.ErrorIs(t, err, domain.ErrUnknownLocale)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Exporter{}.Export(&buf, loadFixture(t, "editor_ja.ts"), "xliff")
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}
