package tsfile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

type tuple struct {
	Context, Source, Comment, Translation string
	Type                                  entities.TranslationType
	Forms                                 string
}

func tuples(cat *entities.Catalog) []tuple {
	var out []tuple
	for _, m := range cat.Messages() {
		out = append(out, tuple{
			Context:     m.Context,
			Source:      m.Source,
			Comment:     m.Comment,
			Translation: m.Translation,
			Type:        m.Type,
			Forms:       strings.Join(m.NumerusForms, "\x00"),
		})
	}
	return out
}

func TestLoadFile(t *testing.T) {
	cat, err := LoadFile(filepath.Join("testdata", "editor_ja.ts"))
	require.NoError(t, err)

	require.Equal(t, "2.1", cat.Version)
	require.Equal(t, "ja", cat.Language)
	require.Len(t, cat.Contexts, 6)
	require.Equal(t, 11, cat.Len())

	m, ok := cat.Lookup("EditBarline", "Set %1", "")
	require.True(t, ok)
	require.Equal(t, "%1を設定", m.Translation)
	require.Equal(t, []entities.Location{{File: "../source/actions/editbarline.cpp", Line: "24"}}, m.Locations)

	m, ok = cat.Lookup("KeyboardSettingsDialog",
		"Do you want to use this shortcut and remove the shortcut of the <b>%1</b> command?", "")
	require.True(t, ok, "entities must be unescaped")
	require.Contains(t, m.Translation, "<b>%1</b>")

	file, ok := cat.Lookup("PowerTabEditor", "&Open...", "File menu")
	require.True(t, ok)
	recent, ok := cat.Lookup("PowerTabEditor", "&Open...", "Recent files")
	require.True(t, ok)
	require.NotEqual(t, file.Translation, recent.Translation)

	m, ok = cat.Lookup("PlaybackWidget", "Metronome", "")
	require.True(t, ok)
	require.Equal(t, entities.TypeUnfinished, m.Type)
	require.False(t, m.Usable())
	require.Len(t, m.Locations, 2)

	m, ok = cat.Lookup("PowerTabEditor", "%n note(s) selected", "")
	require.True(t, ok)
	require.True(t, m.Numerus)
	require.Equal(t, []string{"%n 個の音符を選択"}, m.NumerusForms)
	require.True(t, m.Usable())

	m, ok = cat.Lookup("PowerTabEditor", "Old Toolbar", "")
	require.True(t, ok)
	require.Equal(t, entities.TypeObsolete, m.Type)
}

func TestDecodeRejectsOtherDocuments(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "not_ts.xml"))
	require.ErrorIs(t, err, domain.ErrNotTSFile)

	_, err = Decode(strings.NewReader(""))
	require.ErrorIs(t, err, domain.ErrNotTSFile)

	_, err = Decode(strings.NewReader("<TS><context>"))
	require.Error(t, err)
}

func TestEncodeReproducesLupdateLayout(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "editor_ja.ts"))
	require.NoError(t, err)
	cat, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cat))
	require.Equal(t, string(raw), buf.String())
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"editor_ja.ts", "editor_fr.ts", "broken.ts"} {
		t.Run(name, func(t *testing.T) {
			cat, err := LoadFile(filepath.Join("testdata", name))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, cat))
			again, err := Decode(&buf)
			require.NoError(t, err)

			require.Equal(t, tuples(cat), tuples(again))
			require.Equal(t, cat.Language, again.Language)
			require.Equal(t, cat.SourceLanguage, again.SourceLanguage)
		})
	}
}

func TestEncodeEscapesMarkup(t *testing.T) {
	cat := &entities.Catalog{
		Language: "de",
		Contexts: []entities.Context{{
			Name: "Dialog",
			Messages: []entities.Message{{
				Context:     "Dialog",
				Source:      `Say "hi" & <bye>` + "\n'x'",
				Translation: "Sag \"hallo\"",
				Type:        entities.TypeUnfinished,
			}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cat))
	require.Contains(t, buf.String(), `<TS version="2.1" language="de">`)
	require.Contains(t, buf.String(), "<source>Say &quot;hi&quot; &amp; &lt;bye&gt;\n&apos;x&apos;</source>")
	require.Contains(t, buf.String(), `<translation type="unfinished">Sag &quot;hallo&quot;</translation>`)

	again, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, tuples(cat), tuples(again))
}

const variantsTS = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="de">
<context>
    <name>C</name>
    <message>
        <source>Open</source>
        <translation variants="yes">
            <lengthvariant>Datei öffnen</lengthvariant>
            <lengthvariant>Öffnen</lengthvariant>
        </translation>
    </message>
    <message numerus="yes">
        <source>%n file(s)</source>
        <translation>
            <numerusform variants="yes">
                <lengthvariant>%n Datei</lengthvariant>
                <lengthvariant>%n D.</lengthvariant>
            </numerusform>
            <numerusform>%n Dateien</numerusform>
        </translation>
    </message>
    <message>
        <source>Bell<byte value="x7"/></source>
        <translation type="unfinished">Glocke<byte value="x7"/></translation>
    </message>
</context>
</TS>
`

func TestDecodeLengthVariantsAndBytes(t *testing.T) {
	cat, err := Decode(strings.NewReader(variantsTS))
	require.NoError(t, err)

	open, ok := cat.Lookup("C", "Open", "")
	require.True(t, ok)
	require.Equal(t, "Datei öffnen", open.Translation)
	require.Equal(t, []string{"Datei öffnen", "Öffnen"}, open.Variants)
	require.True(t, open.Usable())

	files, ok := cat.Lookup("C", "%n file(s)", "")
	require.True(t, ok)
	require.Equal(t, []string{"%n Datei", "%n Dateien"}, files.NumerusForms)
	require.Equal(t, [][]string{{"%n Datei", "%n D."}, nil}, files.FormVariants)
	require.Equal(t, []string{"%n Datei", "%n D.", "%n Dateien"}, files.Texts())

	bell, ok := cat.Lookup("C", "Bell\a", "")
	require.True(t, ok)
	require.Equal(t, "Glocke\a", bell.Translation)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cat))
	require.Equal(t, variantsTS, buf.String())
}

func TestDecodeRejectsBadByte(t *testing.T) {
	doc := `<TS language="de"><context><name>C</name><message><source>a<byte value="xZZ"/></source></message></context></TS>`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
}

func TestSaveFile(t *testing.T) {
	cat, err := LoadFile(filepath.Join("testdata", "editor_fr.ts"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.ts")
	require.NoError(t, SaveFile(path, cat))

	again, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, path, again.Path)
	require.Equal(t, tuples(cat), tuples(again))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSaveFileKeepsPermissions(t *testing.T) {
	cat, err := LoadFile(filepath.Join("testdata", "editor_fr.ts"))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "fr.ts")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
	require.NoError(t, SaveFile(path, cat))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary file left behind")
}

func TestLoadDir(t *testing.T) {
	cats, err := LoadDir(context.Background(), "testdata")
	require.NoError(t, err)
	require.Len(t, cats, 3)

	var langs []string
	for _, c := range cats {
		langs = append(langs, c.Language)
	}
	require.Equal(t, []string{"fr_FR", "ja", "ru"}, langs)
}

func TestLoadDirReportsBadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.ts"), []byte("<TS><context>"), 0o644))

	_, err := LoadDir(context.Background(), dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.ts")
}
