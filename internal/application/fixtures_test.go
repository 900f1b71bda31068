package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tscat/internal/domain/entities"
	"tscat/internal/infrastructure/tsfile"
)

const jaTS = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="ja">
<context>
    <name>EditBarline</name>
    <message>
        <location filename="../source/actions/editbarline.cpp" line="24"/>
        <source>Set %1</source>
        <translation>%1を設定</translation>
    </message>
</context>
<context>
    <name>PowerTabEditor</name>
    <message>
        <source>&amp;Open...</source>
        <comment>File menu</comment>
        <translation>開く(&amp;O)...</translation>
    </message>
    <message>
        <source>&amp;Open...</source>
        <comment>Recent files</comment>
        <translation>最近のファイルを開く(&amp;O)...</translation>
    </message>
    <message>
        <source>Metronome</source>
        <translation type="unfinished"></translation>
    </message>
    <message>
        <source>Old Toolbar</source>
        <translation type="obsolete">古いツールバー</translation>
    </message>
    <message numerus="yes">
        <source>%n note(s) selected</source>
        <translation>
            <numerusform>%n 個の音符を選択</numerusform>
        </translation>
    </message>
</context>
</TS>
`

const frTS = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="fr_FR" sourcelanguage="en">
<context>
    <name>PowerTabEditor</name>
    <message numerus="yes">
        <source>%n note(s) selected</source>
        <translation>
            <numerusform>%n note sélectionnée</numerusform>
            <numerusform>%n notes sélectionnées</numerusform>
        </translation>
    </message>
    <message>
        <source>Error opening file: %1</source>
        <translation>Erreur à l&apos;ouverture du fichier : %1</translation>
    </message>
</context>
</TS>
`

const brokenTS = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE TS>
<TS version="2.1" language="ru">
<context>
    <name></name>
    <message>
        <source>Orphan</source>
        <translation>Сирота</translation>
    </message>
</context>
<context>
    <name>MidiPlayer</name>
    <message>
        <location filename="../source/audio/midiplayer.cpp" line="97"/>
        <source>MIDI interface: &apos;%1&apos;</source>
        <translation>Интерфейс MIDI</translation>
    </message>
    <message>
        <location filename="../source/audio/midiplayer.cpp" line="99"/>
        <source>MIDI port: &apos;%1&apos;</source>
        <translation>Порт MIDI: &apos;%1&apos;</translation>
    </message>
    <message>
        <location filename="../source/audio/midiplayer.cpp" line="140"/>
        <source>MIDI port: &apos;%1&apos;</source>
        <translation>Порт MIDI: &apos;%1&apos;</translation>
    </message>
    <message>
        <source></source>
        <translation>пусто</translation>
    </message>
    <message numerus="yes">
        <source>%n bar(s)</source>
        <translation>
            <numerusform>%n такт</numerusform>
            <numerusform>такта</numerusform>
        </translation>
    </message>
</context>
</TS>
`

func mustDecode(t *testing.T, doc string) *entities.Catalog {
	t.Helper()
	cat, err := tsfile.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return cat
}
