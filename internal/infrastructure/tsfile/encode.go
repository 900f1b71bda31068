package tsfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tscat/internal/domain/entities"
)

const indent = "    "

// DefaultVersion is written when a catalog has no format version.
const DefaultVersion = "2.1"

// Encode writes cat in the layout produced by lupdate.
func Encode(w io.Writer, cat *entities.Catalog) error {
	bw := bufio.NewWriter(w)
	e := &encoder{w: bw}

	version := cat.Version
	if version == "" {
		version = DefaultVersion
	}
	e.line(0, `<?xml version="1.0" encoding="utf-8"?>`)
	e.line(0, `<!DOCTYPE TS>`)
	root := `<TS version="` + escape(version) + `"`
	if cat.Language != "" {
		root += ` language="` + escape(cat.Language) + `"`
	}
	if cat.SourceLanguage != "" {
		root += ` sourcelanguage="` + escape(cat.SourceLanguage) + `"`
	}
	e.line(0, root+">")
	for i := range cat.Contexts {
		e.context(&cat.Contexts[i])
	}
	e.line(0, "</TS>")

	if e.err != nil {
		return fmt.Errorf("encode ts: %w", e.err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode ts: %w", err)
	}
	return nil
}

type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) line(depth int, s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(strings.Repeat(indent, depth) + s + "\n")
}

func (e *encoder) element(depth int, name, text string) {
	e.line(depth, "<"+name+">"+escape(text)+"</"+name+">")
}

func (e *encoder) context(c *entities.Context) {
	e.line(0, "<context>")
	e.element(1, "name", c.Name)
	for i := range c.Messages {
		e.message(&c.Messages[i])
	}
	e.line(0, "</context>")
}

func (e *encoder) message(m *entities.Message) {
	open := "<message"
	if m.ID != "" {
		open += ` id="` + escape(m.ID) + `"`
	}
	if m.Numerus {
		open += ` numerus="yes"`
	}
	e.line(1, open+">")
	for _, l := range m.Locations {
		loc := "<location"
		if l.File != "" {
			loc += ` filename="` + escape(l.File) + `"`
		}
		if l.Line != "" {
			loc += ` line="` + escape(l.Line) + `"`
		}
		e.line(2, loc+"/>")
	}
	e.element(2, "source", m.Source)
	if m.OldSource != "" {
		e.element(2, "oldsource", m.OldSource)
	}
	if m.Comment != "" {
		e.element(2, "comment", m.Comment)
	}
	if m.ExtraComment != "" {
		e.element(2, "extracomment", m.ExtraComment)
	}
	if m.TranslatorComment != "" {
		e.element(2, "translatorcomment", m.TranslatorComment)
	}

	open = "<translation"
	if m.Type != entities.TypeFinished {
		open += ` type="` + escape(string(m.Type)) + `"`
	}
	if m.Numerus {
		e.line(2, open+">")
		for i, f := range m.NumerusForms {
			var variants []string
			if i < len(m.FormVariants) {
				variants = m.FormVariants[i]
			}
			e.text(3, "<numerusform", "numerusform", f, variants)
		}
		e.line(2, "</translation>")
	} else {
		e.text(2, open, "translation", m.Translation, m.Variants)
	}
	e.line(1, "</message>")
}

// text writes an element opened by open, holding either text or one
// lengthvariant child per variant.
func (e *encoder) text(depth int, open, name, text string, variants []string) {
	if len(variants) == 0 {
		e.line(depth, open+">"+escape(text)+"</"+name+">")
		return
	}
	e.line(depth, open+` variants="yes">`)
	for _, v := range variants {
		e.element(depth+1, "lengthvariant", v)
	}
	e.line(depth, "</"+name+">")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape protects markup characters. Control characters other than tab and
// line breaks cannot appear in XML and are written as <byte value="xN"/>.
func escape(s string) string {
	s = escaper.Replace(s)
	if !strings.ContainsFunc(s, isControl) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if isControl(r) {
			fmt.Fprintf(&b, `<byte value="x%x"/>`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20 && r != '\t' && r != '\n' && r != '\r'
}
