// Package tsfile reads and writes Qt Linguist translation sources (.ts).
package tsfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
)

type tsDoc struct {
	XMLName        xml.Name    `xml:"TS"`
	Version        string      `xml:"version,attr"`
	Language       string      `xml:"language,attr"`
	SourceLanguage string      `xml:"sourcelanguage,attr"`
	Contexts       []tsContext `xml:"context"`
}

type tsContext struct {
	Name     tsString    `xml:"name"`
	Messages []tsMessage `xml:"message"`
}

type tsMessage struct {
	ID                string        `xml:"id,attr"`
	Numerus           string        `xml:"numerus,attr"`
	Locations         []tsLocation  `xml:"location"`
	Source            tsString      `xml:"source"`
	OldSource         tsString      `xml:"oldsource"`
	Comment           tsString      `xml:"comment"`
	ExtraComment      tsString      `xml:"extracomment"`
	TranslatorComment tsString      `xml:"translatorcomment"`
	Translation       tsTranslation `xml:"translation"`
}

type tsLocation struct {
	Filename string `xml:"filename,attr"`
	Line     string `xml:"line,attr"`
}

// tsString is element text in which control characters appear as
// <byte value="x1"/>.
type tsString string

func (s *tsString) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	text, err := readText(d, nil)
	*s = tsString(text)
	return err
}

type tsTranslation struct {
	Type     string
	Text     string
	Variants []string
	Forms    []tsForm
}

type tsForm struct {
	Text     string
	Variants []string
}

func (tr *tsTranslation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Local == "type" {
			tr.Type = a.Value
		}
	}
	text, err := readText(d, func(el xml.StartElement) error {
		switch el.Name.Local {
		case "lengthvariant":
			v, err := readText(d, nil)
			tr.Variants = append(tr.Variants, v)
			return err
		case "numerusform":
			var f tsForm
			var err error
			f.Text, err = readText(d, func(el xml.StartElement) error {
				if el.Name.Local != "lengthvariant" {
					return d.Skip()
				}
				v, err := readText(d, nil)
				f.Variants = append(f.Variants, v)
				return err
			})
			tr.Forms = append(tr.Forms, f)
			return err
		}
		return d.Skip()
	})
	tr.Text = text
	return err
}

// readText collects the character data up to the end of the current element.
// <byte> elements become the character they encode. Other child elements are
// handed to child, which must consume them, or skipped when child is nil.
func readText(d *xml.Decoder, child func(xml.StartElement) error) (string, error) {
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			switch {
			case t.Name.Local == "byte":
				var r rune
				if r, err = byteValue(t); err != nil {
					return "", err
				}
				b.WriteRune(r)
				err = d.Skip()
			case child != nil:
				err = child(t)
			default:
				err = d.Skip()
			}
			if err != nil {
				return "", err
			}
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

// byteValue decodes the value attribute of a <byte> element, hexadecimal
// when prefixed with x.
func byteValue(el xml.StartElement) (rune, error) {
	for _, a := range el.Attr {
		if a.Name.Local != "value" {
			continue
		}
		v, base := a.Value, 10
		if strings.HasPrefix(v, "x") {
			v, base = v[1:], 16
		}
		n, err := strconv.ParseUint(v, base, 16)
		if err != nil {
			return 0, fmt.Errorf("byte value %q: %w", a.Value, err)
		}
		return rune(n), nil
	}
	return 0, errors.New("byte element without value")
}

// Decode parses a TS document. The returned catalog is indexed and ready for
// lookups.
func Decode(r io.Reader) (*entities.Catalog, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, domain.ErrNotTSFile
			}
			return nil, fmt.Errorf("read ts: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "TS" {
			return nil, fmt.Errorf("root element <%s>: %w", start.Name.Local, domain.ErrNotTSFile)
		}
		var doc tsDoc
		if err := dec.DecodeElement(&doc, &start); err != nil {
			return nil, fmt.Errorf("decode ts: %w", err)
		}
		return docToDomain(&doc), nil
	}
}

func docToDomain(doc *tsDoc) *entities.Catalog {
	cat := &entities.Catalog{
		Version:        doc.Version,
		Language:       doc.Language,
		SourceLanguage: doc.SourceLanguage,
		Contexts:       make([]entities.Context, len(doc.Contexts)),
	}
	for i, c := range doc.Contexts {
		ctx := entities.Context{
			Name:     string(c.Name),
			Messages: make([]entities.Message, len(c.Messages)),
		}
		for j, m := range c.Messages {
			ctx.Messages[j] = messageToDomain(string(c.Name), m)
		}
		cat.Contexts[i] = ctx
	}
	cat.Index()
	return cat
}

func messageToDomain(context string, m tsMessage) entities.Message {
	msg := entities.Message{
		Context:           context,
		Source:            string(m.Source),
		Comment:           string(m.Comment),
		ExtraComment:      string(m.ExtraComment),
		TranslatorComment: string(m.TranslatorComment),
		OldSource:         string(m.OldSource),
		ID:                m.ID,
		Numerus:           m.Numerus == "yes",
		Type:              entities.TranslationType(m.Translation.Type),
	}
	switch {
	case msg.Numerus:
		msg.NumerusForms = make([]string, len(m.Translation.Forms))
		for i, f := range m.Translation.Forms {
			if len(f.Variants) == 0 {
				msg.NumerusForms[i] = f.Text
				continue
			}
			if msg.FormVariants == nil {
				msg.FormVariants = make([][]string, len(m.Translation.Forms))
			}
			msg.NumerusForms[i] = f.Variants[0]
			msg.FormVariants[i] = f.Variants
		}
		if len(msg.NumerusForms) == 0 {
			msg.NumerusForms = nil
		}
	case len(m.Translation.Variants) > 0:
		msg.Translation = m.Translation.Variants[0]
		msg.Variants = m.Translation.Variants
	default:
		msg.Translation = m.Translation.Text
	}
	if len(m.Locations) > 0 {
		msg.Locations = make([]entities.Location, len(m.Locations))
		for i, l := range m.Locations {
			msg.Locations[i] = entities.Location{File: l.Filename, Line: l.Line}
		}
	}
	return msg
}
