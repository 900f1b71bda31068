package entities

// TranslationType is the state a translator left an entry in. The zero value
// means the translation is finished.
type TranslationType string

const (
	TypeFinished   TranslationType = ""
	TypeUnfinished TranslationType = "unfinished"
	TypeObsolete   TranslationType = "obsolete"
	TypeVanished   TranslationType = "vanished"
)

// Location is the provenance of a source string. Line is kept as written in
// the file (absolute "24" or relative "+3").
type Location struct {
	File string
	Line string
}

// Message is one translation entry of a catalog.
type Message struct {
	Context           string
	Source            string
	Comment           string // disambiguation, part of the lookup key
	ExtraComment      string
	TranslatorComment string
	OldSource         string
	ID                string
	Numerus           bool
	Translation       string
	NumerusForms      []string
	Type              TranslationType
	Locations         []Location

	// Variants are the length variants of a plain translation, preferred
	// first. Translation holds the first one.
	Variants []string
	// FormVariants[i] are the length variants of NumerusForms[i], nil for a
	// form without variants.
	FormVariants [][]string
}

// Key identifies a message within a catalog.
type Key struct {
	Context string
	Source  string
	Comment string
}

func (m *Message) Key() Key {
	return Key{Context: m.Context, Source: m.Source, Comment: m.Comment}
}

// Usable reports whether the translation may be shown at runtime: it is
// finished and carries some text.
func (m *Message) Usable() bool {
	if m.Type != TypeFinished {
		return false
	}
	if !m.Numerus {
		return m.Translation != ""
	}
	for _, f := range m.NumerusForms {
		if f != "" {
			return true
		}
	}
	return false
}

// Texts returns every translated string of the message: the numerus forms
// for plural entries, the single translation otherwise, each expanded to its
// length variants.
func (m *Message) Texts() []string {
	if !m.Numerus {
		if len(m.Variants) > 0 {
			return m.Variants
		}
		return []string{m.Translation}
	}
	out := make([]string, 0, len(m.NumerusForms))
	for i, f := range m.NumerusForms {
		if i < len(m.FormVariants) && len(m.FormVariants[i]) > 0 {
			out = append(out, m.FormVariants[i]...)
			continue
		}
		out = append(out, f)
	}
	return out
}

// Form returns the translation for plural form index i. Out of range or empty
// forms fall back to the last non-empty form.
func (m *Message) Form(i int) string {
	if !m.Numerus {
		return m.Translation
	}
	if i >= 0 && i < len(m.NumerusForms) && m.NumerusForms[i] != "" {
		return m.NumerusForms[i]
	}
	for j := len(m.NumerusForms) - 1; j >= 0; j-- {
		if m.NumerusForms[j] != "" {
			return m.NumerusForms[j]
		}
	}
	return ""
}
