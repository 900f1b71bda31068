package i18n

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
	"tscat/pkg/locale"
)

// Export formats understood by go-i18n.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IDSeparator joins context, source and comment into a message ID.
const IDSeparator = "|"

var _ output.Exporter = Exporter{}

// Exporter writes catalogs as go-i18n message files.
type Exporter struct{}

// MessageID is the go-i18n message ID of m.
func MessageID(m *entities.Message) string {
	id := m.Context + IDSeparator + m.Source
	if m.Comment != "" {
		id += IDSeparator + m.Comment
	}
	return id
}

// FileName is the go-i18n file name for cat, from which go-i18n reads the
// language back when loading.
func FileName(cat *entities.Catalog, format string) (string, error) {
	tag, err := locale.Parse(cat.Language)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnknownLocale, err)
	}
	return "active." + tag.String() + "." + format, nil
}

func (Exporter) FileName(cat *entities.Catalog, format string) (string, error) {
	return FileName(cat, format)
}

var formNames = map[plural.Form]string{
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
	plural.Other: "other",
}

// Messages converts the usable entries of cat into go-i18n messages keyed by
// MessageID. Each plural category of the catalog language gets the numerus
// form the catalog would show for that category's counts.
func Messages(cat *entities.Catalog) (map[string]map[string]string, error) {
	tag, err := locale.Parse(cat.Language)
	if err != nil {
		return nil, err
	}
	categoryForms := locale.CategoryForms(tag)

	out := make(map[string]map[string]string)
	for _, m := range cat.Messages() {
		if !m.Usable() {
			continue
		}
		sum := sha1.Sum([]byte(m.Source))
		entry := map[string]string{"hash": "sha1-" + hex.EncodeToString(sum[:])}
		if m.ExtraComment != "" {
			entry["description"] = m.ExtraComment
		}
		if m.Numerus {
			for c, i := range categoryForms {
				if i < len(m.NumerusForms) && m.NumerusForms[i] != "" {
					entry[formNames[c]] = m.NumerusForms[i]
				}
			}
			if _, ok := entry["other"]; !ok {
				entry["other"] = m.Form(-1)
			}
		} else {
			entry["other"] = m.Translation
		}
		out[MessageID(m)] = entry
	}
	return out, nil
}

func (Exporter) Export(w io.Writer, cat *entities.Catalog, format string) error {
	msgs, err := Messages(cat)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(false)
		err = enc.Encode(msgs)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		err = enc.Encode(msgs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(msgs)
		if err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("export %q: %w", format, domain.ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

// NewBundle returns a go-i18n bundle able to read every export format.
func NewBundle(defaultLanguage language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc(FormatTOML, toml.Unmarshal)
	bundle.RegisterUnmarshalFunc(FormatJSON, json.Unmarshal)
	bundle.RegisterUnmarshalFunc(FormatYAML, yaml.Unmarshal)
	return bundle
}

func (Exporter) Check(data []byte, name string) (int, error) {
	return Check(data, name)
}

// Check loads an exported file into a fresh go-i18n bundle and returns the
// number of messages go-i18n accepted.
func Check(data []byte, path string) (int, error) {
	bundle := NewBundle(language.English)
	mf, err := bundle.ParseMessageFileBytes(data, filepath.Base(path))
	if err != nil {
		return 0, fmt.Errorf("check %s: %w", path, err)
	}
	return len(mf.Messages), nil
}
