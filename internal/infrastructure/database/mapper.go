package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"tscat/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

type locationJSON struct {
	File string `json:"file,omitempty"`
	Line string `json:"line,omitempty"`
}

// variantsJSON holds the length variants of a message.
type variantsJSON struct {
	Translation []string   `json:"translation,omitempty"`
	Forms       [][]string `json:"forms,omitempty"`
}

type messageRow struct {
	ContextPosition   int32
	Context           string
	Source            string
	Comment           string
	ExtraComment      string
	TranslatorComment string
	OldSource         string
	MessageID         string
	Numerus           bool
	Translation       string
	NumerusForms      []string
	TranslationType   string
	Locations         []locationJSON
	Variants          variantsJSON
}

var messageColumns = []string{
	"catalog_id", "position", "context_position", "context", "source", "comment",
	"extra_comment", "translator_comment", "old_source", "message_id", "numerus",
	"translation", "numerus_forms", "translation_type", "locations", "variants",
}

// messagesToRows flattens cat into copy rows in file order.
func messagesToRows(catalogID int64, cat *entities.Catalog) [][]any {
	var rows [][]any
	pos := 0
	for ci := range cat.Contexts {
		for _, m := range cat.Contexts[ci].Messages {
			locs := make([]locationJSON, len(m.Locations))
			for i, l := range m.Locations {
				locs[i] = locationJSON{File: l.File, Line: l.Line}
			}
			forms := m.NumerusForms
			if forms == nil {
				forms = []string{}
			}
			rows = append(rows, []any{
				catalogID, int32(pos), int32(ci), cat.Contexts[ci].Name, m.Source, m.Comment,
				m.ExtraComment, m.TranslatorComment, m.OldSource, m.ID, m.Numerus,
				m.Translation, forms, string(m.Type), locs,
				variantsJSON{Translation: m.Variants, Forms: m.FormVariants},
			})
			pos++
		}
	}
	return rows
}

// rowsToContexts regroups ordered rows into contexts. Rows of one context
// share a context position.
func rowsToContexts(rows []messageRow) []entities.Context {
	var out []entities.Context
	last := int32(-1)
	for _, r := range rows {
		if len(out) == 0 || r.ContextPosition != last {
			out = append(out, entities.Context{Name: r.Context})
			last = r.ContextPosition
		}
		ctx := &out[len(out)-1]
		ctx.Messages = append(ctx.Messages, messageToDomain(r))
	}
	return out
}

func messageToDomain(r messageRow) entities.Message {
	m := entities.Message{
		Context:           r.Context,
		Source:            r.Source,
		Comment:           r.Comment,
		ExtraComment:      r.ExtraComment,
		TranslatorComment: r.TranslatorComment,
		OldSource:         r.OldSource,
		ID:                r.MessageID,
		Numerus:           r.Numerus,
		Translation:       r.Translation,
		Type:              entities.TranslationType(r.TranslationType),
		Variants:          r.Variants.Translation,
	}
	if r.Numerus {
		m.NumerusForms = r.NumerusForms
		m.FormVariants = r.Variants.Forms
	}
	if len(r.Locations) > 0 {
		m.Locations = make([]entities.Location, len(r.Locations))
		for i, l := range r.Locations {
			m.Locations[i] = entities.Location{File: l.File, Line: l.Line}
		}
	}
	return m
}
