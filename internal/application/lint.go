package application

import (
	"strconv"
	"strings"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/pkg/locale"
	"tscat/pkg/qtarg"
)

// Warning codes. Error codes are the domain error codes.
const (
	CodeNumerusCount = "numerus_count"
	CodeBadLanguage  = "bad_language"
)

// Lint checks cat for well-formedness:
//   - every context and source is non-empty;
//   - (source, comment) is unique within a context;
//   - finished translations keep the placeholders of their source;
//   - numerus entries carry as many forms as the language has numerus forms.
func Lint(cat *entities.Catalog) *entities.Report {
	r := &entities.Report{Path: cat.Path, Language: cat.Language}

	tag, err := locale.Parse(cat.Language)
	langOK := err == nil
	if !langOK {
		r.Issues = append(r.Issues, entities.Issue{
			Severity: entities.SeverityWarning,
			Code:     CodeBadLanguage,
			Data:     map[string]any{"Language": cat.Language},
		})
	}
	var forms int
	if langOK {
		forms = locale.Forms(tag)
	}

	r.Stats.Contexts = len(cat.Contexts)
	for i := range cat.Contexts {
		c := &cat.Contexts[i]
		if strings.TrimSpace(c.Name) == "" {
			issue := entities.Issue{Severity: entities.SeverityError, Code: domain.Code(domain.ErrEmptyContext)}
			if len(c.Messages) > 0 {
				issue.Source = c.Messages[0].Source
				issue.Location = firstLocation(&c.Messages[0])
			}
			r.Issues = append(r.Issues, issue)
		}

		seen := make(map[entities.Key]*entities.Message, len(c.Messages))
		for j := range c.Messages {
			m := &c.Messages[j]
			count(&r.Stats, m)

			if m.Source == "" {
				r.Issues = append(r.Issues, issueFor(m, entities.SeverityError, domain.ErrEmptySource, nil))
			}

			k := entities.Key{Source: m.Source, Comment: m.Comment}
			if first, dup := seen[k]; dup {
				loc := firstLocation(first)
				r.Issues = append(r.Issues, issueFor(m, entities.SeverityError, domain.ErrDuplicateMessage, map[string]any{
					"FirstFile": loc.File,
					"FirstLine": loc.Line,
				}))
			} else {
				seen[k] = m
			}

			if !m.Usable() {
				continue
			}
			r.Issues = append(r.Issues, checkPlaceholders(m)...)
			if m.Numerus && langOK && len(m.NumerusForms) != forms {
				r.Issues = append(r.Issues, entities.Issue{
					Severity: entities.SeverityWarning,
					Code:     CodeNumerusCount,
					Context:  m.Context,
					Source:   m.Source,
					Comment:  m.Comment,
					Location: firstLocation(m),
					Data:     map[string]any{"Want": forms, "Got": len(m.NumerusForms)},
				})
			}
		}
	}
	return r
}

func checkPlaceholders(m *entities.Message) []entities.Issue {
	var out []entities.Issue
	want := qtarg.Placeholders(m.Source)
	for _, text := range m.Texts() {
		if text == "" {
			continue
		}
		if !qtarg.Equal(m.Source, text) {
			out = append(out, issueFor(m, entities.SeverityError, domain.ErrPlaceholderMismatch, map[string]any{
				"Want":        formatPlaceholders(want),
				"Got":         formatPlaceholders(qtarg.Placeholders(text)),
				"Translation": text,
			}))
			continue
		}
		if m.Numerus && qtarg.HasCount(m.Source) && !qtarg.HasCount(text) {
			out = append(out, issueFor(m, entities.SeverityWarning, domain.ErrMissingCount, map[string]any{
				"Translation": text,
			}))
		}
	}
	return out
}

func issueFor(m *entities.Message, sev entities.Severity, err error, data map[string]any) entities.Issue {
	return entities.Issue{
		Severity: sev,
		Code:     domain.Code(err),
		Context:  m.Context,
		Source:   m.Source,
		Comment:  m.Comment,
		Location: firstLocation(m),
		Data:     data,
	}
}

func firstLocation(m *entities.Message) entities.Location {
	if len(m.Locations) == 0 {
		return entities.Location{}
	}
	return m.Locations[0]
}

func count(s *entities.Stats, m *entities.Message) {
	s.Messages++
	if m.Numerus {
		s.Numerus++
	}
	switch m.Type {
	case entities.TypeFinished:
		s.Finished++
	case entities.TypeUnfinished:
		s.Unfinished++
	case entities.TypeObsolete:
		s.Obsolete++
	case entities.TypeVanished:
		s.Vanished++
	}
}

func formatPlaceholders(nums []int) string {
	if len(nums) == 0 {
		return "-"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = "%" + strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
