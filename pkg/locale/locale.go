// Package locale maps catalog language codes to x/text tags and plural rules.
package locale

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Parse reads a catalog language attribute such as "ja" or "pt_BR".
func Parse(s string) (language.Tag, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return language.Und, fmt.Errorf("locale: empty language")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("locale: parse %q: %w", s, err)
	}
	return tag, nil
}

// cldrOrder is the order in which numerus forms derived from CLDR
// categories are listed in a catalog.
var cldrOrder = []plural.Form{plural.Zero, plural.One, plural.Two, plural.Few, plural.Many, plural.Other}

// probeLimit bounds the integers used to discover which plural categories a
// language uses. Categories reached only by fractions or very large numbers
// are not given a numerus form of their own.
const probeLimit = 200

// numerusRule is a language whose catalogs list numerus forms in an order,
// or in a number, that CLDR categories do not give.
type numerusRule struct {
	forms int
	index func(n int) int
}

// numerusRules follow the rules Qt Linguist writes catalogs with.
var numerusRules = map[string]numerusRule{
	// Singular, Plural, Nullar.
	"lv": {forms: 3, index: func(n int) int {
		switch {
		case n%10 == 1 && n%100 != 11:
			return 0
		case n != 0:
			return 1
		}
		return 2
	}},
	// Singular, Dual, Plural.
	"ga": {forms: 3, index: func(n int) int {
		switch n {
		case 1:
			return 0
		case 2:
			return 1
		}
		return 2
	}},
}

func ruleFor(tag language.Tag) (numerusRule, bool) {
	base, _ := tag.Base()
	r, ok := numerusRules[base.String()]
	return r, ok
}

type categories struct {
	forms   []plural.Form
	samples map[plural.Form]int // smallest integer of each category
}

var categoryCache sync.Map // language.Tag -> *categories

func probe(tag language.Tag) *categories {
	if v, ok := categoryCache.Load(tag); ok {
		return v.(*categories)
	}
	c := &categories{samples: make(map[plural.Form]int)}
	for i := 0; i < probeLimit; i++ {
		f := plural.Cardinal.MatchPlural(tag, i, 0, 0, 0, 0)
		if _, ok := c.samples[f]; !ok {
			c.samples[f] = i
		}
	}
	for _, f := range cldrOrder {
		if _, ok := c.samples[f]; ok {
			c.forms = append(c.forms, f)
		}
	}
	v, _ := categoryCache.LoadOrStore(tag, c)
	return v.(*categories)
}

// Categories returns the cardinal plural categories used by integers in tag,
// in CLDR order. Languages without plurals yield a single Other.
func Categories(tag language.Tag) []plural.Form {
	return probe(tag).forms
}

// Forms returns how many numerus forms a catalog in tag carries.
func Forms(tag language.Tag) int {
	if r, ok := ruleFor(tag); ok {
		return r.forms
	}
	return len(Categories(tag))
}

// FormIndex returns the numerus form index to use for count n in tag.
func FormIndex(tag language.Tag, n int) int {
	if n < 0 {
		n = -n
	}
	if r, ok := ruleFor(tag); ok {
		return r.index(n)
	}
	forms := Categories(tag)
	f := plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0)
	for i, c := range forms {
		if c == f {
			return i
		}
	}
	for i, c := range forms {
		if c == plural.Other {
			return i
		}
	}
	return len(forms) - 1
}

// CategoryForms maps each CLDR category used by tag to the numerus form
// index holding its text, found by resolving the category's smallest
// integer.
func CategoryForms(tag language.Tag) map[plural.Form]int {
	c := probe(tag)
	out := make(map[plural.Form]int, len(c.forms))
	for _, f := range c.forms {
		out[f] = FormIndex(tag, c.samples[f])
	}
	return out
}

// Reduce keeps the language, script and region of tag, dropping variants
// and extensions.
func Reduce(tag language.Tag) language.Tag {
	base, script, region := tag.Raw()
	t, err := language.Compose(base, script, region)
	if err != nil {
		return tag
	}
	return t
}
