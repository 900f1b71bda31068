package input

// Request is a lookup of one user-interface string.
type Request struct {
	Locale  string // empty means the translator's active locale
	Context string
	Source  string
	Comment string
	Count   *int // set for numerus messages
	Args    []string
}

type TranslateUseCase interface {
	Translate(req Request) string
	Resolve(locale, context, source string, args ...string) string
}
