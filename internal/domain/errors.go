package domain

import "errors"

// codedError is a domain error carrying a stable code, used as the message key
// when the error is shown to a user.
type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string { return e.msg }

func newError(code, msg string) error {
	return &codedError{code: code, msg: msg}
}

// Domain errors.
var (
	ErrCatalogNotFound     = newError("catalog_not_found", "catalog not found")
	ErrEmptyContext        = newError("empty_context", "context name is empty")
	ErrEmptySource         = newError("empty_source", "source text is empty")
	ErrDuplicateMessage    = newError("duplicate_message", "duplicate source in context")
	ErrPlaceholderMismatch = newError("placeholder_mismatch", "translation placeholders differ from source")
	ErrMissingCount        = newError("missing_count", "numerus translation drops %n")
	ErrNotTSFile           = newError("not_ts_file", "document root is not a TS element")
	ErrUnknownFormat       = newError("unknown_format", "unknown export format")
	ErrRoundTrip           = newError("round_trip", "catalog does not survive re-serialization")
	ErrStoreUnavailable    = newError("store_unavailable", "no catalog store configured")
	ErrUnknownLocale       = newError("unknown_locale", "locale is not a valid language tag")
)

// Code returns the stable code of the first domain error in err's chain, or ""
// when err is not a domain error.
func Code(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ""
}
