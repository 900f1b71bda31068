package entities

// Severity ranks lint findings.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is one lint finding. Code is a stable identifier; Data carries the
// values needed to render a message for it.
type Issue struct {
	Severity Severity
	Code     string
	Context  string
	Source   string
	Comment  string
	Location Location
	Data     map[string]any
}

// Stats counts catalog entries by state.
type Stats struct {
	Contexts   int
	Messages   int
	Finished   int
	Unfinished int
	Obsolete   int
	Vanished   int
	Numerus    int
}

// Report is the result of checking one catalog.
type Report struct {
	Path     string
	Language string
	Issues   []Issue
	Stats    Stats
}

// HasErrors reports whether any issue is an error.
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns how many issues have severity s.
func (r *Report) Count(s Severity) int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}
