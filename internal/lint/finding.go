// Package lint drives the external linter: a subprocess client, a
// debounced single-flight scheduler, and a mapper that turns the linter's
// 1-based findings into document-offset diagnostics.
package lint

// Location is a finding position as the linter reports it: 1-based row
// and column against the snapshot the linter saw, plus the flagged text.
type Location struct {
	File string `json:"file,omitempty"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Text string `json:"text,omitempty"`
}

// Finding is one linter violation.
type Finding struct {
	Rule        string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Location    Location `json:"location"`
}

// Summary aggregates a lint run.
type Summary struct {
	FilesScanned  int `json:"files_scanned"`
	NumViolations int `json:"num_violations"`
}

// Report is the linter's full response. ParseError is set instead of
// Violations when the source is not valid Rego at all.
type Report struct {
	Violations []Finding `json:"violations"`
	Summary    Summary   `json:"summary"`
	ParseError string    `json:"parse_error,omitempty"`
}
