package diag

// Severity ranks a diagnostic. Parser and lexer problems are SevError or
// SevWarning; external linter findings map level "error" to SevError and
// everything else to SevWarning.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError marks input the front-end could not fully make sense of;
	// the tolerant parser still produces a tree around it.
	SevError
)

// String returns the uppercase label used in pretty diagnostic output.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
