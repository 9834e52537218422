package diag

import (
	"github.com/HZMonama/regolab/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	// Source names the producing tool for findings that originate outside
	// the front-end (e.g. the external linter's rule id). Empty for
	// diagnostics produced by the lexer and parser themselves.
	Source string
}
