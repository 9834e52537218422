// Package driver provides one-shot entry points for the CLI: tokenize,
// parse, highlight, lint, and evaluate, over files on disk rather than
// live editor buffers.
package driver

import (
	"github.com/HZMonama/regolab/internal/diag"
	"github.com/HZMonama/regolab/internal/lexer"
	"github.com/HZMonama/regolab/internal/source"
	"github.com/HZMonama/regolab/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
